package qunitary

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/mat"
)

const testTol = 1e-9

var singleKinds = []GateKind{GateX, GateY, GateZ, GateH, GateT, GateTdg}

// randomOps returns count gate operations on an n-qubit register. Two-qubit
// operations are only produced when n > 1.
func randomOps(rng *rand.Rand, n, count int) []Op {
	ops := make([]Op, 0, count)
	for i := 0; i < count; i++ {
		if n > 1 && rng.Intn(3) == 0 {
			a := rng.Intn(n)
			b := rng.Intn(n - 1)
			if b >= a {
				b++
			}
			kind := GateCX
			if rng.Intn(2) == 0 {
				kind = GateSWAP
			}
			ops = append(ops, Op{Kind: kind, Qubits: []int{a, b}})
			continue
		}
		kind := singleKinds[rng.Intn(len(singleKinds))]
		ops = append(ops, Op{Kind: kind, Qubits: []int{rng.Intn(n)}})
	}
	return ops
}

// applyOp dispatches op to the matching Circuit method.
func applyOp(c *Circuit, op Op) error {
	switch op.Kind {
	case GateX:
		return c.X(op.Qubits[0])
	case GateY:
		return c.Y(op.Qubits[0])
	case GateZ:
		return c.Z(op.Qubits[0])
	case GateH:
		return c.H(op.Qubits[0])
	case GateT:
		return c.T(op.Qubits[0])
	case GateTdg:
		return c.Tdg(op.Qubits[0])
	case GateSWAP:
		return c.Swap(op.Qubits[0], op.Qubits[1])
	case GateCX:
		return c.CX(op.Qubits[0], op.Qubits[1])
	}
	return fmt.Errorf("unknown op %v", op)
}

func applyOps(c *Circuit, ops []Op) error {
	for _, op := range ops {
		if err := applyOp(c, op); err != nil {
			return err
		}
	}
	return nil
}

// timesAdjoint returns u·u†.
func timesAdjoint(u *mat.CDense) *mat.CDense {
	r, _ := u.Dims()
	out := mat.NewCDense(r, r, nil)
	cblas128.Gemm(blas.NoTrans, blas.ConjTrans, 1, u.RawCMatrix(), u.RawCMatrix(), 0, out.RawCMatrix())
	return out
}

// randomState returns a normalised state vector with random amplitudes.
func randomState(rng *rand.Rand, n int) []complex128 {
	state := make([]complex128, 1<<n)
	var sum float64
	for i := range state {
		state[i] = complex(rng.NormFloat64(), rng.NormFloat64())
		sum += real(state[i])*real(state[i]) + imag(state[i])*imag(state[i])
	}
	norm := complex(1/math.Sqrt(sum), 0)
	for i := range state {
		state[i] *= norm
	}
	return state
}
