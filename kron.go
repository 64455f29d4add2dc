package qunitary

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/mat"
)

// Identity returns the dim×dim complex identity.
func Identity(dim int) *mat.CDense {
	m := mat.NewCDense(dim, dim, nil)
	for i := 0; i < dim; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// Kron returns the Kronecker product a ⊗ b, with a as the more significant
// factor: (a ⊗ b)[i*br+k, j*bc+l] = a[i,j]·b[k,l].
func Kron(a, b mat.CMatrix) *mat.CDense {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	out := mat.NewCDense(ar*br, ac*bc, nil)
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			aij := a.At(i, j)
			if aij == 0 {
				continue
			}
			for k := 0; k < br; k++ {
				for l := 0; l < bc; l++ {
					out.Set(i*br+k, j*bc+l, aij*b.At(k, l))
				}
			}
		}
	}
	return out
}

// Expand lifts a 2×2 or 4×4 gate acting on qubits lo (and lo+1) into the full
// 2^n-dimensional space: I(2^(n-lo-k)) ⊗ G ⊗ I(2^lo) for a k-qubit gate, so
// the gate lands on bit lo of the basis index and qubit 0 stays the least
// significant bit.
func Expand(g *mat.CDense, lo, n int) *mat.CDense {
	r, c := g.Dims()
	if r != c || (r != 2 && r != 4) {
		panic(fmt.Sprintf("qunitary: cannot expand %d×%d gate", r, c))
	}
	k := 1
	if r == 4 {
		k = 2
	}
	if lo < 0 || lo+k > n {
		panic(fmt.Sprintf("qunitary: %d-qubit gate at %d outside %d-qubit register", k, lo, n))
	}
	return Kron(Kron(Identity(1<<(n-lo-k)), g), Identity(1<<lo))
}

// leftMul returns op·u as a new matrix.
func leftMul(op, u *mat.CDense) *mat.CDense {
	r, _ := op.Dims()
	_, c := u.Dims()
	out := mat.NewCDense(r, c, nil)
	cblas128.Gemm(blas.NoTrans, blas.NoTrans, 1, op.RawCMatrix(), u.RawCMatrix(), 0, out.RawCMatrix())
	return out
}
