package qunitary

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// GateKind names an elementary gate.
type GateKind string

const (
	GateX    GateKind = "X"
	GateY    GateKind = "Y"
	GateZ    GateKind = "Z"
	GateH    GateKind = "H"
	GateT    GateKind = "T"
	GateTdg  GateKind = "TDG"
	GateSWAP GateKind = "SWAP"
	GateCX   GateKind = "CX"
)

// Arity returns the number of qubits the gate acts on.
func (k GateKind) Arity() int {
	switch k {
	case GateSWAP, GateCX:
		return 2
	default:
		return 1
	}
}

// Op is one entry of a circuit's operation log. Qubits holds the target for
// single-qubit gates, (a, b) for SWAP and (control, target) for CX.
type Op struct {
	Kind   GateKind
	Qubits []int
}

func (o Op) String() string {
	if len(o.Qubits) == 1 {
		return fmt.Sprintf("%s q[%d]", o.Kind, o.Qubits[0])
	}
	return fmt.Sprintf("%s q[%d], q[%d]", o.Kind, o.Qubits[0], o.Qubits[1])
}

var (
	invSqrt2 = complex(1/math.Sqrt2, 0)
	tPhase   = cmplx.Exp(complex(0, math.Pi/4))
	tdgPhase = cmplx.Exp(complex(0, -math.Pi/4))
)

// Row-major gate data. Two-qubit matrices use the local basis
// bit(lo) + 2*bit(lo+1), so CX below has its control on the lower qubit.
var gateData = map[GateKind][]complex128{
	GateX: {
		0, 1,
		1, 0,
	},
	GateY: {
		0, -1i,
		1i, 0,
	},
	GateZ: {
		1, 0,
		0, -1,
	},
	GateH: {
		invSqrt2, invSqrt2,
		invSqrt2, -invSqrt2,
	},
	GateT: {
		1, 0,
		0, tPhase,
	},
	GateTdg: {
		1, 0,
		0, tdgPhase,
	},
	GateSWAP: {
		1, 0, 0, 0,
		0, 0, 1, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
	},
	GateCX: {
		1, 0, 0, 0,
		0, 0, 0, 1,
		0, 0, 1, 0,
		0, 1, 0, 0,
	},
}

// Matrix returns a fresh copy of the gate's 2×2 or 4×4 unitary.
func Matrix(kind GateKind) *mat.CDense {
	data, ok := gateData[kind]
	if !ok {
		panic(fmt.Sprintf("qunitary: unknown gate %q", kind))
	}
	dim := 1 << kind.Arity()
	return mat.NewCDense(dim, dim, append([]complex128(nil), data...))
}
