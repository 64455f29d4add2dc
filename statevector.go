package qunitary

import (
	"fmt"
	"math"
	"math/cmplx"
)

// StateVector is a register state updated gate by gate. Qubit q is bit q of
// an amplitude's index.
type StateVector struct {
	Amplitudes []complex128
	NumQubits  int
}

// NewStateVector returns |0…0⟩ over numQubits qubits.
func NewStateVector(numQubits int) *StateVector {
	amps := make([]complex128, 1<<numQubits)
	amps[0] = 1
	return &StateVector{Amplitudes: amps, NumQubits: numQubits}
}

// BasisState returns |k⟩ over numQubits qubits. It panics unless
// 0 <= k < 2^numQubits.
func BasisState(numQubits, k int) []complex128 {
	if numQubits < 0 || k < 0 || k >= 1<<numQubits {
		panic(fmt.Sprintf("qunitary: basis index %d outside %d-qubit register", k, numQubits))
	}
	amps := make([]complex128, 1<<numQubits)
	amps[k] = 1
	return amps
}

func (s *StateVector) Clone() *StateVector {
	amps := make([]complex128, len(s.Amplitudes))
	copy(amps, s.Amplitudes)
	return &StateVector{Amplitudes: amps, NumQubits: s.NumQubits}
}

// Apply runs one logged operation on the amplitudes.
func (s *StateVector) Apply(op Op) error {
	if s.NumQubits < 0 || s.NumQubits >= 63 || len(s.Amplitudes) != 1<<s.NumQubits {
		return fmt.Errorf("%d amplitudes for %d qubits: %w", len(s.Amplitudes), s.NumQubits, ErrInvalidStateVector)
	}
	if len(op.Qubits) != op.Kind.Arity() {
		return fmt.Errorf("%s takes %d qubits, got %d: %w", op.Kind, op.Kind.Arity(), len(op.Qubits), ErrQubitOutOfRange)
	}
	for _, q := range op.Qubits {
		if q < 0 || q >= s.NumQubits {
			return fmt.Errorf("%s on qubit %d in %d-qubit state: %w", op.Kind, q, s.NumQubits, ErrQubitOutOfRange)
		}
	}

	switch op.Kind {
	case GateX:
		s.applyX(op.Qubits[0])
	case GateY:
		s.applyY(op.Qubits[0])
	case GateZ:
		s.applyPhase(op.Qubits[0], -1)
	case GateH:
		s.applyH(op.Qubits[0])
	case GateT:
		s.applyPhase(op.Qubits[0], tPhase)
	case GateTdg:
		s.applyPhase(op.Qubits[0], tdgPhase)
	case GateSWAP:
		if op.Qubits[0] == op.Qubits[1] {
			return fmt.Errorf("swap q[%d]: %w", op.Qubits[0], ErrSameQubit)
		}
		s.applySWAP(op.Qubits[0], op.Qubits[1])
	case GateCX:
		if op.Qubits[0] == op.Qubits[1] {
			return fmt.Errorf("cx q[%d]: %w", op.Qubits[0], ErrSameQubit)
		}
		s.applyCX(op.Qubits[0], op.Qubits[1])
	default:
		return fmt.Errorf("gate %q: %w", op.Kind, ErrUnsupportedStatement)
	}
	return nil
}

func (s *StateVector) applyH(q int) {
	bit := 1 << q
	for i := range s.Amplitudes {
		if i&bit == 0 {
			j := i | bit
			a, b := s.Amplitudes[i], s.Amplitudes[j]
			s.Amplitudes[i] = invSqrt2 * (a + b)
			s.Amplitudes[j] = invSqrt2 * (a - b)
		}
	}
}

func (s *StateVector) applyX(q int) {
	bit := 1 << q
	for i := range s.Amplitudes {
		if i&bit == 0 {
			j := i | bit
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
}

func (s *StateVector) applyY(q int) {
	bit := 1 << q
	for i := range s.Amplitudes {
		if i&bit == 0 {
			j := i | bit
			s.Amplitudes[i], s.Amplitudes[j] = -1i*s.Amplitudes[j], 1i*s.Amplitudes[i]
		}
	}
}

// applyPhase multiplies every amplitude with bit q set by factor.
func (s *StateVector) applyPhase(q int, factor complex128) {
	bit := 1 << q
	for i := range s.Amplitudes {
		if i&bit != 0 {
			s.Amplitudes[i] *= factor
		}
	}
}

func (s *StateVector) applyCX(control, target int) {
	cBit := 1 << control
	tBit := 1 << target
	for i := range s.Amplitudes {
		if i&cBit != 0 && i&tBit == 0 {
			j := i | tBit
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
}

func (s *StateVector) applySWAP(q1, q2 int) {
	bit1 := 1 << q1
	bit2 := 1 << q2
	for i := range s.Amplitudes {
		if i&bit1 != 0 && i&bit2 == 0 {
			j := (i &^ bit1) | bit2
			s.Amplitudes[i], s.Amplitudes[j] = s.Amplitudes[j], s.Amplitudes[i]
		}
	}
}

// Probabilities returns the squared magnitude of every amplitude.
func (s *StateVector) Probabilities() []float64 {
	probs := make([]float64, len(s.Amplitudes))
	for i, amp := range s.Amplitudes {
		probs[i] = real(amp * cmplx.Conj(amp))
	}
	return probs
}

// QubitProbability is the marginal distribution of one qubit.
type QubitProbability struct {
	Prob0 float64
	Prob1 float64
}

// QubitProbabilities returns the marginal of each qubit, indexed by qubit.
func (s *StateVector) QubitProbabilities() []QubitProbability {
	probs := make([]QubitProbability, s.NumQubits)
	for i, p := range s.Probabilities() {
		for q := 0; q < s.NumQubits; q++ {
			if i&(1<<q) != 0 {
				probs[q].Prob1 += p
			} else {
				probs[q].Prob0 += p
			}
		}
	}
	return probs
}

// Norm returns the L2 norm of the amplitudes.
func (s *StateVector) Norm() float64 {
	var sum float64
	for _, p := range s.Probabilities() {
		sum += p
	}
	return math.Sqrt(sum)
}
