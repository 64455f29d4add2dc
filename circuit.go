// Package qunitary simulates small quantum circuits by tracking their full
// unitary matrix and sampling a measurement of the whole register.
package qunitary

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Circuit accumulates the unitary of a gate sequence over a fixed register.
//
// Qubit i is bit i of a basis index, so qubit 0 is the least significant bit.
// Every gate call left-multiplies the cumulative unitary: after X(0) then
// H(1) the unitary is H₁·X₀. A Circuit is not safe for concurrent use.
type Circuit struct {
	numQubits int
	unitary   *mat.CDense
	ops       []Op
	cfg       *Config
	log       *log.Logger
}

// New returns a circuit over numQubits qubits whose unitary is the identity.
func New(numQubits int, opts ...Option) (*Circuit, error) {
	cfg := NewConfig(opts...)
	if cfg.MaxQubits < 1 || cfg.MaxQubits > HardMaxQubits {
		return nil, fmt.Errorf("qubit ceiling %d outside [1, %d]: %w", cfg.MaxQubits, HardMaxQubits, ErrQubitCount)
	}
	if math.IsNaN(cfg.Tolerance) || math.IsInf(cfg.Tolerance, 0) || cfg.Tolerance < 0 {
		return nil, fmt.Errorf("tolerance %g: %w", cfg.Tolerance, ErrTolerance)
	}
	if numQubits < 1 || numQubits > cfg.MaxQubits {
		return nil, fmt.Errorf("%d qubits outside [1, %d]: %w", numQubits, cfg.MaxQubits, ErrQubitCount)
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}

	return &Circuit{
		numQubits: numQubits,
		unitary:   Identity(1 << numQubits),
		cfg:       cfg,
		log:       cfg.Logger,
	}, nil
}

// NumQubits returns the register width.
func (c *Circuit) NumQubits() int { return c.numQubits }

// Dim returns 2^NumQubits.
func (c *Circuit) Dim() int { return 1 << c.numQubits }

// Unitary returns a copy of the cumulative unitary. Changes to the copy do
// not affect the circuit.
func (c *Circuit) Unitary() *mat.CDense {
	out := mat.NewCDense(c.Dim(), c.Dim(), nil)
	out.Copy(c.unitary)
	return out
}

// Ops returns a copy of the operation log in application order.
func (c *Circuit) Ops() []Op {
	out := make([]Op, len(c.ops))
	for i, op := range c.ops {
		out[i] = Op{Kind: op.Kind, Qubits: append([]int(nil), op.Qubits...)}
	}
	return out
}

// X applies the Pauli-X gate to qubit.
func (c *Circuit) X(qubit int) error { return c.single(GateX, qubit) }

// Y applies the Pauli-Y gate to qubit.
func (c *Circuit) Y(qubit int) error { return c.single(GateY, qubit) }

// Z applies the Pauli-Z gate to qubit.
func (c *Circuit) Z(qubit int) error { return c.single(GateZ, qubit) }

// H applies the Hadamard gate to qubit.
func (c *Circuit) H(qubit int) error { return c.single(GateH, qubit) }

// T applies the π/8 phase gate to qubit.
func (c *Circuit) T(qubit int) error { return c.single(GateT, qubit) }

// Tdg applies the adjoint of T to qubit.
func (c *Circuit) Tdg(qubit int) error { return c.single(GateTdg, qubit) }

// Swap exchanges the states of qubits a and b, which need not be adjacent.
func (c *Circuit) Swap(a, b int) error {
	if err := c.checkPair(a, b); err != nil {
		return err
	}
	c.swapChain(a, b)
	c.record(GateSWAP, a, b)
	return nil
}

// CX applies a controlled-X: target flips when control is set. The pair is
// routed next to each other with swaps, and every routing swap is undone
// before returning, so only the controlled-X remains in the unitary.
func (c *Circuit) CX(control, target int) error {
	if err := c.checkPair(control, target); err != nil {
		return err
	}
	origControl, origTarget := control, target

	reversed := control > target
	if reversed {
		c.swapChain(control, target)
		control, target = target, control
	}
	relocated := target != control+1
	if relocated {
		c.swapChain(control+1, target)
	}

	c.apply(Matrix(GateCX), control)

	if relocated {
		c.swapChain(control+1, target)
	}
	if reversed {
		c.swapChain(control, target)
	}

	c.record(GateCX, origControl, origTarget)
	return nil
}

// Evolve returns U·state for the gates applied so far. state must have 2^n
// amplitudes and unit L2 norm; it is not modified.
func (c *Circuit) Evolve(state []complex128) ([]complex128, error) {
	if err := c.checkState(state); err != nil {
		return nil, err
	}
	out := make([]complex128, c.Dim())
	cblas128.Gemv(blas.NoTrans, 1, c.unitary.RawCMatrix(),
		cblas128.Vector{N: len(state), Inc: 1, Data: state},
		0, cblas128.Vector{N: len(out), Inc: 1, Data: out})
	return out, nil
}

// Probabilities returns |⟨k|U|state⟩|² for every basis index k. state is
// validated exactly as Evolve validates it.
func (c *Circuit) Probabilities(state []complex128) ([]float64, error) {
	final, err := c.Evolve(state)
	if err != nil {
		return nil, err
	}
	probs := make([]float64, len(final))
	for k, amp := range final {
		probs[k] = real(amp)*real(amp) + imag(amp)*imag(amp)
	}
	return probs, nil
}

// SimulateRun evolves state through the circuit and measures every qubit at
// once. The result is the basis index of the outcome, with qubit 0 as its
// least significant bit.
func (c *Circuit) SimulateRun(state []complex128) (uint64, error) {
	probs, err := c.Probabilities(state)
	if err != nil {
		return 0, err
	}
	return uint64(distuv.NewCategorical(probs, c.cfg.Source).Rand()), nil
}

// Run samples shots full-register measurements and returns how often each
// outcome occurred. Keys are n-character bit strings with qubit n-1 first.
func (c *Circuit) Run(state []complex128, shots int) (map[string]int, error) {
	if shots < 1 {
		return nil, fmt.Errorf("%d shots: %w", shots, ErrShots)
	}
	probs, err := c.Probabilities(state)
	if err != nil {
		return nil, err
	}

	dist := distuv.NewCategorical(probs, c.cfg.Source)
	counts := make(map[string]int)
	for i := 0; i < shots; i++ {
		counts[c.bitString(int(dist.Rand()))]++
	}
	c.log.Debug("sampled", "shots", shots, "outcomes", len(counts))
	return counts, nil
}

// Replay runs the operation log directly on a copy of state, one gate at a
// time, without touching the cumulative unitary. The result matches Evolve.
func (c *Circuit) Replay(state []complex128) ([]complex128, error) {
	if err := c.checkState(state); err != nil {
		return nil, err
	}
	sv := &StateVector{
		Amplitudes: append([]complex128(nil), state...),
		NumQubits:  c.numQubits,
	}
	for _, op := range c.ops {
		if err := sv.Apply(op); err != nil {
			return nil, err
		}
	}
	return sv.Amplitudes, nil
}

func (c *Circuit) single(kind GateKind, qubit int) error {
	if err := c.checkQubit(qubit); err != nil {
		return err
	}
	c.apply(Matrix(kind), qubit)
	c.record(kind, qubit)
	return nil
}

// neighbourSwap swaps qubits i and i+1.
func (c *Circuit) neighbourSwap(i int) {
	if i < 0 || i >= c.numQubits-1 {
		panic(fmt.Sprintf("qunitary: neighbour swap at %d in %d-qubit circuit", i, c.numQubits))
	}
	c.apply(Matrix(GateSWAP), i)
}

// swapChain exchanges positions a and b with adjacent swaps: walk the lower
// qubit up to the higher position, then walk the displaced one back down.
// Positions strictly between them end where they started.
func (c *Circuit) swapChain(a, b int) {
	lo, hi := min(a, b), max(a, b)
	for i := lo; i < hi; i++ {
		c.neighbourSwap(i)
	}
	for k := hi - 1; k > lo; k-- {
		c.neighbourSwap(k - 1)
	}
}

// apply left-multiplies the unitary by g placed on qubit lo (and lo+1 for a
// 4×4 gate).
func (c *Circuit) apply(g *mat.CDense, lo int) {
	if c.cfg.Dense {
		c.unitary = leftMul(Expand(g, lo, c.numQubits), c.unitary)
		return
	}
	if r, _ := g.Dims(); r == 4 {
		applyRows2(c.unitary, g, lo)
		return
	}
	applyRows1(c.unitary, g, lo)
}

func (c *Circuit) record(kind GateKind, qubits ...int) {
	c.ops = append(c.ops, Op{Kind: kind, Qubits: qubits})
	c.log.Debug("applied gate", "gate", kind, "qubits", qubits, "strategy", c.cfg.strategy())
}

func (c *Circuit) checkQubit(q int) error {
	if q < 0 || q >= c.numQubits {
		return fmt.Errorf("qubit %d in %d-qubit circuit: %w", q, c.numQubits, ErrQubitOutOfRange)
	}
	return nil
}

func (c *Circuit) checkPair(a, b int) error {
	if err := c.checkQubit(a); err != nil {
		return err
	}
	if err := c.checkQubit(b); err != nil {
		return err
	}
	if a == b {
		return fmt.Errorf("qubit %d: %w", a, ErrSameQubit)
	}
	return nil
}

func (c *Circuit) checkState(state []complex128) error {
	if len(state) != c.Dim() {
		return fmt.Errorf("%d amplitudes, want %d: %w", len(state), c.Dim(), ErrInvalidStateVector)
	}
	if norm := cmplxs.Norm(state, 2); math.Abs(norm-1) > c.cfg.Tolerance {
		return fmt.Errorf("norm %g is not 1: %w", norm, ErrInvalidStateVector)
	}
	return nil
}

// bitString formats a basis index as n bits, qubit n-1 first.
func (c *Circuit) bitString(k int) string {
	return fmt.Sprintf("%0*b", c.numQubits, k)
}
