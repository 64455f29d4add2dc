package qunitary

import "errors"

// Sentinel errors returned by the package. Callers match them with errors.Is;
// returned values may wrap them with extra context.
var (
	// ErrInvalidStateVector is returned when a state vector has the wrong
	// length or is not unit length within the configured tolerance.
	ErrInvalidStateVector = errors.New("qunitary: invalid state vector")

	// ErrQubitOutOfRange is returned when a qubit index is outside [0, n).
	ErrQubitOutOfRange = errors.New("qunitary: qubit index out of range")

	// ErrSameQubit is returned when a two-qubit operation names one qubit twice.
	ErrSameQubit = errors.New("qunitary: qubit indices must differ")

	// ErrQubitCount is returned for a qubit count below one or above the
	// configured ceiling.
	ErrQubitCount = errors.New("qunitary: invalid qubit count")

	// ErrTolerance is returned by New when the configured tolerance is
	// negative or not finite.
	ErrTolerance = errors.New("qunitary: tolerance must be finite and non-negative")

	// ErrShots is returned when a sampling run asks for fewer than one shot.
	ErrShots = errors.New("qunitary: shot count must be positive")

	// ErrUnsupportedStatement is returned by ParseQASM for statements outside
	// the supported gate set.
	ErrUnsupportedStatement = errors.New("qunitary: unsupported QASM statement")
)
