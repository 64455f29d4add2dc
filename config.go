package qunitary

import (
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/exp/rand"
)

const (
	// DefaultMaxQubits bounds circuit size unless WithMaxQubits raises it.
	// A 12-qubit unitary holds 4096×4096 complex128 values (256 MiB).
	DefaultMaxQubits = 12

	// HardMaxQubits is the largest ceiling WithMaxQubits accepts.
	HardMaxQubits = 14

	// DefaultTolerance is the absolute tolerance for unit-norm checks.
	DefaultTolerance = 1e-9
)

// Config holds the tunables shared by every operation of a Circuit.
type Config struct {
	// MaxQubits is the largest register New accepts.
	MaxQubits int
	// Tolerance is the absolute slack allowed when checking that a state
	// vector or a probability distribution sums to one.
	Tolerance float64
	// Dense selects Kronecker expansion plus matrix multiplication instead of
	// the row kernels in apply.go.
	Dense bool
	// Source drives measurement sampling. A nil Source uses the global
	// generator of golang.org/x/exp/rand.
	Source rand.Source
	// Logger receives per-gate debug records. New swaps a nil Logger for a
	// discarding one.
	Logger *log.Logger
}

// Option mutates a Config.
type Option func(*Config)

// NewConfig returns the defaults with opts applied in order.
func NewConfig(opts ...Option) *Config {
	cfg := &Config{
		MaxQubits: DefaultMaxQubits,
		Tolerance: DefaultTolerance,
		Logger: log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "qunitary",
			Level:  log.WarnLevel,
		}),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithSeed makes sampling reproducible.
func WithSeed(seed uint64) Option {
	return func(c *Config) {
		c.Source = rand.NewSource(seed)
	}
}

// WithSource sets the random source used by SimulateRun and Run.
func WithSource(src rand.Source) Option {
	return func(c *Config) {
		c.Source = src
	}
}

// WithTolerance sets the slack for unit-norm checks. Negative or non-finite
// values make New fail with ErrTolerance.
func WithTolerance(tol float64) Option {
	return func(c *Config) {
		c.Tolerance = tol
	}
}

// WithMaxQubits changes the qubit ceiling. Values outside [1, HardMaxQubits]
// make New fail with ErrQubitCount.
func WithMaxQubits(n int) Option {
	return func(c *Config) {
		c.MaxQubits = n
	}
}

// WithDenseExpansion toggles full-space Kronecker expansion for every gate.
func WithDenseExpansion(dense bool) Option {
	return func(c *Config) {
		c.Dense = dense
	}
}

// WithLogger routes gate and sampling logs to logger.
func WithLogger(logger *log.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

func (c *Config) strategy() string {
	if c.Dense {
		return "dense"
	}
	return "indexed"
}
