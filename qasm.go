package qunitary

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Pre-compiled regexps for QASM parsing.
var (
	singleGateRegex = regexp.MustCompile(`^(\w+)\s+q\[(\d+)\];?$`)
	twoQubitRegex   = regexp.MustCompile(`^(\w+)\s+q\[(\d+)\],\s*q\[(\d+)\];?$`)
	measureRegex    = regexp.MustCompile(`^measure\s+q(?:\[\d+\])?\s*->\s*\w+(?:\[\d+\])?;?$`)
	qregRegex       = regexp.MustCompile(`^qreg\s+(\w+)\[(\d+)\];?$`)
)

var qasmNames = map[GateKind]string{
	GateX:    "x",
	GateY:    "y",
	GateZ:    "z",
	GateH:    "h",
	GateT:    "t",
	GateTdg:  "tdg",
	GateSWAP: "swap",
	GateCX:   "cx",
}

// ToQASM generates OpenQASM 2.0 for the operation log, ending with a
// measurement of the whole register.
func (c *Circuit) ToQASM() string {
	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n", c.numQubits)
	fmt.Fprintf(&sb, "creg c[%d];\n\n", c.numQubits)

	for _, op := range c.ops {
		name := qasmNames[op.Kind]
		if len(op.Qubits) == 2 {
			fmt.Fprintf(&sb, "%s q[%d], q[%d];\n", name, op.Qubits[0], op.Qubits[1])
			continue
		}
		fmt.Fprintf(&sb, "%s q[%d];\n", name, op.Qubits[0])
	}

	sb.WriteString("measure q -> c;\n")
	return sb.String()
}

// ParseQASM builds a circuit from OpenQASM 2.0 text restricted to the gates
// this package implements. Measurements, barriers, creg declarations and
// comments are skipped. The register size comes from the qreg declaration,
// which must precede the first gate.
func ParseQASM(src string, opts ...Option) (*Circuit, error) {
	var c *Circuit

	for n, line := range strings.Split(src, "\n") {
		lineNo := n + 1
		line = strings.TrimSpace(line)
		if i := strings.Index(line, "//"); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "OPENQASM") ||
			strings.HasPrefix(line, "include") ||
			strings.HasPrefix(line, "creg") ||
			strings.HasPrefix(line, "barrier") {
			continue
		}
		if measureRegex.MatchString(line) {
			continue
		}

		if matches := qregRegex.FindStringSubmatch(line); matches != nil {
			if c != nil {
				return nil, fmt.Errorf("line %d: second qreg: %w", lineNo, ErrUnsupportedStatement)
			}
			if matches[1] != "q" {
				return nil, fmt.Errorf("line %d: register %q, only q is supported: %w", lineNo, matches[1], ErrUnsupportedStatement)
			}
			size, _ := strconv.Atoi(matches[2])
			var err error
			if c, err = New(size, opts...); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			continue
		}

		if c == nil {
			return nil, fmt.Errorf("line %d: gate before qreg declaration: %w", lineNo, ErrQubitCount)
		}

		if err := c.applyStatement(line); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}

	if c == nil {
		return nil, fmt.Errorf("no qreg declaration: %w", ErrQubitCount)
	}
	return c, nil
}

// applyStatement runs one gate statement against the circuit.
func (c *Circuit) applyStatement(line string) error {
	// Two-qubit gates: cx, swap
	if matches := twoQubitRegex.FindStringSubmatch(line); matches != nil {
		qubit1, _ := strconv.Atoi(matches[2])
		qubit2, _ := strconv.Atoi(matches[3])
		switch strings.ToLower(matches[1]) {
		case "cx", "cnot":
			return c.CX(qubit1, qubit2)
		case "swap":
			return c.Swap(qubit1, qubit2)
		}
		return fmt.Errorf("%q: %w", line, ErrUnsupportedStatement)
	}

	if matches := singleGateRegex.FindStringSubmatch(line); matches != nil {
		target, _ := strconv.Atoi(matches[2])
		switch strings.ToLower(matches[1]) {
		case "x":
			return c.X(target)
		case "y":
			return c.Y(target)
		case "z":
			return c.Z(target)
		case "h":
			return c.H(target)
		case "t":
			return c.T(target)
		case "tdg":
			return c.Tdg(target)
		}
	}

	return fmt.Errorf("%q: %w", line, ErrUnsupportedStatement)
}
