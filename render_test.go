package qunitary

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func TestFormatComplex(t *testing.T) {
	s := 1 / math.Sqrt2
	tests := []struct {
		input complex128
		want  string
	}{
		{0, "0"},
		{1, "1"},
		{-1, "-1"},
		{complex(s, 0), "0.707"},
		{complex(-s, 0), "-0.707"},
		{1i, "1i"},
		{-1i, "-1i"},
		{complex(s, s), "0.707+0.707i"},
		{complex(s, -s), "0.707-0.707i"},
		{complex(-1e-12, 1e-12), "0"},
		{complex(0.5, 1e-12), "0.5"},
	}

	for _, tt := range tests {
		if got := formatComplex(tt.input); got != tt.want {
			t.Errorf("formatComplex(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestPadLeft(t *testing.T) {
	if got := padLeft("ab", 5); got != "   ab" {
		t.Errorf("padLeft = %q", got)
	}
	if got := padLeft("abcdef", 3); got != "abcdef" {
		t.Errorf("padLeft should not truncate, got %q", got)
	}
}

func TestPrintUnitary(t *testing.T) {
	c, err := New(1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := c.H(0); err != nil {
		t.Fatalf("H: %v", err)
	}

	var buf bytes.Buffer
	if err := c.PrintUnitary(&buf); err != nil {
		t.Fatalf("PrintUnitary: %v", err)
	}
	out := buf.String()

	for _, want := range []string{"U (1 qubits, 1 ops)", "0.707", "-0.707"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if out != c.RenderUnitary()+"\n" {
		t.Errorf("PrintUnitary and RenderUnitary disagree")
	}
}

func TestRenderState(t *testing.T) {
	c, err := New(2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := c.H(0); err != nil {
		t.Fatalf("H: %v", err)
	}
	if err := c.CX(0, 1); err != nil {
		t.Fatalf("CX: %v", err)
	}
	final, err := c.Evolve(BasisState(2, 0))
	if err != nil {
		t.Fatalf("Evolve: %v", err)
	}

	out := RenderState(2, final)
	for _, want := range []string{"|00⟩", "|11⟩", "p=0.500"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	for _, absent := range []string{"|01⟩", "|10⟩"} {
		if strings.Contains(out, absent) {
			t.Errorf("output should skip zero amplitude %q:\n%s", absent, out)
		}
	}
}
