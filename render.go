package qunitary

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/gonum/mat"
)

// ──────────────────────────── Rendering helpers ────────────────────────────

// padLeft right-aligns s within the given width.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// roundPart rounds x to the display precision, folding -0 into 0.
func roundPart(x float64) float64 {
	scale := math.Pow(10, precision)
	r := math.Round(x*scale) / scale
	if r == 0 {
		return 0
	}
	return r
}

// formatComplex renders z compactly: "0", "0.707", "-1i", "0.5+0.5i".
func formatComplex(z complex128) string {
	re, im := roundPart(real(z)), roundPart(imag(z))
	f := func(x float64) string { return strconv.FormatFloat(x, 'f', -1, 64) }
	switch {
	case im == 0:
		return f(re)
	case re == 0:
		return f(im) + "i"
	case im < 0:
		return f(re) + "-" + f(-im) + "i"
	default:
		return f(re) + "+" + f(im) + "i"
	}
}

// ──────────────────────────── Matrix dump ────────────────────────────

// RenderMatrix lays out a complex matrix as aligned columns in a bordered box.
func RenderMatrix(title string, m mat.CMatrix) string {
	r, c := m.Dims()
	cells := make([][]string, r)
	width := cellMinW
	for i := 0; i < r; i++ {
		cells[i] = make([]string, c)
		for j := 0; j < c; j++ {
			s := formatComplex(m.At(i, j))
			cells[i][j] = s
			width = max(width, len(s))
		}
	}

	lines := make([]string, 0, r+1)
	lines = append(lines, titleStyle.Render(title))
	for i := 0; i < r; i++ {
		parts := make([]string, c)
		for j := 0; j < c; j++ {
			cell := padLeft(cells[i][j], width)
			if cells[i][j] == "0" {
				parts[j] = dimStyle.Render(cell)
			} else {
				parts[j] = entryStyle.Render(cell)
			}
		}
		lines = append(lines, strings.Join(parts, " "))
	}
	return matrixStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// RenderUnitary returns a printable dump of the cumulative unitary.
func (c *Circuit) RenderUnitary() string {
	title := fmt.Sprintf("U (%d qubits, %d ops)", c.numQubits, len(c.ops))
	return RenderMatrix(title, c.unitary)
}

// PrintUnitary writes RenderUnitary to w.
func (c *Circuit) PrintUnitary(w io.Writer) error {
	_, err := fmt.Fprintln(w, c.RenderUnitary())
	return err
}

// ──────────────────────────── State dump ────────────────────────────

// RenderState lists each basis state with its amplitude and probability,
// skipping amplitudes that round to zero.
func RenderState(numQubits int, amps []complex128) string {
	lines := []string{titleStyle.Render(fmt.Sprintf("state (%d qubits)", numQubits))}
	for k, amp := range amps {
		s := formatComplex(amp)
		if s == "0" {
			continue
		}
		p := real(amp)*real(amp) + imag(amp)*imag(amp)
		label := basisLabelStyle.Render(fmt.Sprintf("|%0*b⟩", numQubits, k))
		lines = append(lines, fmt.Sprintf("%s  %s  %s",
			label,
			entryStyle.Render(padLeft(s, cellMinW*2)),
			dimStyle.Render(fmt.Sprintf("p=%.*f", precision, p))))
	}
	return stateStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
