package qunitary

import "gonum.org/v1/gonum/mat"

// The kernels below left-multiply the cumulative unitary in place without
// materialising the 2^n×2^n expansion. Left-multiplying by a gate on qubit q
// only mixes the rows whose indices differ in bit q, so each kernel walks
// those row groups and applies the small gate across every column.

// applyRows1 computes u ← Expand(g, q, n)·u for a 2×2 gate g.
func applyRows1(u, g *mat.CDense, q int) {
	raw := u.RawCMatrix()
	g00, g01 := g.At(0, 0), g.At(0, 1)
	g10, g11 := g.At(1, 0), g.At(1, 1)
	bit := 1 << q

	if g01 == 0 && g10 == 0 {
		for i := 0; i < raw.Rows; i++ {
			f := g00
			if i&bit != 0 {
				f = g11
			}
			if f == 1 {
				continue
			}
			row := raw.Data[i*raw.Stride : i*raw.Stride+raw.Cols]
			for k := range row {
				row[k] *= f
			}
		}
		return
	}

	for i := 0; i < raw.Rows; i++ {
		if i&bit != 0 {
			continue
		}
		j := i | bit
		ri := raw.Data[i*raw.Stride : i*raw.Stride+raw.Cols]
		rj := raw.Data[j*raw.Stride : j*raw.Stride+raw.Cols]
		for k := range ri {
			a, b := ri[k], rj[k]
			ri[k] = g00*a + g01*b
			rj[k] = g10*a + g11*b
		}
	}
}

// applyRows2 computes u ← Expand(g, lo, n)·u for a 4×4 gate g acting on
// qubits lo and lo+1, indexed locally as bit(lo) + 2*bit(lo+1).
func applyRows2(u, g *mat.CDense, lo int) {
	raw := u.RawCMatrix()
	b0 := 1 << lo
	b1 := 1 << (lo + 1)

	var gm [4][4]complex128
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			gm[r][c] = g.At(r, c)
		}
	}

	var rows [4][]complex128
	var v [4]complex128
	for base := 0; base < raw.Rows; base++ {
		if base&(b0|b1) != 0 {
			continue
		}
		for m, idx := range [4]int{base, base | b0, base | b1, base | b0 | b1} {
			rows[m] = raw.Data[idx*raw.Stride : idx*raw.Stride+raw.Cols]
		}
		for k := 0; k < raw.Cols; k++ {
			for m := 0; m < 4; m++ {
				v[m] = rows[m][k]
			}
			for m := 0; m < 4; m++ {
				rows[m][k] = gm[m][0]*v[0] + gm[m][1]*v[1] + gm[m][2]*v[2] + gm[m][3]*v[3]
			}
		}
	}
}
