/*
 * nmr.go, part of gospectr.
 *
 * Copyright 2023 The goSpectr Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Package nmr simulates first-order NMR multiplets: it reconstructs the
// symmetric spin-spin coupling matrix from the packed triangle the
// calculations report, strips the meaningless self-couplings, and splits each
// atom's shielding into the 2^K peaks its K coupling partners produce.
package nmr

import (
	"fmt"
	"math"

	spectr "github.com/spectrlab/gospectr"
)

// triangularBase returns N such that n == N*(N+1)/2, or an error when n is
// not a triangular number.
func triangularBase(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: negative length %d", spectr.ErrBadShape, n)
	}
	m := int((math.Sqrt(float64(8*n+1)) - 1) / 2)
	// guard against float truncation on both sides
	for m*(m+1)/2 > n {
		m--
	}
	for (m+1)*(m+2)/2 <= n {
		m++
	}
	if m*(m+1)/2 != n {
		return 0, fmt.Errorf("%w: %d is not a triangular number", spectr.ErrBadShape, n)
	}
	return m, nil
}

// UnpackOne rebuilds the symmetric N×N coupling matrix from its packed flat
// triangle of length N(N+1)/2, diagonal included. The flat sequence is read
// in the order the calculations print it: row-major over the lower triangle,
// so element k belongs to (i, j), j ≤ i, and is mirrored onto (j, i). A
// non-triangular length is an ErrBadShape.
func UnpackOne(packed []float64) ([][]float64, error) {
	n, err := triangularBase(len(packed))
	if err != nil {
		return nil, err
	}
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
	}
	k := 0
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			m[i][j] = packed[k]
			m[j][i] = packed[k]
			k++
		}
	}
	return m, nil
}

// Unpack is UnpackOne over a stack of packed rows, one per conformer. All
// rows must have the same (triangular) length.
func Unpack(packed [][]float64) ([][][]float64, error) {
	out := make([][][]float64, len(packed))
	for c, row := range packed {
		if c > 0 && len(row) != len(packed[0]) {
			return nil, fmt.Errorf("%w: packed row %d has length %d, row 0 has %d",
				spectr.ErrBadShape, c, len(row), len(packed[0]))
		}
		m, err := UnpackOne(row)
		if err != nil {
			return nil, err
		}
		out[c] = m
	}
	return out, nil
}

// Pack flattens a symmetric matrix back into the triangle UnpackOne reads,
// so Pack and UnpackOne round-trip exactly. Only the lower triangle
// (diagonal included) is read; the matrix must be square.
func Pack(matrix [][]float64) ([]float64, error) {
	n := len(matrix)
	out := make([]float64, 0, n*(n+1)/2)
	for i, row := range matrix {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns in a %d-row matrix",
				spectr.ErrBadShape, i, len(row), n)
		}
		out = append(out, row[:i+1]...)
	}
	return out, nil
}

// DropDiagonals removes element (i, i) from each row i of a square matrix,
// shrinking rows from N to N-1. Applied to a coupling matrix it discards the
// self-couplings before simulation. A 1×1 matrix yields one empty row.
func DropDiagonals(matrix [][]float64) ([][]float64, error) {
	n := len(matrix)
	out := make([][]float64, n)
	for i, row := range matrix {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns in a %d-row matrix",
				spectr.ErrBadShape, i, len(row), n)
		}
		r := make([]float64, 0, n-1)
		r = append(r, row[:i]...)
		r = append(r, row[i+1:]...)
		out[i] = r
	}
	return out, nil
}

// DropDiagonalsBatch is DropDiagonals over a stack of matrices, one per
// conformer.
func DropDiagonalsBatch(matrices [][][]float64) ([][][]float64, error) {
	out := make([][][]float64, len(matrices))
	for c, m := range matrices {
		d, err := DropDiagonals(m)
		if err != nil {
			return nil, fmt.Errorf("conformer %d: %w", c, err)
		}
		out[c] = d
	}
	return out, nil
}

// splitOrder gives the order in which an atom's coupling constants are
// applied, slowest-varying first: last partner down to the third, then the
// first, then the second. The resulting peak order is part of the API (it is
// what the calculations' multiplet tables produce) and is locked by tests.
func splitOrder(n int) []int {
	ord := make([]int, 0, n)
	for i := n - 1; i >= 2; i-- {
		ord = append(ord, i)
	}
	switch {
	case n >= 2:
		ord = append(ord, 0, 1)
	case n == 1:
		ord = append(ord, 0)
	}
	return ord
}

// splitLines expands each starting line through every coupling constant:
// a line at p splits into p+J/2 and p-J/2 with equal weight, J = 0 included,
// so K constants turn one line into exactly 2^K peaks. Lines are expanded
// independently and concatenated; coincident peaks are never merged. Output
// grows as 2^K and is deliberately uncapped: callers bound K.
func splitLines(lines, couplings []float64) []float64 {
	out := make([]float64, 0, len(lines)<<uint(min(len(couplings), 16)))
	for _, p := range lines {
		peaks := []float64{p}
		for _, ci := range splitOrder(len(couplings)) {
			half := couplings[ci] / 2
			next := make([]float64, 0, 2*len(peaks))
			for _, q := range peaks {
				next = append(next, q+half, q-half)
			}
			peaks = next
		}
		out = append(out, peaks...)
	}
	return out
}

// coupleLines is the broadcasting core shared by all Couple variants.
// shieldings is conformer × atom × starting line, couplings is conformer ×
// atom × coupling constant. On the conformer and atom axes the counts must
// match or one side must be 1; per-atom coupling and line counts are free.
func coupleLines(shieldings, couplings [][][]float64) ([][][]float64, error) {
	nconf, err := spectr.BroadcastLen(len(shieldings), len(couplings), "conformer")
	if err != nil {
		return nil, err
	}
	out := make([][][]float64, nconf)
	for c := 0; c < nconf; c++ {
		atoms := shieldings[spectr.BroadcastIndex(c, len(shieldings))]
		consts := couplings[spectr.BroadcastIndex(c, len(couplings))]
		natoms, err := spectr.BroadcastLen(len(atoms), len(consts), "atom")
		if err != nil {
			return nil, fmt.Errorf("conformer %d: %w", c, err)
		}
		out[c] = make([][]float64, natoms)
		for a := 0; a < natoms; a++ {
			lines := atoms[spectr.BroadcastIndex(a, len(atoms))]
			cs := consts[spectr.BroadcastIndex(a, len(consts))]
			out[c][a] = splitLines(lines, cs)
		}
	}
	return out, nil
}

// wrapLines lifts one position per atom into the general one-or-more-lines
// per atom form.
func wrapLines(shieldings [][]float64) [][][]float64 {
	out := make([][][]float64, len(shieldings))
	for c, atoms := range shieldings {
		out[c] = make([][]float64, len(atoms))
		for a, p := range atoms {
			out[c][a] = []float64{p}
		}
	}
	return out
}

func flatten(peaks [][][]float64) [][]float64 {
	out := make([][]float64, len(peaks))
	for c, atoms := range peaks {
		var total int
		for _, p := range atoms {
			total += len(p)
		}
		flat := make([]float64, 0, total)
		for _, p := range atoms {
			flat = append(flat, p...)
		}
		out[c] = flat
	}
	return out
}

// Couple splits each atom's shielding (one starting position per atom) by
// that atom's coupling constants and returns, per conformer, all peaks
// concatenated atom-major into one flat sequence.
func Couple(shieldings [][]float64, couplings [][][]float64) ([][]float64, error) {
	peaks, err := coupleLines(wrapLines(shieldings), couplings)
	if err != nil {
		return nil, err
	}
	return flatten(peaks), nil
}

// CoupleSeparate is Couple keeping one peak sequence per atom instead of
// flattening.
func CoupleSeparate(shieldings [][]float64, couplings [][][]float64) ([][][]float64, error) {
	return coupleLines(wrapLines(shieldings), couplings)
}

// CoupleLines is Couple for atoms that already carry several sub-lines, e.g.
// from a previous coupling pass. Each sub-line is split independently and the
// results concatenated.
func CoupleLines(shieldings, couplings [][][]float64) ([][]float64, error) {
	peaks, err := coupleLines(shieldings, couplings)
	if err != nil {
		return nil, err
	}
	return flatten(peaks), nil
}

// CoupleLinesSeparate is CoupleLines keeping one peak sequence per atom.
func CoupleLinesSeparate(shieldings, couplings [][][]float64) ([][][]float64, error) {
	return coupleLines(shieldings, couplings)
}
