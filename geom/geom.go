/*
 * geom.go, part of gospectr.
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

// Package geom provides RMSD-optimal rigid superposition of 3-D point sets
// (single molecules or conformer stacks) and small series utilities. Point
// sets are n×3 matrices with one atom per row.
package geom

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	spectr "github.com/spectrlab/gospectr"
)

func checkPoints(m *mat.Dense, name string) (int, error) {
	r, c := m.Dims()
	if c != 3 {
		return 0, fmt.Errorf("%w: %s has %d columns, point sets are n×3", spectr.ErrBadShape, name, c)
	}
	return r, nil
}

// KabschRotate rotates the zero-centered point set a onto the zero-centered
// reference b so that their RMSD is minimal, and returns the rotated copy of
// a. The rotation comes from the singular value decomposition of the
// cross-covariance aᵀb, with the sign of the smallest singular direction
// flipped when the bare solution is a reflection, so the applied operator is
// always a proper rotation (determinant +1). Centering is the caller's job:
// subtract each set's own centroid first (see Center).
func KabschRotate(a, b *mat.Dense) (*mat.Dense, error) {
	ra, err := checkPoints(a, "subject")
	if err != nil {
		return nil, err
	}
	rb, err := checkPoints(b, "reference")
	if err != nil {
		return nil, err
	}
	if ra != rb {
		return nil, fmt.Errorf("%w: %d points against reference of %d",
			spectr.ErrInconsistentData, ra, rb)
	}
	var cov mat.Dense
	cov.Mul(a.T(), b)
	var svd mat.SVD
	if ok := svd.Factorize(&cov, mat.SVDFull); !ok {
		return nil, fmt.Errorf("%w: SVD of cross-covariance failed to converge", spectr.ErrDegenerate)
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	// det(VUᵀ) < 0 means the least-squares operator is a reflection;
	// flipping the weakest singular direction restores a proper rotation.
	var vut mat.Dense
	vut.Mul(&v, u.T())
	sign := 1.0
	if mat.Det(&vut) < 0 {
		sign = -1
	}
	swap := mat.NewDiagDense(3, []float64{1, 1, sign})
	var rot mat.Dense
	rot.Mul(&u, swap)
	var rotation mat.Dense
	rotation.Mul(&rot, v.T())
	out := mat.NewDense(ra, 3, nil)
	out.Mul(a, &rotation)
	return out, nil
}

// KabschRotateStack superimposes a stack of zero-centered point sets onto a
// stack of references, conformer by conformer. A single reference (len(b)
// == 1) is shared across the whole stack; any other count mismatch is an
// ErrInconsistentData.
func KabschRotateStack(a, b []*mat.Dense) ([]*mat.Dense, error) {
	n, err := spectr.BroadcastLen(len(a), len(b), "conformer")
	if err != nil {
		return nil, err
	}
	out := make([]*mat.Dense, n)
	for i := 0; i < n; i++ {
		rotated, err := KabschRotate(
			a[spectr.BroadcastIndex(i, len(a))],
			b[spectr.BroadcastIndex(i, len(b))],
		)
		if err != nil {
			return nil, fmt.Errorf("conformer %d: %w", i, err)
		}
		out[i] = rotated
	}
	return out, nil
}

// Center returns a copy of the point set translated so its centroid sits at
// the origin, together with the original centroid. KabschRotate expects its
// inputs centered this way.
func Center(points *mat.Dense) (*mat.Dense, []float64, error) {
	n, err := checkPoints(points, "points")
	if err != nil {
		return nil, nil, err
	}
	if n == 0 {
		return nil, nil, fmt.Errorf("%w: empty point set", spectr.ErrBadInput)
	}
	centroid := make([]float64, 3)
	for i := 0; i < n; i++ {
		for j := 0; j < 3; j++ {
			centroid[j] += points.At(i, j)
		}
	}
	for j := range centroid {
		centroid[j] /= float64(n)
	}
	out := mat.NewDense(n, 3, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < 3; j++ {
			out.Set(i, j, points.At(i, j)-centroid[j])
		}
	}
	return out, centroid, nil
}

// Windowed returns every contiguous length-size window of series, in order:
// a series of length L yields exactly L-size+1 windows (none when size > L).
// The windows are fresh copies. size must be positive.
func Windowed(series []float64, size int) ([][]float64, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: window size must be positive, got %d", spectr.ErrBadInput, size)
	}
	n := len(series) - size + 1
	if n < 0 {
		n = 0
	}
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		out[i] = append([]float64(nil), series[i:i+size]...)
	}
	return out, nil
}
