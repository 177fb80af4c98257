/*
 * calibrate.go, part of gospectr.
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

// Calibration of a calculated spectrum against a reference, typically an
// experimental one: aligning two regular abscissae, trimming to their common
// range, and finding the offset and multiplicative factor that best match the
// subject to the reference.

package spectr

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// stepTol is the relative tolerance used when deciding that two abscissae
// share a step and that their starts differ by a whole number of steps.
const stepTol = 1e-6

// IdxOffset returns the index i such that a[i] coincides with b[0], for two
// abscissae with the same constant step. The result is negative when b starts
// before a. Different steps, or starts not separated by a whole number of
// steps, are an ErrInconsistentData.
func IdxOffset(a, b []float64) (int, error) {
	if len(a) < 2 {
		return 0, fmt.Errorf("%w: abscissa needs at least 2 points to have a step", ErrBadInput)
	}
	if len(b) == 0 {
		return 0, fmt.Errorf("%w: empty abscissa", ErrBadInput)
	}
	step := a[1] - a[0]
	if step == 0 {
		return 0, fmt.Errorf("%w: abscissa step is zero", ErrBadInput)
	}
	if len(b) >= 2 {
		bstep := b[1] - b[0]
		if math.Abs(bstep-step) > stepTol*math.Abs(step) {
			return 0, fmt.Errorf("%w: abscissa steps %v and %v differ",
				ErrInconsistentData, step, bstep)
		}
	}
	shift := (b[0] - a[0]) / step
	idx := math.Round(shift)
	if math.Abs(shift-idx) > stepTol*math.Max(1, math.Abs(shift)) {
		return 0, fmt.Errorf("%w: starts differ by %v steps, not a whole number",
			ErrInconsistentData, shift)
	}
	return int(idx), nil
}

// UnifyAbscissa trims two (abscissa, ordinate) pairs to the range they share.
// Both abscissae must have the same step and grid. The returned slices are
// fresh copies; inputs are never modified.
func UnifyAbscissa(ax, ay, bx, by []float64) (ux, uy, vx, vy []float64, err error) {
	if len(ax) != len(ay) {
		return nil, nil, nil, nil, fmt.Errorf("%w: ordinate of %d points on abscissa of %d",
			ErrBadShape, len(ay), len(ax))
	}
	if len(bx) != len(by) {
		return nil, nil, nil, nil, fmt.Errorf("%w: ordinate of %d points on abscissa of %d",
			ErrBadShape, len(by), len(bx))
	}
	off, err := IdxOffset(ax, bx)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	astart, bstart := off, 0
	if off < 0 {
		astart, bstart = 0, -off
	}
	n := min(len(ax)-astart, len(bx)-bstart)
	if n <= 0 {
		return nil, nil, nil, nil, fmt.Errorf("%w: abscissae do not overlap", ErrInconsistentData)
	}
	cp := func(s []float64, start int) []float64 {
		return append([]float64(nil), s[start:start+n]...)
	}
	return cp(ax, astart), cp(ay, astart), cp(bx, bstart), cp(by, bstart), nil
}

// FindOffset exhaustively searches integer shifts of subject against
// reference and returns the shift with the smallest mean squared residual
// over the overlap, along with that residual. Shifts are scanned by growing
// magnitude (negative before positive), so ties deterministically resolve to
// the smallest shift; a spectrum against itself always gives (0, 0).
func FindOffset(reference, subject []float64) (int, float64, error) {
	if len(reference) == 0 || len(subject) == 0 {
		return 0, 0, fmt.Errorf("%w: empty spectrum", ErrBadInput)
	}
	best, bestRes := 0, math.Inf(1)
	maxShift := max(len(reference), len(subject)) - 1
	try := func(s int) {
		lo := max(0, s)
		hi := min(len(reference), len(subject)+s)
		if hi <= lo {
			return
		}
		var sum float64
		for i := lo; i < hi; i++ {
			d := reference[i] - subject[i-s]
			sum += d * d
		}
		if res := sum / float64(hi-lo); res < bestRes {
			best, bestRes = s, res
		}
	}
	try(0)
	for s := 1; s <= maxShift; s++ {
		try(-s)
		try(s)
	}
	return best, bestRes, nil
}

// FindScaling fits, in closed form, the multiplicative factor that minimizes
// the squared residual between reference and factor*subject at fixed
// alignment. It returns the factor and the mean squared residual of the fit.
// An all-zero subject leaves the factor undefined and is an ErrDegenerate.
func FindScaling(reference, subject []float64) (factor, residual float64, err error) {
	if err := checkFit(reference, subject); err != nil {
		return 0, 0, err
	}
	_, factor = stat.LinearRegression(subject, reference, nil, true)
	if math.IsNaN(factor) || math.IsInf(factor, 0) {
		return 0, 0, fmt.Errorf("%w: subject spectrum is all zero", ErrDegenerate)
	}
	return factor, meanSqResidual(reference, subject, factor, 0), nil
}

// FindScalingOffset is FindScaling with an additional additive term: it fits
// reference ≈ factor*subject + offset.
func FindScalingOffset(reference, subject []float64) (factor, offset, residual float64, err error) {
	if err := checkFit(reference, subject); err != nil {
		return 0, 0, 0, err
	}
	offset, factor = stat.LinearRegression(subject, reference, nil, false)
	if math.IsNaN(factor) || math.IsInf(factor, 0) {
		return 0, 0, 0, fmt.Errorf("%w: subject spectrum has no variance", ErrDegenerate)
	}
	return factor, offset, meanSqResidual(reference, subject, factor, offset), nil
}

func checkFit(reference, subject []float64) error {
	if len(reference) != len(subject) {
		return fmt.Errorf("%w: reference of %d points against subject of %d",
			ErrInconsistentData, len(reference), len(subject))
	}
	if len(reference) == 0 {
		return fmt.Errorf("%w: empty spectrum", ErrBadInput)
	}
	return nil
}

func meanSqResidual(reference, subject []float64, factor, offset float64) float64 {
	var sum float64
	for i, r := range reference {
		d := r - factor*subject[i] - offset
		sum += d * d
	}
	return sum / float64(len(reference))
}
