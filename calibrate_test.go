/*
 * calibrate_test.go, part of gospectr.
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

package spectr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdxOffset(t *testing.T) {
	a := linspace(1000, 2, 50)
	b := linspace(1010, 2, 40)
	off, err := IdxOffset(a, b)
	require.NoError(t, err)
	assert.Equal(t, 5, off)

	off, err = IdxOffset(b, a)
	require.NoError(t, err)
	assert.Equal(t, -5, off)

	_, err = IdxOffset(a, linspace(1010, 3, 40))
	assert.ErrorIs(t, err, ErrInconsistentData, "different steps")
	_, err = IdxOffset(a, linspace(1011, 2, 40))
	assert.ErrorIs(t, err, ErrInconsistentData, "off-grid start")
	_, err = IdxOffset([]float64{1}, b)
	assert.ErrorIs(t, err, ErrBadInput)
	_, err = IdxOffset(a, nil)
	assert.ErrorIs(t, err, ErrBadInput, "empty second abscissa")
	_, err = IdxOffset(a, []float64{})
	assert.ErrorIs(t, err, ErrBadInput)
}

func TestUnifyAbscissa(t *testing.T) {
	ax := linspace(0, 1, 10)
	ay := linspace(100, 1, 10)
	bx := linspace(4, 1, 10)
	by := linspace(200, 1, 10)
	ux, uy, vx, vy, err := UnifyAbscissa(ax, ay, bx, by)
	require.NoError(t, err)
	assert.Equal(t, linspace(4, 1, 6), ux)
	assert.Equal(t, linspace(104, 1, 6), uy)
	assert.Equal(t, ux, vx, "both pairs end up on the shared range")
	assert.Equal(t, linspace(200, 1, 6), vy)

	_, _, _, _, err = UnifyAbscissa(ax, ay, linspace(50, 1, 10), by)
	assert.ErrorIs(t, err, ErrInconsistentData, "no overlap")
	_, _, _, _, err = UnifyAbscissa(ax, ay[:5], bx, by)
	assert.ErrorIs(t, err, ErrBadShape)
	_, _, _, _, err = UnifyAbscissa(ax, ay, nil, nil)
	assert.ErrorIs(t, err, ErrBadInput, "empty second pair")
}

func TestFindOffsetSelf(t *testing.T) {
	s := []float64{0, 1, 4, 9, 16, 9, 4, 1, 0, 2}
	shift, res, err := FindOffset(s, s)
	require.NoError(t, err)
	assert.Zero(t, shift, "a spectrum against itself needs no shift")
	assert.Zero(t, res)
}

func TestFindOffsetKnownShift(t *testing.T) {
	ref := []float64{0, 1, 4, 9, 16, 25, 36, 49, 64, 81}
	subj := ref[3:] // subject starts three points into the reference
	shift, res, err := FindOffset(ref, subj)
	require.NoError(t, err)
	assert.Equal(t, 3, shift)
	assert.Zero(t, res)

	// shifting the other way flips the sign
	shift, res, err = FindOffset(subj, ref)
	require.NoError(t, err)
	assert.Equal(t, -3, shift)
	assert.Zero(t, res)

	_, _, err = FindOffset(nil, subj)
	assert.ErrorIs(t, err, ErrBadInput)
}

func TestFindOffsetDeterministic(t *testing.T) {
	ref := []float64{1, 1, 1, 1}
	shift, _, err := FindOffset(ref, ref)
	require.NoError(t, err)
	assert.Zero(t, shift, "ties resolve to the smallest shift")
}

func TestFindScaling(t *testing.T) {
	ref := []float64{2, 4, 8, 6, 2}
	subj := []float64{1, 2, 4, 3, 1}
	factor, res, err := FindScaling(ref, subj)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, factor, 1e-12)
	assert.InDelta(t, 0.0, res, 1e-12)

	_, _, err = FindScaling(ref, subj[:3])
	assert.ErrorIs(t, err, ErrInconsistentData)
	_, _, err = FindScaling(ref, []float64{0, 0, 0, 0, 0})
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestFindScalingOffset(t *testing.T) {
	subj := []float64{1, 2, 4, 3, 1}
	ref := make([]float64, len(subj))
	for i, v := range subj {
		ref[i] = 2.5*v + 7
	}
	factor, offset, res, err := FindScalingOffset(ref, subj)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, factor, 1e-9)
	assert.InDelta(t, 7.0, offset, 1e-9)
	assert.InDelta(t, 0.0, res, 1e-9)

	_, _, _, err = FindScalingOffset(ref, []float64{3, 3, 3, 3, 3})
	assert.ErrorIs(t, err, ErrDegenerate, "constant subject has no variance")
}
