/*
 * average_test.go, part of gospectr.
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

func TestAverageScalars(t *testing.T) {
	got, err := Average([]float64{3, 12, 15}, []float64{0.5, 0.25, 0.25})
	require.NoError(t, err)
	assert.InDelta(t, 8.25, got, 1e-12)

	_, err = Average([]float64{3, 12, 15}, []float64{0.5, 0.5})
	assert.ErrorIs(t, err, ErrInconsistentData)
}

func TestAverageOrdinates(t *testing.T) {
	values := [][]float64{
		{1, 2, 3},
		{3, 2, 1},
	}
	got, err := AverageOrdinates(values, []float64{0.75, 0.25})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1.5, 2, 2.5}, got, 1e-12,
		"the conformer weight broadcasts over its whole ordinate")

	// a single fully-populated conformer averages to itself
	same, err := AverageOrdinates(values[:1], []float64{1})
	require.NoError(t, err)
	assert.Equal(t, values[0], same)

	_, err = AverageOrdinates(values, []float64{1})
	assert.ErrorIs(t, err, ErrInconsistentData)
	_, err = AverageOrdinates([][]float64{{1, 2}, {1}}, []float64{0.5, 0.5})
	assert.ErrorIs(t, err, ErrBadShape)
}

func TestSpectraAverage(t *testing.T) {
	s := &Spectra{
		Abscissa:  []float64{100, 110, 120},
		Ordinates: [][]float64{{0, 4, 0}, {2, 0, 2}},
	}
	avg, err := s.Average([]float64{0.5, 0.5})
	require.NoError(t, err)
	assert.Equal(t, s.Abscissa, avg.Abscissa)
	assert.InDeltaSlice(t, []float64{1, 2, 1}, avg.Ordinate, 1e-12)
}
