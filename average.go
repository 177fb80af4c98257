/*
 * average.go, part of gospectr.
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
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Averaged is a population-weighted ensemble spectrum: a single ordinate on
// the abscissa shared by the conformers it was averaged from.
type Averaged struct {
	Abscissa []float64
	Ordinate []float64
}

// Average reduces one scalar per conformer to its population-weighted sum.
// The two slices must have the same conformer count.
func Average(values, populations []float64) (float64, error) {
	if len(values) != len(populations) {
		return 0, fmt.Errorf("%w: %d values for %d populations",
			ErrInconsistentData, len(values), len(populations))
	}
	return floats.Dot(values, populations), nil
}

// AverageOrdinates reduces one vector per conformer (e.g. a spectral
// ordinate) to the population-weighted sum over the conformer axis. The
// weight of a conformer applies to its whole vector; all vectors must have
// equal length.
func AverageOrdinates(values [][]float64, populations []float64) ([]float64, error) {
	if len(values) != len(populations) {
		return nil, fmt.Errorf("%w: %d conformers for %d populations",
			ErrInconsistentData, len(values), len(populations))
	}
	if len(values) == 0 {
		return []float64{}, nil
	}
	width := len(values[0])
	out := make([]float64, width)
	for i, row := range values {
		if len(row) != width {
			return nil, fmt.Errorf("%w: conformer %d has %d points, conformer 0 has %d",
				ErrBadShape, i, len(row), width)
		}
		floats.AddScaled(out, populations[i], row)
	}
	return out, nil
}

// Average folds the per-conformer ordinates into a single ensemble spectrum
// weighted by populations, usually the output of energy.Populations.
func (s *Spectra) Average(populations []float64) (*Averaged, error) {
	ord, err := AverageOrdinates(s.Ordinates, populations)
	if err != nil {
		return nil, err
	}
	return &Averaged{
		Abscissa: append([]float64(nil), s.Abscissa...),
		Ordinate: ord,
	}, nil
}
