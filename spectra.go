/*
 * spectra.go, part of gospectr.
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
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Fitting selects the band shape used to spread discrete transitions over a
// continuous abscissa.
type Fitting int

const (
	Lorentzian Fitting = iota
	Gaussian
)

func (f Fitting) String() string {
	switch f {
	case Lorentzian:
		return "lorentzian"
	case Gaussian:
		return "gaussian"
	}
	return fmt.Sprintf("Fitting(%d)", int(f))
}

// bandFunc evaluates one conformer's summed band shape on an abscissa.
type bandFunc func(abscissa, positions, heights []float64, hwhm float64) ([]float64, error)

// fittings is the kernel dispatch table. Entries are fixed at init; an
// unlisted Fitting is a configuration error, never a silent default.
var fittings = map[Fitting]bandFunc{
	Lorentzian: LorentzianBands,
	Gaussian:   GaussianBands,
}

// Spectra holds one synthesized spectrum per conformer on a shared abscissa.
// len(Ordinates[i]) == len(Abscissa) for every conformer i.
type Spectra struct {
	Abscissa  []float64
	Ordinates [][]float64
}

// NConformers returns the number of conformers in the batch.
func (s *Spectra) NConformers() int { return len(s.Ordinates) }

func checkBands(positions, heights []float64, hwhm float64) error {
	if hwhm <= 0 || math.IsNaN(hwhm) {
		return fmt.Errorf("%w: hwhm must be positive, got %v", ErrBadInput, hwhm)
	}
	if len(positions) != len(heights) {
		return fmt.Errorf("%w: %d band positions for %d heights",
			ErrInconsistentData, len(positions), len(heights))
	}
	return nil
}

// LorentzianBands sums a Lorentzian band of half-width hwhm for every
// (position, height) transition, evaluated at each abscissa point. No
// transitions yield an all-zero ordinate.
func LorentzianBands(abscissa, positions, heights []float64, hwhm float64) ([]float64, error) {
	if err := checkBands(positions, heights, hwhm); err != nil {
		return nil, err
	}
	out := make([]float64, len(abscissa))
	for i, x := range abscissa {
		var y float64
		for k, p := range positions {
			d := x - p
			y += heights[k] * hwhm / (d*d + hwhm*hwhm)
		}
		out[i] = y / math.Pi
	}
	return out, nil
}

// GaussianBands is LorentzianBands with a Gaussian kernel of the same
// half-width at half-maximum.
func GaussianBands(abscissa, positions, heights []float64, hwhm float64) ([]float64, error) {
	if err := checkBands(positions, heights, hwhm); err != nil {
		return nil, err
	}
	sigma := hwhm / math.Sqrt(2*math.Ln2)
	norm := 1 / (sigma * math.Sqrt(2*math.Pi))
	denom := 2 * sigma * sigma
	out := make([]float64, len(abscissa))
	for i, x := range abscissa {
		var y float64
		for k, p := range positions {
			d := x - p
			y += heights[k] * math.Exp(-d*d/denom)
		}
		out[i] = y * norm
	}
	return out, nil
}

// Calculate synthesizes one spectrum per conformer by summing the chosen band
// shape over that conformer's transitions across the shared abscissa.
// positions and intensities are conformer-major and must agree on both axes.
// A conformer with no transitions gets an all-zero ordinate.
//
// Conformers are independent, so they are fitted in parallel; outputs land in
// per-conformer slots and the result does not depend on scheduling.
func Calculate(positions, intensities [][]float64, abscissa []float64, hwhm float64, fitting Fitting) (*Spectra, error) {
	fit, ok := fittings[fitting]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownFitting, fitting)
	}
	if hwhm <= 0 || math.IsNaN(hwhm) {
		return nil, fmt.Errorf("%w: hwhm must be positive, got %v", ErrBadInput, hwhm)
	}
	if len(positions) != len(intensities) {
		return nil, fmt.Errorf("%w: %d conformers of positions for %d of intensities",
			ErrInconsistentData, len(positions), len(intensities))
	}
	s := &Spectra{
		Abscissa:  append([]float64(nil), abscissa...),
		Ordinates: make([][]float64, len(positions)),
	}
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i := range positions {
		i := i
		g.Go(func() error {
			y, err := fit(abscissa, positions[i], intensities[i], hwhm)
			if err != nil {
				return fmt.Errorf("conformer %d: %w", i, err)
			}
			s.Ordinates[i] = y
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return s, nil
}

// CountImaginary counts, per conformer, the vibrational modes with
// non-positive frequency. Such modes indicate a non-minimum geometry.
func CountImaginary(frequencies [][]float64) []int {
	out := make([]int, len(frequencies))
	for i, confFreqs := range frequencies {
		for _, f := range confFreqs {
			if f <= 0 {
				out[i]++
			}
		}
	}
	return out
}

// FindImaginary masks the conformers that have at least one imaginary
// frequency, so callers can discard them before averaging.
func FindImaginary(frequencies [][]float64) []bool {
	out := make([]bool, len(frequencies))
	for i, confFreqs := range frequencies {
		for _, f := range confFreqs {
			if f <= 0 {
				out[i] = true
				break
			}
		}
	}
	return out
}
