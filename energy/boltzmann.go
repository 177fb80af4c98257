/*
 * boltzmann.go, part of gospectr.
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

// Package energy turns per-conformer energies into relative quantities and
// Boltzmann population weights, the statistical backbone of ensemble
// averaging. Energies are expected in hartree, as the calculations report
// them; relative energies come out in kcal/mol.
package energy

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	spectr "github.com/spectrlab/gospectr"
)

// RoomTemperature, in kelvin, is the temperature used by Gaussian-style
// thermochemistry and a sensible default for NewEnergies.
const RoomTemperature = 298.15

// Energies is one genre of energy for an ordered batch of conformers at a
// given absolute temperature. The constructor validates once, so methods
// never fail on temperature or non-finite values.
type Energies struct {
	Values []float64
	T      float64
}

// NewEnergies copies values into an Energies at temperature t. t must be
// positive, the batch non-empty and every value finite.
func NewEnergies(values []float64, t float64) (*Energies, error) {
	if t <= 0 || math.IsNaN(t) {
		return nil, fmt.Errorf("%w: temperature must be positive, got %v", spectr.ErrBadInput, t)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: no conformers", spectr.ErrBadInput)
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: energy %d is %v", spectr.ErrBadInput, i, v)
		}
	}
	return &Energies{Values: append([]float64(nil), values...), T: t}, nil
}

// Deltas returns the energies of the batch relative to its most stable
// conformer.
func (e *Energies) Deltas() []float64 { return Deltas(e.Values) }

// MinFactors returns the Boltzmann factors of the batch relative to its most
// stable conformer.
func (e *Energies) MinFactors() []float64 {
	f, _ := MinFactors(e.Values, e.T) // t and the batch were validated at construction
	return f
}

// Populations returns the equilibrium population weights of the batch.
func (e *Energies) Populations() ([]float64, error) {
	return Populations(e.Values, e.T)
}

// Deltas converts energies in hartree to energies relative to the lowest
// value of the batch, in kcal/mol. The minimum is an energy actually present
// in the batch, so exactly one delta (per tie) is zero and ordering is
// preserved. An empty batch yields an empty slice.
func Deltas(values []float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	low := floats.Min(values)
	for i, v := range values {
		out[i] = (v - low) * spectr.HartreeToKcalMol
	}
	return out
}

// MinFactors returns exp(-(v-min)/kT) for every energy v in hartree, at
// absolute temperature t. The most stable conformer's factor is exactly 1.
func MinFactors(values []float64, t float64) ([]float64, error) {
	if t <= 0 || math.IsNaN(t) {
		return nil, fmt.Errorf("%w: temperature must be positive, got %v", spectr.ErrBadInput, t)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: no conformers", spectr.ErrBadInput)
	}
	low := floats.Min(values)
	kt := spectr.Boltzmann * t
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = math.Exp(-(v - low) / kt)
	}
	return out, nil
}

// Populations normalizes the Boltzmann factors of the batch to sum 1,
// yielding the equilibrium fractional abundance of each conformer. The
// result is nonnegative and sums to 1; if every factor underflows to zero
// the weights are undefined and an ErrDegenerate is returned instead of NaN.
func Populations(values []float64, t float64) ([]float64, error) {
	factors, err := MinFactors(values, t)
	if err != nil {
		return nil, err
	}
	sum := floats.Sum(factors)
	if sum == 0 || math.IsNaN(sum) {
		return nil, fmt.Errorf("%w: all Boltzmann factors underflowed to zero", spectr.ErrDegenerate)
	}
	floats.Scale(1/sum, factors)
	return factors, nil
}
