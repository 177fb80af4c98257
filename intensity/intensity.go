/*
 * intensity.go, part of gospectr.
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

// Package intensity converts the raw response properties reported by the
// calculations (dipole and rotational strengths, oscillator strengths, Raman
// and ROA activities) into the intensities that spectra are reported in.
// All conversions are element-wise, shape-preserving and leave their inputs
// untouched.
package intensity

import (
	"fmt"

	spectr "github.com/spectrlab/gospectr"
)

// Unit-conversion factors. Dipole and vibrational rotational strengths
// arrive in 1e-44 esu²cm², electronic rotational strengths in 1e-40 esu²cm²,
// positions in cm⁻¹; intensities come out as molar absorption coefficients
// (dm³ mol⁻¹ cm⁻¹) or their dichroism differences.
const (
	dipToIRFactor  = 1.0 / 91.86
	rotToVCDFactor = 1.0 / 22960.0
	rotToECDFactor = 1.0 / 22.96
	oscToUVFactor  = 1.0 / 4319.0
)

// Genre identifies a raw response property ("bar" genre) as it comes from
// the extraction layer.
type Genre int

const (
	Dip    Genre = iota // dipole strength, vibrational
	Rot                 // rotational strength, vibrational
	VOsc                // oscillator strength, electronic (velocity form)
	VRot                // rotational strength, electronic (velocity form)
	Raman1              // Raman activity, backscattered
	ROA1                // ROA intensity difference, backscattered
)

func (g Genre) String() string {
	switch g {
	case Dip:
		return "dip"
	case Rot:
		return "rot"
	case VOsc:
		return "vosc"
	case VRot:
		return "vrot"
	case Raman1:
		return "raman1"
	case ROA1:
		return "roa1"
	}
	return fmt.Sprintf("Genre(%d)", int(g))
}

// SpectraGenre identifies a kind of spectrum to synthesize.
type SpectraGenre int

const (
	IR SpectraGenre = iota
	VCD
	UV
	ECD
	Raman
	ROA
)

func (g SpectraGenre) String() string {
	switch g {
	case IR:
		return "ir"
	case VCD:
		return "vcd"
	case UV:
		return "uv"
	case ECD:
		return "ecd"
	case Raman:
		return "raman"
	case ROA:
		return "roa"
	}
	return fmt.Sprintf("SpectraGenre(%d)", int(g))
}

// Converter turns one conformer's raw response values at the given band
// positions into reporting-unit intensities.
type Converter func(values, positions []float64) ([]float64, error)

// converters maps each spectrum genre to its conversion. Fixed at init;
// a genre missing here cannot be synthesized.
var converters = map[SpectraGenre]Converter{
	IR:    DipToIR,
	VCD:   RotToVCD,
	UV:    OscToUV,
	ECD:   RotToECD,
	Raman: RamanxToRaman,
	ROA:   RoaxToROA,
}

// spectraBars maps each spectrum genre to the bar genre whose values it is
// synthesized from.
var spectraBars = map[SpectraGenre]Genre{
	IR:    Dip,
	VCD:   Rot,
	UV:    VOsc,
	ECD:   VRot,
	Raman: Raman1,
	ROA:   ROA1,
}

// DefaultSpectraBars names the bar genre needed to calculate a spectrum of
// the given genre.
func DefaultSpectraBars(genre SpectraGenre) (Genre, error) {
	bar, ok := spectraBars[genre]
	if !ok {
		return 0, fmt.Errorf("%w: %v", spectr.ErrUnknownGenre, genre)
	}
	return bar, nil
}

// Calculate converts raw values at positions into the intensities of the
// given spectrum genre, dispatching to the matching conversion function.
func Calculate(genre SpectraGenre, values, positions []float64) ([]float64, error) {
	conv, ok := converters[genre]
	if !ok {
		return nil, fmt.Errorf("%w: %v", spectr.ErrUnknownGenre, genre)
	}
	return conv(values, positions)
}

func scaled(values, positions []float64, factor float64, byPosition bool) ([]float64, error) {
	if len(values) != len(positions) {
		return nil, fmt.Errorf("%w: %d values for %d positions",
			spectr.ErrInconsistentData, len(values), len(positions))
	}
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v * factor
		if byPosition {
			out[i] *= positions[i]
		}
	}
	return out, nil
}

// DipToIR converts dipole strengths at the given wavenumbers into IR
// absorption intensities.
func DipToIR(values, positions []float64) ([]float64, error) {
	return scaled(values, positions, dipToIRFactor, true)
}

// RotToVCD converts vibrational rotational strengths into VCD intensities.
func RotToVCD(values, positions []float64) ([]float64, error) {
	return scaled(values, positions, rotToVCDFactor, true)
}

// RotToECD converts electronic rotational strengths into ECD intensities.
func RotToECD(values, positions []float64) ([]float64, error) {
	return scaled(values, positions, rotToECDFactor, true)
}

// OscToUV converts oscillator strengths at the given transition energies
// into UV absorption intensities.
func OscToUV(values, positions []float64) ([]float64, error) {
	return scaled(values, positions, oscToUVFactor, true)
}

// RamanxToRaman passes Raman activities through as intensities. The
// calculations already report them in the unit spectra are drawn in; the
// conversion exists so every bar genre goes through the same dispatch.
func RamanxToRaman(values, positions []float64) ([]float64, error) {
	return scaled(values, positions, 1, false)
}

// RoaxToROA is RamanxToRaman for ROA intensity differences.
func RoaxToROA(values, positions []float64) ([]float64, error) {
	return scaled(values, positions, 1, false)
}
