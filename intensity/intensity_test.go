/*
 * intensity_test.go, part of gospectr.
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

package intensity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	spectr "github.com/spectrlab/gospectr"
)

func TestConversionsShapeAndLinearity(t *testing.T) {
	values := []float64{1.5, 0, 2.25, 10}
	positions := []float64{200, 450, 1100, 1730}
	for genre, conv := range map[SpectraGenre]Converter{
		IR: DipToIR, VCD: RotToVCD, UV: OscToUV,
		ECD: RotToECD, Raman: RamanxToRaman, ROA: RoaxToROA,
	} {
		out, err := conv(values, positions)
		require.NoError(t, err, genre)
		require.Len(t, out, len(values), genre)
		assert.Zero(t, out[1], "%v: zero response stays zero", genre)

		doubled := []float64{3, 0, 4.5, 20}
		out2, err := conv(doubled, positions)
		require.NoError(t, err, genre)
		for i := range out {
			assert.Equal(t, 2*out[i], out2[i], "%v: conversion is element-wise linear", genre)
		}
	}
	// inputs are never mutated
	assert.Equal(t, []float64{1.5, 0, 2.25, 10}, values)
	assert.Equal(t, []float64{200, 450, 1100, 1730}, positions)
}

func TestConversionsScaleByPosition(t *testing.T) {
	one := []float64{1, 1}
	pos := []float64{100, 300}
	for _, conv := range []Converter{DipToIR, RotToVCD, RotToECD, OscToUV} {
		out, err := conv(one, pos)
		require.NoError(t, err)
		assert.InDelta(t, 3.0, out[1]/out[0], 1e-12, "intensity grows with band position")
	}
	for _, conv := range []Converter{RamanxToRaman, RoaxToROA} {
		out, err := conv(one, pos)
		require.NoError(t, err)
		assert.Equal(t, out[0], out[1], "activities are position-independent")
	}
}

func TestConversionLengthMismatch(t *testing.T) {
	_, err := DipToIR([]float64{1, 2, 3}, []float64{100, 200})
	assert.ErrorIs(t, err, spectr.ErrInconsistentData)
}

func TestDefaultSpectraBars(t *testing.T) {
	for genre, bar := range map[SpectraGenre]Genre{
		IR: Dip, VCD: Rot, UV: VOsc, ECD: VRot, Raman: Raman1, ROA: ROA1,
	} {
		got, err := DefaultSpectraBars(genre)
		require.NoError(t, err, genre)
		assert.Equal(t, bar, got, genre)
	}
	_, err := DefaultSpectraBars(SpectraGenre(99))
	assert.ErrorIs(t, err, spectr.ErrUnknownGenre)
}

func TestCalculateDispatch(t *testing.T) {
	values := []float64{2, 4}
	positions := []float64{500, 1500}
	got, err := Calculate(IR, values, positions)
	require.NoError(t, err)
	want, err := DipToIR(values, positions)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = Calculate(SpectraGenre(99), values, positions)
	assert.ErrorIs(t, err, spectr.ErrUnknownGenre)
}
