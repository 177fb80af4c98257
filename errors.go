/*
 * errors.go, part of gospectr.
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
	"errors"
	"fmt"
)

// Sentinel errors shared by all gospectr packages. Functions wrap them with
// fmt.Errorf("%w: ...") to add detail, so callers should match with errors.Is.
var (
	// ErrInconsistentData flags two otherwise well-formed batches that
	// describe different ensembles: conformer or atom counts that neither
	// match nor follow the one-against-many broadcast rule.
	ErrInconsistentData = errors.New("spectr: inconsistent conformer data")

	// ErrBadShape flags a single malformed argument: a ragged batch, a
	// non-square matrix, a packed triangle of non-triangular length, or an
	// ordinate that does not fit its abscissa.
	ErrBadShape = errors.New("spectr: bad shape")

	// ErrBadInput flags an argument whose value (not shape) is out of
	// domain, such as a non-positive temperature, half-width or window size.
	ErrBadInput = errors.New("spectr: invalid argument")

	// ErrUnknownFitting is returned when a Fitting value names no kernel.
	ErrUnknownFitting = errors.New("spectr: unknown fitting")

	// ErrUnknownGenre is returned for a spectra genre with no known
	// intensity conversion.
	ErrUnknownGenre = errors.New("spectr: unknown genre")

	// ErrDegenerate flags numerical degeneracy that would otherwise turn
	// into silent NaN/Inf: all Boltzmann factors underflowing to zero, or a
	// least-squares fit against a zero-variance subject.
	ErrDegenerate = errors.New("spectr: numerically degenerate data")
)

// BroadcastLen resolves the common length of two batch axes: equal lengths
// match, a length of 1 is stretched over the other side, anything else is an
// ErrInconsistentData. The what argument names the axis in the error message.
func BroadcastLen(a, b int, what string) (int, error) {
	switch {
	case a == b:
		return a, nil
	case a == 1:
		return b, nil
	case b == 1:
		return a, nil
	default:
		return 0, fmt.Errorf("%w: %s counts %d and %d", ErrInconsistentData, what, a, b)
	}
}

// BroadcastIndex maps a broadcast position back onto an axis of length n,
// i.e. it pins a length-1 axis to its only element.
func BroadcastIndex(i, n int) int {
	if n == 1 {
		return 0
	}
	return i
}
