/*
 * doc.go, part of gospectr.
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

// Package spectr derives physically meaningful quantities from per-conformer
// quantum-chemical results: continuous spectra synthesized from discrete
// transitions, population-weighted ensemble averages, and offset/scale
// calibration of a theoretical spectrum against a reference.
//
// The package, together with its subpackages energy, intensity, nmr and geom,
// is a pure numeric engine. Every function is a deterministic, stateless
// transformation of its arguments; nothing here touches files, the network or
// the environment, and all operations are safe for concurrent use on
// independent inputs. Reading calculation output into plain slices, validating
// batches of conformers and writing reports are left to the caller.
//
// Per-conformer data is passed as nested slices with the conformer as the
// leading axis. Where two batches meet, their conformer counts must agree or
// one of them must be 1 (and is then shared across the other); any other
// mismatch is reported as ErrInconsistentData. This rule is implemented once,
// in BroadcastLen, and used throughout.
package spectr
