/*
 * physics.go, part of gospectr.
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

// Physical constants used across the library. They are process-wide,
// immutable configuration: everything that depends on a unit system depends
// on it only through these names.
const (
	// HartreeToKcalMol converts an energy in hartree to kcal/mol.
	HartreeToKcalMol = 627.509474

	// Boltzmann is the Boltzmann constant in hartree per kelvin, the unit
	// in which relative conformer energies arrive from the calculations.
	Boltzmann = 3.166811563e-6

	// BoltzmannKcalMol is the same constant in kcal/(mol·K), handy when
	// working from energies already converted with HartreeToKcalMol.
	BoltzmannKcalMol = Boltzmann * HartreeToKcalMol
)
