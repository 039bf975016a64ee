/*
 * doc.go, part of gospg
 *
 *
 * Copyright 2024 Raul Mera  <rmeraa{at}academicos(dot)uta(dot)cl>
 *
 *
 *  This program is free software; you can redistribute it and/or modify
 *  it under the terms of the GNU Lesser General Public License as published by
 *  the Free Software Foundation; either version 3 of the License, or
 *  (at your option) any later version.
 *
 *  This program is distributed in the hope that it will be useful,
 *  but WITHOUT ANY WARRANTY; without even the implied warranty of
 *  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 *  GNU General Public License for more details.
 *
 *  You should have received a copy of the GNU General Public License along
 *  with this program; if not, write to the Free Software Foundation, Inc.,
 *  51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
 *
 *
 */

/*Package spg finds the space group of a periodic structure, given its
lattice (a 3x3 v3.Matrix with the cell vectors as rows) and its atoms, in
fractional coordinates.

	**Capabilities**

    Delaunay reduction of a lattice (ComputeDelaunayReducedCell).

    Smallest primitive cell of a structure (FindSmallestPrimitiveCell).

    The change of basis from the reduced primitive cell to the conventional
	one, and the centering of the latter (ConstructUpdatedBasis, FindCentering).

    The space group, as one of the 530 Hall settings of the catalog package,
	with the idealized conventional cell, the transformation and rotation
	that lead to it from the input, the atoms of the conventional cell and
	an asymmetric unit (FindSpaceGroup).

    Concurrent processing of many structures (FindSpaceGroups).

Partially occupied sites and sites shared by atoms of different species
can be matched loosely (WithPartialOccupancies, WithOverlappingAtomTypes).
All comparisons use one tolerance, set with WithPrecision.

A search that runs but finds nothing returns an error for which NotFound is
true. Malformed requests return errors that match ErrInvalidInput.

The structio package reads and writes structures (POSCAR and JSON, optionally
compressed), spgjson serializes the results, and cmd/gospg is a command line
tool on top of all that.
*/
package spg
