/*
 * doc.go, part of gospg.
 *
 * Copyright 2015 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 * Gochem is developed at the laboratory for instruction in Swedish, Department of Chemistry,
 * University of Helsinki, Finland.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*Package v3 implements the linear algebra used by goSpg. The Matrix type
is a row-major Nx3 matrix based on gonum's (gonum.org/v1/gonum) Dense type. A
lattice is a 3x3 Matrix with the cell vectors a, b and c as rows.

The fixed-size types Vec, Mat3 and IMat3 are used in the symmetry search, and
Tol holds all the tolerant comparisons.
*/
package v3
