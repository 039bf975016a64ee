/*
 * cell.go, part of gospg
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

package lattice

import (
	"fmt"
	"math"

	v3 "github.com/rmera/gospg/v3"
)

//Cell is a lattice with its Delaunay-reduced form and its parameters.
type Cell struct {
	Lattice v3.Mat3 //vectors as columns
	Reduced v3.Mat3
	Parameters
	Volume float64
}

//NewCell builds the Cell for U. It returns false if U is degenerate or its
//reduction doesn't converge.
func NewCell(U v3.Mat3, tol v3.Tol) (Cell, bool) {
	if tol.Zero(U.Det()) {
		return Cell{}, false
	}
	D, ok := Delaunay(U, tol)
	if !ok {
		return Cell{}, false
	}
	return Cell{Lattice: U, Reduced: D, Parameters: Params(U), Volume: Volume(U)}, true
}

//Degrees returns the angles in degrees.
func (P Parameters) Degrees() (alpha, beta, gamma float64) {
	return P.Alpha * 180 / math.Pi, P.Beta * 180 / math.Pi, P.Gamma * 180 / math.Pi
}

func (P Parameters) String() string {
	al, be, ga := P.Degrees()
	return fmt.Sprintf("a=%.5f b=%.5f c=%.5f alpha=%.3f beta=%.3f gamma=%.3f", P.A, P.B, P.C, al, be, ga)
}
