/*
 * result.go, part of gospg
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

package spg

import (
	"fmt"

	"github.com/rmera/gospg/lattice"
	"github.com/rmera/gospg/symmetry"
	v3 "github.com/rmera/gospg/v3"
)

//Atom is an atom of a periodic structure, with fractional coordinates.
type Atom = symmetry.Atom

//Result is the space group found for a structure, together with the
//standardized description of the structure in that group's setting.
type Result struct {
	HallNumber int //1 to 530
	Number     int //International number, 1 to 230
	HallSymbol string
	HMSymbol   string
	//Origin is the origin shift from the catalog setting, in fractional
	//coordinates of the conventional cell.
	Origin v3.Vec
	//Cell is the idealized conventional cell, vectors as rows.
	Cell       *v3.Matrix
	Parameters lattice.Parameters
	//ChangeOfBasis takes the catalog setting to the conventional cell found.
	ChangeOfBasis v3.IMat3
	//TransformationMatrix T gives the conventional cell, before idealization,
	//as U·T, with U the input lattice with the vectors as columns.
	TransformationMatrix v3.Mat3
	//PrimitiveTransformation is the integer matrix whose columns are the
	//conventional cell vectors in the basis of the Delaunay-reduced
	//primitive cell.
	PrimitiveTransformation v3.IMat3
	//RotationMatrix rotates the conventional cell U·T onto the idealized Cell.
	RotationMatrix v3.Mat3
	//Atoms fill the conventional cell, in its fractional coordinates.
	Atoms []Atom
	//AsymmetricAtoms has one atom per orbit of the space group.
	AsymmetricAtoms []Atom
	PointGroup      symmetry.PointGroup
	Centering       symmetry.Centering
	//Operations of the space group in the conventional cell, centering
	//translations included.
	Operations []symmetry.Op
}

func (R *Result) String() string {
	return fmt.Sprintf("%d %s (Hall %d, %s)", R.Number, R.HMSymbol, R.HallNumber, R.HallSymbol)
}

//ConventionalLattice returns U·T, the conventional cell before
//idealization, with the vectors as columns.
func (R *Result) ConventionalLattice(L *v3.Matrix) (v3.Mat3, error) {
	U, err := v3.LatticeColumns(L)
	if err != nil {
		return v3.Mat3{}, errDecorate(err, "ConventionalLattice")
	}
	return U.Mul(R.TransformationMatrix), nil
}
