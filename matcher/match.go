/*
 * match.go, part of gospg
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

package matcher

import (
	"math"

	"github.com/rmera/gospg/catalog"
	"github.com/rmera/gospg/lattice"
	"github.com/rmera/gospg/symmetry"
	v3 "github.com/rmera/gospg/v3"
)

//ResidualTolerance is how far from an integer the solution of the origin
//equations may be in the directions they don't determine.
const ResidualTolerance = 0.01

var (
	//monoclinicBases are the changes of basis tried for monoclinic groups:
	//the cell choices with the unique axis kept, with and without reversing it.
	monoclinicBases = []v3.IMat3{
		v3.IntIdentity(),
		v3.IntCols(v3.IVec{-1, 0, -1}, v3.IVec{0, 1, 0}, v3.IVec{1, 0, 0}),
		v3.IntCols(v3.IVec{0, 0, 1}, v3.IVec{0, 1, 0}, v3.IVec{-1, 0, -1}),
		v3.IntCols(v3.IVec{0, 0, 1}, v3.IVec{0, -1, 0}, v3.IVec{1, 0, 0}),
		v3.IntCols(v3.IVec{-1, 0, -1}, v3.IVec{0, -1, 0}, v3.IVec{0, 0, 1}),
		v3.IntCols(v3.IVec{1, 0, 0}, v3.IVec{0, -1, 0}, v3.IVec{-1, 0, -1}),
	}
	//orthorhombicBases are the six permutations of the axes.
	orthorhombicBases = []v3.IMat3{
		v3.IntIdentity(),
		v3.IntCols(v3.IVec{0, 1, 0}, v3.IVec{0, 0, 1}, v3.IVec{1, 0, 0}),
		v3.IntCols(v3.IVec{0, 0, 1}, v3.IVec{1, 0, 0}, v3.IVec{0, 1, 0}),
		v3.IntCols(v3.IVec{0, 1, 0}, v3.IVec{1, 0, 0}, v3.IVec{0, 0, -1}),
		v3.IntCols(v3.IVec{1, 0, 0}, v3.IVec{0, 0, -1}, v3.IVec{0, 1, 0}),
		v3.IntCols(v3.IVec{0, 0, -1}, v3.IVec{0, 1, 0}, v3.IVec{1, 0, 0}),
	}
	//Pa-3 has a second setting related by a 4-fold rotation, which its
	//point group m-3 lacks.
	pa3Hall  = 501
	pa3Basis = v3.IntCols(v3.IVec{0, 0, 1}, v3.IVec{0, -1, 0}, v3.IVec{1, 0, 0})
)

//primitive basis of each centering (columns, times the denominator)
type toPrimitive struct {
	B   v3.IMat3
	den int
}

var primitiveBases = map[symmetry.Centering]toPrimitive{
	symmetry.Primitive:    {v3.IntIdentity(), 1},
	symmetry.BodyCenter:   {v3.IntCols(v3.IVec{-1, 1, 1}, v3.IVec{1, -1, 1}, v3.IVec{1, 1, -1}), 2},
	symmetry.FaceCenter:   {v3.IntCols(v3.IVec{0, 1, 1}, v3.IVec{1, 0, 1}, v3.IVec{1, 1, 0}), 2},
	symmetry.ACentered:    {v3.IntCols(v3.IVec{-2, 0, 0}, v3.IVec{0, -1, 1}, v3.IVec{0, 1, 1}), 2},
	symmetry.BCentered:    {v3.IntCols(v3.IVec{-1, 0, 1}, v3.IVec{0, -2, 0}, v3.IVec{1, 0, 1}), 2},
	symmetry.CCentered:    {v3.IntCols(v3.IVec{1, 1, 0}, v3.IVec{1, -1, 0}, v3.IVec{0, 0, -2}), 2},
	symmetry.Rhombohedral: {v3.IntCols(v3.IVec{2, 1, 1}, v3.IVec{-1, 1, 1}, v3.IVec{-1, -2, 1}), 3},
	symmetry.HexagonalH:   {v3.IntCols(v3.IVec{2, 1, 0}, v3.IVec{-1, 1, 0}, v3.IVec{0, 0, 1}), 3},
}

//Match is the result of matching a set of operations against the catalog.
type Match struct {
	HallNumber int
	//ChangeOfBasis takes the catalog setting to the cell of the operations.
	ChangeOfBasis v3.IMat3
	//Origin is the origin shift, in the cell of the operations.
	Origin v3.Vec
}

//candidateBases returns the changes of basis to try for the setting.
func candidateBases(S *catalog.SpaceGroup) []v3.IMat3 {
	switch S.Holohedry() {
	case lattice.Monoclinic:
		return monoclinicBases
	case lattice.Orthorhombic:
		return orthorhombicBases
	case lattice.Cubic:
		if S.HallNumber == pa3Hall {
			return []v3.IMat3{v3.IntIdentity(), pa3Basis}
		}
	}
	return []v3.IMat3{v3.IntIdentity()}
}

//FindMatch walks the standard settings of the 230 space groups, in
//order, and returns the first one that fits ops, the operations of
//a structure in its conventional cell with point group pg and centering c.
func FindMatch(ops []symmetry.Op, pg symmetry.PointGroup, c symmetry.Centering) (Match, bool) {
	observed := symmetry.FirstTranslations(ops)
	for n := 1; n <= catalog.NumSpaceGroups; n++ {
		S := catalog.Lookup(catalog.DefaultHall(n))
		if S.PointGroup.Number != pg.Number {
			continue
		}
		for _, cob := range candidateBases(S) {
			if o, ok := OriginShift(S, c, cob, observed); ok {
				return Match{HallNumber: S.HallNumber, ChangeOfBasis: cob, Origin: o}, true
			}
		}
	}
	return Match{}, false
}

//effectiveCentering returns the centering of the setting S after the change
//of basis cob, which may turn a face-centered setting into another face.
func effectiveCentering(S *catalog.SpaceGroup, cob v3.IMat3) symmetry.Centering {
	c := S.Centering
	switch c {
	case symmetry.ACentered, symmetry.BCentered, symmetry.CCentered:
		ct := S.Centering.Translations()
		t := cob.MulVec(ct[0].Scale(12))
		for i, x := range t {
			if int(math.Round(x))%12 == 0 {
				c = [3]symmetry.Centering{symmetry.ACentered, symmetry.BCentered, symmetry.CCentered}[i]
			}
		}
	}
	return c
}

//OriginShift returns the origin shift that takes the generators of the
//setting S, after the change of basis cob, onto the observed operations
//(a translation for each point operation, as given by
//symmetry.FirstTranslations). The equations (R-I)·o = t_obs - t_S are solved
//modulo the centered lattice, in its primitive basis, through the Smith
//normal form. It returns false if the centering differs, a generator has no
//observed counterpart, or the equations have no solution.
func OriginShift(S *catalog.SpaceGroup, c symmetry.Centering, cob v3.IMat3, observed map[v3.IMat3]v3.Vec) (v3.Vec, bool) {
	cinv, ok := cob.IntInv()
	if !ok {
		return v3.Vec{}, false
	}
	sc := effectiveCentering(S, cob)
	if sc != c {
		return v3.Vec{}, false
	}
	prim, ok := primitiveBases[sc]
	if !ok {
		return v3.Vec{}, false
	}
	B := prim.B
	//den·B^-1, which is an integer matrix
	P2X := scaledInverse(B, prim.den)
	A := NewIntMatrix(0, 3)
	y := make([]float64, 0, 3*len(S.Generators))
	for _, g := range S.Generators {
		Rl := cob.Mul(g.R).Mul(cinv)
		tobs, ok := observed[Rl]
		if !ok {
			return v3.Vec{}, false
		}
		tl := cob.MulVec(g.T.Float().Scale(1.0 / 12))
		d := tobs.Sub(tl)
		Ai := P2X.Mul(Rl.Sub(v3.IntIdentity())).Mul(B)
		for _, r := range Ai {
			row := make([]int, 3)
			for j, x := range r {
				row[j] = x / prim.den
			}
			A = append(A, row)
		}
		yi := P2X.MulVec(d)
		y = append(y, yi[0], yi[1], yi[2])
	}
	if len(A) == 0 {
		//no generators: P 1, any origin will do
		return v3.Vec{}, true
	}
	U, D, V := SmithNormalForm(A)
	w := U.MulVec(y)
	var z [3]float64
	for i, x := range w {
		if i >= 3 || D[i][i] == 0 {
			if math.Abs(x-math.Round(x)) > ResidualTolerance {
				return v3.Vec{}, false
			}
			continue
		}
		z[i] = x / float64(D[i][i])
	}
	op := V.MulVec(z[:])
	o := B.Float().Scale(1 / float64(prim.den)).MulVec(v3.Vec{op[0], op[1], op[2]})
	return cinv.MulVec(o).Fract(), true
}

//scaledInverse returns den·B^-1, for B/den a primitive basis of a centered
//lattice, so that the result is an integer matrix.
func scaledInverse(B v3.IMat3, den int) v3.IMat3 {
	adj, d := B.Adj(), B.Det()
	var ret v3.IMat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			ret[i][j] = den * adj[i][j] / d
		}
	}
	return ret
}
