/*
 * synthetic_test.go, part of gospg
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
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/rmera/gospg/catalog"
	"github.com/rmera/gospg/symmetry"
	v3 "github.com/rmera/gospg/v3"
)

//syntheticLattice returns a random lattice (vectors as rows) whose metric
//is invariant under the point operations of S.
func syntheticLattice(S *catalog.SpaceGroup, rnd *rand.Rand) *v3.Matrix {
	var A v3.Mat3
	for i := range A {
		for j := range A[i] {
			A[i][j] = rnd.Float64()*2 - 1
		}
	}
	G0 := A.T().Mul(A)
	for i := 0; i < 3; i++ {
		G0[i][i] += 30
	}
	var G v3.Mat3
	for _, o := range S.Ops {
		R := o.R.Float()
		X := R.T().Mul(G0).Mul(R)
		for i := range G {
			for j := range G[i] {
				G[i][j] += X[i][j]
			}
		}
	}
	G = G.Scale(1 / float64(len(S.Ops)))
	sym := mat.NewSymDense(3, nil)
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			sym.SetSym(i, j, (G[i][j]+G[j][i])/2)
		}
	}
	var chol mat.Cholesky
	if !chol.Factorize(sym) {
		panic("synthetic metric is not positive definite")
	}
	var L mat.TriDense
	chol.LTo(&L)
	//G = L·Lt, so the rows of L are vectors with metric G
	var rows v3.Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			rows[i][j] = L.At(i, j)
		}
	}
	return v3.FromMat3(rows)
}

//syntheticAtoms returns the orbits of n random positions under the
//operations of S, the k-th orbit with Type k, all shifted by a random
//vector.
func syntheticAtoms(S *catalog.SpaceGroup, n int, rnd *rand.Rand) []Atom {
	ops := S.Operations()
	atoms := make([]Atom, 0, n*len(ops))
	for k := 0; k < n; k++ {
		p := v3.Vec{rnd.Float64(), rnd.Float64(), rnd.Float64()}
		for _, q := range symmetry.SymmetricPositions(p, ops, 1e-6) {
			atoms = append(atoms, Atom{Position: q, Type: k})
		}
	}
	return shiftAtoms(atoms, v3.Vec{rnd.Float64(), rnd.Float64(), rnd.Float64()})
}

func shiftAtoms(atoms []Atom, s v3.Vec) []Atom {
	ret := make([]Atom, len(atoms))
	for i, a := range atoms {
		ret[i] = a
		ret[i].Position = a.Position.Add(s).Fract()
	}
	return ret
}

//synthetic returns a random structure with the space group of the Hall
//setting hall.
func synthetic(hall int, rnd *rand.Rand) (*v3.Matrix, []Atom) {
	S := catalog.Lookup(hall)
	return syntheticLattice(S, rnd), syntheticAtoms(S, 2, rnd)
}
