/*
 * symmetry_test.go, part of gospg
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

package symmetry

import (
	"math"
	"testing"

	"github.com/rmera/gospg/lattice"
	v3 "github.com/rmera/gospg/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tol = v3.DefaultPrecision

//closeGroup returns the group generated by the point operations gens.
func closeGroup(gens ...v3.IMat3) []v3.IMat3 {
	ret := []v3.IMat3{v3.IntIdentity()}
	seen := map[v3.IMat3]bool{v3.IntIdentity(): true}
	for changed := true; changed; {
		changed = false
		for _, a := range ret {
			for _, g := range gens {
				n := a.Mul(g)
				if !seen[n] {
					seen[n] = true
					ret = append(ret, n)
					changed = true
				}
			}
		}
	}
	return ret
}

var (
	rot2z = v3.IMat3{{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}}
	rot2x = v3.IMat3{{1, 0, 0}, {0, -1, 0}, {0, 0, -1}}
	rot3d = v3.IMat3{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}}
	rot4z = v3.IMat3{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}
	rot6z = v3.IMat3{{1, -1, 0}, {1, 0, 0}, {0, 0, 1}}
	inv   = v3.IntIdentity().Neg()
)

func TestRotationType(Te *testing.T) {
	cases := []struct {
		R     v3.IMat3
		t     int
		order int
	}{
		{v3.IntIdentity(), 1, 1},
		{inv, -1, 2},
		{rot2z, 2, 2},
		{rot2z.Neg(), -2, 2},
		{rot3d, 3, 3},
		{rot3d.Neg(), -3, 6},
		{rot4z, 4, 4},
		{rot4z.Neg(), -4, 4},
		{rot6z, 6, 6},
		{rot6z.Neg(), -6, 6},
		{v3.IMat3{{2, 0, 0}, {0, 1, 0}, {0, 0, 1}}, 0, 0},
	}
	for _, c := range cases {
		assert.Equal(Te, c.t, RotationType(c.R), "%v", c.R)
		if c.t != 0 {
			assert.Equal(Te, c.order, Order(c.R), "%v", c.R)
		}
	}
	a, ok := RotationAxis(rot4z.Neg())
	require.True(Te, ok)
	assert.Equal(Te, v3.IVec{0, 0, 1}, a)
	a, ok = RotationAxis(rot3d)
	require.True(Te, ok)
	assert.Equal(Te, v3.IVec{1, 1, 1}, a)
	for _, o := range OrthogonalAxes(rot4z) {
		assert.Equal(Te, 0, o[2])
	}
}

func TestFindPointGroup(Te *testing.T) {
	cases := []struct {
		gens   []v3.IMat3
		symbol string
		laue   Laue
		holo   lattice.Holohedry
		order  int
	}{
		{nil, "1", Laue1, lattice.Triclinic, 1},
		{[]v3.IMat3{inv}, "-1", Laue1, lattice.Triclinic, 2},
		{[]v3.IMat3{rot2z, inv}, "2/m", Laue2m, lattice.Monoclinic, 4},
		{[]v3.IMat3{rot2z, rot2x.Neg()}, "mm2", LaueMMM, lattice.Orthorhombic, 4},
		{[]v3.IMat3{rot4z.Neg()}, "-4", Laue4m, lattice.Tetragonal, 4},
		{[]v3.IMat3{rot6z, inv}, "6/m", Laue6m, lattice.Hexagonal, 12},
		{[]v3.IMat3{rot2z, rot2x, rot3d}, "23", LaueM3, lattice.Cubic, 12},
		{[]v3.IMat3{rot4z, rot3d, inv}, "m-3m", LaueM3m, lattice.Cubic, 48},
	}
	for _, c := range cases {
		rots := closeGroup(c.gens...)
		pg, ok := FindPointGroup(rots)
		require.True(Te, ok, c.symbol)
		assert.Equal(Te, c.symbol, pg.Symbol)
		assert.Equal(Te, c.laue, pg.Laue)
		assert.Equal(Te, c.holo, pg.Holohedry)
		assert.Equal(Te, c.order, pg.Order)
		assert.Equal(Te, c.order, len(rots))
	}
	_, ok := FindPointGroup([]v3.IMat3{rot2z})
	assert.False(Te, ok)
	pg, ok := PointGroupByNumber(32)
	require.True(Te, ok)
	assert.Equal(Te, "Oh", pg.Schoenflies)
	assert.True(Te, pg.Centrosymmetric)
	_, ok = PointGroupByNumber(33)
	assert.False(Te, ok)
}

func TestCentering(Te *testing.T) {
	cases := []struct {
		M v3.IMat3
		c Centering
	}{
		{v3.IntIdentity(), Primitive},
		{v3.IMat3{{-1, 0, 0}, {0, -1, 1}, {0, 1, 1}}, ACentered},
		{v3.IMat3{{-1, 0, 1}, {0, -1, 0}, {1, 0, 1}}, BCentered},
		{v3.IMat3{{1, 1, 0}, {1, -1, 0}, {0, 0, -1}}, CCentered},
		{v3.IMat3{{0, 1, 1}, {1, 0, 1}, {1, 1, 0}}, BodyCenter},
		{v3.IMat3{{-1, 1, 1}, {1, -1, 1}, {1, 1, -1}}, FaceCenter},
		{v3.IMat3{{1, 0, 1}, {-1, 1, 1}, {0, -1, 1}}, Rhombohedral},
		{v3.IMat3{{5, 0, 0}, {0, 1, 0}, {0, 0, 1}}, NoCentering},
	}
	for _, c := range cases {
		assert.Equal(Te, c.c, FindCentering(c.M), "%v", c.M)
	}
	A := v3.IMat3{{-1, 0, 0}, {0, -1, 1}, {0, 1, 1}}
	corr, c := CorrectBasis(A, ACentered, LaueMMM)
	assert.Equal(Te, CCentered, c)
	assert.Equal(Te, v3.IMat3{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}}, corr)
	assert.Equal(Te, CCentered, FindCentering(A.Mul(corr)))
	corr, c = CorrectBasis(v3.IntIdentity(), Primitive, Laue1)
	assert.Equal(Te, Primitive, c)
	assert.Equal(Te, v3.IntIdentity(), corr)
	assert.Equal(Te, 4, FaceCenter.Multiplicity())
	assert.Equal(Te, 3, len(HexagonalH.Translations())+1)
	assert.Equal(Te, "I", BodyCenter.String())
}

func TestSites(Te *testing.T) {
	atoms := []Atom{
		{Position: v3.Vec{0, 0, 0}, Type: 3},
		{Position: v3.Vec{0.5, 0, 0}, Type: 1},
		{Position: v3.Vec{0, 0.5, 0}, Type: 3},
	}
	s := Sites(atoms, Options{}, tol)
	require.Len(Te, s, 3)
	assert.Equal(Te, []int{0, 1, 0}, []int{s[0].Key, s[1].Key, s[2].Key})
	assert.Equal(Te, 1, MinimumKey(s))
	assert.Len(Te, WithKey(s, 0), 2)
	assert.Equal(Te, -1, MinimumKey(nil))

	//two species sharing a site
	mixed := []Atom{
		{Position: v3.Vec{0, 0, 0}, Type: 2},
		{Position: v3.Vec{0, 0, 0}, Type: 1},
		{Position: v3.Vec{0.5, 0.5, 0.5}, Type: 1},
		{Position: v3.Vec{0.5, 0.5, 0.5}, Type: 2},
	}
	s = Sites(mixed, Options{OverlappingTypes: true}, tol)
	require.Len(Te, s, 2)
	assert.Equal(Te, s[0].Key, s[1].Key)

	partial := []Atom{
		{Position: v3.Vec{0, 0, 0}, Type: 2, Occupancy: 0.5},
		{Position: v3.Vec{0.5, 0.5, 0.5}, Type: 1, Occupancy: 0.5},
		{Position: v3.Vec{0.5, 0, 0}, Type: 1},
	}
	s = Sites(partial, Options{PartialOccupancies: true}, tol)
	assert.Equal(Te, s[0].Key, s[1].Key)
	assert.NotEqual(Te, s[1].Key, s[2].Key)
	s = Sites(partial, Options{}, tol)
	assert.NotEqual(Te, s[0].Key, s[1].Key)
}

func TestFindPrimitive(Te *testing.T) {
	U := v3.Identity3().Scale(4)
	sites := []Site{{Position: v3.Vec{0, 0, 0}}, {Position: v3.Vec{0.5, 0.5, 0.5}}}
	P := FindPrimitive(sites, sites, U, tol)
	assert.InDelta(Te, 32, math.Abs(P.Det()), 1e-9)
	//U is an integer combination of the new cell vectors
	rel := P.Inv().Mul(U)
	assert.True(Te, tol.MatEq(rel, rel.Round().Float()))
	trimmed := Trim(sites, U, P, tol)
	assert.Len(Te, trimmed, 1)

	//CsCl: nothing to reduce
	sites[1].Key = 1
	P = FindPrimitive(WithKey(sites, 0), sites, U, tol)
	assert.Equal(Te, U, P)
}

func TestFindOperations(Te *testing.T) {
	D := v3.Identity3().Scale(3)
	sites := []Site{{Position: v3.Vec{0, 0, 0}, Key: 0}, {Position: v3.Vec{0.5, 0.5, 0.5}, Key: 1}}
	ops := FindOperations(D, sites, MinimumKey(sites), tol)
	assert.Len(Te, ops, 48)
	pg, ok := FindPointGroup(Rotations(ops))
	require.True(Te, ok)
	assert.Equal(Te, "m-3m", pg.Symbol)
	//the fcc sublattice of the cubic cell is invariant under all the operations
	conv := ToConventional(ops, v3.IMat3{{0, 1, 1}, {1, 0, 1}, {1, 1, 0}}, BodyCenter)
	assert.Len(Te, conv, 96)
	assert.Len(Te, FirstTranslations(conv), 48)

	sites[1].Position = v3.Vec{0.5, 0, 0}
	ops = FindOperations(D, sites, MinimumKey(sites), tol)
	assert.Len(Te, ops, 16)
	rots := Rotations(ops)
	pg, ok = FindPointGroup(rots)
	require.True(Te, ok)
	assert.Equal(Te, "4/mmm", pg.Symbol)
	M, ok := ConstructAxes(rots, pg.Laue)
	require.True(Te, ok)
	assert.Equal(Te, v3.IVec{1, 0, 0}, M.Col(2))
	assert.Equal(Te, 1, M.Det())
}

func TestOpString(Te *testing.T) {
	assert.Equal(Te, "-x,-y,z+1/2", Op{R: rot2z, T: v3.Vec{0, 0, 0.5}}.String())
	assert.Equal(Te, "z,x,y", Op{R: rot3d}.String())
	assert.Equal(Te, "x-y,x,z+1/3", Op{R: rot6z, T: v3.Vec{0, 0, -2.0 / 3}}.String())
}

func TestOrbits(Te *testing.T) {
	ops := make([]Op, 0, 48)
	for _, R := range lattice.Symmetry(v3.Identity3(), tol) {
		ops = append(ops, Op{R: R})
	}
	atoms := []Atom{
		{Position: v3.Vec{0, 0, 0}, Type: 0},
		{Position: v3.Vec{0.5, 0, 0}, Type: 1},
		{Position: v3.Vec{0, 0.5, 0}, Type: 1},
		{Position: v3.Vec{0, 0, 0.5}, Type: 1},
		{Position: v3.Vec{0.5, 0.5, 0.5}, Type: 2},
	}
	orbits := Orbits(atoms, ops, tol)
	assert.Equal(Te, [][]int{{0}, {1, 2, 3}, {4}}, orbits)
	asym := Asymmetric(atoms, ops, tol)
	assert.Equal(Te, []Atom{atoms[0], atoms[1], atoms[4]}, asym)

	exp := Expand([]Atom{{Position: v3.Vec{0.1, 0.2, 0.3}}}, []Op{{R: v3.IntIdentity()}, {R: inv}}, tol)
	require.Len(Te, exp, 2)
	assert.True(Te, tol.VecEq(v3.Vec{0.9, 0.8, 0.7}, exp[1].Position))
	assert.Len(Te, Dedupe([]Atom{atoms[1], atoms[1], atoms[2]}, tol), 2)
}
