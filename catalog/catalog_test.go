/*
 * catalog_test.go, part of gospg
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

package catalog

import (
	"errors"
	"testing"

	"github.com/rmera/gospg/lattice"
	"github.com/rmera/gospg/symmetry"
	v3 "github.com/rmera/gospg/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHall(Te *testing.T) {
	G, err := ParseHall("P 4w 2c (0 0 1)")
	require.NoError(Te, err)
	assert.Equal(Te, symmetry.Primitive, G.Centering)
	require.Len(Te, G.Generators, 2)
	assert.Equal(Te, Op{R: v3.IMat3{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}, T: v3.IVec{0, 0, 3}}, G.Generators[0])
	assert.Equal(Te, Op{R: v3.IMat3{{1, 0, 0}, {0, -1, 0}, {0, 0, -1}}, T: v3.IVec{0, 0, 8}}, G.Generators[1])
	require.Len(Te, G.Ops, 8)
	want := map[v3.IMat3]v3.IVec{
		{{-1, 0, 0}, {0, -1, 0}, {0, 0, 1}}: {0, 0, 6},
		{{-1, 0, 0}, {0, 1, 0}, {0, 0, -1}}: {0, 0, 2},
		{{0, -1, 0}, {-1, 0, 0}, {0, 0, -1}}: {0, 0, 5},
		{{0, 1, 0}, {-1, 0, 0}, {0, 0, 1}}:  {0, 0, 9},
		{{0, 1, 0}, {1, 0, 0}, {0, 0, -1}}:  {0, 0, 11},
	}
	for _, o := range G.Ops {
		if t, ok := want[o.R]; ok {
			assert.Equal(Te, t, o.T, "%v", o.R)
		}
	}
	assert.Equal(Te, v3.IntIdentity(), G.Ops[0].R)

	G, err = ParseHall("-P 2ybc")
	require.NoError(Te, err)
	assert.Len(Te, G.Ops, 4)
	assert.Equal(Te, v3.IMat3{{-1, 0, 0}, {0, 1, 0}, {0, 0, -1}}, G.Generators[1].R)
	assert.Equal(Te, v3.IVec{0, 6, 6}, G.Generators[1].T)

	G, err = ParseHall("-R 3 2\"")
	require.NoError(Te, err)
	assert.Equal(Te, symmetry.Rhombohedral, G.Centering)
	assert.Len(Te, G.Ops, 12)

	for _, bad := range []string{"", "P", "Q 2", "P 2q", "P 5", "P 2 (0 0)", "P 2 (0 0 x)", "P 3*1"} {
		_, err := ParseHall(bad)
		assert.Error(Te, err, bad)
		assert.True(Te, errors.Is(err, ErrInvalidInput), bad)
	}
}

//Settings on rhombohedral axes: the twofold axes after 3* are the face
//diagonals perpendicular to the body diagonal.
func TestParseHallRhombohedralAxes(Te *testing.T) {
	G, err := ParseHall("P 3* 2")
	require.NoError(Te, err)
	require.Len(Te, G.Generators, 2)
	assert.Equal(Te, v3.IMat3{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}}, G.Generators[0].R)
	assert.Equal(Te, v3.IMat3{{0, -1, 0}, {-1, 0, 0}, {0, 0, -1}}, G.Generators[1].R)
	require.Len(Te, G.Ops, 6)
	rots := make(map[v3.IMat3]bool)
	for _, o := range G.Ops {
		rots[o.R] = true
	}
	for _, R := range []v3.IMat3{
		{{-1, 0, 0}, {0, 0, -1}, {0, -1, 0}},
		{{0, 0, -1}, {0, -1, 0}, {-1, 0, 0}},
	} {
		assert.True(Te, rots[R], "%v", R)
	}
	for hall, want := range map[string]int{"P 3* -2": 6, "P 3* -2n": 6, "-P 3* 2": 12, "-P 3* 2n": 12} {
		G, err := ParseHall(hall)
		require.NoError(Te, err, hall)
		assert.Len(Te, G.Ops, want, hall)
	}
}

//The whole table must build. A bad entry shows up here rather than as a
//panic in the packages that use the catalog.
func TestBuild(Te *testing.T) {
	var all []SpaceGroup
	require.NotPanics(Te, func() { all = All() })
	require.Len(Te, all, NumHall)
	for _, hall := range []int{434, 459} {
		S := all[hall-1]
		assert.Equal(Te, "R", S.Qualifier, S.String())
		assert.Equal(Te, symmetry.Primitive, S.Centering, S.String())
	}
	assert.Equal(Te, 146, all[433].Number)
	assert.Equal(Te, 166, all[458].Number)
	assert.Equal(Te, "32", all[444].PointGroup.Symbol)
	assert.Equal(Te, 155, all[444].Number)
}

func TestGet(Te *testing.T) {
	S, err := Get(489)
	require.NoError(Te, err)
	assert.Equal(Te, 195, S.Number)
	assert.Equal(Te, "P 2 3", S.HMSymbol)
	assert.Equal(Te, "P 2 2 3", S.HallSymbol)
	assert.Equal(Te, 12, S.Order())
	assert.Equal(Te, "23", S.PointGroupSymbol())
	assert.Equal(Te, "T", S.Schoenflies())
	assert.Equal(Te, symmetry.LaueM3, S.LaueClass())
	assert.Equal(Te, lattice.Cubic, S.Holohedry())
	assert.False(Te, S.Centrosymmetric())
	assert.Len(Te, S.SymmetricPositions(v3.Vec{0.1, 0.2, 0.3}, v3.DefaultPrecision), 12)
	assert.Len(Te, S.SymmetricPositions(v3.Vec{0, 0, 0}, v3.DefaultPrecision), 1)
	assert.Len(Te, S.SymmetricPositions(v3.Vec{0.5, 0, 0}, v3.DefaultPrecision), 3)

	S, err = Default(14)
	require.NoError(Te, err)
	assert.Equal(Te, 81, S.HallNumber)
	assert.Equal(Te, "-P 2ybc", S.HallSymbol)
	assert.True(Te, S.Centrosymmetric())
	assert.Equal(Te, "2/m", S.PointGroupSymbol())

	S, err = Get(458)
	require.NoError(Te, err)
	assert.Equal(Te, "H", S.Qualifier)
	assert.Equal(Te, 36, S.Order())
	assert.Len(Te, S.LatticeTranslations(), 3)
	assert.Equal(Te, "zeolites: CHA", S.Note)
	S, err = Get(459)
	require.NoError(Te, err)
	assert.Equal(Te, "R", S.Qualifier)
	assert.Equal(Te, 12, S.Order())

	S, err = Default(227)
	require.NoError(Te, err)
	assert.Equal(Te, 526, S.HallNumber)
	assert.Equal(Te, 192, S.Order())
	assert.Len(Te, S.Operations(), 192)
	S, _ = Default(229)
	assert.Equal(Te, 96, S.Order())

	//copies
	S, _ = Get(1)
	S.Ops[0].T = v3.IVec{1, 1, 1}
	S2, _ := Get(1)
	assert.Equal(Te, v3.IVec{}, S2.Ops[0].T)

	for _, n := range []int{0, -1, 531} {
		_, err := Get(n)
		assert.True(Te, errors.Is(err, ErrInvalidInput))
	}
	for _, n := range []int{0, 231} {
		_, err := Default(n)
		assert.True(Te, errors.Is(err, ErrInvalidInput))
		_, err = Settings(n)
		assert.True(Te, errors.Is(err, ErrInvalidInput))
	}
	assert.Panics(Te, func() { Lookup(0) })
}

func TestAll(Te *testing.T) {
	all := All()
	require.Len(Te, all, NumHall)
	seen := make(map[int]int)
	for n := 1; n <= NumSpaceGroups; n++ {
		hs, err := Settings(n)
		require.NoError(Te, err)
		assert.Equal(Te, DefaultHall(n), hs[0])
		for _, h := range hs {
			assert.Equal(Te, n, all[h-1].Number, "Hall %d", h)
			seen[h]++
		}
	}
	assert.Len(Te, seen, NumHall)
	for _, S := range all {
		//the group is closed: every product is in the list, up to centering
		ops := S.Operations()
		assert.Equal(Te, S.Order(), len(ops), S.String())
		rots := make(map[v3.IMat3]bool)
		for _, o := range S.Ops {
			rots[o.R] = true
		}
		assert.Len(Te, rots, S.PointGroup.Order, S.String())
		assert.NotEqual(Te, symmetry.NoCentering, S.Centering)
	}
}
