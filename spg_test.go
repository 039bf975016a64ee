/*
 * spg_test.go, part of gospg
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
	"context"
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmera/gospg/catalog"
	"github.com/rmera/gospg/lattice"
	"github.com/rmera/gospg/symmetry"
	v3 "github.com/rmera/gospg/v3"
)

func TestSweepDefaults(Te *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for n := 1; n <= catalog.NumSpaceGroups; n++ {
		hall := catalog.DefaultHall(n)
		L, atoms := synthetic(hall, rnd)
		res, err := FindSpaceGroup(L, atoms)
		require.NoError(Te, err, "space group %d", n)
		assert.Equal(Te, n, res.Number, "Hall %d", hall)
		assert.Equal(Te, hall, res.HallNumber, "space group %d", n)
		S := catalog.Lookup(hall)
		//two general positions, every atom in the conventional cell
		assert.Len(Te, res.Atoms, 2*S.Order(), "space group %d", n)
		assert.Len(Te, res.AsymmetricAtoms, 2, "space group %d", n)
	}
}

func TestDeterminism(Te *testing.T) {
	rnd := rand.New(rand.NewSource(21))
	for _, n := range []int{2, 14, 62, 141, 167, 194, 227} {
		L, atoms := synthetic(catalog.DefaultHall(n), rnd)
		r1, err := FindSpaceGroup(L, atoms)
		require.NoError(Te, err)
		r2, err := FindSpaceGroup(L, atoms)
		require.NoError(Te, err)
		assert.Equal(Te, r1, r2, "space group %d", n)
	}
}

func TestTranslationInvariance(Te *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	for _, n := range []int{4, 19, 33, 92, 146, 198, 230} {
		L, atoms := synthetic(catalog.DefaultHall(n), rnd)
		M, err := ConstructUpdatedBasis(L, atoms)
		require.NoError(Te, err)
		for k := 0; k < 3; k++ {
			s := v3.Vec{rnd.Float64(), rnd.Float64(), rnd.Float64()}
			res, err := FindSpaceGroup(L, shiftAtoms(atoms, s))
			require.NoError(Te, err)
			assert.Equal(Te, n, res.Number)
			M2, err := ConstructUpdatedBasis(L, shiftAtoms(atoms, s))
			require.NoError(Te, err)
			assert.Equal(Te, M, M2)
		}
	}
}

func TestRoundTrip(Te *testing.T) {
	rnd := rand.New(rand.NewSource(13))
	for _, n := range []int{1, 12, 70, 88, 148, 160, 176, 220} {
		L, atoms := synthetic(catalog.DefaultHall(n), rnd)
		res, err := FindSpaceGroup(L, atoms)
		require.NoError(Te, err)
		CL, err := res.ConventionalLattice(L)
		require.NoError(Te, err)
		ideal, err := v3.LatticeColumns(res.Cell)
		require.NoError(Te, err)
		got := res.RotationMatrix.Mul(CL)
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				assert.InDelta(Te, ideal[i][j], got[i][j], 1e-6, "space group %d", n)
			}
		}
		assert.InDelta(Te, 1, res.RotationMatrix.Det(), 1e-9)
		//the transformation matrix takes the input cell to a cell of
		//an integer multiple of the primitive volume
		U, _ := v3.LatticeColumns(L)
		ratio := math.Abs(CL.Det() / U.Det())
		assert.InDelta(Te, ratio, math.Round(ratio), 1e-6)
		//the integer transformation from the primitive cell spans one
		//primitive cell per centering translation
		lt := catalog.Lookup(res.HallNumber).LatticeTranslations()
		assert.Equal(Te, float64(len(lt)), math.Abs(float64(res.PrimitiveTransformation.Det())), "space group %d", n)
		//the atoms, moved back, are atoms of the input
		for _, a := range res.Atoms[:min(4, len(res.Atoms))] {
			p := res.TransformationMatrix.MulVec(a.Position.Sub(res.Origin))
			found := false
			for _, b := range atoms {
				if b.Type == a.Type && v3.Tol(1e-6).FracEq(p, b.Position) {
					found = true
					break
				}
			}
			assert.True(Te, found, "space group %d, atom %v", n, a)
		}
	}
}

func ofType(atoms []Atom, t int) []Atom {
	ret := make([]Atom, 0, len(atoms))
	for _, a := range atoms {
		if a.Type == t {
			ret = append(ret, a)
		}
	}
	return ret
}

func TestFindSmallestPrimitiveCell(Te *testing.T) {
	rnd := rand.New(rand.NewSource(17))
	//face centered: the primitive cell has a quarter of the volume
	S := catalog.Lookup(catalog.DefaultHall(225))
	L := syntheticLattice(S, rnd)
	atoms := syntheticAtoms(S, 1, rnd)
	P, err := FindSmallestPrimitiveCell(ofType(atoms, 0), atoms, L)
	require.NoError(Te, err)
	U, _ := v3.LatticeColumns(L)
	Pc, _ := v3.LatticeColumns(P)
	assert.InDelta(Te, 4, math.Abs(U.Det()/Pc.Det()), 1e-6)

	//a primitive structure gives back its own cell
	S = catalog.Lookup(catalog.DefaultHall(2))
	L = syntheticLattice(S, rnd)
	atoms = syntheticAtoms(S, 2, rnd)
	P, err = FindSmallestPrimitiveCell(ofType(atoms, 0), atoms, L)
	require.NoError(Te, err)
	Pc, _ = v3.LatticeColumns(P)
	U, _ = v3.LatticeColumns(L)
	assert.InDelta(Te, 1, math.Abs(U.Det()/Pc.Det()), 1e-9)

	//a 2x1x3 supercell
	sup := v3.FromMat3(v3.Mat3{{2 * L.At(0, 0), 2 * L.At(0, 1), 2 * L.At(0, 2)}, {L.At(1, 0), L.At(1, 1), L.At(1, 2)}, {3 * L.At(2, 0), 3 * L.At(2, 1), 3 * L.At(2, 2)}})
	big := make([]Atom, 0, 6*len(atoms))
	for i := 0; i < 2; i++ {
		for k := 0; k < 3; k++ {
			for _, a := range atoms {
				p := v3.Vec{(a.Position[0] + float64(i)) / 2, a.Position[1], (a.Position[2] + float64(k)) / 3}
				big = append(big, Atom{Position: p, Type: a.Type})
			}
		}
	}
	P, err = FindSmallestPrimitiveCell(ofType(big, 0), big, sup)
	require.NoError(Te, err)
	Pc, _ = v3.LatticeColumns(P)
	Us, _ := v3.LatticeColumns(sup)
	assert.InDelta(Te, 6, math.Abs(Us.Det()/Pc.Det()), 1e-6)
	res, err := FindSpaceGroup(sup, big)
	require.NoError(Te, err)
	assert.Equal(Te, 2, res.Number)
	assert.Len(Te, res.Atoms, len(atoms))
}

func TestComputeDelaunayReducedCell(Te *testing.T) {
	rnd := rand.New(rand.NewSource(19))
	for k := 0; k < 20; k++ {
		var m v3.Mat3
		for i := range m {
			for j := range m[i] {
				m[i][j] = rnd.Float64()*8 - 4
			}
		}
		if math.Abs(m.Det()) < 1 {
			continue
		}
		L := v3.FromMat3(m)
		D, err := ComputeDelaunayReducedCell(L)
		require.NoError(Te, err)
		D2, err := ComputeDelaunayReducedCell(D)
		require.NoError(Te, err)
		Dc, _ := v3.LatticeColumns(D)
		D2c, _ := v3.LatticeColumns(D2)
		//same lattice, same metric
		assert.InDelta(Te, math.Abs(m.Det()), math.Abs(Dc.Det()), 1e-6)
		g1, g2 := lattice.Metric(Dc), lattice.Metric(D2c)
		for i := 0; i < 3; i++ {
			assert.InDelta(Te, g1[i][i], g2[i][i], 1e-6)
		}
	}
}

//The cell is a = b = c = 10.3499951299 with the atoms of P 2 3.
func TestCubicP23(Te *testing.T) {
	const a = 10.3499951299
	L := v3.FromMat3(v3.Mat3{{a, 0, 0}, {0, a, 0}, {0, 0, a}})
	S := catalog.Lookup(489)
	atoms := make([]Atom, 0)
	for k, p := range []v3.Vec{{0.1, 0.2, 0.3}, {0.37, 0.11, 0.05}, {0.25, 0.25, 0.25}} {
		for _, q := range S.SymmetricPositions(p, 1e-6) {
			atoms = append(atoms, Atom{Position: q, Type: k})
		}
	}
	res, err := FindSpaceGroup(L, atoms)
	require.NoError(Te, err)
	assert.Equal(Te, 195, res.Number)
	assert.Equal(Te, 489, res.HallNumber)
	assert.Equal(Te, "P 2 3", res.HMSymbol)
	p := res.Parameters
	for _, x := range []float64{p.A, p.B, p.C} {
		assert.InDelta(Te, a, x, 1e-5)
	}
	al, be, ga := p.Degrees()
	for _, x := range []float64{al, be, ga} {
		assert.InDelta(Te, 90, x, 1e-5)
	}
	assert.Equal(Te, symmetry.Primitive, res.Centering)
	assert.Equal(Te, "23", res.PointGroup.Symbol)
	assert.Len(Te, res.Operations, 12)
	assert.Len(Te, res.AsymmetricAtoms, 3)
	c, err := FindCentering(L, atoms)
	require.NoError(Te, err)
	assert.Equal(Te, symmetry.Primitive, c)
}

func TestTriclinicBasis(Te *testing.T) {
	L := v3.FromMat3(v3.Mat3{{5.7, 0, 0}, {1.1, 2.6, 1.7}, {1.5, 3.1, 3.1}})
	atoms := []Atom{{Position: v3.Vec{0, 0, 0}, Type: 0}, {Position: v3.Vec{0.68, 0.93, 0.86}, Type: 1}}
	M, err := ConstructUpdatedBasis(L, atoms)
	require.NoError(Te, err)
	assert.Equal(Te, v3.IMat3{{1, 0, 0}, {0, -1, 0}, {0, 0, -1}}, M)
	res, err := FindSpaceGroup(L, atoms)
	require.NoError(Te, err)
	assert.Equal(Te, 1, res.Number)
}

//A left-handed monoclinic cell: the reduction reverses the unique axis
//and the a and b vectors swap places.
func TestMonoclinicBasis(Te *testing.T) {
	L := v3.FromMat3(v3.Mat3{{4.1, 0, 0}, {0, 4.0, 0}, {-2.981, 0, 6.112}})
	atoms := []Atom{
		{Position: v3.Vec{0.09, 0, 0.3}, Type: 0},
		{Position: v3.Vec{0.91, 0, 0.7}, Type: 0},
		{Position: v3.Vec{0.5, 0.3, 0}, Type: 1},
	}
	M, err := ConstructUpdatedBasis(L, atoms)
	require.NoError(Te, err)
	assert.Equal(Te, v3.IMat3{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}, M)
	assert.Equal(Te, 1, M.Det())
	res, err := FindSpaceGroup(L, atoms)
	require.NoError(Te, err)
	assert.Equal(Te, 3, res.Number)
	assert.Equal(Te, 3, res.HallNumber)
	assert.Equal(Te, M.Mul(res.ChangeOfBasis), res.PrimitiveTransformation)
}

func TestDisorderedFramework(Te *testing.T) {
	const a = 7.2
	L := v3.FromMat3(v3.Mat3{{a, 0, 0}, {0, a, 0}, {0, 0, a}})
	atoms := []Atom{
		{Position: v3.Vec{0, 0, 0}, Type: 0},
		{Position: v3.Vec{0.5, 0.5, 0.5}, Type: 1, Occupancy: 0.5},
		{Position: v3.Vec{0.5, 0.5, 0.5}, Type: 2, Occupancy: 0.5},
		{Position: v3.Vec{0.5, 0, 0}, Type: 3, Occupancy: 0.3},
		{Position: v3.Vec{0, 0.5, 0}, Type: 4, Occupancy: 0.7},
		{Position: v3.Vec{0, 0, 0.5}, Type: 3},
		{Position: v3.Vec{0.21, 0.13, 0.4}, Type: 5, Occupancy: 0.1},
	}
	_, err := FindSpaceGroup(L, atoms)
	require.NoError(Te, err)
	res, err := FindSpaceGroup(L, atoms, WithPartialOccupancies(true), WithOverlappingAtomTypes(true))
	require.NoError(Te, err)
	assert.GreaterOrEqual(Te, res.Number, 1)
	assert.LessOrEqual(Te, res.Number, catalog.NumSpaceGroups)

	//the disorder on the body center alone doesn't break the cubic symmetry
	//once the two species are merged
	res, err = FindSpaceGroup(L, atoms[:3], WithOverlappingAtomTypes(true))
	require.NoError(Te, err)
	assert.Equal(Te, 221, res.Number)
	//half occupied sites of different species match each other only
	//when partial occupancies are allowed
	half := []Atom{
		{Position: v3.Vec{0, 0, 0}, Type: 1, Occupancy: 0.5},
		{Position: v3.Vec{0.5, 0.5, 0.5}, Type: 2, Occupancy: 0.5},
	}
	res, err = FindSpaceGroup(L, half)
	require.NoError(Te, err)
	assert.Equal(Te, 221, res.Number)
	res, err = FindSpaceGroup(L, half, WithPartialOccupancies(true))
	require.NoError(Te, err)
	assert.Equal(Te, 229, res.Number)
	assert.Equal(Te, symmetry.BodyCenter, res.Centering)
}

func TestInvalidInput(Te *testing.T) {
	good := v3.FromMat3(v3.Mat3{{4, 0, 0}, {0, 4, 0}, {0, 0, 4}})
	flat := v3.FromMat3(v3.Mat3{{4, 0, 0}, {0, 4, 0}, {4, 4, 0}})
	nan := v3.FromMat3(v3.Mat3{{4, 0, 0}, {0, math.NaN(), 0}, {0, 0, 4}})
	one := []Atom{{Position: v3.Vec{0, 0, 0}}}
	cases := []struct {
		L     *v3.Matrix
		atoms []Atom
		opts  []Option
	}{
		{good, nil, nil},
		{good, []Atom{}, nil},
		{flat, one, nil},
		{nan, one, nil},
		{nil, one, nil},
		{good, one, []Option{WithPrecision(0)}},
		{good, one, []Option{WithPrecision(-1)}},
		{good, one, []Option{WithPrecision(math.NaN())}},
		{good, []Atom{{Position: v3.Vec{math.Inf(1), 0, 0}}}, nil},
	}
	for i, c := range cases {
		_, err := FindSpaceGroup(c.L, c.atoms, c.opts...)
		require.Error(Te, err, "case %d", i)
		assert.True(Te, errors.Is(err, ErrInvalidInput), "case %d: %v", i, err)
		assert.False(Te, NotFound(err), "case %d", i)
		_, err = ConstructUpdatedBasis(c.L, c.atoms, c.opts...)
		assert.True(Te, errors.Is(err, ErrInvalidInput), "case %d: %v", i, err)
	}
	_, err := ComputeDelaunayReducedCell(flat)
	assert.True(Te, errors.Is(err, ErrInvalidInput))
	_, err = FindSmallestPrimitiveCell(one, nil, good)
	assert.True(Te, errors.Is(err, ErrInvalidInput))
	_, err = FindCentering(good, nil)
	assert.True(Te, errors.Is(err, ErrInvalidInput))

	//a single atom in a valid cell is fine
	res, err := FindSpaceGroup(good, one)
	require.NoError(Te, err)
	assert.Equal(Te, 221, res.Number)
}

func TestErrors(Te *testing.T) {
	err := noMatch("FindSpaceGroup", "point group %s", "m-3m")
	assert.True(Te, NotFound(err))
	assert.True(Te, errors.Is(err, ErrNoMatchingSpaceGroup))
	assert.False(Te, errors.Is(err, ErrInvalidInput))
	assert.Equal(Te, "no matching space group: point group m-3m", err.Error())
	err = errDecorate(err, "caller")
	assert.Equal(Te, []string{"FindSpaceGroup", "caller"}, err.(Error).Decorate(""))
	assert.False(Te, err.(Error).Critical())
	err = reductionFailure("x", "Niggli reduction")
	assert.True(Te, NotFound(err))
	assert.True(Te, errors.Is(err, ErrReductionFailure))
	assert.True(Te, invalidInput("x", "bad").(Error).Critical())
}

func TestFindSpaceGroups(Te *testing.T) {
	rnd := rand.New(rand.NewSource(23))
	numbers := []int{3, 47, 99, 152, 183, 216}
	structures := make([]Structure, 0, len(numbers)+1)
	for _, n := range numbers {
		L, atoms := synthetic(catalog.DefaultHall(n), rnd)
		structures = append(structures, Structure{Name: catalog.Lookup(catalog.DefaultHall(n)).HMSymbol, Lattice: L, Atoms: atoms})
	}
	structures = append(structures, Structure{Name: "empty", Lattice: structures[0].Lattice})
	res, err := FindSpaceGroups(context.Background(), structures, WithWorkers(3))
	require.NoError(Te, err)
	require.Len(Te, res, len(structures))
	for i, n := range numbers {
		require.NoError(Te, res[i].Err)
		assert.Equal(Te, structures[i].Name, res[i].Name)
		assert.Equal(Te, n, res[i].Result.Number)
	}
	last := res[len(res)-1]
	assert.Nil(Te, last.Result)
	assert.True(Te, errors.Is(last.Err, ErrInvalidInput))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err = FindSpaceGroups(ctx, structures)
	assert.True(Te, errors.Is(err, context.Canceled))
	for _, r := range res {
		assert.Nil(Te, r.Result)
		assert.Error(Te, r.Err)
	}
	_, err = FindSpaceGroups(context.Background(), structures, WithPrecision(-1))
	assert.True(Te, errors.Is(err, ErrInvalidInput))
}
