/*
 * v3_test.go, part of gospg.
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

package v3

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrix(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 10}
	A, err := NewMatrix(a)
	require.NoError(Te, err)
	assert.Equal(Te, 3, A.NVecs())
	assert.Equal(Te, Vec{4, 5, 6}, A.Vec(1))
	assert.InDelta(Te, -3.0, A.Det(), 1e-10)
	m, err := A.Mat3()
	require.NoError(Te, err)
	assert.InDelta(Te, A.Det(), m.Det(), 1e-10)
	assert.Equal(Te, m, mustMat3(Te, FromMat3(m)))
	_, err = NewMatrix([]float64{1, 2})
	assert.Error(Te, err)
	B, err := NewMatrix([]float64{1, 0, 0, 0, 1, 0})
	require.NoError(Te, err)
	_, err = B.Mat3()
	assert.Error(Te, err)
}

func mustMat3(Te *testing.T, F *Matrix) Mat3 {
	m, err := F.Mat3()
	require.NoError(Te, err)
	return m
}

func TestLatticeColumns(Te *testing.T) {
	L, err := NewMatrix([]float64{1, 0, 0, 0.5, 2, 0, 0.1, 0.2, 3})
	require.NoError(Te, err)
	U, err := LatticeColumns(L)
	require.NoError(Te, err)
	assert.Equal(Te, Vec{0.5, 2, 0}, U.Col(1))
	back := ColumnsLattice(U)
	assert.Equal(Te, L.RawMatrix().Data, back.RawMatrix().Data)
}

func TestFixed(Te *testing.T) {
	m := Cols(Vec{1, 0, 0}, Vec{1, 2, 0}, Vec{0, 1, 3})
	assert.InDelta(Te, 6.0, m.Det(), 1e-12)
	id := m.Mul(m.Inv())
	assert.True(Te, DefaultPrecision.MatEq(Identity3(), id))
	v := Vec{1, 1, 1}
	assert.Equal(Te, Vec{2, 3, 3}, m.MulVec(v))

	im := IntCols(IVec{0, 1, 0}, IVec{-1, 0, 0}, IVec{0, 0, 1})
	assert.Equal(Te, 1, im.Det())
	inv, ok := im.IntInv()
	require.True(Te, ok)
	assert.Equal(Te, IntIdentity(), im.Mul(inv))
	_, ok = IntCols(IVec{2, 0, 0}, IVec{0, 1, 0}, IVec{0, 0, 1}).IntInv()
	assert.False(Te, ok)
	two := IntCols(IVec{1, 1, 0}, IVec{1, -1, 0}, IVec{0, 0, 1})
	assert.Equal(Te, -2, two.Det())
	assert.Equal(Te, two.Det()*1, two.Mul(two.Adj())[0][0])
	assert.Equal(Te, IntIdentity().Mul(IMat3{{-2, 0, 0}, {0, -2, 0}, {0, 0, -2}}), two.Mul(two.Adj()))
	assert.Equal(Te, IMat3{{-1, -1, 0}, {-1, 1, 0}, {0, 0, -2}}, two.Inv().Scale(-2).Round())
	assert.Equal(Te, 3, IntIdentity().Trace())
}

func TestVec(Te *testing.T) {
	v := Vec{1.25, -0.25, 0.5}
	assert.True(Te, DefaultPrecision.VecEq(Vec{0.25, 0.75, 0.5}, v.Fract()))
	w := Vec{0.9, -0.6, 0.2}.Wrap()
	assert.True(Te, DefaultPrecision.VecEq(Vec{-0.1, 0.4, 0.2}, w))
	assert.Equal(Te, Vec{0, 0, 1}, Vec{1, 0, 0}.Cross(Vec{0, 1, 0}))
	assert.Equal(Te, 0.0, Vec{-1e-18, 0, 0}.Fract()[0])
}

func TestTol(Te *testing.T) {
	t := Tol(1e-3)
	assert.True(Te, t.Valid())
	assert.False(Te, Tol(0).Valid())
	assert.False(Te, Tol(-1).Valid())
	assert.False(Te, Tol(math.NaN()).Valid())
	assert.True(Te, t.Eq(1, 1.0005))
	assert.False(Te, t.Eq(1, 1.002))
	assert.True(Te, t.Lt(1, 1.002))
	assert.False(Te, t.Lt(1, 1.0005))
	assert.True(Te, t.Gt(1.002, 1))
	assert.True(Te, t.Le(1.0005, 1))
	assert.True(Te, t.Ge(1, 1.0005))
	assert.True(Te, t.Zero(-0.0009))
	//equality modulo 1
	assert.True(Te, t.FracEq(Vec{0.9999, 0, 0.5}, Vec{0, 1, -0.5}))
	assert.False(Te, t.FracEq(Vec{0.99, 0, 0}, Vec{0, 0, 0}))
	assert.True(Te, t.FracZero(Vec{2, -3, 1.0001}))
	assert.True(Te, t.Integral(2.9995))
	assert.False(Te, t.Integral(2.5))
}

func TestNearestRotation(Te *testing.T) {
	c, s := math.Cos(0.3), math.Sin(0.3)
	rot := Mat3{{c, -s, 0}, {s, c, 0}, {0, 0, 1}}
	//a slightly distorted rotation
	dist := rot.Mul(Mat3{{1.001, 0.0005, 0}, {0.0005, 0.999, 0}, {0, 0, 1}})
	r, err := NearestRotation(dist)
	require.NoError(Te, err)
	assert.True(Te, Tol(1e-3).MatEq(rot, r))
	assert.InDelta(Te, 1.0, r.Det(), 1e-10)
	//a reflection is turned into a proper rotation
	r, err = NearestRotation(Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, -1}})
	require.NoError(Te, err)
	assert.InDelta(Te, 1.0, r.Det(), 1e-10)
}
