/*
 * gocoords.go, part of gospg.
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

//gocoords.go contains the fixed-size vector and matrix types. They are plain
//arrays, so they are values, comparable and free of allocations, which
//matters in the inner loops of the symmetry search.

//Mat3 and IMat3 act on column vectors: m.MulVec(v) is m·v. A transformation
//matrix has the new basis vectors as its columns.

package v3

import "math"

//Vec is a 3D vector, cartesian or fractional.
type Vec [3]float64

func (v Vec) Add(w Vec) Vec {
	return Vec{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

func (v Vec) Sub(w Vec) Vec {
	return Vec{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

func (v Vec) Scale(s float64) Vec {
	return Vec{s * v[0], s * v[1], s * v[2]}
}

func (v Vec) Neg() Vec {
	return Vec{-v[0], -v[1], -v[2]}
}

func (v Vec) Dot(w Vec) float64 {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2]
}

//Norm2 returns the squared length of v.
func (v Vec) Norm2() float64 {
	return v.Dot(v)
}

func (v Vec) Norm() float64 {
	return math.Sqrt(v.Norm2())
}

//Cross returns the cross product v x w.
func (v Vec) Cross(w Vec) Vec {
	return Vec{v[1]*w[2] - v[2]*w[1], v[2]*w[0] - v[0]*w[2], v[0]*w[1] - v[1]*w[0]}
}

//Fract returns v with every component brought into [0,1).
func (v Vec) Fract() Vec {
	var r Vec
	for i, x := range v {
		r[i] = x - math.Floor(x)
		if r[i] >= 1 {
			r[i] = 0
		}
	}
	return r
}

//Wrap returns v with every component brought into [-0.5,0.5].
func (v Vec) Wrap() Vec {
	var r Vec
	for i, x := range v {
		r[i] = x - math.Round(x)
	}
	return r
}

//IVec is an integer 3D vector, used for lattice directions.
type IVec [3]int

func (v IVec) Float() Vec {
	return Vec{float64(v[0]), float64(v[1]), float64(v[2])}
}

func (v IVec) Neg() IVec {
	return IVec{-v[0], -v[1], -v[2]}
}

//Norm2 returns the squared length of v.
func (v IVec) Norm2() int {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

func (v IVec) IsZero() bool {
	return v == IVec{}
}

//Mat3 is a 3x3 real matrix, m[i][j] being row i and column j.
type Mat3 [3][3]float64

//Identity3 returns the 3x3 identity.
func Identity3() Mat3 {
	return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

//Cols builds a matrix from its three columns.
func Cols(c0, c1, c2 Vec) Mat3 {
	return Mat3{
		{c0[0], c1[0], c2[0]},
		{c0[1], c1[1], c2[1]},
		{c0[2], c1[2], c2[2]},
	}
}

//Col returns the jth column of m.
func (m Mat3) Col(j int) Vec {
	return Vec{m[0][j], m[1][j], m[2][j]}
}

func (m Mat3) T() Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[j][i]
		}
	}
	return r
}

//Mul returns m·n
func (m Mat3) Mul(n Mat3) Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j] + m[i][2]*n[2][j]
		}
	}
	return r
}

//MulInt returns m·n with n an integer matrix.
func (m Mat3) MulInt(n IMat3) Mat3 {
	return m.Mul(n.Float())
}

//MulVec returns m·v
func (m Mat3) MulVec(v Vec) Vec {
	return Vec{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

func (m Mat3) Scale(s float64) Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = s * m[i][j]
		}
	}
	return r
}

func (m Mat3) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

//Adj returns the adjugate (transposed cofactor matrix) of m.
func (m Mat3) Adj() Mat3 {
	return Mat3{
		{m[1][1]*m[2][2] - m[1][2]*m[2][1], m[0][2]*m[2][1] - m[0][1]*m[2][2], m[0][1]*m[1][2] - m[0][2]*m[1][1]},
		{m[1][2]*m[2][0] - m[1][0]*m[2][2], m[0][0]*m[2][2] - m[0][2]*m[2][0], m[0][2]*m[1][0] - m[0][0]*m[1][2]},
		{m[1][0]*m[2][1] - m[1][1]*m[2][0], m[0][1]*m[2][0] - m[0][0]*m[2][1], m[0][0]*m[1][1] - m[0][1]*m[1][0]},
	}
}

//Inv returns the inverse of m. Panics if m is singular.
func (m Mat3) Inv() Mat3 {
	d := m.Det()
	if d == 0 {
		panic(ErrSingular)
	}
	return m.Adj().Scale(1 / d)
}

//Round returns the integer matrix nearest to m.
func (m Mat3) Round() IMat3 {
	var r IMat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = int(math.Round(m[i][j]))
		}
	}
	return r
}

//IMat3 is a 3x3 integer matrix. Being comparable, it can be used as a map key.
type IMat3 [3][3]int

func IntIdentity() IMat3 {
	return IMat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

//IntCols builds an integer matrix from its three columns.
func IntCols(c0, c1, c2 IVec) IMat3 {
	return IMat3{
		{c0[0], c1[0], c2[0]},
		{c0[1], c1[1], c2[1]},
		{c0[2], c1[2], c2[2]},
	}
}

func (m IMat3) Col(j int) IVec {
	return IVec{m[0][j], m[1][j], m[2][j]}
}

func (m IMat3) Float() Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = float64(m[i][j])
		}
	}
	return r
}

func (m IMat3) T() IMat3 {
	var r IMat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[j][i]
		}
	}
	return r
}

func (m IMat3) Mul(n IMat3) IMat3 {
	var r IMat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j] + m[i][2]*n[2][j]
		}
	}
	return r
}

func (m IMat3) MulIVec(v IVec) IVec {
	return IVec{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

func (m IMat3) MulVec(v Vec) Vec {
	return m.Float().MulVec(v)
}

func (m IMat3) Add(n IMat3) IMat3 {
	var r IMat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][j] + n[i][j]
		}
	}
	return r
}

func (m IMat3) Sub(n IMat3) IMat3 {
	return m.Add(n.Neg())
}

func (m IMat3) Neg() IMat3 {
	var r IMat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = -m[i][j]
		}
	}
	return r
}

func (m IMat3) Trace() int {
	return m[0][0] + m[1][1] + m[2][2]
}

func (m IMat3) Det() int {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

//Adj returns the adjugate of m, so that m·Adj(m) = det(m)·I.
func (m IMat3) Adj() IMat3 {
	return IMat3{
		{m[1][1]*m[2][2] - m[1][2]*m[2][1], m[0][2]*m[2][1] - m[0][1]*m[2][2], m[0][1]*m[1][2] - m[0][2]*m[1][1]},
		{m[1][2]*m[2][0] - m[1][0]*m[2][2], m[0][0]*m[2][2] - m[0][2]*m[2][0], m[0][2]*m[1][0] - m[0][0]*m[1][2]},
		{m[1][0]*m[2][1] - m[1][1]*m[2][0], m[0][1]*m[2][0] - m[0][0]*m[2][1], m[0][0]*m[1][1] - m[0][1]*m[1][0]},
	}
}

//Inv returns the inverse of m as a real matrix. Panics if m is singular.
func (m IMat3) Inv() Mat3 {
	d := m.Det()
	if d == 0 {
		panic(ErrSingular)
	}
	return m.Adj().Float().Scale(1 / float64(d))
}

//IntInv returns the inverse of m and true if it is an integer matrix
//(i.e. |det(m)| == 1).
func (m IMat3) IntInv() (IMat3, bool) {
	d := m.Det()
	if d != 1 && d != -1 {
		return IMat3{}, false
	}
	a := m.Adj()
	if d == -1 {
		a = a.Neg()
	}
	return a, true
}
