/*
 * tolerance.go, part of gospg.
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

	"gonum.org/v1/gonum/floats/scalar"
)

//DefaultPrecision is the symmetry precision used when none is given.
const DefaultPrecision Tol = 1e-5

//Tol is a tolerance (epsilon) and the single place where tolerant
//comparisons are defined. Every algorithm in goSpg compares lengths,
//vectors and fractional positions through a Tol.
type Tol float64

//Valid returns true if t is a finite, positive tolerance.
func (t Tol) Valid() bool {
	f := float64(t)
	return f > 0 && !math.IsNaN(f) && !math.IsInf(f, 0)
}

//Eq returns true if |a-b| <= t
func (t Tol) Eq(a, b float64) bool {
	return scalar.EqualWithinAbs(a, b, float64(t))
}

//Lt returns true if a is smaller than b by more than t.
func (t Tol) Lt(a, b float64) bool {
	return a < b-float64(t)
}

//Gt returns true if a is larger than b by more than t.
func (t Tol) Gt(a, b float64) bool {
	return t.Lt(b, a)
}

func (t Tol) Le(a, b float64) bool {
	return !t.Gt(a, b)
}

func (t Tol) Ge(a, b float64) bool {
	return !t.Lt(a, b)
}

func (t Tol) Zero(a float64) bool {
	return math.Abs(a) <= float64(t)
}

//VecEq compares two vectors component by component.
func (t Tol) VecEq(a, b Vec) bool {
	return t.Eq(a[0], b[0]) && t.Eq(a[1], b[1]) && t.Eq(a[2], b[2])
}

//MatEq compares two matrices element by element.
func (t Tol) MatEq(a, b Mat3) bool {
	for i := 0; i < 3; i++ {
		if !t.VecEq(a[i], b[i]) {
			return false
		}
	}
	return true
}

//FracDist2 returns the squared length of the shortest lattice image of
//a-b, a and b being fractional positions.
func FracDist2(a, b Vec) float64 {
	var d2 float64
	for i := 0; i < 3; i++ {
		d := a[i] - b[i]
		d -= math.Floor(d + 0.5)
		d2 += d * d
	}
	return d2
}

//FracEq returns true if the fractional positions a and b coincide
//modulo lattice translations, i.e. their distance in fractional units
//is smaller than t.
func (t Tol) FracEq(a, b Vec) bool {
	f := float64(t)
	return FracDist2(a, b) < f*f
}

//FracZero returns true if v is a lattice translation within t.
func (t Tol) FracZero(v Vec) bool {
	return t.FracEq(v, Vec{})
}

//Integral returns true if x is within t of an integer.
func (t Tol) Integral(x float64) bool {
	return math.Abs(x-math.Round(x)) <= float64(t)
}
