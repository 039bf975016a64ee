/*
 * rotation.go, part of gospg
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
	v3 "github.com/rmera/gospg/v3"
)

//RotationType returns the type of the point operation R: n for a proper
//n-fold rotation (1 for the identity), -n for an improper one (-1 is the
//inversion, -2 a mirror). It returns 0 if R is not a crystallographic
//operation.
func RotationType(R v3.IMat3) int {
	tr := R.Trace()
	switch R.Det() {
	case -1:
		switch tr {
		case -3:
			return -1
		case -2:
			return -6
		case -1:
			return -4
		case 0:
			return -3
		case 1:
			return -2
		}
	case 1:
		switch tr {
		case -1:
			return 2
		case 0:
			return 3
		case 1:
			return 4
		case 2:
			return 6
		case 3:
			return 1
		}
	}
	return 0
}

//Proper returns R if it is a proper rotation, -R otherwise.
func Proper(R v3.IMat3) v3.IMat3 {
	if R.Det() == 1 {
		return R
	}
	return R.Neg()
}

//Order returns the smallest n > 0 with R^n = I.
func Order(R v3.IMat3) int {
	t := RotationType(R)
	switch {
	case t > 0:
		return t
	case t%2 != 0:
		return -2 * t
	}
	return -t
}

//Axes is the list of the lattice directions considered as rotation axes,
//in order of preference.
var Axes = []v3.IVec{
	{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {0, 1, 1}, {1, 0, 1}, {1, 1, 0}, {0, -1, 1}, {-1, 0, 1}, {-1, 1, 0}, {1, 1, 1},
	{-1, 1, 1}, {1, -1, 1}, {-1, -1, 1}, {0, 1, 2}, {2, 0, 1}, {1, 2, 0}, {0, 2, 1}, {1, 0, 2}, {2, 1, 0}, {0, -1, 2},
	{-2, 0, 1}, {-1, 2, 0}, {0, -2, 1}, {-1, 0, 2}, {-2, 1, 0}, {2, 1, 1}, {1, 2, 1}, {1, 1, 2}, {-2, 1, 1}, {1, -2, 1},
	{-1, -1, 2}, {-2, -1, 1}, {-1, 2, 1}, {1, -1, 2}, {2, -1, 1}, {-1, -2, 1}, {-1, 1, 2}, {3, 1, 2}, {2, 3, 1}, {1, 2, 3},
	{3, 2, 1}, {1, 3, 2}, {2, 1, 3}, {3, -1, 2}, {-2, -3, 1}, {-1, 2, 3}, {3, -2, 1}, {-1, -3, 2}, {-2, 1, 3}, {-3, 1, 2},
	{2, -3, 1}, {-1, -2, 3}, {-3, 2, 1}, {1, -3, 2}, {-2, -1, 3}, {-3, -1, 2}, {-2, 3, 1}, {1, -2, 3}, {-3, -2, 1}, {-1, 3, 2},
	{2, -1, 3}, {1, 1, 3}, {-1, 1, 3}, {1, -1, 3}, {-1, -1, 3}, {1, 3, 1}, {-1, 3, 1}, {-1, -3, 1}, {1, -3, 1}, {3, 1, 1},
	{-3, -1, 1}, {3, -1, 1}, {-3, 1, 1},
}

func axisIndex(v v3.IVec) int {
	for i, a := range Axes {
		if a == v {
			return i
		}
	}
	return -1
}

//RotationAxis returns the first of Axes left unchanged by the proper part
//of R, and false if there is none (the identity leaves all of them unchanged
//and returns the first).
func RotationAxis(R v3.IMat3) (v3.IVec, bool) {
	Rp := Proper(R)
	for _, v := range Axes {
		if Rp.MulIVec(v) == v {
			return v, true
		}
	}
	return v3.IVec{}, false
}

//OrthogonalAxes returns the axes in Axes that lie in the plane orthogonal
//to the rotation axis of R, i.e. those annihilated by the sum of the powers
//of the proper part of R.
func OrthogonalAxes(R v3.IMat3) []v3.IVec {
	Rp := Proper(R)
	n := Order(Rp)
	var S v3.IMat3
	P := v3.IntIdentity()
	for i := 0; i < n; i++ {
		S = S.Add(P)
		P = P.Mul(Rp)
	}
	ret := make([]v3.IVec, 0, 8)
	for _, v := range Axes {
		if S.MulIVec(v).IsZero() {
			ret = append(ret, v)
		}
	}
	return ret
}
