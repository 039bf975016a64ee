/*
 * metric.go, part of gospg
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

package lattice

import (
	"math"

	v3 "github.com/rmera/gospg/v3"
)

//Metric returns the metric tensor (Gram matrix) Ut·U of the lattice U.
func Metric(U v3.Mat3) v3.Mat3 {
	return U.T().Mul(U)
}

//Volume returns the (unsigned) volume of the cell.
func Volume(U v3.Mat3) float64 {
	return math.Abs(U.Det())
}

//Parameters holds the lengths and angles (radians) of a cell.
type Parameters struct {
	A, B, C            float64
	Alpha, Beta, Gamma float64
}

//Params returns the cell parameters of U.
func Params(U v3.Mat3) Parameters {
	c := [3]v3.Vec{U.Col(0), U.Col(1), U.Col(2)}
	l := [3]float64{c[0].Norm(), c[1].Norm(), c[2].Norm()}
	angle := func(i, j int) float64 {
		cos := c[i].Dot(c[j]) / (l[i] * l[j])
		return math.Acos(math.Max(-1, math.Min(1, cos)))
	}
	return Parameters{A: l[0], B: l[1], C: l[2], Alpha: angle(1, 2), Beta: angle(0, 2), Gamma: angle(0, 1)}
}

//IsIdentityMetric returns true if the metric rotated is the same as the
//metric orig within tol. Lengths are compared directly, angles through the
//displacement (in length units) that the angular difference causes.
func IsIdentityMetric(rotated, orig v3.Mat3, tol v3.Tol) bool {
	var lo, lr [3]float64
	for i := 0; i < 3; i++ {
		lo[i] = math.Sqrt(orig[i][i])
		lr[i] = math.Sqrt(rotated[i][i])
		if !tol.Eq(lo[i], lr[i]) {
			return false
		}
	}
	t2 := float64(tol) * float64(tol)
	for _, p := range [3][2]int{{0, 1}, {0, 2}, {1, 2}} {
		j, k := p[0], p[1]
		c1 := orig[j][k] / lo[j] / lo[k]
		c2 := rotated[j][k] / lr[j] / lr[k]
		//sin^2 of the difference between the two angles
		x := c1*c2 + math.Sqrt(math.Max(0, 1-c1*c1))*math.Sqrt(math.Max(0, 1-c2*c2))
		s2 := 1 - x*x
		length := (lo[j] + lr[j]) * (lo[k] + lr[k])
		if s2 > 1e-12 && s2*length*0.25 > t2 {
			return false
		}
	}
	return true
}

//latticeDirections are the 26 non-zero vectors with components in {-1,0,1}
var latticeDirections []v3.IVec

func init() {
	for _, x := range []int{1, 0, -1} {
		for _, y := range []int{1, 0, -1} {
			for _, z := range []int{1, 0, -1} {
				if x == 0 && y == 0 && z == 0 {
					continue
				}
				latticeDirections = append(latticeDirections, v3.IVec{x, y, z})
			}
		}
	}
}

//Symmetry returns the point group of the lattice U: the integer matrices
//with entries in {-1,0,1} and determinant 1 or -1 that leave the metric of
//U unchanged. U should be Delaunay-reduced, otherwise operations with larger
//entries are missed.
func Symmetry(U v3.Mat3, tol v3.Tol) []v3.IMat3 {
	orig := Metric(U)
	ret := make([]v3.IMat3, 0, 48)
	for _, c0 := range latticeDirections {
		for _, c1 := range latticeDirections {
			for _, c2 := range latticeDirections {
				M := v3.IntCols(c0, c1, c2)
				//the determinant test is much cheaper than the metric one
				if d := M.Det(); d != 1 && d != -1 {
					continue
				}
				if IsIdentityMetric(Metric(U.MulInt(M)), orig, tol) {
					ret = append(ret, M)
				}
			}
		}
	}
	return ret
}
