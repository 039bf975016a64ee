/*
 * delaunay.go, part of gospg
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
	"sort"

	v3 "github.com/rmera/gospg/v3"
)

//MaxDelaunayIterations bounds the reduction loops. Reaching it means the
//reduction failed, which can happen for nearly degenerate cells.
const MaxDelaunayIterations = 1000

//Delaunay returns the Delaunay-reduced basis of the lattice U (cell vectors as
//columns). It returns false if the reduction did not converge or if the
//lattice is degenerate.
func Delaunay(U v3.Mat3, tol v3.Tol) (v3.Mat3, bool) {
	b := [4]v3.Vec{U.Col(0), U.Col(1), U.Col(2)}
	b[3] = b[0].Add(b[1]).Add(b[2]).Neg()
	if !delaunayReduce(b[:], tol, 1) {
		return v3.Mat3{}, false
	}
	//the shortest three linearly independent vectors among the
	//Delaunay set and its pairwise sums
	c := []v3.Vec{b[0], b[1], b[2], b[3], b[0].Add(b[1]), b[1].Add(b[2]), b[2].Add(b[0])}
	sortByLength(c)
	for i := 2; i < len(c); i++ {
		if math.Abs(v3.Cols(c[0], c[1], c[i]).Det()) <= float64(tol) {
			continue
		}
		a0, a1, a2 := canonicalSign(c[0], tol), canonicalSign(c[1], tol), c[i]
		m := v3.Cols(a0, a1, a2)
		if m.Det() < 0 {
			m = v3.Cols(a0, a1, a2.Neg())
		}
		return m, true
	}
	return v3.Mat3{}, false
}

//canonicalSign returns v or -v, whichever has its first non-negligible
//component positive. This makes the reduction a fixed point: reducing an
//already reduced cell returns the same vectors, possibly with other signs.
func canonicalSign(v v3.Vec, tol v3.Tol) v3.Vec {
	for _, x := range v {
		if tol.Zero(x) {
			continue
		}
		if x < 0 {
			return v.Neg()
		}
		return v
	}
	return v
}

//delaunayReduce reduces the extended basis b in place. On a positive scalar
//product bi·bj, factor*bi is added to the other vectors (all of them when
//factor is 1, only the first one otherwise) and bi is negated, and the scan
//starts again.
func delaunayReduce(b []v3.Vec, tol v3.Tol, factor float64) bool {
	n := len(b)
	for it := 0; it < MaxDelaunayIterations; it++ {
		reduced := true
	scan:
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !tol.Gt(b[i].Dot(b[j]), 0) {
					continue
				}
				add := b[i].Scale(factor)
				for k := 0; k < n; k++ {
					if k == i || k == j {
						continue
					}
					b[k] = b[k].Add(add)
					if factor != 1 {
						break
					}
				}
				b[i] = b[i].Neg()
				reduced = false
				break scan
			}
		}
		if reduced {
			return true
		}
	}
	return false
}

func sortByLength(c []v3.Vec) {
	sort.SliceStable(c, func(i, j int) bool { return c[i].Norm2() < c[j].Norm2() })
}

//Delaunay2D reduces the two cell vectors of U orthogonal to the unique axis
//(0, 1 or 2), leaving the unique axis unchanged. It is used to pick the
//monoclinic a and c axes. The result is right-handed, which may require
//reversing the unique axis.
func Delaunay2D(U v3.Mat3, unique int, tol v3.Tol) (v3.Mat3, bool) {
	if unique < 0 || unique > 2 {
		return v3.Mat3{}, false
	}
	cols := [3]v3.Vec{U.Col(0), U.Col(1), U.Col(2)}
	uv := cols[unique]
	plane := make([]v3.Vec, 0, 2)
	for i, c := range cols {
		if i != unique {
			plane = append(plane, c)
		}
	}
	b := []v3.Vec{plane[0], plane[1], plane[0].Add(plane[1]).Neg()}
	if !delaunayReduce(b, tol, 2) {
		return v3.Mat3{}, false
	}
	c := []v3.Vec{b[0], b[1], b[2], b[0].Add(b[1])}
	sortByLength(c)
	e0, e1 := b[0], b[1]
	for i := 1; i < len(c); i++ {
		if math.Abs(v3.Cols(c[0], uv, c[i]).Det()) > float64(tol) {
			e0, e1 = c[0], c[i]
			break
		}
	}
	out := [3]v3.Vec{}
	in2 := []v3.Vec{e0, e1}
	k := 0
	for i := 0; i < 3; i++ {
		if i == unique {
			out[i] = uv
			continue
		}
		out[i] = in2[k]
		k++
	}
	m := v3.Cols(out[0], out[1], out[2])
	d := m.Det()
	if math.Abs(d) < float64(tol) {
		return v3.Mat3{}, false
	}
	if d < 0 {
		out[unique] = out[unique].Neg()
		m = v3.Cols(out[0], out[1], out[2])
	}
	return m, true
}
