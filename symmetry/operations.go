/*
 * operations.go, part of gospg
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
	"fmt"
	"math"

	"github.com/rmera/gospg/lattice"
	v3 "github.com/rmera/gospg/v3"
)

//Op is a symmetry operation x -> Rx + T in fractional coordinates.
type Op struct {
	R v3.IMat3
	T v3.Vec
}

//Apply returns the image of p under the operation.
func (O Op) Apply(p v3.Vec) v3.Vec {
	return O.R.MulVec(p).Add(O.T)
}

//String returns the operation in the x,y,z notation, translations rounded
//to twelfths.
func (O Op) String() string {
	names := [3]string{"x", "y", "z"}
	ret := ""
	for i := 0; i < 3; i++ {
		s := ""
		for j := 0; j < 3; j++ {
			switch O.R[i][j] {
			case 1:
				if s != "" {
					s += "+"
				}
				s += names[j]
			case -1:
				s += "-" + names[j]
			case 0:
			default:
				s += fmt.Sprintf("%+d%s", O.R[i][j], names[j])
			}
		}
		t := O.T[i] - math.Floor(O.T[i])
		if n := int(math.Round(t*12)) % 12; n != 0 {
			s += "+" + fraction12(n)
		}
		if i > 0 {
			ret += ","
		}
		ret += s
	}
	return ret
}

func fraction12(n int) string {
	g := gcd(n, 12)
	return fmt.Sprintf("%d/%d", n/g, 12/g)
}

//FindOperations returns the symmetry operations of the sites in the cell D
//(vectors as columns, usually Delaunay-reduced and primitive). The point
//operations come from the symmetry of the lattice, and, for each, the
//translations from the sites with the key minKey.
func FindOperations(D v3.Mat3, sites []Site, minKey int, tol v3.Tol) []Op {
	reduced := WithKey(sites, minKey)
	ret := make([]Op, 0, 48)
	for _, R := range lattice.Symmetry(D, tol) {
		for _, t := range Translations(R, reduced, sites, tol) {
			ret = append(ret, Op{R: R, T: t})
		}
	}
	return ret
}

//Rotations returns the distinct point operations among ops, in order of
//first appearance.
func Rotations(ops []Op) []v3.IMat3 {
	ret := make([]v3.IMat3, 0, len(ops))
	seen := make(map[v3.IMat3]bool, len(ops))
	for _, o := range ops {
		if !seen[o.R] {
			seen[o.R] = true
			ret = append(ret, o.R)
		}
	}
	return ret
}

//ToConventional expresses ops in the conventional cell given by M (columns
//are the conventional vectors in the basis of the ops) and adds the
//centering translations of c.
func ToConventional(ops []Op, M v3.IMat3, c Centering) []Op {
	Mi := M.Inv()
	Mf := M.Float()
	ct := c.Translations()
	ret := make([]Op, 0, len(ops)*(len(ct)+1))
	for _, o := range ops {
		R := Mi.Mul(o.R.Float()).Mul(Mf).Round()
		t := Mi.MulVec(o.T).Fract()
		ret = append(ret, Op{R: R, T: t})
		for _, c := range ct {
			ret = append(ret, Op{R: R, T: t.Add(c).Fract()})
		}
	}
	return ret
}

//FirstTranslations maps each point operation in ops to the translation of
//its first appearance.
func FirstTranslations(ops []Op) map[v3.IMat3]v3.Vec {
	ret := make(map[v3.IMat3]v3.Vec, len(ops))
	for _, o := range ops {
		if _, ok := ret[o.R]; !ok {
			ret[o.R] = o.T
		}
	}
	return ret
}
