/*
 * centering.go, part of gospg
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

//Centering is the lattice centering of a conventional cell: one of
//P, A, B, C, I, R, F (and H, the hexagonal triple cell, only found in the
//catalog).
type Centering byte

const (
	NoCentering  Centering = 0
	Primitive    Centering = 'P'
	ACentered    Centering = 'A'
	BCentered    Centering = 'B'
	CCentered    Centering = 'C'
	BodyCenter   Centering = 'I'
	Rhombohedral Centering = 'R'
	FaceCenter   Centering = 'F'
	HexagonalH   Centering = 'H'
)

func (c Centering) String() string {
	if c == NoCentering {
		return ""
	}
	return string(rune(c))
}

//centeringTranslations are the translations, in twelfths, that the
//centering adds to the conventional cell.
var centeringTranslations = map[Centering][]v3.IVec{
	Primitive:    {},
	ACentered:    {{0, 6, 6}},
	BCentered:    {{6, 0, 6}},
	CCentered:    {{6, 6, 0}},
	BodyCenter:   {{6, 6, 6}},
	FaceCenter:   {{0, 6, 6}, {6, 0, 6}, {6, 6, 0}},
	Rhombohedral: {{8, 4, 4}, {4, 8, 8}},
	HexagonalH:   {{8, 4, 0}, {0, 8, 4}},
}

//Translations returns the centering translations of c in fractional
//coordinates, not including the zero vector.
func (c Centering) Translations() []v3.Vec {
	t := centeringTranslations[c]
	ret := make([]v3.Vec, 0, len(t))
	for _, v := range t {
		ret = append(ret, v.Float().Scale(1.0/12))
	}
	return ret
}

//Multiplicity returns the number of lattice points in the conventional cell.
func (c Centering) Multiplicity() int {
	t, ok := centeringTranslations[c]
	if !ok {
		return 0
	}
	return len(t) + 1
}

//FindCentering returns the centering of the conventional cell given by the
//integer matrix M (columns are the conventional vectors in the primitive
//basis).
func FindCentering(M v3.IMat3) Centering {
	d := M.Det()
	if d < 0 {
		d = -d
	}
	switch d {
	case 1:
		return Primitive
	case 2:
		rowIs := func(pattern [3]bool) bool {
			for i := 0; i < 3; i++ {
				ok := true
				for j := 0; j < 3; j++ {
					if pattern[j] != (M[i][j] != 0) || (pattern[j] && M[i][j] != 1 && M[i][j] != -1) {
						ok = false
						break
					}
				}
				if ok {
					return true
				}
			}
			return false
		}
		switch {
		case rowIs([3]bool{true, false, false}):
			return ACentered
		case rowIs([3]bool{false, true, false}):
			return BCentered
		case rowIs([3]bool{false, false, true}):
			return CCentered
		}
		if abs(M[0][0])+abs(M[0][1])+abs(M[0][2]) == 2 {
			return BodyCenter
		}
		return NoCentering
	case 3:
		return Rhombohedral
	case 4:
		return FaceCenter
	}
	return NoCentering
}

//CorrectBasis returns the change of basis that moves the conventional cell
//M with centering c to the standard centering for its Laue class, together
//with that centering: A and B cells become C cells, monoclinic I cells become
//C cells, and reverse rhombohedral cells become obverse.
func CorrectBasis(M v3.IMat3, c Centering, laue Laue) (v3.IMat3, Centering) {
	d := M.Det()
	if d < 0 {
		d = -d
	}
	switch d {
	case 2:
		switch {
		case c == ACentered && laue == Laue2m:
			return v3.IntCols(v3.IVec{0, 0, 1}, v3.IVec{0, -1, 0}, v3.IVec{1, 0, 0}), CCentered
		case c == ACentered:
			return v3.IntCols(v3.IVec{0, 1, 0}, v3.IVec{0, 0, 1}, v3.IVec{1, 0, 0}), CCentered
		case c == BCentered:
			return v3.IntCols(v3.IVec{0, 0, 1}, v3.IVec{1, 0, 0}, v3.IVec{0, 1, 0}), CCentered
		case c == BodyCenter && laue == Laue2m:
			return v3.IntCols(v3.IVec{1, 0, 1}, v3.IVec{0, 1, 0}, v3.IVec{-1, 0, 0}), CCentered
		}
	case 3:
		m := v3.IntCols(v3.IVec{0, -1, 1}, v3.IVec{1, 0, -1}, v3.IVec{1, 1, 1}).Mul(M.Adj())
		g := 0
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				g = gcd(g, m[i][j])
			}
		}
		if g == 3 {
			return v3.IntCols(v3.IVec{1, 1, 0}, v3.IVec{-1, 0, 0}, v3.IVec{0, 0, 1}), c
		}
	}
	return v3.IntIdentity(), c
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func gcd(a, b int) int {
	a, b = abs(a), abs(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
