/*
 * niggli.go, part of gospg
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
	v3 "github.com/rmera/gospg/v3"
)

//MaxNiggliIterations bounds the Niggli reduction loop.
const MaxNiggliIterations = 10000

//Niggli performs the Krivy-Gruber reduction of the lattice U (cell vectors
//as columns) and returns the integer change of basis C, such that U·C is the
//Niggli-reduced cell. It returns false if the reduction did not converge.
func Niggli(U v3.Mat3, tol v3.Tol) (v3.IMat3, bool) {
	a, b, c := U.Col(0), U.Col(1), U.Col(2)
	A, B, C := a.Norm2(), b.Norm2(), c.Norm2()
	xi, eta, zeta := 2*b.Dot(c), 2*a.Dot(c), 2*a.Dot(b)
	cob := v3.IntIdentity()
	mul := func(c0, c1, c2 v3.IVec) {
		cob = cob.Mul(v3.IntCols(c0, c1, c2))
	}
	for counter := 0; ; counter++ {
		if counter >= MaxNiggliIterations {
			return v3.IMat3{}, false
		}
		//step 1
		if tol.Gt(A, B) || (tol.Eq(A, B) && tol.Gt(abs(xi), abs(eta))) {
			A, B = B, A
			xi, eta = eta, xi
			mul(v3.IVec{0, -1, 0}, v3.IVec{-1, 0, 0}, v3.IVec{0, 0, -1})
		}
		//step 2
		if tol.Gt(B, C) || (tol.Eq(B, C) && tol.Gt(abs(eta), abs(zeta))) {
			B, C = C, B
			eta, zeta = zeta, eta
			mul(v3.IVec{-1, 0, 0}, v3.IVec{0, 0, -1}, v3.IVec{0, -1, 0})
			continue
		}
		//steps 3 and 4
		var npos, nzero int
		for _, x := range []float64{xi, eta, zeta} {
			if tol.Lt(0, x) {
				npos++
			} else if !tol.Lt(x, 0) {
				nzero++
			}
		}
		f := [3]int{1, 1, 1}
		if npos == 3 || (nzero == 0 && npos == 1) {
			if tol.Lt(xi, 0) {
				f[0] = -1
			}
			if tol.Lt(eta, 0) {
				f[1] = -1
			}
			if tol.Lt(zeta, 0) {
				f[2] = -1
			}
			xi, eta, zeta = abs(xi), abs(eta), abs(zeta)
		} else {
			p := -1
			if tol.Gt(xi, 0) {
				f[0] = -1
			} else if !tol.Lt(xi, 0) {
				p = 0
			}
			if tol.Gt(eta, 0) {
				f[1] = -1
			} else if !tol.Lt(eta, 0) {
				p = 1
			}
			if tol.Gt(zeta, 0) {
				f[2] = -1
			} else if !tol.Lt(zeta, 0) {
				p = 2
			}
			if f[0]*f[1]*f[2] < 0 && p >= 0 {
				f[p] = -1
			}
			xi, eta, zeta = -abs(xi), -abs(eta), -abs(zeta)
		}
		mul(v3.IVec{f[0], 0, 0}, v3.IVec{0, f[1], 0}, v3.IVec{0, 0, f[2]})
		//step 5
		if tol.Gt(abs(xi), B) || (tol.Eq(xi, B) && tol.Lt(2*eta, zeta)) || (tol.Eq(xi, -B) && tol.Lt(zeta, 0)) {
			s := sign(xi)
			C = B + C - xi*float64(s)
			eta = eta - zeta*float64(s)
			xi = xi - 2*B*float64(s)
			mul(v3.IVec{1, 0, 0}, v3.IVec{0, 1, 0}, v3.IVec{0, -s, 1})
			continue
		}
		//step 6
		if tol.Gt(abs(eta), A) || (tol.Eq(eta, A) && tol.Lt(2*xi, zeta)) || (tol.Eq(eta, -A) && tol.Lt(zeta, 0)) {
			s := sign(eta)
			C = A + C - eta*float64(s)
			xi = xi - zeta*float64(s)
			eta = eta - 2*A*float64(s)
			mul(v3.IVec{1, 0, 0}, v3.IVec{0, 1, 0}, v3.IVec{-s, 0, 1})
			continue
		}
		//step 7
		if tol.Gt(abs(zeta), A) || (tol.Eq(zeta, A) && tol.Lt(2*xi, eta)) || (tol.Eq(zeta, -A) && tol.Lt(eta, 0)) {
			s := sign(zeta)
			B = A + B - zeta*float64(s)
			xi = xi - eta*float64(s)
			zeta = zeta - 2*A*float64(s)
			mul(v3.IVec{1, 0, 0}, v3.IVec{-s, 1, 0}, v3.IVec{0, 0, 1})
			continue
		}
		//step 8
		sum := xi + eta + zeta + A + B
		if tol.Lt(sum, 0) || (tol.Eq(sum, 0) && tol.Gt(2*(A+eta)+zeta, 0)) {
			C = A + B + C + xi + eta + zeta
			xi = 2*B + xi + zeta
			eta = 2*A + eta + zeta
			mul(v3.IVec{1, 0, 0}, v3.IVec{0, 1, 0}, v3.IVec{1, 1, 1})
			continue
		}
		break
	}
	return cob, true
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
