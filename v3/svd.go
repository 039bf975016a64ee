/*
 * svd.go, part of gospg.
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
	"gonum.org/v1/gonum/mat"
)

//NearestRotation returns the proper rotation closest to a (in the
//Frobenius sense), obtained from the polar decomposition a = R·P through
//the singular value decomposition a = U·S·Vt, R = U·diag(1,1,d)·Vt with
//d = sign(det(U·Vt)).
func NearestRotation(a Mat3) (Mat3, error) {
	A := FromMat3(a)
	var svd mat.SVD
	if ok := svd.Factorize(Matrix2Dense(A), mat.SVDFull); !ok {
		return Mat3{}, Error{"SVD factorization failed", []string{"NearestRotation"}, true}
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	var r mat.Dense
	r.Mul(&u, v.T())
	if mat.Det(&r) < 0 {
		//flip the direction associated with the smallest singular value
		for i := 0; i < 3; i++ {
			u.Set(i, 2, -u.At(i, 2))
		}
		r.Mul(&u, v.T())
	}
	ret, err := Dense2Matrix(&r).Mat3()
	if err != nil {
		return Mat3{}, errDecorate(err, "NearestRotation")
	}
	return ret, nil
}
