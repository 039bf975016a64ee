/*
 * primitive.go, part of gospg
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
	"math"

	v3 "github.com/rmera/gospg/v3"
)

//OverlapAll returns true if the operation (R, t) maps every site onto a site
//with the same key. It returns at the first site without an image.
func OverlapAll(R v3.IMat3, t v3.Vec, sites []Site, tol v3.Tol) bool {
	Rf := R.Float()
	for _, s := range sites {
		q := Rf.MulVec(s.Position).Add(t)
		found := false
		for _, o := range sites {
			//the key comparison is much cheaper than the position one
			if o.Key != s.Key {
				continue
			}
			if tol.FracEq(q, o.Position) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

//FindPrimitive returns the smallest cell (vectors as columns) that
//describes the structure. reduced is a subset of sites, usually those with
//the least frequent key, whose differences are the candidate translations. If
//no translation other than those of U leaves the sites unchanged, U is
//returned. The volume of the result divides that of U.
func FindPrimitive(reduced, sites []Site, U v3.Mat3, tol v3.Tol) v3.Mat3 {
	if len(reduced) == 0 || len(sites) == 0 {
		return U
	}
	id := v3.IntIdentity()
	origin := reduced[0].Position
	translations := make([]v3.Vec, 0, len(reduced)+2)
	for _, r := range reduced[1:] {
		t := r.Position.Sub(origin).Wrap()
		if tol.FracZero(t) {
			continue
		}
		if OverlapAll(id, t, sites, tol) {
			translations = append(translations, t)
		}
	}
	if len(translations) == 0 {
		return U
	}
	translations = append(translations, v3.Vec{1, 0, 0}, v3.Vec{0, 1, 0}, v3.Vec{0, 0, 1})
	n := len(translations)
	V := math.Abs(U.Det())
	var best v3.Mat3
	bestVolume := V
	found := false
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				rel := v3.Cols(translations[i], translations[j], translations[k])
				vol := math.Abs(rel.Det()) * V
				if vol <= float64(tol) || vol >= bestVolume-float64(tol) {
					continue
				}
				best, bestVolume, found = rel, vol, true
				//n-2 lattice points in the original cell: this is the primitive cell
				if int(math.Round(V/vol)) == n-2 {
					return integralCell(U, best)
				}
			}
		}
	}
	if !found {
		return U
	}
	return integralCell(U, best)
}

//integralCell returns U·rel, with rel rounded so that its inverse is
//an integer matrix, and the volume of the result divides that of U.
func integralCell(U, rel v3.Mat3) v3.Mat3 {
	inv := rel.Inv().Round()
	return U.Mul(inv.Inv())
}

//Trim expresses the sites, given in the cell from, in the smaller cell to,
//and removes the copies that are the same site in the new cell.
func Trim(sites []Site, from, to v3.Mat3, tol v3.Tol) []Site {
	cob := to.Inv().Mul(from)
	ret := make([]Site, 0, len(sites))
	for _, s := range sites {
		p := cob.MulVec(s.Position).Fract()
		dup := false
		for _, o := range ret {
			if o.Key == s.Key && tol.FracEq(p, o.Position) {
				dup = true
				break
			}
		}
		if !dup {
			ret = append(ret, Site{Position: p, Key: s.Key})
		}
	}
	return ret
}

//Translations returns the translations t for which (R, t) is a symmetry
//operation of the sites. The candidates are the differences between the image
//of the first reduced site and every reduced site.
func Translations(R v3.IMat3, reduced, sites []Site, tol v3.Tol) []v3.Vec {
	if len(reduced) == 0 {
		return nil
	}
	o := R.MulVec(reduced[0].Position)
	ret := make([]v3.Vec, 0, 1)
	for _, r := range reduced {
		t := r.Position.Sub(o)
		if OverlapAll(R, t, sites, tol) {
			ret = append(ret, t)
		}
	}
	return ret
}
