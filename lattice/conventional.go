/*
 * conventional.go, part of gospg
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

//Holohedry is the point group of the lattice of a crystal family.
type Holohedry int

const (
	NoHolohedry Holohedry = iota
	Triclinic
	Monoclinic
	Orthorhombic
	Tetragonal
	Trigonal
	Hexagonal
	Cubic
)

var holohedryNames = [...]string{"none", "triclinic", "monoclinic", "orthorhombic", "tetragonal", "trigonal", "hexagonal", "cubic"}

func (h Holohedry) String() string {
	if h < 0 || int(h) >= len(holohedryNames) {
		return "none"
	}
	return holohedryNames[h]
}

//Conventional returns the idealized conventional cell (vectors as columns)
//for a cell U already expressed in the conventional setting of the given
//crystal family. The qualifier "R" selects the rhombohedral setting for the
//trigonal family. The lengths and angles that the family constrains are
//averaged and the cell is put in the standard orientation, a along x
//and b in the xy plane (monoclinic: b along y).
func Conventional(U v3.Mat3, h Holohedry, qualifier string) v3.Mat3 {
	p := Params(U)
	a, b, c := p.A, p.B, p.C
	switch h {
	case Monoclinic:
		return v3.Cols(v3.Vec{a, 0, 0}, v3.Vec{0, b, 0}, v3.Vec{c * math.Cos(p.Beta), 0, c * math.Sin(p.Beta)})
	case Orthorhombic:
		return v3.Cols(v3.Vec{a, 0, 0}, v3.Vec{0, b, 0}, v3.Vec{0, 0, c})
	case Tetragonal:
		ab := (a + b) / 2
		return v3.Cols(v3.Vec{ab, 0, 0}, v3.Vec{0, ab, 0}, v3.Vec{0, 0, c})
	case Trigonal, Hexagonal:
		if h == Trigonal && qualifier == "R" {
			return rhombohedral(p)
		}
		ab := (a + b) / 2
		return v3.Cols(v3.Vec{ab, 0, 0}, v3.Vec{-ab / 2, ab / 2 * math.Sqrt(3), 0}, v3.Vec{0, 0, c})
	case Cubic:
		e := (a + b + c) / 3
		return v3.Cols(v3.Vec{e, 0, 0}, v3.Vec{0, e, 0}, v3.Vec{0, 0, e})
	}
	return triclinic(p)
}

func triclinic(p Parameters) v3.Mat3 {
	ca, cb, cg, sg := math.Cos(p.Alpha), math.Cos(p.Beta), math.Cos(p.Gamma), math.Sin(p.Gamma)
	t := p.C * math.Sqrt(math.Max(0, 1-ca*ca-cb*cb-cg*cg+2*ca*cb*cg)) / sg
	return v3.Cols(
		v3.Vec{p.A, 0, 0},
		v3.Vec{p.B * cg, p.B * sg, 0},
		v3.Vec{p.C * cb, p.C * (ca - cb*cg) / sg, t},
	)
}

//rhombohedral builds the rhombohedral cell from the averaged edge and angle,
//with the 3-fold axis along z.
func rhombohedral(p Parameters) v3.Mat3 {
	avg := (p.A + p.B + p.C) / 3
	angle := math.Acos((math.Cos(p.Alpha) + math.Cos(p.Beta) + math.Cos(p.Gamma)) / 3)
	ahex := 2 * avg * math.Sin(0.5*angle)
	chex := avg * math.Sqrt(3*(1+2*math.Cos(angle)))
	s3 := math.Sqrt(3)
	return v3.Cols(
		v3.Vec{ahex / 2, -ahex / (2 * s3), chex / 3},
		v3.Vec{0, ahex / s3, chex / 3},
		v3.Vec{-ahex / 2, -ahex / (2 * s3), chex / 3},
	)
}
