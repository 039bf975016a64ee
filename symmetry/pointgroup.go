/*
 * pointgroup.go, part of gospg
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
	"sort"

	"github.com/rmera/gospg/lattice"
	v3 "github.com/rmera/gospg/v3"
)

//Laue is a Laue class
type Laue int

const (
	NoLaue Laue = iota
	Laue1
	Laue2m
	LaueMMM
	Laue4m
	Laue4mmm
	Laue3
	Laue3m
	Laue6m
	Laue6mmm
	LaueM3
	LaueM3m
)

var laueNames = [...]string{"", "-1", "2/m", "mmm", "4/m", "4/mmm", "-3", "-3m", "6/m", "6/mmm", "m-3", "m-3m"}

func (l Laue) String() string {
	if l < 0 || int(l) >= len(laueNames) {
		return ""
	}
	return laueNames[l]
}

//characteristic is the type of the rotations that define the conventional
//axes in each Laue class.
func (l Laue) characteristic() int {
	switch l {
	case Laue2m, LaueMMM, LaueM3:
		return 2
	case Laue4m, Laue4mmm, LaueM3m:
		return 4
	case Laue3, Laue3m, Laue6m, Laue6mmm:
		return 3
	}
	return 0
}

//PointGroup is one of the 32 crystallographic point groups.
type PointGroup struct {
	Number          int //1 to 32
	Symbol          string
	Schoenflies     string
	Laue            Laue
	Holohedry       lattice.Holohedry
	Centrosymmetric bool
	Order           int
}

//rotation types in the order used for the histograms below
var typeIndex = map[int]int{-6: 0, -4: 1, -3: 2, -2: 3, -1: 4, 1: 5, 2: 6, 3: 7, 4: 8, 6: 9}

type pgRow struct {
	table       [10]int
	symbol      string
	schoenflies string
	laue        Laue
	holohedry   lattice.Holohedry
}

var pointGroups = []pgRow{
	{[10]int{0, 0, 0, 0, 0, 1, 0, 0, 0, 0}, "1", "C1", Laue1, lattice.Triclinic},
	{[10]int{0, 0, 0, 0, 1, 1, 0, 0, 0, 0}, "-1", "Ci", Laue1, lattice.Triclinic},
	{[10]int{0, 0, 0, 0, 0, 1, 1, 0, 0, 0}, "2", "C2", Laue2m, lattice.Monoclinic},
	{[10]int{0, 0, 0, 1, 0, 1, 0, 0, 0, 0}, "m", "Cs", Laue2m, lattice.Monoclinic},
	{[10]int{0, 0, 0, 1, 1, 1, 1, 0, 0, 0}, "2/m", "C2h", Laue2m, lattice.Monoclinic},
	{[10]int{0, 0, 0, 0, 0, 1, 3, 0, 0, 0}, "222", "D2", LaueMMM, lattice.Orthorhombic},
	{[10]int{0, 0, 0, 2, 0, 1, 1, 0, 0, 0}, "mm2", "C2v", LaueMMM, lattice.Orthorhombic},
	{[10]int{0, 0, 0, 3, 1, 1, 3, 0, 0, 0}, "mmm", "D2h", LaueMMM, lattice.Orthorhombic},
	{[10]int{0, 0, 0, 0, 0, 1, 1, 0, 2, 0}, "4", "C4", Laue4m, lattice.Tetragonal},
	{[10]int{0, 2, 0, 0, 0, 1, 1, 0, 0, 0}, "-4", "S4", Laue4m, lattice.Tetragonal},
	{[10]int{0, 2, 0, 1, 1, 1, 1, 0, 2, 0}, "4/m", "C4h", Laue4m, lattice.Tetragonal},
	{[10]int{0, 0, 0, 0, 0, 1, 5, 0, 2, 0}, "422", "D4", Laue4mmm, lattice.Tetragonal},
	{[10]int{0, 0, 0, 4, 0, 1, 1, 0, 2, 0}, "4mm", "C4v", Laue4mmm, lattice.Tetragonal},
	{[10]int{0, 2, 0, 2, 0, 1, 3, 0, 0, 0}, "-42m", "D2d", Laue4mmm, lattice.Tetragonal},
	{[10]int{0, 2, 0, 5, 1, 1, 5, 0, 2, 0}, "4/mmm", "D4h", Laue4mmm, lattice.Tetragonal},
	{[10]int{0, 0, 0, 0, 0, 1, 0, 2, 0, 0}, "3", "C3", Laue3, lattice.Trigonal},
	{[10]int{0, 0, 2, 0, 1, 1, 0, 2, 0, 0}, "-3", "C3i", Laue3, lattice.Trigonal},
	{[10]int{0, 0, 0, 0, 0, 1, 3, 2, 0, 0}, "32", "D3", Laue3m, lattice.Trigonal},
	{[10]int{0, 0, 0, 3, 0, 1, 0, 2, 0, 0}, "3m", "C3v", Laue3m, lattice.Trigonal},
	{[10]int{0, 0, 2, 3, 1, 1, 3, 2, 0, 0}, "-3m", "D3d", Laue3m, lattice.Trigonal},
	{[10]int{0, 0, 0, 0, 0, 1, 1, 2, 0, 2}, "6", "C6", Laue6m, lattice.Hexagonal},
	{[10]int{2, 0, 0, 1, 0, 1, 0, 2, 0, 0}, "-6", "C3h", Laue6m, lattice.Hexagonal},
	{[10]int{2, 0, 2, 1, 1, 1, 1, 2, 0, 2}, "6/m", "C6h", Laue6m, lattice.Hexagonal},
	{[10]int{0, 0, 0, 0, 0, 1, 7, 2, 0, 2}, "622", "D6", Laue6mmm, lattice.Hexagonal},
	{[10]int{0, 0, 0, 6, 0, 1, 1, 2, 0, 2}, "6mm", "C6v", Laue6mmm, lattice.Hexagonal},
	{[10]int{2, 0, 0, 4, 0, 1, 3, 2, 0, 0}, "-6m2", "D3h", Laue6mmm, lattice.Hexagonal},
	{[10]int{2, 0, 2, 7, 1, 1, 7, 2, 0, 2}, "6/mmm", "D6h", Laue6mmm, lattice.Hexagonal},
	{[10]int{0, 0, 0, 0, 0, 1, 3, 8, 0, 0}, "23", "T", LaueM3, lattice.Cubic},
	{[10]int{0, 0, 8, 3, 1, 1, 3, 8, 0, 0}, "m-3", "Th", LaueM3, lattice.Cubic},
	{[10]int{0, 0, 0, 0, 0, 1, 9, 8, 6, 0}, "432", "O", LaueM3m, lattice.Cubic},
	{[10]int{0, 6, 0, 6, 0, 1, 3, 8, 0, 0}, "-43m", "Td", LaueM3m, lattice.Cubic},
	{[10]int{0, 6, 8, 9, 1, 1, 9, 8, 6, 0}, "m-3m", "Oh", LaueM3m, lattice.Cubic},
}

//PointGroupByNumber returns the point group with the given number (1-32).
func PointGroupByNumber(n int) (PointGroup, bool) {
	if n < 1 || n > len(pointGroups) {
		return PointGroup{}, false
	}
	r := pointGroups[n-1]
	order := 0
	for _, c := range r.table {
		order += c
	}
	return PointGroup{
		Number:          n,
		Symbol:          r.symbol,
		Schoenflies:     r.schoenflies,
		Laue:            r.laue,
		Holohedry:       r.holohedry,
		Centrosymmetric: r.table[typeIndex[-1]] > 0,
		Order:           order,
	}, true
}

//FindPointGroup identifies the point group formed by the given (distinct)
//rotations from the number of operations of each type.
func FindPointGroup(rotations []v3.IMat3) (PointGroup, bool) {
	var table [10]int
	for _, R := range rotations {
		i, ok := typeIndex[RotationType(R)]
		if !ok {
			return PointGroup{}, false
		}
		table[i]++
	}
	for i, r := range pointGroups {
		if r.table == table {
			return PointGroupByNumber(i + 1)
		}
	}
	return PointGroup{}, false
}

//ConstructAxes returns the integer matrix whose columns are the
//conventional axes of the point group formed by rotations, in the basis in
//which the rotations are expressed. The cell it defines may still need
//a reduction (triclinic, monoclinic) or a centering correction. Only the
//monoclinic axes can be left-handed.
func ConstructAxes(rotations []v3.IMat3, laue Laue) (v3.IMat3, bool) {
	want := laue.characteristic()
	switch laue {
	case Laue1:
		return v3.IntIdentity(), true
	case Laue2m:
		for _, R := range rotations {
			Rp := Proper(R)
			if RotationType(Rp) != 2 {
				continue
			}
			a1, _ := RotationAxis(Rp)
			ortho := OrthogonalAxes(Rp)
			sort.SliceStable(ortho, func(i, j int) bool { return ortho[i].Norm2() < ortho[j].Norm2() })
			if len(ortho) < 2 {
				return v3.IMat3{}, false
			}
			//the handedness is left as found, the monoclinic reduction
			//reverses the unique axis of a left-handed cell
			a0 := ortho[0]
			for _, a2 := range ortho[1:] {
				M := v3.IntCols(a0, a1, a2)
				if M.Det() != 0 {
					return M, true
				}
			}
			return v3.IMat3{}, false
		}
		return v3.IMat3{}, false
	case LaueMMM, LaueM3, LaueM3m:
		axes := make([]v3.IVec, 0, 3)
		for _, R := range rotations {
			if RotationType(Proper(R)) != want {
				continue
			}
			a, _ := RotationAxis(R)
			seen := false
			for _, b := range axes {
				if b == a {
					seen = true
					break
				}
			}
			if !seen {
				axes = append(axes, a)
			}
		}
		if len(axes) < 3 {
			return v3.IMat3{}, false
		}
		sort.SliceStable(axes, func(i, j int) bool { return axisIndex(axes[i]) < axisIndex(axes[j]) })
		M := v3.IntCols(axes[0], axes[1], axes[2])
		if M.Det() < 0 {
			M = v3.IntCols(axes[0], axes[2], axes[1])
		}
		return M, M.Det() != 0
	case Laue4m, Laue4mmm, Laue3, Laue3m, Laue6m, Laue6mmm:
		for _, R := range rotations {
			Rp := Proper(R)
			if RotationType(Rp) != want {
				continue
			}
			a2, _ := RotationAxis(Rp)
			for _, o := range OrthogonalAxes(Rp) {
				v := Rp.MulIVec(o)
				if axisIndex(v) < 0 && axisIndex(v.Neg()) < 0 {
					continue
				}
				M := v3.IntCols(o, v, a2)
				d := M.Det()
				if d == 0 || d >= 4 || d <= -4 {
					continue
				}
				if d < 0 {
					M = v3.IntCols(v, o, a2)
				}
				return M, true
			}
			return v3.IMat3{}, false
		}
	}
	return v3.IMat3{}, false
}
