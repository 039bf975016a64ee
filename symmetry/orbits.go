/*
 * orbits.go, part of gospg
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

	v3 "github.com/rmera/gospg/v3"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

//Orbits groups the atoms into orbits of the operations ops: two atoms are
//in the same orbit if they have the same Type and some operation maps one
//onto the other. Each orbit is a sorted slice of atom indexes, and the orbits
//are sorted by their first index.
func Orbits(atoms []Atom, ops []Op, tol v3.Tol) [][]int {
	g := simple.NewUndirectedGraph()
	for i := range atoms {
		g.AddNode(simple.Node(i))
	}
	for i, a := range atoms {
		for _, o := range ops {
			q := o.Apply(a.Position)
			for j := i + 1; j < len(atoms); j++ {
				if atoms[j].Type != a.Type || g.HasEdgeBetween(int64(i), int64(j)) {
					continue
				}
				if tol.FracEq(q, atoms[j].Position) {
					g.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(j)})
				}
			}
		}
	}
	cc := topo.ConnectedComponents(g)
	ret := make([][]int, 0, len(cc))
	for _, c := range cc {
		orbit := make([]int, 0, len(c))
		for _, n := range c {
			orbit = append(orbit, int(n.ID()))
		}
		sort.Ints(orbit)
		ret = append(ret, orbit)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i][0] < ret[j][0] })
	return ret
}

//Asymmetric returns the first atom of each orbit of ops, i.e. an
//asymmetric unit of the structure.
func Asymmetric(atoms []Atom, ops []Op, tol v3.Tol) []Atom {
	orbits := Orbits(atoms, ops, tol)
	ret := make([]Atom, 0, len(orbits))
	for _, o := range orbits {
		ret = append(ret, atoms[o[0]])
	}
	return ret
}

//Expand applies every operation in ops to the atoms and returns the
//distinct images, with positions in [0,1). Images that coincide with an
//earlier one of the same Type and Occupancy are dropped.
func Expand(atoms []Atom, ops []Op, tol v3.Tol) []Atom {
	ret := make([]Atom, 0, len(atoms)*len(ops))
	for _, a := range atoms {
		for _, o := range ops {
			b := Atom{Position: o.Apply(a.Position).Fract(), Type: a.Type, Occupancy: a.Occupancy}
			dup := false
			for _, c := range ret {
				if c.Type == b.Type && c.Occupancy == b.Occupancy && tol.FracEq(c.Position, b.Position) {
					dup = true
					break
				}
			}
			if !dup {
				ret = append(ret, b)
			}
		}
	}
	return ret
}

//Dedupe removes the atoms that repeat an earlier one, by Type, Occupancy
//and position, and brings the positions into [0,1).
func Dedupe(atoms []Atom, tol v3.Tol) []Atom {
	return Expand(atoms, []Op{{R: v3.IntIdentity()}}, tol)
}

//SymmetricPositions returns the distinct images of p under ops, in [0,1),
//p's own image first if the identity is the first operation.
func SymmetricPositions(p v3.Vec, ops []Op, tol v3.Tol) []v3.Vec {
	ret := make([]v3.Vec, 0, len(ops))
	for _, o := range ops {
		q := o.Apply(p).Fract()
		dup := false
		for _, r := range ret {
			if tol.FracEq(q, r) {
				dup = true
				break
			}
		}
		if !dup {
			ret = append(ret, q)
		}
	}
	return ret
}
