/*
 * atom.go, part of gospg
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
	"strconv"
	"strings"

	v3 "github.com/rmera/gospg/v3"
)

//Atom is an atom in a periodic structure.
type Atom struct {
	Position  v3.Vec  //fractional coordinates
	Type      int     //species, atoms of different Type are never equivalent
	Occupancy float64 //zero is read as a fully occupied site
}

//Partial returns true if the atom's site is only partially occupied.
func (A Atom) Partial() bool {
	return A.Occupancy > 0 && A.Occupancy < 1
}

//Options set the relaxed matching rules for the atoms.
type Options struct {
	//PartialOccupancies lets any two partially occupied sites match,
	//regardless of the Type of their atoms.
	PartialOccupancies bool
	//OverlappingTypes merges atoms sharing a site into one site, so different
	//species on the same site don't block an operation.
	OverlappingTypes bool
}

//Site is a position with a matching key. Two sites can be related by a
//symmetry operation only if they have the same key.
type Site struct {
	Position v3.Vec
	Key      int
}

const wildcard = "*"

//Sites builds the sites from the atoms under the given options.
func Sites(atoms []Atom, opts Options, tol v3.Tol) []Site {
	keys := make(map[string]int)
	keyOf := func(sig string) int {
		k, ok := keys[sig]
		if !ok {
			k = len(keys)
			keys[sig] = k
		}
		return k
	}
	sites := make([]Site, 0, len(atoms))
	if !opts.OverlappingTypes {
		for _, a := range atoms {
			sig := strconv.Itoa(a.Type)
			if opts.PartialOccupancies && a.Partial() {
				sig = wildcard
			}
			sites = append(sites, Site{Position: a.Position, Key: keyOf(sig)})
		}
		return sites
	}
	//group the atoms by position
	type group struct {
		pos     v3.Vec
		types   []int
		partial bool
	}
	groups := make([]*group, 0, len(atoms))
	for _, a := range atoms {
		var g *group
		for _, h := range groups {
			if tol.FracEq(h.pos, a.Position) {
				g = h
				break
			}
		}
		if g == nil {
			g = &group{pos: a.Position}
			groups = append(groups, g)
		}
		g.types = append(g.types, a.Type)
		g.partial = g.partial || a.Partial()
	}
	for _, g := range groups {
		sig := wildcard
		if !(opts.PartialOccupancies && g.partial) {
			sort.Ints(g.types)
			s := make([]string, 0, len(g.types))
			for i, t := range g.types {
				if i > 0 && t == g.types[i-1] {
					continue
				}
				s = append(s, strconv.Itoa(t))
			}
			sig = strings.Join(s, ",")
		}
		sites = append(sites, Site{Position: g.pos, Key: keyOf(sig)})
	}
	return sites
}

//MinimumKey returns the key shared by the fewest sites. Ties go to the
//key that appears first.
func MinimumKey(sites []Site) int {
	if len(sites) == 0 {
		return -1
	}
	count := make(map[int]int)
	order := make([]int, 0)
	for _, s := range sites {
		if _, ok := count[s.Key]; !ok {
			order = append(order, s.Key)
		}
		count[s.Key]++
	}
	best := order[0]
	for _, k := range order {
		if count[k] < count[best] {
			best = k
		}
	}
	return best
}

//WithKey returns the sites with the given key.
func WithKey(sites []Site, key int) []Site {
	ret := make([]Site, 0, len(sites))
	for _, s := range sites {
		if s.Key == key {
			ret = append(ret, s)
		}
	}
	return ret
}
