/*
 * hall.go, part of gospg
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

package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rmera/gospg/symmetry"
	v3 "github.com/rmera/gospg/v3"
)

//Op is a space group operation with the translation in twelfths of the
//cell vectors.
type Op struct {
	R v3.IMat3
	T v3.IVec
}

//Float returns the operation with a fractional translation.
func (O Op) Float() symmetry.Op {
	return symmetry.Op{R: O.R, T: O.T.Float().Scale(1.0 / 12)}
}

func (O Op) mul(P Op) Op {
	t := O.R.MulIVec(P.T)
	return Op{R: O.R.Mul(P.R), T: mod12(v3.IVec{O.T[0] + t[0], O.T[1] + t[1], O.T[2] + t[2]})}
}

//shift returns the operation in a setting with the origin moved by v
//(twelfths): t' = t + (I-R)v.
func (O Op) shift(v v3.IVec) Op {
	d := v3.IntIdentity().Sub(O.R).MulIVec(v)
	return Op{R: O.R, T: mod12(v3.IVec{O.T[0] + d[0], O.T[1] + d[1], O.T[2] + d[2]})}
}

func mod12(v v3.IVec) v3.IVec {
	for i := range v {
		v[i] %= 12
		if v[i] < 0 {
			v[i] += 12
		}
	}
	return v
}

func diag(a, b, c int) v3.IMat3 {
	return v3.IMat3{{a, 0, 0}, {0, b, 0}, {0, 0, c}}
}

//matrix symbols: order and axis. The primed axes are the face diagonals
//' and " perpendicular to the preceding axis, * is the body diagonal.
type rotKey struct {
	n    string
	axis byte
}

var hallRotations = map[rotKey]v3.IMat3{
	{"1", 0}:   v3.IntIdentity(),
	{"2", 'x'}: diag(1, -1, -1),
	{"2", 'y'}: diag(-1, 1, -1),
	{"2", 'z'}: diag(-1, -1, 1),
	{"3", 'x'}: {{1, 0, 0}, {0, 0, -1}, {0, 1, -1}},
	{"3", 'y'}: {{-1, 0, 1}, {0, 1, 0}, {-1, 0, 0}},
	{"3", 'z'}: {{0, -1, 0}, {1, -1, 0}, {0, 0, 1}},
	{"4", 'x'}: {{1, 0, 0}, {0, 0, -1}, {0, 1, 0}},
	{"4", 'y'}: {{0, 0, 1}, {0, 1, 0}, {-1, 0, 0}},
	{"4", 'z'}: {{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
	{"6", 'x'}: {{1, 0, 0}, {0, 1, -1}, {0, 1, 0}},
	{"6", 'y'}: {{0, 0, 1}, {0, 1, 0}, {-1, 0, 1}},
	{"6", 'z'}: {{1, -1, 0}, {1, 0, 0}, {0, 0, 1}},
	{"3", '*'}: {{0, 0, 1}, {1, 0, 0}, {0, 1, 0}},

	{"2'", 'z'}:  {{0, -1, 0}, {-1, 0, 0}, {0, 0, -1}},
	{"2\"", 'z'}: {{0, 1, 0}, {1, 0, 0}, {0, 0, -1}},
	{"2'", 'x'}:  {{-1, 0, 0}, {0, 0, -1}, {0, -1, 0}},
	{"2\"", 'x'}: {{-1, 0, 0}, {0, 0, 1}, {0, 1, 0}},
	{"2'", 'y'}:  {{0, 0, -1}, {0, -1, 0}, {-1, 0, 0}},
	{"2\"", 'y'}: {{0, 0, 1}, {0, -1, 0}, {1, 0, 0}},
}

//translation symbols, in twelfths
var hallTranslations = map[byte]v3.IVec{
	'a': {6, 0, 0},
	'b': {0, 6, 0},
	'c': {0, 0, 6},
	'n': {6, 6, 6},
	'u': {3, 0, 0},
	'v': {0, 3, 0},
	'w': {0, 0, 3},
	'd': {3, 3, 3},
}

var axisIndex = map[byte]int{'x': 0, 'y': 1, 'z': 2}

//Group is a space group as given by a Hall symbol: the lattice centering,
//the generators and the operations, one per point operation. The
//centering translations are not included in Ops.
type Group struct {
	Centering  symmetry.Centering
	Generators []Op
	Ops        []Op
}

//ParseHall parses a Hall symbol, such as "-P 2ac 2n" or "P 4w 2c (0 0 1)",
//and builds the group it describes.
func ParseHall(symbol string) (*Group, error) {
	sym := strings.TrimSpace(symbol)
	var shift v3.IVec
	if i := strings.Index(sym, "("); i >= 0 {
		j := strings.Index(sym, ")")
		if j < i {
			return nil, hallError(symbol, "unbalanced parenthesis")
		}
		f := strings.Fields(sym[i+1 : j])
		if len(f) != 3 {
			return nil, hallError(symbol, "the origin shift needs 3 components")
		}
		for k, s := range f {
			n, err := strconv.Atoi(s)
			if err != nil {
				return nil, hallError(symbol, "bad origin shift "+s)
			}
			shift[k] = n
		}
		sym = sym[:i]
	}
	tokens := strings.Fields(sym)
	if len(tokens) < 2 {
		return nil, hallError(symbol, "too few symbols")
	}
	G := &Group{}
	lat := tokens[0]
	if strings.HasPrefix(lat, "-") {
		G.Generators = append(G.Generators, Op{R: v3.IntIdentity().Neg()})
		lat = lat[1:]
	}
	if len(lat) != 1 || !strings.Contains("PABCIRF", lat) {
		return nil, hallError(symbol, "unknown lattice symbol "+tokens[0])
	}
	G.Centering = symmetry.Centering(lat[0])
	var prevN string
	var prevAxis byte
	for idx, tok := range tokens[1:] {
		improper := strings.HasPrefix(tok, "-")
		tok = strings.TrimPrefix(tok, "-")
		if tok == "" {
			return nil, hallError(symbol, "empty matrix symbol")
		}
		n, rest := tok[:1], tok[1:]
		var axis byte
		if rest != "" && strings.IndexByte("xyz*'\"", rest[0]) >= 0 {
			axis, rest = rest[0], rest[1:]
		}
		if axis == 0 {
			switch {
			case idx == 0:
				axis = 'z'
			case idx == 1 && n == "2" && (prevN == "2" || prevN == "4"):
				axis = 'x'
			case idx == 1 && n == "2" && (prevN == "3" || prevN == "6"):
				axis = '\''
			case idx == 2 && n == "3":
				axis = '*'
			}
		}
		var key rotKey
		var screwAxis byte
		switch {
		case n == "1":
			key = rotKey{"1", 0}
		case axis == '\'' || axis == '"':
			//after a body diagonal the face diagonals are taken about z
			ref := prevAxis
			if ref == 0 || ref == '*' {
				ref = 'z'
			}
			key = rotKey{n + string(axis), ref}
		default:
			key = rotKey{n, axis}
			screwAxis = axis
		}
		R, ok := hallRotations[key]
		if !ok {
			return nil, hallError(symbol, "unknown matrix symbol "+tok)
		}
		var t v3.IVec
		for k := 0; k < len(rest); k++ {
			c := rest[k]
			if c >= '0' && c <= '9' {
				ax, ok := axisIndex[screwAxis]
				if !ok {
					return nil, hallError(symbol, "screw translation without an axis in "+tok)
				}
				order, _ := strconv.Atoi(n)
				t[ax] += 12 * int(c-'0') / order
				continue
			}
			v, ok := hallTranslations[c]
			if !ok {
				return nil, hallError(symbol, "unknown translation symbol "+string(c))
			}
			t = v3.IVec{t[0] + v[0], t[1] + v[1], t[2] + v[2]}
		}
		if improper {
			R = R.Neg()
		}
		G.Generators = append(G.Generators, Op{R: R, T: mod12(t)})
		prevN = n
		if screwAxis != 0 {
			prevAxis = screwAxis
		}
	}
	G.Ops = closure(G.Generators)
	for i := range G.Ops {
		G.Ops[i] = G.Ops[i].shift(shift)
	}
	for i := range G.Generators {
		G.Generators[i] = G.Generators[i].shift(shift)
	}
	return G, nil
}

//closure returns the group generated by gens, one operation per point
//operation, starting with the identity.
func closure(gens []Op) []Op {
	ret := []Op{{R: v3.IntIdentity()}}
	seen := map[v3.IMat3]bool{v3.IntIdentity(): true}
	for changed := true; changed; {
		changed = false
		for i := 0; i < len(ret); i++ {
			for _, g := range gens {
				n := ret[i].mul(g)
				if !seen[n.R] {
					seen[n.R] = true
					ret = append(ret, n)
					changed = true
				}
			}
		}
	}
	return ret
}

func hallError(symbol, msg string) error {
	return Error{message: fmt.Sprintf("Invalid Hall symbol %q: %s", symbol, msg), kind: ErrInvalidInput, critical: true}
}
