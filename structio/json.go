/*
 * json.go, part of gospg
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

package structio

import (
	"encoding/json"
	"io"

	"github.com/rmera/gospg/symmetry"
	v3 "github.com/rmera/gospg/v3"
)

//jsonAtom is the serialized form of an atom.
type jsonAtom struct {
	Pos       [3]float64 `json:"pos"`
	Type      int        `json:"type"`
	Species   string     `json:"species,omitempty"`
	Occupancy float64    `json:"occupancy,omitempty"`
}

//jsonStructure is the serialized form of a structure: the cell vectors as
//rows, in Angstrom, and the atoms in fractional coordinates.
type jsonStructure struct {
	Name  string        `json:"name,omitempty"`
	Cell  [3][3]float64 `json:"cell"`
	Atoms []jsonAtom    `json:"atoms"`
}

//ReadJSON reads a stream of JSON structures, one object after the other,
//until the end of r. The species names of the atoms, if given, must be the
//same for all the atoms of a Type.
func ReadJSON(r io.Reader) ([]*Structure, error) {
	const caller = "ReadJSON"
	dec := json.NewDecoder(r)
	ret := make([]*Structure, 0, 1)
	for {
		var js jsonStructure
		err := dec.Decode(&js)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, formatError(caller, "structure %d: %s", len(ret), err.Error())
		}
		s := &Structure{}
		s.Name = js.Name
		s.Lattice = v3.FromMat3(v3.Mat3(js.Cell))
		s.Atoms = make([]symmetry.Atom, len(js.Atoms))
		for i, a := range js.Atoms {
			if a.Type < 0 {
				return nil, formatError(caller, "structure %d, atom %d: negative type", len(ret), i)
			}
			s.Atoms[i] = symmetry.Atom{Position: v3.Vec(a.Pos), Type: a.Type, Occupancy: a.Occupancy}
			if a.Species == "" {
				continue
			}
			for len(s.Species) <= a.Type {
				s.Species = append(s.Species, "")
			}
			if prev := s.Species[a.Type]; prev != "" && prev != a.Species {
				return nil, formatError(caller, "structure %d: type %d is both %s and %s", len(ret), a.Type, prev, a.Species)
			}
			s.Species[a.Type] = a.Species
		}
		ret = append(ret, s)
	}
	if len(ret) == 0 {
		return nil, formatError(caller, "no structures")
	}
	return ret, nil
}

//WriteJSON writes the structures as a stream of JSON objects, one per line.
func WriteJSON(w io.Writer, structures ...*Structure) error {
	enc := json.NewEncoder(w)
	for _, s := range structures {
		if s == nil || s.Lattice == nil {
			return formatError("WriteJSON", "no structure to write")
		}
		rows, err := s.Lattice.Mat3()
		if err != nil {
			return formatError("WriteJSON", "%s", err.Error())
		}
		js := jsonStructure{Name: s.Name, Cell: [3][3]float64(rows), Atoms: make([]jsonAtom, len(s.Atoms))}
		for i, a := range s.Atoms {
			js.Atoms[i] = jsonAtom{Pos: [3]float64(a.Position), Type: a.Type, Occupancy: a.Occupancy}
			if a.Type < len(s.Species) {
				js.Atoms[i].Species = s.Species[a.Type]
			}
		}
		if err := enc.Encode(js); err != nil {
			return err
		}
	}
	return nil
}
