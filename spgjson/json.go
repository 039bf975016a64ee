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

package spgjson

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"

	spg "github.com/rmera/gospg"
	v3 "github.com/rmera/gospg/v3"
)

//An easily JSON-serializable error type.
type Error struct {
	deco          []string
	IsError       bool //If this is false (no error) all the other fields will be at their zero-values.
	InOptions     bool //Was it in parsing the options?
	InStructure   bool //Was it in parsing a structure?
	InProcess     bool
	InPostProcess bool   //was it in preparing the output?
	Structure     int    //Which structure, counting from 0
	Function      string //which go function gave the error
	Message       string //the error itself
	NotFound      bool   //the search ran but found no space group
}

//Error implements the error interface
func (J *Error) Error() string {
	return J.Message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec == "" {
		return J.deco
	}
	J.deco = append(J.deco, dec)
	return J.deco
}

//Serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - "))
	}
	return ret
}

//NewError takes an error and some additional info to create a json-marshal-ble error.
//where is one of "options", "structure", "postprocess" or anything else for the
//search itself.
func NewError(where, function string, err error) *Error {
	jerr := new(Error)
	jerr.IsError = true
	switch where {
	case "options":
		jerr.InOptions = true
	case "structure":
		jerr.InStructure = true
	case "postprocess":
		jerr.InPostProcess = true
	default:
		jerr.InProcess = true
		jerr.NotFound = spg.NotFound(err)
	}
	jerr.Function = function
	jerr.Message = err.Error()
	return jerr
}

//Options passed from the calling external program
type Options struct {
	Precision          float64 //zero means the default
	PartialOccupancies bool
	OverlappingTypes   bool
	Structures         int //how many structures will follow
}

//SpgOptions returns the search options equivalent to O.
func (O *Options) SpgOptions() []spg.Option {
	ret := []spg.Option{spg.WithPartialOccupancies(O.PartialOccupancies), spg.WithOverlappingAtomTypes(O.OverlappingTypes)}
	if O.Precision != 0 {
		ret = append(ret, spg.WithPrecision(O.Precision))
	}
	return ret
}

//DecodeOptions Decodes or unmarshals a line of json options into an Options structure
func DecodeOptions(stdin *bufio.Reader) (*Options, *Error) {
	line, err := stdin.ReadBytes('\n')
	if err != nil && (err != io.EOF || len(line) == 0) {
		return nil, NewError("options", "DecodeOptions", err)
	}
	ret := new(Options)
	err = json.Unmarshal(line, ret)
	if err != nil {
		return nil, NewError("options", "DecodeOptions", err)
	}
	return ret, nil
}

//Atom is the container for an atom, in fractional coordinates.
type Atom struct {
	Position  [3]float64
	Type      int
	Species   string  `json:",omitempty"`
	Occupancy float64 `json:",omitempty"`
}

//Structure is a ready-to-serialize periodic structure, the cell vectors
//as rows.
type Structure struct {
	Name    string `json:",omitempty"`
	Lattice [3][3]float64
	Atoms   []Atom
}

//Spg returns the structure in the form used by gospg, and the species of
//each atom type.
func (S *Structure) Spg() (spg.Structure, []string) {
	ret := spg.Structure{Name: S.Name, Lattice: v3.FromMat3(v3.Mat3(S.Lattice))}
	ret.Atoms = make([]spg.Atom, len(S.Atoms))
	var species []string
	for i, a := range S.Atoms {
		ret.Atoms[i] = spg.Atom{Position: v3.Vec(a.Position), Type: a.Type, Occupancy: a.Occupancy}
		if a.Species == "" || a.Type < 0 {
			continue
		}
		for len(species) <= a.Type {
			species = append(species, "")
		}
		species[a.Type] = a.Species
	}
	return ret, species
}

//DecodeStructure decodes one line with a JSON structure.
func DecodeStructure(stream *bufio.Reader) (*Structure, *Error) {
	const funcname = "DecodeStructure"
	line, err := stream.ReadBytes('\n')
	if err != nil && (err != io.EOF || len(line) == 0) {
		return nil, NewError("structure", funcname, err)
	}
	ret := new(Structure)
	if err = json.Unmarshal(line, ret); err != nil {
		return nil, NewError("structure", funcname, err)
	}
	return ret, nil
}

//DecodeStructures reads the options and then the number of structures they
//announce, or, if that is zero, structures until the end of the stream.
//The structure field of a returned error is set.
func DecodeStructures(stream *bufio.Reader) (*Options, []spg.Structure, [][]string, *Error) {
	o, err := DecodeOptions(stream)
	if err != nil {
		return nil, nil, nil, err
	}
	structures := make([]spg.Structure, 0, o.Structures)
	species := make([][]string, 0, o.Structures)
	for i := 0; o.Structures == 0 || i < o.Structures; i++ {
		if o.Structures == 0 {
			if _, err := stream.Peek(1); err == io.EOF {
				break
			}
		}
		js, err := DecodeStructure(stream)
		if err != nil {
			err.Structure = i
			return o, structures, species, err
		}
		s, sp := js.Spg()
		structures = append(structures, s)
		species = append(species, sp)
	}
	return o, structures, species, nil
}

//Report is the space group found for one structure, ready to serialize.
//Angles are in degrees.
type Report struct {
	Name                    string `json:",omitempty"`
	Number                  int
	HallNumber              int
	HallSymbol              string
	HMSymbol                string
	PointGroup              string
	Centering               string
	Parameters              [6]float64 //a, b, c, alpha, beta, gamma
	Cell                    [3][3]float64
	Origin                  [3]float64
	ChangeOfBasis           [3][3]int
	TransformationMatrix    [3][3]float64
	PrimitiveTransformation [3][3]int
	RotationMatrix          [3][3]float64
	Operations              []string
	Atoms                   []Atom
	AsymmetricAtoms         []Atom
	Seconds                 float64 `json:",omitempty"`
	Err                     *Error  `json:",omitempty"`
}

func atoms(in []spg.Atom, species []string) []Atom {
	ret := make([]Atom, len(in))
	for i, a := range in {
		ret[i] = Atom{Position: [3]float64(a.Position), Type: a.Type, Occupancy: a.Occupancy}
		if a.Type >= 0 && a.Type < len(species) {
			ret[i].Species = species[a.Type]
		}
	}
	return ret
}

//NewReport builds the report for the result R of the structure name. species,
//which can be nil, names the atom types.
func NewReport(name string, R *spg.Result, species []string) (*Report, *Error) {
	if R == nil {
		return nil, NewError("postprocess", "NewReport", spg.ErrInvalidInput)
	}
	ret := &Report{
		Name:                    name,
		Number:                  R.Number,
		HallNumber:              R.HallNumber,
		HallSymbol:              R.HallSymbol,
		HMSymbol:                R.HMSymbol,
		PointGroup:              R.PointGroup.Symbol,
		Centering:               R.Centering.String(),
		Origin:                  [3]float64(R.Origin),
		ChangeOfBasis:           [3][3]int(R.ChangeOfBasis),
		TransformationMatrix:    [3][3]float64(R.TransformationMatrix),
		PrimitiveTransformation: [3][3]int(R.PrimitiveTransformation),
		RotationMatrix:          [3][3]float64(R.RotationMatrix),
		Atoms:                   atoms(R.Atoms, species),
		AsymmetricAtoms:         atoms(R.AsymmetricAtoms, species),
	}
	al, be, ga := R.Parameters.Degrees()
	ret.Parameters = [6]float64{R.Parameters.A, R.Parameters.B, R.Parameters.C, al, be, ga}
	if R.Cell != nil {
		c, err := R.Cell.Mat3()
		if err != nil {
			return nil, NewError("postprocess", "NewReport", err)
		}
		ret.Cell = [3][3]float64(c)
	}
	ret.Operations = make([]string, len(R.Operations))
	for i, o := range R.Operations {
		ret.Operations[i] = o.String()
	}
	return ret, nil
}

//Send Marshals the report and writes it to out, in one line.
func (R *Report) Send(out io.Writer) *Error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(R); err != nil {
		return NewError("postprocess", "Report.Send", err)
	}
	return nil
}

//SendBatch writes one report per line for the results of spg.FindSpaceGroups.
//A structure for which the search failed gets a report with only its name
//and the error. species can be nil or have one element per result.
func SendBatch(results []spg.BatchResult, species [][]string, out io.Writer) *Error {
	const funcname = "SendBatch"
	for i, r := range results {
		var sp []string
		if i < len(species) {
			sp = species[i]
		}
		var rep *Report
		if r.Err != nil {
			e := NewError("process", "FindSpaceGroups", r.Err)
			e.Structure = i
			rep = &Report{Name: r.Name, Err: e}
		} else {
			var err *Error
			rep, err = NewReport(r.Name, r.Result, sp)
			if err != nil {
				err.Structure = i
				err.Decorate(funcname)
				return err
			}
		}
		rep.Seconds = r.Duration.Seconds()
		if err := rep.Send(out); err != nil {
			err.Structure = i
			err.Decorate(funcname)
			return err
		}
	}
	return nil
}
