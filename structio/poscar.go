/*
 * poscar.go, part of gospg
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
	"bufio"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/rmera/gospg/symmetry"
	v3 "github.com/rmera/gospg/v3"
)

//ReadPOSCAR reads a structure in the VASP POSCAR/CONTCAR format. Both the
//VASP 4 (no species line) and VASP 5 forms are accepted, with Direct or
//Cartesian coordinates and optional selective dynamics. A negative scale
//factor is read as the volume of the cell.
func ReadPOSCAR(r io.Reader) (*Structure, error) {
	const caller = "ReadPOSCAR"
	sc := bufio.NewScanner(r)
	lineno := 0
	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		lineno++
		return strings.TrimSpace(sc.Text()), true
	}
	comment, ok := next()
	if !ok {
		return nil, formatError(caller, "empty file")
	}
	line, ok := next()
	if !ok {
		return nil, formatError(caller, "missing scale factor")
	}
	scale, err := parseFloats(line)
	if err != nil || (len(scale) != 1 && len(scale) != 3) {
		return nil, formatError(caller, "line %d: bad scale factor %q", lineno, line)
	}
	var rows v3.Mat3
	for i := 0; i < 3; i++ {
		line, ok = next()
		if !ok {
			return nil, formatError(caller, "missing lattice vector %d", i+1)
		}
		f, err := parseFloats(line)
		if err != nil || len(f) < 3 {
			return nil, formatError(caller, "line %d: bad lattice vector %q", lineno, line)
		}
		copy(rows[i][:], f[:3])
	}
	//the factors applied to each Cartesian component
	var factor v3.Vec
	switch {
	case len(scale) == 3:
		factor = v3.Vec{scale[0], scale[1], scale[2]}
	case scale[0] < 0:
		vol := math.Abs(rows.Det())
		if vol == 0 {
			return nil, formatError(caller, "zero volume cell with a volume scale factor")
		}
		f := math.Cbrt(-scale[0] / vol)
		factor = v3.Vec{f, f, f}
	default:
		factor = v3.Vec{scale[0], scale[0], scale[0]}
	}
	for i := range rows {
		for j := 0; j < 3; j++ {
			rows[i][j] *= factor[j]
		}
	}
	line, ok = next()
	if !ok {
		return nil, formatError(caller, "missing atom counts")
	}
	var species []string
	if len(strings.Fields(line)) == 0 {
		return nil, formatError(caller, "line %d: no atom counts", lineno)
	}
	if _, err := strconv.Atoi(strings.Fields(line)[0]); err != nil {
		species = strings.Fields(line)
		if line, ok = next(); !ok {
			return nil, formatError(caller, "missing atom counts")
		}
	}
	fields := strings.Fields(line)
	counts := make([]int, len(fields))
	total := 0
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return nil, formatError(caller, "line %d: bad atom count %q", lineno, f)
		}
		counts[i] = n
		total += n
	}
	if species != nil && len(species) != len(counts) {
		return nil, formatError(caller, "%d species but %d counts", len(species), len(counts))
	}
	line, ok = next()
	if ok && len(line) > 0 && (line[0] == 's' || line[0] == 'S') {
		line, ok = next()
	}
	if !ok {
		return nil, formatError(caller, "missing coordinate mode")
	}
	cartesian := len(line) > 0 && strings.ContainsRune("cCkK", rune(line[0]))
	U := rows.T()
	Ui := U.Inv()
	atoms := make([]symmetry.Atom, 0, total)
	for t, n := range counts {
		for k := 0; k < n; k++ {
			line, ok = next()
			if !ok {
				return nil, formatError(caller, "%d atoms expected, %d found", total, len(atoms))
			}
			fs := strings.Fields(line)
			if len(fs) < 3 {
				return nil, formatError(caller, "line %d: bad position %q", lineno, line)
			}
			p, err := parseFloats(strings.Join(fs[:3], " "))
			if err != nil {
				return nil, formatError(caller, "line %d: bad position %q", lineno, line)
			}
			pos := v3.Vec{p[0], p[1], p[2]}
			if cartesian {
				for j := range pos {
					pos[j] *= factor[j]
				}
				pos = Ui.MulVec(pos)
			}
			atoms = append(atoms, symmetry.Atom{Position: pos, Type: t})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, Error{message: err.Error(), deco: []string{caller}, kind: err, critical: true}
	}
	s := &Structure{Species: species}
	s.Name = comment
	s.Lattice = v3.FromMat3(rows)
	s.Atoms = atoms
	return s, nil
}

func parseFloats(line string) ([]float64, error) {
	fs := strings.Fields(line)
	ret := make([]float64, 0, len(fs))
	for _, f := range fs {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		ret = append(ret, x)
	}
	return ret, nil
}

//WritePOSCAR writes the structure in the POSCAR format, with direct
//coordinates. The atoms are grouped by Type, in increasing order, so the
//types are renumbered from 0 when read back. The species line is only
//written if the structure names its species. Occupancies are not written.
func WritePOSCAR(w io.Writer, S *Structure) error {
	if S == nil || S.Lattice == nil {
		return formatError("WritePOSCAR", "no structure to write")
	}
	rows, err := S.Lattice.Mat3()
	if err != nil {
		return formatError("WritePOSCAR", "%s", err.Error())
	}
	types := make([]int, 0)
	byType := make(map[int][]v3.Vec)
	for _, a := range S.Atoms {
		if _, ok := byType[a.Type]; !ok {
			types = append(types, a.Type)
		}
		byType[a.Type] = append(byType[a.Type], a.Position)
	}
	sort.Ints(types)
	name := strings.ReplaceAll(S.Name, "\n", " ")
	if name == "" {
		name = "gospg"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n1.0\n", name)
	for _, r := range rows {
		fmt.Fprintf(&b, "  %20.14f %20.14f %20.14f\n", r[0], r[1], r[2])
	}
	names := make([]string, len(types))
	counts := make([]string, len(types))
	for i, t := range types {
		names[i] = S.SpeciesOf(t)
		counts[i] = strconv.Itoa(len(byType[t]))
	}
	if len(S.Species) > 0 {
		fmt.Fprintf(&b, "  %s\n", strings.Join(names, " "))
	}
	fmt.Fprintf(&b, "  %s\nDirect\n", strings.Join(counts, " "))
	for _, t := range types {
		for _, p := range byType[t] {
			fmt.Fprintf(&b, "  %18.14f %18.14f %18.14f\n", p[0], p[1], p[2])
		}
	}
	_, err = io.WriteString(w, b.String())
	return err
}
