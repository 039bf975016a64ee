/*
 * catalog.go, part of gospg
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
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rmera/gospg/lattice"
	"github.com/rmera/gospg/symmetry"
	v3 "github.com/rmera/gospg/v3"
)

const (
	//NumHall is the number of Hall settings in the catalog.
	NumHall = 530
	//NumSpaceGroups is the number of space group types.
	NumSpaceGroups = 230
)

type setting struct {
	number int
	hm     string
	hall   string
	note   string
}

//SpaceGroup is one Hall setting of a space group.
type SpaceGroup struct {
	HallNumber int    //1 to 530
	Number     int    //International Tables number, 1 to 230
	HMSymbol   string //Hermann-Mauguin symbol, with the setting, if any
	HallSymbol string
	Note       string
	//Qualifier is "R" for rhombohedral axes, "H" for the hexagonal
	//setting of a rhombohedral group, and empty otherwise.
	Qualifier  string
	Centering  symmetry.Centering
	Generators []Op
	Ops        []Op //one per point operation, without the centering
	PointGroup symmetry.PointGroup
}

//Order returns the number of operations of the space group in the
//conventional cell, centering included.
func (S SpaceGroup) Order() int {
	return len(S.Ops) * S.Centering.Multiplicity()
}

//Centrosymmetric returns true if the group contains the inversion.
func (S SpaceGroup) Centrosymmetric() bool {
	return S.PointGroup.Centrosymmetric
}

func (S SpaceGroup) LaueClass() symmetry.Laue {
	return S.PointGroup.Laue
}

func (S SpaceGroup) Holohedry() lattice.Holohedry {
	return S.PointGroup.Holohedry
}

func (S SpaceGroup) PointGroupSymbol() string {
	return S.PointGroup.Symbol
}

func (S SpaceGroup) Schoenflies() string {
	return S.PointGroup.Schoenflies
}

//LatticeTranslations returns the centering translations, the zero vector
//first.
func (S SpaceGroup) LatticeTranslations() []v3.Vec {
	return append([]v3.Vec{{}}, S.Centering.Translations()...)
}

//Operations returns all the operations of the group in the conventional
//cell, centering included, with translations in [0,1).
func (S SpaceGroup) Operations() []symmetry.Op {
	lt := S.LatticeTranslations()
	ret := make([]symmetry.Op, 0, len(S.Ops)*len(lt))
	for _, o := range S.Ops {
		f := o.Float()
		for _, t := range lt {
			ret = append(ret, symmetry.Op{R: f.R, T: f.T.Add(t).Fract()})
		}
	}
	return ret
}

//SymmetricPositions returns the distinct positions, in [0,1), equivalent to
//p in the conventional cell.
func (S SpaceGroup) SymmetricPositions(p v3.Vec, tol v3.Tol) []v3.Vec {
	return symmetry.SymmetricPositions(p, S.Operations(), tol)
}

func (S SpaceGroup) String() string {
	return fmt.Sprintf("%d %s (%s)", S.Number, S.HMSymbol, S.HallSymbol)
}

func (S SpaceGroup) clone() SpaceGroup {
	S.Generators = append([]Op(nil), S.Generators...)
	S.Ops = append([]Op(nil), S.Ops...)
	return S
}

var (
	buildOnce sync.Once
	groups    []SpaceGroup
)

func build() {
	groups = make([]SpaceGroup, len(settings))
	for i, s := range settings {
		G, err := ParseHall(s.hall)
		if err != nil {
			panic(err.Error()) //the table is static
		}
		rots := make([]v3.IMat3, 0, len(G.Ops))
		for _, o := range G.Ops {
			rots = append(rots, o.R)
		}
		pg, ok := symmetry.FindPointGroup(rots)
		if !ok {
			panic(fmt.Sprintf("catalog: Hall symbol %q does not give a point group", s.hall))
		}
		q := ""
		switch {
		case strings.Contains(s.hm, "hombohedral axes"):
			q = "R"
		case strings.Contains(s.hm, "exagonal axes"):
			q = "H"
		}
		groups[i] = SpaceGroup{
			HallNumber: i + 1,
			Number:     s.number,
			HMSymbol:   s.hm,
			HallSymbol: s.hall,
			Note:       s.note,
			Qualifier:  q,
			Centering:  G.Centering,
			Generators: G.Generators,
			Ops:        G.Ops,
			PointGroup: pg,
		}
	}
}

//get returns the shared, read-only, entry for the Hall number hall.
func get(hall int) *SpaceGroup {
	buildOnce.Do(build)
	return &groups[hall-1]
}

//Get returns the setting with the given Hall number (1 to 530).
func Get(hall int) (SpaceGroup, error) {
	if hall < 1 || hall > NumHall {
		return SpaceGroup{}, Error{message: fmt.Sprintf("Hall number %d out of range 1-%d", hall, NumHall), kind: ErrInvalidInput, critical: true}
	}
	return get(hall).clone(), nil
}

//Default returns the standard setting of the space group number (1 to 230).
func Default(number int) (SpaceGroup, error) {
	if number < 1 || number > NumSpaceGroups {
		return SpaceGroup{}, Error{message: fmt.Sprintf("space group number %d out of range 1-%d", number, NumSpaceGroups), kind: ErrInvalidInput, critical: true}
	}
	return Get(bySpaceGroup[number][0])
}

//Settings returns the Hall numbers of the settings of the space group
//number, the standard one first.
func Settings(number int) ([]int, error) {
	if number < 1 || number > NumSpaceGroups {
		return nil, Error{message: fmt.Sprintf("space group number %d out of range 1-%d", number, NumSpaceGroups), kind: ErrInvalidInput, critical: true}
	}
	return append([]int(nil), bySpaceGroup[number]...), nil
}

//DefaultHall returns the Hall number of the standard setting of the space
//group number, without building the catalog. It panics on numbers out of range.
func DefaultHall(number int) int {
	return bySpaceGroup[number][0]
}

//All returns every setting, in order of Hall number.
func All() []SpaceGroup {
	buildOnce.Do(build)
	ret := make([]SpaceGroup, len(groups))
	for i := range groups {
		ret[i] = groups[i].clone()
	}
	return ret
}

//Lookup returns the read-only catalog entry for hall, for use in loops
//where copying every entry is not wanted. The returned value must not be
//modified. It panics if hall is out of range.
func Lookup(hall int) *SpaceGroup {
	if hall < 1 || hall > NumHall {
		panic(v3.PanicMsg(fmt.Sprintf("catalog: Hall number %d out of range", hall)))
	}
	return get(hall)
}

//ErrInvalidInput is the kind of the errors caused by malformed requests.
var ErrInvalidInput = errors.New("invalid input")

//Error is the error type of the package.
type Error struct {
	message  string
	deco     []string
	kind     error
	critical bool
}

func (err Error) Error() string { return err.message }

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

//Critical return whether the error is critical or it can be ignored
func (err Error) Critical() bool { return err.critical }

//Is makes the error match its kind with errors.Is.
func (err Error) Is(target error) bool { return target == err.kind }
