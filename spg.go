/*
 * spg.go, part of gospg
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

package spg

import (
	"math"
	"time"

	"github.com/rmera/gospg/catalog"
	"github.com/rmera/gospg/lattice"
	"github.com/rmera/gospg/logging"
	"github.com/rmera/gospg/matcher"
	"github.com/rmera/gospg/metrics"
	"github.com/rmera/gospg/symmetry"
	v3 "github.com/rmera/gospg/v3"
)

//analysis holds the intermediate results of a search, everything up to
//the conventional cell.
type analysis struct {
	U         v3.Mat3 //input lattice, vectors as columns
	D         v3.Mat3 //Delaunay-reduced primitive cell
	ops       []symmetry.Op
	pg        symmetry.PointGroup
	M         v3.IMat3 //conventional cell in the basis of D
	centering symmetry.Centering
}

//checkLattice checks L and returns it with the vectors as columns.
func checkLattice(caller string, L *v3.Matrix, tol v3.Tol) (v3.Mat3, error) {
	if L == nil {
		return v3.Mat3{}, invalidInput(caller, "no lattice given")
	}
	if r, c := L.Dims(); r != 3 || c != 3 {
		return v3.Mat3{}, invalidInput(caller, "the lattice must be 3x3, got %dx%d", r, c)
	}
	if !L.Finite() {
		return v3.Mat3{}, invalidInput(caller, "the lattice has non-finite elements")
	}
	U, err := v3.LatticeColumns(L)
	if err != nil {
		return v3.Mat3{}, invalidInput(caller, "%s", err.Error())
	}
	if math.Abs(U.Det()) <= float64(tol) {
		return v3.Mat3{}, invalidInput(caller, "the lattice has zero volume")
	}
	return U, nil
}

func checkAtoms(caller string, atoms []Atom) error {
	if len(atoms) == 0 {
		return invalidInput(caller, "no atoms given")
	}
	for i, a := range atoms {
		for _, x := range a.Position {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return invalidInput(caller, "atom %d has a non-finite position", i)
			}
		}
	}
	return nil
}

//analyze finds the primitive cell, the operations and the conventional cell
//of the structure.
func analyze(caller string, L *v3.Matrix, atoms []Atom, o *options) (*analysis, error) {
	tol := o.tol
	U, err := checkLattice(caller, L, tol)
	if err != nil {
		return nil, err
	}
	if err := checkAtoms(caller, atoms); err != nil {
		return nil, err
	}
	log := o.logger
	sites := symmetry.Sites(atoms, o.sym, tol)
	key := symmetry.MinimumKey(sites)
	prim := symmetry.FindPrimitive(symmetry.WithKey(sites, key), sites, U, tol)
	D, ok := lattice.Delaunay(prim, tol)
	if !ok {
		log.Warn("Delaunay reduction failed", logging.Float64("volume", math.Abs(prim.Det())))
		return nil, reductionFailure(caller, "Delaunay reduction")
	}
	pos := symmetry.Trim(sites, U, D, tol)
	log.Debug("primitive cell", logging.Int("sites", len(pos)), logging.Float64("ratio", math.Abs(U.Det()/D.Det())))
	ops := symmetry.FindOperations(D, pos, key, tol)
	rots := symmetry.Rotations(ops)
	pg, ok := symmetry.FindPointGroup(rots)
	if !ok {
		return nil, noMatch(caller, "the %d point operations found are not a crystallographic point group", len(rots))
	}
	log.Debug("operations", logging.Int("count", len(ops)), logging.String("point_group", pg.Symbol))
	o.metrics.ObserveOperations(len(ops))
	Mp, ok := symmetry.ConstructAxes(rots, pg.Laue)
	if !ok {
		return nil, noMatch(caller, "no conventional axes for point group %s", pg.Symbol)
	}
	var M v3.IMat3
	switch pg.Laue {
	case symmetry.Laue1:
		cob, ok := lattice.Niggli(D.MulInt(Mp), tol)
		if !ok {
			log.Warn("Niggli reduction failed")
			return nil, reductionFailure(caller, "Niggli reduction")
		}
		M = Mp.Mul(cob)
	case symmetry.Laue2m:
		r2, ok := lattice.Delaunay2D(D.MulInt(Mp), 1, tol)
		if !ok {
			log.Warn("monoclinic reduction failed")
			return nil, reductionFailure(caller, "Monoclinic Delaunay reduction")
		}
		M = D.Inv().Mul(r2).Round()
	default:
		M = Mp
	}
	c := symmetry.FindCentering(M)
	corr, c := symmetry.CorrectBasis(M, c, pg.Laue)
	M = M.Mul(corr)
	if c == symmetry.NoCentering {
		return nil, noMatch(caller, "no centering for the conventional cell %v", M)
	}
	return &analysis{U: U, D: D, ops: ops, pg: pg, M: M, centering: c}, nil
}

//outcome classifies err for the metrics.
func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeFound
	case NotFound(err):
		return metrics.OutcomeNotFound
	}
	return metrics.OutcomeInvalid
}

//FindSpaceGroup returns the space group of the structure given by the
//lattice L (cell vectors as rows) and the atoms, in fractional coordinates
//of L. If no space group fits, the error satisfies NotFound.
func FindSpaceGroup(L *v3.Matrix, atoms []Atom, opts ...Option) (*Result, error) {
	o, err := newOptions("FindSpaceGroup", opts)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	res, err := findSpaceGroup(L, atoms, o)
	o.metrics.ObserveSearch(outcome(err), time.Since(start))
	if err != nil {
		return nil, err
	}
	o.metrics.ObserveSpaceGroup(res.Number)
	o.logger.Debug("space group found", logging.Int("number", res.Number), logging.Int("hall", res.HallNumber), logging.Duration("took", time.Since(start)))
	return res, nil
}

func findSpaceGroup(L *v3.Matrix, atoms []Atom, o *options) (*Result, error) {
	const caller = "FindSpaceGroup"
	a, err := analyze(caller, L, atoms, o)
	if err != nil {
		return nil, err
	}
	cops := symmetry.ToConventional(a.ops, a.M, a.centering)
	m, ok := matcher.FindMatch(cops, a.pg, a.centering)
	if !ok {
		o.logger.Warn("no matching space group", logging.String("point_group", a.pg.Symbol), logging.String("centering", a.centering.String()))
		return nil, noMatch(caller, "point group %s, centering %s", a.pg.Symbol, a.centering)
	}
	S := catalog.Lookup(m.HallNumber)
	CL := a.D.MulInt(a.M).MulInt(m.ChangeOfBasis)
	CLi := CL.Inv()
	//input fractional coordinates to the standardized ones
	T := CLi.Mul(a.U)
	lt := S.LatticeTranslations()
	centerOps := make([]symmetry.Op, 0, len(lt))
	for _, t := range lt {
		centerOps = append(centerOps, symmetry.Op{R: v3.IntIdentity(), T: t})
	}
	moved := make([]Atom, len(atoms))
	for i, at := range atoms {
		moved[i] = Atom{Position: T.MulVec(at.Position).Add(m.Origin), Type: at.Type, Occupancy: at.Occupancy}
	}
	full := symmetry.Expand(moved, centerOps, o.tol)
	ops := S.Operations()
	ideal := lattice.Conventional(CL, S.Holohedry(), S.Qualifier)
	rot, err := v3.NearestRotation(ideal.Mul(CLi))
	if err != nil {
		return nil, errDecorate(err, caller)
	}
	return &Result{
		HallNumber:              S.HallNumber,
		Number:                  S.Number,
		HallSymbol:              S.HallSymbol,
		HMSymbol:                S.HMSymbol,
		Origin:                  m.Origin,
		Cell:                    v3.ColumnsLattice(ideal),
		Parameters:              lattice.Params(ideal),
		ChangeOfBasis:           m.ChangeOfBasis,
		TransformationMatrix:    a.U.Inv().Mul(CL),
		PrimitiveTransformation: a.M.Mul(m.ChangeOfBasis),
		RotationMatrix:          rot,
		Atoms:                   full,
		AsymmetricAtoms:         symmetry.Asymmetric(full, ops, o.tol),
		PointGroup:              S.PointGroup,
		Centering:               S.Centering,
		Operations:              ops,
	}, nil
}

//ConstructUpdatedBasis returns the integer matrix whose columns are the
//vectors of the conventional cell of the structure, in the basis of its
//Delaunay-reduced primitive cell.
func ConstructUpdatedBasis(L *v3.Matrix, atoms []Atom, opts ...Option) (v3.IMat3, error) {
	o, err := newOptions("ConstructUpdatedBasis", opts)
	if err != nil {
		return v3.IMat3{}, err
	}
	a, err := analyze("ConstructUpdatedBasis", L, atoms, o)
	if err != nil {
		return v3.IMat3{}, err
	}
	return a.M, nil
}

//FindCentering returns the centering of the conventional cell of the
//structure (P, A, B, C, I, R or F).
func FindCentering(L *v3.Matrix, atoms []Atom, opts ...Option) (symmetry.Centering, error) {
	o, err := newOptions("FindCentering", opts)
	if err != nil {
		return symmetry.NoCentering, err
	}
	a, err := analyze("FindCentering", L, atoms, o)
	if err != nil {
		return symmetry.NoCentering, err
	}
	return a.centering, nil
}

//FindSmallestPrimitiveCell returns the smallest cell (vectors as rows)
//that describes the atoms. The candidate translations are the differences
//between the reduced atoms, usually those of the least frequent species.
//If there is no smaller cell, L is returned. The volume of the result
//always divides that of L.
func FindSmallestPrimitiveCell(reduced, atoms []Atom, L *v3.Matrix, opts ...Option) (*v3.Matrix, error) {
	const caller = "FindSmallestPrimitiveCell"
	o, err := newOptions(caller, opts)
	if err != nil {
		return nil, err
	}
	U, err := checkLattice(caller, L, o.tol)
	if err != nil {
		return nil, err
	}
	if err := checkAtoms(caller, atoms); err != nil {
		return nil, err
	}
	//the reduced atoms are matched to the sites by position, so they get
	//the same keys
	sites := symmetry.Sites(append(append([]Atom{}, atoms...), reduced...), o.sym, o.tol)
	rsites := sites[len(sites)-len(reduced):]
	sites = sites[:len(sites)-len(reduced)]
	if o.sym.OverlappingTypes {
		//merged sites lose the one to one correspondence with the atoms
		sites = symmetry.Sites(atoms, o.sym, o.tol)
		rsites = matchSites(reduced, sites, o.tol)
	}
	P := symmetry.FindPrimitive(rsites, sites, U, o.tol)
	return v3.ColumnsLattice(P), nil
}

//matchSites returns the sites at the positions of the atoms.
func matchSites(atoms []Atom, sites []symmetry.Site, tol v3.Tol) []symmetry.Site {
	ret := make([]symmetry.Site, 0, len(atoms))
	for _, a := range atoms {
		for _, s := range sites {
			if tol.FracEq(a.Position, s.Position) {
				ret = append(ret, s)
				break
			}
		}
	}
	return ret
}

//ComputeDelaunayReducedCell returns the Delaunay-reduced form of the
//lattice L (vectors as rows).
func ComputeDelaunayReducedCell(L *v3.Matrix, opts ...Option) (*v3.Matrix, error) {
	const caller = "ComputeDelaunayReducedCell"
	o, err := newOptions(caller, opts)
	if err != nil {
		return nil, err
	}
	U, err := checkLattice(caller, L, o.tol)
	if err != nil {
		return nil, err
	}
	D, ok := lattice.Delaunay(U, o.tol)
	if !ok {
		return nil, reductionFailure(caller, "Delaunay reduction")
	}
	return v3.ColumnsLattice(D), nil
}
