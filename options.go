/*
 * options.go, part of gospg
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
	"github.com/rmera/gospg/logging"
	"github.com/rmera/gospg/metrics"
	"github.com/rmera/gospg/symmetry"
	v3 "github.com/rmera/gospg/v3"
)

//DefaultPrecision is the tolerance used when WithPrecision is not given.
const DefaultPrecision = float64(v3.DefaultPrecision)

type options struct {
	tol     v3.Tol
	sym     symmetry.Options
	logger  logging.Logger
	metrics metrics.Recorder
	workers int
}

//Option modifies the behaviour of the search functions.
type Option func(*options)

//WithPrecision sets the tolerance, in Angstrom for lengths and in
//fractional units for positions. The default is DefaultPrecision.
func WithPrecision(eps float64) Option {
	return func(o *options) { o.tol = v3.Tol(eps) }
}

//WithPartialOccupancies lets partially occupied sites match each other
//regardless of the species on them.
func WithPartialOccupancies(allow bool) Option {
	return func(o *options) { o.sym.PartialOccupancies = allow }
}

//WithOverlappingAtomTypes merges the atoms that share a site, so that
//several species on one site don't break an otherwise valid operation.
func WithOverlappingAtomTypes(allow bool) Option {
	return func(o *options) { o.sym.OverlappingTypes = allow }
}

//WithLogger sets the logger. Nothing is logged by default.
func WithLogger(l logging.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

//WithMetrics sets the recorder that gets the outcome and duration of each search.
func WithMetrics(r metrics.Recorder) Option {
	return func(o *options) {
		if r != nil {
			o.metrics = r
		}
	}
}

//WithWorkers sets how many structures FindSpaceGroups processes at the
//same time. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

func newOptions(caller string, opts []Option) (*options, error) {
	o := &options{
		tol:     v3.DefaultPrecision,
		logger:  logging.NewNopLogger(),
		metrics: metrics.NewNop(),
		workers: DefaultWorkers,
	}
	for _, f := range opts {
		f(o)
	}
	if !o.tol.Valid() {
		return nil, invalidInput(caller, "precision must be a positive number, got %g", float64(o.tol))
	}
	return o, nil
}
