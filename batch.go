/*
 * batch.go, part of gospg
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
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rmera/gospg/logging"
	v3 "github.com/rmera/gospg/v3"
)

//DefaultWorkers is the number of structures processed at the same time by
//FindSpaceGroups when no other number is given.
const DefaultWorkers = 4

//Structure is one input of FindSpaceGroups.
type Structure struct {
	Name    string //only used to identify the structure in logs and results
	Lattice *v3.Matrix
	Atoms   []Atom
}

//BatchResult is the outcome for one Structure. Exactly one of Result and
//Err is nil.
type BatchResult struct {
	Name     string
	Result   *Result
	Err      error
	Duration time.Duration
}

//FindSpaceGroups runs FindSpaceGroup on each structure, at most
//DefaultWorkers at a time unless WithWorkers says otherwise. The results are in the order of
//structures. Errors in one structure don't stop the others and are reported
//in its BatchResult; the returned error is only non-nil if ctx was
//canceled or the options are invalid, in which case the unprocessed
//structures get ctx's error.
func FindSpaceGroups(ctx context.Context, structures []Structure, opts ...Option) ([]BatchResult, error) {
	o, err := newOptions("FindSpaceGroups", opts)
	if err != nil {
		return nil, err
	}
	ret := make([]BatchResult, len(structures))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i, s := range structures {
		i, s := i, s
		ret[i].Name = s.Name
		if err := gctx.Err(); err != nil {
			ret[i].Err = err
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				ret[i].Err = err
				return err
			}
			lo := *o
			lo.logger = o.logger.With(logging.String("structure", s.Name))
			start := time.Now()
			res, err := findSpaceGroup(s.Lattice, s.Atoms, &lo)
			ret[i].Duration = time.Since(start)
			o.metrics.ObserveSearch(outcome(err), ret[i].Duration)
			if err != nil {
				lo.logger.Debug("no result", logging.Err(err))
				ret[i].Err = err
				return nil
			}
			o.metrics.ObserveSpaceGroup(res.Number)
			ret[i].Result = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return ret, err
	}
	return ret, ctx.Err()
}
