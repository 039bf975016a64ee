/*
 * errors.go, part of gospg
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
	"errors"
	"fmt"

	"github.com/rmera/gospg/catalog"
)

//Kinds of the errors returned by the package. Compare with errors.Is.
var (
	//ErrInvalidInput is returned for malformed requests: no atoms, a
	//degenerate or non-finite lattice, or an invalid precision.
	ErrInvalidInput = catalog.ErrInvalidInput
	//ErrReductionFailure is returned when a lattice reduction doesn't converge.
	ErrReductionFailure = errors.New("lattice reduction failed")
	//ErrNoMatchingSpaceGroup is returned when the operations found don't fit
	//any of the 230 space groups, usually because the precision is too
	//tight or too loose for the structure.
	ErrNoMatchingSpaceGroup = errors.New("no matching space group")
)

//Error is the error type of the package. It keeps the functions it went
//through in its decoration.
type Error struct {
	message  string
	deco     []string
	kind     error
	critical bool
}

func (err Error) Error() string {
	if err.kind == nil || err.message == err.kind.Error() {
		return err.message
	}
	return fmt.Sprintf("%s: %s", err.kind.Error(), err.message)
}

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

func invalidInput(caller, format string, a ...interface{}) error {
	return Error{message: fmt.Sprintf(format, a...), deco: []string{caller}, kind: ErrInvalidInput, critical: true}
}

func reductionFailure(caller, what string) error {
	return Error{message: what + " did not converge", deco: []string{caller}, kind: ErrReductionFailure}
}

func noMatch(caller, format string, a ...interface{}) error {
	return Error{message: fmt.Sprintf(format, a...), deco: []string{caller}, kind: ErrNoMatchingSpaceGroup}
}

//errDecorate adds the caller's name to the decoration of err, if err is
//one of ours. Errors of any other type are returned unchanged.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(Error); ok {
		err2.deco = err2.Decorate(caller)
		return err2
	}
	return err
}

//NotFound returns true if err only means that no result was found for a
//well formed request (no matching space group or a failed reduction), as
//opposed to a malformed request.
func NotFound(err error) bool {
	return errors.Is(err, ErrNoMatchingSpaceGroup) || errors.Is(err, ErrReductionFailure)
}
