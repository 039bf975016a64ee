/*
 * gonum.go, part of gospg.
 *
 * Copyright 2015 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * Gochem is developed at the laboratory for instruction in Swedish, Department of Chemistry,
 * University of Helsinki, Finland.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

//gonum.go contains the gonum-backed Matrix type used for lattices and
//sets of vectors. A lattice is a 3x3 Matrix whose rows are the a, b and c
//cell vectors.

//All the *Vec functions operate on row vectors.

package v3

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

//Matrix is a set of vectors in 3D space, backed by a gonum Dense.
//Within the package it is understood that a "vector" is a row vector, i.e. the
//cartesian coordinates of a point in 3D space.
type Matrix struct {
	*mat.Dense
}

func Matrix2Dense(A *Matrix) *mat.Dense {
	return A.Dense
}

func Dense2Matrix(A *mat.Dense) *Matrix {
	return &Matrix{A}
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 || l == 0 {
		return nil, Error{fmt.Sprintf("Input slice length %d not divisible by %d", l, cols), []string{"NewMatrix"}, true}
	}
	r := mat.NewDense(rows, cols, data)
	return &Matrix{r}, nil
}

//NVecs returns the number of vectors (rows) in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

//Vec returns a copy of the ith vector as a fixed-size Vec.
func (F *Matrix) Vec(i int) Vec {
	return Vec{F.At(i, 0), F.At(i, 1), F.At(i, 2)}
}

//Finite returns false if any element of F is NaN or infinite.
func (F *Matrix) Finite() bool {
	r, c := F.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := F.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}

//Mat3 returns the 3x3 Matrix F as a fixed-size Mat3, row i of F
//being row i of the result.
func (F *Matrix) Mat3() (Mat3, error) {
	var m Mat3
	r, c := F.Dims()
	if r != 3 || c != 3 {
		return m, Error{fmt.Sprintf("A %dx%d matrix is not a lattice", r, c), []string{"Mat3"}, true}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] = F.At(i, j)
		}
	}
	return m, nil
}

//FromMat3 returns a new 3x3 Matrix with the elements of m.
func FromMat3(m Mat3) *Matrix {
	d := make([]float64, 0, 9)
	for i := 0; i < 3; i++ {
		d = append(d, m[i][:]...)
	}
	return &Matrix{mat.NewDense(3, 3, d)}
}

//LatticeColumns takes a lattice with the cell vectors as rows and
//returns them as the columns of a Mat3, which is the form all the
//transformations in this module act on.
func LatticeColumns(L *Matrix) (Mat3, error) {
	m, err := L.Mat3()
	if err != nil {
		return m, errDecorate(err, "LatticeColumns")
	}
	return m.T(), nil
}

//ColumnsLattice is the inverse of LatticeColumns.
func ColumnsLattice(U Mat3) *Matrix {
	return FromMat3(U.T())
}

//Det returns the determinant of a square Matrix.
func (F *Matrix) Det() float64 {
	r, c := F.Dims()
	if r != c {
		panic(ErrDeterminant)
	}
	return mat.Det(F.Dense)
}

func (F *Matrix) String() string {
	r, c := F.Dims()
	v := make([]string, r)
	for i := 0; i < r; i++ {
		row := "["
		for j := 0; j < c; j++ {
			row += fmt.Sprintf("%8.4f", F.At(i, j))
			if j < c-1 {
				row += " "
			}
		}
		v[i] = row + "]"
	}
	ret := ""
	for i, s := range v {
		ret += s
		if i < len(v)-1 {
			ret += "\n"
		}
	}
	return ret
}

//Errors

//the same as spg.Error but avoid circular import.
type errorInt interface {
	Error() string
	Critical() bool
	Decorate(string) []string
}

type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
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

//errDecorate is a helper function that asserts that the error
//implements errorInt and decorates the error with the caller's name before returning it.
//Errors of any other type are returned unchanged.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(Error); ok {
		err2.deco = err2.Decorate(caller)
		return err2
	}
	if err2, ok := err.(errorInt); ok {
		err2.Decorate(caller)
		return err2
	}
	return err
}

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix = PanicMsg("goSpg/v3: A VecMatrix should have 3 columns")
	ErrDeterminant  = PanicMsg("goSpg/v3: Determinants are only available for square matrices")
	ErrSingular     = PanicMsg("goSpg/v3: Singular matrix")
)
