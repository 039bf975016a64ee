/*
 * snf.go, part of gospg
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

package matcher

//IntMatrix is a dense integer matrix stored by rows.
type IntMatrix [][]int

//NewIntMatrix returns a rows x cols zero matrix.
func NewIntMatrix(rows, cols int) IntMatrix {
	ret := make(IntMatrix, rows)
	for i := range ret {
		ret[i] = make([]int, cols)
	}
	return ret
}

//IntIdentity returns the n x n identity.
func IntIdentity(n int) IntMatrix {
	ret := NewIntMatrix(n, n)
	for i := range ret {
		ret[i][i] = 1
	}
	return ret
}

func (A IntMatrix) Rows() int { return len(A) }

func (A IntMatrix) Cols() int {
	if len(A) == 0 {
		return 0
	}
	return len(A[0])
}

//Copy returns a deep copy of A.
func (A IntMatrix) Copy() IntMatrix {
	ret := make(IntMatrix, len(A))
	for i, r := range A {
		ret[i] = append([]int(nil), r...)
	}
	return ret
}

//Mul returns A·B.
func (A IntMatrix) Mul(B IntMatrix) IntMatrix {
	ret := NewIntMatrix(A.Rows(), B.Cols())
	for i := range ret {
		for j := range ret[i] {
			for k := range B {
				ret[i][j] += A[i][k] * B[k][j]
			}
		}
	}
	return ret
}

//MulVec returns A·v.
func (A IntMatrix) MulVec(v []float64) []float64 {
	ret := make([]float64, len(A))
	for i, r := range A {
		for k, x := range r {
			ret[i] += float64(x) * v[k]
		}
	}
	return ret
}

func (A IntMatrix) swapRows(i, j int) {
	A[i], A[j] = A[j], A[i]
}

func (A IntMatrix) swapCols(i, j int) {
	for _, r := range A {
		r[i], r[j] = r[j], r[i]
	}
}

//addRow adds k times the row src to the row dst.
func (A IntMatrix) addRow(src, dst, k int) {
	for j := range A[dst] {
		A[dst][j] += k * A[src][j]
	}
}

//addCol adds k times the column src to the column dst.
func (A IntMatrix) addCol(src, dst, k int) {
	for _, r := range A {
		r[dst] += k * r[src]
	}
}

//floorDiv is the integer division rounded towards minus infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

//SmithNormalForm returns unimodular U and V and the diagonal D with
//U·A·V = D, every diagonal element dividing the next. A is not modified.
func SmithNormalForm(A IntMatrix) (U, D, V IntMatrix) {
	m, n := A.Rows(), A.Cols()
	D = A.Copy()
	U = IntIdentity(m)
	V = IntIdentity(n)
	for t := 0; t < m && t < n; t++ {
		for {
			//pivot: the smallest non-zero element of the submatrix
			pi, pj := -1, -1
			for i := t; i < m; i++ {
				for j := t; j < n; j++ {
					if D[i][j] != 0 && (pi < 0 || abs(D[i][j]) < abs(D[pi][pj])) {
						pi, pj = i, j
					}
				}
			}
			if pi < 0 {
				return U, D, V
			}
			D.swapRows(t, pi)
			U.swapRows(t, pi)
			D.swapCols(t, pj)
			V.swapCols(t, pj)
			done := true
			for i := t + 1; i < m; i++ {
				if q := floorDiv(D[i][t], D[t][t]); q != 0 {
					D.addRow(t, i, -q)
					U.addRow(t, i, -q)
				}
				if D[i][t] != 0 {
					done = false
				}
			}
			for j := t + 1; j < n; j++ {
				if q := floorDiv(D[t][j], D[t][t]); q != 0 {
					D.addCol(t, j, -q)
					V.addCol(t, j, -q)
				}
				if D[t][j] != 0 {
					done = false
				}
			}
			if !done {
				continue
			}
			bad := -1
			for i := t + 1; i < m; i++ {
				for j := t + 1; j < n; j++ {
					if D[i][j]%D[t][t] != 0 {
						bad = i
					}
				}
			}
			if bad >= 0 {
				D.addRow(bad, t, 1)
				U.addRow(bad, t, 1)
				continue
			}
			if D[t][t] < 0 {
				for j := range D[t] {
					D[t][j] = -D[t][j]
				}
				for j := range U[t] {
					U[t][j] = -U[t][j]
				}
			}
			break
		}
	}
	return U, D, V
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
