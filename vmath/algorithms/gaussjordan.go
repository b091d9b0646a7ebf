// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package algorithms contains numeric algorithms on top of vmath.
package algorithms

import (
	"github.com/devblok/korumesh/vmath"
	"github.com/sirupsen/logrus"
)

// Matrix is a column-major matrix of arbitrary size, m[col][row].
type Matrix[T vmath.Float] [][]T

// NewMatrix allocates a zero matrix.
func NewMatrix[T vmath.Float](cols, rows int) Matrix[T] {
	m := make(Matrix[T], cols)
	for i := range m {
		m[i] = make([]T, rows)
	}
	return m
}

// Identity returns the size x size identity matrix.
func Identity[T vmath.Float](size int) Matrix[T] {
	m := NewMatrix[T](size, size)
	for i := range m {
		m[i][i] = 1
	}
	return m
}

// Cols returns the column count.
func (m Matrix[T]) Cols() int {
	return len(m)
}

// Rows returns the row count.
func (m Matrix[T]) Rows() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Clone returns a deep copy.
func (m Matrix[T]) Clone() Matrix[T] {
	out := make(Matrix[T], len(m))
	for i, col := range m {
		out[i] = append([]T(nil), col...)
	}
	return out
}

// Transposed returns the transposed matrix.
func (m Matrix[T]) Transposed() Matrix[T] {
	out := NewMatrix[T](m.Rows(), m.Cols())
	for col := range m {
		for row := range m[col] {
			out[row][col] = m[col][row]
		}
	}
	return out
}

// Mul returns m * other. m.Cols() has to equal other.Rows().
func (m Matrix[T]) Mul(other Matrix[T]) Matrix[T] {
	out := NewMatrix[T](other.Cols(), m.Rows())
	for col := range other {
		for row := 0; row < m.Rows(); row++ {
			var sum T
			for k := range m {
				sum += m[k][row] * other[col][k]
			}
			out[col][row] = sum
		}
	}
	return out
}

// Equals compares the matrices with vmath.Epsilon tolerance.
func (m Matrix[T]) Equals(other Matrix[T]) bool {
	if m.Cols() != other.Cols() || m.Rows() != other.Rows() {
		return false
	}
	for col := range m {
		for row := range m[col] {
			if !vmath.Equals(m[col][row], other[col][row]) {
				return false
			}
		}
	}
	return true
}

func subtractScaled[T vmath.Float](dst, src []T, s T) {
	for i := range dst {
		dst[i] -= src[i] * s
	}
}

// GaussJordanInPlaceTransposed solves a^T x = t^T, treating the columns
// of a and t as rows. On success a is the identity and t holds the
// solution. It returns false if a is singular, a and t are left in an
// unspecified state then.
func GaussJordanInPlaceTransposed[T vmath.Float](a, t Matrix[T]) bool {
	size := a.Cols()
	if a.Rows() != size || t.Cols() != size {
		logrus.WithFields(logrus.Fields{
			"a": [2]int{a.Cols(), a.Rows()},
			"t": [2]int{t.Cols(), t.Rows()},
		}).Error("algorithms.GaussJordanInPlaceTransposed(): matrix sizes don't match")
		return false
	}

	for row := 0; row < size; row++ {
		// partial pivoting on the largest absolute value
		rowMax := row
		for row2 := row + 1; row2 < size; row2++ {
			if vmath.Abs(a[row2][row]) > vmath.Abs(a[rowMax][row]) {
				rowMax = row2
			}
		}
		a[row], a[rowMax] = a[rowMax], a[row]
		t[row], t[rowMax] = t[rowMax], t[row]

		if vmath.Equals(a[row][row], 0) {
			return false
		}

		for row2 := row + 1; row2 < size; row2++ {
			c := a[row2][row] / a[row][row]
			subtractScaled(a[row2], a[row], c)
			subtractScaled(t[row2], t[row], c)
		}
	}

	// back substitution
	for row := size - 1; row >= 0; row-- {
		c := 1 / a[row][row]
		for row2 := 0; row2 < row; row2++ {
			s := a[row2][row] * c
			subtractScaled(t[row2], t[row], s)
			subtractScaled(a[row2], a[row], s)
		}
		for i := range t[row] {
			t[row][i] *= c
		}
		a[row][row] = 1
	}
	return true
}

// GaussJordanInPlace solves a x = t. On success a is the identity and t
// holds the solution, otherwise a is singular and both are left in an
// unspecified state.
func GaussJordanInPlace[T vmath.Float](a, t Matrix[T]) bool {
	at := a.Transposed()
	tt := t.Transposed()
	ok := GaussJordanInPlaceTransposed(at, tt)
	copyInto(a, at.Transposed())
	copyInto(t, tt.Transposed())
	return ok
}

// GaussJordanInverted returns the inverse of a, false if a is singular.
// a is left intact.
func GaussJordanInverted[T vmath.Float](a Matrix[T]) (Matrix[T], bool) {
	inverse := Identity[T](a.Cols())
	if !GaussJordanInPlace(a.Clone(), inverse) {
		return nil, false
	}
	return inverse, true
}

func copyInto[T vmath.Float](dst, src Matrix[T]) {
	for i := range dst {
		copy(dst[i], src[i])
	}
}
