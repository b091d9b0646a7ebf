// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vmath

import (
	"fmt"

	glm "github.com/go-gl/mathgl/mgl32"
	glm64 "github.com/go-gl/mathgl/mgl64"
)

// Matrix2x2 is a column-major 2x2 matrix
type Matrix2x2[T Number] [2]Vector2[T]

// Identity2x2 returns the identity matrix.
func Identity2x2[T Number]() Matrix2x2[T] {
	return Matrix2x2[T]{{1, 0}, {0, 1}}
}

// Row returns the row at index i.
func (m Matrix2x2[T]) Row(i int) Vector2[T] {
	return Vector2[T]{m[0][i], m[1][i]}
}

// Transposed returns the transposed matrix.
func (m Matrix2x2[T]) Transposed() Matrix2x2[T] {
	return Matrix2x2[T]{m.Row(0), m.Row(1)}
}

// Mul returns m * other.
func (m Matrix2x2[T]) Mul(other Matrix2x2[T]) Matrix2x2[T] {
	return Matrix2x2[T]{m.Transform(other[0]), m.Transform(other[1])}
}

// Transform returns m * v.
func (m Matrix2x2[T]) Transform(v Vector2[T]) Vector2[T] {
	return m[0].Mul(v[0]).Add(m[1].Mul(v[1]))
}

// Determinant returns the determinant of the matrix.
func (m Matrix2x2[T]) Determinant() T {
	return m[0][0]*m[1][1] - m[1][0]*m[0][1]
}

// Equals compares the matrices, floating-point components with Epsilon
// tolerance.
func (m Matrix2x2[T]) Equals(other Matrix2x2[T]) bool {
	return m[0].Equals(other[0]) && m[1].Equals(other[1])
}

func (m Matrix2x2[T]) String() string {
	return fmt.Sprintf("Matrix(%v, %v,\n       %v, %v)", m[0][0], m[1][0], m[0][1], m[1][1])
}

// Mat2f converts the matrix to its mathgl counterpart.
func (m Matrix2x2[T]) Mat2f() glm.Mat2 {
	return glm.Mat2{float32(m[0][0]), float32(m[0][1]), float32(m[1][0]), float32(m[1][1])}
}

// Mat2d converts the matrix to its mathgl counterpart.
func (m Matrix2x2[T]) Mat2d() glm64.Mat2 {
	return glm64.Mat2{float64(m[0][0]), float64(m[0][1]), float64(m[1][0]), float64(m[1][1])}
}

// Matrix2x2FromMgl32 converts a mathgl matrix, both are column-major.
func Matrix2x2FromMgl32(m glm.Mat2) Matrix2x2[float32] {
	return Matrix2x2[float32]{{m[0], m[1]}, {m[2], m[3]}}
}
