// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vmath

import (
	"fmt"
	"math"
)

// Complex is a complex number representing a 2D rotation. The zero value
// is not a rotation, use IdentityComplex.
type Complex[T Float] struct {
	real, imaginary T
}

// NewComplex creates a complex number a + ib.
func NewComplex[T Float](re, im T) Complex[T] {
	return Complex[T]{re, im}
}

// IdentityComplex returns 1 + i0, no rotation.
func IdentityComplex[T Float]() Complex[T] {
	return Complex[T]{1, 0}
}

// ComplexFromVector creates v.x + iv.y, to be used with TransformVector.
func ComplexFromVector[T Float](v Vector2[T]) Complex[T] {
	return Complex[T]{v[0], v[1]}
}

// Rotation returns the complex number rotating counterclockwise by angle.
func Rotation[T Float](angle Rad[T]) Complex[T] {
	sin, cos := math.Sincos(float64(angle.Value()))
	return Complex[T]{T(cos), T(sin)}
}

// ComplexAngle returns the angle between two normalized complex numbers,
// NaN if either isn't normalized.
func ComplexAngle[T Float](normalizedA, normalizedB Complex[T]) Rad[T] {
	if !Equals(normalizedA.LengthSquared(), 1) || !Equals(normalizedB.LengthSquared(), 1) {
		logError("vmath.ComplexAngle(): complex numbers must be normalized")
		return Rad[T]{nan[T]()}
	}
	return Rad[T]{T(math.Acos(float64(normalizedA.Dot(normalizedB))))}
}

// Real returns the real part.
func (c Complex[T]) Real() T {
	return c.real
}

// Imaginary returns the imaginary part.
func (c Complex[T]) Imaginary() T {
	return c.imaginary
}

// Vector returns the complex number as (a, b).
func (c Complex[T]) Vector() Vector2[T] {
	return Vector2[T]{c.real, c.imaginary}
}

// Equals compares the complex numbers with Epsilon tolerance.
func (c Complex[T]) Equals(other Complex[T]) bool {
	return Equals(c.real, other.real) && Equals(c.imaginary, other.imaginary)
}

// RotationAngle returns the counterclockwise rotation angle.
func (c Complex[T]) RotationAngle() Rad[T] {
	return Rad[T]{T(math.Atan2(float64(c.imaginary), float64(c.real)))}
}

// Matrix returns the rotation matrix of the complex number.
func (c Complex[T]) Matrix() Matrix2x2[T] {
	return Matrix2x2[T]{
		{c.real, c.imaginary},
		{-c.imaginary, c.real},
	}
}

// Add returns c + other.
func (c Complex[T]) Add(other Complex[T]) Complex[T] {
	return Complex[T]{c.real + other.real, c.imaginary + other.imaginary}
}

// Sub returns c - other.
func (c Complex[T]) Sub(other Complex[T]) Complex[T] {
	return Complex[T]{c.real - other.real, c.imaginary - other.imaginary}
}

// Negated returns -c.
func (c Complex[T]) Negated() Complex[T] {
	return Complex[T]{-c.real, -c.imaginary}
}

// Scale multiplies both parts with s.
func (c Complex[T]) Scale(s T) Complex[T] {
	return Complex[T]{c.real * s, c.imaginary * s}
}

// Shrink divides both parts by s.
func (c Complex[T]) Shrink(s T) Complex[T] {
	return Complex[T]{c.real / s, c.imaginary / s}
}

// Mul multiplies the complex numbers, combining their rotations.
func (c Complex[T]) Mul(other Complex[T]) Complex[T] {
	return Complex[T]{
		c.real*other.real - c.imaginary*other.imaginary,
		c.imaginary*other.real + c.real*other.imaginary,
	}
}

// Dot returns the dot product of the complex numbers.
func (c Complex[T]) Dot(other Complex[T]) T {
	return c.real*other.real + c.imaginary*other.imaginary
}

// LengthSquared returns the dot product of c with itself.
func (c Complex[T]) LengthSquared() T {
	return c.Dot(c)
}

// Length returns the length of the complex number.
func (c Complex[T]) Length() T {
	return T(math.Hypot(float64(c.real), float64(c.imaginary)))
}

// Normalized returns the complex number of unit length.
func (c Complex[T]) Normalized() Complex[T] {
	return c.Shrink(c.Length())
}

// Conjugated returns a - ib.
func (c Complex[T]) Conjugated() Complex[T] {
	return Complex[T]{c.real, -c.imaginary}
}

// Inverted returns the inverse rotation.
func (c Complex[T]) Inverted() Complex[T] {
	return c.Conjugated().Shrink(c.LengthSquared())
}

// InvertedNormalized is Inverted for a normalized complex number. The
// result is NaN if c isn't normalized.
func (c Complex[T]) InvertedNormalized() Complex[T] {
	if !Equals(c.LengthSquared(), 1) {
		logError("vmath.Complex.InvertedNormalized(): complex number must be normalized")
		return Complex[T]{nan[T](), 0}
	}
	return c.Conjugated()
}

// TransformVector rotates v.
func (c Complex[T]) TransformVector(v Vector2[T]) Vector2[T] {
	return c.Mul(ComplexFromVector(v)).Vector()
}

// DivideInto returns t/a + i t/b.
func (c Complex[T]) DivideInto(t T) Complex[T] {
	return Complex[T]{t / c.real, t / c.imaginary}
}

func (c Complex[T]) String() string {
	return fmt.Sprintf("Complex(%v, %v)", c.real, c.imaginary)
}
