// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vmath

import (
	glm "github.com/go-gl/mathgl/mgl32"
	glm64 "github.com/go-gl/mathgl/mgl64"
)

// Vector2 is a two-component vector
type Vector2[T Number] [2]T

// Splat2 creates a vector with all components set to v.
func Splat2[T Number](v T) Vector2[T] {
	var out Vector2[T]
	fill(out[:], v)
	return out
}

// Vector2From copies the first 2 values of data into a vector.
func Vector2From[T Number](data []T) Vector2[T] {
	var out Vector2[T]
	copy(out[:], data[:2])
	return out
}

// Convert2 converts the vector to another scalar type. Conversion from
// floating-point to integer truncates.
func Convert2[U, T Number](v Vector2[T]) Vector2[U] {
	var out Vector2[U]
	for i, c := range v {
		out[i] = U(c)
	}
	return out
}

// X returns the first component.
func (v Vector2[T]) X() T {
	return v[0]
}

// Y returns the second component.
func (v Vector2[T]) Y() T {
	return v[1]
}

// Negated returns the vector with all components negated.
func (v Vector2[T]) Negated() Vector2[T] {
	negate(v[:], v[:])
	return v
}

// Add returns v + other.
func (v Vector2[T]) Add(other Vector2[T]) Vector2[T] {
	add(v[:], v[:], other[:])
	return v
}

// Sub returns v - other.
func (v Vector2[T]) Sub(other Vector2[T]) Vector2[T] {
	sub(v[:], v[:], other[:])
	return v
}

// Mul multiplies all components with s.
func (v Vector2[T]) Mul(s T) Vector2[T] {
	scale(v[:], v[:], s)
	return v
}

// MulFloat multiplies all components with f in floating-point, so
// integer vectors can be scaled by fractions.
func (v Vector2[T]) MulFloat(f float64) Vector2[T] {
	scaleFloat(v[:], v[:], f)
	return v
}

// Div divides all components by s.
func (v Vector2[T]) Div(s T) Vector2[T] {
	shrink(v[:], v[:], s)
	return v
}

// DivFloat divides all components by f in floating-point.
func (v Vector2[T]) DivFloat(f float64) Vector2[T] {
	shrinkFloat(v[:], v[:], f)
	return v
}

// DivideInto returns the vector of s divided by each component.
func (v Vector2[T]) DivideInto(s float64) Vector2[T] {
	divideInto(v[:], v[:], s)
	return v
}

// MulComponents multiplies the vectors component-wise.
func (v Vector2[T]) MulComponents(other Vector2[T]) Vector2[T] {
	mul(v[:], v[:], other[:])
	return v
}

// DivComponents divides the vectors component-wise.
func (v Vector2[T]) DivComponents(other Vector2[T]) Vector2[T] {
	div(v[:], v[:], other[:])
	return v
}

// Equals compares the vectors, floating-point components with Epsilon
// tolerance.
func (v Vector2[T]) Equals(other Vector2[T]) bool {
	return equal(v[:], other[:])
}

// Less compares the vectors component-wise.
func (v Vector2[T]) Less(other Vector2[T]) (out [2]bool) {
	compare(out[:], v[:], other[:], less[T])
	return
}

// LessEqual compares the vectors component-wise.
func (v Vector2[T]) LessEqual(other Vector2[T]) (out [2]bool) {
	compare(out[:], v[:], other[:], lessEqual[T])
	return
}

// GreaterEqual compares the vectors component-wise.
func (v Vector2[T]) GreaterEqual(other Vector2[T]) (out [2]bool) {
	compare(out[:], v[:], other[:], greaterEqual[T])
	return
}

// Greater compares the vectors component-wise.
func (v Vector2[T]) Greater(other Vector2[T]) (out [2]bool) {
	compare(out[:], v[:], other[:], greater[T])
	return
}

// Dot returns the dot product of the vectors.
func (v Vector2[T]) Dot(other Vector2[T]) T {
	return dot(v[:], other[:])
}

// LengthSquared returns the dot product of the vector with itself.
func (v Vector2[T]) LengthSquared() T {
	return dot(v[:], v[:])
}

// Length returns the vector length.
func (v Vector2[T]) Length() T {
	return T(length(v[:]))
}

// Normalized returns the vector scaled to unit length.
func (v Vector2[T]) Normalized() Vector2[T] {
	return v.DivFloat(length(v[:]))
}

// Sum returns the sum of the components.
func (v Vector2[T]) Sum() T {
	return sum(v[:])
}

// Product returns the product of the components.
func (v Vector2[T]) Product() T {
	return product(v[:])
}

// Min returns the smallest component.
func (v Vector2[T]) Min() T {
	return minimum(v[:])
}

// MinAbs returns the smallest absolute value of the components.
func (v Vector2[T]) MinAbs() T {
	return minimumAbs(v[:])
}

// Max returns the largest component.
func (v Vector2[T]) Max() T {
	return maximum(v[:])
}

// MaxAbs returns the largest absolute value of the components.
func (v Vector2[T]) MaxAbs() T {
	return maximumAbs(v[:])
}

// Projected returns the projection of the vector onto line.
func (v Vector2[T]) Projected(line Vector2[T]) Vector2[T] {
	var out Vector2[T]
	projected(out[:], v[:], line[:])
	return out
}

// ProjectedOntoNormalized is Projected for a normalized line. The result
// is NaN if line is not normalized.
func (v Vector2[T]) ProjectedOntoNormalized(line Vector2[T]) Vector2[T] {
	var out Vector2[T]
	projectedOntoNormalized("vmath.Vector2.ProjectedOntoNormalized", out[:], v[:], line[:])
	return out
}

func (v Vector2[T]) String() string {
	return format(v[:])
}

// Angle2 returns the angle between two normalized vectors, NaN if
// either isn't normalized.
func Angle2[T Float](normalizedA, normalizedB Vector2[T]) Rad[T] {
	return angle("vmath.Angle2", normalizedA[:], normalizedB[:])
}

// Mgl32 converts the vector to its mathgl counterpart.
func (v Vector2[T]) Mgl32() glm.Vec2 {
	return glm.Vec2(Convert2[float32](v))
}

// Mgl64 converts the vector to its mathgl counterpart.
func (v Vector2[T]) Mgl64() glm64.Vec2 {
	return glm64.Vec2(Convert2[float64](v))
}

// Vector2FromMgl32 converts a mathgl vector.
func Vector2FromMgl32(v glm.Vec2) Vector2[float32] {
	return Vector2[float32](v)
}

// Vector2FromMgl64 converts a mathgl vector.
func Vector2FromMgl64(v glm64.Vec2) Vector2[float64] {
	return Vector2[float64](v)
}
