// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vmath

import (
	glm "github.com/go-gl/mathgl/mgl32"
	glm64 "github.com/go-gl/mathgl/mgl64"
)

// Vector4 is a four-component vector
type Vector4[T Number] [4]T

// Splat4 creates a vector with all components set to v.
func Splat4[T Number](v T) Vector4[T] {
	var out Vector4[T]
	fill(out[:], v)
	return out
}

// Vector4From copies the first 4 values of data into a vector.
func Vector4From[T Number](data []T) Vector4[T] {
	var out Vector4[T]
	copy(out[:], data[:4])
	return out
}

// Convert4 converts the vector to another scalar type. Conversion from
// floating-point to integer truncates.
func Convert4[U, T Number](v Vector4[T]) Vector4[U] {
	var out Vector4[U]
	for i, c := range v {
		out[i] = U(c)
	}
	return out
}

// X returns the first component.
func (v Vector4[T]) X() T {
	return v[0]
}

// Y returns the second component.
func (v Vector4[T]) Y() T {
	return v[1]
}

// Z returns the third component.
func (v Vector4[T]) Z() T {
	return v[2]
}

// W returns the fourth component.
func (v Vector4[T]) W() T {
	return v[3]
}

// XY returns the first two components.
func (v Vector4[T]) XY() Vector2[T] {
	return Vector2[T]{v[0], v[1]}
}

// XYZ returns the first three components.
func (v Vector4[T]) XYZ() Vector3[T] {
	return Vector3[T]{v[0], v[1], v[2]}
}

// Negated returns the vector with all components negated.
func (v Vector4[T]) Negated() Vector4[T] {
	negate(v[:], v[:])
	return v
}

// Add returns v + other.
func (v Vector4[T]) Add(other Vector4[T]) Vector4[T] {
	add(v[:], v[:], other[:])
	return v
}

// Sub returns v - other.
func (v Vector4[T]) Sub(other Vector4[T]) Vector4[T] {
	sub(v[:], v[:], other[:])
	return v
}

// Mul multiplies all components with s.
func (v Vector4[T]) Mul(s T) Vector4[T] {
	scale(v[:], v[:], s)
	return v
}

// MulFloat multiplies all components with f in floating-point, so
// integer vectors can be scaled by fractions.
func (v Vector4[T]) MulFloat(f float64) Vector4[T] {
	scaleFloat(v[:], v[:], f)
	return v
}

// Div divides all components by s.
func (v Vector4[T]) Div(s T) Vector4[T] {
	shrink(v[:], v[:], s)
	return v
}

// DivFloat divides all components by f in floating-point.
func (v Vector4[T]) DivFloat(f float64) Vector4[T] {
	shrinkFloat(v[:], v[:], f)
	return v
}

// DivideInto returns the vector of s divided by each component.
func (v Vector4[T]) DivideInto(s float64) Vector4[T] {
	divideInto(v[:], v[:], s)
	return v
}

// MulComponents multiplies the vectors component-wise.
func (v Vector4[T]) MulComponents(other Vector4[T]) Vector4[T] {
	mul(v[:], v[:], other[:])
	return v
}

// DivComponents divides the vectors component-wise.
func (v Vector4[T]) DivComponents(other Vector4[T]) Vector4[T] {
	div(v[:], v[:], other[:])
	return v
}

// Equals compares the vectors, floating-point components with Epsilon
// tolerance.
func (v Vector4[T]) Equals(other Vector4[T]) bool {
	return equal(v[:], other[:])
}

// Less compares the vectors component-wise.
func (v Vector4[T]) Less(other Vector4[T]) (out [4]bool) {
	compare(out[:], v[:], other[:], less[T])
	return
}

// LessEqual compares the vectors component-wise.
func (v Vector4[T]) LessEqual(other Vector4[T]) (out [4]bool) {
	compare(out[:], v[:], other[:], lessEqual[T])
	return
}

// GreaterEqual compares the vectors component-wise.
func (v Vector4[T]) GreaterEqual(other Vector4[T]) (out [4]bool) {
	compare(out[:], v[:], other[:], greaterEqual[T])
	return
}

// Greater compares the vectors component-wise.
func (v Vector4[T]) Greater(other Vector4[T]) (out [4]bool) {
	compare(out[:], v[:], other[:], greater[T])
	return
}

// Dot returns the dot product of the vectors.
func (v Vector4[T]) Dot(other Vector4[T]) T {
	return dot(v[:], other[:])
}

// LengthSquared returns the dot product of the vector with itself.
func (v Vector4[T]) LengthSquared() T {
	return dot(v[:], v[:])
}

// Length returns the vector length.
func (v Vector4[T]) Length() T {
	return T(length(v[:]))
}

// Normalized returns the vector scaled to unit length.
func (v Vector4[T]) Normalized() Vector4[T] {
	return v.DivFloat(length(v[:]))
}

// Sum returns the sum of the components.
func (v Vector4[T]) Sum() T {
	return sum(v[:])
}

// Product returns the product of the components.
func (v Vector4[T]) Product() T {
	return product(v[:])
}

// Min returns the smallest component.
func (v Vector4[T]) Min() T {
	return minimum(v[:])
}

// MinAbs returns the smallest absolute value of the components.
func (v Vector4[T]) MinAbs() T {
	return minimumAbs(v[:])
}

// Max returns the largest component.
func (v Vector4[T]) Max() T {
	return maximum(v[:])
}

// MaxAbs returns the largest absolute value of the components.
func (v Vector4[T]) MaxAbs() T {
	return maximumAbs(v[:])
}

// Projected returns the projection of the vector onto line.
func (v Vector4[T]) Projected(line Vector4[T]) Vector4[T] {
	var out Vector4[T]
	projected(out[:], v[:], line[:])
	return out
}

// ProjectedOntoNormalized is Projected for a normalized line. The result
// is NaN if line is not normalized.
func (v Vector4[T]) ProjectedOntoNormalized(line Vector4[T]) Vector4[T] {
	var out Vector4[T]
	projectedOntoNormalized("vmath.Vector4.ProjectedOntoNormalized", out[:], v[:], line[:])
	return out
}

func (v Vector4[T]) String() string {
	return format(v[:])
}

// Angle4 returns the angle between two normalized vectors, NaN if
// either isn't normalized.
func Angle4[T Float](normalizedA, normalizedB Vector4[T]) Rad[T] {
	return angle("vmath.Angle4", normalizedA[:], normalizedB[:])
}

// Mgl32 converts the vector to its mathgl counterpart.
func (v Vector4[T]) Mgl32() glm.Vec4 {
	return glm.Vec4(Convert4[float32](v))
}

// Mgl64 converts the vector to its mathgl counterpart.
func (v Vector4[T]) Mgl64() glm64.Vec4 {
	return glm64.Vec4(Convert4[float64](v))
}

// Vector4FromMgl32 converts a mathgl vector.
func Vector4FromMgl32(v glm.Vec4) Vector4[float32] {
	return Vector4[float32](v)
}

// Vector4FromMgl64 converts a mathgl vector.
func Vector4FromMgl64(v glm64.Vec4) Vector4[float64] {
	return Vector4[float64](v)
}
