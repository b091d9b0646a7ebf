// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vmath

import (
	glm "github.com/go-gl/mathgl/mgl32"
	glm64 "github.com/go-gl/mathgl/mgl64"
)

// Vector3 is a three-component vector
type Vector3[T Number] [3]T

// Splat3 creates a vector with all components set to v.
func Splat3[T Number](v T) Vector3[T] {
	var out Vector3[T]
	fill(out[:], v)
	return out
}

// Vector3From copies the first 3 values of data into a vector.
func Vector3From[T Number](data []T) Vector3[T] {
	var out Vector3[T]
	copy(out[:], data[:3])
	return out
}

// Convert3 converts the vector to another scalar type. Conversion from
// floating-point to integer truncates.
func Convert3[U, T Number](v Vector3[T]) Vector3[U] {
	var out Vector3[U]
	for i, c := range v {
		out[i] = U(c)
	}
	return out
}

// X returns the first component.
func (v Vector3[T]) X() T {
	return v[0]
}

// Y returns the second component.
func (v Vector3[T]) Y() T {
	return v[1]
}

// Z returns the third component.
func (v Vector3[T]) Z() T {
	return v[2]
}

// XY returns the first two components.
func (v Vector3[T]) XY() Vector2[T] {
	return Vector2[T]{v[0], v[1]}
}

// Negated returns the vector with all components negated.
func (v Vector3[T]) Negated() Vector3[T] {
	negate(v[:], v[:])
	return v
}

// Add returns v + other.
func (v Vector3[T]) Add(other Vector3[T]) Vector3[T] {
	add(v[:], v[:], other[:])
	return v
}

// Sub returns v - other.
func (v Vector3[T]) Sub(other Vector3[T]) Vector3[T] {
	sub(v[:], v[:], other[:])
	return v
}

// Mul multiplies all components with s.
func (v Vector3[T]) Mul(s T) Vector3[T] {
	scale(v[:], v[:], s)
	return v
}

// MulFloat multiplies all components with f in floating-point, so
// integer vectors can be scaled by fractions.
func (v Vector3[T]) MulFloat(f float64) Vector3[T] {
	scaleFloat(v[:], v[:], f)
	return v
}

// Div divides all components by s.
func (v Vector3[T]) Div(s T) Vector3[T] {
	shrink(v[:], v[:], s)
	return v
}

// DivFloat divides all components by f in floating-point.
func (v Vector3[T]) DivFloat(f float64) Vector3[T] {
	shrinkFloat(v[:], v[:], f)
	return v
}

// DivideInto returns the vector of s divided by each component.
func (v Vector3[T]) DivideInto(s float64) Vector3[T] {
	divideInto(v[:], v[:], s)
	return v
}

// MulComponents multiplies the vectors component-wise.
func (v Vector3[T]) MulComponents(other Vector3[T]) Vector3[T] {
	mul(v[:], v[:], other[:])
	return v
}

// DivComponents divides the vectors component-wise.
func (v Vector3[T]) DivComponents(other Vector3[T]) Vector3[T] {
	div(v[:], v[:], other[:])
	return v
}

// Equals compares the vectors, floating-point components with Epsilon
// tolerance.
func (v Vector3[T]) Equals(other Vector3[T]) bool {
	return equal(v[:], other[:])
}

// Less compares the vectors component-wise.
func (v Vector3[T]) Less(other Vector3[T]) (out [3]bool) {
	compare(out[:], v[:], other[:], less[T])
	return
}

// LessEqual compares the vectors component-wise.
func (v Vector3[T]) LessEqual(other Vector3[T]) (out [3]bool) {
	compare(out[:], v[:], other[:], lessEqual[T])
	return
}

// GreaterEqual compares the vectors component-wise.
func (v Vector3[T]) GreaterEqual(other Vector3[T]) (out [3]bool) {
	compare(out[:], v[:], other[:], greaterEqual[T])
	return
}

// Greater compares the vectors component-wise.
func (v Vector3[T]) Greater(other Vector3[T]) (out [3]bool) {
	compare(out[:], v[:], other[:], greater[T])
	return
}

// Dot returns the dot product of the vectors.
func (v Vector3[T]) Dot(other Vector3[T]) T {
	return dot(v[:], other[:])
}

// LengthSquared returns the dot product of the vector with itself.
func (v Vector3[T]) LengthSquared() T {
	return dot(v[:], v[:])
}

// Length returns the vector length.
func (v Vector3[T]) Length() T {
	return T(length(v[:]))
}

// Normalized returns the vector scaled to unit length.
func (v Vector3[T]) Normalized() Vector3[T] {
	return v.DivFloat(length(v[:]))
}

// Sum returns the sum of the components.
func (v Vector3[T]) Sum() T {
	return sum(v[:])
}

// Product returns the product of the components.
func (v Vector3[T]) Product() T {
	return product(v[:])
}

// Min returns the smallest component.
func (v Vector3[T]) Min() T {
	return minimum(v[:])
}

// MinAbs returns the smallest absolute value of the components.
func (v Vector3[T]) MinAbs() T {
	return minimumAbs(v[:])
}

// Max returns the largest component.
func (v Vector3[T]) Max() T {
	return maximum(v[:])
}

// MaxAbs returns the largest absolute value of the components.
func (v Vector3[T]) MaxAbs() T {
	return maximumAbs(v[:])
}

// Projected returns the projection of the vector onto line.
func (v Vector3[T]) Projected(line Vector3[T]) Vector3[T] {
	var out Vector3[T]
	projected(out[:], v[:], line[:])
	return out
}

// ProjectedOntoNormalized is Projected for a normalized line. The result
// is NaN if line is not normalized.
func (v Vector3[T]) ProjectedOntoNormalized(line Vector3[T]) Vector3[T] {
	var out Vector3[T]
	projectedOntoNormalized("vmath.Vector3.ProjectedOntoNormalized", out[:], v[:], line[:])
	return out
}

func (v Vector3[T]) String() string {
	return format(v[:])
}

// Angle3 returns the angle between two normalized vectors, NaN if
// either isn't normalized.
func Angle3[T Float](normalizedA, normalizedB Vector3[T]) Rad[T] {
	return angle("vmath.Angle3", normalizedA[:], normalizedB[:])
}

// Mgl32 converts the vector to its mathgl counterpart.
func (v Vector3[T]) Mgl32() glm.Vec3 {
	return glm.Vec3(Convert3[float32](v))
}

// Mgl64 converts the vector to its mathgl counterpart.
func (v Vector3[T]) Mgl64() glm64.Vec3 {
	return glm64.Vec3(Convert3[float64](v))
}

// Vector3FromMgl32 converts a mathgl vector.
func Vector3FromMgl32(v glm.Vec3) Vector3[float32] {
	return Vector3[float32](v)
}

// Vector3FromMgl64 converts a mathgl vector.
func Vector3FromMgl64(v glm64.Vec3) Vector3[float64] {
	return Vector3[float64](v)
}

// Cross returns the cross product of the vectors.
func (v Vector3[T]) Cross(other Vector3[T]) Vector3[T] {
	return Vector3[T]{
		v[1]*other[2] - v[2]*other[1],
		v[2]*other[0] - v[0]*other[2],
		v[0]*other[1] - v[1]*other[0],
	}
}
