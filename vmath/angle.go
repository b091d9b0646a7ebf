// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vmath

import (
	"fmt"
	"math"
)

// Rad is an angle in radians
type Rad[T Float] struct {
	value T
}

// Deg is an angle in degrees
type Deg[T Float] struct {
	value T
}

// Radians creates an angle in radians.
func Radians[T Float](v T) Rad[T] {
	return Rad[T]{v}
}

// Degrees creates an angle in degrees.
func Degrees[T Float](v T) Deg[T] {
	return Deg[T]{v}
}

// Value returns the angle in radians.
func (r Rad[T]) Value() T {
	return r.value
}

// Deg converts the angle to degrees.
func (r Rad[T]) Deg() Deg[T] {
	return Deg[T]{T(float64(r.value) * 180 / math.Pi)}
}

// Equals compares the angles with Epsilon tolerance.
func (r Rad[T]) Equals(other Rad[T]) bool {
	return Equals(r.value, other.value)
}

// IsNaN reports whether the angle is the result of a failed precondition.
func (r Rad[T]) IsNaN() bool {
	return IsNaN(r.value)
}

func (r Rad[T]) String() string {
	return fmt.Sprintf("Rad(%v)", r.value)
}

// Value returns the angle in degrees.
func (d Deg[T]) Value() T {
	return d.value
}

// Rad converts the angle to radians.
func (d Deg[T]) Rad() Rad[T] {
	return Rad[T]{T(float64(d.value) * math.Pi / 180)}
}

// Equals compares the angles with Epsilon tolerance.
func (d Deg[T]) Equals(other Deg[T]) bool {
	return Equals(d.value, other.value)
}

func (d Deg[T]) String() string {
	return fmt.Sprintf("Deg(%v)", d.value)
}
