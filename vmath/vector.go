// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vmath

import (
	"fmt"
	"math"
	"strings"
)

// Component-wise kernels shared by the fixed-size vectors. out may alias
// the inputs.

func negate[T Number](out, a []T) {
	for i := range out {
		out[i] = -a[i]
	}
}

func add[T Number](out, a, b []T) {
	for i := range out {
		out[i] = a[i] + b[i]
	}
}

func sub[T Number](out, a, b []T) {
	for i := range out {
		out[i] = a[i] - b[i]
	}
}

func mul[T Number](out, a, b []T) {
	for i := range out {
		out[i] = a[i] * b[i]
	}
}

func div[T Number](out, a, b []T) {
	for i := range out {
		out[i] = a[i] / b[i]
	}
}

func scale[T Number](out, a []T, s T) {
	for i := range out {
		out[i] = a[i] * s
	}
}

func shrink[T Number](out, a []T, s T) {
	for i := range out {
		out[i] = a[i] / s
	}
}

// scaleFloat multiplies in float64, so integer vectors can be scaled by
// fractional factors.
func scaleFloat[T Number](out, a []T, f float64) {
	for i := range out {
		out[i] = T(float64(a[i]) * f)
	}
}

func shrinkFloat[T Number](out, a []T, f float64) {
	for i := range out {
		out[i] = T(float64(a[i]) / f)
	}
}

// divideInto computes s/a[i] for every component.
func divideInto[T Number](out, a []T, s float64) {
	for i := range out {
		out[i] = T(s / float64(a[i]))
	}
}

func fill[T Number](out []T, v T) {
	for i := range out {
		out[i] = v
	}
}

func dot[T Number](a, b []T) T {
	var out T
	for i := range a {
		out += a[i] * b[i]
	}
	return out
}

func sum[T Number](a []T) T {
	out := a[0]
	for _, v := range a[1:] {
		out += v
	}
	return out
}

func product[T Number](a []T) T {
	out := a[0]
	for _, v := range a[1:] {
		out *= v
	}
	return out
}

func minimum[T Number](a []T) T {
	out := a[0]
	for _, v := range a[1:] {
		if v < out {
			out = v
		}
	}
	return out
}

func minimumAbs[T Number](a []T) T {
	out := Abs(a[0])
	for _, v := range a[1:] {
		if v = Abs(v); v < out {
			out = v
		}
	}
	return out
}

func maximum[T Number](a []T) T {
	out := a[0]
	for _, v := range a[1:] {
		if v > out {
			out = v
		}
	}
	return out
}

func maximumAbs[T Number](a []T) T {
	out := Abs(a[0])
	for _, v := range a[1:] {
		if v = Abs(v); v > out {
			out = v
		}
	}
	return out
}

func equal[T Number](a, b []T) bool {
	for i := range a {
		if !Equals(a[i], b[i]) {
			return false
		}
	}
	return true
}

func compare[T Number](out []bool, a, b []T, cmp func(a, b T) bool) {
	for i := range out {
		out[i] = cmp(a[i], b[i])
	}
}

func less[T Number](a, b T) bool         { return a < b }
func lessEqual[T Number](a, b T) bool    { return a <= b }
func greaterEqual[T Number](a, b T) bool { return a >= b }
func greater[T Number](a, b T) bool      { return a > b }

func isNormalized[T Number](a []T) bool {
	return Equals(dot(a, a), T(1))
}

func length[T Number](a []T) float64 {
	return math.Sqrt(float64(dot(a, a)))
}

// angle expects both vectors to be normalized.
func angle[T Float](name string, a, b []T) Rad[T] {
	if !isNormalized(a) || !isNormalized(b) {
		logError(name + "(): vectors must be normalized")
		return Rad[T]{nan[T]()}
	}
	return Rad[T]{T(math.Acos(float64(dot(a, b))))}
}

// projected stores the projection of a onto line in out.
func projected[T Number](out, a, line []T) {
	scaleFloat(out, line, float64(dot(a, line))/float64(dot(line, line)))
}

func projectedOntoNormalized[T Number](name string, out, a, line []T) {
	if !isNormalized(line) {
		logError(name + "(): line must be normalized")
		fill(out, nan[T]())
		return
	}
	scale(out, line, dot(a, line))
}

func format[T Number](a []T) string {
	var sb strings.Builder
	sb.WriteString("Vector(")
	for i, v := range a {
		if i != 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteString(")")
	return sb.String()
}
