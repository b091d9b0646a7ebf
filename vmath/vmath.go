// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package vmath is the engine's small linear algebra kernel: angles,
// fixed-size vectors, 2D rotations as complex numbers and 2x2 matrices,
// generic over the scalar type.
//
// Operations with preconditions, such as angles between vectors that
// have to be normalized, don't panic. They log an error through the
// package logger and return NaN.
package vmath

import (
	"math"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
)

// Number is a scalar usable in vectors and matrices
type Number interface {
	constraints.Integer | constraints.Float
}

// Float is a floating-point scalar
type Float interface {
	constraints.Float
}

var (
	loggerMu sync.RWMutex
	logger   logrus.FieldLogger = logrus.StandardLogger()
)

// SetLogger replaces the logger precondition failures are reported to.
// nil restores the logrus standard logger.
func SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = logrus.StandardLogger()
	}
	loggerMu.Lock()
	logger = l
	loggerMu.Unlock()
}

func logError(msg string) {
	loggerMu.RLock()
	l := logger
	loggerMu.RUnlock()
	l.Error(msg)
}

// Epsilon returns the fuzzy comparison threshold of T, zero for integers.
func Epsilon[T Number]() T {
	var z T
	eps := 0.0
	switch any(z).(type) {
	case float32:
		eps = 1.0e-5
	case float64:
		eps = 1.0e-14
	}
	return T(eps)
}

// Equals compares floating-point values with Epsilon tolerance and
// integers exactly.
func Equals[T Number](a, b T) bool {
	if !isFloat[T]() {
		return a == b
	}
	return Abs(a-b) < Epsilon[T]()
}

// Abs returns the absolute value.
func Abs[T Number](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// IsNaN reports whether v is NaN, always false for integers.
func IsNaN[T Number](v T) bool {
	return v != v
}

func isFloat[T Number]() bool {
	var z T
	switch any(z).(type) {
	case float32, float64:
		return true
	}
	return false
}

// nan is the quiet NaN of T, zero for integers.
func nan[T Number]() T {
	if !isFloat[T]() {
		return 0
	}
	return T(math.NaN())
}
