// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vmath_test

import (
	"io"
	"math"
	"testing"

	"github.com/devblok/korumesh/vmath"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestEquals(t *testing.T) {
	assert.True(t, vmath.Equals(float32(1), 1+float32(0.5e-5)))
	assert.False(t, vmath.Equals(float32(1), 1+float32(2e-5)))
	assert.True(t, vmath.Equals(1.0, 1.0+0.5e-14))
	assert.False(t, vmath.Equals(1.0, 1.0+2e-14))
	assert.True(t, vmath.Equals(3, 3))
	assert.False(t, vmath.Equals(uint8(3), 4))

	assert.Equal(t, float32(1e-5), vmath.Epsilon[float32]())
	assert.Equal(t, 1e-14, vmath.Epsilon[float64]())
	assert.Equal(t, 0, vmath.Epsilon[int]())
}

func TestIsNaN(t *testing.T) {
	assert.True(t, vmath.IsNaN(math.NaN()))
	assert.True(t, vmath.IsNaN(float32(math.NaN())))
	assert.False(t, vmath.IsNaN(1.0))
	assert.False(t, vmath.IsNaN(0))
}

func TestAbs(t *testing.T) {
	assert.Equal(t, 3, vmath.Abs(-3))
	assert.Equal(t, float32(2.5), vmath.Abs(float32(-2.5)))
	assert.Equal(t, uint(7), vmath.Abs(uint(7)))
}

func TestAngleConversion(t *testing.T) {
	assert.True(t, vmath.Degrees(180.0).Rad().Equals(vmath.Radians(math.Pi)))
	assert.True(t, vmath.Radians(math.Pi/2).Deg().Equals(vmath.Degrees(90.0)))
	assert.True(t, vmath.Degrees[float32](-45).Rad().Deg().Equals(vmath.Degrees[float32](-45)))
	assert.Equal(t, "Rad(1.5)", vmath.Radians(1.5).String())
	assert.Equal(t, "Deg(90)", vmath.Degrees[float32](90).String())
	assert.False(t, vmath.Radians(1.5).IsNaN())
}

func TestSetLogger(t *testing.T) {
	hook := captureLog(t)
	vmath.Angle2(vmath.Vector2[float64]{2, 0}, vmath.Vector2[float64]{1, 0})
	assert.Len(t, hook.AllEntries(), 1)

	// nil restores the standard logger, nothing reaches the hook anymore
	vmath.SetLogger(nil)
	out := logrus.StandardLogger().Out
	logrus.SetOutput(io.Discard)
	defer logrus.SetOutput(out)
	vmath.Angle2(vmath.Vector2[float64]{2, 0}, vmath.Vector2[float64]{1, 0})
	assert.Len(t, hook.AllEntries(), 1)
}
