// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vmath_test

import (
	"testing"

	"github.com/devblok/korumesh/vmath"
	glm "github.com/go-gl/mathgl/mgl32"
	glm64 "github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type (
	vector3  = vmath.Vector3[float32]
	vector4  = vmath.Vector4[float32]
	vector4i = vmath.Vector4[int32]
	vector2b = vmath.Vector2[int8]
)

// captureLog redirects diagnostics into a test hook for the duration of the test.
func captureLog(t *testing.T) *test.Hook {
	t.Helper()
	logger, hook := test.NewNullLogger()
	vmath.SetLogger(logger)
	t.Cleanup(func() { vmath.SetLogger(nil) })
	return hook
}

func assertVector4(t *testing.T, expected, actual vector4) {
	t.Helper()
	assert.True(t, expected.Equals(actual), "expected %s, got %s", expected, actual)
}

func TestVectorConstruct(t *testing.T) {
	assert.Equal(t, vector4{1, 2, 3, 4}, vmath.Vector4From([]float32{1, 2, 3, 4, 5}))
	assert.Equal(t, vector4{0, 0, 0, 0}, vector4{})
	assert.Equal(t, vector4{7.25, 7.25, 7.25, 7.25}, vmath.Splat4[float32](7.25))

	assert.Panics(t, func() { vmath.Vector4From([]float32{1, 2}) })
}

func TestVectorConvert(t *testing.T) {
	floatingPoint := vector4{1.3, 2.7, -15.0, 7.0}
	floatingPointRounded := vector4{1.0, 2.0, -15.0, 7.0}
	integral := vector4i{1, 2, -15, 7}

	assert.Equal(t, integral, vmath.Convert4[int32](floatingPoint))
	assert.Equal(t, floatingPointRounded, vmath.Convert4[float32](integral))
	assert.Equal(t, vector4i{1, 3, 4, -2}, vmath.Convert4[int32](vector4{1.0, 3.5, 4.0, -2.7}))
}

func TestVectorData(t *testing.T) {
	vector := vector4{4, 5, 6, 7}
	vector[2] = 1.0
	vector[3] = 1.5
	assert.Equal(t, float32(1.0), vector.Z())
	assert.Equal(t, float32(1.5), vector.W())
	assert.Equal(t, vector4{4, 5, 1, 1.5}, vector)
	assert.Equal(t, vmath.Vector3[float32]{4, 5, 1}, vector.XYZ())
	assert.Equal(t, vmath.Vector2[float32]{4, 5}, vector.XY())
}

func TestVectorCompare(t *testing.T) {
	eps := vmath.Epsilon[float32]()
	assert.True(t, vector4{1, -3.5, 5, -10}.Equals(vector4{1 + eps/2, -3.5, 5, -10}))
	assert.False(t, vector4{1, -1, 5, -10}.Equals(vector4{1, -1 + eps*2, 5, -10}))
	assert.True(t, vector4i{1, -3, 5, -10}.Equals(vector4i{1, -3, 5, -10}))
	assert.False(t, vector4i{1, -3, 5, -10}.Equals(vector4i{1, -2, 5, -10}))
}

func TestVectorCompareComponentWise(t *testing.T) {
	a := vector3{1, -1, 5}
	b := vector3{1.1, -1, 3}
	assert.Equal(t, [3]bool{true, false, false}, a.Less(b))
	assert.Equal(t, [3]bool{true, true, false}, a.LessEqual(b))
	assert.Equal(t, [3]bool{false, true, true}, a.GreaterEqual(b))
	assert.Equal(t, [3]bool{false, false, true}, a.Greater(b))
}

func TestVectorNegated(t *testing.T) {
	assert.Equal(t, vector4{-1, 3, -5, 10}, vector4{1, -3, 5, -10}.Negated())
}

func TestVectorAddSubtract(t *testing.T) {
	a := vector4{1, -3, 5, -10}
	b := vector4{7.5, 33, -15, 0}
	c := vector4{8.5, 30, -10, -10}
	assertVector4(t, c, a.Add(b))
	assertVector4(t, a, c.Sub(b))
}

func TestVectorMultiplyDivide(t *testing.T) {
	vector := vector4{1, 2, 3, 4}
	multiplied := vector4{-1.5, -3, -4.5, -6}
	assertVector4(t, multiplied, vector.Mul(-1.5))
	assertVector4(t, vector, multiplied.Div(-1.5))

	vectorChar := vector2b{32, 32}
	multipliedChar := vector2b{-48, -48}
	assert.Equal(t, multipliedChar, vectorChar.MulFloat(-1.5))
	assert.Equal(t, vectorChar, multipliedChar.DivFloat(-1.5))

	// divide number by vector
	divisor := vector4{1, 2, -4, 8}
	assertVector4(t, vector4{1, 0.5, -0.25, 0.125}, divisor.DivideInto(1))
	assert.Equal(t, vectorChar, multipliedChar.DivideInto(-1550))

	// integer division stays integer
	assert.Equal(t, vector4i{0, 1, 1, 2}, vector4i{1, 2, 3, 4}.Div(2))
}

func TestVectorMultiplyDivideComponentWise(t *testing.T) {
	vec := vector4{1, 2, 3, 4}
	multiplier := vector4{7, -4, -1.5, 1}
	multiplied := vector4{7, -8, -4.5, 4}
	assertVector4(t, multiplied, vec.MulComponents(multiplier))
	assertVector4(t, vec, multiplied.DivComponents(multiplier))
}

func TestVectorDot(t *testing.T) {
	assert.Equal(t, float32(15.25), vector4{1, 0.5, 0.75, 1.5}.Dot(vector4{2, 4, 1, 7}))
	assert.Equal(t, float32(30), vector4{1, 2, 3, 4}.LengthSquared())
}

func TestVectorLength(t *testing.T) {
	assert.True(t, vmath.Equals(float32(5.4772256), vector4{1, 2, 3, 4}.Length()))
	assertVector4(t, vector4{0.5, 0.5, 0.5, 0.5}, vector4{1, 1, 1, 1}.Normalized())
	assert.Equal(t, int32(5), vmath.Vector2[int32]{3, 4}.Length())
}

func TestVectorReduce(t *testing.T) {
	assert.Equal(t, float32(7), vector3{1, 2, 4}.Sum())
	assert.Equal(t, float32(6), vector3{1, 2, 3}.Product())

	// initial value isn't 0
	assert.Equal(t, float32(-2), vector3{1, -2, 3}.Min())
	assert.Equal(t, float32(-1), vector3{-1, -2, -3}.Max())

	// initial value is absolute, as are all the others
	assert.Equal(t, float32(1), vector3{-2, 1, 3}.MinAbs())
	assert.Equal(t, float32(1), vector3{1, -2, 3}.MinAbs())
	assert.Equal(t, float32(5), vector3{-5, 1, 3}.MaxAbs())
	assert.Equal(t, float32(5), vector3{1, -5, 3}.MaxAbs())
}

func TestVectorProjected(t *testing.T) {
	line := vector3{1, -1, 0.5}
	projected := vector3{1, 2, 3}.Projected(line)
	assert.True(t, projected.Equals(vector3{0.222222, -0.222222, 0.111111}), projected.String())
	assert.True(t, projected.Normalized().Equals(line.Normalized()))
}

func TestVectorProjectedOntoNormalized(t *testing.T) {
	hook := captureLog(t)

	vector := vector3{1, 2, 3}
	line := vector3{1, -1, 0.5}
	projected := vector.ProjectedOntoNormalized(line)
	assert.True(t, vmath.IsNaN(projected.X()))
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Equal(t, "vmath.Vector3.ProjectedOntoNormalized(): line must be normalized", hook.LastEntry().Message)

	hook.Reset()
	projected = vector.ProjectedOntoNormalized(line.Normalized())
	assert.Empty(t, hook.AllEntries())
	assert.True(t, projected.Equals(vector3{0.222222, -0.222222, 0.111111}))
	assert.True(t, projected.Normalized().Equals(line.Normalized()))
	assert.True(t, projected.Equals(vector.Projected(line)))
}

func TestVectorAngle(t *testing.T) {
	hook := captureLog(t)

	angle := vmath.Angle3(vector3{2, 3, 4}.Normalized(), vector3{1, -2, 3})
	assert.True(t, angle.IsNaN())
	assert.Equal(t, "vmath.Angle3(): vectors must be normalized", hook.LastEntry().Message)

	hook.Reset()
	angle = vmath.Angle3(vector3{2, 3, 4}, vector3{1, -2, 3}.Normalized())
	assert.True(t, angle.IsNaN())
	assert.Len(t, hook.AllEntries(), 1)

	hook.Reset()
	angle = vmath.Angle3(vector3{2, 3, 4}.Normalized(), vector3{1, -2, 3}.Normalized())
	assert.True(t, angle.Equals(vmath.Radians[float32](1.162514)), angle.String())
	assert.Empty(t, hook.AllEntries())
}

func TestVectorCross(t *testing.T) {
	assert.Equal(t, vmath.Vector3[int32]{-3, 6, -3}, vmath.Vector3[int32]{1, 2, 3}.Cross(vmath.Vector3[int32]{4, 5, 6}))
}

func TestVectorString(t *testing.T) {
	assert.Equal(t, "Vector(0.5, 15, 1, 1)", vector4{0.5, 15, 1, 1}.String())
	assert.Equal(t, "Vector(0, 0, 0, 0)", vector4{}.String())
	assert.Equal(t, "Vector(-48, 7)", vector2b{-48, 7}.String())
}

func TestVectorMathgl(t *testing.T) {
	v := vector3{1, 2, 3}
	assert.Equal(t, glm.Vec3{1, 2, 3}, v.Mgl32())
	assert.Equal(t, glm64.Vec3{1, 2, 3}, v.Mgl64())
	assert.Equal(t, v, vmath.Vector3FromMgl32(glm.Vec3{1, 2, 3}))
	assert.Equal(t, vmath.Vector4[float64]{1, 2, 3, 4}, vmath.Vector4FromMgl64(glm64.Vec4{1, 2, 3, 4}))

	// matches mathgl's own products
	a, b := vector3{1, -2, 0.5}, vector3{3, 4, -1}
	assert.True(t, vmath.Equals(a.Mgl32().Dot(b.Mgl32()), a.Dot(b)))
	assert.Equal(t, a.Mgl32().Cross(b.Mgl32()), a.Cross(b).Mgl32())
}
