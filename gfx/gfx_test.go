// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx_test

import (
	"testing"

	"github.com/devblok/korumesh/gfx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeshPrimitiveWrap(t *testing.T) {
	p, err := gfx.MeshPrimitiveWrap(0xdead)
	require.NoError(t, err)
	assert.True(t, p.IsImplementationSpecific())
	assert.True(t, p.Valid())
	assert.Equal(t, uint32(0xdead), p.Unwrap())
	assert.Equal(t, "MeshPrimitive::ImplementationSpecific(0xdead)", p.String())

	_, err = gfx.MeshPrimitiveWrap(0x80000000)
	assert.Error(t, err)

	assert.False(t, gfx.MeshPrimitiveTriangles.IsImplementationSpecific())
}

func TestMeshPrimitiveString(t *testing.T) {
	assert.Equal(t, "MeshPrimitive::TriangleFan", gfx.MeshPrimitiveTriangleFan.String())
	assert.Equal(t, "MeshPrimitive(0x0)", gfx.MeshPrimitive(0).String())
	assert.Equal(t, "MeshPrimitive(0x12)", gfx.MeshPrimitive(0x12).String())
	assert.False(t, gfx.MeshPrimitive(0x12).Valid())

	p, ok := gfx.ParseMeshPrimitive("LineStrip")
	require.True(t, ok)
	assert.Equal(t, gfx.MeshPrimitiveLineStrip, p)

	_, ok = gfx.ParseMeshPrimitive("Quads")
	assert.False(t, ok)
}

func TestVertexFormatProperties(t *testing.T) {
	cases := []struct {
		format     gfx.VertexFormat
		name       string
		components int
		size       int
		component  gfx.VertexFormat
		normalized bool
	}{
		{gfx.VertexFormatFloat, "Float", 1, 4, gfx.VertexFormatFloat, false},
		{gfx.VertexFormatDouble, "Double", 1, 8, gfx.VertexFormatDouble, false},
		{gfx.VertexFormatUnsignedShort, "UnsignedShort", 1, 2, gfx.VertexFormatUnsignedShort, false},
		{gfx.VertexFormatVector2, "Vector2", 2, 8, gfx.VertexFormatFloat, false},
		{gfx.VertexFormatVector2ui, "Vector2ui", 2, 8, gfx.VertexFormatUnsignedInt, false},
		{gfx.VertexFormatVector3, "Vector3", 3, 12, gfx.VertexFormatFloat, false},
		{gfx.VertexFormatVector3h, "Vector3h", 3, 6, gfx.VertexFormatHalf, false},
		{gfx.VertexFormatVector4ubNormalized, "Vector4ubNormalized", 4, 4, gfx.VertexFormatUnsignedByteNormalized, true},
		{gfx.VertexFormatVector4d, "Vector4d", 4, 32, gfx.VertexFormatDouble, false},
		{gfx.VertexFormatVector4i, "Vector4i", 4, 16, gfx.VertexFormatInt, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.True(t, c.format.Valid())
			assert.Equal(t, "VertexFormat::"+c.name, c.format.String())
			assert.Equal(t, c.components, c.format.ComponentCount())
			assert.Equal(t, c.size, c.format.Size())
			assert.Equal(t, c.component, c.format.ComponentFormat())
			assert.Equal(t, c.normalized, c.format.IsNormalized())

			parsed, ok := gfx.ParseVertexFormat(c.name)
			require.True(t, ok)
			assert.Equal(t, c.format, parsed)
		})
	}
}

func TestVertexFormatInvalid(t *testing.T) {
	invalid := gfx.VertexFormat(0xdead)
	assert.False(t, invalid.Valid())
	assert.Equal(t, 0, invalid.Size())
	assert.Equal(t, 0, invalid.ComponentCount())
	assert.Equal(t, "VertexFormat(0xdead)", invalid.String())

	_, ok := gfx.ParseVertexFormat("Vector5")
	assert.False(t, ok)
}

func TestIndexTypeSize(t *testing.T) {
	assert.Equal(t, 1, gfx.MeshIndexTypeUnsignedByte.Size())
	assert.Equal(t, 2, gfx.MeshIndexTypeUnsignedShort.Size())
	assert.Equal(t, 4, gfx.MeshIndexTypeUnsignedInt.Size())
	assert.Equal(t, 0, gfx.MeshIndexType(0).Size())
	assert.Equal(t, "MeshIndexType::UnsignedShort", gfx.MeshIndexTypeUnsignedShort.String())
}
