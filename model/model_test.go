package model

import (
	"sync"
	"testing"

	"github.com/devblok/korumesh/gfx/vkr"
	vk "github.com/devblok/vulkan"
	glm "github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexLayout(t *testing.T) {
	layout := VertexLayout(vkr.MeshPrimitiveTriangles)
	require.NoError(t, layout.Validate())

	assert.Equal(t, []vk.VertexInputBindingDescription{
		{Binding: 0, Stride: 40, InputRate: vk.VertexInputRateVertex},
	}, layout.Bindings())
	assert.Equal(t, []vk.VertexInputAttributeDescription{
		{Location: 0, Binding: 0, Format: vk.FormatR32g32b32Sfloat, Offset: 0},
		{Location: 1, Binding: 0, Format: vk.FormatR32g32b32Sfloat, Offset: 12},
		{Location: 2, Binding: 0, Format: vk.FormatR32g32b32a32Sfloat, Offset: 24},
	}, layout.Attributes())
	assert.True(t, layout.VertexInputStateCreateInfo().PNext == nil, "PNext chain not empty")
}

func TestInstancedVertexLayout(t *testing.T) {
	layout := InstancedVertexLayout(vkr.MeshPrimitiveTriangleStrip, 1)
	require.NoError(t, layout.Validate())

	require.Len(t, layout.Bindings(), 2)
	assert.Equal(t, vk.VertexInputBindingDescription{
		Binding: 1, Stride: 80, InputRate: vk.VertexInputRateInstance,
	}, layout.Bindings()[1])

	attributes := layout.Attributes()
	require.Len(t, attributes, 8)
	for idx, offset := range []uint32{0, 16, 32, 48, 64} {
		a := attributes[3+idx]
		assert.Equal(t, uint32(3+idx), a.Location)
		assert.Equal(t, InstanceBinding, a.Binding)
		assert.Equal(t, offset, a.Offset)
	}

	// default divisor needs no extension
	assert.Empty(t, layout.Divisors())
	assert.Equal(t, vkr.Features(0), layout.RequiredFeatures())

	layout = InstancedVertexLayout(vkr.MeshPrimitiveTriangleStrip, 0)
	require.NoError(t, layout.Validate())
	assert.Equal(t, []vkr.VertexInputBindingDivisorDescription{{Binding: 1, Divisor: 0}}, layout.Divisors())
	assert.True(t, layout.RequiredFeatures().Has(vkr.FeatureVertexAttributeInstanceRateZeroDivisor))
}

func TestMesh(t *testing.T) {
	mesh := NewMesh(vkr.MeshPrimitiveTriangles, []Vertex{
		{Pos: glm.Vec3{0, 0, 0}},
		{Pos: glm.Vec3{1, 0, 0}},
		{Pos: glm.Vec3{0, 1, 0}},
	})
	assert.Equal(t, glm.Ident4(), mesh.Position())
	assert.Equal(t, glm.Ident4(), mesh.Rotation())
	assert.Len(t, mesh.Vertices(), 3)

	translate := glm.Translate3D(1, 2, 3)
	rotate := glm.HomogRotate3DZ(glm.DegToRad(90))
	mesh.SetPosition(translate)
	mesh.SetRotation(rotate)
	assert.Equal(t, translate, mesh.Position())
	assert.Equal(t, rotate, mesh.Rotation())
	assert.True(t, translate.Mul4(rotate).ApproxEqual(mesh.Uniform().Model))

	assert.Len(t, mesh.Layout(3).Bindings(), 1)

	mesh.AddInstance(Instance{Model: glm.Ident4(), Tint: glm.Vec4{1, 1, 1, 1}})
	layout := mesh.Layout(3)
	assert.Len(t, layout.Bindings(), 2)
	assert.Equal(t, []vkr.VertexInputBindingDivisorDescription{{Binding: 1, Divisor: 3}}, layout.Divisors())
}

func TestMeshConcurrent(t *testing.T) {
	mesh := NewMesh(vkr.MeshPrimitivePoints, nil)

	var wg sync.WaitGroup
	for idx := 0; idx < 8; idx++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			mesh.AddInstance(Instance{Model: glm.Translate3D(float32(idx), 0, 0)})
			mesh.SetPosition(glm.Translate3D(0, float32(idx), 0))
			_ = mesh.Position()
			_ = mesh.Instances()
		}(idx)
	}
	wg.Wait()

	assert.Len(t, mesh.Instances(), 8)
}
