// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package meshdesc_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/devblok/korumesh/gfx/vkr"
	"github.com/devblok/korumesh/meshdesc"
	"github.com/devblok/korumesh/model"
	vk "github.com/devblok/vulkan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const textured = `
name = "textured"
primitive = "Triangles"

[[binding]]
binding = 0
stride = 32

[[attribute]]
location = 0
binding = 0
format = "Vector3"
offset = 0

[[attribute]]
location = 1
binding = 0
format = "Vector2"
offset = 12
`

func TestParseBuild(t *testing.T) {
	desc, err := meshdesc.Parse([]byte(textured))
	require.NoError(t, err)
	assert.Equal(t, "textured", desc.Name)
	require.Len(t, desc.Bindings, 1)
	require.Len(t, desc.Attributes, 2)
	assert.Nil(t, desc.Bindings[0].Divisor)

	layout, err := desc.Build()
	require.NoError(t, err)
	assert.Equal(t, []vk.VertexInputBindingDescription{
		{Binding: 0, Stride: 32, InputRate: vk.VertexInputRateVertex},
	}, layout.Bindings())
	assert.Equal(t, []vk.VertexInputAttributeDescription{
		{Location: 0, Binding: 0, Format: vk.FormatR32g32b32Sfloat, Offset: 0},
		{Location: 1, Binding: 0, Format: vk.FormatR32g32Sfloat, Offset: 12},
	}, layout.Attributes())
	assert.Equal(t, vkr.MeshPrimitiveTriangles, layout.Primitive())
	assert.Equal(t, vk.Bool32(vk.False), layout.InputAssemblyStateCreateInfo().PrimitiveRestartEnable)
}

func TestParseUnknownField(t *testing.T) {
	_, err := meshdesc.Parse([]byte("primitive = \"Points\"\ntopology = \"Points\"\n"))
	assert.Error(t, err)

	_, err = meshdesc.Parse([]byte("primitive = "))
	assert.Error(t, err)
}

func TestBuildDivisors(t *testing.T) {
	desc, err := meshdesc.Parse([]byte(`
primitive = "Points"

[[binding]]
binding = 0
stride = 16
instanced = true
divisor = 3

[[binding]]
binding = 1
stride = 8
instanced = true
divisor = 0

[[binding]]
binding = 2
stride = 8
instanced = true
`))
	require.NoError(t, err)

	layout, err := desc.Build()
	require.NoError(t, err)
	assert.Equal(t, []vkr.VertexInputBindingDivisorDescription{
		{Binding: 0, Divisor: 3},
		{Binding: 1, Divisor: 0},
	}, layout.Divisors())
	assert.Len(t, layout.Bindings(), 3)
}

func TestBuildErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		desc meshdesc.Description
		err  error
	}{
		{"unknown primitive", meshdesc.Description{Primitive: "Quads"}, vkr.ErrInvalidArgument},
		{"unsupported primitive", meshdesc.Description{Primitive: "LineLoop"}, vkr.ErrUnsupported},
		{
			"unknown format",
			meshdesc.Description{
				Primitive:  "Points",
				Bindings:   []meshdesc.Binding{{Binding: 0, Stride: 4}},
				Attributes: []meshdesc.Attribute{{Format: "Vector5"}},
			},
			vkr.ErrInvalidArgument,
		},
		{
			"divisor on per-vertex binding",
			meshdesc.Description{
				Primitive: "Points",
				Bindings:  []meshdesc.Binding{{Binding: 0, Stride: 4, Divisor: new(uint32)}},
			},
			vkr.ErrInvalidArgument,
		},
		{
			"dangling attribute",
			meshdesc.Description{
				Primitive:  "Points",
				Attributes: []meshdesc.Attribute{{Binding: 3, Format: "Float"}},
			},
			vkr.ErrInvalidArgument,
		},
		{
			"duplicate binding",
			meshdesc.Description{
				Primitive: "Triangles",
				Bindings:  []meshdesc.Binding{{Binding: 0, Stride: 4}, {Binding: 0, Stride: 8, Instanced: true}},
			},
			vkr.ErrInvalidArgument,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.desc.Build()
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestBuildGenericPrimitive(t *testing.T) {
	desc := meshdesc.Description{Primitive: "TriangleFan"}
	layout, err := desc.Build()
	require.NoError(t, err)
	assert.Equal(t, vkr.MeshPrimitiveTriangleFan, layout.Primitive())
}

func TestDescribe(t *testing.T) {
	layout := model.InstancedVertexLayout(vkr.MeshPrimitiveTriangleStrip, 0).SetPrimitiveRestart(true)

	desc, err := meshdesc.Describe(layout)
	require.NoError(t, err)
	assert.Equal(t, "TriangleStrip", desc.Primitive)
	assert.True(t, desc.Restart)
	require.Len(t, desc.Bindings, 2)
	require.NotNil(t, desc.Bindings[1].Divisor)
	assert.Equal(t, uint32(0), *desc.Bindings[1].Divisor)
	assert.Equal(t, "Vector4", desc.Attributes[2].Format)

	// through TOML and back into an identical layout
	data, err := desc.Marshal()
	require.NoError(t, err)
	parsed, err := meshdesc.Parse(data)
	require.NoError(t, err)
	rebuilt, err := parsed.Build()
	require.NoError(t, err)

	assert.Equal(t, layout.Bindings(), rebuilt.Bindings())
	assert.Equal(t, layout.Attributes(), rebuilt.Attributes())
	assert.Equal(t, layout.Divisors(), rebuilt.Divisors())
	assert.Equal(t, *layout.InputAssemblyStateCreateInfo(), *rebuilt.InputAssemblyStateCreateInfo())
}

func TestDescribeUnknownFormat(t *testing.T) {
	layout := vkr.NewMeshLayout(vkr.MeshPrimitivePoints).
		AddBinding(0, 4).
		AddAttribute(0, 0, vkr.VertexFormat(1000156000), 0)
	_, err := meshdesc.Describe(layout)
	assert.ErrorIs(t, err, vkr.ErrUnsupported)
}

func TestPresets(t *testing.T) {
	assert.Equal(t, []string{
		"model",
		"model_instanced",
		"outline",
		"particles",
		"position",
		"textured",
	}, meshdesc.Presets())

	for _, name := range meshdesc.Presets() {
		t.Run(name, func(t *testing.T) {
			desc, err := meshdesc.Preset(name)
			require.NoError(t, err)
			assert.Equal(t, name, desc.Name)
			_, err = desc.Build()
			assert.NoError(t, err)
		})
	}

	_, err := meshdesc.Preset("nope")
	assert.ErrorIs(t, err, meshdesc.ErrUnknownPreset)
}

func TestPresetsMatchModel(t *testing.T) {
	for name, expected := range map[string]*vkr.MeshLayout{
		"model":           model.VertexLayout(vkr.MeshPrimitiveTriangles),
		"model_instanced": model.InstancedVertexLayout(vkr.MeshPrimitiveTriangles, 1),
	} {
		desc, err := meshdesc.Preset(name)
		require.NoError(t, err)
		layout, err := desc.Build()
		require.NoError(t, err)
		assert.Equal(t, expected.Bindings(), layout.Bindings(), name)
		assert.Equal(t, expected.Attributes(), layout.Attributes(), name)
	}
}

func TestPresetsParticles(t *testing.T) {
	desc, err := meshdesc.Preset("particles")
	require.NoError(t, err)
	layout, err := desc.Build()
	require.NoError(t, err)
	assert.Equal(t, vkr.FeatureVertexAttributeInstanceRateDivisor|vkr.FeatureVertexAttributeInstanceRateZeroDivisor,
		layout.RequiredFeatures())
}

func TestPresetBoxDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "custom.toml"), []byte(textured), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	box, err := meshdesc.NewPresetBox(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"custom"}, box.Names())

	desc, err := box.Get("custom")
	require.NoError(t, err)
	// name from the file wins over the preset name
	assert.Equal(t, "textured", desc.Name)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "layout.toml")
	require.NoError(t, os.WriteFile(file, []byte(textured), 0o644))

	desc, err := meshdesc.Load(file)
	require.NoError(t, err)
	assert.Len(t, desc.Attributes, 2)

	_, err = meshdesc.Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
