// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package meshdesc describes mesh layouts in TOML, so they can be kept
// next to the shaders consuming them:
//
//	primitive = "Triangles"
//
//	[[binding]]
//	binding = 0
//	stride = 32
//
//	[[attribute]]
//	location = 0
//	binding = 0
//	format = "Vector3"
//	offset = 0
//
// Instanced bindings set instanced = true and optionally a divisor,
// which defaults to 1.
package meshdesc

import (
	"bytes"
	"os"

	"github.com/devblok/korumesh/gfx"
	"github.com/devblok/korumesh/gfx/vkr"
	vk "github.com/devblok/vulkan"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// Binding describes a vertex buffer binding
type Binding struct {
	Binding   uint32  `toml:"binding" json:"binding"`
	Stride    uint32  `toml:"stride" json:"stride"`
	Instanced bool    `toml:"instanced,omitempty" json:"instanced,omitempty"`
	Divisor   *uint32 `toml:"divisor,omitempty" json:"divisor,omitempty"`
}

// Attribute describes a vertex attribute
type Attribute struct {
	Location uint32 `toml:"location" json:"location"`
	Binding  uint32 `toml:"binding" json:"binding"`
	Format   string `toml:"format" json:"format"`
	Offset   uint32 `toml:"offset" json:"offset"`
}

// Description is the serialized form of a mesh layout
type Description struct {
	Name       string      `toml:"name,omitempty" json:"name,omitempty"`
	Primitive  string      `toml:"primitive" json:"primitive"`
	Restart    bool        `toml:"restart,omitempty" json:"restart,omitempty"`
	Bindings   []Binding   `toml:"binding" json:"bindings"`
	Attributes []Attribute `toml:"attribute" json:"attributes"`
}

// Parse decodes a description. Unknown keys are an error.
func Parse(data []byte) (*Description, error) {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var desc Description
	if err := dec.Decode(&desc); err != nil {
		return nil, errors.Wrap(err, "meshdesc.Parse()")
	}
	return &desc, nil
}

// Load reads and decodes a description file.
func Load(path string) (*Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "meshdesc.Load()")
	}
	desc, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "meshdesc.Load(%s)", path)
	}
	return desc, nil
}

// Marshal encodes the description as TOML.
func (d *Description) Marshal() ([]byte, error) {
	return toml.Marshal(d)
}

// primitive resolves the topology by its Vulkan name first, then by the
// generic one.
func (d *Description) primitive() (vkr.MeshPrimitive, error) {
	if p, ok := vkr.ParseMeshPrimitive(d.Primitive); ok {
		return p, nil
	}
	if p, ok := gfx.ParseMeshPrimitive(d.Primitive); ok {
		return vkr.MeshPrimitiveFor(p)
	}
	return 0, errors.Wrapf(vkr.ErrInvalidArgument, "meshdesc: unknown primitive %q", d.Primitive)
}

// Build creates the mesh layout and validates it.
func (d *Description) Build() (*vkr.MeshLayout, error) {
	primitive, err := d.primitive()
	if err != nil {
		return nil, err
	}

	layout := vkr.NewMeshLayout(primitive).SetPrimitiveRestart(d.Restart)
	for _, b := range d.Bindings {
		switch {
		case b.Instanced && b.Divisor != nil:
			layout.AddInstancedBindingDivisor(b.Binding, b.Stride, *b.Divisor)
		case b.Instanced:
			layout.AddInstancedBinding(b.Binding, b.Stride)
		case b.Divisor != nil:
			return nil, errors.Wrapf(vkr.ErrInvalidArgument, "meshdesc: divisor set on per-vertex binding %d", b.Binding)
		default:
			layout.AddBinding(b.Binding, b.Stride)
		}
	}

	for _, a := range d.Attributes {
		generic, ok := gfx.ParseVertexFormat(a.Format)
		if !ok {
			return nil, errors.Wrapf(vkr.ErrInvalidArgument, "meshdesc: unknown format %q at location %d", a.Format, a.Location)
		}
		format, err := vkr.VertexFormatFor(generic)
		if err != nil {
			return nil, err
		}
		layout.AddAttribute(a.Location, a.Binding, format, a.Offset)
	}

	if err := layout.Validate(); err != nil {
		name := d.Name
		if name == "" {
			name = "unnamed"
		}
		return nil, errors.Wrapf(err, "meshdesc: %s", name)
	}
	return layout, nil
}

// Describe creates the description of an existing layout. Formats
// without a generic counterpart can't be described.
func Describe(layout *vkr.MeshLayout) (*Description, error) {
	desc := &Description{
		Primitive: layout.Primitive().String(),
		Restart:   layout.InputAssemblyStateCreateInfo().PrimitiveRestartEnable != 0,
	}

	divisors := make(map[uint32]uint32, len(layout.Divisors()))
	for _, d := range layout.Divisors() {
		divisors[d.Binding] = d.Divisor
	}

	for _, b := range layout.Bindings() {
		binding := Binding{
			Binding:   b.Binding,
			Stride:    b.Stride,
			Instanced: b.InputRate == vk.VertexInputRateInstance,
		}
		if divisor, ok := divisors[b.Binding]; ok {
			binding.Divisor = &divisor
		}
		desc.Bindings = append(desc.Bindings, binding)
	}

	for _, a := range layout.Attributes() {
		format := vkr.VertexFormat(a.Format)
		if format.Size() == 0 {
			return nil, errors.Wrapf(vkr.ErrUnsupported, "meshdesc.Describe(): format %d at location %d has no generic name", a.Format, a.Location)
		}
		desc.Attributes = append(desc.Attributes, Attribute{
			Location: a.Location,
			Binding:  a.Binding,
			Format:   format.String(),
			Offset:   a.Offset,
		})
	}
	return desc, nil
}
