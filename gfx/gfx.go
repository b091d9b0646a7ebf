// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package gfx defines rendering related types that are independent of
// the graphics API. Renderers translate them into their own equivalents.
package gfx

import (
	"fmt"

	"github.com/pkg/errors"
)

// Releasable defines any memory-occupying item that can be freed.
type Releasable interface {

	// Release releases memory occupied by the implementing structure.
	Release()
}

// implementationSpecific marks a value that stores an API-specific enum
// instead of a generic one.
const implementationSpecific = uint32(1) << 31

// MeshPrimitive is a generic mesh primitive. Values with the highest bit
// set carry a renderer-specific primitive, see MeshPrimitiveWrap.
type MeshPrimitive uint32

// Generic mesh primitives.
const (
	MeshPrimitivePoints MeshPrimitive = iota + 1
	MeshPrimitiveLines
	MeshPrimitiveLineLoop
	MeshPrimitiveLineStrip
	MeshPrimitiveTriangles
	MeshPrimitiveTriangleStrip
	MeshPrimitiveTriangleFan
	MeshPrimitiveInstances
	MeshPrimitiveFaces
	MeshPrimitiveEdges
)

var meshPrimitiveNames = [...]string{
	MeshPrimitivePoints:        "Points",
	MeshPrimitiveLines:         "Lines",
	MeshPrimitiveLineLoop:      "LineLoop",
	MeshPrimitiveLineStrip:     "LineStrip",
	MeshPrimitiveTriangles:     "Triangles",
	MeshPrimitiveTriangleStrip: "TriangleStrip",
	MeshPrimitiveTriangleFan:   "TriangleFan",
	MeshPrimitiveInstances:     "Instances",
	MeshPrimitiveFaces:         "Faces",
	MeshPrimitiveEdges:         "Edges",
}

// MeshPrimitiveWrap stores a renderer-specific primitive in a generic one.
// The value must fit into 31 bits.
func MeshPrimitiveWrap(value uint32) (MeshPrimitive, error) {
	if value&implementationSpecific != 0 {
		return 0, errors.Errorf("gfx.MeshPrimitiveWrap(): implementation-specific value 0x%x already wrapped", value)
	}
	return MeshPrimitive(implementationSpecific | value), nil
}

// IsImplementationSpecific reports whether the primitive was created with
// MeshPrimitiveWrap.
func (p MeshPrimitive) IsImplementationSpecific() bool {
	return uint32(p)&implementationSpecific != 0
}

// Unwrap returns the renderer-specific value stored in the primitive.
func (p MeshPrimitive) Unwrap() uint32 {
	return uint32(p) &^ implementationSpecific
}

// Valid reports whether the primitive is one of the generic values or
// an implementation-specific one.
func (p MeshPrimitive) Valid() bool {
	return p.IsImplementationSpecific() || (p >= MeshPrimitivePoints && p <= MeshPrimitiveEdges)
}

func (p MeshPrimitive) String() string {
	if p.IsImplementationSpecific() {
		return fmt.Sprintf("MeshPrimitive::ImplementationSpecific(0x%x)", p.Unwrap())
	}
	if p >= MeshPrimitivePoints && p <= MeshPrimitiveEdges {
		return "MeshPrimitive::" + meshPrimitiveNames[p]
	}
	return fmt.Sprintf("MeshPrimitive(0x%x)", uint32(p))
}

// ParseMeshPrimitive looks a generic primitive up by its name, e.g. "Triangles".
func ParseMeshPrimitive(name string) (MeshPrimitive, bool) {
	for p := MeshPrimitivePoints; p <= MeshPrimitiveEdges; p++ {
		if meshPrimitiveNames[p] == name {
			return p, true
		}
	}
	return 0, false
}

// MeshIndexType is the type of mesh index buffer elements.
type MeshIndexType uint32

// Index types
const (
	MeshIndexTypeUnsignedByte MeshIndexType = iota + 1
	MeshIndexTypeUnsignedShort
	MeshIndexTypeUnsignedInt
)

func (t MeshIndexType) String() string {
	switch t {
	case MeshIndexTypeUnsignedByte:
		return "MeshIndexType::UnsignedByte"
	case MeshIndexTypeUnsignedShort:
		return "MeshIndexType::UnsignedShort"
	case MeshIndexTypeUnsignedInt:
		return "MeshIndexType::UnsignedInt"
	}
	return fmt.Sprintf("MeshIndexType(0x%x)", uint32(t))
}

// Size returns the size of one index in bytes, 0 for invalid types.
func (t MeshIndexType) Size() int {
	switch t {
	case MeshIndexTypeUnsignedByte:
		return 1
	case MeshIndexTypeUnsignedShort:
		return 2
	case MeshIndexTypeUnsignedInt:
		return 4
	}
	return 0
}

// SamplerFilter is a texture sampler filter.
type SamplerFilter uint32

// Sampler filters
const (
	SamplerFilterNearest SamplerFilter = iota
	SamplerFilterLinear
)

func (f SamplerFilter) String() string {
	switch f {
	case SamplerFilterNearest:
		return "SamplerFilter::Nearest"
	case SamplerFilterLinear:
		return "SamplerFilter::Linear"
	}
	return fmt.Sprintf("SamplerFilter(0x%x)", uint32(f))
}

// SamplerMipmap is a texture sampler mip level selection mode.
type SamplerMipmap uint32

// Mipmap selection modes. SamplerMipmapBase samples only the base level.
const (
	SamplerMipmapBase SamplerMipmap = iota
	SamplerMipmapNearest
	SamplerMipmapLinear
)

func (m SamplerMipmap) String() string {
	switch m {
	case SamplerMipmapBase:
		return "SamplerMipmap::Base"
	case SamplerMipmapNearest:
		return "SamplerMipmap::Nearest"
	case SamplerMipmapLinear:
		return "SamplerMipmap::Linear"
	}
	return fmt.Sprintf("SamplerMipmap(0x%x)", uint32(m))
}

// SamplerWrapping is a texture coordinate wrapping mode.
type SamplerWrapping uint32

// Wrapping modes
const (
	SamplerWrappingRepeat SamplerWrapping = iota
	SamplerWrappingMirroredRepeat
	SamplerWrappingClampToEdge
	SamplerWrappingClampToBorder
	SamplerWrappingMirrorClampToEdge
)

func (w SamplerWrapping) String() string {
	switch w {
	case SamplerWrappingRepeat:
		return "SamplerWrapping::Repeat"
	case SamplerWrappingMirroredRepeat:
		return "SamplerWrapping::MirroredRepeat"
	case SamplerWrappingClampToEdge:
		return "SamplerWrapping::ClampToEdge"
	case SamplerWrappingClampToBorder:
		return "SamplerWrapping::ClampToBorder"
	case SamplerWrappingMirrorClampToEdge:
		return "SamplerWrapping::MirrorClampToEdge"
	}
	return fmt.Sprintf("SamplerWrapping(0x%x)", uint32(w))
}
