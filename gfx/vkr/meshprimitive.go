// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vkr

import (
	"fmt"

	"github.com/devblok/korumesh/gfx"
	vk "github.com/devblok/vulkan"
	"github.com/pkg/errors"
)

// MeshPrimitive wraps vk.PrimitiveTopology.
type MeshPrimitive int32

// Mesh primitives. The _LIST suffix of the Vulkan names is omitted.
const (
	MeshPrimitivePoints                 = MeshPrimitive(vk.PrimitiveTopologyPointList)
	MeshPrimitiveLines                  = MeshPrimitive(vk.PrimitiveTopologyLineList)
	MeshPrimitiveLineStrip              = MeshPrimitive(vk.PrimitiveTopologyLineStrip)
	MeshPrimitiveTriangles              = MeshPrimitive(vk.PrimitiveTopologyTriangleList)
	MeshPrimitiveTriangleStrip          = MeshPrimitive(vk.PrimitiveTopologyTriangleStrip)
	MeshPrimitiveTriangleFan            = MeshPrimitive(vk.PrimitiveTopologyTriangleFan)
	MeshPrimitiveLinesAdjacency         = MeshPrimitive(vk.PrimitiveTopologyLineListWithAdjacency)
	MeshPrimitiveLineStripAdjacency     = MeshPrimitive(vk.PrimitiveTopologyLineStripWithAdjacency)
	MeshPrimitiveTrianglesAdjacency     = MeshPrimitive(vk.PrimitiveTopologyTriangleListWithAdjacency)
	MeshPrimitiveTriangleStripAdjacency = MeshPrimitive(vk.PrimitiveTopologyTriangleStripWithAdjacency)
	MeshPrimitivePatches                = MeshPrimitive(vk.PrimitiveTopologyPatchList)
)

var meshPrimitiveNames = map[MeshPrimitive]string{
	MeshPrimitivePoints:                 "Points",
	MeshPrimitiveLines:                  "Lines",
	MeshPrimitiveLineStrip:              "LineStrip",
	MeshPrimitiveTriangles:              "Triangles",
	MeshPrimitiveTriangleStrip:          "TriangleStrip",
	MeshPrimitiveTriangleFan:            "TriangleFan",
	MeshPrimitiveLinesAdjacency:         "LinesAdjacency",
	MeshPrimitiveLineStripAdjacency:     "LineStripAdjacency",
	MeshPrimitiveTrianglesAdjacency:     "TrianglesAdjacency",
	MeshPrimitiveTriangleStripAdjacency: "TriangleStripAdjacency",
	MeshPrimitivePatches:                "Patches",
}

func (p MeshPrimitive) String() string {
	if name, ok := meshPrimitiveNames[p]; ok {
		return name
	}
	return fmt.Sprintf("MeshPrimitive(%d)", int32(p))
}

// ParseMeshPrimitive looks a primitive up by the name String returns.
func ParseMeshPrimitive(name string) (MeshPrimitive, bool) {
	for p, n := range meshPrimitiveNames {
		if n == name {
			return p, true
		}
	}
	return 0, false
}

// unsupportedTopology marks generic primitives Vulkan has no topology for.
const unsupportedTopology = MeshPrimitive(-1)

// indexed by gfx.MeshPrimitive - 1
var primitiveTopologyMapping = [...]MeshPrimitive{
	MeshPrimitivePoints,
	MeshPrimitiveLines,
	unsupportedTopology, // LineLoop
	MeshPrimitiveLineStrip,
	MeshPrimitiveTriangles,
	MeshPrimitiveTriangleStrip,
	MeshPrimitiveTriangleFan,
	unsupportedTopology, // Instances
	unsupportedTopology, // Faces
	unsupportedTopology, // Edges
}

// HasMeshPrimitive reports whether the generic primitive has a Vulkan
// equivalent. Implementation-specific primitives are always available.
// Extension-dependent availability is not checked here.
func HasMeshPrimitive(primitive gfx.MeshPrimitive) (bool, error) {
	if primitive.IsImplementationSpecific() {
		return true, nil
	}
	idx := uint32(primitive) - 1
	if idx >= uint32(len(primitiveTopologyMapping)) {
		return false, errors.Wrapf(ErrInvalidArgument, "vkr.HasMeshPrimitive(): invalid primitive %s", primitive)
	}
	return primitiveTopologyMapping[idx] != unsupportedTopology, nil
}

// MeshPrimitiveFor converts a generic primitive to the Vulkan one.
// Implementation-specific primitives are unwrapped verbatim.
func MeshPrimitiveFor(primitive gfx.MeshPrimitive) (MeshPrimitive, error) {
	if primitive.IsImplementationSpecific() {
		return MeshPrimitive(primitive.Unwrap()), nil
	}
	idx := uint32(primitive) - 1
	if idx >= uint32(len(primitiveTopologyMapping)) {
		return 0, errors.Wrapf(ErrInvalidArgument, "vkr.MeshPrimitiveFor(): invalid primitive %s", primitive)
	}
	out := primitiveTopologyMapping[idx]
	if out == unsupportedTopology {
		return 0, errors.Wrapf(ErrUnsupported, "vkr.MeshPrimitiveFor(): unsupported primitive %s", primitive)
	}
	return out, nil
}
