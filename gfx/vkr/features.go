// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vkr

import (
	"strings"
)

// Features is a set of device features a mesh layout can depend on.
type Features uint32

// Device features
const (
	FeatureGeometryShader Features = 1 << iota
	FeatureTessellationShader
	// FeatureTriangleFans is only missing on portability subset devices.
	FeatureTriangleFans
	FeatureVertexAttributeInstanceRateDivisor
	FeatureVertexAttributeInstanceRateZeroDivisor
)

var featureNames = []struct {
	feature Features
	name    string
}{
	{FeatureGeometryShader, "geometryShader"},
	{FeatureTessellationShader, "tessellationShader"},
	{FeatureTriangleFans, "triangleFans"},
	{FeatureVertexAttributeInstanceRateDivisor, "vertexAttributeInstanceRateDivisor"},
	{FeatureVertexAttributeInstanceRateZeroDivisor, "vertexAttributeInstanceRateZeroDivisor"},
}

// Has reports whether all of other is in f.
func (f Features) Has(other Features) bool {
	return f&other == other
}

func (f Features) String() string {
	if f == 0 {
		return "none"
	}
	var names []string
	for _, n := range featureNames {
		if f.Has(n.feature) {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, ", ")
}

// RequiredFeatures returns the device features the layout depends on.
func (l *MeshLayout) RequiredFeatures() Features {
	var required Features
	switch l.Primitive() {
	case MeshPrimitiveLinesAdjacency, MeshPrimitiveLineStripAdjacency,
		MeshPrimitiveTrianglesAdjacency, MeshPrimitiveTriangleStripAdjacency:
		required |= FeatureGeometryShader
	case MeshPrimitivePatches:
		required |= FeatureTessellationShader
	case MeshPrimitiveTriangleFan:
		required |= FeatureTriangleFans
	}

	for _, d := range l.Divisors() {
		required |= FeatureVertexAttributeInstanceRateDivisor
		if d.Divisor == 0 {
			required |= FeatureVertexAttributeInstanceRateZeroDivisor
		}
	}
	return required
}
