// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

import (
	"fmt"
	"strconv"
)

// VertexFormat is a generic vertex attribute format. Formats are laid out
// as four groups (one to four components) of the same thirteen component
// kinds, so the component count and kind can be derived from the value.
type VertexFormat uint32

// Vertex formats
const (
	VertexFormatFloat VertexFormat = iota + 1
	VertexFormatHalf
	VertexFormatDouble
	VertexFormatUnsignedByte
	VertexFormatUnsignedByteNormalized
	VertexFormatByte
	VertexFormatByteNormalized
	VertexFormatUnsignedShort
	VertexFormatUnsignedShortNormalized
	VertexFormatShort
	VertexFormatShortNormalized
	VertexFormatUnsignedInt
	VertexFormatInt

	VertexFormatVector2
	VertexFormatVector2h
	VertexFormatVector2d
	VertexFormatVector2ub
	VertexFormatVector2ubNormalized
	VertexFormatVector2b
	VertexFormatVector2bNormalized
	VertexFormatVector2us
	VertexFormatVector2usNormalized
	VertexFormatVector2s
	VertexFormatVector2sNormalized
	VertexFormatVector2ui
	VertexFormatVector2i

	VertexFormatVector3
	VertexFormatVector3h
	VertexFormatVector3d
	VertexFormatVector3ub
	VertexFormatVector3ubNormalized
	VertexFormatVector3b
	VertexFormatVector3bNormalized
	VertexFormatVector3us
	VertexFormatVector3usNormalized
	VertexFormatVector3s
	VertexFormatVector3sNormalized
	VertexFormatVector3ui
	VertexFormatVector3i

	VertexFormatVector4
	VertexFormatVector4h
	VertexFormatVector4d
	VertexFormatVector4ub
	VertexFormatVector4ubNormalized
	VertexFormatVector4b
	VertexFormatVector4bNormalized
	VertexFormatVector4us
	VertexFormatVector4usNormalized
	VertexFormatVector4s
	VertexFormatVector4sNormalized
	VertexFormatVector4ui
	VertexFormatVector4i

	vertexFormatEnd
)

const vertexFormatKinds = 13

var (
	scalarFormatNames = [vertexFormatKinds]string{
		"Float", "Half", "Double",
		"UnsignedByte", "UnsignedByteNormalized", "Byte", "ByteNormalized",
		"UnsignedShort", "UnsignedShortNormalized", "Short", "ShortNormalized",
		"UnsignedInt", "Int",
	}
	vectorFormatSuffixes = [vertexFormatKinds]string{
		"", "h", "d",
		"ub", "ubNormalized", "b", "bNormalized",
		"us", "usNormalized", "s", "sNormalized",
		"ui", "i",
	}
	componentSizes = [vertexFormatKinds]int{
		4, 2, 8,
		1, 1, 1, 1,
		2, 2, 2, 2,
		4, 4,
	}
)

// Valid reports whether the format is one of the known formats.
func (f VertexFormat) Valid() bool {
	return f >= VertexFormatFloat && f < vertexFormatEnd
}

func (f VertexFormat) kind() int {
	return int(f-1) % vertexFormatKinds
}

// ComponentCount returns the number of components, 0 for invalid formats.
func (f VertexFormat) ComponentCount() int {
	if !f.Valid() {
		return 0
	}
	return int(f-1)/vertexFormatKinds + 1
}

// ComponentFormat returns the single-component format of one component.
func (f VertexFormat) ComponentFormat() VertexFormat {
	if !f.Valid() {
		return 0
	}
	return VertexFormat(f.kind() + 1)
}

// IsNormalized reports whether integer components are normalized to
// the [0, 1] or [-1, 1] range.
func (f VertexFormat) IsNormalized() bool {
	if !f.Valid() {
		return false
	}
	switch VertexFormat(f.kind() + 1) {
	case VertexFormatUnsignedByteNormalized, VertexFormatByteNormalized,
		VertexFormatUnsignedShortNormalized, VertexFormatShortNormalized:
		return true
	}
	return false
}

// Size returns the size of the whole attribute in bytes.
func (f VertexFormat) Size() int {
	if !f.Valid() {
		return 0
	}
	return componentSizes[f.kind()] * f.ComponentCount()
}

func (f VertexFormat) name() string {
	if f.ComponentCount() == 1 {
		return scalarFormatNames[f.kind()]
	}
	return "Vector" + strconv.Itoa(f.ComponentCount()) + vectorFormatSuffixes[f.kind()]
}

func (f VertexFormat) String() string {
	if !f.Valid() {
		return fmt.Sprintf("VertexFormat(0x%x)", uint32(f))
	}
	return "VertexFormat::" + f.name()
}

// ParseVertexFormat looks a format up by its name, e.g. "Vector3" or
// "UnsignedShort".
func ParseVertexFormat(name string) (VertexFormat, bool) {
	for f := VertexFormatFloat; f < vertexFormatEnd; f++ {
		if f.name() == name {
			return f, true
		}
	}
	return 0, false
}
