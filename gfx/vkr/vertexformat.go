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

// VertexFormat wraps the vk.Format values usable as vertex attributes.
type VertexFormat int32

// Vertex formats, named after their generic counterparts.
const (
	VertexFormatFloat                   = VertexFormat(vk.FormatR32Sfloat)
	VertexFormatHalf                    = VertexFormat(vk.FormatR16Sfloat)
	VertexFormatDouble                  = VertexFormat(vk.FormatR64Sfloat)
	VertexFormatUnsignedByte            = VertexFormat(vk.FormatR8Uint)
	VertexFormatUnsignedByteNormalized  = VertexFormat(vk.FormatR8Unorm)
	VertexFormatByte                    = VertexFormat(vk.FormatR8Sint)
	VertexFormatByteNormalized          = VertexFormat(vk.FormatR8Snorm)
	VertexFormatUnsignedShort           = VertexFormat(vk.FormatR16Uint)
	VertexFormatUnsignedShortNormalized = VertexFormat(vk.FormatR16Unorm)
	VertexFormatShort                   = VertexFormat(vk.FormatR16Sint)
	VertexFormatShortNormalized         = VertexFormat(vk.FormatR16Snorm)
	VertexFormatUnsignedInt             = VertexFormat(vk.FormatR32Uint)
	VertexFormatInt                     = VertexFormat(vk.FormatR32Sint)

	VertexFormatVector2             = VertexFormat(vk.FormatR32g32Sfloat)
	VertexFormatVector2h            = VertexFormat(vk.FormatR16g16Sfloat)
	VertexFormatVector2d            = VertexFormat(vk.FormatR64g64Sfloat)
	VertexFormatVector2ub           = VertexFormat(vk.FormatR8g8Uint)
	VertexFormatVector2ubNormalized = VertexFormat(vk.FormatR8g8Unorm)
	VertexFormatVector2b            = VertexFormat(vk.FormatR8g8Sint)
	VertexFormatVector2bNormalized  = VertexFormat(vk.FormatR8g8Snorm)
	VertexFormatVector2us           = VertexFormat(vk.FormatR16g16Uint)
	VertexFormatVector2usNormalized = VertexFormat(vk.FormatR16g16Unorm)
	VertexFormatVector2s            = VertexFormat(vk.FormatR16g16Sint)
	VertexFormatVector2sNormalized  = VertexFormat(vk.FormatR16g16Snorm)
	VertexFormatVector2ui           = VertexFormat(vk.FormatR32g32Uint)
	VertexFormatVector2i            = VertexFormat(vk.FormatR32g32Sint)

	VertexFormatVector3             = VertexFormat(vk.FormatR32g32b32Sfloat)
	VertexFormatVector3h            = VertexFormat(vk.FormatR16g16b16Sfloat)
	VertexFormatVector3d            = VertexFormat(vk.FormatR64g64b64Sfloat)
	VertexFormatVector3ub           = VertexFormat(vk.FormatR8g8b8Uint)
	VertexFormatVector3ubNormalized = VertexFormat(vk.FormatR8g8b8Unorm)
	VertexFormatVector3b            = VertexFormat(vk.FormatR8g8b8Sint)
	VertexFormatVector3bNormalized  = VertexFormat(vk.FormatR8g8b8Snorm)
	VertexFormatVector3us           = VertexFormat(vk.FormatR16g16b16Uint)
	VertexFormatVector3usNormalized = VertexFormat(vk.FormatR16g16b16Unorm)
	VertexFormatVector3s            = VertexFormat(vk.FormatR16g16b16Sint)
	VertexFormatVector3sNormalized  = VertexFormat(vk.FormatR16g16b16Snorm)
	VertexFormatVector3ui           = VertexFormat(vk.FormatR32g32b32Uint)
	VertexFormatVector3i            = VertexFormat(vk.FormatR32g32b32Sint)

	VertexFormatVector4             = VertexFormat(vk.FormatR32g32b32a32Sfloat)
	VertexFormatVector4h            = VertexFormat(vk.FormatR16g16b16a16Sfloat)
	VertexFormatVector4d            = VertexFormat(vk.FormatR64g64b64a64Sfloat)
	VertexFormatVector4ub           = VertexFormat(vk.FormatR8g8b8a8Uint)
	VertexFormatVector4ubNormalized = VertexFormat(vk.FormatR8g8b8a8Unorm)
	VertexFormatVector4b            = VertexFormat(vk.FormatR8g8b8a8Sint)
	VertexFormatVector4bNormalized  = VertexFormat(vk.FormatR8g8b8a8Snorm)
	VertexFormatVector4us           = VertexFormat(vk.FormatR16g16b16a16Uint)
	VertexFormatVector4usNormalized = VertexFormat(vk.FormatR16g16b16a16Unorm)
	VertexFormatVector4s            = VertexFormat(vk.FormatR16g16b16a16Sint)
	VertexFormatVector4sNormalized  = VertexFormat(vk.FormatR16g16b16a16Snorm)
	VertexFormatVector4ui           = VertexFormat(vk.FormatR32g32b32a32Uint)
	VertexFormatVector4i            = VertexFormat(vk.FormatR32g32b32a32Sint)
)

// indexed by gfx.VertexFormat - 1, same order as the gfx constants
var vertexFormatMapping = [...]VertexFormat{
	VertexFormatFloat, VertexFormatHalf, VertexFormatDouble,
	VertexFormatUnsignedByte, VertexFormatUnsignedByteNormalized,
	VertexFormatByte, VertexFormatByteNormalized,
	VertexFormatUnsignedShort, VertexFormatUnsignedShortNormalized,
	VertexFormatShort, VertexFormatShortNormalized,
	VertexFormatUnsignedInt, VertexFormatInt,

	VertexFormatVector2, VertexFormatVector2h, VertexFormatVector2d,
	VertexFormatVector2ub, VertexFormatVector2ubNormalized,
	VertexFormatVector2b, VertexFormatVector2bNormalized,
	VertexFormatVector2us, VertexFormatVector2usNormalized,
	VertexFormatVector2s, VertexFormatVector2sNormalized,
	VertexFormatVector2ui, VertexFormatVector2i,

	VertexFormatVector3, VertexFormatVector3h, VertexFormatVector3d,
	VertexFormatVector3ub, VertexFormatVector3ubNormalized,
	VertexFormatVector3b, VertexFormatVector3bNormalized,
	VertexFormatVector3us, VertexFormatVector3usNormalized,
	VertexFormatVector3s, VertexFormatVector3sNormalized,
	VertexFormatVector3ui, VertexFormatVector3i,

	VertexFormatVector4, VertexFormatVector4h, VertexFormatVector4d,
	VertexFormatVector4ub, VertexFormatVector4ubNormalized,
	VertexFormatVector4b, VertexFormatVector4bNormalized,
	VertexFormatVector4us, VertexFormatVector4usNormalized,
	VertexFormatVector4s, VertexFormatVector4sNormalized,
	VertexFormatVector4ui, VertexFormatVector4i,
}

// generic counterparts of the mapped formats, for sizes and names
var vertexFormatGeneric = func() map[VertexFormat]gfx.VertexFormat {
	m := make(map[VertexFormat]gfx.VertexFormat, len(vertexFormatMapping))
	for idx, f := range vertexFormatMapping {
		m[f] = gfx.VertexFormat(idx + 1)
	}
	return m
}()

// HasVertexFormat reports whether the generic format has a Vulkan
// equivalent.
func HasVertexFormat(format gfx.VertexFormat) (bool, error) {
	if !format.Valid() {
		return false, errors.Wrapf(ErrInvalidArgument, "vkr.HasVertexFormat(): invalid format %s", format)
	}
	return int(format) <= len(vertexFormatMapping), nil
}

// VertexFormatFor converts a generic vertex format to the Vulkan one.
func VertexFormatFor(format gfx.VertexFormat) (VertexFormat, error) {
	if !format.Valid() {
		return 0, errors.Wrapf(ErrInvalidArgument, "vkr.VertexFormatFor(): invalid format %s", format)
	}
	if int(format) > len(vertexFormatMapping) {
		return 0, errors.Wrapf(ErrUnsupported, "vkr.VertexFormatFor(): unsupported format %s", format)
	}
	return vertexFormatMapping[format-1], nil
}

// Size returns the attribute size in bytes, 0 if the format is not one of
// the known vertex formats.
func (f VertexFormat) Size() int {
	if g, ok := vertexFormatGeneric[f]; ok {
		return g.Size()
	}
	return 0
}

// Vk returns the format as vk.Format.
func (f VertexFormat) Vk() vk.Format {
	return vk.Format(f)
}

func (f VertexFormat) String() string {
	if g, ok := vertexFormatGeneric[f]; ok {
		// strip the "VertexFormat::" of the generic name
		return g.String()[len("VertexFormat::"):]
	}
	return fmt.Sprintf("VertexFormat(%d)", int32(f))
}
