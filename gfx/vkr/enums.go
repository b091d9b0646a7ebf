// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vkr

import (
	"github.com/devblok/korumesh/gfx"
	vk "github.com/devblok/vulkan"
	"github.com/pkg/errors"
)

// IndexTypeUint8 is VK_INDEX_TYPE_UINT8_EXT, needs the
// VK_EXT_index_type_uint8 extension.
const IndexTypeUint8 = vk.IndexType(1000265000)

// indexed by gfx.MeshIndexType - 1
var indexTypeMapping = [...]vk.IndexType{
	IndexTypeUint8,
	vk.IndexTypeUint16,
	vk.IndexTypeUint32,
}

var filterMapping = [...]vk.Filter{
	vk.FilterNearest,
	vk.FilterLinear,
}

var samplerMipmapModeMapping = [...]vk.SamplerMipmapMode{
	vk.SamplerMipmapModeNearest, // Base, see SamplerMipmapMode
	vk.SamplerMipmapModeNearest,
	vk.SamplerMipmapModeLinear,
}

var samplerAddressModeMapping = [...]vk.SamplerAddressMode{
	vk.SamplerAddressModeRepeat,
	vk.SamplerAddressModeMirroredRepeat,
	vk.SamplerAddressModeClampToEdge,
	vk.SamplerAddressModeClampToBorder,
	vk.SamplerAddressModeMirrorClampToEdge,
}

// HasIndexType reports whether the generic index type has a Vulkan
// equivalent. Extension availability is the caller's concern.
func HasIndexType(t gfx.MeshIndexType) (bool, error) {
	if uint32(t)-1 >= uint32(len(indexTypeMapping)) {
		return false, errors.Wrapf(ErrInvalidArgument, "vkr.HasIndexType(): invalid type %s", t)
	}
	return true, nil
}

// IndexType converts a generic index type to vk.IndexType.
func IndexType(t gfx.MeshIndexType) (vk.IndexType, error) {
	if uint32(t)-1 >= uint32(len(indexTypeMapping)) {
		return 0, errors.Wrapf(ErrInvalidArgument, "vkr.IndexType(): invalid type %s", t)
	}
	return indexTypeMapping[t-1], nil
}

// Filter converts a generic sampler filter to vk.Filter.
func Filter(f gfx.SamplerFilter) (vk.Filter, error) {
	if uint32(f) >= uint32(len(filterMapping)) {
		return 0, errors.Wrapf(ErrInvalidArgument, "vkr.Filter(): invalid filter %s", f)
	}
	return filterMapping[f], nil
}

// SamplerMipmapMode converts a generic mipmap mode. Vulkan has no base
// level only mode, gfx.SamplerMipmapBase maps to nearest and the sampler
// has to be restricted to a single level by the caller.
func SamplerMipmapMode(m gfx.SamplerMipmap) (vk.SamplerMipmapMode, error) {
	if uint32(m) >= uint32(len(samplerMipmapModeMapping)) {
		return 0, errors.Wrapf(ErrInvalidArgument, "vkr.SamplerMipmapMode(): invalid mode %s", m)
	}
	return samplerMipmapModeMapping[m], nil
}

// HasSamplerAddressMode reports whether the generic wrapping has a Vulkan
// equivalent.
func HasSamplerAddressMode(w gfx.SamplerWrapping) (bool, error) {
	if uint32(w) >= uint32(len(samplerAddressModeMapping)) {
		return false, errors.Wrapf(ErrInvalidArgument, "vkr.HasSamplerAddressMode(): invalid wrapping %s", w)
	}
	return true, nil
}

// SamplerAddressMode converts a generic wrapping to vk.SamplerAddressMode.
func SamplerAddressMode(w gfx.SamplerWrapping) (vk.SamplerAddressMode, error) {
	if uint32(w) >= uint32(len(samplerAddressModeMapping)) {
		return 0, errors.Wrapf(ErrInvalidArgument, "vkr.SamplerAddressMode(): invalid wrapping %s", w)
	}
	return samplerAddressModeMapping[w], nil
}

// SamplerAddressModes converts wrapping for each texture dimension.
func SamplerAddressModes(wrapping ...gfx.SamplerWrapping) ([]vk.SamplerAddressMode, error) {
	out := make([]vk.SamplerAddressMode, len(wrapping))
	for idx, w := range wrapping {
		mode, err := SamplerAddressMode(w)
		if err != nil {
			return nil, err
		}
		out[idx] = mode
	}
	return out, nil
}
