// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vkr

import (
	"unsafe"

	"github.com/devblok/korumesh/gfx"
	vk "github.com/devblok/vulkan"
	"github.com/pkg/errors"
)

// StructureTypePipelineVertexInputDivisorStateCreateInfo is
// VK_STRUCTURE_TYPE_PIPELINE_VERTEX_INPUT_DIVISOR_STATE_CREATE_INFO_EXT.
const StructureTypePipelineVertexInputDivisorStateCreateInfo = vk.StructureType(1000190001)

// VertexInputBindingDivisorDescription mirrors
// VkVertexInputBindingDivisorDescriptionEXT.
type VertexInputBindingDivisorDescription struct {
	Binding uint32
	Divisor uint32
}

// PipelineVertexInputDivisorStateCreateInfo mirrors the memory layout of
// VkPipelineVertexInputDivisorStateCreateInfoEXT so it can be linked
// into the PNext chain of vk.PipelineVertexInputStateCreateInfo.
type PipelineVertexInputDivisorStateCreateInfo struct {
	SType                     vk.StructureType
	PNext                     unsafe.Pointer
	VertexBindingDivisorCount uint32
	PVertexBindingDivisors    *VertexInputBindingDivisorDescription
}

// noCopy makes go vet complain about copies of the embedding struct.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// MeshLayout builds the vertex input and input assembly state of a
// graphics pipeline: buffer bindings, attributes, and the divisor
// extension block for instanced bindings with a divisor other than 1.
//
// The vertex input state may point into storage owned by the layout, so a
// MeshLayout must not be copied. Use Move or MoveFrom to transfer it.
type MeshLayout struct {
	noCopy noCopy

	vertexInfo   vk.PipelineVertexInputStateCreateInfo
	assemblyInfo vk.PipelineInputAssemblyStateCreateInfo

	state *meshLayoutState
}

type meshLayoutState struct {
	bindings   []vk.VertexInputBindingDescription
	attributes []vk.VertexInputAttributeDescription
	divisors   []VertexInputBindingDivisorDescription

	// linked into vertexInfo.PNext at most once, never moves afterwards
	vertexDivisorInfo PipelineVertexInputDivisorStateCreateInfo
	divisorLinked     bool

	err error
}

var _ gfx.Releasable = (*MeshLayout)(nil)

// NewMeshLayout creates a layout for the given primitive. Apart from the
// structure types and the topology everything is zero.
func NewMeshLayout(primitive MeshPrimitive) *MeshLayout {
	return &MeshLayout{
		vertexInfo: vk.PipelineVertexInputStateCreateInfo{
			SType: vk.StructureTypePipelineVertexInputStateCreateInfo,
		},
		assemblyInfo: vk.PipelineInputAssemblyStateCreateInfo{
			SType:    vk.StructureTypePipelineInputAssemblyStateCreateInfo,
			Topology: vk.PrimitiveTopology(primitive),
		},
	}
}

// NewMeshLayoutFromGeneric creates a layout for a generic primitive.
func NewMeshLayoutFromGeneric(primitive gfx.MeshPrimitive) (*MeshLayout, error) {
	p, err := MeshPrimitiveFor(primitive)
	if err != nil {
		return nil, err
	}
	return NewMeshLayout(p), nil
}

// NewMeshLayoutFromVk creates a layout from existing structures. Values
// are copied verbatim, slices and pointers are kept without taking over
// their ownership. The first Add call copies existing bindings and
// attributes into storage owned by the layout.
func NewMeshLayoutFromVk(vertexInfo vk.PipelineVertexInputStateCreateInfo, assemblyInfo vk.PipelineInputAssemblyStateCreateInfo) *MeshLayout {
	return &MeshLayout{
		vertexInfo:   vertexInfo,
		assemblyInfo: assemblyInfo,
	}
}

func (l *MeshLayout) ensureState() *meshLayoutState {
	if l.state == nil {
		l.state = &meshLayoutState{
			bindings:   append([]vk.VertexInputBindingDescription(nil), l.Bindings()...),
			attributes: append([]vk.VertexInputAttributeDescription(nil), l.Attributes()...),
		}
	}
	return l.state
}

func (l *MeshLayout) fail(err error) {
	s := l.ensureState()
	if s.err == nil {
		s.err = err
	}
}

func (l *MeshLayout) hasBinding(binding uint32) bool {
	for _, b := range l.Bindings() {
		if b.Binding == binding {
			return true
		}
	}
	return false
}

func (l *MeshLayout) appendBinding(binding, stride uint32, rate vk.VertexInputRate) bool {
	if l.hasBinding(binding) {
		l.fail(errors.Wrapf(ErrInvalidArgument, "vkr.MeshLayout: binding %d added more than once", binding))
		return false
	}

	s := l.ensureState()
	s.bindings = append(s.bindings, vk.VertexInputBindingDescription{
		Binding:   binding,
		Stride:    stride,
		InputRate: rate,
	})
	l.vertexInfo.VertexBindingDescriptionCount = uint32(len(s.bindings))
	l.vertexInfo.PVertexBindingDescriptions = s.bindings
	return true
}

// AddBinding adds a per-vertex buffer binding. The binding index has to be
// unique among all AddBinding and AddInstancedBinding calls, a repeated
// index is ignored and recorded in Err.
func (l *MeshLayout) AddBinding(binding, stride uint32) *MeshLayout {
	l.appendBinding(binding, stride, vk.VertexInputRateVertex)
	return l
}

// AddInstancedBinding adds a per-instance buffer binding advancing once
// per instance.
func (l *MeshLayout) AddInstancedBinding(binding, stride uint32) *MeshLayout {
	return l.AddInstancedBindingDivisor(binding, stride, 1)
}

// AddInstancedBindingDivisor adds a per-instance buffer binding where
// divisor consecutive instances share the same attribute value. A divisor
// of 0 makes all instances use the first value. A divisor other than 1
// needs the vertexAttributeInstanceRateDivisor device feature, 0 also needs
// vertexAttributeInstanceRateZeroDivisor.
func (l *MeshLayout) AddInstancedBindingDivisor(binding, stride, divisor uint32) *MeshLayout {
	if !l.appendBinding(binding, stride, vk.VertexInputRateInstance) || divisor == 1 {
		return l
	}

	s := l.state
	s.divisors = append(s.divisors, VertexInputBindingDivisorDescription{
		Binding: binding,
		Divisor: divisor,
	})
	s.vertexDivisorInfo.VertexBindingDivisorCount = uint32(len(s.divisors))
	s.vertexDivisorInfo.PVertexBindingDivisors = &s.divisors[0]

	if !s.divisorLinked {
		s.vertexDivisorInfo.SType = StructureTypePipelineVertexInputDivisorStateCreateInfo
		s.vertexDivisorInfo.PNext = l.vertexInfo.PNext
		l.vertexInfo.PNext = unsafe.Pointer(&s.vertexDivisorInfo)
		s.divisorLinked = true
	}
	return l
}

// AddAttribute adds a vertex attribute at a shader location, sourced from
// binding at offset bytes. The binding is not required to exist yet, see
// Validate.
func (l *MeshLayout) AddAttribute(location, binding uint32, format VertexFormat, offset uint32) *MeshLayout {
	s := l.ensureState()
	s.attributes = append(s.attributes, vk.VertexInputAttributeDescription{
		Location: location,
		Binding:  binding,
		Format:   vk.Format(format),
		Offset:   offset,
	})
	l.vertexInfo.VertexAttributeDescriptionCount = uint32(len(s.attributes))
	l.vertexInfo.PVertexAttributeDescriptions = s.attributes
	return l
}

// SetPrimitiveRestart enables restarting strips and fans with the maximum
// index value.
func (l *MeshLayout) SetPrimitiveRestart(enable bool) *MeshLayout {
	if enable {
		l.assemblyInfo.PrimitiveRestartEnable = vk.True
	} else {
		l.assemblyInfo.PrimitiveRestartEnable = vk.False
	}
	return l
}

// Err returns the first error recorded by the Add calls.
func (l *MeshLayout) Err() error {
	if l.state == nil {
		return nil
	}
	return l.state.err
}

// Primitive returns the topology of the input assembly state.
func (l *MeshLayout) Primitive() MeshPrimitive {
	return MeshPrimitive(l.assemblyInfo.Topology)
}

// VertexInputStateCreateInfo returns the underlying vertex input state.
// If AddInstancedBindingDivisor was called with a divisor other than 1,
// its PNext chain starts with the divisor state.
func (l *MeshLayout) VertexInputStateCreateInfo() *vk.PipelineVertexInputStateCreateInfo {
	return &l.vertexInfo
}

// InputAssemblyStateCreateInfo returns the underlying input assembly state.
func (l *MeshLayout) InputAssemblyStateCreateInfo() *vk.PipelineInputAssemblyStateCreateInfo {
	return &l.assemblyInfo
}

// VertexInputDivisorState returns the divisor extension block if any
// binding with a divisor other than 1 was added.
func (l *MeshLayout) VertexInputDivisorState() (*PipelineVertexInputDivisorStateCreateInfo, bool) {
	if l.state == nil || !l.state.divisorLinked {
		return nil, false
	}
	return &l.state.vertexDivisorInfo, true
}

// Bindings returns the bindings in the order they were added.
func (l *MeshLayout) Bindings() []vk.VertexInputBindingDescription {
	b := l.vertexInfo.PVertexBindingDescriptions
	if n := int(l.vertexInfo.VertexBindingDescriptionCount); n < len(b) {
		b = b[:n]
	}
	return b
}

// Attributes returns the attributes in the order they were added.
func (l *MeshLayout) Attributes() []vk.VertexInputAttributeDescription {
	a := l.vertexInfo.PVertexAttributeDescriptions
	if n := int(l.vertexInfo.VertexAttributeDescriptionCount); n < len(a) {
		a = a[:n]
	}
	return a
}

// Divisors returns a copy of the divisor descriptions in the order the
// instanced bindings were added.
func (l *MeshLayout) Divisors() []VertexInputBindingDivisorDescription {
	if l.state == nil || len(l.state.divisors) == 0 {
		return nil
	}
	return append([]VertexInputBindingDivisorDescription(nil), l.state.divisors...)
}

// Move transfers the layout into a new value, leaving l empty. The
// divisor block keeps its address, so the PNext chain stays valid.
func (l *MeshLayout) Move() *MeshLayout {
	out := &MeshLayout{
		vertexInfo:   l.vertexInfo,
		assemblyInfo: l.assemblyInfo,
		state:        l.state,
	}
	l.Release()
	return out
}

// MoveFrom replaces the contents of l with other, leaving other empty.
func (l *MeshLayout) MoveFrom(other *MeshLayout) {
	if l == other {
		return
	}
	l.Release()
	l.vertexInfo = other.vertexInfo
	l.assemblyInfo = other.assemblyInfo
	l.state = other.state
	other.Release()
}

// Release drops all the state owned by the layout.
func (l *MeshLayout) Release() {
	l.vertexInfo = vk.PipelineVertexInputStateCreateInfo{}
	l.assemblyInfo = vk.PipelineInputAssemblyStateCreateInfo{}
	l.state = nil
}
