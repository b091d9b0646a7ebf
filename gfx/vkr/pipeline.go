// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vkr

import (
	"runtime"

	vk "github.com/devblok/vulkan"
	"github.com/pkg/errors"
)

// ShaderStage describes a shader module entering the pipeline at its
// "main" entry point.
func ShaderStage(stage vk.ShaderStageFlagBits, module vk.ShaderModule) vk.PipelineShaderStageCreateInfo {
	return vk.PipelineShaderStageCreateInfo{
		SType:  vk.StructureTypePipelineShaderStageCreateInfo,
		Stage:  stage,
		Module: module,
		PName:  "main\x00",
	}
}

// GraphicsPipelineConfig collects what's needed to create a graphics
// pipeline around a mesh layout. The remaining fixed function state uses
// the engine defaults: dynamic viewport and scissor, back face culling,
// depth testing and a single opaque colour attachment.
type GraphicsPipelineConfig struct {
	Layout         *MeshLayout
	Stages         []vk.PipelineShaderStageCreateInfo
	PipelineLayout vk.PipelineLayout
	RenderPass     vk.RenderPass

	// Device, if set, has to support RequiredFeatures of the layout.
	Device *PhysicalDeviceInfo
}

// Validate reports configuration errors that would otherwise only
// surface as an invalid pipeline.
func (c *GraphicsPipelineConfig) Validate() error {
	if c.Layout == nil {
		return errors.Wrap(ErrInvalidArgument, "vkr.GraphicsPipelineConfig: no mesh layout")
	}
	if len(c.Stages) == 0 {
		return errors.Wrap(ErrInvalidArgument, "vkr.GraphicsPipelineConfig: no shader stages")
	}
	if err := c.Layout.Validate(); err != nil {
		return errors.Wrap(err, "vkr.GraphicsPipelineConfig")
	}
	if c.Device != nil {
		if missing := c.Device.Missing(c.Layout.RequiredFeatures()); missing != 0 {
			return errors.Wrapf(ErrUnsupported, "vkr.GraphicsPipelineConfig: device %s lacks %s", c.Device.Name, missing)
		}
	}
	return nil
}

// CreateInfo validates the configuration and assembles the create info.
// The vertex input state is a fresh copy of the layout's, its PNext chain
// still points into the layout.
func (c *GraphicsPipelineConfig) CreateInfo() (vk.GraphicsPipelineCreateInfo, error) {
	if err := c.Validate(); err != nil {
		return vk.GraphicsPipelineCreateInfo{}, err
	}

	vertexInfo := c.Layout.VertexInputStateCreateInfo()
	assemblyInfo := c.Layout.InputAssemblyStateCreateInfo()

	return vk.GraphicsPipelineCreateInfo{
		SType:      vk.StructureTypeGraphicsPipelineCreateInfo,
		StageCount: uint32(len(c.Stages)),
		PStages:    c.Stages,
		PVertexInputState: &vk.PipelineVertexInputStateCreateInfo{
			SType:                           vertexInfo.SType,
			PNext:                           vertexInfo.PNext,
			Flags:                           vertexInfo.Flags,
			VertexBindingDescriptionCount:   vertexInfo.VertexBindingDescriptionCount,
			PVertexBindingDescriptions:      vertexInfo.PVertexBindingDescriptions,
			VertexAttributeDescriptionCount: vertexInfo.VertexAttributeDescriptionCount,
			PVertexAttributeDescriptions:    vertexInfo.PVertexAttributeDescriptions,
		},
		PInputAssemblyState: &vk.PipelineInputAssemblyStateCreateInfo{
			SType:                  assemblyInfo.SType,
			PNext:                  assemblyInfo.PNext,
			Flags:                  assemblyInfo.Flags,
			Topology:               assemblyInfo.Topology,
			PrimitiveRestartEnable: assemblyInfo.PrimitiveRestartEnable,
		},
		PViewportState: &vk.PipelineViewportStateCreateInfo{
			SType:         vk.StructureTypePipelineViewportStateCreateInfo,
			ViewportCount: 1,
			ScissorCount:  1,
		},
		PRasterizationState: &vk.PipelineRasterizationStateCreateInfo{
			SType:       vk.StructureTypePipelineRasterizationStateCreateInfo,
			PolygonMode: vk.PolygonModeFill,
			CullMode:    vk.CullModeFlags(vk.CullModeBackBit),
			FrontFace:   vk.FrontFaceCounterClockwise,
			LineWidth:   1.0,
		},
		PDepthStencilState: &vk.PipelineDepthStencilStateCreateInfo{
			SType:                 vk.StructureTypePipelineDepthStencilStateCreateInfo,
			DepthTestEnable:       vk.True,
			DepthWriteEnable:      vk.True,
			DepthCompareOp:        vk.CompareOpLess,
			DepthBoundsTestEnable: vk.False,
			Back: vk.StencilOpState{
				FailOp:    vk.StencilOpKeep,
				PassOp:    vk.StencilOpKeep,
				CompareOp: vk.CompareOpAlways,
			},
			StencilTestEnable: vk.False,
			Front: vk.StencilOpState{
				FailOp:    vk.StencilOpKeep,
				PassOp:    vk.StencilOpKeep,
				CompareOp: vk.CompareOpAlways,
			},
		},
		PMultisampleState: &vk.PipelineMultisampleStateCreateInfo{
			SType:                vk.StructureTypePipelineMultisampleStateCreateInfo,
			RasterizationSamples: vk.SampleCount1Bit,
		},
		PColorBlendState: &vk.PipelineColorBlendStateCreateInfo{
			SType:           vk.StructureTypePipelineColorBlendStateCreateInfo,
			AttachmentCount: 1,
			PAttachments: []vk.PipelineColorBlendAttachmentState{{
				ColorWriteMask: 0xF,
				BlendEnable:    vk.False,
			}},
		},
		PDynamicState: &vk.PipelineDynamicStateCreateInfo{
			SType:             vk.StructureTypePipelineDynamicStateCreateInfo,
			DynamicStateCount: 2,
			PDynamicStates: []vk.DynamicState{
				vk.DynamicStateScissor,
				vk.DynamicStateViewport,
			},
		},
		Layout:     c.PipelineLayout,
		RenderPass: c.RenderPass,
	}, nil
}

// Create creates the pipeline on the logical device. The divisor block of
// the layout stays pinned for the duration of the call, as the driver
// reads it through the PNext chain.
func (c *GraphicsPipelineConfig) Create(device vk.Device, cache vk.PipelineCache) (vk.Pipeline, error) {
	var pipeline vk.Pipeline
	createInfo, err := c.CreateInfo()
	if err != nil {
		return pipeline, err
	}

	var pinner runtime.Pinner
	defer pinner.Unpin()
	c.Layout.pin(&pinner)

	gpci := []vk.GraphicsPipelineCreateInfo{createInfo}
	pipelines := make([]vk.Pipeline, len(gpci))
	if err := vkError("vk.CreateGraphicsPipelines()", vk.CreateGraphicsPipelines(device, cache, uint32(len(gpci)), gpci, nil, pipelines)); err != nil {
		return pipeline, err
	}
	return pipelines[0], nil
}

// pin keeps the divisor block and its descriptions in place while
// referenced from C memory.
func (l *MeshLayout) pin(pinner *runtime.Pinner) {
	if l.state == nil || !l.state.divisorLinked {
		return
	}
	pinner.Pin(l.state)
	pinner.Pin(&l.state.divisors[0])
}
