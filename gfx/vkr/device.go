// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package vkr

import (
	vk "github.com/devblok/vulkan"
	"github.com/pkg/errors"
)

// Device extensions influencing mesh layout features
const (
	ExtensionVertexAttributeDivisor = "VK_EXT_vertex_attribute_divisor"
	ExtensionPortabilitySubset      = "VK_KHR_portability_subset"
)

// DefaultApplicationInfo describes the application to the driver when
// querying devices.
var DefaultApplicationInfo = &vk.ApplicationInfo{
	SType:              vk.StructureTypeApplicationInfo,
	ApiVersion:         vk.MakeVersion(1, 0, 0),
	ApplicationVersion: vk.MakeVersion(1, 0, 0),
	PApplicationName:   "Koru mesh\x00",
	PEngineName:        "Koru3D\x00",
}

// PhysicalDeviceInfo describes available physical properties of a rendering device
type PhysicalDeviceInfo struct {
	ID            int
	VendorID      int
	DriverVersion int
	Name          string
	Invalid       bool
	Extensions    []string
	Layers        []string
	Memory        vk.DeviceSize
	Features      Features
}

// HasExtension reports whether the device advertises the extension.
func (i *PhysicalDeviceInfo) HasExtension(name string) bool {
	for _, e := range i.Extensions {
		if e == name {
			return true
		}
	}
	return false
}

// Missing returns the features of required the device doesn't have.
func (i *PhysicalDeviceInfo) Missing(required Features) Features {
	return required &^ i.Features
}

// deviceFeatures derives the mesh layout features from core features and
// extension presence. Without vkGetPhysicalDeviceFeatures2 the divisor
// feature bits can't be read, the extension is taken to provide both.
func deviceFeatures(core vk.PhysicalDeviceFeatures, extensions []string) Features {
	info := PhysicalDeviceInfo{Extensions: extensions}

	var f Features
	if core.GeometryShader == vk.True {
		f |= FeatureGeometryShader
	}
	if core.TessellationShader == vk.True {
		f |= FeatureTessellationShader
	}
	if !info.HasExtension(ExtensionPortabilitySubset) {
		f |= FeatureTriangleFans
	}
	if info.HasExtension(ExtensionVertexAttributeDivisor) {
		f |= FeatureVertexAttributeInstanceRateDivisor | FeatureVertexAttributeInstanceRateZeroDivisor
	}
	return f
}

// EnumeratePhysicalDevices loads the Vulkan library, creates a temporary
// instance and reports every physical device it sees.
func EnumeratePhysicalDevices(appInfo *vk.ApplicationInfo) ([]PhysicalDeviceInfo, error) {
	if err := vk.SetDefaultGetInstanceProcAddr(); err != nil {
		return nil, errors.Wrap(err, "vk.SetDefaultGetInstanceProcAddr()")
	}
	if err := vk.Init(); err != nil {
		return nil, errors.Wrap(err, "vk.Init()")
	}

	instanceInfo := vk.InstanceCreateInfo{
		SType:            vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo: appInfo,
	}
	var instance vk.Instance
	if err := vkError("vk.CreateInstance()", vk.CreateInstance(&instanceInfo, nil, &instance)); err != nil {
		return nil, err
	}
	vk.InitInstance(instance)
	defer vk.DestroyInstance(instance, nil)

	var deviceCount uint32
	if err := vkError("vk.EnumeratePhysicalDevices()", vk.EnumeratePhysicalDevices(instance, &deviceCount, nil)); err != nil {
		return nil, err
	}
	devices := make([]vk.PhysicalDevice, deviceCount)
	if err := vkError("vk.EnumeratePhysicalDevices()", vk.EnumeratePhysicalDevices(instance, &deviceCount, devices)); err != nil {
		return nil, err
	}

	pdi := make([]PhysicalDeviceInfo, len(devices))
	for i, dev := range devices {
		pdi[i] = physicalDeviceInfo(dev)
	}
	return pdi, nil
}

func physicalDeviceInfo(dev vk.PhysicalDevice) PhysicalDeviceInfo {
	var info PhysicalDeviceInfo

	// Get extension info
	var numDeviceExtensions uint32
	if err := vk.Error(vk.EnumerateDeviceExtensionProperties(dev, "", &numDeviceExtensions, nil)); err != nil {
		info.Invalid = true
	}
	deviceExt := make([]vk.ExtensionProperties, numDeviceExtensions)
	if err := vk.Error(vk.EnumerateDeviceExtensionProperties(dev, "", &numDeviceExtensions, deviceExt)); err != nil {
		info.Invalid = true
	}
	for _, ext := range deviceExt {
		ext.Deref()
		info.Extensions = append(info.Extensions, vk.ToString(ext.ExtensionName[:]))
	}

	// Get layers info
	var numDeviceLayers uint32
	if err := vk.Error(vk.EnumerateDeviceLayerProperties(dev, &numDeviceLayers, nil)); err != nil {
		info.Invalid = true
	}
	deviceLayers := make([]vk.LayerProperties, numDeviceLayers)
	if err := vk.Error(vk.EnumerateDeviceLayerProperties(dev, &numDeviceLayers, deviceLayers)); err != nil {
		info.Invalid = true
	}
	for _, layer := range deviceLayers {
		layer.Deref()
		info.Layers = append(info.Layers, vk.ToString(layer.LayerName[:]))
	}

	// Get memory info
	var memoryProperties vk.PhysicalDeviceMemoryProperties
	vk.GetPhysicalDeviceMemoryProperties(dev, &memoryProperties)
	memoryProperties.Deref()
	for iMem := uint32(0); iMem < memoryProperties.MemoryHeapCount; iMem++ {
		memoryProperties.MemoryHeaps[iMem].Deref()
		info.Memory += memoryProperties.MemoryHeaps[iMem].Size
	}

	// Get general device info
	var properties vk.PhysicalDeviceProperties
	vk.GetPhysicalDeviceProperties(dev, &properties)
	properties.Deref()
	info.ID = int(properties.DeviceID)
	info.VendorID = int(properties.VendorID)
	info.Name = vk.ToString(properties.DeviceName[:])
	info.DriverVersion = int(properties.DriverVersion)

	var features vk.PhysicalDeviceFeatures
	vk.GetPhysicalDeviceFeatures(dev, &features)
	features.Deref()
	info.Features = deviceFeatures(features, info.Extensions)

	return info
}
