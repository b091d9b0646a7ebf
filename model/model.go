package model

import (
	"unsafe"

	"github.com/devblok/korumesh/gfx/vkr"
	glm "github.com/go-gl/mathgl/mgl32"
)

// Object represents the engine supported model
type Object interface {

	// SetPosition sets the object's current position in space.
	// Has to be thread-safe
	SetPosition(glm.Mat4)

	// Position gets the object's current position in space.
	// Has to be thread-safe
	Position() glm.Mat4

	// SetRotation sets the object's rotation matrix.
	// Has to be thread-safe
	SetRotation(glm.Mat4)

	// Rotation gets the object's rotation matrix.
	// Has to be thread-safe
	Rotation() glm.Mat4

	// Vertices returns the vertices for Renderer use,
	// so it has to match the layout exactly
	Vertices() []Vertex

	// Instances returns per-instance data, empty if the object
	// is drawn once.
	Instances() []Instance
}

// Vertex is a model vertex
type Vertex struct {
	Pos    glm.Vec3
	Normal glm.Vec3
	Color  glm.Vec4
}

// Instance is per-instance data of an instanced model
type Instance struct {
	Model glm.Mat4
	Tint  glm.Vec4
}

// Uniform defines a model-view-projection object
type Uniform struct {
	Model      glm.Mat4
	View       glm.Mat4
	Projection glm.Mat4
}

// Buffer bindings used by the model layouts
const (
	VertexBinding   uint32 = 0
	InstanceBinding uint32 = 1
)

// Shader locations of the model attributes. The instance model matrix
// takes one location per column.
const (
	LocationPos uint32 = iota
	LocationNormal
	LocationColor
	LocationInstanceModel
	LocationInstanceTint = LocationInstanceModel + 4
)

// VertexLayout returns the mesh layout of non-instanced models
func VertexLayout(primitive vkr.MeshPrimitive) *vkr.MeshLayout {
	return vkr.NewMeshLayout(primitive).
		AddBinding(VertexBinding, uint32(unsafe.Sizeof(Vertex{}))).
		AddAttribute(LocationPos, VertexBinding, vkr.VertexFormatVector3, uint32(unsafe.Offsetof(Vertex{}.Pos))).
		AddAttribute(LocationNormal, VertexBinding, vkr.VertexFormatVector3, uint32(unsafe.Offsetof(Vertex{}.Normal))).
		AddAttribute(LocationColor, VertexBinding, vkr.VertexFormatVector4, uint32(unsafe.Offsetof(Vertex{}.Color)))
}

// InstancedVertexLayout returns the mesh layout of instanced models.
// Each Instance is used for divisor consecutive instances, 0 uses the
// first one for all of them.
func InstancedVertexLayout(primitive vkr.MeshPrimitive, divisor uint32) *vkr.MeshLayout {
	layout := VertexLayout(primitive).
		AddInstancedBindingDivisor(InstanceBinding, uint32(unsafe.Sizeof(Instance{})), divisor)

	column := uint32(unsafe.Sizeof(glm.Vec4{}))
	for idx := uint32(0); idx < 4; idx++ {
		layout.AddAttribute(LocationInstanceModel+idx, InstanceBinding, vkr.VertexFormatVector4,
			uint32(unsafe.Offsetof(Instance{}.Model))+idx*column)
	}
	return layout.AddAttribute(LocationInstanceTint, InstanceBinding, vkr.VertexFormatVector4, uint32(unsafe.Offsetof(Instance{}.Tint)))
}
