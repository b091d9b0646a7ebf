package model

import (
	"sync"

	"github.com/devblok/korumesh/gfx/vkr"
	glm "github.com/go-gl/mathgl/mgl32"
)

// Mesh is an in-memory model with optional instances
type Mesh struct {
	mutex    sync.RWMutex
	position glm.Mat4
	rotation glm.Mat4

	primitive vkr.MeshPrimitive
	vertices  []Vertex
	instances []Instance
}

var _ Object = (*Mesh)(nil)

// NewMesh creates a mesh at the origin, not rotated
func NewMesh(primitive vkr.MeshPrimitive, vertices []Vertex) *Mesh {
	return &Mesh{
		position:  glm.Ident4(),
		rotation:  glm.Ident4(),
		primitive: primitive,
		vertices:  vertices,
	}
}

// SetPosition implements interface
func (m *Mesh) SetPosition(pos glm.Mat4) {
	m.mutex.Lock()
	m.position = pos
	m.mutex.Unlock()
}

// Position implements interface
func (m *Mesh) Position() glm.Mat4 {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.position
}

// SetRotation implements interface
func (m *Mesh) SetRotation(rot glm.Mat4) {
	m.mutex.Lock()
	m.rotation = rot
	m.mutex.Unlock()
}

// Rotation implements interface
func (m *Mesh) Rotation() glm.Mat4 {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.rotation
}

// Vertices implements interface
func (m *Mesh) Vertices() []Vertex {
	return m.vertices
}

// AddInstance appends per-instance data
func (m *Mesh) AddInstance(instance Instance) {
	m.mutex.Lock()
	m.instances = append(m.instances, instance)
	m.mutex.Unlock()
}

// Instances implements interface
func (m *Mesh) Instances() []Instance {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return append([]Instance(nil), m.instances...)
}

// Uniform returns the model part of the uniform, view and projection
// are left to the caller.
func (m *Mesh) Uniform() Uniform {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return Uniform{Model: m.position.Mul4(m.rotation)}
}

// Layout returns the mesh layout matching Vertices and Instances. The
// divisor only matters for instanced meshes.
func (m *Mesh) Layout(divisor uint32) *vkr.MeshLayout {
	m.mutex.RLock()
	instanced := len(m.instances) > 0
	m.mutex.RUnlock()

	if instanced {
		return InstancedVertexLayout(m.primitive, divisor)
	}
	return VertexLayout(m.primitive)
}
