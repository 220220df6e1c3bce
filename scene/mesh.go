package scene

import (
	"errors"
	"fmt"
)

const floatSize = 4

// Attribute locations shared by every shape and the vertex shader.
const (
	positionLocation uint32 = iota
	normalLocation
	texCoordLocation
)

// Layout is the number of floats per vertex for each attribute. A zero
// count means the attribute is not present in the vertex data.
type Layout struct {
	Position int32
	Color    int32
	UV       int32
}

var (
	// TexturedLayout is position, RGB color and texture coordinates.
	TexturedLayout = Layout{Position: 3, Color: 3, UV: 2}
	// ColoredLayout is position and RGBA color.
	ColoredLayout = Layout{Position: 3, Color: 4}
)

// Stride returns the number of floats per vertex.
func (l Layout) Stride() int32 {
	return l.Position + l.Color + l.UV
}

func (l Layout) attributes() [3]int32 {
	return [3]int32{positionLocation: l.Position, normalLocation: l.Color, texCoordLocation: l.UV}
}

// Shape is the CPU-side description of a mesh.
type Shape struct {
	Name     string
	Vertices []float32
	Indices  []uint16
	Layout   Layout
}

// VertexCount returns how many vertices the vertex data holds.
func (s Shape) VertexCount() int {
	stride := int(s.Layout.Stride())
	if stride == 0 {
		return 0
	}
	return len(s.Vertices) / stride
}

// Validate checks that the vertex data is a whole number of strides and that
// every index refers to an existing vertex.
func (s Shape) Validate() error {
	stride := int(s.Layout.Stride())
	if stride == 0 || s.Layout.Position == 0 {
		return fmt.Errorf("shape %s: layout has no position attribute", s.Name)
	}
	if len(s.Vertices) == 0 || len(s.Vertices)%stride != 0 {
		return fmt.Errorf("shape %s: %d floats is not a multiple of stride %d", s.Name, len(s.Vertices), stride)
	}
	if len(s.Indices) == 0 || len(s.Indices)%3 != 0 {
		return fmt.Errorf("shape %s: %d indices do not form triangles", s.Name, len(s.Indices))
	}
	n := s.VertexCount()
	for i, idx := range s.Indices {
		if int(idx) >= n {
			return fmt.Errorf("shape %s: index %d at %d out of range for %d vertices", s.Name, idx, i, n)
		}
	}
	return nil
}

// Mesh is a shape uploaded to the GPU.
type Mesh struct {
	Name        string
	VAO         uint32
	VBO         uint32
	EBO         uint32
	IndexCount  int32
	VertexCount int
	Layout      Layout
}

var errNilDevice = errors.New("nil device")

// BuildMesh uploads a shape as a vertex array with static vertex and index
// buffers.
func BuildMesh(dev Device, s Shape) (*Mesh, error) {
	if dev == nil {
		return nil, errNilDevice
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	m := &Mesh{
		Name:        s.Name,
		IndexCount:  int32(len(s.Indices)),
		VertexCount: s.VertexCount(),
		Layout:      s.Layout,
	}

	m.VAO = dev.GenVertexArray()
	dev.BindVertexArray(m.VAO)

	m.VBO = dev.GenBuffer()
	dev.ArrayBufferData(m.VBO, s.Vertices)

	m.EBO = dev.GenBuffer()
	dev.ElementBufferData(m.EBO, s.Indices)

	stride := s.Layout.Stride() * floatSize
	offset := 0
	for location, size := range s.Layout.attributes() {
		if size == 0 {
			continue
		}
		dev.VertexAttribPointer(uint32(location), size, stride, offset)
		offset += int(size) * floatSize
	}

	dev.BindVertexArray(0)
	return m, nil
}

// Destroy releases the vertex array and both buffers.
func (m *Mesh) Destroy(dev Device) {
	dev.DeleteVertexArray(m.VAO)
	dev.DeleteBuffer(m.VBO)
	dev.DeleteBuffer(m.EBO)
}
