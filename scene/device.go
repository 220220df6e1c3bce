package scene

import "github.com/go-gl/mathgl/mgl32"

// Filter is a texture min/mag filter.
type Filter int

const (
	FilterNearest Filter = iota
	FilterLinear
)

// Wrap is a texture coordinate wrap mode.
type Wrap int

const (
	WrapRepeat Wrap = iota
	WrapClampToEdge
)

// Sampling is the fixed sampler state a texture is created with.
type Sampling struct {
	Filter Filter
	Wrap   Wrap
}

// Device is the part of the graphics API the scene drives. The OpenGL
// implementation lives in package core; tests use a recording fake.
type Device interface {
	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)

	GenBuffer() uint32
	DeleteBuffer(buf uint32)
	// ArrayBufferData uploads vertex data to buf as a static buffer.
	ArrayBufferData(buf uint32, data []float32)
	// ElementBufferData uploads 16-bit indices to buf as a static buffer.
	// The vertex array bound at the time records the binding.
	ElementBufferData(buf uint32, data []uint16)
	// VertexAttribPointer describes a float attribute of the bound vertex
	// array and enables it. Stride and offset are in bytes.
	VertexAttribPointer(index uint32, size, stride int32, offset int)

	// CreateTexture generates a 2D texture and applies the sampler state.
	CreateTexture(s Sampling) uint32
	// UploadTexture stores RGBA pixels in tex and generates its mipmaps.
	UploadTexture(tex uint32, px *Pixels)
	BindTexture(unit, tex uint32)
	DeleteTexture(tex uint32)

	CompileProgram(vertexSource, fragmentSource string) (uint32, error)
	UseProgram(program uint32)
	DeleteProgram(program uint32)
	UniformLocation(program uint32, name string) int32
	UniformMatrix4(loc int32, m mgl32.Mat4)
	UniformVec2(loc int32, v mgl32.Vec2)
	UniformVec3(loc int32, v mgl32.Vec3)
	UniformInt(loc int32, v int32)

	EnableDepthTest()
	Clear(color mgl32.Vec4)
	// DrawTriangles draws count 16-bit indices from the bound vertex array.
	DrawTriangles(count int32)
}

// Key is a keyboard key the scene polls.
type Key int

const (
	KeyEscape Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyQ
	KeyE
	KeyP
	KeyO
)

// MouseButton identifies the button of a click event.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonMiddle
	MouseButtonRight
	MouseButtonOther
)

// Window is the windowing collaborator the render loop runs against.
type Window interface {
	ShouldClose() bool
	SetShouldClose(bool)
	// KeyPressed reports whether key is currently held down.
	KeyPressed(key Key) bool
	// Time returns seconds since the window system was initialized.
	Time() float64
	SetTitle(title string)
	SwapBuffers()
	PollEvents()
}
