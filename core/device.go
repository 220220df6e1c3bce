package core

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/toxichemicals/GO/holy-candle/scene"
)

// Device drives the current OpenGL context. It implements scene.Device and
// must only be used on the thread that called Core.Init.
type Device struct{}

// NewDevice returns a Device for the current context.
func NewDevice() *Device {
	return &Device{}
}

var _ scene.Device = (*Device)(nil)

// GenVertexArray creates a vertex array object.
func (d *Device) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

// BindVertexArray binds vao, or unbinds with 0.
func (d *Device) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

// DeleteVertexArray deletes vao.
func (d *Device) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

// GenBuffer creates a buffer object.
func (d *Device) GenBuffer() uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return buf
}

// DeleteBuffer deletes buf.
func (d *Device) DeleteBuffer(buf uint32) {
	gl.DeleteBuffers(1, &buf)
}

// ArrayBufferData uploads float vertex data to buf as a static array buffer.
func (d *Device) ArrayBufferData(buf uint32, data []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, buf)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
}

// ElementBufferData uploads 16-bit indices to buf. The bound vertex array
// keeps the binding.
func (d *Device) ElementBufferData(buf uint32, data []uint16) {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buf)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data)*2, gl.Ptr(data), gl.STATIC_DRAW)
}

// VertexAttribPointer describes and enables a float attribute. Stride and
// offset are in bytes.
func (d *Device) VertexAttribPointer(index uint32, size, stride int32, offset int) {
	gl.VertexAttribPointer(index, size, gl.FLOAT, false, stride, gl.PtrOffset(offset))
	gl.EnableVertexAttribArray(index)
}

// CreateTexture generates a 2D texture with the given wrap and filter state.
func (d *Device) CreateTexture(s scene.Sampling) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)

	wrap := int32(gl.REPEAT)
	if s.Wrap == scene.WrapClampToEdge {
		wrap = gl.CLAMP_TO_EDGE
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)

	filter := int32(gl.NEAREST)
	if s.Filter == scene.FilterLinear {
		filter = gl.LINEAR
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

// UploadTexture stores RGBA pixels in tex and generates mipmaps.
func (d *Device) UploadTexture(tex uint32, px *scene.Pixels) {
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(px.Width),
		int32(px.Height),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(px.Data))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// BindTexture binds tex to the given texture unit.
func (d *Device) BindTexture(unit, tex uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, tex)
}

// DeleteTexture deletes tex.
func (d *Device) DeleteTexture(tex uint32) {
	gl.DeleteTextures(1, &tex)
}

// CompileProgram compiles and links a vertex and fragment shader pair.
func (d *Device) CompileProgram(vertexSource, fragmentSource string) (uint32, error) {
	return compileShader(vertexSource, fragmentSource)
}

// UseProgram makes program current.
func (d *Device) UseProgram(program uint32) {
	gl.UseProgram(program)
}

// DeleteProgram deletes program.
func (d *Device) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

// UniformLocation looks up a uniform by name.
func (d *Device) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

// UniformMatrix4 sets a mat4 uniform.
func (d *Device) UniformMatrix4(loc int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
}

// UniformVec2 sets a vec2 uniform.
func (d *Device) UniformVec2(loc int32, v mgl32.Vec2) {
	gl.Uniform2fv(loc, 1, &v[0])
}

// UniformVec3 sets a vec3 uniform.
func (d *Device) UniformVec3(loc int32, v mgl32.Vec3) {
	gl.Uniform3fv(loc, 1, &v[0])
}

// UniformInt sets an int, bool or sampler uniform.
func (d *Device) UniformInt(loc int32, v int32) {
	gl.Uniform1i(loc, v)
}

// EnableDepthTest turns on depth testing.
func (d *Device) EnableDepthTest() {
	gl.Enable(gl.DEPTH_TEST)
}

// Clear clears the color and depth buffers to color.
func (d *Device) Clear(color mgl32.Vec4) {
	gl.ClearColor(color[0], color[1], color[2], color[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawTriangles draws count 16-bit indices from the bound vertex array.
func (d *Device) DrawTriangles(count int32) {
	gl.DrawElements(gl.TRIANGLES, count, gl.UNSIGNED_SHORT, gl.PtrOffset(0))
}
