package scene

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/toxichemicals/GO/holy-candle/config"
)

type attribCall struct {
	vao    uint32
	index  uint32
	size   int32
	stride int32
	offset int
}

type drawCall struct {
	vao     uint32
	texture uint32
	count   int32
}

// fakeDevice records what the scene asks of the GPU.
type fakeDevice struct {
	next uint32

	boundVAO     uint32
	boundTexture uint32

	vertexData map[uint32][]float32
	indexData  map[uint32][]uint16
	attribs    []attribCall
	textures   map[uint32]Sampling
	uploads    map[uint32]*Pixels

	programErr error
	program    uint32
	locations  map[int32]string
	mat4       map[string]mgl32.Mat4
	vec3       map[string]mgl32.Vec3
	vec2       map[string]mgl32.Vec2
	ints       map[string]int32

	draws      []drawCall
	clears     int
	clearColor mgl32.Vec4
	deleted    struct {
		vaos, buffers, textures, programs int
	}
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		vertexData: map[uint32][]float32{},
		indexData:  map[uint32][]uint16{},
		textures:   map[uint32]Sampling{},
		uploads:    map[uint32]*Pixels{},
		locations:  map[int32]string{},
		mat4:       map[string]mgl32.Mat4{},
		vec3:       map[string]mgl32.Vec3{},
		vec2:       map[string]mgl32.Vec2{},
		ints:       map[string]int32{},
	}
}

func (d *fakeDevice) gen() uint32 {
	d.next++
	return d.next
}

func (d *fakeDevice) GenVertexArray() uint32       { return d.gen() }
func (d *fakeDevice) BindVertexArray(vao uint32)   { d.boundVAO = vao }
func (d *fakeDevice) DeleteVertexArray(vao uint32) { d.deleted.vaos++ }
func (d *fakeDevice) GenBuffer() uint32            { return d.gen() }
func (d *fakeDevice) DeleteBuffer(buf uint32)      { d.deleted.buffers++ }

func (d *fakeDevice) ArrayBufferData(buf uint32, data []float32) {
	d.vertexData[buf] = append([]float32(nil), data...)
}

func (d *fakeDevice) ElementBufferData(buf uint32, data []uint16) {
	d.indexData[buf] = append([]uint16(nil), data...)
}

func (d *fakeDevice) VertexAttribPointer(index uint32, size, stride int32, offset int) {
	d.attribs = append(d.attribs, attribCall{vao: d.boundVAO, index: index, size: size, stride: stride, offset: offset})
}

func (d *fakeDevice) CreateTexture(s Sampling) uint32 {
	tex := d.gen()
	d.textures[tex] = s
	return tex
}

func (d *fakeDevice) UploadTexture(tex uint32, px *Pixels) { d.uploads[tex] = px }
func (d *fakeDevice) BindTexture(unit, tex uint32)         { d.boundTexture = tex }
func (d *fakeDevice) DeleteTexture(tex uint32)             { d.deleted.textures++ }

func (d *fakeDevice) CompileProgram(vertexSource, fragmentSource string) (uint32, error) {
	if d.programErr != nil {
		return 0, d.programErr
	}
	d.program = d.gen()
	return d.program, nil
}

func (d *fakeDevice) UseProgram(program uint32)    {}
func (d *fakeDevice) DeleteProgram(program uint32) { d.deleted.programs++ }

func (d *fakeDevice) UniformLocation(program uint32, name string) int32 {
	loc := int32(len(d.locations))
	d.locations[loc] = name
	return loc
}

func (d *fakeDevice) UniformMatrix4(loc int32, m mgl32.Mat4) { d.mat4[d.locations[loc]] = m }
func (d *fakeDevice) UniformVec2(loc int32, v mgl32.Vec2)    { d.vec2[d.locations[loc]] = v }
func (d *fakeDevice) UniformVec3(loc int32, v mgl32.Vec3)    { d.vec3[d.locations[loc]] = v }
func (d *fakeDevice) UniformInt(loc int32, v int32)          { d.ints[d.locations[loc]] = v }

func (d *fakeDevice) EnableDepthTest() {}

func (d *fakeDevice) Clear(color mgl32.Vec4) {
	d.clears++
	d.clearColor = color
}

func (d *fakeDevice) DrawTriangles(count int32) {
	d.draws = append(d.draws, drawCall{vao: d.boundVAO, texture: d.boundTexture, count: count})
}

// fakeWindow is a window whose keys, clock and close flag are scripted.
type fakeWindow struct {
	keys        map[Key]bool
	now         float64
	step        float64
	closeAfter  int
	frames      int
	shouldClose bool
	title       string
	swaps       int
	polls       int
}

func newFakeWindow() *fakeWindow {
	return &fakeWindow{keys: map[Key]bool{}, step: 1.0 / 60}
}

func (w *fakeWindow) ShouldClose() bool {
	return w.shouldClose || (w.closeAfter > 0 && w.frames >= w.closeAfter)
}

func (w *fakeWindow) SetShouldClose(v bool)   { w.shouldClose = v }
func (w *fakeWindow) KeyPressed(key Key) bool { return w.keys[key] }
func (w *fakeWindow) SetTitle(title string)   { w.title = title }
func (w *fakeWindow) PollEvents()             { w.polls++ }

func (w *fakeWindow) Time() float64 {
	return w.now
}

func (w *fakeWindow) SwapBuffers() {
	w.swaps++
	w.frames++
	w.now += w.step
}

var errLink = errors.New("failed to link program:\nerror: undefined symbol")

// stripeTextures points every texture at the same decodable PNG.
func stripeTextures(t *testing.T) config.Textures {
	p := writeStripes(t)
	return config.Textures{
		Table: p, Candle: p, Wick: p, UpperCandlestick: p,
		LowerCandlestick: p, Napkin: p, Knife: p, KnifeTip: p,
	}
}

// missingTextures points every texture at a file that does not exist.
func missingTextures(dir string) config.Textures {
	p := dir + "/missing.png"
	return config.Textures{
		Table: p, Candle: p, Wick: p, UpperCandlestick: p,
		LowerCandlestick: p, Napkin: p, Knife: p, KnifeTip: p,
	}
}
