package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Run renders frames until the window close flag is set.
func (s *Scene) Run(win Window) {
	s.lastFrame = win.Time()
	s.fps.reset(s.lastFrame)
	for !win.ShouldClose() {
		s.Frame(win)
	}
}

// Frame runs one iteration of the loop: input, update, draw, present.
func (s *Scene) Frame(win Window) {
	now := win.Time()
	deltaTime := float32(now - s.lastFrame)
	s.lastFrame = now

	s.Update(win, deltaTime)
	s.Render()

	win.SwapBuffers()
	win.PollEvents()

	if fps, ok := s.fps.tick(now); ok {
		win.SetTitle(fmt.Sprintf("%s | FPS: %.2f", s.title, fps))
	}
}

// Update applies held keys and recomputes the model, view and projection
// matrices.
func (s *Scene) Update(win Window, deltaTime float32) {
	s.Mode = s.Input.PollKeys(win, deltaTime, s.Mode)

	rotation := mgl32.HomogRotate3D(0, mgl32.Vec3{0, -1, 0})
	translation := mgl32.Translate3D(0, 0, 0)
	s.model = translation.Mul4(rotation)

	s.view = s.Camera.ViewMatrix()
	s.projection = s.projections.Select(s.Mode, s.Camera.Zoom)
}

// Render clears the frame and draws every item of the draw list.
func (s *Scene) Render() {
	s.dev.EnableDepthTest()
	s.dev.Clear(s.clearColor)

	s.program.apply(s.dev, frameUniforms{
		model:        s.model,
		view:         s.view,
		projection:   s.projection,
		viewPosition: s.Camera.Position,
		key:          s.key,
		fill:         s.fill,
		lit:          s.lit,
	})

	for _, item := range s.draws {
		s.dev.BindTexture(0, item.Texture)
		s.dev.BindVertexArray(item.Mesh.VAO)
		s.dev.DrawTriangles(item.Mesh.IndexCount)
		s.dev.BindVertexArray(0)
	}
}

// fpsCounter averages frames over one second windows.
type fpsCounter struct {
	frames int
	since  float64
}

func (f *fpsCounter) reset(now float64) {
	f.frames = 0
	f.since = now
}

func (f *fpsCounter) tick(now float64) (float64, bool) {
	f.frames++
	elapsed := now - f.since
	if elapsed < 1.0 {
		return 0, false
	}
	fps := float64(f.frames) / elapsed
	f.reset(now)
	return fps, true
}
