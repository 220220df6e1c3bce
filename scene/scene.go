package scene

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/toxichemicals/GO/holy-candle/camera"
	"github.com/toxichemicals/GO/holy-candle/config"
	"go.uber.org/zap"
)

// DrawItem pairs a mesh with the texture bound while drawing it.
type DrawItem struct {
	Name    string
	Mesh    *Mesh
	Texture uint32
}

// Scene owns every GPU resource of the candle scene and the state the render
// loop mutates: camera, input, projection mode and the per-frame matrices.
type Scene struct {
	dev Device
	log *zap.Logger

	Camera *camera.Camera
	Input  *Input
	Mode   ProjectionMode

	program     *Program
	draws       []DrawItem
	projections Projections
	key, fill   Light
	clearColor  mgl32.Vec4
	lit         bool

	model      mgl32.Mat4
	view       mgl32.Mat4
	projection mgl32.Mat4

	title     string
	lastFrame float64
	fps       fpsCounter
}

// sceneShapes lists the shapes in draw order with their texture paths.
func sceneShapes(t config.Textures) []struct {
	shape   Shape
	texture string
} {
	return []struct {
		shape   Shape
		texture string
	}{
		{TableShape(), t.Table},
		{CandleShape(), t.Candle},
		{WickShape(), t.Wick},
		{UpperCandlestickShape(), t.UpperCandlestick},
		{LowerCandlestickShape(), t.LowerCandlestick},
		{NapkinShape(), t.Napkin},
		{KnifeShape(), t.Knife},
		{KnifeTipShape(), t.KnifeTip},
	}
}

// New builds the meshes, the shader program and the textures of the scene.
// Missing textures are logged and do not fail; a shader that does not compile
// or link does.
func New(dev Device, cfg *config.Config, log *zap.Logger) (*Scene, error) {
	if dev == nil {
		return nil, errNilDevice
	}
	if cfg == nil {
		return nil, errors.New("nil config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	mode, err := ParseProjectionMode(cfg.Projection.Mode)
	if err != nil {
		return nil, err
	}

	cam := camera.New(mgl32.Vec3(cfg.Camera.Position))
	cam.MovementSpeed = cfg.Camera.Speed
	cam.MouseSensitivity = cfg.Camera.Sensitivity

	s := &Scene{
		dev:    dev,
		log:    log,
		Camera: cam,
		Input:  NewInput(cam, cfg.Window.Width, cfg.Window.Height, log),
		Mode:   mode,
		projections: Projections{
			Aspect:      float32(cfg.Window.Width) / float32(cfg.Window.Height),
			Near:        cfg.Projection.Near,
			Far:         cfg.Projection.Far,
			OrthoExtent: cfg.Projection.OrthoExtent,
		},
		key:        Light{Position: cfg.Lights[0].Position, Color: cfg.Lights[0].Color},
		fill:       Light{Position: cfg.Lights[1].Position, Color: cfg.Lights[1].Color},
		clearColor: cfg.Window.ClearColor,
		lit:        cfg.Shading.Lit,
		model:      mgl32.Ident4(),
		view:       cam.ViewMatrix(),
		title:      cfg.Window.Title,
	}
	s.projection = s.projections.Select(s.Mode, cam.Zoom)

	shapes := sceneShapes(cfg.Textures)
	for _, entry := range shapes {
		mesh, err := BuildMesh(dev, entry.shape)
		if err != nil {
			s.Release()
			return nil, fmt.Errorf("failed to build mesh: %w", err)
		}
		s.draws = append(s.draws, DrawItem{Name: entry.shape.Name, Mesh: mesh})
	}

	program, err := NewProgram(dev)
	if err != nil {
		s.Release()
		return nil, err
	}
	s.program = program

	for i, entry := range shapes {
		s.draws[i].Texture = LoadTexture(dev, entry.texture, log)
	}

	log.Info("scene built",
		zap.Int("meshes", len(s.draws)),
		zap.Stringer("projection", s.Mode))
	return s, nil
}

// DrawList returns the draw items in the order they are drawn.
func (s *Scene) DrawList() []DrawItem {
	return s.draws
}

// Projection returns the projection matrix of the last update.
func (s *Scene) Projection() mgl32.Mat4 {
	return s.projection
}

// View returns the view matrix of the last update.
func (s *Scene) View() mgl32.Mat4 {
	return s.view
}

// Release deletes the program, the meshes and the textures. It is safe to
// call on a partially built scene.
func (s *Scene) Release() {
	if s.program != nil {
		s.program.Destroy(s.dev)
		s.program = nil
	}
	for _, item := range s.draws {
		item.Mesh.Destroy(s.dev)
		if item.Texture != 0 {
			s.dev.DeleteTexture(item.Texture)
		}
	}
	s.draws = nil
}
