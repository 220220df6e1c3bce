package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ProjectionMode selects which projection matrix the frame renders with.
type ProjectionMode int

const (
	Orthographic ProjectionMode = iota
	Perspective
)

func (m ProjectionMode) String() string {
	switch m {
	case Orthographic:
		return "orthographic"
	case Perspective:
		return "perspective"
	default:
		return fmt.Sprintf("ProjectionMode(%d)", int(m))
	}
}

// ParseProjectionMode accepts the names produced by String.
func ParseProjectionMode(s string) (ProjectionMode, error) {
	switch s {
	case "orthographic":
		return Orthographic, nil
	case "perspective":
		return Perspective, nil
	default:
		return Orthographic, fmt.Errorf("unknown projection mode %q", s)
	}
}

// Projections holds the fixed parameters of both projection matrices. The
// perspective field of view comes from the camera zoom each frame.
type Projections struct {
	Aspect      float32
	Near        float32
	Far         float32
	OrthoExtent float32
}

// Perspective returns the perspective matrix for a vertical fov in degrees.
func (p Projections) Perspective(fovDegrees float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(fovDegrees), p.Aspect, p.Near, p.Far)
}

// Orthographic returns the orthographic matrix spanning
// [-OrthoExtent, OrthoExtent] on both axes.
func (p Projections) Orthographic() mgl32.Mat4 {
	e := p.OrthoExtent
	return mgl32.Ortho(-e, e, -e, e, p.Near, p.Far)
}

// Select computes both matrices and returns the one for mode.
func (p Projections) Select(mode ProjectionMode, fovDegrees float32) mgl32.Mat4 {
	perspective := p.Perspective(fovDegrees)
	ortho := p.Orthographic()
	if mode == Perspective {
		return perspective
	}
	return ortho
}
