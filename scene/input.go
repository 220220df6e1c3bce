package scene

import (
	"github.com/toxichemicals/GO/holy-candle/camera"
	"go.uber.org/zap"
)

// movementKeys maps held keys to camera movement.
var movementKeys = []struct {
	key Key
	dir camera.Direction
}{
	{KeyW, camera.Forward},
	{KeyS, camera.Backward},
	{KeyA, camera.Left},
	{KeyD, camera.Right},
	{KeyQ, camera.Up},
	{KeyE, camera.Down},
}

// Input turns polled keys and pointer callbacks into camera and projection
// changes.
type Input struct {
	camera *camera.Camera
	log    *zap.Logger

	firstMouse bool
	lastX      float64
	lastY      float64
}

// NewInput starts with the cursor baseline at the center of a width x height
// window. The first cursor event replaces it.
func NewInput(cam *camera.Camera, width, height int, log *zap.Logger) *Input {
	return &Input{
		camera:     cam,
		log:        log,
		firstMouse: true,
		lastX:      float64(width) / 2,
		lastY:      float64(height) / 2,
	}
}

// PollKeys applies held keys for one frame and returns the projection mode
// after P/O. ESC sets the window close flag.
func (in *Input) PollKeys(win Window, deltaTime float32, mode ProjectionMode) ProjectionMode {
	if win.KeyPressed(KeyEscape) {
		win.SetShouldClose(true)
	}

	for _, mk := range movementKeys {
		if win.KeyPressed(mk.key) {
			in.camera.ProcessKeyboard(mk.dir, deltaTime)
		}
	}

	if win.KeyPressed(KeyP) {
		mode = Perspective
	}
	if win.KeyPressed(KeyO) {
		mode = Orthographic
	}
	return mode
}

// ResetMouse makes the next cursor event the new baseline.
func (in *Input) ResetMouse() {
	in.firstMouse = true
}

// FocusChanged re-arms the cursor baseline when the window regains focus, so
// the jump from wherever the pointer was while unfocused is not applied.
func (in *Input) FocusChanged(focused bool) {
	if focused {
		in.ResetMouse()
	}
}

// CursorMoved turns the cursor offset since the last event into yaw and
// pitch. Window y grows downward, so the vertical offset is inverted.
func (in *Input) CursorMoved(xpos, ypos float64) {
	if in.firstMouse {
		in.lastX = xpos
		in.lastY = ypos
		in.firstMouse = false
	}

	xoffset := float32(xpos - in.lastX)
	yoffset := float32(in.lastY - ypos)
	in.lastX = xpos
	in.lastY = ypos

	in.camera.ProcessMouseMovement(xoffset, yoffset)
}

// Scrolled zooms the camera with the vertical wheel offset.
func (in *Input) Scrolled(_, yoffset float64) {
	in.camera.ProcessMouseScroll(float32(yoffset))
}

// ButtonChanged logs clicks; buttons have no effect on the scene.
func (in *Input) ButtonChanged(button MouseButton, pressed bool) {
	state := "released"
	if pressed {
		state = "pressed"
	}

	switch button {
	case MouseButtonLeft:
		in.log.Info("left mouse button " + state)
	case MouseButtonMiddle:
		in.log.Info("middle mouse button " + state)
	case MouseButtonRight:
		in.log.Info("right mouse button " + state)
	default:
		in.log.Info("unhandled mouse button event")
	}
}
