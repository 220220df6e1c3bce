package core

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/toxichemicals/GO/holy-candle/config"
	"github.com/toxichemicals/GO/holy-candle/scene"
	"go.uber.org/zap"
)

// Core owns the GLFW window and the OpenGL context. It implements
// scene.Window.
type Core struct {
	window *glfw.Window
	cfg    config.Window
	log    *zap.Logger
}

// NewCore creates a Core for the given window settings. Nothing is opened
// until Init.
func NewCore(cfg config.Window, log *zap.Logger) *Core {
	return &Core{cfg: cfg, log: log}
}

// Init initializes GLFW, creates the window with a 4.1 core context and loads
// the OpenGL entry points. The cursor is captured for mouse look.
func (c *Core) Init() error {
	runtime.LockOSThread() // GLFW calls must stay on the main thread until Shutdown

	if err := glfw.Init(); err != nil {
		runtime.UnlockOSThread()
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(c.cfg.Width, c.cfg.Height, c.cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		runtime.UnlockOSThread()
		return fmt.Errorf("failed to create GLFW window: %w", err)
	}
	c.window = window
	c.window.MakeContextCurrent()

	if c.cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		c.window.Destroy()
		glfw.Terminate()
		runtime.UnlockOSThread()
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	c.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))))

	width, height := c.window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(width), int32(height))
	c.window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
	})

	c.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	return nil
}

// SetInputHandler routes cursor, scroll, mouse button and focus callbacks to
// in.
func (c *Core) SetInputHandler(in *scene.Input) {
	c.window.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		in.FocusChanged(focused)
	})
	c.window.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		in.CursorMoved(xpos, ypos)
	})
	c.window.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		in.Scrolled(xoff, yoff)
	})
	c.window.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if action == glfw.Repeat {
			return
		}
		in.ButtonChanged(mouseButton(button), action == glfw.Press)
	})
}

// ShouldClose returns true if the window should close.
func (c *Core) ShouldClose() bool {
	return c.window.ShouldClose()
}

// SetShouldClose sets the window close flag.
func (c *Core) SetShouldClose(v bool) {
	c.window.SetShouldClose(v)
}

// KeyPressed reports whether key is currently held down.
func (c *Core) KeyPressed(key scene.Key) bool {
	k, ok := keys[key]
	if !ok {
		return false
	}
	return c.window.GetKey(k) == glfw.Press
}

// Time returns seconds since GLFW was initialized.
func (c *Core) Time() float64 {
	return glfw.GetTime()
}

// SetTitle replaces the window title.
func (c *Core) SetTitle(title string) {
	c.window.SetTitle(title)
}

// SwapBuffers swaps the front and back buffers to display the rendered frame.
func (c *Core) SwapBuffers() {
	c.window.SwapBuffers()
}

// PollEvents processes window events.
func (c *Core) PollEvents() {
	glfw.PollEvents()
}

// Shutdown destroys the window and terminates GLFW. GPU objects must be
// released before this while the context is still current.
func (c *Core) Shutdown() {
	if c.window != nil {
		c.window.Destroy()
		c.window = nil
	}
	glfw.Terminate()

	runtime.UnlockOSThread()
}

var keys = map[scene.Key]glfw.Key{
	scene.KeyEscape: glfw.KeyEscape,
	scene.KeyW:      glfw.KeyW,
	scene.KeyA:      glfw.KeyA,
	scene.KeyS:      glfw.KeyS,
	scene.KeyD:      glfw.KeyD,
	scene.KeyQ:      glfw.KeyQ,
	scene.KeyE:      glfw.KeyE,
	scene.KeyP:      glfw.KeyP,
	scene.KeyO:      glfw.KeyO,
}

func mouseButton(b glfw.MouseButton) scene.MouseButton {
	switch b {
	case glfw.MouseButtonLeft:
		return scene.MouseButtonLeft
	case glfw.MouseButtonMiddle:
		return scene.MouseButtonMiddle
	case glfw.MouseButtonRight:
		return scene.MouseButtonRight
	default:
		return scene.MouseButtonOther
	}
}
