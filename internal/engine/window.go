package engine

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"GopherCraft/internal/config"
	"GopherCraft/internal/logger"
	"GopherCraft/internal/renderer"
)

// Window is a GLFW window with a current GL 4.1 core context. Open, Loop and
// Close must run on the main OS thread; wrap them in mainthread.Call.
type Window struct {
	win      *glfw.Window
	cam      *renderer.Camera
	onResize func(width, height int32)
	captured bool
}

func Open(cfg config.Window) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("engine: glfw init: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(int(cfg.Width), int(cfg.Height), cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("engine: create window: %w", err)
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	applyPlatformStyle(win)

	w := &Window{win: win}
	win.SetCursorPosCallback(w.cursorMoved)
	win.SetMouseButtonCallback(w.mouseButton)
	win.SetKeyCallback(w.keyPressed)
	win.SetFramebufferSizeCallback(w.framebufferResized)

	logger.Log.Info("Window opened",
		zap.String("title", cfg.Title),
		zap.Int32("width", cfg.Width),
		zap.Int32("height", cfg.Height),
		zap.Bool("vsync", cfg.VSync))
	return w, nil
}

// FramebufferSize is the drawable size in pixels, which differs from the
// window size on high DPI displays.
func (w *Window) FramebufferSize() (int32, int32) {
	fw, fh := w.win.GetFramebufferSize()
	return int32(fw), int32(fh)
}

// OnResize registers a callback for framebuffer size changes.
func (w *Window) OnResize(fn func(width, height int32)) {
	w.onResize = fn
}

// SetTitle replaces the window caption.
func (w *Window) SetTitle(title string) {
	w.win.SetTitle(title)
}

// Loop drives cam from the keyboard and mouse and calls frame once per
// displayed frame until the window is closed.
func (w *Window) Loop(cam *renderer.Camera, frame func(dt float32)) {
	w.cam = cam
	last := glfw.GetTime()
	for !w.win.ShouldClose() {
		now := glfw.GetTime()
		dt := float32(now - last)
		last = now

		cam.ProcessMovement(w.movement(), dt)
		frame(dt)

		w.win.SwapBuffers()
		glfw.PollEvents()
	}
}

func (w *Window) Close() {
	w.win.Destroy()
	glfw.Terminate()
	logger.Log.Info("Window closed")
}

func (w *Window) movement() renderer.Movement {
	held := func(k glfw.Key) bool { return w.win.GetKey(k) == glfw.Press }
	return renderer.Movement{
		Forward:  held(glfw.KeyW),
		Backward: held(glfw.KeyS),
		Left:     held(glfw.KeyA),
		Right:    held(glfw.KeyD),
		Up:       held(glfw.KeySpace),
		Down:     held(glfw.KeyLeftShift),
		Sprint:   held(glfw.KeyLeftControl),
	}
}

func (w *Window) cursorMoved(_ *glfw.Window, x, y float64) {
	if w.captured && w.cam != nil {
		w.cam.ProcessMousePosition(float32(x), float32(y))
	}
}

// A left click grabs the cursor for mouse look; Escape releases it, and a
// second Escape closes the window.
func (w *Window) mouseButton(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	if button == glfw.MouseButtonLeft && action == glfw.Press && !w.captured {
		w.setCaptured(true)
	}
}

func (w *Window) keyPressed(win *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if key != glfw.KeyEscape || action != glfw.Press {
		return
	}
	if w.captured {
		w.setCaptured(false)
		return
	}
	win.SetShouldClose(true)
}

func (w *Window) setCaptured(captured bool) {
	w.captured = captured
	if captured {
		w.win.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		w.win.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
	if w.cam != nil {
		w.cam.ResetMouse()
	}
}

func (w *Window) framebufferResized(_ *glfw.Window, width, height int) {
	// Minimised windows report zero.
	if width == 0 || height == 0 {
		return
	}
	if w.cam != nil {
		w.cam.SetAspectRatio(float32(width) / float32(height))
	}
	if w.onResize != nil {
		w.onResize(int32(width), int32(height))
	}
}
