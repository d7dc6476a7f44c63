package glfwcontext

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"unsafe"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/maxwindow/display"
	"github.com/richinsley/maxwindow/events"
	"github.com/richinsley/maxwindow/graphics"
)

// Toolkit owns the process-wide GLFW state. Create it once with
// InitGraphics and release it with Terminate.
type Toolkit struct {
	logger        *slog.Logger
	terminateOnce sync.Once
}

// InitGraphics initializes GLFW. Must be called from the main thread.
func InitGraphics(logger *slog.Logger) (*Toolkit, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize glfw: %w", err)
	}
	logger.Debug("GLFW initialized", "version", glfw.GetVersionString())
	return &Toolkit{logger: logger}, nil
}

// Terminate shuts GLFW down. Calls after the first are no-ops.
func (t *Toolkit) Terminate() {
	t.terminateOnce.Do(func() {
		glfw.Terminate()
		t.logger.Debug("GLFW terminated")
	})
}

// PrimaryDisplay returns the name and current video mode of the primary
// monitor, or display.ErrNoDisplay when none is attached.
func (t *Toolkit) PrimaryDisplay() (display.Display, error) {
	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		return display.Display{}, display.ErrNoDisplay
	}
	mode := monitor.GetVideoMode()
	if mode == nil {
		return display.Display{}, fmt.Errorf("%w: monitor has no video mode", display.ErrNoDisplay)
	}
	return display.Display{
		Name: display.SanitizeName(monitor.GetName()),
		Mode: display.VideoMode{
			Width:       mode.Width,
			Height:      mode.Height,
			RefreshRate: mode.RefreshRate,
			RedBits:     mode.RedBits,
			GreenBits:   mode.GreenBits,
			BlueBits:    mode.BlueBits,
		},
	}, nil
}

// CreateWindow applies cfg as window hints and opens a windowed-mode window.
func (t *Toolkit) CreateWindow(cfg graphics.WindowConfig) (graphics.Window, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.ContextVersionMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.ContextVersionMinor)
	if cfg.CoreProfile {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	}
	glfw.WindowHint(glfw.OpenGLForwardCompatible, boolHint(cfg.ForwardCompatible))
	glfw.WindowHint(glfw.Samples, cfg.Samples)
	glfw.WindowHint(glfw.Resizable, boolHint(cfg.Resizable))
	glfw.WindowHint(glfw.Decorated, boolHint(cfg.Decorated))

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create glfw window: %w", err)
	}
	return newContext(win), nil
}

// PollEvents processes pending events and returns immediately.
func (t *Toolkit) PollEvents() {
	glfw.PollEvents()
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

// Context is a GLFW window and its OpenGL context.
type Context struct {
	window *glfw.Window
	queue  *events.Queue
}

func newContext(win *glfw.Window) *Context {
	c := &Context{
		window: win,
		queue:  events.NewQueue(16),
	}
	win.SetKeyCallback(c.glfwKeyCallback)
	win.SetFramebufferSizeCallback(c.glfwFramebufferSizeCallback)
	win.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		kind := "blur"
		if focused {
			kind = "focus"
		}
		c.queue.Push(events.Other{Kind: kind})
	})
	win.SetCloseCallback(func(*glfw.Window) {
		c.queue.Push(events.Other{Kind: "close"})
	})
	return c
}

// glfwKeyCallback only records the event. Escape handling happens when the
// queue is drained, after the frame has been presented.
func (c *Context) glfwKeyCallback(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	c.queue.Push(events.KeyAction{
		Key:      events.Key(key),
		Scancode: scancode,
		Action:   events.Action(action),
		Mods:     events.ModifierKey(mods),
	})
}

func (c *Context) glfwFramebufferSizeCallback(_ *glfw.Window, width, height int) {
	c.queue.Push(events.FramebufferResize{Width: width, Height: height})
}

// MakeCurrent makes the context current for the calling thread.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

// DetachCurrent makes no context current on the calling thread.
func (c *Context) DetachCurrent() {
	glfw.DetachCurrentContext()
}

// ProcAddress resolves an OpenGL entry point for the current context.
func (c *Context) ProcAddress(name string) unsafe.Pointer {
	return glfw.GetProcAddress(name)
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

func (c *Context) SetShouldClose(v bool) {
	c.window.SetShouldClose(v)
}

func (c *Context) SwapBuffers() {
	c.window.SwapBuffers()
}

func (c *Context) Events() *events.Queue {
	return c.queue
}

func (c *Context) GetSize() (int, int) {
	return c.window.GetSize()
}

// Destroy releases the window and its context.
func (c *Context) Destroy() {
	c.window.Destroy()
}
