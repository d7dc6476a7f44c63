package graphics

import (
	"unsafe"

	"github.com/richinsley/maxwindow/display"
	"github.com/richinsley/maxwindow/events"
)

// WindowConfig carries the hints used to create a window and its context.
type WindowConfig struct {
	Width               int
	Height              int
	Title               string
	ContextVersionMajor int
	ContextVersionMinor int
	CoreProfile         bool
	ForwardCompatible   bool
	Samples             int
	Resizable           bool
	Decorated           bool
}

// Toolkit is the process-wide windowing toolkit.
type Toolkit interface {
	PrimaryDisplay() (display.Display, error)
	CreateWindow(cfg WindowConfig) (Window, error)
	// PollEvents processes pending events without waiting.
	PollEvents()
	Terminate()
}

// Window is a native window with an OpenGL context.
type Window interface {
	MakeCurrent()
	// DetachCurrent makes no context current on the calling thread.
	DetachCurrent()
	ProcAddress(name string) unsafe.Pointer
	ShouldClose() bool
	SetShouldClose(bool)
	SwapBuffers()
	// Events returns the queue that callbacks append to during PollEvents.
	Events() *events.Queue
	GetSize() (int, int)
	Destroy()
}

// Renderer draws one frame into the current context.
type Renderer interface {
	Clear()
	// Shutdown releases the context from the render thread. The window
	// itself is destroyed by its owner.
	Shutdown()
}
