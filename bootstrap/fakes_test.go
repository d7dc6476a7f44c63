package bootstrap

import (
	"unsafe"

	"github.com/richinsley/maxwindow/display"
	"github.com/richinsley/maxwindow/events"
	"github.com/richinsley/maxwindow/graphics"
)

type fakeToolkit struct {
	display    display.Display
	displayErr error
	createErr  error

	window     *fakeWindow
	lastConfig graphics.WindowConfig
	created    int

	polls int
	// script[n] is pushed onto the window queue during the nth poll.
	script map[int][]events.Event
	onPoll func(n int)
}

func (t *fakeToolkit) PrimaryDisplay() (display.Display, error) {
	return t.display, t.displayErr
}

func (t *fakeToolkit) CreateWindow(cfg graphics.WindowConfig) (graphics.Window, error) {
	if t.createErr != nil {
		return nil, t.createErr
	}
	t.lastConfig = cfg
	t.created++
	t.window = &fakeWindow{width: cfg.Width, height: cfg.Height, queue: events.NewQueue(4)}
	return t.window, nil
}

func (t *fakeToolkit) PollEvents() {
	for _, e := range t.script[t.polls] {
		t.window.queue.Push(e)
	}
	if t.onPoll != nil {
		t.onPoll(t.polls)
	}
	t.polls++
}

func (t *fakeToolkit) Terminate() {}

type fakeWindow struct {
	width, height int
	shouldClose   bool
	queue         *events.Queue
	swaps         int
	closeSets     int
	destroyed     bool
	detached      int
}

func (w *fakeWindow) MakeCurrent()                      {}
func (w *fakeWindow) DetachCurrent()                    { w.detached++ }
func (w *fakeWindow) ProcAddress(string) unsafe.Pointer { return nil }
func (w *fakeWindow) ShouldClose() bool                 { return w.shouldClose }
func (w *fakeWindow) SwapBuffers()                      { w.swaps++ }
func (w *fakeWindow) Events() *events.Queue             { return w.queue }
func (w *fakeWindow) GetSize() (int, int)               { return w.width, w.height }
func (w *fakeWindow) Destroy()                          { w.destroyed = true }
func (w *fakeWindow) SetShouldClose(v bool) {
	w.closeSets++
	w.shouldClose = v
}

type fakeRenderer struct {
	clears int
}

func (r *fakeRenderer) Clear()    { r.clears++ }
func (r *fakeRenderer) Shutdown() {}
