// Package bootstrap opens a window sized to the primary display and runs the
// poll, clear and swap loop until the window is closed.
//
// A Bootstrap moves through Uninitialized, DisplayQueried, WindowCreated,
// Running and Closing, in that order. Calls made out of order fail with
// ErrInvalidTransition.
package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/richinsley/maxwindow/display"
	"github.com/richinsley/maxwindow/events"
	"github.com/richinsley/maxwindow/graphics"
	"github.com/richinsley/maxwindow/stats"
)

// ErrInvalidTransition is returned when an operation is called in the wrong state.
var ErrInvalidTransition = errors.New("invalid bootstrap state transition")

type State int

const (
	Uninitialized State = iota
	DisplayQueried
	WindowCreated
	Running
	Closing
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case DisplayQueried:
		return "display-queried"
	case WindowCreated:
		return "window-created"
	case Running:
		return "running"
	case Closing:
		return "closing"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Config holds the knobs the bootstrap does not take from the display.
type Config struct {
	Samples       int
	StatsInterval time.Duration
}

// Bootstrap drives a single window through its lifetime.
type Bootstrap struct {
	toolkit graphics.Toolkit
	config  Config
	logger  *slog.Logger
	state   State
	stats   *stats.Reporter
}

func New(toolkit graphics.Toolkit, config Config, logger *slog.Logger) *Bootstrap {
	return &Bootstrap{
		toolkit: toolkit,
		config:  config,
		logger:  logger,
		state:   Uninitialized,
		stats:   stats.NewReporter(logger, config.StatsInterval),
	}
}

// State returns the current lifecycle state.
func (b *Bootstrap) State() State {
	return b.state
}

func (b *Bootstrap) expect(from, to State) error {
	if b.state != from {
		return fmt.Errorf("%w: %s -> %s (currently %s)", ErrInvalidTransition, from, to, b.state)
	}
	return nil
}

// QueryPrimaryDisplay reads the primary monitor's name and native video mode.
func (b *Bootstrap) QueryPrimaryDisplay() (display.Display, error) {
	if err := b.expect(Uninitialized, DisplayQueried); err != nil {
		return display.Display{}, err
	}
	d, err := b.toolkit.PrimaryDisplay()
	if err != nil {
		return display.Display{}, fmt.Errorf("failed to query primary display: %w", err)
	}
	if !d.Mode.Valid() {
		return display.Display{}, fmt.Errorf("failed to query primary display: %w: video mode %s", display.ErrNoDisplay, d.Mode)
	}
	b.logger.Info("Monitor name", "name", d.Name)
	b.logger.Info("Video mode", "mode", d.Mode.String())
	b.logger.Info("Resolved size", "width", d.Mode.Width, "height", d.Mode.Height)
	b.state = DisplayQueried
	return d, nil
}

// CreateWindow opens a decorated, resizable windowed-mode window with a
// 3.3 core profile context. Callers pass the queried native size so the
// window fills the screen without taking exclusive fullscreen.
func (b *Bootstrap) CreateWindow(width, height int, title string) (graphics.Window, error) {
	if err := b.expect(DisplayQueried, WindowCreated); err != nil {
		return nil, err
	}
	win, err := b.toolkit.CreateWindow(graphics.WindowConfig{
		Width:               width,
		Height:              height,
		Title:               title,
		ContextVersionMajor: 3,
		ContextVersionMinor: 3,
		CoreProfile:         true,
		ForwardCompatible:   true,
		Samples:             b.config.Samples,
		Resizable:           true,
		Decorated:           true,
	})
	if err != nil {
		return nil, err
	}
	w, h := win.GetSize()
	b.logger.Debug("window created", "title", title, "width", w, "height", h)
	b.state = WindowCreated
	return win, nil
}

// Run polls, clears, swaps and then dispatches the frame's events until the
// window's close flag is set or in has fired. It always leaves the
// bootstrap in Closing.
func (b *Bootstrap) Run(win graphics.Window, r graphics.Renderer, in *Interrupt) error {
	if err := b.expect(WindowCreated, Running); err != nil {
		return err
	}
	b.state = Running
	defer func() { b.state = Closing }()

	dispatch := func(e events.Event) { b.dispatch(win, e) }
	for !win.ShouldClose() {
		if in.Fired() {
			b.logger.Info("closing window after interrupt")
			break
		}
		b.toolkit.PollEvents()
		r.Clear()
		win.SwapBuffers()
		b.stats.Frame()
		win.Events().Flush(dispatch)
	}
	b.logger.Debug("loop finished", "frames", b.stats.Frames())
	return nil
}

// Frames returns how many frames Run has presented.
func (b *Bootstrap) Frames() uint64 {
	return b.stats.Frames()
}

func (b *Bootstrap) dispatch(win graphics.Window, e events.Event) {
	switch ev := e.(type) {
	case events.FramebufferResize:
		// Observed only. The viewport keeps the size the context was
		// created with.
		b.logger.Debug("framebuffer resized", "width", ev.Width, "height", ev.Height)
	case events.KeyAction:
		if events.IsEscapePress(ev) {
			win.SetShouldClose(true)
		}
	}
}
