package renderer

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/richinsley/maxwindow/graphics"
)

// The GL function pointers are process-wide; load them once.
var glInitOnce sync.Once

// Renderer clears the window's color buffer each frame.
type Renderer struct {
	context    graphics.Window
	clearColor [4]float32
	logger     *slog.Logger
}

// NewRenderer makes ctx current, resolves the OpenGL entry points through
// the window's proc-address function and sets the clear color.
func NewRenderer(ctx graphics.Window, clearColor [4]float32, logger *slog.Logger) (*Renderer, error) {
	r := &Renderer{
		context:    ctx,
		clearColor: clearColor,
		logger:     logger,
	}

	// Make the context current BEFORE initializing OpenGL.
	r.context.MakeCurrent()

	var initErr error
	glInitOnce.Do(func() {
		initErr = gl.InitWithProcAddrFunc(ctx.ProcAddress)
	})
	if initErr != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", initErr)
	}

	logger.Info("OpenGL ready",
		"version", glString(gl.VERSION),
		"renderer", glString(gl.RENDERER))

	gl.ClearColor(clearColor[0], clearColor[1], clearColor[2], clearColor[3])
	return r, nil
}

// Clear clears the color buffer. The viewport is left as the context
// created it.
func (r *Renderer) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Shutdown detaches the context from the calling thread. The window is
// destroyed by its owner.
func (r *Renderer) Shutdown() {
	r.context.DetachCurrent()
	r.logger.Debug("renderer shut down")
}

// glString reads a driver-owned string. The pointer never leaves this
// function; callers get an owned, valid UTF-8 copy.
func glString(name uint32) string {
	p := gl.GetString(name)
	if p == nil {
		return ""
	}
	return strings.ToValidUTF8(gl.GoStr(p), "�")
}
