// Package events holds the window events produced by toolkit callbacks and
// the per-frame queue they are collected in.
package events

import "fmt"

// Key is a keyboard key. Values match GLFW key tokens.
type Key int

const (
	KeySpace  Key = 32
	KeyEscape Key = 256
)

// Action is a key state change.
type Action int

const (
	Release Action = 0
	Press   Action = 1
	Repeat  Action = 2
)

func (a Action) String() string {
	switch a {
	case Release:
		return "release"
	case Press:
		return "press"
	case Repeat:
		return "repeat"
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// ModifierKey is a bit set of held modifier keys.
type ModifierKey int

const ModShift ModifierKey = 0x0001

// Event is one of FramebufferResize, KeyAction or Other.
type Event interface {
	isEvent()
}

// FramebufferResize reports the new framebuffer size in pixels.
type FramebufferResize struct {
	Width  int
	Height int
}

// KeyAction reports a key press, release or repeat.
type KeyAction struct {
	Key      Key
	Scancode int
	Action   Action
	Mods     ModifierKey
}

// Other is any event the loop does not act on.
type Other struct {
	Kind string
}

func (FramebufferResize) isEvent() {}
func (KeyAction) isEvent()         {}
func (Other) isEvent()             {}

// IsEscapePress reports whether e is an Escape key press.
func IsEscapePress(e Event) bool {
	k, ok := e.(KeyAction)
	return ok && k.Key == KeyEscape && k.Action == Press
}
