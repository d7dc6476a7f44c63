package display

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoDisplay is returned when the toolkit reports no primary monitor.
var ErrNoDisplay = errors.New("no primary display available")

// VideoMode is a monitor's native resolution and color configuration.
type VideoMode struct {
	Width       int
	Height      int
	RefreshRate int
	RedBits     int
	GreenBits   int
	BlueBits    int
}

// String prints the raw mode record.
func (m VideoMode) String() string {
	return fmt.Sprintf("{Width:%d Height:%d RedBits:%d GreenBits:%d BlueBits:%d RefreshRate:%d}",
		m.Width, m.Height, m.RedBits, m.GreenBits, m.BlueBits, m.RefreshRate)
}

// Valid reports whether the mode describes a usable window size.
func (m VideoMode) Valid() bool {
	return m.Width > 0 && m.Height > 0
}

// Display is a physical monitor as seen at startup.
type Display struct {
	Name string
	Mode VideoMode
}

// SanitizeName turns a toolkit-provided monitor name into owned, printable
// text. Invalid UTF-8 is replaced and anything after a NUL is dropped.
func SanitizeName(raw string) string {
	if i := strings.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}
	name := strings.TrimSpace(strings.ToValidUTF8(raw, "�"))
	if name == "" {
		return "unknown"
	}
	return name
}
