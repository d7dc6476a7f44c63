package options

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidOption is wrapped by every validation failure.
var ErrInvalidOption = errors.New("invalid option")

const (
	InterruptGraceful = "graceful"
	InterruptExit     = "exit"
)

type WindowOptions struct {
	Title      *string
	Samples    *int
	ClearColor *string // "r,g,b,a" with components in [0,1]
	Interrupt  *string // graceful or exit
	Stats      *time.Duration
	Verbose    *bool
	Quiet      *bool
	Help       *bool
}

// Register defines the flags on fs and returns the options they fill.
func Register(fs *flag.FlagSet) *WindowOptions {
	return &WindowOptions{
		Title:      fs.String("title", "Max Window", "Window title"),
		Samples:    fs.Int("samples", 4, "Multisample count for the default framebuffer"),
		ClearColor: fs.String("clear", "0.2,0.3,0.3,1.0", "Clear color as r,g,b,a"),
		Interrupt:  fs.String("interrupt", InterruptGraceful, "Interrupt policy: graceful (close the loop and tear down) or exit (exit immediately) (from MAXWINDOW_INTERRUPT env var if not set)"),
		Stats:      fs.Duration("stats", 0, "Log frame and heap stats at this interval, 0 to disable (from MAXWINDOW_STATS env var if not set)"),
		Verbose:    fs.Bool("verbose", false, "Enable debug logging (from MAXWINDOW_DEBUG env var if not set)"),
		Quiet:      fs.Bool("quiet", false, "Disable all logging"),
		Help:       fs.Bool("help", false, "Show help message"),
	}
}

// Parse registers the flags, parses args and fills unset flags from getenv.
// Options are returned with validation and environment errors so that
// -help still works.
func Parse(fs *flag.FlagSet, args []string, getenv func(string) string) (*WindowOptions, error) {
	o := Register(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if !set["interrupt"] {
		if v := getenv("MAXWINDOW_INTERRUPT"); v != "" {
			*o.Interrupt = v
		}
	}
	if !set["stats"] {
		if v := getenv("MAXWINDOW_STATS"); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				return o, fmt.Errorf("%w: MAXWINDOW_STATS: %v", ErrInvalidOption, err)
			}
			*o.Stats = d
		}
	}
	if !set["verbose"] {
		if v := getenv("MAXWINDOW_DEBUG"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return o, fmt.Errorf("%w: MAXWINDOW_DEBUG: %v", ErrInvalidOption, err)
			}
			*o.Verbose = b
		}
	}
	return o, o.Validate()
}

// Validate checks option values that flag parsing cannot.
func (o *WindowOptions) Validate() error {
	if *o.Samples < 0 {
		return fmt.Errorf("%w: samples must be >= 0, got %d", ErrInvalidOption, *o.Samples)
	}
	if _, err := o.Color(); err != nil {
		return err
	}
	switch *o.Interrupt {
	case InterruptGraceful, InterruptExit:
	default:
		return fmt.Errorf("%w: interrupt policy %q", ErrInvalidOption, *o.Interrupt)
	}
	if *o.Stats < 0 {
		return fmt.Errorf("%w: stats interval must not be negative", ErrInvalidOption)
	}
	return nil
}

// Color parses ClearColor.
func (o *WindowOptions) Color() ([4]float32, error) {
	var c [4]float32
	parts := strings.Split(*o.ClearColor, ",")
	if len(parts) != 4 {
		return c, fmt.Errorf("%w: clear color needs 4 components, got %d", ErrInvalidOption, len(parts))
	}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return c, fmt.Errorf("%w: clear color component %d: %v", ErrInvalidOption, i, err)
		}
		if v < 0 || v > 1 {
			return c, fmt.Errorf("%w: clear color component %d out of range: %g", ErrInvalidOption, i, v)
		}
		c[i] = float32(v)
	}
	return c, nil
}
