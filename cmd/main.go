package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"

	bootstrap "github.com/richinsley/maxwindow/bootstrap"
	glfwcontext "github.com/richinsley/maxwindow/glfwcontext"
	logging "github.com/richinsley/maxwindow/logging"
	options "github.com/richinsley/maxwindow/options"
	renderer "github.com/richinsley/maxwindow/renderer"
)

func runWindow(opts *options.WindowOptions, logger *slog.Logger, interrupt *bootstrap.Interrupt) error {
	clearColor, err := opts.Color()
	if err != nil {
		return err
	}

	toolkit, err := glfwcontext.InitGraphics(logger)
	if err != nil {
		return err
	}
	defer toolkit.Terminate()

	b := bootstrap.New(toolkit, bootstrap.Config{
		Samples:       *opts.Samples,
		StatsInterval: *opts.Stats,
	}, logger)

	d, err := b.QueryPrimaryDisplay()
	if err != nil {
		return err
	}

	// Windowed mode at the native size, not exclusive fullscreen.
	win, err := b.CreateWindow(d.Mode.Width, d.Mode.Height, *opts.Title)
	if err != nil {
		return err
	}
	defer win.Destroy()

	r, err := renderer.NewRenderer(win, clearColor, logger)
	if err != nil {
		return err
	}
	defer r.Shutdown()

	return b.Run(win, r, interrupt)
}

func init() {
	runtime.LockOSThread()
}

func main() {
	opts, err := options.Parse(flag.CommandLine, os.Args[1:], os.Getenv)
	if opts != nil && *opts.Help {
		fmt.Println("Max Window: fills the primary display with an OpenGL 3.3 window")
		flag.PrintDefaults()
		return
	}
	if err != nil {
		log.Fatalf("Invalid options: %v", err)
	}

	logger := logging.New(os.Stdout, logging.Options{Verbose: *opts.Verbose, Quiet: *opts.Quiet})

	interrupt := bootstrap.InstallInterruptHandler(bootstrap.ParsePolicy(*opts.Interrupt), logger)
	defer interrupt.Stop()

	if err := runWindow(opts, logger, interrupt); err != nil {
		log.Fatalf("Window bootstrap failed: %v", err)
	}
	logger.Info("Window closed")
}
