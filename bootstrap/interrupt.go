package bootstrap

import (
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"
)

// InterruptPolicy decides what an interrupt signal does.
type InterruptPolicy int

const (
	// InterruptGraceful marks the interrupt and lets the run loop return at
	// the top of its next iteration, so deferred teardown runs. A second
	// signal exits with status 0 immediately.
	InterruptGraceful InterruptPolicy = iota
	// InterruptExit exits the process with status 0 from the signal
	// goroutine. Window and context are not destroyed.
	InterruptExit
)

// ParsePolicy maps an option value to a policy. Unknown values are graceful.
func ParsePolicy(s string) InterruptPolicy {
	if s == "exit" {
		return InterruptExit
	}
	return InterruptGraceful
}

// Interrupt is an installed interrupt handler.
type Interrupt struct {
	policy InterruptPolicy
	logger *slog.Logger
	exit   func(int)

	fired atomic.Bool
	sigCh chan os.Signal
	done  chan struct{}
}

// InstallInterruptHandler registers for SIGINT (and SIGTERM where it exists).
func InstallInterruptHandler(policy InterruptPolicy, logger *slog.Logger) *Interrupt {
	in := newInterrupt(policy, logger, os.Exit)
	signal.Notify(in.sigCh, interruptSignals...)
	go in.watch()
	return in
}

func newInterrupt(policy InterruptPolicy, logger *slog.Logger, exit func(int)) *Interrupt {
	return &Interrupt{
		policy: policy,
		logger: logger,
		exit:   exit,
		sigCh:  make(chan os.Signal, 1),
		done:   make(chan struct{}),
	}
}

func (in *Interrupt) watch() {
	for {
		select {
		case sig := <-in.sigCh:
			if in.policy == InterruptExit {
				in.logger.Info("Keyboard interrupt detected, exiting...", "signal", sig.String())
				in.exit(0)
				return
			}
			// A second signal means teardown is stuck; leave without it.
			if !in.fired.CompareAndSwap(false, true) {
				in.logger.Info("Second interrupt, exiting without teardown", "signal", sig.String())
				in.exit(0)
				return
			}
			in.logger.Info("Keyboard interrupt detected, exiting gracefully...", "signal", sig.String())
		case <-in.done:
			return
		}
	}
}

// Fired reports whether an interrupt has been received.
func (in *Interrupt) Fired() bool {
	if in == nil {
		return false
	}
	return in.fired.Load()
}

// Stop unregisters the handler.
func (in *Interrupt) Stop() {
	signal.Stop(in.sigCh)
	close(in.done)
}
