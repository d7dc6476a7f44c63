//go:build !windows

package bootstrap

import (
	"os"

	"golang.org/x/sys/unix"
)

var interruptSignals = []os.Signal{os.Interrupt, unix.SIGTERM}
