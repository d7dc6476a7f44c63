//go:build windows

package bootstrap

import "os"

var interruptSignals = []os.Signal{os.Interrupt}
