//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package tui

import (
	"os"

	"golang.org/x/sys/unix"
)

// watchedSignals are delivered to the run loop's signal producer.
var watchedSignals = []os.Signal{os.Interrupt, unix.SIGTERM, unix.SIGWINCH}

func isResizeSignal(s os.Signal) bool {
	return s == unix.SIGWINCH
}
