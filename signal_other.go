//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package tui

import "os"

var watchedSignals = []os.Signal{os.Interrupt}

func isResizeSignal(os.Signal) bool { return false }
