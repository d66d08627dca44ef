//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package tui

import (
	"errors"
	"os"
)

// NewEventReader is not supported on this platform.
func NewEventReader(in *os.File) (EventReader, error) {
	return nil, errors.New("event reader: unsupported platform")
}
