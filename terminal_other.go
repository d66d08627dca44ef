//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package tui

import (
	"errors"
	"fmt"
)

type rawModeState struct{}

var errRawUnsupported = errors.New("raw mode is not supported on this platform")

func enableRawMode(fd int) (*rawModeState, error) {
	return nil, fmt.Errorf("fd %d: %w", fd, errRawUnsupported)
}

func disableRawMode(*rawModeState) error {
	return nil
}
