package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// AppOption is a functional option for configuring an App.
type AppOption func(*App) error

// WithFullscreen starts the app on the alternate screen instead of inline.
func WithFullscreen() AppOption {
	return func(a *App) error {
		a.fullscreen = true
		return nil
	}
}

// WithTerminal draws through t instead of an ANSITerminal on stdout.
func WithTerminal(t Terminal) AppOption {
	return func(a *App) error {
		if t == nil {
			return errors.New("terminal must not be nil")
		}
		a.term = t
		return nil
	}
}

// WithEventReader reads input from r instead of stdin.
func WithEventReader(r EventReader) AppOption {
	return func(a *App) error {
		if r == nil {
			return errors.New("event reader must not be nil")
		}
		a.reader = r
		return nil
	}
}

// WithPollTimeout sets how long the input producer waits for input before
// checking for shutdown. Default is 50ms.
func WithPollTimeout(d time.Duration) AppOption {
	return func(a *App) error {
		if d <= 0 {
			return fmt.Errorf("poll timeout must be positive, got %v", d)
		}
		a.pollTimeout = d
		return nil
	}
}

// WithTick renders every d in addition to input and explicit requests.
func WithTick(d time.Duration) AppOption {
	return func(a *App) error {
		if d <= 0 {
			return fmt.Errorf("tick interval must be positive, got %v", d)
		}
		a.tick = d
		return nil
	}
}

// WithLogger sets the logger. Default is the TUI_DEBUG file logger.
func WithLogger(l *log.Logger) AppOption {
	return func(a *App) error {
		if l == nil {
			return errors.New("logger must not be nil")
		}
		a.logger = l
		return nil
	}
}

// WithMouse enables mouse event reporting.
func WithMouse() AppOption {
	return func(a *App) error {
		a.mouse = true
		return nil
	}
}

// WithoutSignalHandler stops Run from handling SIGINT, SIGTERM and
// SIGWINCH.
func WithoutSignalHandler() AppOption {
	return func(a *App) error {
		a.handleSignals = false
		return nil
	}
}

// WithNoTrim keeps trailing blank cells on painted lines.
func WithNoTrim() AppOption {
	return func(a *App) error {
		a.noTrim = true
		return nil
	}
}

// WithExitKey sets the key that exits the app. Default is Ctrl+C.
func WithExitKey(p KeyPattern) AppOption {
	return func(a *App) error {
		a.exitKey = &p
		return nil
	}
}

// WithoutExitKey delivers every key to input callbacks, Ctrl+C included.
func WithoutExitKey() AppOption {
	return func(a *App) error {
		a.exitKey = nil
		return nil
	}
}

// WithWatcher adds background sources started by Run, e.g. Watch or
// OnTimer.
func WithWatcher(ws ...Watcher) AppOption {
	return func(a *App) error {
		for _, w := range ws {
			if w == nil {
				return errors.New("watcher must not be nil")
			}
			a.watchers = append(a.watchers, w)
		}
		return nil
	}
}
