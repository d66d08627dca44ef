//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package tui

import (
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// stdinReader implements EventReader for a real terminal.
type stdinReader struct {
	fd         int
	buf        []byte // read buffer for escape sequences
	partialBuf []byte // incomplete rune or escape sequence from the previous read
	pending    []Event
}

// NewEventReader creates an EventReader for the given terminal input.
// The terminal should already be in raw mode.
func NewEventReader(in *os.File) (EventReader, error) {
	if in == nil {
		return nil, fmt.Errorf("event reader: %w", ErrNotATerminal)
	}
	return &stdinReader{
		fd:  int(in.Fd()),
		buf: make([]byte, 256),
	}, nil
}

// PollEvent reads the next event with a timeout.
func (r *stdinReader) PollEvent(timeout time.Duration) (Event, bool) {
	if ev, ok := r.popPending(); ok {
		return ev, true
	}

	ready, err := selectWithTimeout(r.fd, timeout)
	if err != nil || !ready {
		return r.flushPartial()
	}

	n, err := unix.Read(r.fd, r.buf)
	if err != nil || n == 0 {
		return nil, false
	}

	data := r.buf[:n]
	if len(r.partialBuf) > 0 {
		data = append(r.partialBuf, data...)
		r.partialBuf = nil
	}

	events, remaining := parseInputWithRemainder(data)
	if len(remaining) > 0 {
		r.partialBuf = append([]byte(nil), remaining...)
	}
	r.pending = events
	return r.popPending()
}

// flushPartial parses a held tail as-is once no more input has arrived
// for a full poll, so a lone ESC becomes KeyEscape.
func (r *stdinReader) flushPartial() (Event, bool) {
	if len(r.partialBuf) == 0 {
		return nil, false
	}
	r.pending = parseInput(r.partialBuf)
	r.partialBuf = nil
	return r.popPending()
}

func (r *stdinReader) popPending() (Event, bool) {
	if len(r.pending) == 0 {
		return nil, false
	}
	ev := r.pending[0]
	r.pending = r.pending[1:]
	return ev, true
}

// Close releases resources. The file descriptor is owned by the caller.
func (r *stdinReader) Close() error {
	r.pending = nil
	r.partialBuf = nil
	return nil
}

// selectWithTimeout performs a select() call on the given fd with timeout.
// Returns (true, nil) if the fd is ready for reading.
// Returns (false, nil) on timeout or when interrupted by a signal.
func selectWithTimeout(fd int, timeout time.Duration) (bool, error) {
	var readFds unix.FdSet
	readFds.Zero()
	readFds.Set(fd)

	var tv *unix.Timeval
	if timeout >= 0 {
		tvVal := unix.NsecToTimeval(timeout.Nanoseconds())
		tv = &tvVal
	}

	n, err := unix.Select(fd+1, &readFds, nil, nil, tv)
	if err != nil {
		// EINTR is expected when signals arrive
		if errors.Is(err, unix.EINTR) {
			return false, nil
		}
		return false, err
	}
	return n > 0, nil
}
