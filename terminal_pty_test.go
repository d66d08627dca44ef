//go:build linux || darwin

package tui

import (
	"os"
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// openPTY returns the controller and terminal ends of a new pty sized
// cols x rows. The test is skipped where ptys are unavailable.
func openPTY(t *testing.T, cols, rows uint16) (ptmx, tty *os.File) {
	t.Helper()
	m, s, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	t.Cleanup(func() {
		_ = m.Close()
		_ = s.Close()
	})
	require.NoError(t, pty.Setsize(m, &pty.Winsize{Cols: cols, Rows: rows}))
	return m, s
}

func TestANSITerminal_PTYRawModeRoundTrip(t *testing.T) {
	_, tty := openPTY(t, 100, 30)
	fd := int(tty.Fd())

	term, err := NewANSITerminal(tty, tty)
	require.NoError(t, err)

	w, h, err := term.Size()
	require.NoError(t, err)
	assert.Equal(t, 100, w)
	assert.Equal(t, 30, h)

	before, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	require.NoError(t, err)
	require.NotZero(t, before.Lflag&unix.ICANON, "pty should start in canonical mode")

	require.NoError(t, term.EnableRawMode())
	raw, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	require.NoError(t, err)
	assert.Zero(t, raw.Lflag&(unix.ICANON|unix.ECHO|unix.ISIG))
	assert.Zero(t, raw.Oflag&unix.OPOST)

	require.NoError(t, term.DisableRawMode())
	after, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	require.NoError(t, err)
	assert.Equal(t, before.Lflag, after.Lflag)
	assert.Equal(t, before.Oflag, after.Oflag)
}

func TestEventReader_PTYInput(t *testing.T) {
	m, s := openPTY(t, 80, 24)

	term, err := NewANSITerminal(s, s)
	require.NoError(t, err)
	require.NoError(t, term.EnableRawMode())
	defer term.DisableRawMode()

	reader, err := NewEventReader(s)
	require.NoError(t, err)
	defer reader.Close()

	_, err = m.Write([]byte("a\x1b[A\x03"))
	require.NoError(t, err)

	var got []Event
	deadline := time.Now().Add(2 * time.Second)
	for len(got) < 3 && time.Now().Before(deadline) {
		if ev, ok := reader.PollEvent(50 * time.Millisecond); ok {
			got = append(got, ev)
		}
	}
	assert.Equal(t, []Event{
		KeyEvent{Key: KeyRune, Rune: 'a'},
		KeyEvent{Key: KeyUp},
		KeyEvent{Key: KeyRune, Rune: 'c', Mod: ModCtrl},
	}, got)
}

func TestEventReader_PTYLoneEscape(t *testing.T) {
	m, s := openPTY(t, 80, 24)

	term, err := NewANSITerminal(s, s)
	require.NoError(t, err)
	require.NoError(t, term.EnableRawMode())
	defer term.DisableRawMode()

	reader, err := NewEventReader(s)
	require.NoError(t, err)
	defer reader.Close()

	_, err = m.Write([]byte("\x1b"))
	require.NoError(t, err)

	var got []Event
	deadline := time.Now().Add(2 * time.Second)
	for len(got) < 1 && time.Now().Before(deadline) {
		if ev, ok := reader.PollEvent(20 * time.Millisecond); ok {
			got = append(got, ev)
		}
	}
	assert.Equal(t, []Event{KeyEvent{Key: KeyEscape}}, got)

	_, ok := reader.PollEvent(20 * time.Millisecond)
	assert.False(t, ok)
}
