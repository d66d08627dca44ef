package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tui "github.com/grindlemire/hooktui"
	"github.com/grindlemire/hooktui/internal/config"
)

func runMock(t *testing.T, render tui.RenderFunc, term *tui.MockTerminal, reader *tui.MockReader, opts ...tui.AppOption) <-chan error {
	t.Helper()
	cfg = config.Default()
	base := []tui.AppOption{
		tui.WithTerminal(term),
		tui.WithEventReader(reader),
		tui.WithPollTimeout(5 * time.Millisecond),
		tui.WithoutSignalHandler(),
	}
	app, err := newApp(render, append(base, opts...)...)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- app.Run(context.Background()) }()
	return done
}

func waitDone(t *testing.T, done <-chan error) {
	t.Helper()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not exit")
	}
}

func shows(term *tui.MockTerminal, s string) func() bool {
	return func() bool { return strings.Contains(term.StringTrimmed(), s) }
}

func key(k tui.Key) tui.KeyEvent { return tui.KeyEvent{Key: k} }

func runes(s string) []tui.Event {
	var evs []tui.Event
	for _, r := range s {
		evs = append(evs, tui.KeyEvent{Key: tui.KeyRune, Rune: r})
	}
	return evs
}

func TestCounter(t *testing.T) {
	term := tui.NewMockTerminal(80, 12)
	reader := tui.NewMockReader()
	done := runMock(t, counterView, term, reader)

	require.Eventually(t, shows(term, "Hello, stranger"), time.Second, 5*time.Millisecond)

	reader.Send(runes("ada")...)
	require.Eventually(t, shows(term, "Hello, ada"), time.Second, 5*time.Millisecond)

	reader.Send(key(tui.KeyTab))
	require.Eventually(t, shows(term, "+/-: count"), time.Second, 5*time.Millisecond)

	reader.Send(runes("++-+")...)
	require.Eventually(t, shows(term, "count: 2"), time.Second, 5*time.Millisecond)

	reader.Send(key(tui.KeyEnter))
	require.Eventually(t, shows(term, "ada counted to 2"), time.Second, 5*time.Millisecond)
	require.Eventually(t, shows(term, "count: 0"), time.Second, 5*time.Millisecond)

	reader.Send(key(tui.KeyEscape))
	waitDone(t, done)
}

func TestPick(t *testing.T) {
	term := tui.NewMockTerminal(60, 12)
	reader := tui.NewMockReader()
	var chosen string
	done := runMock(t, pickView([]string{"apple", "banana", "cherry", "grape"}, &chosen), term, reader)

	require.Eventually(t, shows(term, "4/4"), time.Second, 5*time.Millisecond)

	reader.Send(runes("an")...)
	require.Eventually(t, shows(term, "1/4"), time.Second, 5*time.Millisecond)

	reader.Send(key(tui.KeyEnter))
	waitDone(t, done)
	assert.Equal(t, "banana", chosen)
}

func TestPick_EscapeChoosesNothing(t *testing.T) {
	term := tui.NewMockTerminal(60, 12)
	reader := tui.NewMockReader()
	var chosen string
	done := runMock(t, pickView([]string{"a", "b"}, &chosen), term, reader)

	require.Eventually(t, shows(term, "2/2"), time.Second, 5*time.Millisecond)
	reader.Send(key(tui.KeyEscape))
	waitDone(t, done)
	assert.Empty(t, chosen)
}

func TestChat_SubmitPrintsAndForwards(t *testing.T) {
	term := tui.NewMockTerminal(80, 12)
	reader := tui.NewMockReader()
	prompts := make(chan string, 1)
	done := runMock(t, chatView(prompts, tui.NewSignal(false)), term, reader)

	require.Eventually(t, shows(term, "╭"), time.Second, 5*time.Millisecond)

	reader.Send(runes("hello world")...)
	reader.Send(key(tui.KeyEnter))
	require.Eventually(t, shows(term, "you hello world"), time.Second, 5*time.Millisecond)

	select {
	case got := <-prompts:
		assert.Equal(t, "hello world", got)
	case <-time.After(time.Second):
		t.Fatal("prompt not forwarded")
	}

	reader.Send(runes("/quit")...)
	reader.Send(key(tui.KeyEnter))
	waitDone(t, done)
}

func TestFilterItems(t *testing.T) {
	type tc struct {
		items []string
		query string
		want  []string
	}

	tests := map[string]tc{
		"empty query keeps order": {
			items: []string{"b", "a", "c"},
			want:  []string{"b", "a", "c"},
		},
		"subsequence match": {
			items: []string{"main.go", "readme.md", "go.mod"},
			query: "gmod",
			want:  []string{"go.mod"},
		},
		"no match": {
			items: []string{"alpha", "beta"},
			query: "zz",
			want:  nil,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var got []string
			for _, m := range filterItems(tt.items, tt.query) {
				got = append(got, m.Str)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadLines(t *testing.T) {
	got, err := readLines(strings.NewReader("one\n\n  two  \nthree"))
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, got)
}

func TestSparkline(t *testing.T) {
	type tc struct {
		values []float64
		width  int
		want   string
	}

	tests := map[string]tc{
		"empty":        {width: 5, want: ""},
		"flat":         {values: []float64{3, 3, 3}, width: 5, want: "▁▁▁"},
		"ramp":         {values: []float64{0, 7}, width: 5, want: "▁█"},
		"keeps newest": {values: []float64{9, 0, 7}, width: 2, want: "▁█"},
		"full palette": {values: []float64{0, 1, 2, 3, 4, 5, 6, 7}, width: 8, want: "▁▂▃▄▅▆▇█"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, sparkline(tt.values, tt.width))
		})
	}
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", formatBytes(512))
	assert.Equal(t, "1.0 KiB", formatBytes(1024))
	assert.Equal(t, "1.5 MiB", formatBytes(3*512*1024))
}

func TestReply(t *testing.T) {
	assert.Equal(t, "world hello", reply("hello   world"))
	assert.Equal(t, "", reply(""))
}
