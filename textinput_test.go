package tui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

// inputHarness renders a single TextInput outside of App.Run.
type inputHarness struct {
	app   *App
	hooks *HookContext
	opts  []TextInputOption
	input *TextInput
}

func newInputHarness(opts ...TextInputOption) *inputHarness {
	h := &inputHarness{
		app:   &App{focus: &focusState{}},
		hooks: NewHookContext(),
		opts:  opts,
	}
	h.render()
	return h
}

func (h *inputHarness) render() {
	rc := &RenderContext{app: h.app, hooks: h.hooks, inputs: &inputTable{}}
	h.app.focus.begin()
	WithHooks(h.hooks, func() *Element {
		h.input = UseTextInput(rc, h.opts...)
		return nil
	})
	h.app.focus.commit()
	h.app.inputs = rc.inputs
}

func (h *inputHarness) send(evs ...KeyEvent) {
	for _, ev := range evs {
		h.app.inputs.dispatch(ev)
		h.render()
	}
}

func typed(s string) []KeyEvent {
	var evs []KeyEvent
	for _, r := range s {
		evs = append(evs, KeyEvent{Key: KeyRune, Rune: r})
	}
	return evs
}

func focusedInput(opts ...TextInputOption) *inputHarness {
	return newInputHarness(append([]TextInputOption{
		WithInputFocus(FocusOptions{ID: "in", AutoFocus: true}),
	}, opts...)...)
}

func TestTextInput_Editing(t *testing.T) {
	type tc struct {
		keys       []KeyEvent
		wantValue  string
		wantCursor int
	}

	left := KeyEvent{Key: KeyLeft}
	tests := map[string]tc{
		"typing": {
			keys:       typed("hello"),
			wantValue:  "hello",
			wantCursor: 5,
		},
		"backspace": {
			keys:       append(typed("abc"), KeyEvent{Key: KeyBackspace}),
			wantValue:  "ab",
			wantCursor: 2,
		},
		"insert in middle": {
			keys:       append(typed("ac"), left, KeyEvent{Key: KeyRune, Rune: 'b'}),
			wantValue:  "abc",
			wantCursor: 2,
		},
		"delete forward": {
			keys:       append(typed("abc"), KeyEvent{Key: KeyHome}, KeyEvent{Key: KeyDelete}),
			wantValue:  "bc",
			wantCursor: 0,
		},
		"backspace at start is a no-op": {
			keys:       append(typed("a"), left, KeyEvent{Key: KeyBackspace}),
			wantValue:  "a",
			wantCursor: 0,
		},
		"left stops at zero": {
			keys:       append(typed("a"), left, left, left),
			wantValue:  "a",
			wantCursor: 0,
		},
		"end after home": {
			keys:       append(typed("abc"), KeyEvent{Key: KeyHome}, KeyEvent{Key: KeyEnd}),
			wantValue:  "abc",
			wantCursor: 3,
		},
		"ctrl+u clears": {
			keys:      append(typed("abc"), KeyEvent{Key: KeyRune, Rune: 'u', Mod: ModCtrl}),
			wantValue: "",
		},
		"ctrl chords are not typed": {
			keys:       []KeyEvent{{Key: KeyRune, Rune: 'x', Mod: ModCtrl}},
			wantValue:  "",
			wantCursor: 0,
		},
		"unicode": {
			keys:       typed("héllo世"),
			wantValue:  "héllo世",
			wantCursor: 6,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h := focusedInput()
			h.send(tt.keys...)
			assert.Equal(t, tt.wantValue, h.input.Value())
			assert.Equal(t, tt.wantCursor, h.input.pos())
		})
	}
}

func TestTextInput_UnfocusedIgnoresKeys(t *testing.T) {
	h := newInputHarness(WithInputFocus(FocusOptions{ID: "in"}))
	assert.False(t, h.input.Focused())
	assert.Equal(t, 0, h.app.inputs.len())

	h.send(typed("abc")...)
	assert.Equal(t, "", h.input.Value())
}

func TestTextInput_Submit(t *testing.T) {
	var submitted []string
	h := focusedInput(WithInputOnSubmit(func(s string) { submitted = append(submitted, s) }))

	h.send(typed("hi")...)
	h.send(KeyEvent{Key: KeyEnter})
	h.input.Clear()
	h.send(typed("yo")...)
	h.send(KeyEvent{Key: KeyEnter})

	assert.Equal(t, []string{"hi", "yo"}, submitted)
}

func TestTextInput_Multiline(t *testing.T) {
	ctrlJ := KeyEvent{Key: KeyRune, Rune: 'j', Mod: ModCtrl}
	h := focusedInput(WithInputMultiline(), WithInputOnSubmit(func(string) {}))

	h.send(typed("ab")...)
	h.send(ctrlJ)
	h.send(typed("cd")...)
	assert.Equal(t, "ab\ncd", h.input.Value())

	h.send(KeyEvent{Key: KeyUp})
	assert.Equal(t, 2, h.input.pos())
	h.send(KeyEvent{Key: KeyDown})
	assert.Equal(t, 5, h.input.pos())
}

func TestTextInput_EnterInsertsNewlineWithoutSubmit(t *testing.T) {
	h := focusedInput(WithInputMultiline())
	h.send(typed("a")...)
	h.send(KeyEvent{Key: KeyEnter})
	h.send(typed("b")...)
	assert.Equal(t, "a\nb", h.input.Value())
}

func TestTextInput_InitialValueAndSetValue(t *testing.T) {
	h := focusedInput(WithInputValue("seed"))
	assert.Equal(t, "seed", h.input.Value())
	assert.Equal(t, 4, h.input.pos())

	h.input.SetValue("xy")
	h.render()
	assert.Equal(t, "xy", h.input.Value())
	assert.Equal(t, 2, h.input.pos())
}

func TestTextInput_View(t *testing.T) {
	type tc struct {
		opts []TextInputOption
		keys []KeyEvent
		want []string
	}

	tests := map[string]tc{
		"placeholder when empty and unfocused": {
			opts: []TextInputOption{WithInputFocus(FocusOptions{ID: "x"}), WithInputPlaceholder("type here"), WithInputWidth(12)},
			want: []string{"type here"},
		},
		"text with cursor at end": {
			opts: []TextInputOption{WithInputFocus(FocusOptions{ID: "x", AutoFocus: true}), WithInputWidth(10)},
			keys: typed("hey"),
			want: []string{"hey "},
		},
		"bordered": {
			opts: []TextInputOption{
				WithInputFocus(FocusOptions{ID: "x"}),
				WithInputValue("ok"),
				WithInputWidth(4),
				WithInputBorder(BorderASCII),
			},
			want: []string{"+----+", "|ok  |", "+----+"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h := newInputHarness(tt.opts...)
			h.send(tt.keys...)
			got := paintAt(h.input.Element(), 40, 10).Lines()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("view mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTextInput_CursorCellIsReversed(t *testing.T) {
	h := focusedInput(WithInputWidth(10))
	h.send(typed("ab")...)
	h.send(KeyEvent{Key: KeyLeft})

	frame := paintAt(h.input.Element(), 20, 5)
	assert.True(t, frame[0][1].Style.Equal(NewStyle().Reverse()), "cursor cell style %+v", frame[0][1].Style)
	assert.True(t, frame[0][0].Style.Equal(NewStyle()))
}

func TestWrapTextRows(t *testing.T) {
	type tc struct {
		text  string
		width int
		want  []string
		start []int
	}

	tests := map[string]tc{
		"empty":        {text: "", width: 5, want: []string{""}, start: []int{0}},
		"fits":         {text: "abc", width: 5, want: []string{"abc"}, start: []int{0}},
		"soft wrap":    {text: "abcdefg", width: 3, want: []string{"abc", "def", "g"}, start: []int{0, 3, 6}},
		"hard newline": {text: "ab\ncd", width: 5, want: []string{"ab", "cd"}, start: []int{0, 3}},
		"wide runes":   {text: "世界人", width: 4, want: []string{"世界", "人"}, start: []int{0, 2}},
		"no wrap":      {text: "abcdef", width: 0, want: []string{"abcdef"}, start: []int{0}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			rows := wrapTextRows(tt.text, tt.width)
			var got []string
			var starts []int
			for _, r := range rows {
				got = append(got, string(r.runes))
				starts = append(starts, r.start)
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.start, starts)
		})
	}
}

func TestCursorRowCol_RoundTrip(t *testing.T) {
	rows := wrapTextRows("abcdefg\nxy", 3)
	for pos := 0; pos <= len("abcdefg\nxy"); pos++ {
		row, col := cursorRowCol(rows, pos)
		assert.Equal(t, pos, posFromRowCol(rows, row, col), "pos %d -> (%d,%d)", pos, row, col)
	}
}
