package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyPattern_Matches(t *testing.T) {
	type tc struct {
		pattern KeyPattern
		event   KeyEvent
		want    bool
	}

	tests := map[string]tc{
		"key matches": {
			pattern: KeyPattern{Key: KeyEnter},
			event:   KeyEvent{Key: KeyEnter},
			want:    true,
		},
		"key with any mods": {
			pattern: KeyPattern{Key: KeyEnter},
			event:   KeyEvent{Key: KeyEnter, Mod: ModAlt},
			want:    true,
		},
		"rune requires no mods": {
			pattern: OnRune('q', nil).Pattern,
			event:   KeyEvent{Key: KeyRune, Rune: 'q', Mod: ModAlt},
			want:    false,
		},
		"rune plain": {
			pattern: OnRune('q', nil).Pattern,
			event:   KeyEvent{Key: KeyRune, Rune: 'q'},
			want:    true,
		},
		"ctrl chord": {
			pattern: OnCtrl('c', nil).Pattern,
			event:   KeyEvent{Key: KeyRune, Rune: 'c', Mod: ModCtrl},
			want:    true,
		},
		"ctrl chord wrong rune": {
			pattern: OnCtrl('c', nil).Pattern,
			event:   KeyEvent{Key: KeyRune, Rune: 'd', Mod: ModCtrl},
			want:    false,
		},
		"plain c is not ctrl+c": {
			pattern: OnCtrl('c', nil).Pattern,
			event:   KeyEvent{Key: KeyRune, Rune: 'c'},
			want:    false,
		},
		"any rune typed": {
			pattern: OnRunes(nil).Pattern,
			event:   KeyEvent{Key: KeyRune, Rune: 'x'},
			want:    true,
		},
		"any rune ignores ctrl chords": {
			pattern: OnRunes(nil).Pattern,
			event:   KeyEvent{Key: KeyRune, Rune: 'x', Mod: ModCtrl},
			want:    false,
		},
		"empty pattern": {
			pattern: KeyPattern{},
			event:   KeyEvent{Key: KeyRune, Rune: 'x'},
			want:    false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pattern.Matches(tt.event))
		})
	}
}

func TestKeyMap_RunsEveryMatch(t *testing.T) {
	var calls []string
	km := KeyMap{
		OnRunes(func(ke KeyEvent) { calls = append(calls, "runes:"+ke.Text()) }),
		OnRune('q', func(KeyEvent) { calls = append(calls, "q") }),
		OnKey(KeyEnter, func(KeyEvent) { calls = append(calls, "enter") }),
		{Pattern: KeyPattern{Key: KeyTab}},
	}

	km.handle(KeyEvent{Key: KeyRune, Rune: 'q'})
	km.handle(KeyEvent{Key: KeyEnter})
	km.handle(KeyEvent{Key: KeyTab})
	km.handle(ResizeEvent{Width: 10, Height: 5})

	assert.Equal(t, []string{"runes:q", "q", "enter"}, calls)
}

func TestInputTable_DispatchOrder(t *testing.T) {
	var order []int
	table := &inputTable{}
	table.add(func(Event) { order = append(order, 1) })
	table.add(nil)
	table.add(func(Event) { order = append(order, 2) })

	table.dispatch(KeyEvent{Key: KeyEnter})

	assert.Equal(t, []int{1, 2}, order)
	assert.Equal(t, 2, table.len())

	var empty *inputTable
	assert.NotPanics(t, func() { empty.dispatch(KeyEvent{}) })
	assert.Equal(t, 0, empty.len())
}
