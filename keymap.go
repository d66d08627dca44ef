package tui

// KeyMap is a list of key bindings registered together with
// RenderContext.UseKeys.
type KeyMap []KeyBinding

// KeyBinding associates a key pattern with a handler.
type KeyBinding struct {
	Pattern KeyPattern
	Handler func(KeyEvent)
}

// KeyPattern identifies which key events match a binding.
type KeyPattern struct {
	Key           Key      // Specific key (KeyEscape, KeyEnter, etc.), or 0
	Rune          rune     // Specific rune, or 0
	AnyRune       bool     // Match any typed character (no Ctrl or Alt)
	Mod           Modifier // Required modifiers (when non-zero, event must have exactly these mods)
	RequireNoMods bool     // When true, event must have no modifiers (Mod field is ignored)
}

// OnKey creates a binding for a specific key.
func OnKey(key Key, handler func(KeyEvent)) KeyBinding {
	return KeyBinding{Pattern: KeyPattern{Key: key}, Handler: handler}
}

// OnRune creates a binding for a specific typed character.
func OnRune(r rune, handler func(KeyEvent)) KeyBinding {
	return KeyBinding{Pattern: KeyPattern{Rune: r, RequireNoMods: true}, Handler: handler}
}

// OnCtrl creates a binding for Ctrl+r, e.g. OnCtrl('c', ...).
func OnCtrl(r rune, handler func(KeyEvent)) KeyBinding {
	return KeyBinding{Pattern: KeyPattern{Rune: r, Mod: ModCtrl}, Handler: handler}
}

// OnRunes creates a binding for all typed characters.
func OnRunes(handler func(KeyEvent)) KeyBinding {
	return KeyBinding{Pattern: KeyPattern{AnyRune: true}, Handler: handler}
}

// Matches reports whether ke satisfies the pattern.
func (p KeyPattern) Matches(ke KeyEvent) bool {
	if p.RequireNoMods && ke.Mod != ModNone {
		return false
	}
	if p.Mod != ModNone && ke.Mod != p.Mod {
		return false
	}

	switch {
	case p.AnyRune:
		return ke.Text() != ""
	case p.Rune != 0:
		return ke.Key == KeyRune && ke.Rune == p.Rune
	case p.Key != KeyNone:
		return ke.Key == p.Key
	}
	return false
}

// handle runs every matching binding in order. Non-key events are ignored.
func (km KeyMap) handle(ev Event) {
	ke, ok := ev.(KeyEvent)
	if !ok {
		return
	}
	for _, b := range km {
		if b.Handler != nil && b.Pattern.Matches(ke) {
			b.Handler(ke)
		}
	}
}
