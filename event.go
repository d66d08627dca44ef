package tui

import "fmt"

// Event is the base interface for all terminal events.
// Use type switch to handle specific event types.
type Event interface {
	// isEvent is a marker method to prevent external implementations.
	isEvent()
}

// KeyEvent represents a keyboard input event.
//
// Ctrl+letter chords are reported as KeyRune with a lowercase Rune and
// ModCtrl set, so Ctrl+C is KeyEvent{Key: KeyRune, Rune: 'c', Mod: ModCtrl}.
type KeyEvent struct {
	// Key is the key pressed. For printable characters, this is KeyRune.
	Key Key

	// Rune is the character for KeyRune events. Zero for special keys.
	Rune rune

	// Mod contains modifier flags (Ctrl, Alt, Shift).
	Mod Modifier
}

func (KeyEvent) isEvent() {}

// Text returns the typed text: the rune of a KeyRune event without Ctrl or
// Alt held, or "" for everything else.
func (e KeyEvent) Text() string {
	if e.Key != KeyRune || e.Mod.Has(ModCtrl) || e.Mod.Has(ModAlt) {
		return ""
	}
	return string(e.Rune)
}

// Ctrl reports whether Ctrl was held.
func (e KeyEvent) Ctrl() bool { return e.Mod.Has(ModCtrl) }

// Alt reports whether Alt was held.
func (e KeyEvent) Alt() bool { return e.Mod.Has(ModAlt) }

// Shift reports whether Shift was held.
func (e KeyEvent) Shift() bool { return e.Mod.Has(ModShift) }

// Is checks if the event matches a specific key with optional modifiers.
// Example: event.Is(KeyEnter) or event.Is(KeyTab, ModShift)
func (e KeyEvent) Is(key Key, mods ...Modifier) bool {
	if e.Key != key {
		return false
	}
	if len(mods) == 0 {
		return true
	}
	var combined Modifier
	for _, m := range mods {
		combined |= m
	}
	return e.Mod == combined
}

// IsRune checks for a KeyRune event carrying r with exactly the given
// modifiers. Example: event.IsRune('c', ModCtrl)
func (e KeyEvent) IsRune(r rune, mods ...Modifier) bool {
	return e.Rune == r && e.Is(KeyRune, mods...)
}

// String returns a readable form such as "Ctrl+c" or "Shift+Tab".
func (e KeyEvent) String() string {
	name := e.Key.String()
	if e.Key == KeyRune {
		name = string(e.Rune)
	}
	if e.Mod == ModNone {
		return name
	}
	return e.Mod.String() + "+" + name
}

// ResizeEvent is emitted when the terminal is resized.
type ResizeEvent struct {
	Width  int
	Height int
}

func (ResizeEvent) isEvent() {}

// MouseButton represents which mouse button was involved in an event.
type MouseButton int

const (
	// MouseNone indicates no button (motion and scroll events).
	MouseNone MouseButton = iota
	// MouseLeft is the left (primary) mouse button.
	MouseLeft
	// MouseMiddle is the middle mouse button.
	MouseMiddle
	// MouseRight is the right (secondary) mouse button.
	MouseRight
)

// MouseAction represents the type of mouse action.
type MouseAction int

const (
	// MousePress indicates a button was pressed.
	MousePress MouseAction = iota
	// MouseRelease indicates a button was released.
	MouseRelease
	// MouseDrag indicates motion while a button is held.
	MouseDrag
	// MouseMove indicates motion with no button held.
	MouseMove
	MouseScrollUp
	MouseScrollDown
	MouseScrollLeft
	MouseScrollRight
)

var mouseActionNames = [...]string{
	MousePress:       "press",
	MouseRelease:     "release",
	MouseDrag:        "drag",
	MouseMove:        "move",
	MouseScrollUp:    "scroll-up",
	MouseScrollDown:  "scroll-down",
	MouseScrollLeft:  "scroll-left",
	MouseScrollRight: "scroll-right",
}

// String returns the action name.
func (a MouseAction) String() string {
	if a >= 0 && int(a) < len(mouseActionNames) {
		return mouseActionNames[a]
	}
	return "unknown"
}

// IsScroll reports whether the action is a wheel scroll in any direction.
func (a MouseAction) IsScroll() bool {
	return a >= MouseScrollUp && a <= MouseScrollRight
}

// MouseEvent represents a mouse input event.
type MouseEvent struct {
	// X is the column position (0-indexed).
	X int
	// Y is the row position (0-indexed).
	Y int
	// Button is which mouse button was involved.
	Button MouseButton
	// Action is the type of mouse action.
	Action MouseAction
	// Mod contains modifier flags (Ctrl, Alt, Shift).
	Mod Modifier
}

func (MouseEvent) isEvent() {}

// String returns a readable form such as "press(3,4)".
func (e MouseEvent) String() string {
	return fmt.Sprintf("%s(%d,%d)", e.Action, e.X, e.Y)
}
