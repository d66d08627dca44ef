package tui

import (
	"bytes"
	"unicode/utf8"
)

// parseInput parses buffered bytes into events.
// Handles:
// - Printable characters (including multi-byte UTF-8) -> KeyRune
// - Control characters (0x00-0x1F) -> Enter/Tab/Backspace/Escape or Ctrl+rune
// - CSI sequences (\x1b[...) -> arrows, navigation and function keys with modifiers
// - SS3 sequences (\x1bO...) -> F1-F4 and application-mode arrows
// - SGR mouse sequences (\x1b[<...M / m)
// - Alt+key: \x1b + printable -> KeyRune with ModAlt
func parseInput(data []byte) []Event {
	var events []Event
	i := 0

	for i < len(data) {
		b := data[i]

		if b == 0x1b {
			if i+1 >= len(data) {
				// Lone escape at end - treat as escape key
				events = append(events, KeyEvent{Key: KeyEscape})
				i++
				continue
			}

			next := data[i+1]
			switch next {
			case '[':
				if i+2 < len(data) && data[i+2] == '<' {
					mouseEvent, consumed := parseMouseSGR(data[i:])
					if consumed > 0 {
						events = append(events, mouseEvent)
						i += consumed
						continue
					}
				}
				key, mod, consumed := parseCSISequence(data[i:])
				if consumed > 0 {
					if key != KeyNone {
						events = append(events, KeyEvent{Key: key, Mod: mod})
					}
					i += consumed
					continue
				}
				events = append(events, KeyEvent{Key: KeyEscape})
				i++
				continue

			case 'O':
				if i+2 < len(data) {
					key := parseSS3(data[i+2])
					if key != KeyNone {
						events = append(events, KeyEvent{Key: key})
						i += 3
						continue
					}
				}
				events = append(events, KeyEvent{Key: KeyEscape})
				i++
				continue

			case 0x1b:
				events = append(events, KeyEvent{Key: KeyEscape})
				i++
				continue

			default:
				// Alt+control character, e.g. Alt+Enter or Alt+Ctrl+a
				if next < 0x20 || next == 0x7f {
					ev := controlToKey(next)
					ev.Mod |= ModAlt
					events = append(events, ev)
					i += 2
					continue
				}
				r, size := utf8.DecodeRune(data[i+1:])
				if r != utf8.RuneError || size > 1 {
					events = append(events, KeyEvent{Key: KeyRune, Rune: r, Mod: ModAlt})
					i += 1 + size
					continue
				}
				events = append(events, KeyEvent{Key: KeyEscape})
				i++
				continue
			}
		}

		if b < 0x20 || b == 0x7f {
			events = append(events, controlToKey(b))
			i++
			continue
		}

		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			// Invalid UTF-8, skip byte
			i++
			continue
		}
		events = append(events, KeyEvent{Key: KeyRune, Rune: r})
		i += size
	}

	return events
}

// controlToKey converts a control byte (0x00-0x1F or 0x7F) to a KeyEvent.
// Bytes without a dedicated key become the Ctrl chord of the letter or
// symbol they encode.
func controlToKey(b byte) KeyEvent {
	switch b {
	case 0x00: // Ctrl+Space or Ctrl+@
		return KeyEvent{Key: KeyRune, Rune: ' ', Mod: ModCtrl}
	case 0x08, 0x7f: // Ctrl+H / DEL are backspace on most terminals
		return KeyEvent{Key: KeyBackspace}
	case 0x09:
		return KeyEvent{Key: KeyTab}
	case 0x0d:
		return KeyEvent{Key: KeyEnter}
	case 0x1b:
		return KeyEvent{Key: KeyEscape}
	}
	if b >= 0x01 && b <= 0x1a {
		return KeyEvent{Key: KeyRune, Rune: rune('a' + b - 1), Mod: ModCtrl}
	}
	// 0x1c-0x1f: Ctrl+\ Ctrl+] Ctrl+^ Ctrl+_
	return KeyEvent{Key: KeyRune, Rune: rune(b + 0x40), Mod: ModCtrl}
}

// parseCSISequence parses a CSI escape sequence starting at data[0].
// Returns the key, modifier, and number of bytes consumed.
// Returns (KeyNone, ModNone, 0) if parsing fails.
func parseCSISequence(data []byte) (Key, Modifier, int) {
	if len(data) < 3 || data[0] != 0x1b || data[1] != '[' {
		return KeyNone, ModNone, 0
	}

	var params []int
	currentParam := 0
	hasParam := false
	i := 2

	for i < len(data) {
		b := data[i]

		if b >= '0' && b <= '9' {
			currentParam = currentParam*10 + int(b-'0')
			hasParam = true
			i++
			continue
		}

		if b == ';' {
			params = append(params, currentParam)
			currentParam = 0
			hasParam = false
			i++
			continue
		}

		// Final byte (determines the key)
		if b >= 0x40 && b <= 0x7e {
			if hasParam {
				params = append(params, currentParam)
			}
			key, mod := parseCSI(params, b)
			return key, mod, i + 1
		}

		return KeyNone, ModNone, 0
	}

	// Incomplete sequence
	return KeyNone, ModNone, 0
}

var csiFinalKeys = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
	'P': KeyF1,
	'Q': KeyF2,
	'R': KeyF3,
	'S': KeyF4,
}

var csiTildeKeys = map[int]Key{
	1:  KeyHome,
	2:  KeyInsert,
	3:  KeyDelete,
	4:  KeyEnd,
	5:  KeyPageUp,
	6:  KeyPageDown,
	7:  KeyHome,
	8:  KeyEnd,
	11: KeyF1,
	12: KeyF2,
	13: KeyF3,
	14: KeyF4,
	15: KeyF5,
	17: KeyF6,
	18: KeyF7,
	19: KeyF8,
	20: KeyF9,
	21: KeyF10,
	23: KeyF11,
	24: KeyF12,
}

// parseCSI maps a complete CSI sequence to a key. xterm encodes modifiers
// in the second parameter (CSI 1;mod X).
func parseCSI(params []int, final byte) (Key, Modifier) {
	mod := ModNone
	if len(params) >= 2 {
		mod = decodeModifier(params[1])
	}

	switch final {
	case '~':
		if len(params) == 0 {
			return KeyNone, ModNone
		}
		if key, ok := csiTildeKeys[params[0]]; ok {
			return key, mod
		}
		return KeyNone, ModNone
	case 'Z':
		// Backtab (Shift+Tab)
		return KeyTab, ModShift
	}
	if key, ok := csiFinalKeys[final]; ok {
		return key, mod
	}
	return KeyNone, ModNone
}

// parseSS3 parses an SS3 function key sequence.
func parseSS3(b byte) Key {
	if b == 'Z' {
		return KeyNone
	}
	return csiFinalKeys[b]
}

// decodeModifier decodes the xterm modifier parameter.
// The parameter is encoded as: 1 + (shift ? 1 : 0) + (alt ? 2 : 0) + (ctrl ? 4 : 0)
func decodeModifier(param int) Modifier {
	if param <= 1 {
		return ModNone
	}

	flags := param - 1
	var mod Modifier
	if flags&1 != 0 {
		mod |= ModShift
	}
	if flags&2 != 0 {
		mod |= ModAlt
	}
	if flags&4 != 0 {
		mod |= ModCtrl
	}
	return mod
}

// parseMouseSGR parses an SGR-1006 mouse sequence.
// Format: ESC [ < button ; x ; y M (press) or ESC [ < button ; x ; y m (release)
// The button field encodes: button number + modifier bits
//
//	bits 0-1: button (0=left, 1=middle, 2=right, 3=none)
//	bit 2: shift
//	bit 3: meta/alt
//	bit 4: ctrl
//	bit 5: motion
//	bit 6: wheel (low bits 0=up, 1=down, 2=left, 3=right)
//
// Returns (MouseEvent, bytes consumed). Returns (MouseEvent{}, 0) on failure.
func parseMouseSGR(data []byte) (MouseEvent, int) {
	if len(data) < 9 || data[0] != 0x1b || data[1] != '[' || data[2] != '<' {
		return MouseEvent{}, 0
	}

	var fields [3]int
	stage := 0

	for i := 3; i < len(data); i++ {
		b := data[i]

		switch {
		case b >= '0' && b <= '9':
			fields[stage] = fields[stage]*10 + int(b-'0')
		case b == ';':
			stage++
			if stage > 2 {
				return MouseEvent{}, 0
			}
		case b == 'M' || b == 'm':
			if stage != 2 {
				return MouseEvent{}, 0
			}
			return decodeSGRMouse(fields[0], fields[1], fields[2], b == 'M'), i + 1
		default:
			return MouseEvent{}, 0
		}
	}

	// Incomplete sequence
	return MouseEvent{}, 0
}

func decodeSGRMouse(button, x, y int, pressed bool) MouseEvent {
	event := MouseEvent{
		X: x - 1, // 1-indexed on the wire
		Y: y - 1,
	}

	if button&4 != 0 {
		event.Mod |= ModShift
	}
	if button&8 != 0 {
		event.Mod |= ModAlt
	}
	if button&16 != 0 {
		event.Mod |= ModCtrl
	}

	low := button & 3
	if button&64 != 0 {
		event.Action = MouseScrollUp + MouseAction(low)
		return event
	}

	event.Button = [...]MouseButton{MouseLeft, MouseMiddle, MouseRight, MouseNone}[low]
	switch {
	case button&32 != 0 && event.Button == MouseNone:
		event.Action = MouseMove
	case button&32 != 0:
		event.Action = MouseDrag
	case pressed:
		event.Action = MousePress
	default:
		event.Action = MouseRelease
	}
	return event
}

// parseInputWithRemainder parses input and returns the incomplete tail, a
// split UTF-8 rune or an unterminated escape sequence, so the next read can
// complete it. A lone trailing ESC is also held back; the reader reports it
// as KeyEscape once a poll times out with nothing more arriving.
func parseInputWithRemainder(data []byte) ([]Event, []byte) {
	cut := len(data) - len(findIncompleteUTF8Suffix(data))
	cut -= len(findIncompleteEscapeSuffix(data[:cut]))
	if cut == len(data) {
		return parseInput(data), nil
	}
	return parseInput(data[:cut]), data[cut:]
}

// maxHeldEscape bounds how much of an unterminated sequence is carried
// over. Longer tails are parsed as they are.
const maxHeldEscape = 32

// findIncompleteEscapeSuffix returns the trailing escape sequence of data
// when it has not reached its final byte yet: ESC, ESC O, or ESC [ followed
// only by parameter and intermediate bytes.
func findIncompleteEscapeSuffix(data []byte) []byte {
	start := bytes.LastIndexByte(data, 0x1b)
	if start < 0 || len(data)-start > maxHeldEscape {
		return nil
	}
	tail := data[start:]
	if len(tail) == 1 {
		return tail
	}
	switch tail[1] {
	case 'O':
		if len(tail) == 2 {
			return tail
		}
	case '[':
		for _, b := range tail[2:] {
			if b < 0x20 || b > 0x3f {
				return nil
			}
		}
		return tail
	}
	return nil
}

// findIncompleteUTF8Suffix finds any incomplete UTF-8 sequence at the end of data.
func findIncompleteUTF8Suffix(data []byte) []byte {
	for i := 1; i <= 3 && i <= len(data); i++ {
		b := data[len(data)-i]

		if b >= 0xC0 {
			var expectedLen int
			switch {
			case b < 0xE0:
				expectedLen = 2
			case b < 0xF0:
				expectedLen = 3
			default:
				expectedLen = 4
			}
			if i < expectedLen {
				return data[len(data)-i:]
			}
			return nil
		}

		// Continuation byte, keep looking for the lead byte
		if b >= 0x80 && b < 0xC0 {
			continue
		}
		return nil
	}
	return nil
}
