package tui

// Mode is the presenter's lifecycle state.
type Mode int

const (
	ModeUninitialized Mode = iota
	ModeInline
	ModeAltScreen
	ModeTerminated
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeUninitialized:
		return "uninitialized"
	case ModeInline:
		return "inline"
	case ModeAltScreen:
		return "alt-screen"
	case ModeTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// PresentationPolicy parameterises the diff core for one mode.
type PresentationPolicy struct {
	// SwitchBuffer enters the alternate screen on activation and leaves it
	// on deactivation.
	SwitchBuffer bool
	// RestoreOnExit returns the screen to its pre-session content on
	// termination. When false the painted lines stay on screen.
	RestoreOnExit bool
	// AbsoluteAddressing positions rows with CUP. When false the cursor
	// moves relative to the region anchor so the region can scroll.
	AbsoluteAddressing bool
}

var (
	// InlinePolicy draws below the shell prompt and preserves scrollback.
	InlinePolicy = PresentationPolicy{}
	// AltScreenPolicy draws on the alternate screen buffer.
	AltScreenPolicy = PresentationPolicy{
		SwitchBuffer:       true,
		RestoreOnExit:      true,
		AbsoluteAddressing: true,
	}
)

// policyFor returns the policy for a drawing mode.
func policyFor(m Mode) PresentationPolicy {
	if m == ModeAltScreen {
		return AltScreenPolicy
	}
	return InlinePolicy
}

// maxRows returns how many frame lines the policy can show on a screen of
// the given height. Inline keeps one row free for the cursor so that
// relative moves never need to reach above the top of the screen.
func (p PresentationPolicy) maxRows(height int) int {
	if p.AbsoluteAddressing {
		return max(1, height)
	}
	return max(1, height-1)
}
