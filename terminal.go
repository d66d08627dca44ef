package tui

// Default viewport used when the terminal size cannot be queried.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Terminal is the capability surface the presenter draws through. Output
// methods may buffer; nothing is guaranteed to reach the device until Flush.
// Rows and columns are 0-indexed.
type Terminal interface {
	// EnableRawMode switches input to byte-at-a-time with echo off.
	EnableRawMode() error
	// DisableRawMode restores the mode saved by EnableRawMode.
	DisableRawMode() error

	// EnterAltScreen switches to the alternate screen buffer.
	EnterAltScreen()
	// ExitAltScreen switches back to the main screen buffer.
	ExitAltScreen()

	HideCursor()
	ShowCursor()

	// SetCursor moves the cursor to an absolute screen position.
	SetCursor(col, row int)
	// CursorUp moves the cursor up n rows and to column 0.
	CursorUp(n int)
	// NewLines moves the cursor down n rows to column 0, scrolling the
	// screen if the cursor is on the last row.
	NewLines(n int)

	// ClearLine clears the whole cursor row.
	ClearLine()
	// ClearToEnd clears from the cursor to the end of the screen.
	ClearToEnd()
	// ClearScreen clears the visible screen and homes the cursor.
	ClearScreen()

	// WriteLine writes styled cells at the cursor and resets the style.
	WriteLine(line Line)
	// Write writes raw bytes at the cursor.
	Write(p []byte) (int, error)

	EnableMouse()
	DisableMouse()

	// Size returns the viewport in cells.
	Size() (width, height int, err error)

	// Flush sends buffered output to the device.
	Flush() error
}

// ColorCapability describes the level of color support in a terminal.
type ColorCapability int

const (
	// ColorNone indicates a monochrome terminal with no color support.
	ColorNone ColorCapability = iota
	// Color16 indicates basic 16-color support (ANSI standard colors).
	Color16
	// Color256 indicates ANSI 256 palette support.
	Color256
	// ColorTrue indicates 24-bit true color (RGB) support.
	ColorTrue
)

// Capabilities describes what features the terminal supports.
type Capabilities struct {
	// Colors indicates the level of color support.
	Colors ColorCapability
	// Unicode indicates whether the terminal can render Unicode characters.
	Unicode bool
	// AltScreen indicates whether the terminal supports alternate screen buffer.
	AltScreen bool
	// SyncUpdate indicates support for synchronized output (mode 2026).
	SyncUpdate bool
}
