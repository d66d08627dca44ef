package tui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"
)

// MockTerminal is an in-memory Terminal for tests. It emulates a main
// screen with scrollback plus an alternate screen, and records every
// operation in an op log.
type MockTerminal struct {
	mu sync.Mutex

	width, height int
	main          [][]Cell
	alt           [][]Cell
	scrollback    [][]Cell
	inAlt         bool
	col, row      int
	savedCol      int
	savedRow      int

	cursorHidden bool
	rawMode      bool
	mouse        bool

	ops     []string
	flushes int

	sizeErr error
	rawErr  error
}

var _ Terminal = (*MockTerminal)(nil)

// NewMockTerminal creates a blank width x height screen with the cursor at
// the top-left corner.
func NewMockTerminal(width, height int) *MockTerminal {
	return &MockTerminal{
		width:  width,
		height: height,
		main:   blankRows(width, height),
	}
}

func blankRows(width, height int) [][]Cell {
	rows := make([][]Cell, height)
	for i := range rows {
		rows[i] = blankRow(width)
	}
	return rows
}

func blankRow(width int) []Cell {
	row := make([]Cell, width)
	for i := range row {
		row[i] = blankCell
	}
	return row
}

func (m *MockTerminal) screen() [][]Cell {
	if m.inAlt {
		return m.alt
	}
	return m.main
}

func (m *MockTerminal) log(format string, args ...any) {
	m.ops = append(m.ops, fmt.Sprintf(format, args...))
}

// EnableRawMode records raw mode on, or returns the injected error.
func (m *MockTerminal) EnableRawMode() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.rawErr != nil {
		return m.rawErr
	}
	m.rawMode = true
	m.log("raw:on")
	return nil
}

// DisableRawMode records raw mode off.
func (m *MockTerminal) DisableRawMode() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rawMode = false
	m.log("raw:off")
	return nil
}

// EnterAltScreen saves the main screen cursor and switches to a blank
// alternate screen.
func (m *MockTerminal) EnterAltScreen() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.log("alt:enter")
	if m.inAlt {
		return
	}
	m.savedCol, m.savedRow = m.col, m.row
	m.alt = blankRows(m.width, m.height)
	m.inAlt = true
	m.col, m.row = 0, 0
}

// ExitAltScreen restores the main screen and its cursor.
func (m *MockTerminal) ExitAltScreen() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.log("alt:exit")
	if !m.inAlt {
		return
	}
	m.inAlt = false
	m.alt = nil
	m.col, m.row = m.savedCol, m.savedRow
}

// HideCursor records the cursor as hidden.
func (m *MockTerminal) HideCursor() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cursorHidden = true
	m.log("cursor:hide")
}

// ShowCursor records the cursor as visible.
func (m *MockTerminal) ShowCursor() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cursorHidden = false
	m.log("cursor:show")
}

// SetCursor moves the cursor, clamped to the screen.
func (m *MockTerminal) SetCursor(col, row int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.col = clampInt(col, 0, m.width-1)
	m.row = clampInt(row, 0, m.height-1)
	m.log("move:%d,%d", col, row)
}

// CursorUp moves up n rows to column 0, stopping at the top row.
func (m *MockTerminal) CursorUp(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.col = 0
	m.row = max(0, m.row-n)
	m.log("up:%d", n)
}

// NewLines moves down n rows to column 0, scrolling at the bottom.
func (m *MockTerminal) NewLines(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for range n {
		m.newLine()
	}
	m.log("newline:%d", n)
}

func (m *MockTerminal) newLine() {
	m.col = 0
	if m.row < m.height-1 {
		m.row++
		return
	}
	if m.inAlt {
		m.alt = append(m.alt[1:], blankRow(m.width))
		return
	}
	m.scrollback = append(m.scrollback, m.main[0])
	m.main = append(m.main[1:], blankRow(m.width))
}

// ClearLine blanks the cursor row.
func (m *MockTerminal) ClearLine() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.row >= 0 && m.row < m.height {
		m.screen()[m.row] = blankRow(m.width)
	}
	m.log("clear:line:%d", m.row)
}

// ClearToEnd blanks from the cursor to the end of the screen.
func (m *MockTerminal) ClearToEnd() {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := m.screen()
	for x := m.col; x < m.width && m.row < m.height; x++ {
		rows[m.row][x] = blankCell
	}
	for y := m.row + 1; y < m.height; y++ {
		rows[y] = blankRow(m.width)
	}
	m.log("clear:end:%d", m.row)
}

// ClearScreen blanks the screen and homes the cursor.
func (m *MockTerminal) ClearScreen() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.inAlt {
		m.alt = blankRows(m.width, m.height)
	} else {
		m.main = blankRows(m.width, m.height)
	}
	m.col, m.row = 0, 0
	m.log("clear:screen")
}

// WriteLine writes cells at the cursor, clipped to the screen width.
func (m *MockTerminal) WriteLine(line Line) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeCells(line)
	m.log("write:%d:%s", m.row, strings.TrimRight(line.String(), " "))
}

func (m *MockTerminal) writeCells(cells []Cell) {
	if m.row < 0 || m.row >= m.height {
		return
	}
	row := m.screen()[m.row]
	for _, c := range cells {
		if m.col >= m.width {
			break
		}
		row[m.col] = c
		m.col++
	}
}

// Write writes raw text at the cursor. Escape sequences are ignored and
// "\n" starts a new line.
func (m *MockTerminal) Write(p []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	text := ansi.Strip(string(p))
	for i, part := range strings.Split(text, "\n") {
		if i > 0 {
			m.newLine()
		}
		part = strings.TrimRight(part, "\r")
		m.writeCells(LineFromString(part, NewStyle()))
	}
	m.log("raw:%q", text)
	return len(p), nil
}

// EnableMouse records mouse reporting on.
func (m *MockTerminal) EnableMouse() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mouse = true
	m.log("mouse:on")
}

// DisableMouse records mouse reporting off.
func (m *MockTerminal) DisableMouse() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mouse = false
	m.log("mouse:off")
}

// Size returns the screen size, or the injected error.
func (m *MockTerminal) Size() (int, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sizeErr != nil {
		return 0, 0, m.sizeErr
	}
	return m.width, m.height, nil
}

// Flush counts flushes.
func (m *MockTerminal) Flush() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flushes++
	return nil
}

// --- Test helper methods ---

// Resize changes the screen size. Rows are kept from the top and cells are
// clipped or padded.
func (m *MockTerminal) Resize(width, height int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	resize := func(rows [][]Cell) [][]Cell {
		out := blankRows(width, height)
		for y := 0; y < min(height, len(rows)); y++ {
			copy(out[y], rows[y])
		}
		return out
	}
	m.main = resize(m.main)
	if m.inAlt {
		m.alt = resize(m.alt)
	}
	m.width, m.height = width, height
	m.col = clampInt(m.col, 0, width-1)
	m.row = clampInt(m.row, 0, height-1)
}

// FailSize makes Size return err. Pass nil to clear.
func (m *MockTerminal) FailSize(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sizeErr = err
}

// FailRawMode makes EnableRawMode return err. Pass nil to clear.
func (m *MockTerminal) FailRawMode(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rawErr = err
}

// Cursor returns the cursor position.
func (m *MockTerminal) Cursor() (col, row int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.col, m.row
}

// RawMode reports whether raw mode is on.
func (m *MockTerminal) RawMode() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rawMode
}

// InAltScreen reports whether the alternate screen is active.
func (m *MockTerminal) InAltScreen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inAlt
}

// CursorHidden reports whether the cursor is hidden.
func (m *MockTerminal) CursorHidden() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cursorHidden
}

// MouseEnabled reports whether mouse reporting is on.
func (m *MockTerminal) MouseEnabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mouse
}

// CellAt returns the cell at the given screen position.
func (m *MockTerminal) CellAt(col, row int) Cell {
	m.mu.Lock()
	defer m.mu.Unlock()
	if col < 0 || col >= m.width || row < 0 || row >= m.height {
		return Cell{}
	}
	return m.screen()[row][col]
}

// Lines returns the visible screen rows with trailing spaces trimmed.
func (m *MockTerminal) Lines() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return rowStrings(m.screen())
}

// Scrollback returns the rows scrolled off the top of the main screen.
func (m *MockTerminal) Scrollback() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return rowStrings(m.scrollback)
}

// StringTrimmed returns the visible screen joined with newlines, with
// trailing blank rows removed.
func (m *MockTerminal) StringTrimmed() string {
	lines := m.Lines()
	end := len(lines)
	for end > 0 && lines[end-1] == "" {
		end--
	}
	return strings.Join(lines[:end], "\n")
}

// Ops returns a copy of the op log.
func (m *MockTerminal) Ops() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.ops...)
}

// ResetOps clears the op log.
func (m *MockTerminal) ResetOps() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ops = nil
}

// Flushes returns how many times Flush was called.
func (m *MockTerminal) Flushes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.flushes
}

func rowStrings(rows [][]Cell) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = strings.TrimRight(Line(r).String(), " ")
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}
