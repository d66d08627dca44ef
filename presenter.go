package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"
	"github.com/grindlemire/hooktui/internal/debug"
)

// PaintReport describes what one Paint wrote.
type PaintReport struct {
	// Rewritten lists rows that were cleared and given new content.
	Rewritten []int
	// Cleared lists rows that were cleared and left empty.
	Cleared []int
	// CursorRow is the cursor row after the paint, relative to the region
	// anchor in inline mode and to the screen top in alt-screen mode.
	CursorRow int
}

// Changed returns the number of rows touched.
func (r PaintReport) Changed() int {
	return len(r.Rewritten) + len(r.Cleared)
}

// updateBracketer is implemented by terminals that can group a paint into
// one synchronized update.
type updateBracketer interface {
	BeginUpdate()
	EndUpdate()
}

// inlineSnapshot is the inline region saved while the alt screen is shown.
type inlineSnapshot struct {
	prev      Frame
	cursorRow int
	stale     bool
}

// Presenter turns frames into minimal terminal writes. It owns the
// terminal's mode for the lifetime of a session and is not safe for
// concurrent use.
type Presenter struct {
	term   Terminal
	logger *log.Logger
	mouse  bool

	mode   Mode
	policy PresentationPolicy
	raw    bool

	prev      Frame
	cursorRow int
	atCol0    bool

	width, height int

	saved *inlineSnapshot
}

// PresenterOption configures a Presenter.
type PresenterOption func(*Presenter)

// WithPresenterLogger sets the logger for size fallbacks and mode changes.
func WithPresenterLogger(l *log.Logger) PresenterOption {
	return func(p *Presenter) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithPresenterMouse enables mouse reporting while the session runs.
func WithPresenterMouse(enabled bool) PresenterOption {
	return func(p *Presenter) {
		p.mouse = enabled
	}
}

// NewPresenter creates a presenter drawing through term.
func NewPresenter(term Terminal, opts ...PresenterOption) *Presenter {
	p := &Presenter{
		term:   term,
		logger: debug.Logger(),
		width:  DefaultWidth,
		height: DefaultHeight,
		atCol0: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Mode returns the current lifecycle state.
func (p *Presenter) Mode() Mode { return p.mode }

// Viewport returns the last queried terminal size.
func (p *Presenter) Viewport() (int, int) { return p.width, p.height }

// Previous returns the last painted frame, or nil before the first paint
// and after an invalidation.
func (p *Presenter) Previous() Frame { return p.prev }

// Start acquires the terminal: raw mode on, cursor hidden, and the
// alternate screen entered when fullscreen is set.
func (p *Presenter) Start(fullscreen bool) error {
	if p.mode != ModeUninitialized {
		return fmt.Errorf("start presenter: already %s", p.mode)
	}
	if err := p.term.EnableRawMode(); err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	p.raw = true
	p.refreshSize()

	p.term.HideCursor()
	if p.mouse {
		p.term.EnableMouse()
	}

	p.mode = ModeInline
	p.policy = InlinePolicy
	if fullscreen {
		p.activate(ModeAltScreen)
	}
	p.logger.Debug("presenter started", "mode", p.mode, "width", p.width, "height", p.height)
	return p.flush()
}

// activate switches the drawing policy, entering the alternate buffer
// when the new policy asks for it.
func (p *Presenter) activate(m Mode) {
	p.mode = m
	p.policy = policyFor(m)
	if p.policy.SwitchBuffer {
		p.term.EnterAltScreen()
		p.term.ClearScreen()
	}
	p.prev = nil
	p.cursorRow = 0
	p.atCol0 = true
}

// EnterAltScreen switches from inline to the alternate screen. The inline
// region is saved and restored by ExitAltScreen.
func (p *Presenter) EnterAltScreen() error {
	switch p.mode {
	case ModeAltScreen:
		return nil
	case ModeTerminated:
		return ErrTerminated
	case ModeUninitialized:
		return fmt.Errorf("enter alt screen: presenter not started")
	}
	p.saved = &inlineSnapshot{prev: p.prev, cursorRow: p.cursorRow}
	p.activate(ModeAltScreen)
	return p.flush()
}

// ExitAltScreen returns to inline mode and restores the saved region.
func (p *Presenter) ExitAltScreen() error {
	switch p.mode {
	case ModeInline:
		return nil
	case ModeTerminated:
		return ErrTerminated
	case ModeUninitialized:
		return fmt.Errorf("exit alt screen: presenter not started")
	}
	if p.policy.SwitchBuffer {
		p.term.ExitAltScreen()
	}
	p.mode = ModeInline
	p.policy = InlinePolicy
	p.prev = nil
	p.cursorRow = 0
	p.atCol0 = true

	if s := p.saved; s != nil {
		p.saved = nil
		p.prev, p.cursorRow = s.prev, s.cursorRow
		if s.stale {
			p.clearRegion()
		}
	}
	return p.flush()
}

// Invalidate forgets the previous frame and clears the drawing area so the
// next Paint redraws everything. Call it after a resize.
func (p *Presenter) Invalidate() {
	if p.mode != ModeInline && p.mode != ModeAltScreen {
		return
	}
	p.refreshSize()
	if p.policy.AbsoluteAddressing {
		p.term.ClearScreen()
		p.prev = nil
		p.cursorRow = 0
		p.atCol0 = true
	} else {
		p.clearRegion()
	}
	if p.saved != nil {
		p.saved.stale = true
	}
}

// clearRegion moves to the inline anchor, clears everything below it and
// forgets the previous frame.
func (p *Presenter) clearRegion() {
	p.moveTo(0)
	p.term.ClearToEnd()
	p.prev = nil
}

// Paint writes the rows of next that differ from the previous frame and
// clears rows the previous frame had beyond the end of next.
func (p *Presenter) Paint(next Frame) PaintReport {
	if p.mode != ModeInline && p.mode != ModeAltScreen {
		p.logger.Debug("paint skipped", "mode", p.mode)
		return PaintReport{CursorRow: p.cursorRow}
	}
	next = p.fit(next)

	var report PaintReport
	ub, bracket := p.term.(updateBracketer)
	if bracket {
		ub.BeginUpdate()
	}

	for _, i := range changedLines(p.prev, next) {
		p.moveTo(i)
		p.term.ClearLine()
		if i < len(next) {
			p.term.WriteLine(next[i])
			p.atCol0 = len(next[i]) == 0
			report.Rewritten = append(report.Rewritten, i)
		} else {
			report.Cleared = append(report.Cleared, i)
		}
	}
	p.moveTo(p.restRow(len(next)))

	if bracket {
		ub.EndUpdate()
	}
	p.prev = next
	report.CursorRow = p.cursorRow

	if err := p.flush(); err != nil {
		p.logger.Error("paint flush failed", "err", err)
	}
	return report
}

// fit clips a frame to the viewport: rows beyond what the policy can show
// are dropped and lines are cut to the screen width.
func (p *Presenter) fit(f Frame) Frame {
	rows := min(len(f), p.policy.maxRows(p.height))
	out := make(Frame, rows)
	for i := range rows {
		out[i] = clipLine(f[i], p.width)
	}
	return out
}

// restRow is where the cursor parks after a paint of n lines.
func (p *Presenter) restRow(n int) int {
	if p.policy.AbsoluteAddressing {
		return min(n, p.height-1)
	}
	return n
}

// moveTo puts the cursor at column 0 of row.
func (p *Presenter) moveTo(row int) {
	if p.policy.AbsoluteAddressing {
		p.term.SetCursor(0, row)
		p.cursorRow = row
		p.atCol0 = true
		return
	}
	switch {
	case row < p.cursorRow:
		p.term.CursorUp(p.cursorRow - row)
	case row > p.cursorRow:
		p.term.NewLines(row - p.cursorRow)
	case !p.atCol0:
		p.term.CursorUp(0)
	}
	p.cursorRow = row
	p.atCol0 = true
}

// Println writes text above the inline region so it becomes part of the
// scrollback. The region is redrawn by the next Paint. In alt-screen mode
// it does nothing.
func (p *Presenter) Println(text string) error {
	if err := p.printable(); err != nil || p.policy.SwitchBuffer {
		return err
	}
	p.clearRegion()
	for _, row := range wrapPrintText(text, p.width) {
		p.term.Write([]byte(row))
		p.term.NewLines(1)
	}
	p.cursorRow = 0
	p.atCol0 = true
	return p.flush()
}

// PrintElement lays out el at the viewport width and writes it above the
// inline region like Println.
func (p *Presenter) PrintElement(el *Element) error {
	if err := p.printable(); err != nil || p.policy.SwitchBuffer || el == nil {
		return err
	}
	frame := Paint(el, ComputeLayout(el, p.width, p.height))

	p.clearRegion()
	for _, line := range frame {
		p.term.WriteLine(clipLine(line, p.width))
		p.term.NewLines(1)
	}
	p.cursorRow = 0
	p.atCol0 = true
	return p.flush()
}

func (p *Presenter) printable() error {
	switch p.mode {
	case ModeTerminated:
		return ErrTerminated
	case ModeUninitialized:
		return fmt.Errorf("print: presenter not started")
	}
	return nil
}

// Terminate restores the terminal. The alternate screen is left, the
// cursor shown and raw mode disabled. Inline output stays on screen with
// the cursor below it. Calling Terminate again does nothing.
func (p *Presenter) Terminate() error {
	switch p.mode {
	case ModeTerminated:
		return nil
	case ModeUninitialized:
		p.mode = ModeTerminated
		return nil
	}

	if p.policy.RestoreOnExit {
		if p.policy.SwitchBuffer {
			p.term.ExitAltScreen()
		}
		if s := p.saved; s != nil && !s.stale {
			p.prev, p.cursorRow = s.prev, s.cursorRow
			p.policy = InlinePolicy
			p.moveTo(len(p.prev))
		}
	} else {
		p.moveTo(len(p.prev))
	}
	p.saved = nil

	if p.mouse {
		p.term.DisableMouse()
	}
	p.term.ShowCursor()
	flushErr := p.flush()

	var rawErr error
	if p.raw {
		rawErr = p.term.DisableRawMode()
		p.raw = false
	}
	p.mode = ModeTerminated
	p.logger.Debug("presenter terminated")

	if rawErr != nil {
		return fmt.Errorf("disable raw mode: %w", rawErr)
	}
	return flushErr
}

func (p *Presenter) refreshSize() {
	w, h, err := p.term.Size()
	if err != nil || w <= 0 || h <= 0 {
		p.logger.Warn("terminal size unavailable, using default",
			"err", err, "width", DefaultWidth, "height", DefaultHeight)
		w, h = DefaultWidth, DefaultHeight
	}
	p.width, p.height = w, h
}

func (p *Presenter) flush() error {
	if err := p.term.Flush(); err != nil {
		return fmt.Errorf("flush terminal: %w", err)
	}
	return nil
}

// clipLine cuts line to width cells. A wide character split by the edge
// is replaced with a space.
func clipLine(line Line, width int) Line {
	if width <= 0 {
		return nil
	}
	if len(line) <= width {
		return line
	}
	out := line[:width:width]
	if last := out[width-1]; last.Width == 2 {
		out = append(out[:width-1:width-1], Cell{Rune: ' ', Style: last.Style, Width: 1})
	}
	return out
}

// wrapPrintText splits text into rows no wider than width. Escape
// sequences are kept and do not count toward the width. Tabs become
// spaces and carriage returns are dropped.
func wrapPrintText(text string, width int) []string {
	text = strings.TrimSuffix(text, "\n")
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.ReplaceAll(text, "\t", "    ")
	wrapped := ansi.Hardwrap(text, max(1, width), true)

	rows := strings.Split(wrapped, "\n")
	for i, row := range rows {
		if strings.ContainsRune(row, '\x1b') {
			rows[i] = row + ansi.ResetStyle
		}
	}
	return rows
}
