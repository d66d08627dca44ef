package tui

import "strings"

// TextInput is a focusable, optionally multi-line text field whose state
// lives in hook slots of the render that created it.
type TextInput struct {
	id      string
	focused bool
	text    Signal[string]
	cursor  Signal[int]
	cfg     textInputConfig
}

// UseTextInput declares a text input for this render. While focused it
// registers an input callback that edits the text.
func UseTextInput(rc *RenderContext, opts ...TextInputOption) *TextInput {
	cfg := defaultTextInputConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &TextInput{
		text:   UseState(rc, cfg.initial),
		cursor: UseState(rc, len([]rune(cfg.initial))),
		cfg:    cfg,
	}
	t.id = cfg.focus.ID
	t.focused = rc.UseFocus(cfg.focus)
	if t.focused {
		rc.UseInput(t.handle)
	}
	return t
}

// Value returns the current text.
func (t *TextInput) Value() string { return t.text.Get() }

// SetValue replaces the text and moves the cursor to the end.
func (t *TextInput) SetValue(s string) {
	t.text.Set(s)
	t.cursor.Set(len([]rune(s)))
}

// Clear empties the input.
func (t *TextInput) Clear() { t.SetValue("") }

// Focused reports whether the input holds focus in this render.
func (t *TextInput) Focused() bool { return t.focused }

// Signal returns the text signal, for sharing the value with other code.
func (t *TextInput) Signal() Signal[string] { return t.text }

func (t *TextInput) handle(ev Event) {
	ke, ok := ev.(KeyEvent)
	if !ok {
		return
	}

	switch {
	case ke.Text() != "":
		t.insert(ke.Rune)
	case ke.Is(KeyEnter) && t.cfg.multiline && t.cfg.onSubmit == nil:
		t.insert('\n')
	case ke.IsRune('j', ModCtrl) && t.cfg.multiline:
		t.insert('\n')
	case ke.Is(KeyEnter):
		if t.cfg.onSubmit != nil {
			t.cfg.onSubmit(t.text.Get())
		}
	case ke.Is(KeyBackspace):
		t.backspace()
	case ke.Is(KeyDelete):
		t.deleteForward()
	case ke.Is(KeyLeft):
		t.moveTo(t.pos() - 1)
	case ke.Is(KeyRight):
		t.moveTo(t.pos() + 1)
	case ke.Is(KeyUp):
		t.moveRow(-1)
	case ke.Is(KeyDown):
		t.moveRow(+1)
	case ke.Is(KeyHome), ke.IsRune('a', ModCtrl):
		row, _ := cursorRowCol(t.rows(), t.pos())
		t.cursor.Set(posFromRowCol(t.rows(), row, 0))
	case ke.Is(KeyEnd), ke.IsRune('e', ModCtrl):
		rows := t.rows()
		row, _ := cursorRowCol(rows, t.pos())
		t.cursor.Set(posFromRowCol(rows, row, len(rows[row].runes)))
	case ke.IsRune('u', ModCtrl):
		t.Clear()
	}
}

func (t *TextInput) insert(r rune) {
	runes := []rune(t.text.Get())
	pos := t.pos()
	runes = append(runes[:pos], append([]rune{r}, runes[pos:]...)...)
	t.text.Set(string(runes))
	t.cursor.Set(pos + 1)
}

func (t *TextInput) backspace() {
	runes := []rune(t.text.Get())
	pos := t.pos()
	if pos == 0 {
		return
	}
	t.text.Set(string(append(runes[:pos-1], runes[pos:]...)))
	t.cursor.Set(pos - 1)
}

func (t *TextInput) deleteForward() {
	runes := []rune(t.text.Get())
	pos := t.pos()
	if pos < len(runes) {
		t.text.Set(string(append(runes[:pos], runes[pos+1:]...)))
	}
}

func (t *TextInput) moveTo(pos int) {
	t.cursor.Set(max(0, min(pos, len([]rune(t.text.Get())))))
}

func (t *TextInput) moveRow(delta int) {
	rows := t.rows()
	row, col := cursorRowCol(rows, t.pos())
	target := row + delta
	if target < 0 || target >= len(rows) {
		return
	}
	t.cursor.Set(posFromRowCol(rows, target, min(col, len(rows[target].runes))))
}

// pos returns the cursor clamped to the text.
func (t *TextInput) pos() int {
	return max(0, min(t.cursor.Get(), len([]rune(t.text.Get()))))
}

func (t *TextInput) rows() []textRow {
	return wrapTextRows(t.text.Get(), t.cfg.width)
}

// Element renders the input. The cursor is drawn as a reversed cell while
// focused; the placeholder shows when empty and unfocused.
func (t *TextInput) Element() *Element {
	opts := []Option{WithDirection(DirColumn)}
	width := t.cfg.width
	if t.cfg.border != BorderNone {
		opts = append(opts, WithBorder(t.cfg.border))
		width += 2
		if t.focused && !t.cfg.focusColor.IsDefault() {
			opts = append(opts, WithBorderColor(t.cfg.focusColor))
		}
	}
	opts = append(opts, WithWidth(width))

	value := t.text.Get()
	if value == "" && !t.focused && t.cfg.placeholder != "" {
		return New(append(opts, WithChildren(
			Text(t.cfg.placeholder, WithTextStyle(t.cfg.placeholderStyle)),
		))...)
	}

	rows := t.rows()
	if t.cfg.maxRows > 0 && len(rows) > t.cfg.maxRows {
		rows = rows[len(rows)-t.cfg.maxRows:]
	}
	curRow, curCol := cursorRowCol(t.rows(), t.pos())
	skipped := len(t.rows()) - len(rows)

	children := make([]*Element, 0, len(rows))
	for i, row := range rows {
		text := string(row.runes)
		if !t.focused || i+skipped != curRow {
			children = append(children, Text(text, WithTextStyle(t.cfg.textStyle)))
			continue
		}
		before, at, after := splitAtCursor(row.runes, curCol)
		children = append(children, Row(
			Text(before, WithTextStyle(t.cfg.textStyle)),
			Text(at, WithTextStyle(t.cfg.textStyle.Reverse())),
			Text(after, WithTextStyle(t.cfg.textStyle)),
		))
	}
	return New(append(opts, WithChildren(children...))...)
}

func splitAtCursor(runes []rune, col int) (before, at, after string) {
	if col >= len(runes) {
		return string(runes), " ", ""
	}
	return string(runes[:col]), string(runes[col]), string(runes[col+1:])
}

// textRow is one visual row of wrapped text. start is the rune offset of
// the row's first rune in the whole text.
type textRow struct {
	start int
	runes []rune
}

// wrapTextRows splits text on newlines and wraps each paragraph at width
// display cells. A width of 0 or less disables wrapping.
func wrapTextRows(text string, width int) []textRow {
	var rows []textRow
	offset := 0
	for _, para := range strings.Split(text, "\n") {
		runes := []rune(para)
		start, cells := 0, 0
		for i, r := range runes {
			w := RuneWidth(r)
			if width > 0 && cells+w > width && i > start {
				rows = append(rows, textRow{start: offset + start, runes: runes[start:i]})
				start, cells = i, 0
			}
			cells += w
		}
		rows = append(rows, textRow{start: offset + start, runes: runes[start:]})
		offset += len(runes) + 1
	}
	return rows
}

// cursorRowCol maps a rune offset to its visual row and column. An offset
// at a soft wrap belongs to the end of the earlier row only when it is the
// end of the text.
func cursorRowCol(rows []textRow, pos int) (row, col int) {
	for i := len(rows) - 1; i >= 0; i-- {
		if pos >= rows[i].start {
			return i, min(pos-rows[i].start, len(rows[i].runes))
		}
	}
	return 0, 0
}

// posFromRowCol maps a visual row and column back to a rune offset.
func posFromRowCol(rows []textRow, row, col int) int {
	if len(rows) == 0 {
		return 0
	}
	row = max(0, min(row, len(rows)-1))
	return rows[row].start + max(0, min(col, len(rows[row].runes)))
}
