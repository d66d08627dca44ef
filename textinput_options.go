package tui

// TextInputOption configures a TextInput.
type TextInputOption func(*textInputConfig)

type textInputConfig struct {
	width            int
	maxRows          int
	border           BorderStyle
	focusColor       Color
	textStyle        Style
	placeholder      string
	placeholderStyle Style
	initial          string
	multiline        bool
	onSubmit         func(string)
	focus            FocusOptions
}

func defaultTextInputConfig() textInputConfig {
	return textInputConfig{
		width:            40,
		placeholderStyle: NewStyle().Dim(),
	}
}

// --- Sizing Options ---

// WithInputWidth sets the text width in cells, excluding the border.
func WithInputWidth(cells int) TextInputOption {
	return func(c *textInputConfig) {
		c.width = cells
	}
}

// WithInputMaxRows limits how many rows are shown; the rows around the
// end of the text stay visible (0 = unlimited).
func WithInputMaxRows(rows int) TextInputOption {
	return func(c *textInputConfig) {
		c.maxRows = rows
	}
}

// --- Visual Options ---

// WithInputBorder sets the border style.
func WithInputBorder(b BorderStyle) TextInputOption {
	return func(c *textInputConfig) {
		c.border = b
	}
}

// WithInputFocusColor colors the border while focused.
func WithInputFocusColor(col Color) TextInputOption {
	return func(c *textInputConfig) {
		c.focusColor = col
	}
}

// WithInputTextStyle sets the text style.
func WithInputTextStyle(s Style) TextInputOption {
	return func(c *textInputConfig) {
		c.textStyle = s
	}
}

// WithInputPlaceholder sets text shown when empty and unfocused.
func WithInputPlaceholder(text string) TextInputOption {
	return func(c *textInputConfig) {
		c.placeholder = text
	}
}

// --- Behavior Options ---

// WithInputValue sets the value used on the first render.
func WithInputValue(s string) TextInputOption {
	return func(c *textInputConfig) {
		c.initial = s
	}
}

// WithInputMultiline lets Ctrl+J insert newlines. Enter also inserts a
// newline when no submit callback is set.
func WithInputMultiline() TextInputOption {
	return func(c *textInputConfig) {
		c.multiline = true
	}
}

// WithInputOnSubmit sets the callback run with the text when Enter is
// pressed.
func WithInputOnSubmit(fn func(string)) TextInputOption {
	return func(c *textInputConfig) {
		c.onSubmit = fn
	}
}

// WithInputFocus sets the focus registration options.
func WithInputFocus(opts FocusOptions) TextInputOption {
	return func(c *textInputConfig) {
		c.focus = opts
	}
}
