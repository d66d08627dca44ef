package tui

import (
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/x/ansi"

	"github.com/grindlemire/hooktui/internal/layout"
)

var _ layout.Layoutable = (*Element)(nil)

// ElementID identifies an element. Ids are unique within the process, so they
// are stable for the lifetime of the tree that holds the element.
type ElementID uint64

var lastElementID atomic.Uint64

// Kind is the node kind of an Element.
type Kind uint8

const (
	// KindContainer is a box that lays out children.
	KindContainer Kind = iota
	// KindText is a leaf that paints text.
	KindText
	// KindSpacer is an empty leaf that grows to fill free space.
	KindSpacer
	// KindRawLine is a single line of pre-rendered output. Escape sequences are
	// stripped and the text is truncated to the node's width.
	KindRawLine
)

func (k Kind) String() string {
	switch k {
	case KindContainer:
		return "container"
	case KindText:
		return "text"
	case KindSpacer:
		return "spacer"
	case KindRawLine:
		return "raw"
	}
	return "unknown"
}

// TextAlign specifies how text is aligned within its content area.
type TextAlign int

const (
	// TextAlignLeft aligns text to the left edge (default).
	TextAlignLeft TextAlign = iota
	// TextAlignCenter centers text horizontally.
	TextAlignCenter
	// TextAlignRight aligns text to the right edge.
	TextAlignRight
)

// Element is one node of the tree returned by a render function.
// Trees are built fresh every render and are not modified after they are
// handed to the runtime.
type Element struct {
	id       ElementID
	kind     Kind
	children []*Element

	// Layout properties
	style LayoutStyle

	// Visual properties
	border       BorderStyle
	borderColors BorderColors
	background   *Color // nil = transparent

	// Text properties
	text      string
	textStyle Style
	textAlign TextAlign
}

// New creates a container Element with the given options.
func New(opts ...Option) *Element {
	return newElement(KindContainer, opts)
}

// Text creates a text leaf. Embedded newlines produce multiple lines.
func Text(content string, opts ...Option) *Element {
	e := newElement(KindText, nil)
	e.text = content
	return e.With(opts...)
}

// Spacer creates an empty leaf with flex-grow 1.
func Spacer(opts ...Option) *Element {
	e := newElement(KindSpacer, nil)
	e.style.FlexGrow = 1
	return e.With(opts...)
}

// RawLine creates a single-line leaf from pre-rendered output such as the
// captured stdout of a subprocess. Escape sequences are dropped.
func RawLine(content string, opts ...Option) *Element {
	e := newElement(KindRawLine, nil)
	e.text = ansi.Strip(strings.SplitN(content, "\n", 2)[0])
	return e.With(opts...)
}

// Row creates a container laying children out left to right.
func Row(children ...*Element) *Element {
	return New(WithDirection(layout.Row), WithChildren(children...))
}

// Column creates a container laying children out top to bottom.
func Column(children ...*Element) *Element {
	return New(WithDirection(layout.Column), WithChildren(children...))
}

func newElement(kind Kind, opts []Option) *Element {
	e := &Element{
		id:    ElementID(lastElementID.Add(1)),
		kind:  kind,
		style: DefaultLayoutStyle(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// With applies more options and returns e, so builders can be chained.
func (e *Element) With(opts ...Option) *Element {
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ID returns the element's identifier.
func (e *Element) ID() ElementID { return e.id }

// Kind returns the node kind.
func (e *Element) Kind() Kind { return e.kind }

// Text returns the literal text content, if any.
func (e *Element) Text() string { return e.text }

// Children returns the element's children in order.
func (e *Element) Children() []*Element { return e.children }

// Style returns the layout style.
func (e *Element) Style() LayoutStyle { return e.style }

// Border returns the border glyph set.
func (e *Element) Border() BorderStyle { return e.border }

// TextStyle returns the paint style used for text.
func (e *Element) TextStyle() Style { return e.textStyle }

// Hidden reports whether the element is display:none.
func (e *Element) Hidden() bool { return e.style.Display == layout.DisplayNone }

// Walk visits e and its descendants depth-first in tree order. Returning
// false from fn skips the node's children.
func (e *Element) Walk(fn func(*Element) bool) {
	if e == nil || !fn(e) {
		return
	}
	for _, c := range e.children {
		c.Walk(fn)
	}
}

// LayoutID implements layout.Layoutable.
func (e *Element) LayoutID() uint64 { return uint64(e.id) }

// LayoutStyle implements layout.Layoutable.
func (e *Element) LayoutStyle() LayoutStyle { return e.style }

// LayoutChildren implements layout.Layoutable.
func (e *Element) LayoutChildren() []layout.Layoutable {
	out := make([]layout.Layoutable, len(e.children))
	for i, c := range e.children {
		out[i] = c
	}
	return out
}

// IntrinsicSize returns the size of the element's own text, excluding
// padding and border.
func (e *Element) IntrinsicSize() (width, height int) {
	switch e.kind {
	case KindText:
		if e.text == "" {
			return 0, 1
		}
		return textSize(e.text)
	case KindRawLine:
		return StringWidth(e.text), 1
	case KindContainer:
		if e.text != "" {
			return textSize(e.text)
		}
	}
	return 0, 0
}

func textSize(s string) (width, height int) {
	if s == "" {
		return 0, 0
	}
	lines := strings.Split(s, "\n")
	for _, l := range lines {
		width = max(width, StringWidth(l))
	}
	return width, len(lines)
}
