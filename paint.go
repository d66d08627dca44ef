package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type paintConfig struct {
	trim bool
}

// PaintOption configures Paint.
type PaintOption func(*paintConfig)

// PaintNoTrim keeps trailing blank cells so every line is exactly as wide as
// the root rectangle.
func PaintNoTrim() PaintOption {
	return func(c *paintConfig) {
		c.trim = false
	}
}

// inheritedStyle carries cascading visual properties down the element tree.
// Text color, background, and attributes cascade from parent to child unless
// the child sets its own.
type inheritedStyle struct {
	text Style
}

// Paint draws root into a frame using rectangles from layout. The frame is as
// tall as the root's rectangle. Nodes missing from layout, hidden nodes, and
// zero-sized nodes are skipped along with their subtrees.
func Paint(root *Element, layout *LayoutResult, opts ...PaintOption) Frame {
	cfg := paintConfig{trim: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	if root == nil || layout == nil {
		return Frame{}
	}
	rootRect, ok := layout.Get(root.ID())
	if !ok || rootRect.IsEmpty() {
		return Frame{}
	}

	buf := NewBuffer(rootRect.Right(), rootRect.Bottom())
	p := painter{buf: buf, layout: layout}
	p.paint(root, inheritedStyle{})

	frame := buf.Frame(cfg.trim)
	return frame[rootRect.Y:]
}

type painter struct {
	buf    *Buffer
	layout *LayoutResult
}

func (p *painter) paint(e *Element, inherited inheritedStyle) {
	if e.Hidden() {
		return
	}
	rect, ok := p.layout.Get(e.ID())
	if !ok || rect.IsEmpty() {
		return
	}
	clip := rect.Intersect(p.buf.Rect())

	text := e.textStyle.over(inherited.text)

	// 1. Background
	if e.background != nil {
		text.Bg = *e.background
		p.buf.Fill(clip, ' ', NewStyle().Background(*e.background))
	}

	// 2. Border
	if e.border != BorderNone {
		base := NewStyle().Background(text.Bg)
		DrawBox(p.buf, rect, e.border, e.borderColors, base, clip)
	}

	// 3. Text
	content, _ := p.layout.Content(e.ID())
	switch e.kind {
	case KindText, KindContainer:
		if e.text != "" {
			p.paintText(e, content, text)
		}
	case KindRawLine:
		line := ansi.Truncate(e.text, content.Width, "")
		p.buf.SetStringClipped(content.X, content.Y, line, text, content)
	}

	// 4. Children: normal flow first, absolute children on top.
	next := inheritedStyle{text: text}
	var overlays []*Element
	for _, c := range e.children {
		if c.style.Position == PositionAbsolute {
			overlays = append(overlays, c)
			continue
		}
		p.paint(c, next)
	}
	for _, c := range overlays {
		p.paint(c, next)
	}
}

func (p *painter) paintText(e *Element, content Rect, style Style) {
	if content.IsEmpty() {
		return
	}
	for i, line := range strings.Split(e.text, "\n") {
		if i >= content.Height {
			break
		}
		x := content.X
		if w := StringWidth(line); w < content.Width {
			switch e.textAlign {
			case TextAlignCenter:
				x += (content.Width - w) / 2
			case TextAlignRight:
				x += content.Width - w
			}
		}
		p.buf.SetStringClipped(x, content.Y+i, line, style, content)
	}
}
