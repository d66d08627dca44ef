package tui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func paintAt(root *Element, width, height int, opts ...PaintOption) Frame {
	return Paint(root, ComputeLayout(root, width, height), opts...)
}

func TestPaint_Scenarios(t *testing.T) {
	type tc struct {
		root   *Element
		width  int
		height int
		want   []string
	}

	tests := map[string]tc{
		"row of text": {
			root:  Row(Text("Left"), Text(" Right")),
			width: 80, height: 24,
			want: []string{"Left Right"},
		},
		"column of three text children": {
			root:  Column(Text("a"), Text("b"), Text("c")),
			width: 80, height: 24,
			want: []string{"a", "b", "c"},
		},
		"column aligned to end": {
			root:  Column(Text("a"), Text("bb")).With(WithAlign(AlignEnd), WithWidth(6)),
			width: 80, height: 24,
			want: []string{"     a", "    bb"},
		},
		"rounded border": {
			root:  New(WithBorder(BorderRounded), WithWidth(6), WithChildren(Text("hi"))),
			width: 80, height: 24,
			want: []string{"╭────╮", "│hi  │", "╰────╯"},
		},
		"hidden child skipped": {
			root:  Column(Text("a"), Text("b", WithHidden(true)), Text("c")),
			width: 10, height: 5,
			want: []string{"a", "c"},
		},
		"centered text": {
			root:  Column(Text("hi", WithTextAlign(TextAlignCenter), WithWidth(6))),
			width: 10, height: 5,
			want: []string{"  hi"},
		},
		"justify space between": {
			root:  Row(Text("L"), Text("R")).With(WithJustify(JustifySpaceBetween), WithWidth(5)),
			width: 10, height: 5,
			want: []string{"L   R"},
		},
		"padding": {
			root:  New(WithPadding(1), WithChildren(Text("p"))),
			width: 5, height: 5,
			want: []string{"", " p", ""},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := paintAt(tt.root, tt.width, tt.height).Lines()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("frame mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPaint_NilRoot(t *testing.T) {
	assert.Empty(t, Paint(nil, nil))
	assert.Empty(t, paintAt(nil, 10, 10))
}

func TestPaint_NoTrimKeepsWidth(t *testing.T) {
	root := Row(Text("ab"))
	trimmed := paintAt(root, 5, 3)
	full := paintAt(root, 5, 3, PaintNoTrim())

	assert.Len(t, trimmed[0], 2)
	assert.Len(t, full[0], 5)
}

func TestPaint_TextStyleCascades(t *testing.T) {
	root := Column(Text("x")).With(WithBold())
	frame := paintAt(root, 5, 2)

	assert.True(t, frame[0][0].Style.Equal(NewStyle().Bold()), "got %+v", frame[0][0].Style)
}

func TestPaint_WideRunes(t *testing.T) {
	frame := paintAt(Row(Text("世界")), 10, 2)
	assert.Equal(t, "世界", frame[0].String())
	assert.Equal(t, 4, frame[0].Width())
}

func TestPaint_ClipsToViewportWidth(t *testing.T) {
	root := Column(Text("abcdefgh"))
	frame := paintAt(root, 4, 2)
	assert.Equal(t, []string{"abcd"}, frame.Lines())
}
