package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElement_WalkIDsUnique(t *testing.T) {
	root := Column(
		Row(Text("a"), Spacer(), Text("b")),
		New(WithBorder(BorderRounded), WithChildren(Text("c"))),
		Text("d"),
	)

	seen := make(map[ElementID]bool)
	count := 0
	root.Walk(func(e *Element) bool {
		require.False(t, seen[e.ID()], "duplicate id %d", e.ID())
		seen[e.ID()] = true
		count++
		return true
	})

	assert.Equal(t, 8, count)
	assert.Len(t, seen, 8)
}

func TestElement_Walk(t *testing.T) {
	type tc struct {
		root *Element
		skip *Element
		want []string
	}

	row := Row(Text("a"), Text("b"))
	tests := map[string]tc{
		"tree order": {
			root: Column(Row(Text("a"), Text("b")), Text("c")),
			want: []string{"", "", "a", "b", "c"},
		},
		"false skips children": {
			root: Column(row, Text("c")),
			skip: row,
			want: []string{"", "", "c"},
		},
		"nil root": {
			want: nil,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var got []string
			tt.root.Walk(func(e *Element) bool {
				got = append(got, e.Text())
				return e != tt.skip
			})
			assert.Equal(t, tt.want, got)
		})
	}
}
