package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWaker_Coalesces(t *testing.T) {
	w := newWaker()
	for range 10 {
		w.Request()
	}
	assert.True(t, w.Pending())
	assert.Len(t, w.C(), 1)

	<-w.C()
	w.clear()
	assert.False(t, w.Pending())

	w.Request()
	assert.Len(t, w.C(), 1)
}

func TestWaker_ClearDiscardsQueuedWake(t *testing.T) {
	w := newWaker()
	w.Request()
	w.clear()

	assert.False(t, w.Pending())
	assert.Len(t, w.C(), 0)

	w.Request()
	assert.True(t, w.Pending())
	assert.Len(t, w.C(), 1)
}
