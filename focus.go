package tui

import (
	"fmt"
	"slices"
	"sync"

	"github.com/grindlemire/hooktui/internal/debug"
)

// FocusEntry is one focusable region from the most recent render.
type FocusEntry struct {
	ID string
	// Active is false for regions registered as disabled. Inactive entries
	// are skipped by FocusNext and FocusPrev.
	Active bool
}

// FocusOptions configures a UseFocus registration.
type FocusOptions struct {
	// ID names the region. When empty an id of the form "focus-N" is
	// assigned from the region's position among unnamed regions.
	ID string
	// Disabled keeps the region in the registry but out of focus cycling.
	Disabled bool
	// AutoFocus claims focus for this region when nothing has been
	// focused yet.
	AutoFocus bool
}

// focusState holds the focus cursor, which survives renders, and the
// registry, which is rebuilt by every render.
type focusState struct {
	mu sync.Mutex

	focused string
	has     bool

	committed []FocusEntry
	building  []FocusEntry
	autoID    int
}

// begin starts a new registry for the render about to run.
func (f *focusState) begin() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.building = f.building[:0:0]
	f.autoID = 0
}

// register appends a region in traversal order and reports whether it holds
// focus for this render.
func (f *focusState) register(opts FocusOptions) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := opts.ID
	if id == "" {
		id = fmt.Sprintf("focus-%d", f.autoID)
		f.autoID++
	}
	if slices.ContainsFunc(f.building, func(e FocusEntry) bool { return e.ID == id }) {
		debug.Log("focus: duplicate id %q in one render", id)
	}
	f.building = append(f.building, FocusEntry{ID: id, Active: !opts.Disabled})

	if !f.has && opts.AutoFocus && !opts.Disabled {
		f.focused, f.has = id, true
	}
	return id, f.has && f.focused == id && !opts.Disabled
}

// commit makes the registry built by the last render the current one.
func (f *focusState) commit() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.committed = f.building
	f.building = nil
}

// move steps the cursor by dir (+1 or -1) through active entries of the
// committed registry. It reports whether the cursor changed.
func (f *focusState) move(dir int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := len(f.committed)
	if n == 0 {
		return false
	}

	start := -1
	if f.has {
		start = slices.IndexFunc(f.committed, func(e FocusEntry) bool { return e.ID == f.focused })
	}
	if start < 0 {
		// Unknown or unset cursor: next starts before the first entry,
		// prev starts after the last.
		if dir > 0 {
			start = -1
		} else {
			start = n
		}
	}

	for step := 1; step <= n; step++ {
		idx := ((start+dir*step)%n + n) % n
		if e := f.committed[idx]; e.Active {
			changed := !f.has || f.focused != e.ID
			f.focused, f.has = e.ID, true
			return changed
		}
	}
	return false
}

// set moves the cursor to id whether or not id is registered.
func (f *focusState) set(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.focused, f.has = id, true
}

// clear unsets the cursor.
func (f *focusState) clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.focused, f.has = "", false
}

func (f *focusState) current() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.focused, f.has
}

func (f *focusState) registry() []FocusEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.committed)
}
