package tui

// inputTable holds the input callbacks registered by one render, in
// registration order.
type inputTable struct {
	handlers []func(Event)
}

func (t *inputTable) add(fn func(Event)) {
	if fn != nil {
		t.handlers = append(t.handlers, fn)
	}
}

// dispatch invokes every handler in order.
func (t *inputTable) dispatch(ev Event) {
	if t == nil {
		return
	}
	for _, fn := range t.handlers {
		fn(ev)
	}
}

func (t *inputTable) len() int {
	if t == nil {
		return 0
	}
	return len(t.handlers)
}
