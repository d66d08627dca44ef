package tui

import (
	"sync"
	"time"
)

// EventReader reads events from the terminal.
// It is designed for polling-based event loops.
type EventReader interface {
	// PollEvent reads the next event with a timeout.
	// Returns (event, true) if an event was read, or (nil, false) on timeout.
	// A timeout of 0 performs a non-blocking check.
	// A negative timeout blocks until an event arrives or the reader closes.
	PollEvent(timeout time.Duration) (Event, bool)

	// Close releases resources. Must be called when done.
	Close() error
}

// MockReader is an EventReader for testing. It is safe to feed events from
// one goroutine while the run loop polls from another.
type MockReader struct {
	mu     sync.Mutex
	events []Event
	polled int
	notify chan struct{}
	done   chan struct{}
	once   sync.Once
}

var _ EventReader = (*MockReader)(nil)

// NewMockReader creates a MockReader with the given events queued.
// Events are returned in order by successive calls to PollEvent.
func NewMockReader(events ...Event) *MockReader {
	return &MockReader{
		events: events,
		notify: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

// PollEvent returns the next queued event. When the queue is empty it waits
// up to timeout for Send.
func (m *MockReader) PollEvent(timeout time.Duration) (Event, bool) {
	if ev, ok := m.pop(); ok {
		return ev, true
	}
	if timeout == 0 {
		return nil, false
	}

	var expired <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		expired = timer.C
	}
	select {
	case <-m.notify:
		return m.pop()
	case <-expired:
		return nil, false
	case <-m.done:
		return nil, false
	}
}

func (m *MockReader) pop() (Event, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.events) == 0 {
		return nil, false
	}
	ev := m.events[0]
	m.events = m.events[1:]
	m.polled++
	return ev, true
}

// Send queues more events and wakes a waiting PollEvent.
func (m *MockReader) Send(events ...Event) {
	m.mu.Lock()
	m.events = append(m.events, events...)
	m.mu.Unlock()
	select {
	case m.notify <- struct{}{}:
	default:
	}
}

// Remaining returns the number of events yet to be returned.
func (m *MockReader) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.events)
}

// Polled returns the number of events returned so far.
func (m *MockReader) Polled() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.polled
}

// Close unblocks any waiting PollEvent. It is safe to call more than once.
func (m *MockReader) Close() error {
	m.once.Do(func() { close(m.done) })
	return nil
}
