package frame

// Callback runs once for the frame it was requested for. ts is in milliseconds.
type Callback func(ts float64)

// Handle identifies a pending frame request.
type Handle int

// Scheduler is the host's animation-frame source. A callback runs at most once;
// loops re-request from inside the callback.
type Scheduler interface {
	Request(cb Callback) Handle
	Cancel(h Handle)
}

// Manual is a Scheduler driven by explicit Fire calls. It backs headless runs and
// tests, where the caller owns time.
type Manual struct {
	next    Handle
	pending map[Handle]Callback
	order   []Handle
}

// NewManual returns an empty manual scheduler.
func NewManual() *Manual {
	return &Manual{pending: make(map[Handle]Callback)}
}

func (m *Manual) Request(cb Callback) Handle {
	m.next++
	m.pending[m.next] = cb
	m.order = append(m.order, m.next)
	return m.next
}

func (m *Manual) Cancel(h Handle) {
	delete(m.pending, h)
}

// Pending reports how many callbacks are waiting for the next frame.
func (m *Manual) Pending() int {
	return len(m.pending)
}

// Fire runs every callback requested before this call, in request order.
// Callbacks requested while firing wait for the next Fire.
func (m *Manual) Fire(ts float64) {
	order := m.order
	m.order = nil
	for _, h := range order {
		cb, ok := m.pending[h]
		if !ok {
			continue
		}
		delete(m.pending, h)
		cb(ts)
	}
}

// Run fires frames spaced step milliseconds apart, starting at start, and returns
// the timestamp of the last frame.
func (m *Manual) Run(start, step float64, frames int) float64 {
	ts := start
	for i := 0; i < frames; i++ {
		m.Fire(ts)
		if i < frames-1 {
			ts += step
		}
	}
	return ts
}
