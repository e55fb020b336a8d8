package marquee

import "math"

const (
	// MoveThreshold is how far, in px, the pointer must travel from its start before
	// the session counts as a drag rather than a click.
	MoveThreshold = 3.0
	// ClickSuppressWindow is how long, in ms, clicks are swallowed after a drag.
	ClickSuppressWindow = 250.0
)

// PointerEvent is the subset of a pointer event the controller needs. Time is in ms.
type PointerEvent struct {
	ID      int
	X       float64
	Primary bool
	Time    float64
}

// PointerCapture is the host's pointer capture facility.
type PointerCapture interface {
	Capture(id int)
	Release(id int)
}

// DragSession lives while a pointer is captured.
type DragSession struct {
	PointerID   int
	StartX      float64
	StartOffset float64
	LastX       float64
	LastTime    float64
	Velocity    float64
	Moved       bool
}

// DragController turns pointer input into simulator offsets.
type DragController struct {
	sim         *Simulator
	capture     PointerCapture
	enabled     bool
	sensitivity float64

	session       *DragSession
	suppressUntil float64
}

// NewDragController wires a controller to sim. Drag is disabled when cfg is not
// draggable or mobile is true; capture may be nil.
func NewDragController(sim *Simulator, cfg Config, capture PointerCapture, mobile bool) *DragController {
	return &DragController{
		sim:         sim,
		capture:     capture,
		enabled:     cfg.Draggable && !mobile,
		sensitivity: cfg.DragSensitivity,
	}
}

// Enabled reports whether pointer input is handled at all.
func (d *DragController) Enabled() bool { return d.enabled }

// Active reports whether a drag session is live.
func (d *DragController) Active() bool { return d.session != nil }

// Session returns a copy of the live session.
func (d *DragController) Session() (DragSession, bool) {
	if d.session == nil {
		return DragSession{}, false
	}
	return *d.session, true
}

// Down starts a session. It returns false when the event is not handled: drag
// disabled, nothing measured yet, a non-primary pointer, or a session already live.
func (d *DragController) Down(ev PointerEvent) bool {
	if !d.enabled || d.sim.SequenceWidth() <= 0 || !ev.Primary || d.session != nil {
		return false
	}
	if d.capture != nil {
		d.capture.Capture(ev.ID)
	}
	d.session = &DragSession{
		PointerID:   ev.ID,
		StartX:      ev.X,
		StartOffset: d.sim.Offset(),
		LastX:       ev.X,
		LastTime:    ev.Time,
	}
	d.sim.BeginDrag()
	return true
}

// Move drives the offset from the pointer position. Events for other pointers are
// ignored.
func (d *DragController) Move(ev PointerEvent) bool {
	s := d.session
	if s == nil || s.PointerID != ev.ID {
		return false
	}
	dx := ev.X - s.LastX
	dt := ev.Time - s.LastTime

	if !s.Moved && math.Abs(s.StartX-ev.X) > MoveThreshold {
		s.Moved = true
	}

	// Dragging left moves content left, whatever the configured direction.
	d.sim.DragTo(s.StartOffset + (s.StartX-ev.X)*d.sensitivity)

	if dt > 0 {
		instant := dx / dt * 1000
		s.Velocity = s.Velocity*0.8 + instant*0.2
	}
	s.LastX = ev.X
	s.LastTime = ev.Time
	return true
}

// Up ends the session for ev's pointer.
func (d *DragController) Up(ev PointerEvent) bool {
	s := d.session
	if s == nil || s.PointerID != ev.ID {
		return false
	}
	if d.capture != nil {
		d.capture.Release(ev.ID)
	}
	d.session = nil

	// Pointer velocity is in screen space; offset runs the other way.
	d.sim.EndDrag(-s.Velocity * d.sensitivity)

	if s.Moved {
		d.suppressUntil = ev.Time + ClickSuppressWindow
	}
	return true
}

// Cancel ends the session like Up.
func (d *DragController) Cancel(ev PointerEvent) bool {
	return d.Up(ev)
}

// SuppressClick reports whether a click arriving at now (ms) should be swallowed.
func (d *DragController) SuppressClick(now float64) bool {
	return d.session != nil || now < d.suppressUntil
}

// Release drops a live session without a pointer event, releasing capture. The loop
// calls it on unmount.
func (d *DragController) Release() {
	s := d.session
	if s == nil {
		return
	}
	if d.capture != nil {
		d.capture.Release(s.PointerID)
	}
	d.session = nil
	d.sim.EndDrag(0)
}
