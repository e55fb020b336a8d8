package marquee

import (
	"math"

	"github.com/Zachkp/portfolio/internal/frame"
)

// SmoothTau is the time constant, in seconds, of the velocity easing.
const SmoothTau = 0.25

// State is the simulator's conceptual mode.
type State int

const (
	Scrolling State = iota
	HoverPaused
	Dragging
	InertiaDecay
)

func (s State) String() string {
	switch s {
	case Scrolling:
		return "scrolling"
	case HoverPaused:
		return "hover-paused"
	case Dragging:
		return "dragging"
	case InertiaDecay:
		return "inertia-decay"
	}
	return "unknown"
}

// Simulator integrates the loop's velocity into a wrapped scroll offset. It is driven
// by Tick once per frame and by the drag controller between frames; both run on the
// host's single event loop.
type Simulator struct {
	target          float64
	pauseOnHover    bool
	stopOnDrag      bool
	decay           float64
	maxDragVelocity float64

	seqWidth float64
	offset   float64
	velocity float64
	inertia  bool
	hovered  bool
	dragging bool
}

// NewSimulator builds a simulator for cfg, at rest with offset 0.
func NewSimulator(cfg Config) *Simulator {
	return &Simulator{
		target:          cfg.TargetVelocity(),
		pauseOnHover:    cfg.PauseOnHover,
		stopOnDrag:      cfg.StopOnDrag,
		decay:           cfg.InertiaDecay,
		maxDragVelocity: cfg.MaxDragVelocity,
	}
}

func (s *Simulator) Offset() float64        { return s.offset }
func (s *Simulator) Velocity() float64      { return s.velocity }
func (s *Simulator) SequenceWidth() float64 { return s.seqWidth }
func (s *Simulator) Hovered() bool          { return s.hovered }
func (s *Simulator) Dragging() bool         { return s.dragging }

// State reports the current mode.
func (s *Simulator) State() State {
	switch {
	case s.dragging:
		return Dragging
	case s.inertia:
		return InertiaDecay
	case s.pauseOnHover && s.hovered:
		return HoverPaused
	}
	return Scrolling
}

// SetSequenceWidth installs a newly measured sequence width and re-wraps the offset.
// Non-positive widths are ignored.
func (s *Simulator) SetSequenceWidth(w float64) {
	if w <= 0 {
		return
	}
	s.seqWidth = w
	s.offset = s.wrap(s.offset)
}

// SetHovered records whether the pointer is over the loop.
func (s *Simulator) SetHovered(h bool) {
	s.hovered = h
}

// Target returns the velocity the simulator is currently easing toward.
func (s *Simulator) Target() float64 {
	t, _ := s.resolveTarget()
	return t
}

// resolveTarget reports the target and whether it was forced to zero by a drag or a
// hover pause.
func (s *Simulator) resolveTarget() (float64, bool) {
	switch {
	case s.dragging && s.stopOnDrag:
		return 0, true
	case s.pauseOnHover && s.hovered && !s.dragging:
		return 0, true
	}
	return s.target, false
}

// Tick advances the simulation by dt seconds (clamped to frame.MaxStep) and returns
// the new offset.
func (s *Simulator) Tick(dt float64) float64 {
	dt = frame.Clamp(dt)

	target, forced := s.resolveTarget()
	if forced {
		s.inertia = false
	}

	if !s.dragging && s.inertia {
		s.velocity *= math.Pow(s.decay, dt)
		threshold := math.Abs(target)*0.05 + 10
		if math.Abs(s.velocity-target) < threshold || math.Abs(s.velocity) < 10 {
			s.inertia = false
		}
	}

	if !s.dragging && !s.inertia {
		ease := 1 - math.Exp(-dt/SmoothTau)
		s.velocity += (target - s.velocity) * ease
	}

	if !s.dragging && s.seqWidth > 0 {
		s.offset = s.wrap(s.offset + s.velocity*dt)
	}
	return s.offset
}

// BeginDrag hard-stops the velocity so content does not coast under the pointer.
func (s *Simulator) BeginDrag() {
	s.dragging = true
	s.hovered = false
	s.velocity = 0
	s.inertia = false
}

// DragTo sets the offset directly, wrapped.
func (s *Simulator) DragTo(offset float64) float64 {
	if s.seqWidth > 0 {
		s.offset = s.wrap(offset)
	}
	return s.offset
}

// EndDrag finishes a drag. With stopOnDrag the loop restarts from rest and eases back
// to speed; otherwise the release velocity, capped at the configured maximum, carries
// into inertia decay.
func (s *Simulator) EndDrag(releaseVelocity float64) {
	s.dragging = false
	if s.stopOnDrag || releaseVelocity == 0 {
		s.velocity = 0
		s.inertia = false
		return
	}
	if s.maxDragVelocity > 0 {
		releaseVelocity = math.Max(-s.maxDragVelocity, math.Min(s.maxDragVelocity, releaseVelocity))
	}
	s.velocity = releaseVelocity
	s.inertia = true
}

func (s *Simulator) wrap(v float64) float64 {
	if s.seqWidth <= 0 {
		return v
	}
	v = math.Mod(v, s.seqWidth)
	if v < 0 {
		v += s.seqWidth
	}
	// math.Mod of a tiny negative value can round up to exactly seqWidth.
	if v >= s.seqWidth {
		v = 0
	}
	return v
}
