package marquee

import "github.com/Zachkp/portfolio/internal/frame"

// Painter applies the loop's state to the host's track.
type Painter interface {
	Paint(offset float64)
	SetCopies(n int)
	SetDragging(dragging bool)
}

// Host bundles the capabilities a loop is mounted on. Resize and Capture may be nil.
type Host struct {
	Surface   Surface
	Scheduler frame.Scheduler
	Painter   Painter
	Resize    ResizeObserver
	Capture   PointerCapture
	// Images are keys of the images inside the first sequence copy.
	Images []string
	Device DeviceHints
}

// Loop is a mounted marquee: measurer, simulator and drag controller driven by the
// host's frame scheduler.
type Loop struct {
	cfg  Config
	host Host

	sim      *Simulator
	drag     *DragController
	measurer *Measurer
	gate     *ImageGate
	clock    frame.Clock

	mobile     bool
	mounted    bool
	handle     frame.Handle
	disconnect func()
	poller     *PollingObserver
}

// New builds an unmounted loop.
func New(cfg Config, host Host) *Loop {
	sim := NewSimulator(cfg)
	mobile := IsMobile(host.Device)
	return &Loop{
		cfg:      cfg,
		host:     host,
		sim:      sim,
		drag:     NewDragController(sim, cfg, host.Capture, mobile),
		measurer: NewMeasurer(host.Surface),
		mobile:   mobile,
	}
}

func (l *Loop) Simulator() *Simulator    { return l.sim }
func (l *Loop) Drag() *DragController    { return l.drag }
func (l *Loop) Layout() Layout           { return l.measurer.Layout() }
func (l *Loop) Mounted() bool            { return l.mounted }
func (l *Loop) Mobile() bool             { return l.mobile }
func (l *Loop) Config() Config           { return l.cfg }
func (l *Loop) Poller() *PollingObserver { return l.poller }

// Mount starts resize observation, image tracking and the frame loop.
func (l *Loop) Mount() {
	if l.mounted {
		return
	}
	l.mounted = true
	l.host.Painter.SetCopies(l.measurer.Layout().Copies)
	l.gate = NewImageGate(l.host.Images, l.Remeasure)
	l.disconnect, l.poller = Watch(l.host.Resize, l.host.Surface, l.Remeasure)
	l.handle = l.host.Scheduler.Request(l.frame)
}

// Unmount cancels the pending frame, releases any captured pointer and stops resize
// observation.
func (l *Loop) Unmount() {
	if !l.mounted {
		return
	}
	l.mounted = false
	l.host.Scheduler.Cancel(l.handle)
	l.clock.Reset()
	if l.drag.Active() {
		l.drag.Release()
		l.host.Painter.SetDragging(false)
	}
	if l.disconnect != nil {
		l.disconnect()
		l.disconnect = nil
	}
	l.poller = nil
}

// ImageSettled reports that an image finished loading or failed.
func (l *Loop) ImageSettled(key string) {
	if l.gate != nil {
		l.gate.Settle(key)
	}
}

// ImagesPending reports how many images have not settled; zero before Mount.
func (l *Loop) ImagesPending() int {
	if l.gate == nil {
		return 0
	}
	return l.gate.Pending()
}

// Remeasure re-reads the surface and repaints when the layout changed.
func (l *Loop) Remeasure() {
	layout, changed := l.measurer.Measure()
	if !changed {
		return
	}
	l.sim.SetSequenceWidth(layout.SequenceWidth)
	l.host.Painter.SetCopies(layout.Copies)
	l.host.Painter.Paint(l.sim.Offset())
}

func (l *Loop) frame(ts float64) {
	if !l.mounted {
		return
	}
	dt := l.clock.Advance(ts)
	if l.poller != nil {
		l.poller.Poll()
	}
	offset := l.sim.Tick(dt)
	if l.sim.SequenceWidth() > 0 {
		l.host.Painter.Paint(offset)
	}
	l.handle = l.host.Scheduler.Request(l.frame)
}

// PointerEnter marks the loop hovered when pause-on-hover applies.
func (l *Loop) PointerEnter() {
	if l.cfg.PauseOnHover && !l.sim.Dragging() {
		l.sim.SetHovered(true)
	}
}

// PointerLeave clears the hover state.
func (l *Loop) PointerLeave() {
	if l.cfg.PauseOnHover {
		l.sim.SetHovered(false)
	}
}

func (l *Loop) PointerDown(ev PointerEvent) bool {
	if !l.drag.Down(ev) {
		return false
	}
	l.host.Painter.SetDragging(true)
	return true
}

func (l *Loop) PointerMove(ev PointerEvent) bool {
	if !l.drag.Move(ev) {
		return false
	}
	l.host.Painter.Paint(l.sim.Offset())
	return true
}

func (l *Loop) PointerUp(ev PointerEvent) bool {
	if !l.drag.Up(ev) {
		return false
	}
	l.host.Painter.SetDragging(false)
	return true
}

func (l *Loop) PointerCancel(ev PointerEvent) bool {
	return l.PointerUp(ev)
}

// Click reports whether a click at now (ms) should be swallowed because it ends a
// drag. Mobile hosts never suppress.
func (l *Loop) Click(now float64) bool {
	if !l.drag.Enabled() {
		return false
	}
	return l.drag.SuppressClick(now)
}
