package marquee

import (
	"math"

	"github.com/zyedidia/generic/mapset"
)

const (
	// MinCopies is the least number of sequence copies mounted on the track.
	MinCopies = 2
	// CopyHeadroom is the number of extra copies beyond what covers the container.
	CopyHeadroom = 2
)

// CopyCount returns how many copies of a sequence are needed to tile the container
// with headroom. It returns MinCopies when the sequence has no width yet.
func CopyCount(containerWidth, sequenceWidth float64) int {
	if sequenceWidth <= 0 {
		return MinCopies
	}
	if containerWidth < 0 {
		containerWidth = 0
	}
	n := int(math.Ceil(containerWidth/sequenceWidth)) + CopyHeadroom
	return max(MinCopies, n)
}

// Layout is the derived geometry the simulator and track consume.
type Layout struct {
	SequenceWidth float64
	Copies        int
}

// Surface exposes the two widths the measurer reads from the host.
type Surface interface {
	ContainerWidth() float64
	SequenceWidth() float64
}

// Measurer recomputes the Layout from a Surface.
type Measurer struct {
	surface Surface
	layout  Layout
}

// NewMeasurer returns a measurer reading s. Its layout starts with no sequence width
// and MinCopies copies.
func NewMeasurer(s Surface) *Measurer {
	return &Measurer{surface: s, layout: Layout{Copies: MinCopies}}
}

// Layout returns the last measured layout.
func (m *Measurer) Layout() Layout {
	return m.layout
}

// Measure reads the surface and updates the layout. A zero sequence width leaves the
// previous layout in place. changed reports whether the layout differs from before.
func (m *Measurer) Measure() (l Layout, changed bool) {
	seq := m.surface.SequenceWidth()
	if seq <= 0 {
		return m.layout, false
	}
	next := Layout{
		SequenceWidth: math.Ceil(seq),
		Copies:        CopyCount(m.surface.ContainerWidth(), seq),
	}
	changed = next != m.layout
	m.layout = next
	return next, changed
}

// ImageGate holds the first measurement back until every image in the sequence has
// either loaded or failed.
type ImageGate struct {
	pending mapset.Set[string]
	onReady func()
	fired   bool
}

// NewImageGate tracks the given image keys and calls onReady once all have settled.
// With no images onReady runs immediately.
func NewImageGate(keys []string, onReady func()) *ImageGate {
	g := &ImageGate{pending: mapset.New[string](), onReady: onReady}
	for _, k := range keys {
		g.pending.Put(k)
	}
	g.check()
	return g
}

// Settle marks an image as loaded or errored. Unknown or repeated keys are ignored.
func (g *ImageGate) Settle(key string) {
	if !g.pending.Has(key) {
		return
	}
	g.pending.Remove(key)
	g.check()
}

// Pending reports how many images have not settled.
func (g *ImageGate) Pending() int {
	return g.pending.Size()
}

// Ready reports whether the gate has released.
func (g *ImageGate) Ready() bool {
	return g.fired
}

func (g *ImageGate) check() {
	if g.fired || g.pending.Size() > 0 {
		return
	}
	g.fired = true
	if g.onReady != nil {
		g.onReady()
	}
}

// ResizeObserver is the host's resize notification capability.
type ResizeObserver interface {
	Observe(s Surface, onResize func()) (disconnect func())
}

// PollingObserver stands in for hosts without resize notifications. It compares the
// surface's container width each time Poll runs; the frame loop polls once per frame.
type PollingObserver struct {
	watches []*pollWatch
}

type pollWatch struct {
	surface  Surface
	onResize func()
	last     float64
	active   bool
}

func (p *PollingObserver) Observe(s Surface, onResize func()) func() {
	w := &pollWatch{surface: s, onResize: onResize, last: s.ContainerWidth(), active: true}
	p.watches = append(p.watches, w)
	return func() {
		w.active = false
		p.prune()
	}
}

// Poll fires the callback of every watched surface whose width changed.
func (p *PollingObserver) Poll() {
	for _, w := range p.watches {
		if !w.active {
			continue
		}
		if cur := w.surface.ContainerWidth(); cur != w.last {
			w.last = cur
			w.onResize()
		}
	}
}

func (p *PollingObserver) prune() {
	kept := p.watches[:0]
	for _, w := range p.watches {
		if w.active {
			kept = append(kept, w)
		}
	}
	p.watches = kept
}

// Watch subscribes remeasure to resizes of s and measures once immediately. A nil
// observer falls back to a PollingObserver, which is returned so the caller can poll
// it; otherwise the returned poller is nil.
func Watch(obs ResizeObserver, s Surface, remeasure func()) (disconnect func(), poller *PollingObserver) {
	if obs == nil {
		poller = &PollingObserver{}
		obs = poller
	}
	disconnect = obs.Observe(s, remeasure)
	remeasure()
	return disconnect, poller
}
