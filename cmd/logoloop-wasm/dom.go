//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/Zachkp/portfolio/internal/frame"
	"github.com/Zachkp/portfolio/internal/marquee"
)

var (
	jsGlobal   = js.Global()
	jsWindow   = jsGlobal.Get("window")
	jsDocument = jsGlobal.Get("document")
)

// listen adds an event listener and returns a function that removes it and
// releases the Go callback.
func listen(target js.Value, event string, capture bool, fn func(ev js.Value)) func() {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 {
			fn(args[0])
		}
		return nil
	})
	target.Call("addEventListener", event, cb, capture)
	return func() {
		target.Call("removeEventListener", event, cb, capture)
		cb.Release()
	}
}

// safeCall swallows the JS exceptions some DOM calls throw on detached nodes.
func safeCall(v js.Value, method string, args ...any) {
	defer func() { recover() }()
	v.Call(method, args...)
}

func now() float64 {
	return jsGlobal.Get("performance").Call("now").Float()
}

// rafScheduler runs frame callbacks on requestAnimationFrame.
type rafScheduler struct {
	next    frame.Handle
	pending map[frame.Handle]rafRequest
}

type rafRequest struct {
	id js.Value
	fn js.Func
}

func newRAFScheduler() *rafScheduler {
	return &rafScheduler{pending: make(map[frame.Handle]rafRequest)}
}

func (s *rafScheduler) Request(cb frame.Callback) frame.Handle {
	s.next++
	h := s.next
	var fn js.Func
	fn = js.FuncOf(func(this js.Value, args []js.Value) any {
		delete(s.pending, h)
		fn.Release()
		cb(args[0].Float())
		return nil
	})
	s.pending[h] = rafRequest{id: jsWindow.Call("requestAnimationFrame", fn), fn: fn}
	return h
}

func (s *rafScheduler) Cancel(h frame.Handle) {
	req, ok := s.pending[h]
	if !ok {
		return
	}
	delete(s.pending, h)
	jsWindow.Call("cancelAnimationFrame", req.id)
	req.fn.Release()
}

// domSurface measures the root container and the first sequence copy.
type domSurface struct {
	root, track js.Value
}

func (s domSurface) ContainerWidth() float64 {
	return s.root.Get("clientWidth").Float()
}

func (s domSurface) SequenceWidth() float64 {
	seq := s.track.Get("firstElementChild")
	if seq.IsNull() {
		return 0
	}
	return seq.Call("getBoundingClientRect").Get("width").Float()
}

// resizeObserver wraps the browser's ResizeObserver. When the browser lacks one it
// listens for window resizes instead.
type resizeObserver struct{}

func (resizeObserver) Observe(s marquee.Surface, onResize func()) func() {
	ds := s.(domSurface)
	ctor := jsGlobal.Get("ResizeObserver")
	if ctor.IsUndefined() {
		return listen(jsWindow, "resize", false, func(js.Value) { onResize() })
	}

	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		onResize()
		return nil
	})
	obs := ctor.New(cb)
	obs.Call("observe", ds.root)
	if seq := ds.track.Get("firstElementChild"); !seq.IsNull() {
		obs.Call("observe", seq)
	}
	return func() {
		obs.Call("disconnect")
		cb.Release()
	}
}

// pointerCapture routes pointer capture to the loop's root element.
type pointerCapture struct {
	el js.Value
}

func (p pointerCapture) Capture(id int) { safeCall(p.el, "setPointerCapture", id) }
func (p pointerCapture) Release(id int) { safeCall(p.el, "releasePointerCapture", id) }

// domPainter writes the loop state to the track element.
type domPainter struct {
	cfg    marquee.Config
	mobile bool
	root   js.Value
	track  js.Value
}

func (p *domPainter) Paint(offset float64) {
	p.track.Get("style").Set("transform", marquee.Transform(offset))
}

// SetCopies clones or removes sequence copies until the track holds n. Clones are
// hidden from assistive technology; only the first copy keeps its list roles.
func (p *domPainter) SetCopies(n int) {
	children := p.track.Get("children")
	first := p.track.Get("firstElementChild")
	if first.IsNull() {
		return
	}
	for children.Get("length").Int() < n {
		clone := first.Call("cloneNode", true)
		clone.Call("removeAttribute", "role")
		clone.Call("setAttribute", "aria-hidden", "true")
		items := clone.Call("querySelectorAll", "[role=listitem]")
		for i := 0; i < items.Get("length").Int(); i++ {
			items.Call("item", i).Call("removeAttribute", "role")
		}
		p.track.Call("appendChild", clone)
	}
	for children.Get("length").Int() > max(n, 1) {
		p.track.Call("removeChild", p.track.Get("lastElementChild"))
	}
}

func (p *domPainter) SetDragging(dragging bool) {
	p.root.Get("classList").Call("toggle", "logoloop--dragging", dragging)
	p.root.Get("style").Set("touchAction", marquee.TouchAction(p.cfg, dragging, p.mobile))
}

func deviceHints() marquee.DeviceHints {
	nav := jsGlobal.Get("navigator")
	h := marquee.DeviceHints{
		ViewportWidth: jsWindow.Get("innerWidth").Float(),
		UserAgent:     nav.Get("userAgent").String(),
		TouchEvents:   !jsWindow.Get("ontouchstart").IsUndefined(),
	}
	if mtp := nav.Get("maxTouchPoints"); mtp.Type() == js.TypeNumber {
		h.MaxTouchPoints = mtp.Int()
	}
	return h
}

func pointerEvent(ev js.Value) marquee.PointerEvent {
	primary := ev.Get("isPrimary").Truthy()
	if ev.Get("pointerType").String() == "mouse" && ev.Get("button").Int() > 0 {
		primary = false
	}
	return marquee.PointerEvent{
		ID:      ev.Get("pointerId").Int(),
		X:       ev.Get("clientX").Float(),
		Primary: primary,
		Time:    ev.Get("timeStamp").Float(),
	}
}

func rect(el js.Value) (left, top, width, height float64) {
	r := el.Call("getBoundingClientRect")
	return r.Get("left").Float(), r.Get("top").Float(), r.Get("width").Float(), r.Get("height").Float()
}
