//go:build js && wasm

package main

import (
	"encoding/json"
	"syscall/js"

	"github.com/Zachkp/portfolio/internal/frame"
	"github.com/Zachkp/portfolio/internal/motion"
)

// animated is anything the animator steps once per frame. dt is the clamped step
// in seconds, ms the raw time since the previous frame. It reports whether it
// still needs frames.
type animated interface {
	tick(dt, ms float64) bool
}

// animator runs one frame loop for all motion bindings and idles while every
// binding has settled.
type animator struct {
	sched   frame.Scheduler
	clock   frame.Clock
	items   []animated
	running bool
	last    float64
}

func (a *animator) add(x animated) {
	a.items = append(a.items, x)
	a.wake()
}

func (a *animator) wake() {
	if a.running {
		return
	}
	a.running = true
	a.clock.Reset()
	a.last = -1
	a.sched.Request(a.frame)
}

func (a *animator) frame(ts float64) {
	dt := a.clock.Advance(ts)
	ms := 0.0
	if a.last >= 0 && ts > a.last {
		ms = ts - a.last
	}
	a.last = ts

	active := false
	for _, x := range a.items {
		if x.tick(dt, ms) {
			active = true
		}
	}
	if !active {
		a.running = false
		return
	}
	a.sched.Request(a.frame)
}

func clientPoint(ev js.Value) motion.Point {
	return motion.Point{X: ev.Get("clientX").Float(), Y: ev.Get("clientY").Float()}
}

func elementRect(el js.Value) motion.Rect {
	left, top, w, h := rect(el)
	return motion.Rect{Left: left, Top: top, Width: w, Height: h}
}

type magneticBinding struct {
	el js.Value
	m  *motion.Magnetic
}

func bindMagnetic(el js.Value, a *animator) {
	b := &magneticBinding{el: el, m: motion.NewMagnetic()}
	listen(el, "mouseenter", false, func(js.Value) { b.m.Enter(); a.wake() })
	listen(el, "mousemove", false, func(ev js.Value) {
		b.m.Move(clientPoint(ev), elementRect(el))
		a.wake()
	})
	listen(el, "mouseleave", false, func(js.Value) { b.m.Leave(); a.wake() })
	a.add(b)
}

func (b *magneticBinding) tick(dt, _ float64) bool {
	b.m.Tick(dt)
	b.el.Get("style").Set("transform", b.m.Transform())
	return !b.m.Settled()
}

type tiltBinding struct {
	el js.Value
	t  *motion.Tilt
}

func bindTilt(el js.Value, a *animator) {
	b := &tiltBinding{el: el, t: motion.NewTilt()}
	el.Get("style").Set("transformStyle", "preserve-3d")
	listen(el, "mouseenter", false, func(js.Value) { b.t.Enter(); a.wake() })
	listen(el, "mousemove", false, func(ev js.Value) {
		b.t.Move(clientPoint(ev), elementRect(el))
		a.wake()
	})
	listen(el, "mouseleave", false, func(js.Value) { b.t.Leave(); a.wake() })
	a.add(b)
}

func (b *tiltBinding) tick(dt, _ float64) bool {
	b.t.Tick(dt)
	b.el.Get("style").Set("transform", b.t.Transform())
	return !b.t.Settled()
}

type typewriterBinding struct {
	el    js.Value
	tw    *motion.Typewriter
	shown string
}

func bindTypewriter(el js.Value, a *animator) {
	var words []string
	if err := json.Unmarshal([]byte(el.Get("dataset").Get("typewriter").String()), &words); err != nil || len(words) == 0 {
		return
	}
	b := &typewriterBinding{el: el, tw: motion.NewTypewriter(motion.DefaultTypewriterConfig(words...)), shown: "\x00"}
	a.add(b)
}

func (b *typewriterBinding) tick(_, ms float64) bool {
	b.tw.Advance(ms)
	if text := b.tw.Text(); text != b.shown {
		b.shown = text
		b.el.Set("textContent", text)
	}
	return b.tw.Phase() != motion.Stopped
}
