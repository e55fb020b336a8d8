//go:build js && wasm

// Command logoloop-wasm drives the page's server-rendered logo loops and motion
// effects from WebAssembly.
package main

import (
	"log"
	"syscall/js"
)

type app struct {
	sched *rafScheduler
	anim  *animator
	loops []*loopBinding
}

func forEach(selector string, fn func(el js.Value)) {
	list := jsDocument.Call("querySelectorAll", selector)
	for i := 0; i < list.Get("length").Int(); i++ {
		fn(list.Call("item", i))
	}
}

// scan binds every element not yet bound and drops loops whose root has left the
// document, as happens when htmx swaps a fragment in.
func (a *app) scan() {
	kept := a.loops[:0]
	for _, b := range a.loops {
		if b.connected() {
			kept = append(kept, b)
			continue
		}
		b.unbind()
	}
	a.loops = kept

	forEach("[data-logoloop]:not([data-logoloop-bound])", func(el js.Value) {
		if b := bindLoop(el, a.sched); b != nil {
			a.loops = append(a.loops, b)
		}
	})
	forEach("[data-magnetic]:not([data-motion-bound])", func(el js.Value) {
		el.Get("dataset").Set("motionBound", "true")
		bindMagnetic(el, a.anim)
	})
	forEach("[data-tilt]:not([data-motion-bound])", func(el js.Value) {
		el.Get("dataset").Set("motionBound", "true")
		bindTilt(el, a.anim)
	})
	forEach("[data-typewriter]:not([data-motion-bound])", func(el js.Value) {
		el.Get("dataset").Set("motionBound", "true")
		bindTypewriter(el, a.anim)
	})
}

func main() {
	sched := newRAFScheduler()
	a := &app{sched: sched, anim: &animator{sched: sched}}

	reduced := jsWindow.Call("matchMedia", "(prefers-reduced-motion: reduce)").Get("matches").Bool()
	if reduced {
		log.Println("logoloop: reduced motion requested, leaving the page static")
		return
	}

	a.scan()
	listen(jsDocument, "htmx:afterSwap", false, func(js.Value) { a.scan() })
	log.Printf("logoloop: bound %d loop(s) at %.0fms", len(a.loops), now())

	select {}
}
