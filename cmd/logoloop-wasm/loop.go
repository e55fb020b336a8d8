//go:build js && wasm

package main

import (
	"encoding/json"
	"log"
	"strconv"
	"syscall/js"

	"github.com/Zachkp/portfolio/internal/frame"
	"github.com/Zachkp/portfolio/internal/marquee"
)

// loopBinding is one server-rendered [data-logoloop] element driven by a Loop.
type loopBinding struct {
	root      js.Value
	loop      *marquee.Loop
	listeners []func()
}

func parseLoopConfig(raw string) marquee.Config {
	cfg := marquee.DefaultConfig()
	if raw == "" {
		return cfg
	}
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		log.Printf("logoloop: ignoring bad config: %v", err)
		return marquee.DefaultConfig()
	}
	return cfg
}

func bindLoop(root js.Value, sched frame.Scheduler) *loopBinding {
	track := root.Call("querySelector", ".logoloop__track")
	if track.IsNull() {
		return nil
	}
	cfg := parseLoopConfig(root.Get("dataset").Get("logoloop").String())
	device := deviceHints()
	mobile := marquee.IsMobile(device)

	var images []string
	var imgs []js.Value
	if first := track.Get("firstElementChild"); !first.IsNull() {
		list := first.Call("querySelectorAll", "img")
		for i := 0; i < list.Get("length").Int(); i++ {
			images = append(images, "img-"+strconv.Itoa(i))
			imgs = append(imgs, list.Call("item", i))
		}
	}

	surface := domSurface{root: root, track: track}
	loop := marquee.New(cfg, marquee.Host{
		Surface:   surface,
		Scheduler: sched,
		Painter:   &domPainter{cfg: cfg, mobile: mobile, root: root, track: track},
		Resize:    resizeObserver{},
		Capture:   pointerCapture{el: root},
		Images:    images,
		Device:    device,
	})
	b := &loopBinding{root: root, loop: loop}
	root.Get("dataset").Set("logoloopBound", "true")

	loop.Mount()

	for i, img := range imgs {
		key := images[i]
		if img.Get("complete").Bool() {
			loop.ImageSettled(key)
			continue
		}
		settle := func(js.Value) { loop.ImageSettled(key) }
		b.listeners = append(b.listeners,
			listen(img, "load", false, settle),
			listen(img, "error", false, settle))
	}

	b.listeners = append(b.listeners,
		listen(root, "mouseenter", false, func(js.Value) { loop.PointerEnter() }),
		listen(root, "mouseleave", false, func(js.Value) { loop.PointerLeave() }),
		listen(root, "pointerdown", false, func(ev js.Value) {
			if loop.PointerDown(pointerEvent(ev)) {
				ev.Call("preventDefault")
			}
		}),
		listen(root, "pointermove", false, func(ev js.Value) {
			if loop.PointerMove(pointerEvent(ev)) {
				ev.Call("preventDefault")
			}
		}),
		listen(root, "pointerup", false, func(ev js.Value) { loop.PointerUp(pointerEvent(ev)) }),
		listen(root, "pointercancel", false, func(ev js.Value) { loop.PointerCancel(pointerEvent(ev)) }),
		listen(root, "click", true, func(ev js.Value) {
			if loop.Click(ev.Get("timeStamp").Float()) {
				ev.Call("preventDefault")
				ev.Call("stopPropagation")
			}
		}),
		listen(root, "dragstart", false, func(ev js.Value) {
			if loop.Drag().Enabled() {
				ev.Call("preventDefault")
			}
		}),
	)
	return b
}

func (b *loopBinding) connected() bool {
	return b.root.Get("isConnected").Bool()
}

func (b *loopBinding) unbind() {
	b.loop.Unmount()
	for _, remove := range b.listeners {
		remove()
	}
	b.listeners = nil
}
