package marquee

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// Props is everything the track needs to render one frame of the loop.
type Props struct {
	ID       string
	Config   Config
	Items    []Item
	Layout   Layout
	Offset   float64
	Mobile   bool
	Dragging bool
	Class    string
	// Bootstrap, when set, is serialized into a data-logoloop attribute for the
	// browser runtime to pick up.
	Bootstrap string
}

// Transform is the CSS translation that paints offset on the track.
func Transform(offset float64) string {
	return "translate3d(" + strconv.FormatFloat(-offset, 'f', -1, 64) + "px, 0, 0)"
}

// RootClass composes the root element's class list.
func RootClass(cfg Config, dragging, mobile bool, extra string) string {
	classes := []string{"logoloop"}
	if cfg.FadeOut {
		classes = append(classes, "logoloop--fade")
	}
	if cfg.ScaleOnHover {
		classes = append(classes, "logoloop--scale-hover")
	}
	if cfg.Draggable && !mobile {
		classes = append(classes, "logoloop--draggable")
	}
	if dragging {
		classes = append(classes, "logoloop--dragging")
	}
	if extra != "" {
		classes = append(classes, extra)
	}
	return strings.Join(classes, " ")
}

// TouchAction picks the touch-action style: native scrolling on mobile, none while a
// drag is live, horizontal panning otherwise.
func TouchAction(cfg Config, dragging, mobile bool) string {
	switch {
	case mobile:
		return "manipulation"
	case !cfg.Draggable:
		return "auto"
	case dragging:
		return "none"
	}
	return "pan-x"
}

func rootStyle(p Props) string {
	width := "100%"
	if p.Config.Width.Value > 0 {
		width = p.Config.Width.CSS()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "width: %s; touch-action: %s; ", width, TouchAction(p.Config, p.Dragging, p.Mobile))
	fmt.Fprintf(&b, "--logoloop-gap: %spx; --logoloop-logoHeight: %spx;",
		strconv.FormatFloat(p.Config.Gap, 'f', -1, 64),
		strconv.FormatFloat(p.Config.LogoHeight, 'f', -1, 64))
	if p.Config.FadeOutColor != "" {
		fmt.Fprintf(&b, " --logoloop-fadeColor: %s;", p.Config.FadeOutColor)
	}
	return b.String()
}

// Track renders the loop: a labelled region holding Layout.Copies copies of the item
// sequence. Only the first copy is exposed to assistive technology.
func Track(p Props) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		copies := max(p.Layout.Copies, MinCopies)
		label := p.Config.AriaLabel
		if label == "" {
			label = DefaultConfig().AriaLabel
		}

		var b strings.Builder
		b.WriteString(`<div`)
		if p.ID != "" {
			attr(&b, "id", p.ID)
		}
		attr(&b, "class", RootClass(p.Config, p.Dragging, p.Mobile, p.Class))
		attr(&b, "style", rootStyle(p))
		attr(&b, "role", "region")
		attr(&b, "aria-label", label)
		if p.Bootstrap != "" {
			attr(&b, "data-logoloop", p.Bootstrap)
		}
		b.WriteString(`><div class="logoloop__track"`)
		attr(&b, "style", "transform: "+Transform(p.Offset))
		b.WriteString(`>`)
		for i := 0; i < copies; i++ {
			writeList(&b, p.Items, i)
		}
		b.WriteString(`</div></div>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeList(b *strings.Builder, items []Item, copyIndex int) {
	b.WriteString(`<ul class="logoloop__list"`)
	if copyIndex == 0 {
		attr(b, "role", "list")
	} else {
		attr(b, "aria-hidden", "true")
	}
	b.WriteString(`>`)
	for _, it := range items {
		b.WriteString(`<li class="logoloop__item"`)
		if copyIndex == 0 {
			attr(b, "role", "listitem")
		}
		b.WriteString(`>`)
		writeItem(b, it)
		if it.Title != "" {
			b.WriteString(`<div class="logoloop__tooltip">`)
			b.WriteString(templ.EscapeString(it.Title))
			b.WriteString(`</div>`)
		}
		b.WriteString(`</li>`)
	}
	b.WriteString(`</ul>`)
}

func writeItem(b *strings.Builder, it Item) {
	if it.Href != "" {
		label := it.Label()
		if label == "" {
			label = "logo link"
		}
		b.WriteString(`<a class="logoloop__link"`)
		attr(b, "href", string(templ.URL(it.Href)))
		attr(b, "aria-label", label)
		attr(b, "target", "_blank")
		attr(b, "rel", "noreferrer noopener")
		if it.Title != "" {
			attr(b, "title", it.Title)
		}
		b.WriteString(`>`)
		writeContent(b, it)
		b.WriteString(`</a>`)
		return
	}
	b.WriteString(`<div class="logoloop__wrapper"`)
	if it.Title != "" {
		attr(b, "title", it.Title)
	}
	b.WriteString(`>`)
	writeContent(b, it)
	b.WriteString(`</div>`)
}

func writeContent(b *strings.Builder, it Item) {
	if !it.IsImage() {
		b.WriteString(`<span class="logoloop__node"`)
		if it.Href != "" && it.AriaLabel == "" {
			attr(b, "aria-hidden", "true")
		}
		b.WriteString(`>`)
		b.WriteString(templ.EscapeString(it.Node))
		b.WriteString(`</span>`)
		return
	}
	b.WriteString(`<img`)
	attr(b, "src", string(templ.URL(it.Src)))
	if it.SrcSet != "" {
		attr(b, "srcset", it.SrcSet)
	}
	if it.Sizes != "" {
		attr(b, "sizes", it.Sizes)
	}
	if it.Width > 0 {
		attr(b, "width", strconv.Itoa(it.Width))
	}
	if it.Height > 0 {
		attr(b, "height", strconv.Itoa(it.Height))
	}
	attr(b, "alt", it.Alt)
	if it.Title != "" {
		attr(b, "title", it.Title)
	}
	attr(b, "loading", "lazy")
	attr(b, "decoding", "async")
	attr(b, "draggable", "false")
	b.WriteString(`>`)
}

func attr(b *strings.Builder, name, value string) {
	b.WriteString(" ")
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(templ.EscapeString(value))
	b.WriteString(`"`)
}
