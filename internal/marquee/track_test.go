package marquee

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderTrack(t *testing.T, p Props) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, Track(p).Render(context.Background(), &b))
	return b.String()
}

func TestTrackAccessibilityContract(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AriaLabel = `Skills & "tools"`
	html := renderTrack(t, Props{
		Config: cfg,
		Items:  []Item{{Node: "Go"}, {Node: "Python", Title: "Python 3"}},
		Layout: Layout{SequenceWidth: 200, Copies: 4},
		Offset: 12.5,
	})

	assert.Contains(t, html, `role="region"`)
	assert.Contains(t, html, `aria-label="Skills &amp; &#34;tools&#34;"`)
	assert.Equal(t, 4, strings.Count(html, `<ul class="logoloop__list"`))
	assert.Equal(t, 1, strings.Count(html, `role="list"`))
	assert.Equal(t, 3, strings.Count(html, `<ul class="logoloop__list" aria-hidden="true">`))
	assert.Equal(t, 2, strings.Count(html, `role="listitem"`), "only the canonical copy has list items")
	assert.Contains(t, html, `transform: translate3d(-12.5px, 0, 0)`)
	assert.Contains(t, html, `<div class="logoloop__tooltip">Python 3</div>`)
}

func TestTrackNeverRendersFewerThanMinCopies(t *testing.T) {
	html := renderTrack(t, Props{Config: DefaultConfig(), Items: []Item{{Node: "x"}}})
	assert.Equal(t, MinCopies, strings.Count(html, `<ul class="logoloop__list"`))
}

func TestTrackItems(t *testing.T) {
	html := renderTrack(t, Props{
		Config: DefaultConfig(),
		Items: []Item{
			{Src: "/images/go.webp", Alt: "Go gopher", Width: 40, Height: 28, Href: "https://go.dev"},
			{Node: "<b>raw</b>", Href: "javascript:alert(1)"},
		},
		Layout: Layout{Copies: 2},
	})

	assert.Contains(t, html, `aria-label="Go gopher"`)
	assert.Contains(t, html, `rel="noreferrer noopener"`)
	assert.Contains(t, html, `loading="lazy"`)
	assert.Contains(t, html, `draggable="false"`)
	assert.Contains(t, html, `&lt;b&gt;raw&lt;/b&gt;`)
	assert.Contains(t, html, `aria-label="logo link"`, "unlabelled links get a fallback name")
	assert.NotContains(t, html, "javascript:")
}

func TestRootClassAndTouchAction(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FadeOut = true
	cfg.ScaleOnHover = true

	assert.Equal(t, "logoloop logoloop--fade logoloop--scale-hover logoloop--draggable logoloop--dragging skills",
		RootClass(cfg, true, false, "skills"))
	assert.Equal(t, "logoloop logoloop--fade logoloop--scale-hover", RootClass(cfg, false, true, ""))

	assert.Equal(t, "pan-x", TouchAction(cfg, false, false))
	assert.Equal(t, "none", TouchAction(cfg, true, false))
	assert.Equal(t, "manipulation", TouchAction(cfg, false, true))
	cfg.Draggable = false
	assert.Equal(t, "auto", TouchAction(cfg, false, false))
}

func TestTrackStyle(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = Length{Value: 640}
	cfg.FadeOutColor = "#0b0b0f"
	html := renderTrack(t, Props{Config: cfg, Items: []Item{{Node: "a"}}})
	assert.Contains(t, html, "width: 640px")
	assert.Contains(t, html, "--logoloop-gap: 32px")
	assert.Contains(t, html, "--logoloop-logoHeight: 28px")
	assert.Contains(t, html, "--logoloop-fadeColor: #0b0b0f")
}
