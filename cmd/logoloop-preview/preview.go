package main

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/Zachkp/portfolio/internal/frame"
	"github.com/Zachkp/portfolio/internal/marquee"
	"github.com/Zachkp/portfolio/internal/motion"
)

// Options configure the preview. Widths are in terminal cells.
type Options struct {
	Speed      float64
	Direction  marquee.Direction
	Gap        int
	StopOnDrag bool
	Items      []string
	Words      []string
}

// cellSurface measures in cells: the container is the screen width and the
// sequence is the laid-out item row.
type cellSurface struct {
	screen tcell.Screen
	seq    float64
}

func (s *cellSurface) ContainerWidth() float64 {
	w, _ := s.screen.Size()
	return float64(w)
}

func (s *cellSurface) SequenceWidth() float64 { return s.seq }

type cellPainter struct {
	offset   float64
	copies   int
	dragging bool
}

func (p *cellPainter) Paint(offset float64)      { p.offset = offset }
func (p *cellPainter) SetCopies(n int)           { p.copies = n }
func (p *cellPainter) SetDragging(dragging bool) { p.dragging = dragging }

// Preview runs a marquee row and a typewriter header on a tcell screen.
type Preview struct {
	screen  tcell.Screen
	sched   *frame.Manual
	loop    *marquee.Loop
	tw      *motion.Typewriter
	painter *cellPainter
	// cells is one sequence; 0 marks the trailing half of a wide rune.
	cells []rune

	last    float64
	pressed bool
	hovered bool
}

// layoutCells lays items out as a single row of cells, each followed by gap blanks.
func layoutCells(items []string, gap int) []rune {
	var cells []rune
	for _, it := range items {
		for _, r := range it {
			cells = append(cells, r)
			for i := 1; i < runewidth.RuneWidth(r); i++ {
				cells = append(cells, 0)
			}
		}
		for i := 0; i < gap; i++ {
			cells = append(cells, ' ')
		}
	}
	return cells
}

func NewPreview(screen tcell.Screen, opts Options) *Preview {
	cfg := marquee.DefaultConfig()
	cfg.Speed = opts.Speed
	cfg.Direction = opts.Direction
	cfg.Gap = float64(opts.Gap)
	cfg.LogoHeight = 1
	cfg.StopOnDrag = opts.StopOnDrag
	cfg.AriaLabel = "Skills"

	p := &Preview{
		screen:  screen,
		sched:   frame.NewManual(),
		painter: &cellPainter{},
		cells:   layoutCells(opts.Items, opts.Gap),
		tw:      motion.NewTypewriter(motion.DefaultTypewriterConfig(opts.Words...)),
		last:    -1,
	}
	surface := &cellSurface{screen: screen, seq: float64(len(p.cells))}
	p.loop = marquee.New(cfg, marquee.Host{
		Surface:   surface,
		Scheduler: p.sched,
		Painter:   p.painter,
	})
	p.loop.Mount()
	return p
}

func (p *Preview) Loop() *marquee.Loop { return p.loop }

func (p *Preview) row() int {
	_, h := p.screen.Size()
	return h / 2
}

// step runs one frame at ts milliseconds.
func (p *Preview) step(ts float64) {
	ms := 0.0
	if p.last >= 0 && ts > p.last {
		ms = ts - p.last
	}
	p.last = ts
	p.sched.Fire(ts)
	p.tw.Advance(ms)
}

// handle applies an input event at ts milliseconds. It returns false to quit.
func (p *Preview) handle(ev tcell.Event, ts float64) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		}
	case *tcell.EventResize:
		p.screen.Sync()
	case *tcell.EventMouse:
		p.mouse(ev, ts)
	}
	return true
}

func (p *Preview) mouse(ev *tcell.EventMouse, ts float64) {
	x, y := ev.Position()
	onRow := y == p.row()
	if onRow && !p.hovered {
		p.hovered = true
		p.loop.PointerEnter()
	} else if !onRow && p.hovered && !p.pressed {
		p.hovered = false
		p.loop.PointerLeave()
	}

	pe := marquee.PointerEvent{ID: 1, X: float64(x), Primary: true, Time: ts}
	down := ev.Buttons()&tcell.Button1 != 0
	switch {
	case down && !p.pressed:
		if onRow {
			p.pressed = p.loop.PointerDown(pe)
		}
	case down:
		p.loop.PointerMove(pe)
	case p.pressed:
		p.pressed = false
		p.loop.PointerUp(pe)
		if !onRow && p.hovered {
			p.hovered = false
			p.loop.PointerLeave()
		}
	}
}

// rowText is the marquee row as it would be drawn across width cells.
func (p *Preview) rowText(width int) string {
	n := len(p.cells)
	if n == 0 {
		return strings.Repeat(" ", width)
	}
	shift := int(math.Floor(p.painter.offset))
	var b strings.Builder
	for x := 0; x < width; x++ {
		r := p.cells[((x+shift)%n+n)%n]
		if r == 0 {
			if x == 0 {
				b.WriteRune(' ')
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

func (p *Preview) status() string {
	sim := p.loop.Simulator()
	return fmt.Sprintf("%-12s offset %6.1f  v %7.1f  copies %d", sim.State(), sim.Offset(), sim.Velocity(), p.painter.copies)
}

func (p *Preview) draw() {
	p.screen.Clear()
	w, h := p.screen.Size()

	drawText(p.screen, 1, 0, tcell.StyleDefault.Bold(true), p.tw.Text()+"▌")

	rowStyle := tcell.StyleDefault.Foreground(tcell.ColorAqua)
	if p.painter.dragging {
		rowStyle = rowStyle.Reverse(true)
	}
	drawText(p.screen, 0, p.row(), rowStyle, p.rowText(w))

	drawText(p.screen, 1, h-1, tcell.StyleDefault.Dim(true), p.status())
	p.screen.Show()
}

// run is the interactive loop: one goroutine feeds input, the ticker drives frames.
func (p *Preview) run() {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()
	start := time.Now()
	elapsed := func() float64 { return float64(time.Since(start).Microseconds()) / 1000 }

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := p.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !p.handle(ev, elapsed()) {
				return
			}
		case <-ticker.C:
			p.step(elapsed())
			p.draw()
		}
	}
}
