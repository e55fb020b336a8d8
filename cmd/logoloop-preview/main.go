// Command logoloop-preview runs the skills loop in a terminal. Drag the row with the
// mouse, hover it to pause, q to quit. When stdout is not a terminal it simulates a
// fixed number of frames and prints the result.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/gookit/color"
	"golang.org/x/term"

	"github.com/Zachkp/portfolio/internal/marquee"
)

var defaultItems = []string{
	"TypeScript", "Python", "Java", "C/C++", "SQL", "Go", "JavaScript",
	"React", "Next.js", "Node.js", "Express", "Flask", "Tailwind", "FastAPI",
	"Docker", "Git", "Google Cloud",
}

var (
	styleTitle = color.Style{color.FgCyan, color.OpBold}
	styleLabel = color.Style{color.FgGray}
	styleValue = color.Style{color.FgGreen, color.OpBold}
)

func main() {
	speed := flag.Float64("speed", 12, "scroll speed in cells per second")
	direction := flag.String("direction", "left", "scroll direction: left or right")
	gap := flag.Int("gap", 3, "blank cells between items")
	momentum := flag.Bool("momentum", false, "keep drag momentum on release")
	items := flag.String("items", strings.Join(defaultItems, ","), "comma separated items")
	words := flag.String("words", "Software Engineer,ML Enthusiast", "comma separated typewriter words")
	headless := flag.Bool("headless", false, "simulate without a terminal")
	frames := flag.Int("frames", 120, "frames to simulate in headless mode")
	width := flag.Int("width", 80, "screen width in headless mode")
	flag.Parse()

	dir, err := marquee.ParseDirection(*direction)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	opts := Options{
		Speed:      *speed,
		Direction:  dir,
		Gap:        *gap,
		StopOnDrag: !*momentum,
		Items:      splitList(*items),
		Words:      splitList(*words),
	}

	if *headless || !term.IsTerminal(int(os.Stdout.Fd())) {
		if err := runHeadless(os.Stdout, opts, *width, *frames); err != nil {
			fmt.Fprintf(os.Stderr, "Headless run failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)

	NewPreview(screen, opts).run()
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// runHeadless steps frames at 60 fps on a simulation screen and prints the final
// state.
func runHeadless(w io.Writer, opts Options, width, frames int) error {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init simulation screen: %w", err)
	}
	defer screen.Fini()
	screen.SetSize(width, 5)

	p := NewPreview(screen, opts)
	for i := 1; i <= frames; i++ {
		p.step(float64(i) * 1000 / 60)
	}
	p.draw()

	sim := p.loop.Simulator()
	layout := p.loop.Layout()
	fmt.Fprintln(w, styleTitle.Sprintf("logoloop preview: %d frames", frames))
	fmt.Fprintf(w, "%s %s\n", styleLabel.Sprint("state   "), styleValue.Sprint(sim.State()))
	fmt.Fprintf(w, "%s %s\n", styleLabel.Sprint("offset  "), styleValue.Sprintf("%.2f / %.0f", sim.Offset(), layout.SequenceWidth))
	fmt.Fprintf(w, "%s %s\n", styleLabel.Sprint("velocity"), styleValue.Sprintf("%.2f", sim.Velocity()))
	fmt.Fprintf(w, "%s %s\n", styleLabel.Sprint("copies  "), styleValue.Sprintf("%d", layout.Copies))
	fmt.Fprintf(w, "%s %s\n", styleLabel.Sprint("typed   "), styleValue.Sprintf("%q", p.tw.Text()))
	fmt.Fprintln(w, p.rowText(width))
	return nil
}
