package motion

import (
	"fmt"
	"math"
)

// Magnetic pulls an element toward the pointer while the pointer is within Range of
// its center, and springs it home when the pointer leaves.
type Magnetic struct {
	Strength    float64
	Range       float64
	Spring      Spring
	HoverScale  float64
	ScaleSpring Spring

	x, y, scale axis
}

// NewMagnetic returns a magnetic effect with the site's defaults.
func NewMagnetic() *Magnetic {
	return &Magnetic{
		Strength:    0.3,
		Range:       100,
		Spring:      Spring{Stiffness: 300, Damping: 30},
		HoverScale:  1.05,
		ScaleSpring: Spring{Stiffness: 400, Damping: 30},
		scale:       axis{pos: 1, target: 1},
	}
}

func (m *Magnetic) Enter() {
	m.scale.target = m.HoverScale
}

// Move updates the attraction for a pointer at p over an element at r. Outside the
// capture radius the previous target is kept.
func (m *Magnetic) Move(p Point, r Rect) {
	c := r.Center()
	dx, dy := p.X-c.X, p.Y-c.Y
	dist := math.Hypot(dx, dy)
	if dist >= m.Range {
		return
	}
	force := (m.Range - dist) / m.Range
	m.x.target = dx * m.Strength * force
	m.y.target = dy * m.Strength * force
}

func (m *Magnetic) Leave() {
	m.x.target, m.y.target = 0, 0
	m.scale.target = 1
}

// Tick advances the springs by dt seconds.
func (m *Magnetic) Tick(dt float64) {
	m.x.step(m.Spring, dt)
	m.y.step(m.Spring, dt)
	m.scale.step(m.ScaleSpring, dt)
}

func (m *Magnetic) Offset() (x, y float64) { return m.x.pos, m.y.pos }
func (m *Magnetic) Target() (x, y float64) { return m.x.target, m.y.target }
func (m *Magnetic) Scale() float64         { return m.scale.pos }

// Settled reports whether every spring is at rest on its target.
func (m *Magnetic) Settled() bool {
	return m.x.settled() && m.y.settled() && m.scale.settled()
}

// Transform renders the current state as a CSS transform.
func (m *Magnetic) Transform() string {
	return fmt.Sprintf("translate(%.2fpx, %.2fpx) scale(%.4f)", m.x.pos, m.y.pos, m.scale.pos)
}
