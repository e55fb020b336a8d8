// Package motion holds the small pointer-driven effects used around the site:
// a magnetic hover, a 3D tilt and a typewriter. Each is a self-contained simulation
// advanced by Tick with the elapsed frame time.
package motion

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Spring describes a damped spring on a unit mass.
type Spring struct {
	Stiffness float64
	Damping   float64
}

// settleEpsilon is the distance and speed below which an axis counts as at rest.
const settleEpsilon = 1e-3

// axis is one spring-driven value chasing its target.
type axis struct {
	pos, vel, target float64
}

func (a *axis) step(s Spring, dt float64) {
	if dt <= 0 || s.Stiffness <= 0 {
		return
	}
	omega := math.Sqrt(s.Stiffness)
	ratio := s.Damping / (2 * omega)
	a.pos, a.vel = harmonica.NewSpring(dt, omega, ratio).Update(a.pos, a.vel, a.target)
}

func (a *axis) settled() bool {
	return math.Abs(a.pos-a.target) < settleEpsilon && math.Abs(a.vel) < settleEpsilon
}

// Point is a pointer position in client coordinates.
type Point struct {
	X, Y float64
}

// Rect is an element's bounding box in client coordinates.
type Rect struct {
	Left, Top, Width, Height float64
}

// Center returns the middle of r.
func (r Rect) Center() Point {
	return Point{X: r.Left + r.Width/2, Y: r.Top + r.Height/2}
}
