package motion

import "fmt"

// Tilt rotates an element in 3D toward the pointer.
type Tilt struct {
	MaxAngleX   float64
	MaxAngleY   float64
	Perspective float64
	Scale       float64
	// Speed is the stiffness of the rotation springs.
	Speed       float64
	Damping     float64
	ScaleSpring Spring

	x, y, scale axis
}

// NewTilt returns a tilt effect with the site's defaults.
func NewTilt() *Tilt {
	return &Tilt{
		MaxAngleX:   10,
		MaxAngleY:   10,
		Perspective: 1000,
		Scale:       1.05,
		Speed:       400,
		Damping:     30,
		ScaleSpring: Spring{Stiffness: 300, Damping: 30},
		scale:       axis{pos: 1, target: 1},
	}
}

func (t *Tilt) Enter() {
	t.scale.target = t.Scale
}

// Move maps the pointer's position inside r to a normalized [-0.5, 0.5] pair.
func (t *Tilt) Move(p Point, r Rect) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	t.x.target = (p.X-r.Left)/r.Width - 0.5
	t.y.target = (p.Y-r.Top)/r.Height - 0.5
}

func (t *Tilt) Leave() {
	t.x.target, t.y.target = 0, 0
	t.scale.target = 1
}

// Tick advances the springs by dt seconds.
func (t *Tilt) Tick(dt float64) {
	s := Spring{Stiffness: t.Speed, Damping: t.Damping}
	t.x.step(s, dt)
	t.y.step(s, dt)
	t.scale.step(t.ScaleSpring, dt)
}

// Rotation returns the rotateX and rotateY angles in degrees.
func (t *Tilt) Rotation() (rx, ry float64) {
	rx = interpolate(t.y.pos, -0.5, 0.5, t.MaxAngleX, -t.MaxAngleX)
	ry = interpolate(t.x.pos, -0.5, 0.5, -t.MaxAngleY, t.MaxAngleY)
	return rx, ry
}

func (t *Tilt) ScaleValue() float64 { return t.scale.pos }

func (t *Tilt) Settled() bool {
	return t.x.settled() && t.y.settled() && t.scale.settled()
}

// Transform renders the current state as a CSS transform.
func (t *Tilt) Transform() string {
	rx, ry := t.Rotation()
	return fmt.Sprintf("perspective(%gpx) rotateX(%.3fdeg) rotateY(%.3fdeg) scale(%.4f)",
		t.Perspective, rx, ry, t.scale.pos)
}

// interpolate maps v from [inLo, inHi] onto [outLo, outHi], clamping to the range.
func interpolate(v, inLo, inHi, outLo, outHi float64) float64 {
	if inHi == inLo {
		return outLo
	}
	p := (v - inLo) / (inHi - inLo)
	p = min(max(p, 0), 1)
	return outLo + (outHi-outLo)*p
}
