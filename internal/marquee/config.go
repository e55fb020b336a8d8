// Package marquee implements the continuously scrolling logo loop: a velocity/offset
// simulator with drag and inertia, the sequence measurer that decides how many copies
// of the content to mount, and the track component that renders them.
package marquee

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Direction is the configured scroll direction.
type Direction string

const (
	Left  Direction = "left"
	Right Direction = "right"
)

// ParseDirection accepts "left" or "right", case-insensitively. Empty means Left.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return "", fmt.Errorf("unknown direction %q", s)
}

// Length is a CSS width given either in pixels or as a percentage.
type Length struct {
	Value   float64
	Percent bool
}

// ParseLength accepts "320", "320px" or "100%".
func ParseLength(s string) (Length, error) {
	s = strings.TrimSpace(s)
	percent := strings.HasSuffix(s, "%")
	num := strings.TrimSuffix(strings.TrimSuffix(s, "%"), "px")
	v, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return Length{}, fmt.Errorf("parse length %q: %w", s, err)
	}
	return Length{Value: v, Percent: percent}, nil
}

// CSS renders the length as a CSS value.
func (l Length) CSS() string {
	if l.Percent {
		return strconv.FormatFloat(l.Value, 'f', -1, 64) + "%"
	}
	return strconv.FormatFloat(l.Value, 'f', -1, 64) + "px"
}

// Config holds the loop's tunables. It is read-only for the simulator; a change means
// building a new simulator, not mutating a running one.
type Config struct {
	Speed           float64   `json:"speed"`
	Direction       Direction `json:"direction"`
	Width           Length    `json:"-"`
	LogoHeight      float64   `json:"logoHeight"`
	Gap             float64   `json:"gap"`
	PauseOnHover    bool      `json:"pauseOnHover"`
	FadeOut         bool      `json:"fadeOut"`
	FadeOutColor    string    `json:"fadeOutColor,omitempty"`
	ScaleOnHover    bool      `json:"scaleOnHover"`
	AriaLabel       string    `json:"ariaLabel"`
	Draggable       bool      `json:"draggable"`
	DragSensitivity float64   `json:"dragSensitivity"`
	InertiaDecay    float64   `json:"inertiaDecay"`
	MaxDragVelocity float64   `json:"maxDragVelocity"`
	StopOnDrag      bool      `json:"stopOnDrag"`
}

// DefaultConfig returns the loop defaults.
func DefaultConfig() Config {
	return Config{
		Speed:           120,
		Direction:       Left,
		Width:           Length{Value: 100, Percent: true},
		LogoHeight:      28,
		Gap:             32,
		PauseOnHover:    true,
		AriaLabel:       "Partner logos",
		Draggable:       true,
		DragSensitivity: 1,
		InertiaDecay:    0.92,
		MaxDragVelocity: 2500,
		StopOnDrag:      true,
	}
}

// TargetVelocity is the signed steady-state velocity in px/s. Positive values move
// content to the left. The sign of speed and the direction compose multiplicatively,
// so a negative speed scrolling "right" moves left.
func TargetVelocity(speed float64, dir Direction) float64 {
	magnitude := math.Abs(speed)
	dirSign := 1.0
	if dir == Right {
		dirSign = -1
	}
	speedSign := 1.0
	if speed < 0 {
		speedSign = -1
	}
	return magnitude * dirSign * speedSign
}

// TargetVelocity is TargetVelocity(c.Speed, c.Direction).
func (c Config) TargetVelocity() float64 {
	return TargetVelocity(c.Speed, c.Direction)
}
