package core

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidGradient is returned when gradient stops cannot be interpolated.
var ErrInvalidGradient = errors.New("core: invalid gradient")

// GradientStop anchors a color at a position along a gradient.
type GradientStop struct {
	Position float32
	Color    RGB
}

// Gradient interpolates linearly between ordered stops.
// With Repeat set, positions wrap modulo the last stop's position.
type Gradient struct {
	stops  []GradientStop
	repeat bool
}

// NewGradient validates the stops and builds a gradient.
// Stops must be at least two, finite and strictly increasing by position.
func NewGradient(stops []GradientStop, repeat bool) (*Gradient, error) {
	if len(stops) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 stops, got %d", ErrInvalidGradient, len(stops))
	}

	for i, s := range stops {
		p := float64(s.Position)
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return nil, fmt.Errorf("%w: stop %d has non-finite position", ErrInvalidGradient, i)
		}
		if i > 0 && s.Position <= stops[i-1].Position {
			return nil, fmt.Errorf("%w: stop %d position %g is not greater than %g",
				ErrInvalidGradient, i, s.Position, stops[i-1].Position)
		}
	}

	if repeat && stops[len(stops)-1].Position <= 0 {
		return nil, fmt.Errorf("%w: repeating gradient must end at a positive position", ErrInvalidGradient)
	}

	owned := make([]GradientStop, len(stops))
	copy(owned, stops)
	return &Gradient{stops: owned, repeat: repeat}, nil
}

// MustGradient is like NewGradient but panics on invalid stops.
// Intended for package-level tables built from constants.
func MustGradient(stops []GradientStop, repeat bool) *Gradient {
	g, err := NewGradient(stops, repeat)
	if err != nil {
		panic(err)
	}
	return g
}

// Stops returns a copy of the gradient stops.
func (g *Gradient) Stops() []GradientStop {
	out := make([]GradientStop, len(g.stops))
	copy(out, g.stops)
	return out
}

// At returns the color at the given position.
// Positions outside the stops take the nearest end color; channels are
// truncated, not rounded.
func (g *Gradient) At(position float32) RGB {
	first := g.stops[0]
	last := g.stops[len(g.stops)-1]

	if g.repeat {
		span := float64(last.Position)
		wrapped := math.Mod(float64(position), span)
		if wrapped < 0 {
			wrapped += span
		}
		position = float32(wrapped)
		// float32 rounding can land exactly on the end of the cycle
		if position >= last.Position {
			position = 0
		}
	}

	// The negated comparison also catches NaN.
	if !(position >= first.Position) {
		return first.Color
	}

	bottom := 0
	for i, s := range g.stops {
		if s.Position > position {
			break
		}
		bottom = i
	}

	if bottom == len(g.stops)-1 {
		return last.Color
	}

	a := g.stops[bottom]
	b := g.stops[bottom+1]
	t := (position - a.Position) / (b.Position - a.Position)

	return RGB{
		R: lerpChannel(a.Color.R, b.Color.R, t),
		G: lerpChannel(a.Color.G, b.Color.G, t),
		B: lerpChannel(a.Color.B, b.Color.B, t),
	}
}

func lerpChannel(a, b uint8, t float32) uint8 {
	return uint8(float32(a) + t*(float32(b)-float32(a)))
}
