package anim

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Mask selects which attributes a segment animates.
type Mask uint8

const (
	X Mask = 1 << iota
	Y
	Fill
	Opacity

	Position = X | Y
	All      = Position | Fill | Opacity
)

func (m Mask) Has(o Mask) bool { return m&o == o }

// Attrs is the visual state of one element.
type Attrs struct {
	X, Y    float64
	Fill    string
	Opacity float64
}

func lerp(a, b, t float64) float64 {
	if t >= 1 {
		return b
	}
	return a + (b-a)*t
}

// lerpAttrs interpolates only the masked attributes of from toward to.
func lerpAttrs(cur, from, to Attrs, m Mask, t float64) Attrs {
	if m.Has(X) {
		cur.X = lerp(from.X, to.X, t)
	}
	if m.Has(Y) {
		cur.Y = lerp(from.Y, to.Y, t)
	}
	if m.Has(Opacity) {
		cur.Opacity = lerp(from.Opacity, to.Opacity, t)
	}
	if m.Has(Fill) {
		cur.Fill = LerpColor(from.Fill, to.Fill, t)
	}
	return cur
}

// LerpColor blends two hex colors in RGB. Unparseable input jumps to
// the target once t reaches 1.
func LerpColor(from, to string, t float64) string {
	if t >= 1 {
		return to
	}
	if t <= 0 || from == to {
		return from
	}
	a, err := colorful.Hex(from)
	if err != nil {
		return from
	}
	b, err := colorful.Hex(to)
	if err != nil {
		return from
	}
	return a.BlendRgb(b, t).Clamped().Hex()
}

// CubicInOut is the default easing.
func CubicInOut(t float64) float64 {
	t *= 2
	if t <= 1 {
		return t * t * t / 2
	}
	t -= 2
	return (t*t*t + 2) / 2
}

func Linear(t float64) float64 { return t }
