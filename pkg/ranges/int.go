package ranges

import (
	"github.com/chewxy/math32"

	"github.com/glint-audio/paramkit/pkg/normal"
)

// IntRange maps a discrete range of integers onto [0, 1]. The steps
// occupy evenly spaced normalized positions, and Snap rounds any
// position to the nearest of them.
//
// min == max is allowed as a degenerate single-position range: every
// position maps to min and ToNormal always reports the center.
type IntRange struct {
	min       int
	max       int
	span      float32
	spanRecip float32
}

// NewInt builds an IntRange over [min, max] inclusive.
func NewInt(min, max int) (IntRange, error) {
	if max < min {
		return IntRange{}, configErrorf("int", "max (%d) must not be less than min (%d)", max, min)
	}
	r := IntRange{min: min, max: max}
	if max > min {
		r.span = float32(max - min)
		r.spanRecip = 1.0 / r.span
	}
	return r, nil
}

// MustInt is NewInt panicking on error, for literal configs.
func MustInt(min, max int) IntRange {
	return must(NewInt(min, max))
}

// Min returns the minimum of the range.
func (r IntRange) Min() int { return r.min }

// Max returns the maximum of the range.
func (r IntRange) Max() int { return r.max }

// Steps returns the number of steps between min and max. A range with
// Steps() == N has N+1 representable positions.
func (r IntRange) Steps() int { return r.max - r.min }

func (r IntRange) degenerate() bool { return r.max == r.min }

func (r IntRange) clamp(value int) int {
	if value <= r.min {
		return r.min
	}
	if value >= r.max {
		return r.max
	}
	return value
}

// Normal maps an integer value to its normalized position, clamping
// it to [min, max] first.
func (r IntRange) Normal(value int) normal.Normal {
	if r.degenerate() {
		return normal.Center
	}
	value = r.clamp(value)
	return normal.Clamped(float32(value-r.min) * r.spanRecip)
}

// Value maps a normalized position to the nearest integer in the
// range.
func (r IntRange) Value(n normal.Normal) int {
	if r.degenerate() {
		return r.min
	}
	return int(math32.Round(n.Scale(r.span))) + r.min
}

// ToNormal maps a float32 domain value to its normalized position,
// rounding it to the nearest integer first.
func (r IntRange) ToNormal(value float32) normal.Normal {
	return r.Normal(int(math32.Round(value)))
}

// FromNormal maps a normalized position to the nearest integer value,
// returned as a float32.
func (r IntRange) FromNormal(n normal.Normal) float32 {
	return float32(r.Value(n))
}

// Snap rounds a normalized position onto the nearest step boundary by
// round-tripping through the integer domain.
func (r IntRange) Snap(n normal.Normal) normal.Normal {
	return r.Normal(r.Value(n))
}

// Nudge moves a normalized position by delta whole steps, clamping at
// the range bounds. Widgets use it for keyboard and scroll-wheel
// increments.
func (r IntRange) Nudge(n normal.Normal, delta int) normal.Normal {
	return r.Normal(r.Value(n) + delta)
}

// DefaultNormal returns the normalized position of def.
func (r IntRange) DefaultNormal(def float32) normal.Normal {
	return r.ToNormal(def)
}

// Param builds a normal.Param from a domain value and default.
func (r IntRange) Param(value, def float32) normal.Param {
	return normal.Param{
		Value:   r.ToNormal(value),
		Default: r.ToNormal(def),
	}
}
