package ranges

import "github.com/glint-audio/paramkit/pkg/normal"

// FloatRange maps a continuous linear range of float32 values onto
// [0, 1].
type FloatRange struct {
	min       float32
	max       float32
	span      float32
	spanRecip float32
}

// NewFloat builds a FloatRange over [min, max]. Both bounds must be
// finite and max must be greater than min.
func NewFloat(min, max float32) (FloatRange, error) {
	if !finite(min) || !finite(max) {
		return FloatRange{}, configErrorf("float", "bounds must be finite, got [%v, %v]", min, max)
	}
	if max <= min {
		return FloatRange{}, configErrorf("float", "max (%v) must be greater than min (%v)", max, min)
	}
	span := max - min
	return FloatRange{
		min:       min,
		max:       max,
		span:      span,
		spanRecip: 1.0 / span,
	}, nil
}

// MustFloat is NewFloat panicking on error, for literal configs.
func MustFloat(min, max float32) FloatRange {
	return must(NewFloat(min, max))
}

// Unit returns the [0, 1] range.
func Unit() FloatRange { return MustFloat(0.0, 1.0) }

// Bipolar returns the [-1, 1] range.
func Bipolar() FloatRange { return MustFloat(-1.0, 1.0) }

// Min returns the minimum of the range.
func (r FloatRange) Min() float32 { return r.min }

// Max returns the maximum of the range.
func (r FloatRange) Max() float32 { return r.max }

// ToNormal maps value to its normalized position, clamping it to
// [min, max] first.
func (r FloatRange) ToNormal(value float32) normal.Normal {
	if value <= r.min {
		return normal.Min
	}
	if value >= r.max {
		return normal.Max
	}
	return normal.Clamped((value - r.min) * r.spanRecip)
}

// FromNormal maps a normalized position back to a domain value.
func (r FloatRange) FromNormal(n normal.Normal) float32 {
	return n.Scale(r.span) + r.min
}

// Snap returns n unchanged; FloatRange is continuous.
func (r FloatRange) Snap(n normal.Normal) normal.Normal { return n }

// DefaultNormal returns the normalized position of def.
func (r FloatRange) DefaultNormal(def float32) normal.Normal {
	return r.ToNormal(def)
}

// Param builds a normal.Param from a domain value and default.
func (r FloatRange) Param(value, def float32) normal.Param {
	return normal.Param{
		Value:   r.ToNormal(value),
		Default: r.ToNormal(def),
	}
}
