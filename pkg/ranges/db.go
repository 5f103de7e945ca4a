package ranges

import (
	"github.com/chewxy/math32"

	"github.com/glint-audio/paramkit/pkg/normal"
)

// DBRange maps a decibel range onto [0, 1] with an inflection point
// at 0 dB. The curve is square-law on each side of the inflection, so
// positions near 0 dB move fewer decibels per unit of travel than
// positions near the extremes.
//
// The zero position places 0 dB on the control: normal.Center puts it
// in the middle, normal.Max expresses an all-negative range (a
// reduction meter) and normal.Min an all-positive one.
type DBRange struct {
	min  float32
	max  float32
	zero normal.Normal

	minRecip          float32
	maxRecip          float32
	zeroRecip         float32
	oneMinusZeroRecip float32
}

// NewDB builds a DBRange over [min, max] dB with 0 dB at the given
// normalized position. min must be <= 0, max must be >= 0 and greater
// than min.
func NewDB(min, max float32, zero normal.Normal) (DBRange, error) {
	if !finite(min) || !finite(max) {
		return DBRange{}, configErrorf("dB", "bounds must be finite, got [%v, %v]", min, max)
	}
	if max <= min {
		return DBRange{}, configErrorf("dB", "max (%v) must be greater than min (%v)", max, min)
	}
	if min > 0.0 {
		return DBRange{}, configErrorf("dB", "min (%v) must be 0 or negative", min)
	}
	if max < 0.0 {
		return DBRange{}, configErrorf("dB", "max (%v) must be 0 or positive", max)
	}

	r := DBRange{min: min, max: max, zero: zero}
	if min != 0.0 {
		r.minRecip = 1.0 / min
	}
	if max != 0.0 {
		r.maxRecip = 1.0 / max
	}
	if z := zero.Float(); z != 0.0 {
		r.zeroRecip = 1.0 / z
	}
	if z := zero.Float(); z != 1.0 {
		r.oneMinusZeroRecip = 1.0 / (1.0 - z)
	}
	return r, nil
}

// MustDB is NewDB panicking on error, for literal configs.
func MustDB(min, max float32, zero normal.Normal) DBRange {
	return must(NewDB(min, max, zero))
}

// DefaultDB returns the [-12, +12] dB range with 0 dB at the center.
func DefaultDB() DBRange {
	return MustDB(-12.0, 12.0, normal.Center)
}

// Min returns the minimum of the range in dB.
func (r DBRange) Min() float32 { return r.min }

// Max returns the maximum of the range in dB.
func (r DBRange) Max() float32 { return r.max }

// Zero returns the normalized position of 0 dB.
func (r DBRange) Zero() normal.Normal { return r.zero }

func (r DBRange) clamp(value float32) float32 {
	if value <= r.min {
		return r.min
	}
	if value >= r.max {
		return r.max
	}
	return value
}

// ToNormal maps a dB value to its normalized position, clamping it to
// [min, max] first. ToNormal(0) is exactly the zero position.
func (r DBRange) ToNormal(value float32) normal.Normal {
	if value <= r.min && r.min != 0.0 {
		return normal.Min
	}
	if value >= r.max && r.max != 0.0 {
		return normal.Max
	}
	value = r.clamp(value)
	switch {
	case value == 0.0:
		return r.zero
	case value < 0.0:
		if r.min >= 0.0 {
			return normal.Min
		}
		neg := math32.Sqrt(value * r.minRecip)
		return normal.Clamped((1.0 - neg) * r.zero.Float())
	default:
		if r.max <= 0.0 {
			return normal.Max
		}
		pos := math32.Sqrt(value * r.maxRecip)
		return normal.Clamped(pos*(1.0-r.zero.Float()) + r.zero.Float())
	}
}

// FromNormal maps a normalized position back to a dB value. It is the
// exact inverse of ToNormal over [min, max].
func (r DBRange) FromNormal(n normal.Normal) float32 {
	switch {
	case n == r.zero:
		return 0.0
	case n.Less(r.zero):
		if r.min >= 0.0 {
			return r.min
		}
		neg := 1.0 - n.Scale(r.zeroRecip)
		return neg * neg * r.min
	default:
		if r.zero == normal.Max || r.max <= 0.0 {
			return r.max
		}
		pos := (n.Float() - r.zero.Float()) * r.oneMinusZeroRecip
		return pos * pos * r.max
	}
}

// Snap returns n unchanged; DBRange is continuous.
func (r DBRange) Snap(n normal.Normal) normal.Normal { return n }

// DefaultNormal returns the normalized position of def.
func (r DBRange) DefaultNormal(def float32) normal.Normal {
	return r.ToNormal(def)
}

// Param builds a normal.Param from a domain value and default.
func (r DBRange) Param(value, def float32) normal.Param {
	return normal.Param{
		Value:   r.ToNormal(value),
		Default: r.ToNormal(def),
	}
}
