package ranges

import (
	"github.com/chewxy/math32"

	"github.com/glint-audio/paramkit/pkg/normal"
)

// FreqRange maps a frequency range in Hz onto [0, 1] so that every
// octave occupies the same normalized width. Low frequencies move
// fewer Hz per unit of travel than high ones.
type FreqRange struct {
	min          float32
	max          float32
	logMin       float32
	logSpan      float32
	logSpanRecip float32
}

// NewFreq builds a FreqRange over [min, max] Hz. min must be positive
// and max greater than min.
func NewFreq(min, max float32) (FreqRange, error) {
	if !finite(min) || !finite(max) {
		return FreqRange{}, configErrorf("frequency", "bounds must be finite, got [%v, %v]", min, max)
	}
	if min <= 0.0 {
		return FreqRange{}, configErrorf("frequency", "min (%v) must be positive", min)
	}
	if max <= min {
		return FreqRange{}, configErrorf("frequency", "max (%v) must be greater than min (%v)", max, min)
	}
	logMin := math32.Log2(min)
	logSpan := math32.Log2(max) - logMin
	return FreqRange{
		min:          min,
		max:          max,
		logMin:       logMin,
		logSpan:      logSpan,
		logSpanRecip: 1.0 / logSpan,
	}, nil
}

// MustFreq is NewFreq panicking on error, for literal configs.
func MustFreq(min, max float32) FreqRange {
	return must(NewFreq(min, max))
}

// DefaultFreq returns the ten-octave audible spectrum range,
// 20 Hz to 20480 Hz.
func DefaultFreq() FreqRange {
	return MustFreq(20.0, 20480.0)
}

// Min returns the minimum of the range in Hz.
func (r FreqRange) Min() float32 { return r.min }

// Max returns the maximum of the range in Hz.
func (r FreqRange) Max() float32 { return r.max }

// Octaves returns the number of frequency doublings between min and
// max.
func (r FreqRange) Octaves() float32 { return r.logSpan }

// ToNormal maps a frequency to its normalized position, clamping it
// to [min, max] first.
func (r FreqRange) ToNormal(value float32) normal.Normal {
	if value <= r.min {
		return normal.Min
	}
	if value >= r.max {
		return normal.Max
	}
	return normal.Clamped((math32.Log2(value) - r.logMin) * r.logSpanRecip)
}

// FromNormal maps a normalized position back to a frequency in Hz.
func (r FreqRange) FromNormal(n normal.Normal) float32 {
	return r.min * math32.Exp2(n.Scale(r.logSpan))
}

// Snap returns n unchanged; FreqRange is continuous.
func (r FreqRange) Snap(n normal.Normal) normal.Normal { return n }

// DefaultNormal returns the normalized position of def.
func (r FreqRange) DefaultNormal(def float32) normal.Normal {
	return r.ToNormal(def)
}

// Param builds a normal.Param from a domain value and default.
func (r FreqRange) Param(value, def float32) normal.Param {
	return normal.Param{
		Value:   r.ToNormal(value),
		Default: r.ToNormal(def),
	}
}
