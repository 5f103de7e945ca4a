package param

import (
	"github.com/chewxy/math32"

	"github.com/glint-audio/paramkit/pkg/normal"
)

// SmoothingType selects the smoothing curve.
type SmoothingType int

const (
	// LinearSmoothing moves toward the target in equal steps.
	LinearSmoothing SmoothingType = iota
	// ExponentialSmoothing moves a fixed fraction of the remaining
	// distance per step (one-pole filter).
	ExponentialSmoothing
)

// Smoother ramps a normalized position toward a target over repeated
// calls, so an abrupt parameter change can be animated or de-zippered
// by the consumer. Smoothing frequency parameters through their
// normalized position is already logarithmic, since FreqRange places
// octaves evenly.
type Smoother struct {
	kind      SmoothingType
	current   float32
	target    float32
	rate      float32
	threshold float32
	active    bool
	step      float32
}

// NewSmoother creates a smoother. For LinearSmoothing, rate is the
// number of steps a full ramp takes; for ExponentialSmoothing it is
// the pole in (0, 1), higher meaning slower.
func NewSmoother(kind SmoothingType, rate float32) *Smoother {
	return &Smoother{
		kind:      kind,
		rate:      rate,
		threshold: 1e-4,
	}
}

// SetTarget sets the normalized position to ramp toward.
func (s *Smoother) SetTarget(target normal.Normal) {
	t := target.Float()
	if math32.Abs(t-s.target) < s.threshold {
		return
	}
	s.target = t
	s.active = true
	if s.kind == LinearSmoothing && s.rate > 0 {
		s.step = (t - s.current) / s.rate
	}
}

// Next advances the ramp one step and returns the current position.
func (s *Smoother) Next() normal.Normal {
	if !s.active {
		return normal.Clamped(s.current)
	}

	switch s.kind {
	case ExponentialSmoothing:
		s.current += (s.target - s.current) * (1.0 - s.rate)
		if math32.Abs(s.current-s.target) < s.threshold {
			s.current = s.target
			s.active = false
		}
	case LinearSmoothing:
		s.current += s.step
		if (s.step > 0 && s.current >= s.target) || (s.step < 0 && s.current <= s.target) || s.step == 0 {
			s.current = s.target
			s.active = false
		}
	}
	return normal.Clamped(s.current)
}

// IsSmoothing reports whether a ramp is in progress.
func (s *Smoother) IsSmoothing() bool { return s.active }

// Reset jumps directly to a position, ending any ramp.
func (s *Smoother) Reset(n normal.Normal) {
	s.current = n.Float()
	s.target = s.current
	s.active = false
}

// SetRate updates the smoothing rate.
func (s *Smoother) SetRate(rate float32) { s.rate = rate }

// SmoothedParameter pairs a Parameter with a Smoother tracking its
// normalized value.
type SmoothedParameter struct {
	*Parameter
	smoother *Smoother
}

// NewSmoothedParameter wraps a parameter, starting the smoother at
// its current position.
func NewSmoothedParameter(p *Parameter, kind SmoothingType, rate float32) *SmoothedParameter {
	sp := &SmoothedParameter{
		Parameter: p,
		smoother:  NewSmoother(kind, rate),
	}
	sp.smoother.Reset(p.Normal())
	return sp
}

// SetNormal sets the parameter and retargets the smoother.
func (sp *SmoothedParameter) SetNormal(n normal.Normal) {
	sp.Parameter.SetNormal(n)
	sp.smoother.SetTarget(sp.Parameter.Normal())
}

// SetValue sets the parameter from a domain value and retargets the
// smoother.
func (sp *SmoothedParameter) SetValue(v float32) {
	sp.SetNormal(sp.Range().ToNormal(v))
}

// NextNormal advances the ramp and returns the smoothed position.
func (sp *SmoothedParameter) NextNormal() normal.Normal {
	return sp.smoother.Next()
}

// NextValue advances the ramp and returns the smoothed domain value.
func (sp *SmoothedParameter) NextValue() float32 {
	return sp.Range().FromNormal(sp.smoother.Next())
}

// IsSmoothing reports whether the wrapped smoother is ramping.
func (sp *SmoothedParameter) IsSmoothing() bool {
	return sp.smoother.IsSmoothing()
}
