// Package param binds normalized values to ranges, giving each
// parameter an identity, a default, display formatting and a
// registry for ordered lookup.
package param

import (
	"fmt"
	"math"
	"strconv"
	"sync/atomic"

	"github.com/glint-audio/paramkit/pkg/normal"
	"github.com/glint-audio/paramkit/pkg/ranges"
	"github.com/glint-audio/paramkit/pkg/units"
)

// Flags describing parameter behavior.
const (
	CanAutomate uint32 = 1 << 0
	IsReadOnly  uint32 = 1 << 1
	IsList      uint32 = 1 << 3
	IsHidden    uint32 = 1 << 4
	IsBypass    uint32 = 1 << 16
)

// Parameter is a normalized value bound to a Range. The stored value
// is always a valid normalized position, snapped for stepped ranges;
// reads and writes are atomic so a UI thread may read while a control
// thread writes.
type Parameter struct {
	ID        uint32
	Name      string
	ShortName string
	Unit      string
	Flags     uint32

	rng ranges.Range
	def normal.Normal

	value atomic.Uint32 // float32 bits of the normalized value

	formatFunc units.Formatter
	parseFunc  units.Parser
}

// Range returns the parameter's range.
func (p *Parameter) Range() ranges.Range { return p.rng }

// Normal returns the current normalized value.
func (p *Parameter) Normal() normal.Normal {
	return normal.Clamped(math.Float32frombits(p.value.Load()))
}

// SetNormal sets the normalized value, snapping it through the range.
func (p *Parameter) SetNormal(n normal.Normal) {
	p.value.Store(math.Float32bits(p.rng.Snap(n).Float()))
}

// Value returns the current domain value.
func (p *Parameter) Value() float32 {
	return p.rng.FromNormal(p.Normal())
}

// SetValue sets the parameter from a domain value, clamping it to the
// range bounds.
func (p *Parameter) SetValue(v float32) {
	p.SetNormal(p.rng.ToNormal(v))
}

// Default returns the default normalized position.
func (p *Parameter) Default() normal.Normal { return p.def }

// Reset moves the parameter back to its default.
func (p *Parameter) Reset() {
	p.SetNormal(p.def)
}

// Param snapshots the current and default positions as a
// normal.Param for handing to a widget.
func (p *Parameter) Param() normal.Param {
	return normal.Param{Value: p.Normal(), Default: p.def}
}

// FormatNormal renders the domain value at a normalized position.
func (p *Parameter) FormatNormal(n normal.Normal) string {
	v := p.rng.FromNormal(n)
	if p.formatFunc != nil {
		return p.formatFunc(v)
	}
	if _, ok := p.rng.(ranges.IntRange); ok {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}

// Format renders the current value.
func (p *Parameter) Format() string {
	return p.FormatNormal(p.Normal())
}

// Parse reads user input into a normalized position without applying
// it.
func (p *Parameter) Parse(s string) (normal.Normal, error) {
	if p.parseFunc != nil {
		v, err := p.parseFunc(s)
		if err != nil {
			return normal.Min, err
		}
		return p.rng.ToNormal(v), nil
	}
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return normal.Min, fmt.Errorf("param %q: invalid value %q", p.Name, s)
	}
	return p.rng.ToNormal(float32(v)), nil
}

func (p *Parameter) String() string {
	return fmt.Sprintf("%s=%s", p.Name, p.Format())
}
