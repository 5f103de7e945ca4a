// Package ranges maps bounded domain value spaces onto the normalized
// [0, 1] interval. Four range kinds are provided: linear float,
// discrete integer, logarithmic decibel and logarithmic frequency.
//
// Ranges are immutable configuration: construct them once, then
// convert freely. Conversion never fails; out-of-range domain values
// are clamped to the configured bounds and normalized inputs are
// already clamped by the normal.Normal type.
package ranges

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/glint-audio/paramkit/pkg/normal"
)

// Range converts between a domain value space and normalized [0, 1]
// positions.
type Range interface {
	// ToNormal maps a domain value to its normalized position,
	// clamping the value to the range bounds first.
	ToNormal(value float32) normal.Normal

	// FromNormal maps a normalized position back to a domain value.
	FromNormal(n normal.Normal) float32

	// Snap rounds a normalized position to the nearest representable
	// position. Continuous ranges return the position unchanged.
	Snap(n normal.Normal) normal.Normal

	// DefaultNormal returns the normalized position of a domain
	// default value.
	DefaultNormal(def float32) normal.Normal

	// Param builds a normal.Param from a domain value and default.
	Param(value, def float32) normal.Param
}

var (
	_ Range = FloatRange{}
	_ Range = IntRange{}
	_ Range = DBRange{}
	_ Range = FreqRange{}
)

// ConfigError reports an invalid range construction.
type ConfigError struct {
	Kind   string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("ranges: invalid %s range: %s", e.Kind, e.Reason)
}

func configErrorf(kind, format string, args ...any) error {
	return &ConfigError{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

func finite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}

func must[R Range](r R, err error) R {
	if err != nil {
		panic(err)
	}
	return r
}
