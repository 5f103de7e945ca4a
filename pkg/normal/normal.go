// Package normal provides a float32 scalar guaranteed to stay within
// the closed interval [0, 1]. It is the universal currency between
// widget positions and domain parameter values.
package normal

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Normal is a float32 value constrained to 0.0 <= value <= 1.0.
// The zero value is a valid Normal at the minimum position.
type Normal struct {
	value float32
}

// Common positions.
var (
	// Min is a Normal at 0.0.
	Min = Normal{0.0}
	// Center is a Normal at 0.5.
	Center = Normal{0.5}
	// Max is a Normal at 1.0.
	Max = Normal{1.0}
)

// OutOfRangeError is returned when building a Normal from a value
// outside [0, 1].
type OutOfRangeError struct {
	Value float32
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("normal: %v out of range [0, 1]", e.Value)
}

// Clamped builds a Normal from v, clamping it into [0, 1].
// NaN maps to 0.
func Clamped(v float32) Normal {
	if math32.IsNaN(v) || v < 0.0 {
		return Normal{0.0}
	}
	if v > 1.0 {
		return Normal{1.0}
	}
	return Normal{v}
}

// New builds a Normal from v, returning an error if v lies outside
// [0, 1].
func New(v float32) (Normal, error) {
	if math32.IsNaN(v) || v < 0.0 || v > 1.0 {
		return Normal{}, &OutOfRangeError{Value: v}
	}
	return Normal{v}, nil
}

// Set replaces the value, clamping it into [0, 1].
func (n *Normal) Set(v float32) {
	*n = Clamped(v)
}

// Float returns the value as a float32.
func (n Normal) Float() float32 { return n.value }

// Inv returns 1.0 - value.
func (n Normal) Inv() float32 { return 1.0 - n.value }

// Scale returns value * scalar.
func (n Normal) Scale(scalar float32) float32 { return n.value * scalar }

// ScaleInv returns (1.0 - value) * scalar.
func (n Normal) ScaleInv(scalar float32) float32 {
	return (1.0 - n.value) * scalar
}

// Less reports whether n is below other.
func (n Normal) Less(other Normal) bool { return n.value < other.value }

func (n Normal) String() string {
	return fmt.Sprintf("%.6g", n.value)
}
