package normal

// Param is a normalized parameter value paired with its default
// position. Widgets mutate Value on user interaction and jump back to
// Default on a reset gesture (double click, ctrl click).
type Param struct {
	// Value is the current position.
	Value Normal
	// Default is the position restored by Reset.
	Default Normal
}

// NewParam builds a Param with both positions clamped from raw
// float32 values.
func NewParam(value, def float32) Param {
	return Param{
		Value:   Clamped(value),
		Default: Clamped(def),
	}
}

// Reset moves Value back to Default.
func (p *Param) Reset() {
	p.Value = p.Default
}
