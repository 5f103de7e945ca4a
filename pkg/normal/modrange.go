package normal

// ModRange is the state of a modulation range indicator: the portion
// of a control's travel currently covered by an external modulation
// source.
type ModRange struct {
	// Start is where the modulation range begins.
	Start Normal
	// End is where the modulation range ends. End may be below Start
	// for inverted modulation.
	End Normal
	// FilledVisible controls whether the filled portion is shown
	// while keeping the empty portion visible.
	FilledVisible bool
}

// NewModRange builds a ModRange with the filled portion visible.
func NewModRange(start, end Normal) ModRange {
	return ModRange{Start: start, End: end, FilledVisible: true}
}
