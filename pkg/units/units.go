// Package units provides audio unit conversions and the value
// formatters and parsers used to display parameter values.
package units

import "github.com/chewxy/math32"

// DBToAmplitude converts decibels to a linear amplitude factor.
func DBToAmplitude(db float32) float32 {
	return math32.Pow(10.0, db*(1.0/20.0))
}

// AmplitudeToDB converts a linear amplitude factor to decibels.
// Zero and negative amplitudes map to negative infinity.
func AmplitudeToDB(amp float32) float32 {
	if amp <= 0.0 {
		return math32.Inf(-1)
	}
	return 20.0 * math32.Log10(amp)
}
