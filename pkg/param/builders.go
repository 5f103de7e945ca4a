package param

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/glint-audio/paramkit/pkg/normal"
	"github.com/glint-audio/paramkit/pkg/ranges"
	"github.com/glint-audio/paramkit/pkg/units"
)

// dbZero places 0 dB at its linear position within [min, max].
func dbZero(min, max float32) normal.Normal {
	return normal.Clamped(-min / (max - min))
}

// Gain creates a gain parameter over [-60, +12] dB with a -∞ floor
// display.
func Gain(id uint32, name string) *Builder {
	return New(id, name).
		Range(ranges.MustDB(-60, 12, dbZero(-60, 12))).
		Default(0).
		Unit("dB").
		Formatter(units.FormatDecibel(-60), units.ParseDecibel(-60))
}

// Threshold creates a dynamics threshold parameter in dB.
func Threshold(id uint32, name string, minDB, maxDB, defaultDB float32) *Builder {
	return New(id, name).
		Range(ranges.MustDB(minDB, maxDB, dbZero(minDB, maxDB))).
		Default(defaultDB).
		Unit("dB").
		Formatter(units.FormatDecibel(minDB), units.ParseDecibel(minDB))
}

// Frequency creates a frequency parameter with octave scaling.
func Frequency(id uint32, name string, minHz, maxHz, defaultHz float32) *Builder {
	return New(id, name).
		Range(ranges.MustFreq(minHz, maxHz)).
		Default(defaultHz).
		Unit("Hz").
		Formatter(units.FormatFrequency, units.ParseFrequency)
}

// Mix creates a dry/wet mix parameter (0-100%).
func Mix(id uint32, name string) *Builder {
	return New(id, name).
		Range(ranges.MustFloat(0, 100)).
		Default(100).
		Unit("%").
		Formatter(units.FormatPercent, units.ParsePercent)
}

// Pan creates a stereo pan parameter over [-1, 1].
func Pan(id uint32, name string) *Builder {
	return New(id, name).
		Range(ranges.Bipolar()).
		Default(0).
		Formatter(units.FormatPan, units.ParsePan)
}

// Phase creates a phase parameter (0-360 degrees).
func Phase(id uint32, name string) *Builder {
	return New(id, name).
		Range(ranges.MustFloat(0, 360)).
		Default(0).
		Unit("°").
		Formatter(func(v float32) string {
			return fmt.Sprintf("%.1f°", v)
		}, func(s string) (float32, error) {
			s = strings.TrimSuffix(strings.TrimSpace(s), "°")
			v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
			if err != nil {
				return 0, fmt.Errorf("invalid phase %q", s)
			}
			return float32(v), nil
		})
}

// TimeMS creates a time parameter in milliseconds.
func TimeMS(id uint32, name string, minMS, maxMS, defaultMS float32) *Builder {
	return New(id, name).
		Range(ranges.MustFloat(minMS, maxMS)).
		Default(defaultMS).
		Unit("ms").
		Formatter(units.FormatTime, units.ParseTime)
}

// Attack creates an attack time parameter.
func Attack(id uint32, name string, maxMS float32) *Builder {
	return TimeMS(id, name, 0.1, maxMS, 10)
}

// Release creates a release time parameter.
func Release(id uint32, name string, maxMS float32) *Builder {
	return TimeMS(id, name, 1, maxMS, 100)
}

// Ratio creates a compression ratio parameter.
func Ratio(id uint32, name string, minRatio, maxRatio, defaultRatio float32) *Builder {
	return New(id, name).
		Range(ranges.MustFloat(minRatio, maxRatio)).
		Default(defaultRatio).
		Formatter(units.FormatRatio, units.ParseRatio)
}

// Q creates a filter Q/resonance parameter.
func Q(id uint32, name string, minQ, maxQ, defaultQ float32) *Builder {
	return New(id, name).
		Range(ranges.MustFloat(minQ, maxQ)).
		Default(defaultQ).
		Formatter(func(v float32) string {
			return fmt.Sprintf("%.2f", v)
		}, nil)
}

// Choice creates a stepped multiple-choice parameter. The option
// index is the domain value.
func Choice(id uint32, name string, options []string) *Builder {
	b := New(id, name)
	if len(options) < 2 {
		b.fail("choice needs at least two options")
		return b
	}

	format := func(v float32) string {
		i := int(v + 0.5)
		if i < 0 || i >= len(options) {
			return "Unknown"
		}
		return options[i]
	}
	parse := func(s string) (float32, error) {
		for i, opt := range options {
			if strings.EqualFold(strings.TrimSpace(s), opt) {
				return float32(i), nil
			}
		}
		if i, err := strconv.Atoi(strings.TrimSpace(s)); err == nil && i >= 0 && i < len(options) {
			return float32(i), nil
		}
		return 0, fmt.Errorf("unknown option %q", s)
	}

	return b.
		Range(ranges.MustInt(0, len(options)-1)).
		Default(0).
		Flags(CanAutomate | IsList).
		Formatter(format, parse)
}

// Bypass creates the bypass on/off switch.
func Bypass(id uint32, name string) *Builder {
	return Choice(id, name, []string{"Active", "Bypassed"}).Bypass()
}
