package units

import (
	"fmt"
	"strconv"
	"strings"
)

// A Formatter renders a domain value for display.
type Formatter func(value float32) string

// A Parser reads a domain value back from user input.
type Parser func(s string) (float32, error)

func parseFloat(s string) (float32, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0, fmt.Errorf("units: invalid number %q", s)
	}
	return float32(v), nil
}

// FormatFrequency formats a frequency with Hz/kHz units.
func FormatFrequency(hz float32) string {
	if hz >= 1000 {
		return fmt.Sprintf("%.2f kHz", hz/1000)
	}
	return fmt.Sprintf("%.1f Hz", hz)
}

// ParseFrequency parses a frequency string, accepting Hz and kHz
// suffixes.
func ParseFrequency(s string) (float32, error) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)

	if strings.HasSuffix(lower, "khz") {
		v, err := parseFloat(s[:len(s)-3])
		if err != nil {
			return 0, err
		}
		return v * 1000, nil
	}
	if strings.HasSuffix(lower, "hz") {
		return parseFloat(s[:len(s)-2])
	}
	return parseFloat(s)
}

// FormatDecibel formats a dB value, rendering the floor of the range
// as -∞.
func FormatDecibel(floor float32) Formatter {
	return func(db float32) string {
		if db <= floor {
			return "-∞ dB"
		}
		return fmt.Sprintf("%.1f dB", db)
	}
}

// ParseDecibel parses a dB string. Infinity spellings map to the
// given floor.
func ParseDecibel(floor float32) Parser {
	return func(s string) (float32, error) {
		lower := strings.ToLower(strings.TrimSpace(s))
		if strings.Contains(lower, "inf") || strings.Contains(lower, "∞") {
			return floor, nil
		}
		lower = strings.TrimSuffix(lower, "db")
		return parseFloat(lower)
	}
}

// FormatPercent formats a 0..100 percentage value.
func FormatPercent(value float32) string {
	return fmt.Sprintf("%.0f%%", value)
}

// ParsePercent parses a percentage string.
func ParsePercent(s string) (float32, error) {
	return parseFloat(strings.TrimSuffix(strings.TrimSpace(s), "%"))
}

// FormatTime formats a millisecond value with µs/ms/s units.
func FormatTime(ms float32) string {
	switch {
	case ms < 1:
		return fmt.Sprintf("%.0f µs", ms*1000)
	case ms < 1000:
		return fmt.Sprintf("%.1f ms", ms)
	default:
		return fmt.Sprintf("%.2f s", ms/1000)
	}
}

// ParseTime parses a time string into milliseconds, accepting µs, ms
// and s suffixes. A bare number is read as milliseconds.
func ParseTime(s string) (float32, error) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)

	if strings.HasSuffix(lower, "µs") || strings.HasSuffix(lower, "us") {
		trimmed := strings.TrimSuffix(strings.TrimSuffix(s, "µs"), "us")
		v, err := parseFloat(trimmed)
		if err != nil {
			return 0, err
		}
		return v / 1000, nil
	}
	if strings.HasSuffix(lower, "ms") {
		return parseFloat(s[:len(s)-2])
	}
	if strings.HasSuffix(lower, "s") {
		v, err := parseFloat(s[:len(s)-1])
		if err != nil {
			return 0, err
		}
		return v * 1000, nil
	}
	return parseFloat(s)
}

// FormatRatio formats a compression ratio as n:1.
func FormatRatio(value float32) string {
	return fmt.Sprintf("%.1f:1", value)
}

// ParseRatio parses a ratio string, with or without the :1 suffix.
func ParseRatio(s string) (float32, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), ":1")
	return parseFloat(s)
}

// FormatPan formats a -1..1 pan position as L/C/R.
func FormatPan(pan float32) string {
	switch {
	case pan < -0.005:
		return fmt.Sprintf("%.0fL", -pan*100)
	case pan > 0.005:
		return fmt.Sprintf("%.0fR", pan*100)
	default:
		return "C"
	}
}

// ParsePan parses a pan position string into -1..1.
func ParsePan(s string) (float32, error) {
	s = strings.ToUpper(strings.TrimSpace(s))

	if s == "C" || s == "CENTER" {
		return 0, nil
	}
	if strings.HasSuffix(s, "L") {
		v, err := parseFloat(strings.TrimSuffix(s, "L"))
		if err != nil {
			return 0, err
		}
		return -v / 100, nil
	}
	if strings.HasSuffix(s, "R") {
		v, err := parseFloat(strings.TrimSuffix(s, "R"))
		if err != nil {
			return 0, err
		}
		return v / 100, nil
	}
	return parseFloat(s)
}

var noteNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// FormatNote formats a MIDI note number as a note name with octave.
func FormatNote(noteNumber float32) string {
	n := int(noteNumber)
	if n < 0 {
		n = 0
	} else if n > 127 {
		n = 127
	}
	return fmt.Sprintf("%s%d", noteNames[n%12], n/12-1)
}

var noteOffsets = map[string]int{
	"C": 0, "B#": 0,
	"C#": 1, "DB": 1,
	"D": 2,
	"D#": 3, "EB": 3,
	"E": 4, "FB": 4,
	"F": 5, "E#": 5,
	"F#": 6, "GB": 6,
	"G": 7,
	"G#": 8, "AB": 8,
	"A": 9,
	"A#": 10, "BB": 10,
	"B": 11, "CB": 11,
}

// ParseNote parses a note name with octave ("A4", "C#-1") into a MIDI
// note number.
func ParseNote(s string) (float32, error) {
	s = strings.ToUpper(strings.TrimSpace(s))

	octaveStart := -1
	for i, ch := range s {
		if (ch >= '0' && ch <= '9') || ch == '-' {
			octaveStart = i
			break
		}
	}
	if octaveStart <= 0 {
		return 0, fmt.Errorf("units: malformed note %q", s)
	}

	offset, ok := noteOffsets[s[:octaveStart]]
	if !ok {
		return 0, fmt.Errorf("units: unknown note name %q", s[:octaveStart])
	}
	octave, err := strconv.Atoi(s[octaveStart:])
	if err != nil {
		return 0, fmt.Errorf("units: invalid octave in %q", s)
	}
	return float32((octave+1)*12 + offset), nil
}

// FormatOnOff formats a toggle value.
func FormatOnOff(value float32) string {
	if value > 0.5 {
		return "On"
	}
	return "Off"
}

// ParseOnOff parses common toggle spellings.
func ParseOnOff(s string) (float32, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "yes", "true", "1":
		return 1, nil
	case "off", "no", "false", "0":
		return 0, nil
	default:
		return 0, fmt.Errorf("units: expected on or off, got %q", s)
	}
}
