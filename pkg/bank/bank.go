// Package bank loads declarative parameter bank definitions from
// YAML into a param.Registry, so a front end can describe its
// controls as data.
//
// A bank document looks like:
//
//	params:
//	  - id: 1
//	    name: Gain
//	    unit: dB
//	    default: 0
//	    range: {kind: db, min: -24, max: 24, zero: 0.5}
//	  - id: 2
//	    name: Cutoff
//	    unit: Hz
//	    default: 1000
//	    range: {kind: freq, min: 20, max: 20000}
//	  - id: 3
//	    name: Mode
//	    choices: [Clean, Crunch, Fuzz]
package bank

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/glint-audio/paramkit/pkg/normal"
	"github.com/glint-audio/paramkit/pkg/param"
	"github.com/glint-audio/paramkit/pkg/ranges"
	"github.com/glint-audio/paramkit/pkg/units"
)

// File is the top-level bank document.
type File struct {
	Params []Entry `yaml:"params"`
}

// Entry describes one parameter.
type Entry struct {
	ID        uint32    `yaml:"id"`
	Name      string    `yaml:"name"`
	ShortName string    `yaml:"short_name,omitempty"`
	Unit      string    `yaml:"unit,omitempty"`
	Default   float32   `yaml:"default,omitempty"`
	Range     RangeSpec `yaml:"range,omitempty"`
	Choices   []string  `yaml:"choices,omitempty"`
	ReadOnly  bool      `yaml:"read_only,omitempty"`
	Hidden    bool      `yaml:"hidden,omitempty"`
	Bypass    bool      `yaml:"bypass,omitempty"`
}

// RangeSpec describes a range variant. Kind is one of "float",
// "int", "db" or "freq"; zero applies only to dB ranges and defaults
// to the linear position of 0 dB.
type RangeSpec struct {
	Kind string   `yaml:"kind"`
	Min  float32  `yaml:"min"`
	Max  float32  `yaml:"max"`
	Zero *float32 `yaml:"zero,omitempty"`
}

func (s RangeSpec) build() (ranges.Range, error) {
	switch s.Kind {
	case "", "float":
		return ranges.NewFloat(s.Min, s.Max)
	case "int":
		return ranges.NewInt(int(s.Min), int(s.Max))
	case "db":
		zero := normal.Clamped(-s.Min / (s.Max - s.Min))
		if s.Zero != nil {
			zero = normal.Clamped(*s.Zero)
		}
		return ranges.NewDB(s.Min, s.Max, zero)
	case "freq":
		return ranges.NewFreq(s.Min, s.Max)
	default:
		return nil, fmt.Errorf("unknown range kind %q", s.Kind)
	}
}

func (e Entry) build() (*param.Parameter, error) {
	if e.Name == "" {
		return nil, fmt.Errorf("bank: parameter %d has no name", e.ID)
	}

	var b *param.Builder
	if len(e.Choices) > 0 {
		b = param.Choice(e.ID, e.Name, e.Choices)
	} else {
		r, err := e.Range.build()
		if err != nil {
			return nil, fmt.Errorf("bank: parameter %q: %w", e.Name, err)
		}
		b = param.New(e.ID, e.Name).Range(r)

		// Attach the formatter matching the declared range/unit.
		switch e.Range.Kind {
		case "db":
			b.Formatter(units.FormatDecibel(e.Range.Min), units.ParseDecibel(e.Range.Min))
		case "freq":
			b.Formatter(units.FormatFrequency, units.ParseFrequency)
		default:
			switch e.Unit {
			case "%":
				b.Formatter(units.FormatPercent, units.ParsePercent)
			case "ms":
				b.Formatter(units.FormatTime, units.ParseTime)
			}
		}
	}

	b.Default(e.Default)
	if e.ShortName != "" {
		b.ShortName(e.ShortName)
	}
	if e.Unit != "" {
		b.Unit(e.Unit)
	}
	if e.ReadOnly {
		b.ReadOnly()
	}
	if e.Hidden {
		b.Hidden()
	}
	if e.Bypass {
		b.Bypass()
	}

	p, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("bank: %w", err)
	}
	return p, nil
}

// Load parses a YAML bank document and builds its registry. Unknown
// fields are rejected so typos in hand-written banks surface early.
func Load(data []byte) (*param.Registry, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("bank: parsing: %w", err)
	}
	if len(f.Params) == 0 {
		return nil, fmt.Errorf("bank: no parameters defined")
	}

	reg := param.NewRegistry()
	for _, e := range f.Params {
		p, err := e.build()
		if err != nil {
			return nil, err
		}
		if err := reg.Add(p); err != nil {
			return nil, fmt.Errorf("bank: %w", err)
		}
	}
	return reg, nil
}

// LoadFile reads and parses a YAML bank file.
func LoadFile(path string) (*param.Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("bank: reading %s: %w", path, err)
	}
	return Load(data)
}
