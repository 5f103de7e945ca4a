package param

import (
	"fmt"

	"github.com/glint-audio/paramkit/pkg/ranges"
	"github.com/glint-audio/paramkit/pkg/units"
)

// Builder provides a fluent API for creating parameters.
type Builder struct {
	p   *Parameter
	def float32
	err error
}

// New creates a parameter builder. The range defaults to [0, 1].
func New(id uint32, name string) *Builder {
	return &Builder{
		p: &Parameter{
			ID:        id,
			Name:      name,
			ShortName: name,
			Flags:     CanAutomate,
			rng:       ranges.Unit(),
		},
	}
}

// ShortName sets the abbreviated display name.
func (b *Builder) ShortName(name string) *Builder {
	b.p.ShortName = name
	return b
}

// Range sets the parameter's range.
func (b *Builder) Range(r ranges.Range) *Builder {
	if r == nil {
		b.fail("range must not be nil")
		return b
	}
	b.p.rng = r
	return b
}

// Default sets the default domain value. It is resolved against the
// range at Build time, so Range and Default may come in any order.
func (b *Builder) Default(value float32) *Builder {
	b.def = value
	return b
}

// Unit sets the unit string.
func (b *Builder) Unit(unit string) *Builder {
	b.p.Unit = unit
	return b
}

// Flags replaces the parameter flags.
func (b *Builder) Flags(flags uint32) *Builder {
	b.p.Flags = flags
	return b
}

// Formatter sets custom value formatting and parsing.
func (b *Builder) Formatter(format units.Formatter, parse units.Parser) *Builder {
	b.p.formatFunc = format
	b.p.parseFunc = parse
	return b
}

// ReadOnly marks the parameter as read-only and not automatable.
func (b *Builder) ReadOnly() *Builder {
	b.p.Flags |= IsReadOnly
	b.p.Flags &^= CanAutomate
	return b
}

// Hidden marks the parameter as hidden from generic UIs.
func (b *Builder) Hidden() *Builder {
	b.p.Flags |= IsHidden
	return b
}

// Bypass marks this as the bypass parameter.
func (b *Builder) Bypass() *Builder {
	b.p.Flags |= IsBypass
	return b
}

func (b *Builder) fail(format string, args ...any) {
	if b.err == nil {
		b.err = fmt.Errorf("param %q: %s", b.p.Name, fmt.Sprintf(format, args...))
	}
}

// Build finalizes the parameter, seeding its value to the default.
func (b *Builder) Build() (*Parameter, error) {
	if b.err != nil {
		return nil, b.err
	}
	b.p.def = b.p.rng.DefaultNormal(b.def)
	b.p.Reset()
	return b.p, nil
}

// MustBuild is Build panicking on error, for literal configs.
func (b *Builder) MustBuild() *Parameter {
	p, err := b.Build()
	if err != nil {
		panic(err)
	}
	return p
}
