// Package midimap routes MIDI control-change messages to registry
// parameters as normalized values, so hardware controllers can drive
// the same parameters a pointer does.
//
// A Map is meant to be fed from a single MIDI event goroutine; the
// parameters themselves are safe to read from elsewhere.
package midimap

import (
	"fmt"

	"gitlab.com/gomidi/midi/v2"

	"github.com/glint-audio/paramkit/pkg/debuglog"
	"github.com/glint-audio/paramkit/pkg/normal"
	"github.com/glint-audio/paramkit/pkg/param"
)

const (
	max7  = 127
	max14 = 16383

	// pickupWindow is how close an incoming value must come to the
	// current position before a pickup-mode control engages.
	pickupWindow = 1.0 / 64.0
)

type bindKey struct {
	channel    uint8
	controller uint8
}

type binding struct {
	paramID uint32

	// 14-bit CC pairs: the coarse message is held until its fine
	// counterpart arrives.
	is14      bool
	isFine    bool
	partner   *binding
	coarse    uint8
	hasCoarse bool

	// pickup state
	engaged bool
	last    float32
	hasLast bool
}

// Map binds control-change messages to parameters in a registry.
type Map struct {
	reg      *param.Registry
	log      *debuglog.Logger
	pickup   bool
	bindings map[bindKey]*binding
}

// New creates an empty map over a registry.
func New(reg *param.Registry) *Map {
	return &Map{
		reg:      reg,
		log:      debuglog.Default(),
		bindings: make(map[bindKey]*binding),
	}
}

// SetLogger replaces the logger, mainly for tests.
func (m *Map) SetLogger(l *debuglog.Logger) { m.log = l }

// SetPickup enables pickup mode: a bound control only takes over
// once its value reaches the parameter's current position, avoiding
// jumps when a physical knob disagrees with the on-screen state.
func (m *Map) SetPickup(enabled bool) { m.pickup = enabled }

func (m *Map) bind(key bindKey, b *binding) error {
	if m.reg.Get(b.paramID) == nil {
		return fmt.Errorf("midimap: no parameter with ID %d", b.paramID)
	}
	if _, taken := m.bindings[key]; taken {
		return fmt.Errorf("midimap: CC %d on channel %d already bound", key.controller, key.channel)
	}
	m.bindings[key] = b
	return nil
}

// Bind routes a 7-bit control change to a parameter.
func (m *Map) Bind(channel, controller uint8, paramID uint32) error {
	return m.bind(bindKey{channel, controller}, &binding{paramID: paramID})
}

// Bind14 routes a 14-bit coarse/fine control-change pair to a
// parameter. Conventionally fine = coarse + 32.
func (m *Map) Bind14(channel, coarse, fine uint8, paramID uint32) error {
	if coarse == fine {
		return fmt.Errorf("midimap: coarse and fine CC must differ")
	}
	cb := &binding{paramID: paramID, is14: true}
	fb := &binding{paramID: paramID, is14: true, isFine: true, partner: cb}
	if err := m.bind(bindKey{channel, coarse}, cb); err != nil {
		return err
	}
	if err := m.bind(bindKey{channel, fine}, fb); err != nil {
		delete(m.bindings, bindKey{channel, coarse})
		return err
	}
	return nil
}

// Unbind removes the binding for a control, if any.
func (m *Map) Unbind(channel, controller uint8) {
	delete(m.bindings, bindKey{channel, controller})
}

// HandleMessage routes a control-change message to its bound
// parameter. It reports whether the message moved a parameter; other
// message kinds and unbound controls are ignored.
func (m *Map) HandleMessage(msg midi.Message) bool {
	var channel, controller, value uint8
	if !msg.GetControlChange(&channel, &controller, &value) {
		return false
	}

	b, ok := m.bindings[bindKey{channel, controller}]
	if !ok {
		return false
	}

	var incoming float32
	switch {
	case !b.is14:
		incoming = float32(value) / max7
	case b.isFine:
		if !b.partner.hasCoarse {
			return false
		}
		combined := uint16(b.partner.coarse)<<7 | uint16(value)
		incoming = float32(combined) / max14
		b = b.partner
	default:
		b.coarse = value
		b.hasCoarse = true
		return false
	}

	p := m.reg.Get(b.paramID)
	if p == nil {
		return false
	}

	if m.pickup && !m.engage(b, p, incoming) {
		m.log.Debugf("cc %d ch %d waiting for pickup: %.3f vs %.3f",
			controller, channel, incoming, p.Normal().Float())
		return false
	}

	p.SetNormal(normal.Clamped(incoming))
	m.log.Debugf("cc %d ch %d -> %s", controller, channel, p)
	return true
}

// engage decides whether a pickup-mode control has caught the
// parameter: either by coming within the pickup window or by crossing
// the current position between two messages.
func (m *Map) engage(b *binding, p *param.Parameter, incoming float32) bool {
	if b.engaged {
		return true
	}
	cur := p.Normal().Float()
	diff := incoming - cur
	if diff < 0 {
		diff = -diff
	}
	crossed := b.hasLast && (b.last < cur) != (incoming < cur)
	b.last = incoming
	b.hasLast = true
	if diff <= pickupWindow || crossed {
		b.engaged = true
	}
	return b.engaged
}
