// Package marks builds groups of tick marks and text marks at
// normalized positions along a control's travel. The package only
// computes positions; drawing them is the host toolkit's business.
package marks

import (
	"github.com/glint-audio/paramkit/pkg/normal"
	"github.com/glint-audio/paramkit/pkg/ranges"
)

// Tier is the visual weight of a tick mark, one being the largest.
type Tier int

const (
	TierOne Tier = iota + 1
	TierTwo
	TierThree
)

// Tick is a tick mark at a normalized position.
type Tick struct {
	Position normal.Normal
	Tier     Tier
}

// Group is an ordered collection of tick marks.
type Group struct {
	Ticks []Tick
}

// Push appends a tick mark to the group.
func (g *Group) Push(t Tick) {
	g.Ticks = append(g.Ticks, t)
}

// Center returns a group with a single tick at the center.
func Center(tier Tier) Group {
	return Group{Ticks: []Tick{{Position: normal.Center, Tier: tier}}}
}

// MinMax returns a group with ticks at both ends.
func MinMax(tier Tier) Group {
	return Group{Ticks: []Tick{
		{Position: normal.Min, Tier: tier},
		{Position: normal.Max, Tier: tier},
	}}
}

// MinMaxCenter returns a group with ticks at both ends and the
// center.
func MinMaxCenter(outer, center Tier) Group {
	return Group{Ticks: []Tick{
		{Position: normal.Min, Tier: outer},
		{Position: normal.Max, Tier: outer},
		{Position: normal.Center, Tier: center},
	}}
}

// EvenlySpaced returns count ticks spread evenly across the travel,
// endpoints included. Fewer than two ticks degenerate to a center
// tick.
func EvenlySpaced(count int, tier Tier) Group {
	if count < 2 {
		return Center(tier)
	}
	g := Group{Ticks: make([]Tick, 0, count)}
	span := float32(count - 1)
	for i := 0; i < count; i++ {
		g.Push(Tick{Position: normal.Clamped(float32(i) / span), Tier: tier})
	}
	return g
}

// Subdivided returns outer-tier ticks at every division boundary with
// subdivisions-1 inner-tier ticks between each pair.
func Subdivided(divisions, subdivisions int, outer, inner Tier) Group {
	if divisions < 1 {
		divisions = 1
	}
	if subdivisions < 1 {
		subdivisions = 1
	}
	var g Group
	total := divisions * subdivisions
	for i := 0; i <= total; i++ {
		tier := inner
		if i%subdivisions == 0 {
			tier = outer
		}
		g.Push(Tick{
			Position: normal.Clamped(float32(i) / float32(total)),
			Tier:     tier,
		})
	}
	return g
}

// FromIntRange returns one tick per step of a stepped range, so a
// snapping control can show every position it can land on.
func FromIntRange(r ranges.IntRange, tier Tier) Group {
	g := Group{Ticks: make([]Tick, 0, r.Steps()+1)}
	for v := r.Min(); v <= r.Max(); v++ {
		g.Push(Tick{Position: r.Normal(v), Tier: tier})
	}
	return g
}
