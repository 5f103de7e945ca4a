package marks

import (
	"github.com/glint-audio/paramkit/pkg/normal"
	"github.com/glint-audio/paramkit/pkg/ranges"
	"github.com/glint-audio/paramkit/pkg/units"
)

// Text is a label at a normalized position.
type Text struct {
	Position normal.Normal
	Label    string
}

// TextGroup is an ordered collection of text marks.
type TextGroup struct {
	Texts []Text
}

// Push appends a text mark to the group.
func (g *TextGroup) Push(t Text) {
	g.Texts = append(g.Texts, t)
}

// TextCenter returns a group with a single centered label.
func TextCenter(label string) TextGroup {
	return TextGroup{Texts: []Text{{Position: normal.Center, Label: label}}}
}

// TextMinMax returns labels at both ends.
func TextMinMax(minLabel, maxLabel string) TextGroup {
	return TextGroup{Texts: []Text{
		{Position: normal.Min, Label: minLabel},
		{Position: normal.Max, Label: maxLabel},
	}}
}

// TextEvenlySpaced spreads the labels evenly across the travel,
// endpoints included.
func TextEvenlySpaced(labels ...string) TextGroup {
	n := len(labels)
	if n == 0 {
		return TextGroup{}
	}
	if n == 1 {
		return TextCenter(labels[0])
	}
	g := TextGroup{Texts: make([]Text, 0, n)}
	span := float32(n - 1)
	for i, label := range labels {
		g.Push(Text{Position: normal.Clamped(float32(i) / span), Label: label})
	}
	return g
}

// TextFromRange places a formatted label at each domain value's
// position within the range. Values outside the range clamp to its
// ends.
func TextFromRange(r ranges.Range, values []float32, format units.Formatter) TextGroup {
	g := TextGroup{Texts: make([]Text, 0, len(values))}
	for _, v := range values {
		g.Push(Text{Position: r.ToNormal(v), Label: format(v)})
	}
	return g
}
