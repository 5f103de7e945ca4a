package marks

import (
	"math"
	"testing"

	"github.com/glint-audio/paramkit/pkg/normal"
	"github.com/glint-audio/paramkit/pkg/ranges"
	"github.com/glint-audio/paramkit/pkg/units"
)

func TestMinMaxCenter(t *testing.T) {
	g := MinMaxCenter(TierOne, TierTwo)
	if len(g.Ticks) != 3 {
		t.Fatalf("len = %d, want 3", len(g.Ticks))
	}
	if g.Ticks[0].Position != normal.Min || g.Ticks[1].Position != normal.Max {
		t.Error("outer ticks misplaced")
	}
	if g.Ticks[2].Position != normal.Center || g.Ticks[2].Tier != TierTwo {
		t.Error("center tick misplaced")
	}
}

func TestEvenlySpaced(t *testing.T) {
	g := EvenlySpaced(5, TierTwo)
	if len(g.Ticks) != 5 {
		t.Fatalf("len = %d, want 5", len(g.Ticks))
	}
	for i, tick := range g.Ticks {
		want := float32(i) / 4
		if tick.Position.Float() != want {
			t.Errorf("tick %d at %v, want %v", i, tick.Position.Float(), want)
		}
	}

	if g := EvenlySpaced(1, TierOne); len(g.Ticks) != 1 || g.Ticks[0].Position != normal.Center {
		t.Error("degenerate count should produce a center tick")
	}
}

func TestSubdivided(t *testing.T) {
	g := Subdivided(4, 2, TierOne, TierTwo)
	if len(g.Ticks) != 9 {
		t.Fatalf("len = %d, want 9", len(g.Ticks))
	}
	for i, tick := range g.Ticks {
		want := TierTwo
		if i%2 == 0 {
			want = TierOne
		}
		if tick.Tier != want {
			t.Errorf("tick %d tier = %v, want %v", i, tick.Tier, want)
		}
	}
	if g.Ticks[0].Position != normal.Min || g.Ticks[8].Position != normal.Max {
		t.Error("endpoints misplaced")
	}
}

func TestFromIntRange(t *testing.T) {
	r := ranges.MustInt(0, 4)
	g := FromIntRange(r, TierThree)
	if len(g.Ticks) != 5 {
		t.Fatalf("len = %d, want one tick per step position", len(g.Ticks))
	}
	for i, tick := range g.Ticks {
		if tick.Position != r.Normal(i) {
			t.Errorf("tick %d not on step position", i)
		}
	}
}

func TestTextEvenlySpaced(t *testing.T) {
	g := TextEvenlySpaced("Low", "Mid", "High")
	if len(g.Texts) != 3 {
		t.Fatalf("len = %d, want 3", len(g.Texts))
	}
	if g.Texts[1].Position != normal.Center || g.Texts[1].Label != "Mid" {
		t.Errorf("middle label misplaced: %+v", g.Texts[1])
	}
}

func TestTextFromRange(t *testing.T) {
	r := ranges.MustFreq(20, 20480)
	g := TextFromRange(r, []float32{20, 640, 20480}, units.FormatFrequency)

	if len(g.Texts) != 3 {
		t.Fatalf("len = %d, want 3", len(g.Texts))
	}
	if g.Texts[0].Position != normal.Min || g.Texts[0].Label != "20.0 Hz" {
		t.Errorf("min mark = %+v", g.Texts[0])
	}
	// 640 Hz is five octaves above 20 Hz: exactly halfway.
	if math.Abs(float64(g.Texts[1].Position.Float()-0.5)) > 1e-4 {
		t.Errorf("640 Hz at %v, want 0.5", g.Texts[1].Position.Float())
	}
	if g.Texts[2].Position != normal.Max || g.Texts[2].Label != "20.48 kHz" {
		t.Errorf("max mark = %+v", g.Texts[2])
	}
}
