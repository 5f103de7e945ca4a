package param

import (
	"math"
	"testing"

	"github.com/glint-audio/paramkit/pkg/normal"
	"github.com/glint-audio/paramkit/pkg/ranges"
)

func TestGain(t *testing.T) {
	p := Gain(1, "Output Gain").MustBuild()

	if p.Unit != "dB" {
		t.Errorf("Unit = %q, want dB", p.Unit)
	}
	if v := p.Value(); v != 0 {
		t.Errorf("default = %v dB, want 0", v)
	}

	t.Run("Formatter", func(t *testing.T) {
		tests := []struct {
			db   float32
			want string
		}{
			{-60, "-∞ dB"},
			{0, "0.0 dB"},
			{6, "6.0 dB"},
			{-6, "-6.0 dB"},
		}
		for _, test := range tests {
			p.SetValue(test.db)
			if got := p.Format(); got != test.want {
				t.Errorf("Format(%v dB) = %q, want %q", test.db, got, test.want)
			}
		}
	})

	t.Run("Parser", func(t *testing.T) {
		n, err := p.Parse("-6 dB")
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		got := p.Range().FromNormal(n)
		if math.Abs(float64(got+6)) > 0.01 {
			t.Errorf("Parse(-6 dB) -> %v", got)
		}
	})
}

func TestFrequencyBuilder(t *testing.T) {
	p := Frequency(1, "Cutoff", 20, 20000, 1000).MustBuild()

	fr, ok := p.Range().(ranges.FreqRange)
	if !ok {
		t.Fatalf("range is %T, want FreqRange", p.Range())
	}
	if fr.Min() != 20 || fr.Max() != 20000 {
		t.Errorf("bounds [%v, %v]", fr.Min(), fr.Max())
	}
	if math.Abs(float64(p.Value()-1000)) > 0.5 {
		t.Errorf("default = %v Hz, want 1000", p.Value())
	}
	p.SetValue(12500)
	if got := p.Format(); got != "12.50 kHz" {
		t.Errorf("Format = %q", got)
	}
}

func TestChoice(t *testing.T) {
	p := Choice(1, "Mode", []string{"Off", "Low", "High"}).MustBuild()

	if p.Flags&IsList == 0 {
		t.Error("Choice should set IsList")
	}

	t.Run("Formatter", func(t *testing.T) {
		for i, want := range []string{"Off", "Low", "High"} {
			p.SetValue(float32(i))
			if got := p.Format(); got != want {
				t.Errorf("Format(option %d) = %q, want %q", i, got, want)
			}
		}
	})

	t.Run("Parser", func(t *testing.T) {
		tests := []struct {
			input string
			want  int
		}{
			{"Off", 0},
			{"low", 1},
			{"HIGH", 2},
			{"2", 2},
		}
		ir := p.Range().(ranges.IntRange)
		for _, test := range tests {
			n, err := p.Parse(test.input)
			if err != nil {
				t.Errorf("Parse(%q) error: %v", test.input, err)
				continue
			}
			if got := ir.Value(n); got != test.want {
				t.Errorf("Parse(%q) -> option %d, want %d", test.input, got, test.want)
			}
		}
		if _, err := p.Parse("sideways"); err == nil {
			t.Error("Parse(sideways) expected error")
		}
	})

	t.Run("TooFewOptions", func(t *testing.T) {
		if _, err := Choice(2, "Broken", []string{"only"}).Build(); err == nil {
			t.Error("single-option choice should fail to build")
		}
	})
}

func TestBypass(t *testing.T) {
	p := Bypass(1, "Bypass").MustBuild()
	if p.Flags&IsBypass == 0 {
		t.Error("Bypass flag not set")
	}
	if got := p.Format(); got != "Active" {
		t.Errorf("default = %q, want Active", got)
	}
	p.SetValue(1)
	if got := p.Format(); got != "Bypassed" {
		t.Errorf("after SetValue(1) = %q", got)
	}
}

func TestPanBuilder(t *testing.T) {
	p := Pan(1, "Pan").MustBuild()
	if got := p.Format(); got != "C" {
		t.Errorf("default pan = %q, want C", got)
	}
	p.SetNormal(normal.Min)
	if got := p.Format(); got != "100L" {
		t.Errorf("full left = %q", got)
	}
	p.SetNormal(normal.Max)
	if got := p.Format(); got != "100R" {
		t.Errorf("full right = %q", got)
	}
}

func TestThresholdZeroAtTop(t *testing.T) {
	p := Threshold(1, "Threshold", -60, 0, -20).MustBuild()
	dr := p.Range().(ranges.DBRange)
	if dr.Zero() != normal.Max {
		t.Errorf("an all-negative threshold should put 0 dB at the top, got %v", dr.Zero().Float())
	}
	if math.Abs(float64(p.Value()+20)) > 0.01 {
		t.Errorf("default = %v dB, want -20", p.Value())
	}
}

func TestTimeBuilders(t *testing.T) {
	p := Attack(1, "Attack", 100).MustBuild()
	if got := p.Format(); got != "10.0 ms" {
		t.Errorf("attack default = %q", got)
	}
	rel := Release(2, "Release", 2000).MustBuild()
	if got := rel.Format(); got != "100.0 ms" {
		t.Errorf("release default = %q", got)
	}
}
