package param

import (
	"math"
	"testing"

	"github.com/glint-audio/paramkit/pkg/normal"
	"github.com/glint-audio/paramkit/pkg/ranges"
)

func TestParameterDefaults(t *testing.T) {
	p := New(1, "Drive").
		Range(ranges.MustFloat(0, 100)).
		Default(25).
		MustBuild()

	if p.Normal().Float() != 0.25 {
		t.Errorf("initial normal = %v, want 0.25", p.Normal().Float())
	}
	if p.Value() != 25 {
		t.Errorf("initial value = %v, want 25", p.Value())
	}

	p.SetValue(80)
	if p.Value() != 80 {
		t.Errorf("after SetValue(80): %v", p.Value())
	}
	p.Reset()
	if p.Value() != 25 {
		t.Errorf("after Reset: %v, want 25", p.Value())
	}
}

func TestParameterClamping(t *testing.T) {
	p := New(1, "Level").
		Range(ranges.MustFloat(-10, 10)).
		MustBuild()

	p.SetValue(500)
	if p.Value() != 10 {
		t.Errorf("SetValue far above max -> %v, want 10", p.Value())
	}
	p.SetValue(-500)
	if p.Value() != -10 {
		t.Errorf("SetValue far below min -> %v, want -10", p.Value())
	}
}

func TestParameterSnapsSteppedRanges(t *testing.T) {
	p := New(2, "Mode").
		Range(ranges.MustInt(0, 4)).
		MustBuild()

	p.SetNormal(normal.Clamped(0.3))
	// 0.3 * 4 = 1.2, so the stored position must snap to step 1.
	if got := p.Normal().Float(); got != 0.25 {
		t.Errorf("stored normal = %v, want snapped 0.25", got)
	}
	if p.Value() != 1 {
		t.Errorf("value = %v, want 1", p.Value())
	}
}

func TestParameterFormat(t *testing.T) {
	continuous := New(1, "Amount").
		Range(ranges.MustFloat(0, 2)).
		Default(0.5).
		MustBuild()
	if got := continuous.Format(); got != "0.50" {
		t.Errorf("default float formatting = %q", got)
	}

	stepped := New(2, "Steps").
		Range(ranges.MustInt(0, 8)).
		Default(3).
		MustBuild()
	if got := stepped.Format(); got != "3" {
		t.Errorf("default int formatting = %q", got)
	}
}

func TestParameterParse(t *testing.T) {
	p := New(1, "Width").
		Range(ranges.MustFloat(0, 200)).
		MustBuild()

	n, err := p.Parse("50")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if n.Float() != 0.25 {
		t.Errorf("Parse(50) normal = %v, want 0.25", n.Float())
	}
	if _, err := p.Parse("wide"); err == nil {
		t.Error("Parse(wide) expected error")
	}
}

func TestParameterParamSnapshot(t *testing.T) {
	p := Gain(1, "Gain").MustBuild()
	p.SetValue(-6)
	snap := p.Param()
	if snap.Value != p.Normal() || snap.Default != p.Default() {
		t.Errorf("snapshot mismatch: %+v", snap)
	}
	snap.Reset()
	if snap.Value != p.Default() {
		t.Error("snapshot Reset should land on the parameter default")
	}
}

func TestParameterConcurrentAccess(t *testing.T) {
	p := New(1, "Busy").MustBuild()
	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			p.SetNormal(normal.Clamped(float32(i) / 1000))
		}
		close(done)
	}()
	for i := 0; i < 1000; i++ {
		n := p.Normal().Float()
		if n < 0 || n > 1 || math.IsNaN(float64(n)) {
			t.Fatalf("read invalid normal %v", n)
		}
	}
	<-done
}
