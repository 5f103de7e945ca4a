package ranges

import (
	"math"
	"testing"

	"github.com/glint-audio/paramkit/pkg/normal"
)

func TestNewFloatErrors(t *testing.T) {
	tests := []struct {
		name     string
		min, max float32
	}{
		{"Inverted", 1, 0},
		{"Equal", 3, 3},
		{"NaNMin", float32(math.NaN()), 1},
		{"InfMax", 0, float32(math.Inf(1))},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := NewFloat(test.min, test.max); err == nil {
				t.Errorf("NewFloat(%v, %v) expected error", test.min, test.max)
			}
		})
	}
}

func TestFloatRoundTrip(t *testing.T) {
	r := MustFloat(-30.0, 30.0)
	for _, v := range []float32{-30, -15.5, -1, 0, 0.25, 12, 30} {
		got := r.FromNormal(r.ToNormal(v))
		if math.Abs(float64(got-v)) > 1e-4 {
			t.Errorf("round trip of %v = %v", v, got)
		}
	}
}

func TestFloatClamping(t *testing.T) {
	r := MustFloat(0.0, 10.0)

	if n := r.ToNormal(-1000.0); n != normal.Min {
		t.Errorf("ToNormal far below min = %v, want 0", n.Float())
	}
	if n := r.ToNormal(1000.0); n != normal.Max {
		t.Errorf("ToNormal far above max = %v, want 1", n.Float())
	}
	if v := r.FromNormal(normal.Clamped(-5.0)); v != 0.0 {
		t.Errorf("FromNormal(clamped -5) = %v, want min", v)
	}
	if v := r.FromNormal(normal.Clamped(5.0)); v != 10.0 {
		t.Errorf("FromNormal(clamped 5) = %v, want max", v)
	}
}

func TestFloatSnapIsIdentity(t *testing.T) {
	r := Bipolar()
	for _, f := range []float32{0, 0.1, 0.33, 0.5, 0.99, 1} {
		n := normal.Clamped(f)
		if r.Snap(n) != n {
			t.Errorf("Snap(%v) changed a continuous position", f)
		}
	}
}

func TestFloatParam(t *testing.T) {
	r := MustFloat(0.0, 100.0)
	p := r.Param(25.0, 50.0)
	if p.Value.Float() != 0.25 {
		t.Errorf("Param value = %v, want 0.25", p.Value.Float())
	}
	if p.Default != normal.Center {
		t.Errorf("Param default = %v, want 0.5", p.Default.Float())
	}
	if n := r.DefaultNormal(75.0); n.Float() != 0.75 {
		t.Errorf("DefaultNormal(75) = %v, want 0.75", n.Float())
	}
}

func TestUnitAndBipolar(t *testing.T) {
	if u := Unit(); u.Min() != 0 || u.Max() != 1 {
		t.Errorf("Unit() = [%v, %v]", u.Min(), u.Max())
	}
	b := Bipolar()
	if b.ToNormal(0.0) != normal.Center {
		t.Errorf("Bipolar().ToNormal(0) = %v, want center", b.ToNormal(0.0).Float())
	}
}
