package debuglog

import (
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf strings.Builder
	l := New(&buf, "test", FlagLevel|FlagPrefix)
	l.SetLevel(LevelWarn)

	l.Debugf("hidden")
	l.Infof("hidden")
	l.Warnf("shown %d", 1)
	l.Errorf("shown %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("low levels leaked through: %q", out)
	}
	if !strings.Contains(out, "WARN [test] shown 1") {
		t.Errorf("missing warn line: %q", out)
	}
	if !strings.Contains(out, "ERROR [test] shown 2") {
		t.Errorf("missing error line: %q", out)
	}
}

func TestLevelOff(t *testing.T) {
	var buf strings.Builder
	l := New(&buf, "", 0)
	l.SetLevel(LevelOff)
	l.Errorf("never")
	if buf.Len() != 0 {
		t.Errorf("LevelOff still wrote: %q", buf.String())
	}
}

func TestLevelString(t *testing.T) {
	for level, want := range map[Level]string{
		LevelDebug: "DEBUG",
		LevelInfo:  "INFO",
		LevelWarn:  "WARN",
		LevelError: "ERROR",
	} {
		if got := level.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", level, got, want)
		}
	}
}
