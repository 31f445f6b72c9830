package logger

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	if got := ParseLevel(""); got != zerolog.InfoLevel {
		t.Errorf("empty level = %s, want info", got)
	}
	if got := ParseLevel("debug"); got != zerolog.DebugLevel {
		t.Errorf("debug = %s", got)
	}
	if got := ParseLevel("loud"); got != zerolog.InfoLevel {
		t.Errorf("bad level = %s, want info", got)
	}
	t.Setenv("LOG_LEVEL", "warn")
	if got := ParseLevel(""); got != zerolog.WarnLevel {
		t.Errorf("env level = %s, want warn", got)
	}
}
