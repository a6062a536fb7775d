package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestInitOnce(t *testing.T) {
	Reset()
	defer Reset()

	var buf bytes.Buffer
	log := Init(Options{Level: "debug", Output: &buf, Service: "workwise-test"})
	log.Debug().Msg("hello")
	if !strings.Contains(buf.String(), `"service":"workwise-test"`) {
		t.Fatalf("expected service field, got %q", buf.String())
	}

	var other bytes.Buffer
	Init(Options{Level: "error", Output: &other})
	second := Get()
	second.Debug().Msg("second")
	if other.Len() != 0 {
		t.Fatal("second Init must not replace the logger")
	}
	if !strings.Contains(buf.String(), "second") {
		t.Fatalf("expected Get to use the first logger, got %q", buf.String())
	}
}

func TestGetBeforeInit(t *testing.T) {
	Reset()
	log := Get()
	if log.GetLevel() != zerolog.Disabled {
		t.Fatalf("expected disabled logger, got %v", log.GetLevel())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
