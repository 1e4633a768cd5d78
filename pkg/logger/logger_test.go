package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestInit_OnlyFirstCallTakesEffect(t *testing.T) {
	Reset()
	defer Reset()

	var buf bytes.Buffer
	Init(Options{Level: "debug", Output: &buf})
	Init(Options{Level: "error", Output: &bytes.Buffer{}})

	log := Get()
	log.Debug().Msg("still debug")
	if !strings.Contains(buf.String(), "still debug") {
		t.Fatalf("second Init reconfigured the logger: %q", buf.String())
	}
}

func TestComponent_TagsEntries(t *testing.T) {
	Reset()
	defer Reset()

	var buf bytes.Buffer
	Init(Options{Level: "info", Output: &buf})

	audit := Component("audit")
	audit.Info().Msg("event stored")
	if !strings.Contains(buf.String(), `"component":"audit"`) {
		t.Fatalf("component tag missing: %q", buf.String())
	}
}

func TestParseLevel_DefaultsToInfo(t *testing.T) {
	for _, s := range []string{"", "verbose", "  INFO  "} {
		if got := parseLevel(s); got.String() != "info" {
			t.Fatalf("parseLevel(%q) = %s, want info", s, got)
		}
	}
}
