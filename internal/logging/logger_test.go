package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"recordio/internal/logging"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(&buf, logging.LevelWarn)

	log.Debugf("dropped")
	log.Infof("dropped too")
	log.Warnf("kept %d", 1)
	log.Errorf("kept %d", 2)

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Fatalf("low-severity lines leaked: %q", out)
	}
	if !strings.Contains(out, "|WARN|kept 1") || !strings.Contains(out, "|ERROR|kept 2") {
		t.Fatalf("missing expected lines: %q", out)
	}
}

func TestLineFormat(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(&buf, logging.LevelDebug)

	log.Infof("hello %s", "world")

	line := strings.TrimSuffix(buf.String(), "\n")
	parts := strings.SplitN(line, "|", 3)
	if len(parts) != 3 {
		t.Fatalf("want ts|LEVEL|msg, got %q", line)
	}
	if parts[1] != "INFO" || parts[2] != "hello world" {
		t.Fatalf("unexpected line %q", line)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]logging.Level{
		"debug":   logging.LevelDebug,
		"Info":    logging.LevelInfo,
		"WARN":    logging.LevelWarn,
		"warning": logging.LevelWarn,
		"error":   logging.LevelError,
		"":        logging.LevelInfo,
		"bogus":   logging.LevelInfo,
	}
	for in, want := range cases {
		if got := logging.ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNop(t *testing.T) {
	// Must not panic or write anywhere.
	log := logging.Nop()
	log.Debugf("x")
	log.Infof("x")
	log.Warnf("x")
	log.Errorf("x")
}
