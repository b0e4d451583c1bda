package logx_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/jmvelez/portfolio-api/pkg/logx"
)

func newBufferLogger(format logx.Format) (*logx.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	cfg := logx.DefaultConfig()
	cfg.Format = format
	cfg.EnableColors = false
	cfg.Output = &buf
	return logx.NewLogger(cfg), &buf
}

func TestJSONFormat(t *testing.T) {
	logger, buf := newBufferLogger(logx.FormatJSON)

	logger.WithFields(logx.Fields{"transport": "smtp"}).
		WithError(errors.New("boom")).
		Error("dispatch failed")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %q", buf.String())
	}
	if entry["level"] != "ERROR" || entry["message"] != "dispatch failed" {
		t.Fatalf("entry = %v", entry)
	}
	if entry["transport"] != "smtp" || entry["error"] != "boom" {
		t.Fatalf("fields missing: %v", entry)
	}
}

func TestConsoleFormat(t *testing.T) {
	logger, buf := newBufferLogger(logx.FormatConsole)

	logger.WithField("code", "X_1").Warn("something odd")

	out := buf.String()
	if !strings.Contains(out, "[WARN]") || !strings.Contains(out, "something odd") || !strings.Contains(out, "code=X_1") {
		t.Fatalf("unexpected console output: %q", out)
	}
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(logx.FormatConsole)
	logger.SetLevel(logx.LevelError)

	logger.WithField("k", "v").Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("info logged below level: %q", buf.String())
	}

	logger.WithField("k", "v").Error("visible")
	if buf.Len() == 0 {
		t.Fatal("error suppressed")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]logx.Level{
		"debug":   logx.LevelDebug,
		"INFO":    logx.LevelInfo,
		"Warning": logx.LevelWarn,
		"error":   logx.LevelError,
		"off":     logx.LevelOff,
		"bogus":   logx.LevelInfo,
	}
	for in, want := range cases {
		if got := logx.ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
