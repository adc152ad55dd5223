package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestLogger_WritesKeyValueFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, LevelInfo)

	logger.Warn("fetch failed", "resource", "countries", "error", errors.New("boom"))
	_ = logger.Sync()

	out := buf.String()
	if !strings.Contains(out, `"resource":"countries"`) {
		t.Fatalf("expected resource field, got %s", out)
	}
	if !strings.Contains(out, `"error":"boom"`) {
		t.Fatalf("expected error field, got %s", out)
	}
}

func TestLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, LevelWarn)

	logger.Info("ignored")
	if buf.Len() != 0 {
		t.Fatalf("expected info to be filtered, got %s", buf.String())
	}
	if logger.Enabled(LevelDebug) {
		t.Fatalf("expected debug disabled at warn level")
	}
}

func TestLogger_OddArgsDoNotPanic(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, LevelInfo)

	logger.Info("odd", "dangling")
	if !strings.Contains(buf.String(), `"dangling":null`) {
		t.Fatalf("expected dangling key with null value, got %s", buf.String())
	}
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	var l *Logger
	l.Info("no panic")
	if l.With("k", "v") == nil {
		t.Fatalf("expected nop logger from nil receiver")
	}
}
