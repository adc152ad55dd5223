package notify

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/riskibarqy/football-ranking/internal/platform/logging"
)

func TestRecorder_FiltersByLevel(t *testing.T) {
	var rec Recorder
	ctx := context.Background()

	Success(ctx, &rec, "Country created successfully")
	Error(ctx, &rec, "Failed to fetch countries")

	if got := rec.Messages(LevelSuccess); len(got) != 1 || got[0] != "Country created successfully" {
		t.Fatalf("unexpected success messages: %v", got)
	}
	if got := rec.Messages(LevelError); len(got) != 1 || got[0] != "Failed to fetch countries" {
		t.Fatalf("unexpected error messages: %v", got)
	}

	rec.Reset()
	if len(rec.All()) != 0 {
		t.Fatalf("expected empty recorder after reset")
	}
}

func TestMulti_FansOut(t *testing.T) {
	var a, b Recorder
	var buf bytes.Buffer
	m := Multi{&a, nil, &b, NewLogNotifier(logging.NewWriter(&buf, logging.LevelInfo))}

	Error(context.Background(), m, "boom")

	if len(a.All()) != 1 || len(b.All()) != 1 {
		t.Fatalf("expected both recorders to receive the notification")
	}
	if !strings.Contains(buf.String(), `"msg":"boom"`) {
		t.Fatalf("expected log notifier output, got %s", buf.String())
	}
}

func TestNilNotifierIsIgnored(t *testing.T) {
	Success(context.Background(), nil, "ignored")
}
