package observability

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/football-ranking/internal/config"
	"github.com/riskibarqy/football-ranking/internal/platform/logging"
)

func TestInitUptrace_Disabled(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: false,
		ServiceName:    "football-ranking",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	shutdown, err := InitUptrace(cfg, ComponentCLI, logging.NewNop())
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestInitUptrace_EmptyDSNIsNoop(t *testing.T) {
	cfg := config.Config{UptraceEnabled: true, UptraceDSN: "  "}

	shutdown, err := InitUptrace(cfg, ComponentDevAPI, nil)
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestResourceAttributes(t *testing.T) {
	cfg := config.Config{APIURL: "https://rankings.example.com/api", APICircuitEnabled: true}

	got := map[attribute.Key]attribute.Value{}
	for _, kv := range resourceAttributes(cfg, ComponentCLI) {
		got[kv.Key] = kv.Value
	}

	if v := got["ranking.component"].AsString(); v != ComponentCLI {
		t.Fatalf("unexpected component: %q", v)
	}
	if v := got["ranking.api.host"].AsString(); v != "rankings.example.com" {
		t.Fatalf("unexpected api host: %q", v)
	}
	if !got["ranking.api.circuit_breaker"].AsBool() {
		t.Fatalf("expected circuit breaker attribute to be true")
	}
}

func TestResourceAttributes_SkipsUnparsableHost(t *testing.T) {
	for _, kv := range resourceAttributes(config.Config{APIURL: "::bad"}, ComponentDevAPI) {
		if kv.Key == "ranking.api.host" {
			t.Fatalf("unexpected host attribute: %v", kv.Value.AsString())
		}
	}
}
