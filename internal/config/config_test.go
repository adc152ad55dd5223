package config

import (
	"testing"
	"time"

	"github.com/riskibarqy/football-ranking/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("API_URL", "")
	t.Setenv("NEXT_PUBLIC_API_URL", "")
	t.Setenv("UPTRACE_ENABLED", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.APIURL != "http://localhost:5000/api" {
		t.Fatalf("unexpected APIURL: %q", cfg.APIURL)
	}
	if cfg.APICircuitEnabled {
		t.Fatalf("expected circuit breaker disabled by default")
	}
	if cfg.APICircuitFailureCount != 5 || cfg.APICircuitOpenTimeout != 15*time.Second || cfg.APICircuitHalfOpenMax != 2 {
		t.Fatalf("unexpected circuit defaults: %+v", cfg)
	}
	if cfg.APIRateLimitRPS != 0 {
		t.Fatalf("expected rate limit disabled by default")
	}
	if cfg.MoversWorkers != 8 || cfg.SearchDebounce != 500*time.Millisecond {
		t.Fatalf("unexpected worker/debounce defaults: %+v", cfg)
	}
	if cfg.LogLevel != logging.LevelError {
		t.Fatalf("unexpected default log level: %s", cfg.LogLevel)
	}
}

func TestLoad_APIURLFallsBackToPublicURL(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("API_URL", "")
	t.Setenv("NEXT_PUBLIC_API_URL", "https://ranking.example.com/api/")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.APIURL != "https://ranking.example.com/api" {
		t.Fatalf("unexpected APIURL: %q", cfg.APIURL)
	}
}

func TestLoad_RejectsInvalidAPIURL(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("API_URL", "ftp://ranking.example.com")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for non http API_URL")
	}
}

func TestLoad_CircuitConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvStage)
	t.Setenv("API_CIRCUIT_ENABLED", "true")
	t.Setenv("API_CIRCUIT_FAILURE_COUNT", "3")
	t.Setenv("API_CIRCUIT_OPEN_TIMEOUT", "30s")
	t.Setenv("API_CIRCUIT_HALF_OPEN_MAX_REQ", "1")
	t.Setenv("API_RATE_LIMIT_RPS", "2.5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.APICircuitEnabled || cfg.APICircuitFailureCount != 3 || cfg.APICircuitOpenTimeout != 30*time.Second || cfg.APICircuitHalfOpenMax != 1 {
		t.Fatalf("unexpected circuit config: %+v", cfg)
	}
	breaker := cfg.CircuitBreaker()
	if !breaker.Enabled || breaker.FailureThreshold != 3 || breaker.HalfOpenMaxReq != 1 {
		t.Fatalf("unexpected breaker config: %+v", breaker)
	}
	if cfg.APIRateLimitRPS != 2.5 {
		t.Fatalf("unexpected rate limit: %v", cfg.APIRateLimitRPS)
	}
}

func TestLoad_InvalidNumbers(t *testing.T) {
	cases := map[string]string{
		"API_CIRCUIT_FAILURE_COUNT": "many",
		"API_CIRCUIT_OPEN_TIMEOUT":  "soon",
		"MOVERS_WORKERS":            "0",
		"API_RATE_LIMIT_RPS":        "-1",
		"SEARCH_DEBOUNCE":           "fast",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", key, value)
			}
		})
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestParseUptraceDSNFromOTLPHeaders(t *testing.T) {
	got := parseUptraceDSNFromOTLPHeaders(`foo=bar, uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`)
	if got != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected dsn: %q", got)
	}
}

func TestLoad_ServerSettings(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("HTTP_ADDR", ":8080")
	t.Setenv("CORS_ALLOWED_ORIGINS", " http://localhost:3000 , ,https://ranking.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected HTTPAddr: %q", cfg.HTTPAddr)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://ranking.example.com" {
		t.Fatalf("unexpected CORS origins: %v", cfg.CORSAllowedOrigins)
	}
}
