package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/football-ranking/internal/platform/logging"
	"github.com/riskibarqy/football-ranking/internal/platform/resilience"
)

const defaultAPIURL = "http://localhost:5000/api"

// Config stores runtime configuration for the ranking client.
type Config struct {
	AppEnv                 string
	ServiceName            string
	ServiceVersion         string
	APIURL                 string
	HTTPAddr               string
	CORSAllowedOrigins     []string
	APICircuitEnabled      bool
	APICircuitFailureCount int
	APICircuitOpenTimeout  time.Duration
	APICircuitHalfOpenMax  int
	APIRateLimitRPS        float64
	APIRateLimitBurst      int
	MoversWorkers          int
	SearchDebounce         time.Duration
	UptraceEnabled         bool
	UptraceDSN             string
	LogLevel               logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	apiURL, err := parseAPIURL(getEnv("API_URL", getEnv("NEXT_PUBLIC_API_URL", defaultAPIURL)))
	if err != nil {
		return Config{}, err
	}

	circuitEnabled, err := strconv.ParseBool(getEnv("API_CIRCUIT_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse API_CIRCUIT_ENABLED: %w", err)
	}
	circuitFailureCount, err := getEnvAsInt("API_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse API_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if circuitFailureCount <= 0 {
		return Config{}, fmt.Errorf("API_CIRCUIT_FAILURE_COUNT must be > 0")
	}
	circuitOpenTimeout, err := time.ParseDuration(getEnv("API_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse API_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if circuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("API_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	circuitHalfOpenMax, err := getEnvAsInt("API_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse API_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if circuitHalfOpenMax <= 0 {
		return Config{}, fmt.Errorf("API_CIRCUIT_HALF_OPEN_MAX_REQ must be > 0")
	}

	rateLimit, err := strconv.ParseFloat(strings.TrimSpace(getEnv("API_RATE_LIMIT_RPS", "0")), 64)
	if err != nil {
		return Config{}, fmt.Errorf("parse API_RATE_LIMIT_RPS: %w", err)
	}
	if rateLimit < 0 {
		return Config{}, fmt.Errorf("API_RATE_LIMIT_RPS must be >= 0")
	}
	rateBurst, err := getEnvAsInt("API_RATE_LIMIT_BURST", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse API_RATE_LIMIT_BURST: %w", err)
	}

	moversWorkers, err := getEnvAsInt("MOVERS_WORKERS", 8)
	if err != nil {
		return Config{}, fmt.Errorf("parse MOVERS_WORKERS: %w", err)
	}
	if moversWorkers <= 0 {
		return Config{}, fmt.Errorf("MOVERS_WORKERS must be > 0")
	}

	searchDebounce, err := time.ParseDuration(getEnv("SEARCH_DEBOUNCE", "500ms"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SEARCH_DEBOUNCE: %w", err)
	}
	if searchDebounce < 0 {
		return Config{}, fmt.Errorf("SEARCH_DEBOUNCE must be >= 0")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	return Config{
		AppEnv:                 appEnv,
		ServiceName:            getEnv("SERVICE_NAME", "football-ranking"),
		ServiceVersion:         getEnv("SERVICE_VERSION", "dev"),
		APIURL:                 apiURL,
		HTTPAddr:               getEnv("HTTP_ADDR", ":5000"),
		CORSAllowedOrigins:     parseCSV(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		APICircuitEnabled:      circuitEnabled,
		APICircuitFailureCount: circuitFailureCount,
		APICircuitOpenTimeout:  circuitOpenTimeout,
		APICircuitHalfOpenMax:  circuitHalfOpenMax,
		APIRateLimitRPS:        rateLimit,
		APIRateLimitBurst:      max(rateBurst, 1),
		MoversWorkers:          moversWorkers,
		SearchDebounce:         searchDebounce,
		UptraceEnabled:         uptraceEnabled,
		UptraceDSN:             uptraceDSN,
		LogLevel:               parseLogLevel(getEnv("APP_LOG_LEVEL", "error")),
	}, nil
}

// CircuitBreaker maps the API_CIRCUIT_* keys onto the client breaker config.
func (c Config) CircuitBreaker() resilience.CircuitBreakerConfig {
	return resilience.CircuitBreakerConfig{
		Enabled:          c.APICircuitEnabled,
		FailureThreshold: c.APICircuitFailureCount,
		OpenTimeout:      c.APICircuitOpenTimeout,
		HalfOpenMaxReq:   c.APICircuitHalfOpenMax,
	}
}

func parseAPIURL(raw string) (string, error) {
	candidate := strings.TrimSpace(raw)
	parsed, err := url.Parse(candidate)
	if err != nil {
		return "", fmt.Errorf("parse API_URL %q: %w", candidate, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("API_URL %q uses unsupported scheme=%q; expected http or https", candidate, parsed.Scheme)
	}
	if strings.TrimSpace(parsed.Host) == "" {
		return "", fmt.Errorf("API_URL %q has empty host", candidate)
	}
	return strings.TrimRight(candidate, "/"), nil
}

func parseCSV(raw string) []string {
	items := strings.Split(raw, ",")
	out := make([]string, 0, len(items))
	for _, item := range items {
		if v := strings.TrimSpace(item); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "info":
		return logging.LevelInfo
	case "error":
		return logging.LevelError
	default:
		return logging.LevelWarn
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
