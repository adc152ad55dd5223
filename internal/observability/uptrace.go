package observability

import (
	"context"
	"net/url"
	"strings"

	"github.com/uptrace/uptrace-go/uptrace"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/football-ranking/internal/config"
	"github.com/riskibarqy/football-ranking/internal/platform/logging"
)

// Components reported in the ranking.component resource attribute.
const (
	ComponentCLI    = "cli"
	ComponentDevAPI = "dev-api"
)

// InitUptrace exports the traces of one football-ranking component to
// Uptrace. Without UPTRACE_ENABLED or a DSN it returns a no-op shutdown.
func InitUptrace(cfg config.Config, component string, logger *logging.Logger) (func(context.Context) error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	noop := func(context.Context) error { return nil }

	if !cfg.UptraceEnabled {
		logger.Debug("ranking telemetry off", "component", component, "reason", "UPTRACE_ENABLED=false")
		return noop, nil
	}
	if strings.TrimSpace(cfg.UptraceDSN) == "" {
		logger.Debug("ranking telemetry off", "component", component, "reason", "UPTRACE_DSN empty")
		return noop, nil
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(cfg.UptraceDSN),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
		uptrace.WithResourceAttributes(resourceAttributes(cfg, component)...),
	)

	logger.Info("ranking telemetry exporting to uptrace",
		"component", component,
		"service_name", cfg.ServiceName,
		"environment", cfg.AppEnv,
		"api_host", apiHost(cfg.APIURL),
	)
	return uptrace.Shutdown, nil
}

// resourceAttributes tags every span with the component and the ranking API
// it talks to.
func resourceAttributes(cfg config.Config, component string) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("ranking.component", component),
		attribute.Bool("ranking.api.circuit_breaker", cfg.APICircuitEnabled),
	}
	if host := apiHost(cfg.APIURL); host != "" {
		attrs = append(attrs, attribute.String("ranking.api.host", host))
	}
	return attrs
}

func apiHost(raw string) string {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	return parsed.Host
}
