package app

import (
	"context"

	"github.com/riskibarqy/football-ranking/external/rankingapi"
	"github.com/riskibarqy/football-ranking/internal/config"
	"github.com/riskibarqy/football-ranking/internal/observability"
	"github.com/riskibarqy/football-ranking/internal/platform/logging"
	"github.com/riskibarqy/football-ranking/internal/platform/notify"
	"github.com/riskibarqy/football-ranking/internal/usecase"
)

// App holds the wired client stack for one CLI invocation.
type App struct {
	Config   config.Config
	Logger   *logging.Logger
	Notifier notify.Notifier
	Client   *rankingapi.Client
	Queries  *usecase.Queries
	State    *usecase.AppState
	Movers   *usecase.MoversService

	shutdown func(context.Context) error
}

// New wires config into the API client, the query layer and the global
// store. Notifications go to notifier and to the log.
func New(cfg config.Config, logger *logging.Logger, notifier notify.Notifier) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	shutdown, err := observability.InitUptrace(cfg, observability.ComponentCLI, logger)
	if err != nil {
		return nil, err
	}

	client := rankingapi.NewClient(rankingapi.ClientConfig{
		BaseURL:        cfg.APIURL,
		RateLimit:      cfg.APIRateLimitRPS,
		RateBurst:      cfg.APIRateLimitBurst,
		Logger:         logger.Named("rankingapi"),
		CircuitBreaker: cfg.CircuitBreaker(),
	})

	notifier = notify.Multi{notifier, notify.NewLogNotifier(logger.Named("notify"))}

	return &App{
		Config:   cfg,
		Logger:   logger,
		Notifier: notifier,
		Client:   client,
		Queries: usecase.NewQueries(usecase.QueryDeps{
			Countries:    client,
			Competitions: client,
			Matches:      client,
			Notifier:     notifier,
			Logger:       logger,
		}),
		State: usecase.NewAppState(usecase.AppStateDeps{
			Countries:    client,
			Competitions: client,
			Matches:      client,
			Notifier:     notifier,
			Logger:       logger,
		}),
		Movers:   usecase.NewMoversService(client, cfg.MoversWorkers, logger),
		shutdown: shutdown,
	}, nil
}

// Close stops the store and flushes telemetry.
func (a *App) Close(ctx context.Context) error {
	a.State.Close()
	_ = a.Logger.Sync()

	if a.shutdown == nil {
		return nil
	}
	return a.shutdown(ctx)
}
