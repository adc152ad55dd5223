// Package cli is the terminal front-end of the ranking client. Every command
// renders the state of a query or of the global store.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/football-ranking/internal/app"
	"github.com/riskibarqy/football-ranking/internal/config"
	"github.com/riskibarqy/football-ranking/internal/platform/logging"
	"github.com/riskibarqy/football-ranking/internal/platform/notify"
)

// errReported marks a failure whose message was already printed.
var errReported = errors.New("error already reported")

type Options struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
	// LoadConfig defaults to config.Load.
	LoadConfig func() (config.Config, error)
	// Logger defaults to a console logger at the configured level.
	Logger *logging.Logger
}

func (o Options) withDefaults() Options {
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Err == nil {
		o.Err = os.Stderr
	}
	if o.LoadConfig == nil {
		o.LoadConfig = config.Load
	}
	return o
}

type runtime struct {
	opts   Options
	format string
	apiURL string
	app    *app.App
}

// Run executes the command line in args and returns the process exit code.
func Run(ctx context.Context, args []string, opts Options) int {
	rt := &runtime{opts: opts.withDefaults()}
	root := rt.rootCommand()
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if closeErr := rt.close(context.WithoutCancel(ctx)); closeErr != nil && err == nil {
		err = closeErr
	}
	if err == nil {
		return 0
	}
	if !errors.Is(err, errReported) {
		fmt.Fprintln(rt.opts.Err, "Error:", err)
	}
	return 1
}

func (rt *runtime) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "rankings",
		Short:         "Browse and manage national team rankings, competitions and matches",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return rt.open()
		},
	}
	root.SetIn(rt.opts.In)
	root.SetOut(rt.opts.Out)
	root.SetErr(rt.opts.Err)

	root.PersistentFlags().StringVarP(&rt.format, "output", "o", formatTable, "output format: table, json or yaml")
	root.PersistentFlags().StringVar(&rt.apiURL, "api-url", "", "ranking API base URL, overrides API_URL")

	root.AddCommand(
		dashboardCmd(rt),
		countriesCmd(rt),
		rankingsCmd(rt),
		competitionsCmd(rt),
		matchesCmd(rt),
		healthCmd(rt),
	)
	return root
}

func (rt *runtime) open() error {
	if err := checkFormat(rt.format); err != nil {
		return err
	}

	cfg, err := rt.opts.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if url := strings.TrimSpace(rt.apiURL); url != "" {
		cfg.APIURL = strings.TrimRight(url, "/")
	}

	logger := rt.opts.Logger
	if logger == nil {
		logger = logging.NewConsole(cfg.LogLevel)
	}
	logging.SetDefault(logger)

	application, err := app.New(cfg, logger, rt.notifier())
	if err != nil {
		return fmt.Errorf("build app: %w", err)
	}
	rt.app = application
	return nil
}

func (rt *runtime) close(ctx context.Context) error {
	if rt.app == nil {
		return nil
	}
	err := rt.app.Close(ctx)
	rt.app = nil
	return err
}

// notifier prints toast style notifications on stderr.
func (rt *runtime) notifier() notify.Notifier {
	return notify.Func(func(_ context.Context, n notify.Notification) {
		mark := "✓"
		if n.Level == notify.LevelError {
			mark = "✗"
		}
		fmt.Fprintf(rt.opts.Err, "%s %s\n", mark, n.Message)
	})
}
