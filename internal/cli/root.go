// Package cli contains the trackersearch commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/llehouerou/trackersearch/internal/config"
	"github.com/llehouerou/trackersearch/internal/errmsg"
	"github.com/llehouerou/trackersearch/internal/icons"
	"github.com/llehouerou/trackersearch/internal/launcher"
	"github.com/llehouerou/trackersearch/internal/mimeguess"
	"github.com/llehouerou/trackersearch/internal/notify"
	"github.com/llehouerou/trackersearch/internal/provider"
	"github.com/llehouerou/trackersearch/internal/tracker"
)

// app holds the state shared by the commands of one invocation.
type app struct {
	version    string
	configFile string
	verbose    bool

	cfg    *config.Config
	logger *slog.Logger

	// replaced in tests
	runner      tracker.Runner
	newNotifier func() (notify.Notifier, error)
}

// Execute runs the command line until it completes or the process is
// interrupted.
func Execute(version string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCmd(version).ExecuteContext(ctx)
}

// NewRootCmd builds the command tree.
func NewRootCmd(version string) *cobra.Command {
	return newApp(version).rootCmd()
}

func newApp(version string) *app {
	return &app{
		version:     version,
		logger:      slog.New(slog.DiscardHandler),
		newNotifier: notify.New,
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "trackersearch",
		Short: "File search through the desktop file index",
		Long: `trackersearch runs tracker-search and turns its output into typed results
(file name, path, extension and content type).

Example usage:
  trackersearch query annual report     # Print matching files
  trackersearch query --json invoice    # Same, as JSON
  trackersearch tui                     # Interactive search overlay
  trackersearch install                 # Register with GNOME Shell search
  trackersearch serve                   # Run the search provider service`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (default is $XDG_CONFIG_HOME/trackersearch/config.toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		a.queryCmd(),
		a.serveCmd(),
		a.tuiCmd(),
		a.openCmd(),
		a.installCmd(),
		a.versionCmd(),
	)
	return root
}

// init loads the configuration and sets up logging.
func (a *app) init(logOut io.Writer) error {
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return fmt.Errorf("%s: %w", errmsg.OpLoadConfig, err)
	}
	a.cfg = cfg
	a.logger = newLogger(logOut, a.verbose || cfg.Debug())
	icons.Init(cfg.Icons)

	a.logger.Debug("configuration loaded",
		"command", cfg.QueryCommand(),
		"max_results", cfg.ResultLimit(),
		"launcher", cfg.Launcher,
	)
	return nil
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newProvider wires a provider from the configuration. Failure notifications
// are only sent when notifyFailures is set and enabled in the configuration.
func (a *app) newProvider(logger *slog.Logger, notifyFailures bool) *provider.Provider {
	guesser := mimeguess.New(mimeguess.WithContentSniffing(a.cfg.SniffContent))
	normalizer := tracker.NewNormalizer(a.runner, guesser,
		tracker.WithCommand(a.cfg.QueryCommand()),
		tracker.WithLimit(a.cfg.ResultLimit()),
		tracker.WithLogger(logger),
	)

	opts := []provider.Option{
		provider.WithLaunchSearch(a.cfg.LaunchSearch),
		provider.WithLogger(logger),
	}
	if notifyFailures && a.cfg.ShouldNotify() {
		n, err := a.newNotifier()
		if err != nil {
			logger.Warn("notifications unavailable", "err", err)
		} else {
			opts = append(opts, provider.WithReporter(notify.NewReporter(n)))
		}
	}
	return provider.New(normalizer, launcher.New(a.cfg.Launcher), opts...)
}
