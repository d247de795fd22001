package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/llehouerou/trackersearch/internal/search"
)

func (a *app) tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui [terms...]",
		Short: "Search interactively",
		Long: `Open the search overlay. Results follow the query as it is typed; enter
opens the selected file and prints its path, esc quits.

With --verbose, logs go to $XDG_STATE_HOME/trackersearch/tui.log.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, closeLog, err := a.tuiLogger()
			if err != nil {
				return err
			}
			defer closeLog()

			m := search.New(cmd.Context(), a.newProvider(logger, false))
			m.SetQuery(strings.Join(args, " "))

			final, err := tea.NewProgram(m,
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithOutput(cmd.OutOrStdout()),
			).Run()
			if err != nil {
				return fmt.Errorf("run overlay: %w", err)
			}

			if done, ok := final.(search.Model); ok {
				if item, ok := done.Selected(); ok {
					fmt.Fprintln(cmd.OutOrStdout(), item.Path())
				}
			}
			return nil
		},
	}
}

// tuiLogger returns a logger that does not write to the terminal the
// overlay draws on.
func (a *app) tuiLogger() (*slog.Logger, func(), error) {
	if !a.verbose && !a.cfg.Debug() {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}

	path, err := xdg.StateFile(filepath.Join(appDir, "tui.log"))
	if err != nil {
		return nil, nil, fmt.Errorf("log file: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("log file: %w", err)
	}
	return newLogger(f, true), func() { _ = f.Close() }, nil
}
