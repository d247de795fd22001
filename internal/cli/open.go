package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/llehouerou/trackersearch/internal/errmsg"
	"github.com/llehouerou/trackersearch/internal/launcher"
)

func (a *app) openCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <path|file-uri>",
		Short: "Open a file with its default application",
		Long: `Open a file the way an activated search result is opened. The argument is
either a path or a file:// URI as printed by tracker-search.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := args[0]
			if strings.HasPrefix(target, "file://") {
				return a.newProvider(a.logger, false).Activate(cmd.Context(), target)
			}

			path, err := filepath.Abs(target)
			if err != nil {
				return err
			}
			if err := launcher.New(a.cfg.Launcher).Open(path); err != nil {
				return fmt.Errorf("%s: %w", errmsg.OpOpenResult, err)
			}
			a.logger.Debug("opened", "path", path)
			return nil
		},
	}
}
