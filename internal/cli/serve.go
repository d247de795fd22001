package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/llehouerou/trackersearch/internal/errmsg"
	"github.com/llehouerou/trackersearch/internal/shellsearch"
)

func (a *app) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve shell search requests on the session bus",
		Long: `Export the search provider on the session bus and serve requests until
interrupted. The shell starts this command through D-Bus activation once the
files written by "trackersearch install" are in place.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bus := a.cfg.GetDBusConfig()
			p := a.newProvider(a.logger, true)

			svc, err := shellsearch.New(p, bus.BusName, bus.ObjectPath, a.logger)
			if err != nil {
				return fmt.Errorf("%s: %w", errmsg.OpRegister, err)
			}

			<-cmd.Context().Done()
			a.logger.Info("shutting down", "bus_name", bus.BusName)

			if err := svc.Close(); err != nil {
				return fmt.Errorf("%s: %w", errmsg.OpUnregister, err)
			}
			return nil
		},
	}
}
