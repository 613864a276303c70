package commands

import (
	"github.com/spf13/cobra"

	"github.com/dd0wney/cluso-socialgraph/pkg/analytics"
	"github.com/dd0wney/cluso-socialgraph/pkg/api"
	"github.com/dd0wney/cluso-socialgraph/pkg/health"
	"github.com/dd0wney/cluso-socialgraph/pkg/metrics"
	"github.com/dd0wney/cluso-socialgraph/pkg/server"
)

func (a *app) serveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the analytics HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := metrics.DefaultRegistry()

			engine, err := analytics.NewEngine(analytics.OptionsFromConfig(a.cfg), a.logger, registry)
			if err != nil {
				return err
			}
			defer engine.Close()

			apiServer := api.NewServer(engine, registry, a.logger, a.cfg, Version)
			gs := server.NewGracefulServer(a.cfg.Server, apiServer.Router(), a.logger)
			apiServer.Health().RegisterReadinessCheck("shutdown", health.ShutdownCheck(gs.IsShuttingDown))
			gs.SetConfigReloadFunc(a.reload)

			defer func() { _ = a.logger.Sync() }()
			return gs.Run(cmd.Context())
		},
	}

	cmd.Flags().String("addr", ":8080", "Listen address")
	_ = a.v.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))

	return cmd
}
