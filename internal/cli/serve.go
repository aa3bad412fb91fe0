package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/latest-stack/internal/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve versions as a JSON HTTP API",
		Long: `Serve resolved versions over HTTP. Versions are refreshed in the
background every cache TTL.

Endpoints:
  GET  /health
  GET  /api/v1/versions
  GET  /api/v1/stacks[?category=...]
  GET  /api/v1/stacks/{id}
  POST /api/v1/refresh`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.settings()
			if listen == "" {
				listen = cfg.Server.Listen
			}

			cat, err := c.loadCatalog()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			m, closeCache := c.newManager(ctx, false)
			defer closeCache()

			srv := server.New(cat, m, server.Options{
				RefreshInterval: cfg.Cache.TTL,
				Logger:          c.Logger,
			})
			return srv.Run(ctx, listen)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "listen address (default: LATEST_STACK_LISTEN or :8080)")

	return cmd
}
