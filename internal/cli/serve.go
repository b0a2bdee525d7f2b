package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/drift/pkg/observability"
	"github.com/matzehuels/drift/pkg/server"
)

// serveCommand runs the HTTP preview server.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		noCache   bool
		maxFrames int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve features and PNG captures over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			if err := cfg.ValidateAndSetDefaults(); err != nil {
				return err
			}

			observability.NewLogHooks(c.Logger).Register()
			defer observability.Reset()

			cc := c.newCache(cfg, noCache)
			defer cc.Close()

			srv, err := server.New(server.Options{
				Config:    cfg,
				Cache:     cc,
				Logger:    c.Logger,
				MaxFrames: maxFrames,
			})
			if err != nil {
				return err
			}
			printInfo("Listening on %s", StyleNumber.Render(cfg.Server.Addr))
			return srv.ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, else :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the capture cache")
	cmd.Flags().IntVar(&maxFrames, "max-frames", server.DefaultMaxFrames, "frame limit per capture request")

	return cmd
}
