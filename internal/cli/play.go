package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/drift/pkg/app"
	"github.com/matzehuels/drift/pkg/errors"
	"github.com/matzehuels/drift/pkg/render/window"
)

// playCommand opens the live window.
func (c *CLI) playCommand() *cobra.Command {
	var (
		kiosk      bool
		pauseAfter int
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Open drift in a window",
		Long: `Open drift in a window.

Controls:
  space  pause / resume         p  cycle pixel ratio
  s      save a PNG capture     d  cycle debug view
  i      toggle info overlay    k  kiosk change
  click  resume and reset the pause countdown`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("kiosk") {
				cfg.Kiosk.Enabled = kiosk
			}
			if cmd.Flags().Changed("pause-after") {
				cfg.PauseAfter = pauseAfter
			}

			ctx := cmd.Context()
			a, err := app.New(cfg,
				app.WithContext(ctx),
				app.WithLogger(c.Logger),
				app.WithPreviewHook(func(a *app.App) {
					c.Logger.Info("preview ready", "combination", a.Set().Combination, "label", a.Set().Label)
				}),
				app.WithResourceHook(func(batch int) {
					c.Logger.Debug("resource batch requested", "batch", batch)
				}),
			)
			if err != nil {
				return err
			}

			c.Logger.Info("playing", "seed", cfg.Seed, "combination", a.Set().Combination, "label", a.Set().Label)
			if err := window.Run(ctx, a, window.Options{Title: appName, Logger: c.Logger}); err != nil {
				printError("%s", errors.UserMessage(err))
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&kiosk, "kiosk", false, "cycle combinations while paused")
	cmd.Flags().IntVar(&pauseAfter, "pause-after", 0, "pause after this many ticks without input (0 = never)")

	return cmd
}
