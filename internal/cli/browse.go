package cli

import (
	"fmt"
	"math/rand/v2"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/drift/pkg/features"
)

// browseCommand opens the interactive combination browser. Pressing enter
// captures the selected combination.
func (c *CLI) browseCommand() *cobra.Command {
	opts := captureOpts{limit: 20_000}

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Step through combinations interactively and capture one",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := cfg.ValidateAndSetDefaults(); err != nil {
				return err
			}
			start := rand.IntN(features.Total())
			if cfg.Combination != nil {
				start = *cfg.Combination
			}

			result, err := tea.NewProgram(NewBrowseModel(cfg.Seed, start), tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return fmt.Errorf("browse: %w", err)
			}
			m, ok := result.(BrowseModel)
			if !ok || m.Selected == nil {
				return nil
			}

			opts.dir = cfg.Capture.Dir
			cc := c.newCache(cfg, false)
			defer cc.Close()

			n := m.Selected.Combination
			spinner := newSpinnerWithContext(cmd.Context(), "Capturing "+m.Selected.Label)
			spinner.Start()
			path, cached, err := c.captureOne(cmd.Context(), cfg, cc, &opts, &n)
			if err != nil {
				spinner.StopWithError(err.Error())
				return err
			}
			spinner.StopWithSuccess("Captured " + m.Selected.Label)
			printFile(path, cached)
			return nil
		},
	}

	return cmd
}
