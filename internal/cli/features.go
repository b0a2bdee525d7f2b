package cli

import (
	"encoding/json"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/matzehuels/drift/pkg/features"
	"github.com/matzehuels/drift/pkg/prng"
)

// featuresCommand prints the feature set of a combination.
func (c *CLI) featuresCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "features",
		Short: "Print the derived features of a combination",
		Long: `Print the palette, colour roles, flow, shape and timing derived from the seed and
combination. Without --combination a random combination is drawn.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := c.deriveSet(cmd)
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(set.Summary())
			}
			writeFeatureTable(cmd.OutOrStdout(), set)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")

	return cmd
}

// deriveSet derives the feature set selected by the root flags and config.
func (c *CLI) deriveSet(cmd *cobra.Command) (*features.Set, error) {
	cfg, err := c.loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if err := cfg.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	n := rand.IntN(features.Total())
	if cfg.Combination != nil {
		n = *cfg.Combination
	}
	return features.Derive(n, prng.New(cfg.Seed), features.WithLogger(loggerFromContext(cmd.Context())))
}
