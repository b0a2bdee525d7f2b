package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/drift/pkg/features"
	"github.com/matzehuels/drift/pkg/render/slotgraph"
)

// slotsCommand renders the slot tree of the piece.
func (c *CLI) slotsCommand() *cobra.Command {
	var (
		format   string
		output   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Render the combination slot tree as DOT or SVG",
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := features.Slots()
			if err != nil {
				return err
			}
			dot := slotgraph.ToDOT(root, slotgraph.Options{Detailed: detailed})

			var data []byte
			switch format {
			case "dot":
				data = []byte(dot)
			case "svg":
				if data, err = slotgraph.RenderSVG(cmd.Context(), dot); err != nil {
					return err
				}
			default:
				return fmt.Errorf("invalid format: %s (must be 'dot' or 'svg')", format)
			}

			if output == "" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printSuccess("Slot tree with %d combinations", root.Cardinality())
			printFile(output, false)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "dot", "output format: dot, svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "list variation labels of leaf slots")

	return cmd
}
