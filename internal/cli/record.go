package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/drift/pkg/app"
	"github.com/matzehuels/drift/pkg/capture"
)

// recordCommand writes a numbered PNG sequence.
func (c *CLI) recordCommand() *cobra.Command {
	var (
		frames  int
		every   int
		dir     string
		overlay bool
	)

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record a combination as a numbered PNG sequence",
		Long: `Run a combination and write every --every-th frame as <name>-0001.png, <name>-0002.png, ...
The sequence can be assembled into a video with any external tool.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if frames <= 0 || every <= 0 {
				return fmt.Errorf("--frames and --every must be positive")
			}
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := cfg.ValidateAndSetDefaults(); err != nil {
				return err
			}
			if dir == "" {
				dir = cfg.Capture.Dir
			}
			ctx := cmd.Context()
			a, err := app.New(cfg, app.WithContext(ctx), app.WithLogger(c.Logger))
			if err != nil {
				return err
			}

			rec, err := capture.NewRecorder(dir, strings.TrimSuffix(a.Set().Filename(), ".png"))
			if err != nil {
				return err
			}

			prog := newProgress(c.Logger)
			spinner := newSpinnerWithContext(ctx, "Recording "+a.Set().Label)
			spinner.Start()
			defer spinner.Stop()

			for i := 1; i <= frames; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				a.Step()
				if i%every != 0 {
					continue
				}
				img := a.Image()
				if overlay {
					img = a.Frame()
				}
				if err := rec.Add(img); err != nil {
					return err
				}
				spinner.SetMessage(fmt.Sprintf("Recorded %d frames", len(rec.Frames())))
			}

			spinner.StopWithSuccess(fmt.Sprintf("Recorded %d frames of %s", len(rec.Frames()), a.Set().Label))
			if paths := rec.Frames(); len(paths) > 0 {
				printFile(paths[0], false)
				printDetail("… %s", paths[len(paths)-1])
			}
			prog.done("Recording finished")
			return nil
		},
	}

	cmd.Flags().IntVarP(&frames, "frames", "n", defaultRecordFrames, "frames to run")
	cmd.Flags().IntVar(&every, "every", 1, "write every n-th frame")
	cmd.Flags().StringVarP(&dir, "out", "o", "", "output directory (default from config)")
	cmd.Flags().BoolVar(&overlay, "overlay", false, "include the info overlay")

	return cmd
}
