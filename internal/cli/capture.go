package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"

	"github.com/spf13/cobra"

	"github.com/matzehuels/drift/pkg/app"
	"github.com/matzehuels/drift/pkg/cache"
	"github.com/matzehuels/drift/pkg/capture"
	"github.com/matzehuels/drift/pkg/config"
	"github.com/matzehuels/drift/pkg/features"
)

// captureOpts holds the command-line flags for the capture command.
type captureOpts struct {
	frames  int    // frames to run; 0 runs until the preview is ready
	limit   int    // frame limit when running until preview
	dir     string // output directory
	all     bool   // capture every combination in [from, to)
	from    int
	to      int
	jobs    int
	noCache bool
}

// captureCommand writes PNG captures.
func (c *CLI) captureCommand() *cobra.Command {
	opts := captureOpts{limit: 20_000, jobs: 4}

	cmd := &cobra.Command{
		Use:   "capture",
		Short: "Run a combination and write a PNG capture",
		Long: `Run a combination until its preview is ready (or for --frames ticks) and write the canvas
as a PNG named drift-<label>-<combination>-<seed>.png.

With --all, or debug = true in the config file, every combination in [--from, --to) is
captured, --jobs at a time.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := cfg.ValidateAndSetDefaults(); err != nil {
				return err
			}
			if !cmd.Flags().Changed("frames") {
				opts.frames = cfg.Capture.Frames
			}
			if opts.dir == "" {
				opts.dir = cfg.Capture.Dir
			}

			cc := c.newCache(cfg, opts.noCache)
			defer cc.Close()

			if opts.all || cfg.Debug {
				return c.captureAll(cmd.Context(), cfg, cc, &opts)
			}
			path, cached, err := c.captureOne(cmd.Context(), cfg, cc, &opts, cfg.Combination)
			if err != nil {
				return err
			}
			printSuccess("Captured")
			printFile(path, cached)
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.frames, "frames", 0, "frames to run before capturing (0 = until preview)")
	cmd.Flags().IntVar(&opts.limit, "limit", opts.limit, "frame limit when running until preview")
	cmd.Flags().StringVarP(&opts.dir, "out", "o", "", "output directory (default from config)")
	cmd.Flags().BoolVar(&opts.all, "all", false, "capture every combination in [--from, --to)")
	cmd.Flags().IntVar(&opts.from, "from", 0, "first combination for --all")
	cmd.Flags().IntVar(&opts.to, "to", 0, "end of the --all range, exclusive (default all combinations)")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", opts.jobs, "parallel captures for --all")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the capture cache")

	return cmd
}

// captureOne runs a single combination on its own App and writes the PNG.
// It reports whether the bytes came from the cache.
func (c *CLI) captureOne(ctx context.Context, base *config.Config, cc cache.Cache, opts *captureOpts, combination *int) (string, bool, error) {
	cfg := *base
	cfg.Combination = combination
	cfg.PauseAfter = 0
	cfg.Kiosk.Enabled = false

	logger := loggerFromContext(ctx)
	a, err := app.New(&cfg, app.WithContext(ctx), app.WithLogger(logger))
	if err != nil {
		return "", false, err
	}
	set := a.Set()
	w, h := a.Size()

	key := cache.CaptureKey(cache.CaptureParams{
		Seed:          cfg.Seed,
		Combination:   set.Combination,
		Frames:        opts.frames,
		Limit:         opts.limit,
		PreviewFactor: cfg.PreviewFactor,
		Width:         w,
		Height:        h,
	})
	if data, ok, err := cc.Get(ctx, key); err != nil {
		logger.Warn("cache get failed", "err", err)
	} else if ok {
		path, err := capture.Write(opts.dir, capture.Snapshot{Filename: set.Filename(), Data: data})
		return path, true, err
	}

	if opts.frames > 0 {
		a.RunFor(opts.frames)
	} else {
		ok, err := a.RunUntilPreview(ctx, opts.limit)
		if err != nil {
			return "", false, err
		}
		if !ok {
			logger.Warn("preview not reached, capturing anyway", "combination", set.Combination, "limit", opts.limit)
		}
	}

	snap, err := a.Capture()
	if err != nil {
		return "", false, err
	}
	if err := cc.Set(ctx, key, snap.Data, cfg.Cache.TTL); err != nil {
		logger.Warn("cache set failed", "err", err)
	}
	path, err := capture.Write(opts.dir, snap)
	return path, false, err
}

// captureAll captures every combination in [from, to).
func (c *CLI) captureAll(ctx context.Context, cfg *config.Config, cc cache.Cache, opts *captureOpts) error {
	total := features.Total()
	to := opts.to
	if to <= 0 || to > total {
		to = total
	}
	if opts.from < 0 || opts.from >= to {
		return fmt.Errorf("invalid range [%d, %d)", opts.from, to)
	}

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Capturing %d combinations", to-opts.from))
	spinner.Start()

	var done, hits atomic.Int64
	err := capture.RunAll(ctx, opts.from, to, opts.jobs, func(ctx context.Context, n int) error {
		_, cached, err := c.captureOne(ctx, cfg, cc, opts, &n)
		if err != nil {
			return fmt.Errorf("combination %d: %w", n, err)
		}
		if cached {
			hits.Add(1)
		}
		spinner.SetMessage(fmt.Sprintf("Captured %d/%d", done.Add(1), to-opts.from))
		return nil
	})
	if err != nil {
		spinner.StopWithError(err.Error())
		return err
	}

	spinner.StopWithSuccess(fmt.Sprintf("Captured %d combinations", done.Load()))
	printDetail("%d from cache", hits.Load())
	printFile(filepath.Clean(opts.dir), false)
	prog.done("Capture run finished")
	return nil
}
