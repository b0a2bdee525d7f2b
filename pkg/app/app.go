// Package app ties a drift session together.
//
// An [App] owns everything one running piece needs: the seeded PRNG, the
// current feature set, the animation machine, the canvas and the view state
// toggled by user controls. There are no package-level singletons; render
// adapters (the ebiten window, the HTTP server, the CLI) each build their own
// App and drive it through [App.Tick] or [App.Step].
package app

import (
	"context"
	"image"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/drift/pkg/anim"
	"github.com/matzehuels/drift/pkg/canvas"
	"github.com/matzehuels/drift/pkg/capture"
	"github.com/matzehuels/drift/pkg/config"
	"github.com/matzehuels/drift/pkg/errors"
	"github.com/matzehuels/drift/pkg/features"
	"github.com/matzehuels/drift/pkg/observability"
	"github.com/matzehuels/drift/pkg/prng"
)

// maxCatchUp bounds the ticks a single [App.Tick] call may run after a stall.
const maxCatchUp = 4

// Option configures an [App].
type Option func(*App)

// WithLogger sets the logger used by the app, the machine and derivation.
func WithLogger(l *log.Logger) Option {
	return func(a *App) { a.logger = l }
}

// WithContext sets the context handed to observability hooks.
func WithContext(ctx context.Context) Option {
	return func(a *App) { a.ctx = ctx }
}

// WithPreviewHook is called once per combination when its preview is ready.
func WithPreviewHook(fn func(*App)) Option {
	return func(a *App) { a.onPreview = fn }
}

// WithResourceHook is called when a kiosk change asks the render adapter to
// swap a batch of resources.
func WithResourceHook(fn func(batch int)) Option {
	return func(a *App) { a.onResources = fn }
}

// App is one running drift session. It is not safe for concurrent use.
type App struct {
	id     uuid.UUID
	cfg    *config.Config
	logger *log.Logger
	ctx    context.Context

	r           *prng.Rand
	machine     *anim.Machine
	combination int

	ratio     int // index into config.PixelRatios
	debug     int // index into config.DebugViews
	info      bool
	previewed bool

	clockStarted bool
	lastMs       float64
	carryMs      float64

	onPreview   func(*App)
	onResources func(batch int)
}

// New builds a session from cfg. Without a configured combination one is
// drawn uniformly from the platform random source.
func New(cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = &config.Config{}
	}
	if err := cfg.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	a := &App{
		id:     uuid.New(),
		cfg:    cfg,
		logger: log.NewWithOptions(io.Discard, log.Options{}),
		ctx:    context.Background(),
	}
	for _, opt := range opts {
		opt(a)
	}
	for i, r := range config.PixelRatios {
		if r == cfg.PixelRatio {
			a.ratio = i
		}
	}

	total := features.Total()
	if total == 0 {
		return nil, errors.New(errors.ErrCodeInternal, "feature slot tree has no combinations")
	}
	combination := rand.IntN(total)
	if cfg.Combination != nil {
		combination = *cfg.Combination
	}

	a.r = prng.New(cfg.Seed)
	set, err := features.Derive(combination, a.r, features.WithLogger(a.logger))
	if err != nil {
		return nil, err
	}

	a.combination = set.Combination

	c := a.newCanvas()
	anim.Paint(c, set, anim.RoleColors(set))
	a.machine = anim.New(anim.Config{
		PreviewFactor: cfg.PreviewFactor,
		PauseAfter:    cfg.PauseAfter,
		Kiosk:         cfg.KioskConfig(),
		Logger:        a.logger,
		Hooks:         a.hooks(),
		Derive: func(c int, r *prng.Rand) (*features.Set, error) {
			return features.Derive(c, r, features.WithLogger(a.logger))
		},
	}, set, a.r, c)

	a.logger.Debug("session started", "session", a.id, "seed", cfg.Seed, "combination", set.Combination)
	return a, nil
}

func (a *App) hooks() anim.Hooks {
	obs := observability.Animation()
	return anim.Hooks{
		OnPreview: func(set *features.Set) {
			a.previewed = true
			obs.OnPreview(a.ctx, set.Combination, a.machine.Stats().Frame)
			if a.onPreview != nil {
				a.onPreview(a)
			}
		},
		OnPhase: func(from, to anim.Phase) {
			obs.OnPhase(a.ctx, a.machine.Set().Combination, from.String(), to.String())
		},
		OnKioskChange: func(batch int) {
			if a.onResources != nil {
				a.onResources(batch)
			}
		},
		OnKioskCommit: func(set *features.Set) {
			if set.Combination != a.combination {
				a.previewed = false
			}
			obs.OnKioskCommit(a.ctx, a.combination, set.Combination)
			a.combination = set.Combination
		},
	}
}

func (a *App) newCanvas() *canvas.Canvas {
	w, h := a.Size()
	return canvas.New(w, h)
}

// Size returns the canvas size in pixels at the current pixel ratio.
func (a *App) Size() (int, int) {
	r := config.PixelRatios[a.ratio]
	return max(int(float64(a.cfg.Width)*r), 1), max(int(float64(a.cfg.Height)*r), 1)
}

// ID returns the session id.
func (a *App) ID() string { return a.id.String() }

// Config returns the validated configuration.
func (a *App) Config() *config.Config { return a.cfg }

// Set returns the committed feature set.
func (a *App) Set() *features.Set { return a.machine.Set() }

// Machine returns the animation machine.
func (a *App) Machine() *anim.Machine { return a.machine }

// Previewed reports whether the current combination has finished its preview.
func (a *App) Previewed() bool { return a.previewed }

// =============================================================================
// Clock
// =============================================================================

// Tick converts wall time in milliseconds into frame ticks at the configured
// frame rate and runs them. It returns the number of ticks run. The first
// call only starts the clock.
func (a *App) Tick(timeMs float64) int {
	if !a.clockStarted {
		a.clockStarted = true
		a.lastMs = timeMs
		return 0
	}
	frameMs := 1000 / float64(a.cfg.FPS)
	elapsed := timeMs - a.lastMs + a.carryMs
	a.lastMs = timeMs
	if elapsed <= 0 {
		a.carryMs = 0
		return 0
	}

	n := int(elapsed / frameMs)
	a.carryMs = elapsed - float64(n)*frameMs
	if n > maxCatchUp {
		n = maxCatchUp
		a.carryMs = 0
	}
	for range n {
		a.machine.Tick()
	}
	return n
}

// Step advances exactly one frame.
func (a *App) Step() {
	a.machine.Tick()
}

// RunFor advances n frames.
func (a *App) RunFor(n int) {
	for range n {
		a.machine.Tick()
	}
}

// RunUntilPreview advances until the preview is ready or limit frames ran,
// and reports whether the preview was reached.
func (a *App) RunUntilPreview(ctx context.Context, limit int) (bool, error) {
	for i := 0; i < limit && !a.previewed; i++ {
		if i%256 == 0 {
			if err := ctx.Err(); err != nil {
				return false, err
			}
		}
		a.machine.Tick()
		if a.machine.Failed() != nil {
			return false, a.machine.Failed()
		}
	}
	return a.previewed, nil
}

// =============================================================================
// Capture
// =============================================================================

// Capture encodes the current canvas, without overlays, as a PNG snapshot.
func (a *App) Capture() (capture.Snapshot, error) {
	set := a.Set()
	obs := observability.Capture()
	obs.OnCaptureStart(a.ctx, set.Combination)
	start := time.Now()

	data, err := capture.PNG(a.machine.Canvas().Image())
	obs.OnCaptureComplete(a.ctx, set.Combination, len(data), time.Since(start), err)
	if err != nil {
		return capture.Snapshot{}, err
	}
	return capture.Snapshot{Filename: set.Filename(), Data: data}, nil
}

// Image returns the raw canvas image.
func (a *App) Image() image.Image {
	return a.machine.Canvas().Image()
}
