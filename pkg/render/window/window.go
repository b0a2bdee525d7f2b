// Package window runs a drift session in a desktop window with ebiten.
//
// The window is a thin adapter: it maps keys and pointer releases onto
// [app.Action] values, feeds wall-clock time into [app.App.Tick] and blits
// [app.App.Frame] to the screen. All animation state lives in the App.
//
// Controls:
//
//	Space  pause / resume
//	P      cycle pixel ratio (1, 2, 0.5)
//	S      save a PNG capture
//	D      cycle debug view
//	I      toggle the info overlay
//	K      kiosk change to a random combination
//	click  touch (resume and reset the pause countdown)
package window

import (
	"context"
	"image"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/matzehuels/drift/pkg/app"
)

// statusTicks is how long a status line stays on screen.
const statusTicks = 90

var keymap = []struct {
	key ebiten.Key
	act app.Action
}{
	{ebiten.KeySpace, app.ActionPause},
	{ebiten.KeyP, app.ActionPixelRatio},
	{ebiten.KeyS, app.ActionCapture},
	{ebiten.KeyD, app.ActionDebug},
	{ebiten.KeyI, app.ActionInfo},
	{ebiten.KeyK, app.ActionRandomize},
}

// Options configures the window.
type Options struct {
	Title  string
	Logger *log.Logger
}

// Game implements ebiten.Game for one App.
type Game struct {
	ctx    context.Context
	app    *app.App
	logger *log.Logger
	start  time.Time

	screen *ebiten.Image
	touch  []ebiten.TouchID

	status     string
	statusLeft int
}

// NewGame wraps a. The context ends the game loop when cancelled.
func NewGame(ctx context.Context, a *app.App, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Game{ctx: ctx, app: a, logger: logger, start: time.Now()}
}

// Run opens the window and blocks until it is closed or ctx is cancelled.
// A window that cannot be opened or is lost mid-session is an environment
// error: the App is frozen and the error is returned.
func Run(ctx context.Context, a *app.App, opts Options) error {
	if opts.Title == "" {
		opts.Title = "drift"
	}
	g := NewGame(ctx, a, opts.Logger)

	w, h := a.Config().Width, a.Config().Height
	ebiten.SetWindowTitle(opts.Title + " · " + a.Set().Label)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		a.Fail("window", err)
		return a.Failed()
	}
	return nil
}

// Update handles input and advances the clock.
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}

	for _, k := range keymap {
		if inpututil.IsKeyJustPressed(k.key) {
			g.apply(k.act)
		}
	}
	g.touch = inpututil.AppendJustReleasedTouchIDs(g.touch[:0])
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) || len(g.touch) > 0 {
		g.apply(app.ActionTouch)
	}

	g.app.Tick(float64(time.Since(g.start).Microseconds()) / 1000)
	if g.statusLeft > 0 {
		g.statusLeft--
	}
	return nil
}

func (g *Game) apply(act app.Action) {
	msg, err := g.app.Apply(act)
	if err != nil {
		g.logger.Error("control failed", "action", act, "err", err)
		msg = err.Error()
	}
	if msg != "" {
		g.status, g.statusLeft = msg, statusTicks
	}
}

// Draw blits the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	frame := g.app.Frame()
	b := frame.Bounds()
	if g.screen == nil || g.screen.Bounds().Size() != b.Size() {
		if g.screen != nil {
			g.screen.Deallocate()
		}
		g.screen = ebiten.NewImage(b.Dx(), b.Dy())
	}

	if rgba, ok := frame.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		g.screen.WritePixels(rgba.Pix)
	} else {
		g.screen.Clear()
		g.screen.DrawImage(ebiten.NewImageFromImage(frame), nil)
	}

	var op ebiten.DrawImageOptions
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	op.GeoM.Scale(float64(sw)/float64(b.Dx()), float64(sh)/float64(b.Dy()))
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(g.screen, &op)

	if g.statusLeft > 0 {
		ebitenutil.DebugPrintAt(screen, g.status, 4, sh-16)
	}
}

// Layout keeps the logical screen at the configured size; the canvas is
// scaled onto it at every pixel ratio.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.app.Config().Width, g.app.Config().Height
}
