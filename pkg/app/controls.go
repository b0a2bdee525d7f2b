package app

import (
	"fmt"
	"image"

	"github.com/matzehuels/drift/pkg/canvas"
	"github.com/matzehuels/drift/pkg/capture"
	"github.com/matzehuels/drift/pkg/config"
	"github.com/matzehuels/drift/pkg/errors"
	"github.com/matzehuels/drift/pkg/observability"
)

// TogglePause pauses or resumes the animation.
func (a *App) TogglePause() {
	a.machine.TogglePause()
}

// Touch records a user interaction.
func (a *App) Touch() {
	a.machine.Touch()
}

// Randomize forces a kiosk change to a new combination.
func (a *App) Randomize() {
	a.machine.Randomize()
}

// CyclePixelRatio steps through 1, 2 and 0.5 and repaints the scene at the new
// resolution. It returns the new ratio.
func (a *App) CyclePixelRatio() float64 {
	a.ratio = (a.ratio + 1) % len(config.PixelRatios)
	a.machine.SetCanvas(a.newCanvas())
	return config.PixelRatios[a.ratio]
}

// PixelRatio returns the current pixel ratio.
func (a *App) PixelRatio() float64 { return config.PixelRatios[a.ratio] }

// CycleDebug steps through the debug views and returns the new one.
func (a *App) CycleDebug() string {
	a.debug = (a.debug + 1) % len(config.DebugViews)
	return config.DebugViews[a.debug]
}

// DebugView returns the active debug view.
func (a *App) DebugView() string { return config.DebugViews[a.debug] }

// ToggleInfo shows or hides the info overlay and returns the new state.
func (a *App) ToggleInfo() bool {
	a.info = !a.info
	return a.info
}

// Fail freezes the session after the render back end became unavailable.
func (a *App) Fail(backend string, err error) {
	env := &errors.EnvironmentError{Backend: backend, Err: err}
	observability.Animation().OnFailure(a.ctx, a.Set().Combination, env)
	a.machine.Fail(env)
}

// Failed returns the error the session was frozen with.
func (a *App) Failed() error { return a.machine.Failed() }

// Frame returns the canvas with the overlays of the active views drawn on
// top. Without overlays the canvas image itself is returned.
func (a *App) Frame() image.Image {
	img := a.machine.Canvas().Image()
	ann := a.annotations()
	if len(ann.Lines) == 0 && len(ann.Boxes) == 0 && len(ann.Swatches) == 0 && len(ann.Arrows) == 0 {
		return img
	}
	return canvas.Overlay(img, ann)
}

func (a *App) annotations() canvas.Annotations {
	var ann canvas.Annotations
	if err := a.machine.Failed(); err != nil {
		ann.Lines = []string{errors.UserMessage(err), "reload to restart"}
		return ann
	}

	if a.info {
		ann.Lines = append(ann.Lines, a.InfoLines()...)
	}
	switch a.DebugView() {
	case config.DebugElements:
		ann.Boxes = make([]image.Rectangle, 0, a.machine.Stats().Live)
		for _, s := range a.machine.Elements() {
			ann.Boxes = append(ann.Boxes, s.Rect)
		}
	case config.DebugFlow:
		ann.Arrows = a.machine.Flow().Active()
	case config.DebugPalette:
		for _, c := range a.machine.Colors() {
			ann.Swatches = append(ann.Swatches, c)
		}
	}
	return ann
}

// InfoLines returns the text of the info overlay.
func (a *App) InfoLines() []string {
	set, st := a.Set(), a.machine.Stats()
	lines := []string{
		set.Label,
		fmt.Sprintf("#%d  seed %s", set.Combination, set.Fingerprint),
		fmt.Sprintf("frame %d  %s  live %d/%d", st.Frame, st.Phase, st.Live, set.MaxLive),
	}
	if st.Fading {
		lines = append(lines, fmt.Sprintf("kiosk fade %.0f%%", st.FadeDone*100))
	}
	return lines
}

// Action is a user control, independent of the input device that raised it.
type Action int

const (
	ActionPause Action = iota
	ActionPixelRatio
	ActionCapture
	ActionDebug
	ActionInfo
	ActionRandomize
	ActionTouch
)

var actionNames = [...]string{"pause", "pixel-ratio", "capture", "debug", "info", "randomize", "touch"}

func (act Action) String() string {
	if act < 0 || int(act) >= len(actionNames) {
		return fmt.Sprintf("action(%d)", int(act))
	}
	return actionNames[act]
}

// Apply runs act and returns a short status line for the render adapter to
// show. A failed session ignores every action.
func (a *App) Apply(act Action) (string, error) {
	if a.Failed() != nil {
		return "", nil
	}
	switch act {
	case ActionPause:
		a.TogglePause()
		return a.machine.Phase().String(), nil
	case ActionPixelRatio:
		return fmt.Sprintf("pixel ratio %g", a.CyclePixelRatio()), nil
	case ActionCapture:
		snap, err := a.Capture()
		if err != nil {
			return "", err
		}
		path, err := capture.Write(a.cfg.Capture.Dir, snap)
		if err != nil {
			return "", err
		}
		a.logger.Info("captured", "path", path)
		return "saved " + snap.Filename, nil
	case ActionDebug:
		return "debug " + a.CycleDebug(), nil
	case ActionInfo:
		if a.ToggleInfo() {
			return "info on", nil
		}
		return "info off", nil
	case ActionRandomize:
		a.Randomize()
		return "kiosk change", nil
	case ActionTouch:
		a.Touch()
		return "", nil
	default:
		return "", errors.New(errors.ErrCodeUnsupported, "unknown action %v", act)
	}
}
