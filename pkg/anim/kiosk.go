package anim

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/matzehuels/drift/pkg/errors"
	"github.com/matzehuels/drift/pkg/features"
	"github.com/matzehuels/drift/pkg/palette"
)

// KioskMode selects what a kiosk change swaps.
type KioskMode int

const (
	// KioskFeatures re-derives a new feature set.
	KioskFeatures KioskMode = iota
	// KioskResources only asks the render adapter to swap a batch of resources.
	KioskResources
	// KioskBoth does both.
	KioskBoth
)

// String returns the configuration name of the mode.
func (m KioskMode) String() string {
	switch m {
	case KioskFeatures:
		return "features"
	case KioskResources:
		return "resources"
	case KioskBoth:
		return "both"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseKioskMode is the inverse of [KioskMode.String].
func ParseKioskMode(s string) (KioskMode, error) {
	switch strings.ToLower(s) {
	case "", "features":
		return KioskFeatures, nil
	case "resources":
		return KioskResources, nil
	case "both":
		return KioskBoth, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidConfiguration, "unknown kiosk mode %q", s)
}

func (m KioskMode) features() bool  { return m == KioskFeatures || m == KioskBoth }
func (m KioskMode) resources() bool { return m == KioskResources || m == KioskBoth }

// KioskConfig controls auto-cycling while paused. Interval and Fade are in ticks.
type KioskConfig struct {
	Enabled  bool
	Interval int
	Fade     int
	Mode     KioskMode
	Batch    int
}

// Colors are the five role colours in role order.
type Colors [palette.Size]color.RGBA

// RoleColors returns the role colours of a feature set.
func RoleColors(set *features.Set) Colors {
	var out Colors
	for i, c := range set.Roles.Colors {
		r, g, b := c.Clamped().RGB255()
		out[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return out
}

// crossFade linearly interpolates every channel of the role colours.
type crossFade struct {
	tweens  [palette.Size][3]*gween.Tween
	to      Colors
	ticks   int
	elapsed int
}

func newCrossFade(from, to Colors, ticks int) *crossFade {
	f := &crossFade{to: to, ticks: max(ticks, 1)}
	for i := range from {
		a, b := channels(from[i]), channels(to[i])
		for ch := range 3 {
			f.tweens[i][ch] = gween.New(a[ch], b[ch], float32(f.ticks), ease.Linear)
		}
	}
	return f
}

// Update advances the fade by one tick. On the last tick it returns the target
// colours exactly.
func (f *crossFade) Update() (Colors, bool) {
	f.elapsed++
	var out Colors
	for i := range out {
		var v [3]uint8
		for ch := range 3 {
			val, _ := f.tweens[i][ch].Update(1)
			v[ch] = uint8(math.Round(float64(val)))
		}
		out[i] = color.RGBA{R: v[0], G: v[1], B: v[2], A: 255}
	}
	if f.elapsed >= f.ticks {
		return f.to, true
	}
	return out, false
}

// Progress returns the completed fraction of the fade.
func (f *crossFade) Progress() float64 {
	return float64(f.elapsed) / float64(f.ticks)
}

func channels(c color.RGBA) [3]float32 {
	return [3]float32{float32(c.R), float32(c.G), float32(c.B)}
}

func (m *Machine) tickKiosk() {
	if m.fade != nil {
		m.advanceFade()
		return
	}
	if !m.cfg.Kiosk.Enabled {
		return
	}
	m.kioskElapsed++
	if m.kioskElapsed >= m.cfg.Kiosk.Interval {
		m.change()
	}
}

// Randomize forces an immediate kiosk change. The machine pauses until the
// fade has been committed.
func (m *Machine) Randomize() {
	if m.failed != nil {
		return
	}
	if m.fade != nil {
		m.commit()
	}
	m.Pause()
	m.change()
}

func (m *Machine) change() {
	m.kioskElapsed = 0
	mode := m.cfg.Kiosk.Mode

	next := m.set
	if mode.features() {
		set, err := m.deriveNext()
		if err != nil {
			m.logger.Error("kiosk derive failed", "err", err)
			return
		}
		next = set
	}
	if mode.resources() {
		if h := m.cfg.Hooks.OnKioskChange; h != nil {
			h(m.cfg.Kiosk.Batch)
		}
	}

	m.pending = next
	m.repaint = next != m.set
	m.logger.Debug("kiosk change", "mode", mode, "from", m.set.Combination, "to", next.Combination, "fade", m.cfg.Kiosk.Fade)

	if m.cfg.Kiosk.Fade <= 0 {
		m.commit()
		return
	}
	m.fade = newCrossFade(m.colors, RoleColors(next), m.cfg.Kiosk.Fade)
	if m.repaint {
		m.Repaint()
	}
}

// deriveNext draws the next combination from the machine's stream and derives
// it from a freshly seeded source. The machine's stream is then restored to
// where it was, so derivation draws never leak into the animation.
func (m *Machine) deriveNext() (*features.Set, error) {
	total := features.Total()
	next := m.r.Int(total)
	if next == m.set.Combination && total > 1 {
		next = (next + 1) % total
	}

	hash, draws := m.r.Hash(), m.r.Draws()
	m.r.Seed(hash)
	set, err := m.cfg.Derive(next, m.r)
	m.r.Seed(hash)
	m.r.Skip(draws)
	return set, err
}

func (m *Machine) advanceFade() {
	colors, done := m.fade.Update()
	m.colors = colors
	if done {
		m.commit()
		return
	}
	if m.repaint {
		m.Repaint()
	}
}

func (m *Machine) commit() {
	set, repaint := m.pending, m.repaint
	m.fade, m.pending, m.repaint = nil, nil, false
	if set == nil {
		return
	}

	from := m.Phase()
	if set != m.set {
		m.start(set)
		if repaint {
			m.Repaint()
		}
	} else {
		m.colors = RoleColors(set)
		m.pauseLeft = m.cfg.PauseAfter
	}
	m.paused = false
	m.transition(from)
	m.logger.Debug("kiosk commit", "combination", set.Combination, "label", set.Label)
	if h := m.cfg.Hooks.OnKioskCommit; h != nil {
		h(set)
	}
}
