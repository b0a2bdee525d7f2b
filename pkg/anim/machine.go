package anim

import (
	"fmt"
	"image"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/drift/pkg/canvas"
	"github.com/matzehuels/drift/pkg/features"
	"github.com/matzehuels/drift/pkg/prng"
)

// Phase is the animation phase of a [Machine].
type Phase int

const (
	Previewing Phase = iota
	Steady
	Paused
)

// String returns the lowercase phase name.
func (p Phase) String() string {
	switch p {
	case Previewing:
		return "previewing"
	case Steady:
		return "steady"
	case Paused:
		return "paused"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// DefaultPreviewFactor multiplies MaxLive to give the preview spawn threshold.
const DefaultPreviewFactor = 3

// Hooks are called synchronously from inside a tick. Nil hooks are skipped.
type Hooks struct {
	// OnPreview fires once per combination, when the preview phase ends.
	OnPreview func(set *features.Set)
	// OnKioskChange fires when a kiosk change swaps render resources.
	OnKioskChange func(batch int)
	// OnKioskCommit fires after a kiosk change has been committed.
	OnKioskCommit func(set *features.Set)
	// OnPhase fires on every phase transition.
	OnPhase func(from, to Phase)
}

// DeriveFunc derives the feature set of a combination from a freshly seeded source.
type DeriveFunc func(combination int, r *prng.Rand) (*features.Set, error)

// Config configures a [Machine].
type Config struct {
	PreviewFactor int
	PauseAfter    int // ticks; 0 disables the countdown
	Kiosk         KioskConfig
	Hooks         Hooks
	Logger        *log.Logger
	Derive        DeriveFunc
}

func (c *Config) setDefaults() {
	if c.PreviewFactor <= 0 {
		c.PreviewFactor = DefaultPreviewFactor
	}
	if c.Logger == nil {
		c.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if c.Derive == nil {
		c.Derive = func(combination int, r *prng.Rand) (*features.Set, error) {
			return features.Derive(combination, r)
		}
	}
	if c.Kiosk.Interval <= 0 {
		c.Kiosk.Interval = 1
	}
}

// Stats is a snapshot of the machine state.
type Stats struct {
	Frame       int
	Live        int
	Spawned     int
	Phase       Phase
	Previewing  bool
	PauseLeft   int
	Fading      bool
	FadeDone    float64
	Combination int
	Failed      bool
}

// Machine is the per-tick animation state. It is not safe for concurrent use.
type Machine struct {
	cfg    Config
	set    *features.Set
	r      *prng.Rand
	canvas *canvas.Canvas
	logger *log.Logger

	frame      int
	elements   []*Element
	spawned    int
	wait       int
	flow       *Flow
	pauseLeft  int
	paused     bool
	previewing bool
	previewed  bool
	failed     error

	colors       Colors
	kioskElapsed int
	fade         *crossFade
	pending      *features.Set
	repaint      bool // the pending set replaces the scene
}

// New returns a machine animating set on c. The canvas is expected to hold the
// painted scene of set already.
func New(cfg Config, set *features.Set, r *prng.Rand, c *canvas.Canvas) *Machine {
	cfg.setDefaults()
	m := &Machine{
		cfg:    cfg,
		set:    set,
		r:      r,
		canvas: c,
		logger: cfg.Logger,
	}
	m.start(set)
	return m
}

func (m *Machine) start(set *features.Set) {
	m.set = set
	m.colors = RoleColors(set)
	m.elements = m.elements[:0]
	m.spawned = 0
	m.wait = 0
	m.flow = NewFlow(set.FlowStart, set.Cross, m.r)
	m.pauseLeft = m.cfg.PauseAfter
	m.previewing = true
	m.previewed = false
}

// Tick advances the machine by one frame. A failed machine ignores ticks and
// a paused one only advances the kiosk cycle.
func (m *Machine) Tick() {
	if m.failed != nil {
		return
	}
	if m.paused {
		m.tickKiosk()
		return
	}

	m.frame++
	m.retire()
	m.spawn()
	m.step()
	m.countdown()
	if m.previewing && m.spawned > m.set.MaxLive*m.cfg.PreviewFactor {
		m.endPreview()
	}
}

func (m *Machine) retire() {
	i := 0
	for i < len(m.elements) {
		if m.elements[i].Done() {
			last := len(m.elements) - 1
			m.elements[i] = m.elements[last]
			m.elements[last] = nil
			m.elements = m.elements[:last]
			continue
		}
		i++
	}
}

func (m *Machine) spawn() {
	if m.wait > 0 {
		m.wait--
	}
	if m.wait > 0 || len(m.elements) >= m.set.MaxLive {
		return
	}

	block := max(m.set.Block, 1)
	cols := max(m.canvas.Width()/block, 1)
	rows := max(m.canvas.Height()/block, 1)
	x, y := m.r.Int(cols)*block, m.r.Int(rows)*block

	m.elements = append(m.elements, &Element{
		Shape:     canvas.Shape{Kind: m.set.Shape, Rect: image.Rect(x, y, x+block, y+block)},
		Direction: m.flow.Next(m.r),
		Distance:  prng.Choice(m.r, m.set.Distances),
	})
	m.spawned++
	m.wait = m.set.Tempo
}

func (m *Machine) step() {
	tone := m.set.ToneFunc()
	for _, e := range m.elements {
		e.done = !e.Step(m.canvas, tone)
	}
}

func (m *Machine) countdown() {
	if m.cfg.PauseAfter <= 0 {
		return
	}
	m.pauseLeft--
	if m.pauseLeft > 0 {
		return
	}
	if m.previewing {
		m.endPreview()
	}
	m.Pause()
}

func (m *Machine) endPreview() {
	from := m.Phase()
	m.previewing = false
	m.transition(from)
	if m.previewed {
		return
	}
	m.previewed = true
	m.logger.Debug("preview ready", "combination", m.set.Combination, "frame", m.frame, "spawned", m.spawned)
	if h := m.cfg.Hooks.OnPreview; h != nil {
		h(m.set)
	}
}

func (m *Machine) transition(from Phase) {
	to := m.Phase()
	if from == to {
		return
	}
	m.logger.Debug("phase", "from", from, "to", to, "frame", m.frame)
	if h := m.cfg.Hooks.OnPhase; h != nil {
		h(from, to)
	}
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase {
	switch {
	case m.paused:
		return Paused
	case m.previewing:
		return Previewing
	default:
		return Steady
	}
}

// Pause stops element motion. The kiosk cycle keeps running.
func (m *Machine) Pause() {
	if m.paused {
		return
	}
	from := m.Phase()
	m.paused = true
	m.kioskElapsed = 0
	m.transition(from)
}

// Resume restarts motion and resets the pause countdown. A running kiosk fade
// is committed first. Failed machines stay paused.
func (m *Machine) Resume() {
	if m.failed != nil || !m.paused {
		return
	}
	if m.fade != nil {
		m.commit()
		return
	}
	from := m.Phase()
	m.paused = false
	m.pauseLeft = m.cfg.PauseAfter
	m.transition(from)
}

// TogglePause pauses a running machine and resumes a paused one.
func (m *Machine) TogglePause() {
	if m.paused {
		m.Resume()
	} else {
		m.Pause()
	}
}

// Touch records a user interaction: it resets the pause countdown and resumes.
func (m *Machine) Touch() {
	m.pauseLeft = m.cfg.PauseAfter
	m.Resume()
}

// Fail freezes the machine permanently after an environment error.
func (m *Machine) Fail(err error) {
	if err == nil || m.failed != nil {
		return
	}
	m.logger.Error("animation failed", "err", err)
	from := m.Phase()
	m.failed = err
	m.paused = true
	m.fade = nil
	m.transition(from)
}

// Failed returns the error the machine was frozen with, if any.
func (m *Machine) Failed() error { return m.failed }

// Set returns the committed feature set.
func (m *Machine) Set() *features.Set { return m.set }

// Colors returns the live role colours, which differ from the set's colours
// while a kiosk fade runs.
func (m *Machine) Colors() Colors { return m.colors }

// Flow returns the flow policy of the current set.
func (m *Machine) Flow() *Flow { return m.flow }

// Elements returns the shapes of the live elements.
func (m *Machine) Elements() []canvas.Shape {
	out := make([]canvas.Shape, len(m.elements))
	for i, e := range m.elements {
		out[i] = e.Shape
	}
	return out
}

// SetCanvas replaces the canvas, for example after a pixel ratio change, and
// repaints the current scene into it. Live elements are dropped.
func (m *Machine) SetCanvas(c *canvas.Canvas) {
	m.canvas = c
	m.elements = m.elements[:0]
	m.Repaint()
}

// Canvas returns the canvas being animated.
func (m *Machine) Canvas() *canvas.Canvas { return m.canvas }

// Repaint redraws the scene of the current set with the live colours.
func (m *Machine) Repaint() {
	set := m.set
	if m.pending != nil && m.repaint {
		set = m.pending
	}
	Paint(m.canvas, set, m.colors)
}

// Stats returns a snapshot of the machine state.
func (m *Machine) Stats() Stats {
	s := Stats{
		Frame:       m.frame,
		Live:        len(m.elements),
		Spawned:     m.spawned,
		Phase:       m.Phase(),
		Previewing:  m.previewing,
		PauseLeft:   m.pauseLeft,
		Fading:      m.fade != nil,
		Combination: m.set.Combination,
		Failed:      m.failed != nil,
	}
	if m.fade != nil {
		s.FadeDone = m.fade.Progress()
	}
	return s
}

// Paint draws the scene of set with the given role colours. The layout is
// drawn from a source derived from the seed and combination, so repainting
// the same set always yields the same layout.
func Paint(c *canvas.Canvas, set *features.Set, colors Colors) {
	scene := set.Scene()
	scene.Background = colors[0]
	scene.Bottom = colors[1]
	scene.Top = colors[2]
	scene.Even = colors[3]
	scene.Odd = colors[4]
	canvas.Paint(c, scene, LayoutRand(set))
}

// LayoutRand returns the source used to lay out the scene of set.
func LayoutRand(set *features.Set) *prng.Rand {
	return prng.New(fmt.Sprintf("%s/layout/%d", set.Seed, set.Combination))
}
