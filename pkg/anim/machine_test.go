package anim

import (
	"image"
	"reflect"
	"testing"

	"github.com/matzehuels/drift/pkg/canvas"
	"github.com/matzehuels/drift/pkg/features"
	"github.com/matzehuels/drift/pkg/prng"
)

const testSeed = "anim-test-seed"

func testSet(t *testing.T, c int) *features.Set {
	t.Helper()
	set, err := features.Derive(c, prng.New(testSeed))
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	return set
}

func newMachine(t *testing.T, cfg Config, set *features.Set) *Machine {
	t.Helper()
	c := canvas.New(128, 96)
	Paint(c, set, RoleColors(set))
	return New(cfg, set, prng.New(testSeed), c)
}

func TestElementZeroDistance(t *testing.T) {
	c := canvas.New(16, 16)
	before := c.Clone()
	for _, dist := range []int{0, -3} {
		e := &Element{Shape: canvas.Shape{Rect: image.Rect(4, 4, 8, 8)}, Direction: canvas.Right, Distance: dist}
		if e.Step(c, canvas.DefaultTone(0.5)) {
			t.Errorf("distance %d: Step reported progress", dist)
		}
	}
	if !reflect.DeepEqual(c.Image().Pix, before.Image().Pix) {
		t.Error("zero-distance element mutated the canvas")
	}
}

func TestElementTravel(t *testing.T) {
	c := canvas.New(32, 8)
	e := &Element{Shape: canvas.Shape{Rect: image.Rect(0, 0, 4, 4)}, Direction: canvas.Right, Distance: 3}
	steps := 0
	for e.Step(c, canvas.Tone{}) {
		steps++
	}
	if steps != 3 || e.Shape.Rect.Min.X != 3 {
		t.Errorf("steps = %d, x = %d; want 3, 3", steps, e.Shape.Rect.Min.X)
	}

	edge := &Element{Shape: canvas.Shape{Rect: image.Rect(26, 0, 30, 4)}, Direction: canvas.Right, Distance: 100}
	steps = 0
	for edge.Step(c, canvas.Tone{}) {
		steps++
	}
	if steps != 2 {
		t.Errorf("edge element moved %d steps, want 2", steps)
	}
}

func TestLiveCap(t *testing.T) {
	set := *testSet(t, 0)
	set.MaxLive = 5
	set.Tempo = 1
	m := newMachine(t, Config{}, &set)

	for tick := 0; tick < 400; tick++ {
		before := m.Stats()
		m.Tick()
		after := m.Stats()
		if after.Live > set.MaxLive {
			t.Fatalf("tick %d: %d live elements, cap %d", tick, after.Live, set.MaxLive)
		}
		spawned := after.Spawned - before.Spawned
		retired := before.Live + spawned - after.Live
		if before.Live == set.MaxLive && spawned > retired {
			t.Fatalf("tick %d: spawned %d at cap with %d retired", tick, spawned, retired)
		}
		if spawned > 1 {
			t.Fatalf("tick %d: spawned %d elements in one tick", tick, spawned)
		}
	}
}

func TestTempoSpacesSpawns(t *testing.T) {
	set := *testSet(t, 0)
	set.MaxLive = 64
	set.Tempo = 4
	m := newMachine(t, Config{}, &set)

	for range 40 {
		m.Tick()
	}
	if got := m.Stats().Spawned; got != 10 {
		t.Errorf("spawned = %d after 40 ticks at tempo 4, want 10", got)
	}
}

func TestPreviewFiresOnce(t *testing.T) {
	set := *testSet(t, 0)
	set.MaxLive = 2
	set.Tempo = 1

	var previews []int
	var phases []Phase
	m := newMachine(t, Config{
		PreviewFactor: 2,
		Hooks: Hooks{
			OnPreview: func(s *features.Set) { previews = append(previews, s.Combination) },
			OnPhase:   func(_, to Phase) { phases = append(phases, to) },
		},
	}, &set)

	if m.Phase() != Previewing {
		t.Fatalf("initial phase = %v", m.Phase())
	}
	for range 200 {
		m.Tick()
	}
	if len(previews) != 1 {
		t.Fatalf("preview fired %d times, want 1", len(previews))
	}
	if m.Phase() != Steady {
		t.Errorf("phase = %v, want steady", m.Phase())
	}

	m.Pause()
	m.Resume()
	for range 50 {
		m.Tick()
	}
	if len(previews) != 1 {
		t.Errorf("preview fired again after pause/resume")
	}
	want := []Phase{Steady, Paused, Steady}
	if !reflect.DeepEqual(phases, want) {
		t.Errorf("phases = %v, want %v", phases, want)
	}
}

func TestPauseAfterAndTouch(t *testing.T) {
	set := testSet(t, 3)
	var previews int
	m := newMachine(t, Config{
		PauseAfter: 5,
		Hooks:      Hooks{OnPreview: func(*features.Set) { previews++ }},
	}, set)

	for range 4 {
		m.Tick()
	}
	if m.Phase() == Paused {
		t.Fatal("paused before the countdown expired")
	}
	m.Tick()
	if m.Phase() != Paused {
		t.Fatalf("phase = %v after countdown, want paused", m.Phase())
	}
	if previews != 1 {
		t.Errorf("countdown pause during preview fired %d previews, want 1", previews)
	}

	frame := m.Stats().Frame
	m.Tick()
	if m.Stats().Frame != frame {
		t.Error("paused machine advanced the frame counter")
	}

	m.Touch()
	if m.Phase() != Steady || m.Stats().PauseLeft != 5 {
		t.Errorf("after touch: phase %v, pause left %d", m.Phase(), m.Stats().PauseLeft)
	}
}

func TestFail(t *testing.T) {
	m := newMachine(t, Config{}, testSet(t, 0))
	m.Tick()
	m.Fail(errTest("context lost"))

	frame := m.Stats().Frame
	m.Tick()
	m.Touch()
	m.Randomize()
	st := m.Stats()
	if st.Frame != frame || st.Phase != Paused || !st.Failed {
		t.Errorf("failed machine state = %+v", st)
	}
	if m.Failed() == nil {
		t.Error("Failed() = nil")
	}
}

func TestSetCanvasRepaints(t *testing.T) {
	set := testSet(t, 9)
	m := newMachine(t, Config{}, set)
	for range 10 {
		m.Tick()
	}

	c := canvas.New(64, 48)
	m.SetCanvas(c)
	want := canvas.New(64, 48)
	Paint(want, set, RoleColors(set))
	if !reflect.DeepEqual(c.Image().Pix, want.Image().Pix) {
		t.Error("SetCanvas did not repaint the scene")
	}
	if m.Stats().Live != 0 {
		t.Error("SetCanvas kept live elements")
	}
}

type errTest string

func (e errTest) Error() string { return string(e) }
