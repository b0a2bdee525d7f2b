package features

import (
	"fmt"
	"image/color"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/drift/pkg/canvas"
	"github.com/matzehuels/drift/pkg/combination"
	"github.com/matzehuels/drift/pkg/errors"
	"github.com/matzehuels/drift/pkg/palette"
	"github.com/matzehuels/drift/pkg/prng"
)

// Set is the fully resolved feature set of one combination. It is replaced
// wholesale when the combination changes and never mutated afterwards.
type Set struct {
	Combination int
	Seed        string
	Fingerprint string
	Variation   combination.Variation

	Palette   palette.Palette
	Generated bool
	Order     palette.Order
	Reference int
	Roles     palette.Roles

	// FlowStart is the starting facing of the pair cycle; Cross pins all four
	// directions for the lifetime of the combination.
	FlowStart int
	Cross     bool

	Block     int
	Shape     canvas.Kind
	MaxLive   int
	Distances []int
	Tempo     int
	Tone      float64

	Label string
	Slug  string
}

// Option configures [Derive].
type Option func(*options)

type options struct {
	logger *log.Logger
}

// WithLogger logs an advisory summary of each derived set at info level.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Derive resolves the feature set of combination using r, which the caller
// seeds freshly for reproducible results. Out-of-range combinations wrap.
func Derive(c int, r *prng.Rand, opts ...Option) (*Set, error) {
	o := options{logger: log.NewWithOptions(io.Discard, log.Options{})}
	for _, opt := range opts {
		opt(&o)
	}
	if r == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "derive: nil random source")
	}

	root, err := Slots()
	if err != nil {
		return nil, err
	}
	c = combination.Normalize(c, root.Cardinality())
	v := root.Decode(c)

	s := &Set{
		Combination: c,
		Seed:        r.Hash(),
		Fingerprint: r.Fingerprint(),
		Variation:   v,
	}
	if err := s.resolve(v, r); err != nil {
		return nil, err
	}

	s.Label = v.Label
	s.Slug = errors.Slugify(strings.Join(v.Labels(), "-"))

	o.logger.Info("derived features",
		"combination", s.Combination,
		"palette", s.Palette.Name,
		"order", s.Order,
		"flow", s.FlowLabel(),
		"block", s.Block,
		"density", s.MaxLive,
		"label", s.Label)
	return s, nil
}

func (s *Set) resolve(v combination.Variation, r *prng.Rand) error {
	chosen, _ := v.MustChild(SlotPalette).Chosen()
	switch chosen.Name {
	case paletteCurated:
		s.Palette, _ = combination.ValueAs[palette.Palette](chosen)
	case paletteGenerated:
		family, _ := combination.ValueAs[int](chosen)
		s.Palette = palette.Generate(family, r)
		s.Generated = true
	}

	s.Order, _ = combination.ValueAs[palette.Order](v.MustChild(SlotOrder))
	s.Reference, _ = combination.ValueAs[int](v.MustChild(SlotReference))

	roles, err := palette.Assign(s.Palette, s.Reference, s.Order)
	if err != nil {
		return err
	}
	s.Roles = roles

	if _, ok := v.Path(SlotFlow, flowCross); ok {
		s.Cross = true
	} else {
		flow, _ := v.MustChild(SlotFlow).Chosen()
		s.FlowStart, _ = combination.ValueAs[int](flow)
	}

	s.Block, _ = combination.ValueAs[int](v.MustChild(SlotBlock))
	s.Shape, _ = combination.ValueAs[canvas.Kind](v.MustChild(SlotShape))
	s.MaxLive, _ = combination.ValueAs[int](v.MustChild(SlotDensity))
	distances, _ := combination.ValueAs[[]int](v.MustChild(SlotDistances))
	s.Distances = slices.Clone(distances)
	s.Tempo, _ = combination.ValueAs[int](v.MustChild(SlotTempo))
	s.Tone, _ = combination.ValueAs[float64](v.MustChild(SlotTone))
	return nil
}

// Filename returns the stable capture file name of the set.
func (s *Set) Filename() string {
	return Filename(s.Slug, s.Combination, s.Fingerprint)
}

// Filename builds "drift-<slug>-<combination>-<fingerprint>.png".
func Filename(slug string, c int, fingerprint string) string {
	return fmt.Sprintf("drift-%s-%d-%s.png", slug, c, fingerprint)
}

// FlowLabel describes the flow feature.
func (s *Set) FlowLabel() string {
	if s.Cross {
		return "crosswind"
	}
	return FacingLabels[s.FlowStart]
}

// Color returns the colour of a role.
func (s *Set) Color(role palette.Role) color.Color {
	return s.Roles.Color(role)
}

// Scene returns the painter parameters of the set.
func (s *Set) Scene() canvas.Scene {
	return canvas.Scene{
		Background: s.Roles.Color(palette.Background),
		Bottom:     s.Roles.Color(palette.Bottom),
		Top:        s.Roles.Color(palette.Top),
		Even:       s.Roles.Color(palette.Even),
		Odd:        s.Roles.Color(palette.Odd),
		Block:      s.Block,
		Kind:       s.Shape,
	}
}

// ToneFunc returns the recolour step of the set.
func (s *Set) ToneFunc() canvas.Tone {
	return canvas.DefaultTone(s.Tone)
}

// Summary is the JSON view of a set.
type Summary struct {
	Combination int               `json:"combination"`
	Seed        string            `json:"seed"`
	Fingerprint string            `json:"fingerprint"`
	Label       string            `json:"label"`
	Filename    string            `json:"filename"`
	Palette     string            `json:"palette"`
	Colors      []string          `json:"colors"`
	Roles       map[string]string `json:"roles"`
	RoleIndices []int             `json:"role_indices"`
	Order       string            `json:"order"`
	Flow        string            `json:"flow"`
	Block       int               `json:"block"`
	Shape       string            `json:"shape"`
	MaxLive     int               `json:"max_live"`
	Distances   []int             `json:"distances"`
	Tempo       int               `json:"tempo"`
	Tone        float64           `json:"tone"`
}

// Summary returns the JSON view of s.
func (s *Set) Summary() Summary {
	return Summary{
		Combination: s.Combination,
		Seed:        s.Seed,
		Fingerprint: s.Fingerprint,
		Label:       s.Label,
		Filename:    s.Filename(),
		Palette:     s.Palette.Name,
		Colors:      s.Palette.Hexes(),
		Roles:       s.Roles.Hexes(),
		RoleIndices: s.Roles.Indices[:],
		Order:       s.Order.String(),
		Flow:        s.FlowLabel(),
		Block:       s.Block,
		Shape:       s.Shape.String(),
		MaxLive:     s.MaxLive,
		Distances:   s.Distances,
		Tempo:       s.Tempo,
		Tone:        s.Tone,
	}
}
