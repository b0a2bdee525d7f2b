package combination

import (
	"fmt"
	"math"
	"strings"

	"github.com/matzehuels/drift/pkg/errors"
)

// Kind tags the variant of a slot and of the variations it decodes.
type Kind int

const (
	KindNumber Kind = iota
	KindSet
	KindCollection
	KindFeatures
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindSet:
		return "set"
	case KindCollection:
		return "collection"
	case KindFeatures:
		return "features"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Slot is one named feature dimension of the codec.
type Slot interface {
	// Name identifies the slot within its parent.
	Name() string
	// Kind reports which constructor built the slot.
	Kind() Kind
	// Cardinality is the number of distinct variations, used as the mixed-radix base.
	Cardinality() int
	// Children returns the child slots of collection and features slots.
	Children() []Slot
	// Decode maps combination (wrapped into [0,Cardinality)) to a variation.
	Decode(combination int) Variation
}

// Labeler produces the human-readable label of a decoded value.
type Labeler func(index int, value any) string

// Labels returns a Labeler backed by an explicit list. Indices past the end of
// the list fall back to the default label.
func Labels(labels ...string) Labeler {
	return func(index int, value any) string {
		if index >= 0 && index < len(labels) {
			return labels[index]
		}
		return defaultLabel(index, value)
	}
}

// LabelFunc adapts a generator function into a Labeler.
func LabelFunc(fn func(index int, value any) string) Labeler {
	return fn
}

func defaultLabel(_ int, value any) string {
	return fmt.Sprint(value)
}

func pickLabeler(labelers []Labeler) Labeler {
	if len(labelers) > 0 && labelers[0] != nil {
		return labelers[0]
	}
	return defaultLabel
}

// Normalize wraps combination into [0,total). A non-positive total returns 0.
func Normalize(combination, total int) int {
	if total <= 0 {
		return 0
	}
	m := combination % total
	if m < 0 {
		m += total
	}
	return m
}

// =============================================================================
// Number
// =============================================================================

type numberSlot struct {
	name  string
	k     int
	label Labeler
}

// Number returns a slot whose value is combination mod k.
func Number(name string, k int, labels ...Labeler) (Slot, error) {
	if k <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfiguration,
			"number slot %q: cardinality must be positive, got %d", name, k)
	}
	return &numberSlot{name: name, k: k, label: pickLabeler(labels)}, nil
}

func (s *numberSlot) Name() string { return s.name }
func (s *numberSlot) Kind() Kind { return KindNumber }
func (s *numberSlot) Cardinality() int { return s.k }
func (s *numberSlot) Children() []Slot { return nil }
func (s *numberSlot) Decode(c int) Variation {
	i := Normalize(c, s.k)
	return Variation{
		Name:               s.name,
		Kind:               KindNumber,
		Index:              i,
		Value:              i,
		Label:              s.label(i, i),
		NumberOfVariations: s.k,
	}
}

// =============================================================================
// Set
// =============================================================================

type setSlot[T any] struct {
	name   string
	values []T
	label  Labeler
}

// Set returns a slot whose value is values[combination mod len(values)].
// The values slice is copied.
func Set[T any](name string, values []T, labels ...Labeler) (Slot, error) {
	if len(values) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfiguration,
			"set slot %q: value list cannot be empty", name)
	}
	return &setSlot[T]{
		name:   name,
		values: append([]T(nil), values...),
		label:  pickLabeler(labels),
	}, nil
}

func (s *setSlot[T]) Name() string { return s.name }
func (s *setSlot[T]) Kind() Kind { return KindSet }
func (s *setSlot[T]) Cardinality() int { return len(s.values) }
func (s *setSlot[T]) Children() []Slot { return nil }
func (s *setSlot[T]) Decode(c int) Variation {
	i := Normalize(c, len(s.values))
	v := s.values[i]
	return Variation{
		Name:               s.name,
		Kind:               KindSet,
		Index:              i,
		Value:              v,
		Label:              s.label(i, v),
		NumberOfVariations: len(s.values),
	}
}

// =============================================================================
// Collection
// =============================================================================

type collectionSlot struct {
	name       string
	children   []Slot
	weights    []int
	cumulative []int
	total      int
}

// Collection concatenates children, repeating child i weights[i] times.
// Missing weights default to 1. The cardinality is sum(card_i * weight_i).
func Collection(name string, children []Slot, weights ...int) (Slot, error) {
	if len(children) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfiguration,
			"collection slot %q: needs at least one child", name)
	}
	if err := uniqueNames(name, children); err != nil {
		return nil, err
	}

	s := &collectionSlot{
		name:       name,
		children:   append([]Slot(nil), children...),
		weights:    make([]int, len(children)),
		cumulative: make([]int, len(children)),
	}
	for i, child := range children {
		w := 1
		if i < len(weights) {
			w = weights[i]
		}
		if w <= 0 {
			return nil, errors.New(errors.ErrCodeInvalidConfiguration,
				"collection slot %q: weight of %q must be positive, got %d", name, child.Name(), w)
		}
		card := child.Cardinality()
		if card > (math.MaxInt-s.total)/w {
			return nil, errors.New(errors.ErrCodeInvalidConfiguration,
				"collection slot %q: cardinality overflows int", name)
		}
		s.weights[i] = w
		s.total += card * w
		s.cumulative[i] = s.total
	}
	return s, nil
}

func (s *collectionSlot) Name() string { return s.name }
func (s *collectionSlot) Kind() Kind { return KindCollection }
func (s *collectionSlot) Cardinality() int { return s.total }
func (s *collectionSlot) Children() []Slot { return s.children }

// Weights returns the weight of each child.
func (s *collectionSlot) Weights() []int { return s.weights }

func (s *collectionSlot) Decode(c int) Variation {
	residual := Normalize(c, s.total)

	chosen, start := len(s.children)-1, 0
	for i, cum := range s.cumulative {
		if cum > residual {
			chosen = i
			if i > 0 {
				start = s.cumulative[i-1]
			}
			break
		}
	}

	child := s.children[chosen]
	cv := child.Decode((residual - start) % child.Cardinality())
	return Variation{
		Name:               s.name,
		Kind:               KindCollection,
		Index:              residual,
		Value:              cv.Value,
		Label:              cv.Label,
		NumberOfVariations: s.total,
		Children:           []Variation{cv},
	}
}

// =============================================================================
// Features
// =============================================================================

type featuresSlot struct {
	name     string
	children []Slot
	total    int
	label    Labeler
}

// Features decodes children as the digits of a mixed-radix number: each child
// consumes combination mod its cardinality and passes the quotient to the next.
// The cardinality is the product of the children's cardinalities.
func Features(name string, children ...Slot) (Slot, error) {
	return FeaturesWithLabel(name, nil, children...)
}

// FeaturesWithLabel is [Features] with a custom label for the decoded tree.
// The labeler receives the index and the slice of child variations.
func FeaturesWithLabel(name string, label Labeler, children ...Slot) (Slot, error) {
	if len(children) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfiguration,
			"features slot %q: needs at least one child", name)
	}
	if err := uniqueNames(name, children); err != nil {
		return nil, err
	}

	total := 1
	for _, child := range children {
		card := child.Cardinality()
		if card > math.MaxInt/total {
			return nil, errors.New(errors.ErrCodeInvalidConfiguration,
				"features slot %q: cardinality overflows int", name)
		}
		total *= card
	}
	if label == nil {
		label = joinLabels
	}
	return &featuresSlot{
		name:     name,
		children: append([]Slot(nil), children...),
		total:    total,
		label:    label,
	}, nil
}

func (s *featuresSlot) Name() string { return s.name }
func (s *featuresSlot) Kind() Kind { return KindFeatures }
func (s *featuresSlot) Cardinality() int { return s.total }
func (s *featuresSlot) Children() []Slot { return s.children }

func (s *featuresSlot) Decode(c int) Variation {
	index := Normalize(c, s.total)
	rest := index

	children := make([]Variation, len(s.children))
	for i, child := range s.children {
		card := child.Cardinality()
		children[i] = child.Decode(rest % card)
		rest /= card
	}
	return Variation{
		Name:               s.name,
		Kind:               KindFeatures,
		Index:              index,
		Label:              s.label(index, children),
		NumberOfVariations: s.total,
		Children:           children,
	}
}

func joinLabels(_ int, value any) string {
	children, _ := value.([]Variation)
	labels := make([]string, len(children))
	for i, c := range children {
		labels[i] = c.Label
	}
	return strings.Join(labels, ", ")
}

func uniqueNames(parent string, children []Slot) error {
	seen := make(map[string]bool, len(children))
	for _, child := range children {
		if child == nil {
			return errors.New(errors.ErrCodeInvalidConfiguration, "slot %q: nil child", parent)
		}
		if seen[child.Name()] {
			return errors.New(errors.ErrCodeInvalidConfiguration,
				"slot %q: duplicate child name %q", parent, child.Name())
		}
		seen[child.Name()] = true
	}
	return nil
}

// Walk visits s and every descendant depth-first, parents before children.
// Returning false from fn skips the slot's children.
func Walk(s Slot, fn func(s Slot, depth int) bool) {
	walk(s, 0, fn)
}

func walk(s Slot, depth int, fn func(Slot, int) bool) {
	if !fn(s, depth) {
		return
	}
	for _, child := range s.Children() {
		walk(child, depth+1, fn)
	}
}
