package features

import (
	"fmt"
	"sync"

	"github.com/matzehuels/drift/pkg/canvas"
	"github.com/matzehuels/drift/pkg/combination"
	"github.com/matzehuels/drift/pkg/palette"
)

// Slot names of the piece, in decode order.
const (
	SlotPalette   = "palette"
	SlotOrder     = "order"
	SlotReference = "reference"
	SlotFlow      = "flow"
	SlotBlock     = "block"
	SlotShape     = "shape"
	SlotDensity   = "density"
	SlotDistances = "distances"
	SlotTempo     = "tempo"
	SlotTone      = "tone"

	paletteCurated   = "curated"
	paletteGenerated = "generated"
	flowPair         = "pair"
	flowCross        = "cross"
)

// FacingLabels names the four facings of the pair flow cycle.
var FacingLabels = []string{"north-east", "south-east", "south-west", "north-west"}

var slots = sync.OnceValues(buildSlots)

// Slots returns the slot tree of the piece. The tree is built once.
func Slots() (combination.Slot, error) {
	return slots()
}

// Total returns the number of distinct combinations.
func Total() int {
	root, err := slots()
	if err != nil {
		return 0
	}
	return root.Cardinality()
}

func buildSlots() (combination.Slot, error) {
	var b builder

	curated := b.add(combination.Set(paletteCurated, palette.Curated(),
		combination.LabelFunc(func(_ int, v any) string { return v.(palette.Palette).Name })))
	generated := b.add(combination.Number(paletteGenerated, palette.Families,
		combination.LabelFunc(func(i int, _ any) string { return palette.FamilyNames[i] + " hues" })))
	paletteSlot := b.add(combination.Collection(SlotPalette, []combination.Slot{curated, generated}, 1, 1))

	order := b.add(combination.Set(SlotOrder, []palette.Order{palette.Ascending, palette.Descending}))
	reference := b.add(combination.Number(SlotReference, palette.Size,
		combination.LabelFunc(func(i int, _ any) string { return fmt.Sprintf("anchor %d", i) })))

	pair := b.add(combination.Number(flowPair, len(FacingLabels), combination.Labels(FacingLabels...)))
	cross := b.add(combination.Set(flowCross, [][]canvas.Direction{canvas.Directions}, combination.Labels("crosswind")))
	flow := b.add(combination.Collection(SlotFlow, []combination.Slot{pair, cross}, 1, 1))

	block := b.add(combination.Set(SlotBlock, []int{4, 8, 16, 24, 32},
		combination.Labels("tiny", "small", "medium", "large", "huge")))
	shape := b.add(combination.Set(SlotShape, []canvas.Kind{canvas.KindRect, canvas.KindCircle},
		combination.Labels("blocks", "discs")))
	density := b.add(combination.Set(SlotDensity, []int{8, 16, 32, 64},
		combination.Labels("sparse", "calm", "busy", "dense")))
	distances := b.add(combination.Set(SlotDistances, [][]int{{8, 16, 32}, {16, 32, 64}, {32, 64, 128}},
		combination.Labels("short", "medium", "long")))
	tempo := b.add(combination.Set(SlotTempo, []int{1, 2, 4, 8},
		combination.Labels("frantic", "lively", "steady", "slow")))
	tone := b.add(combination.Set(SlotTone, []float64{0.004, 0.008, 0.016},
		combination.Labels("soft", "mid", "hard")))

	if b.err != nil {
		return nil, b.err
	}
	return combination.Features("features",
		paletteSlot, order, reference, flow, block, shape, density, distances, tempo, tone)
}

// builder collects the first construction error so the tree reads top-down.
type builder struct {
	err error
}

func (b *builder) add(s combination.Slot, err error) combination.Slot {
	if err != nil && b.err == nil {
		b.err = err
	}
	return s
}
