package palette

import (
	"cmp"
	"math"
	"slices"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/drift/pkg/errors"
)

// Order is the direction of both role sorting stages.
type Order int

const (
	Ascending Order = iota
	Descending
)

// String returns "ascending" or "descending".
func (o Order) String() string {
	if o == Descending {
		return "descending"
	}
	return "ascending"
}

// Role names one of the five colour positions of a scene.
type Role int

const (
	Background Role = iota
	Bottom
	Top
	Even
	Odd
)

// AllRoles lists the roles in rank order.
var AllRoles = [Size]Role{Background, Bottom, Top, Even, Odd}

// String returns the lowercase role name.
func (r Role) String() string {
	switch r {
	case Background:
		return "background"
	case Bottom:
		return "bottom"
	case Top:
		return "top"
	case Even:
		return "even"
	case Odd:
		return "odd"
	default:
		return "unknown"
	}
}

// Roles holds the colour assigned to each role and the palette index it came from.
type Roles struct {
	Colors  [Size]colorful.Color
	Indices [Size]int
}

// Color returns the colour of role r.
func (r Roles) Color(role Role) colorful.Color {
	return r.Colors[role]
}

// Hexes returns the role colours as hex strings keyed by role name.
func (r Roles) Hexes() map[string]string {
	out := make(map[string]string, Size)
	for _, role := range AllRoles {
		out[role.String()] = r.Colors[role].Hex()
	}
	return out
}

var white = colorful.Color{R: 1, G: 1, B: 1}

// Assign computes the colour roles of p. reference selects the palette member
// anchoring the lightness stage and wraps modulo the palette length.
func Assign(p Palette, reference int, order Order) (Roles, error) {
	n := len(p.Colors)
	if n < Size {
		return Roles{}, errors.New(errors.ErrCodeInvalidConfiguration,
			"palette %q: need at least %d colours, got %d", p.Name, Size, n)
	}
	reference = ((reference % n) + n) % n
	refL, _, _ := p.Colors[reference].Lab()

	type entry struct {
		index     int
		saturated float64
		lightness float64
	}
	entries := make([]entry, n)
	for i, c := range p.Colors {
		l, _, _ := c.Lab()
		entries[i] = entry{
			index:     i,
			saturated: c.DistanceCIE94(white),
			lightness: math.Abs(l - refL),
		}
	}

	compare := func(a, b float64) int {
		if order == Descending {
			return cmp.Compare(b, a)
		}
		return cmp.Compare(a, b)
	}
	slices.SortStableFunc(entries, func(a, b entry) int { return compare(a.saturated, b.saturated) })
	slices.SortStableFunc(entries, func(a, b entry) int { return compare(a.lightness, b.lightness) })

	var roles Roles
	for rank := range Size {
		roles.Indices[rank] = entries[rank].index
		roles.Colors[rank] = p.Colors[entries[rank].index]
	}
	return roles, nil
}
