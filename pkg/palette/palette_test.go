package palette

import (
	"math"
	"testing"

	"github.com/matzehuels/drift/pkg/errors"
	"github.com/matzehuels/drift/pkg/prng"
)

func TestCurated(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range Curated() {
		if seen[p.Name] {
			t.Errorf("duplicate palette name %q", p.Name)
		}
		seen[p.Name] = true
		if len(p.Colors) < Size {
			t.Errorf("palette %q has %d colours, want at least %d", p.Name, len(p.Colors), Size)
		}
		if _, err := Assign(p, 0, Ascending); err != nil {
			t.Errorf("Assign(%q): %v", p.Name, err)
		}
	}
	if got, ok := Lookup("tide"); !ok || got.Name != "tide" {
		t.Error("Lookup(tide) failed")
	}
	if _, ok := Lookup("nope"); ok {
		t.Error("Lookup(nope) should fail")
	}
}

func TestFromHexInvalid(t *testing.T) {
	if _, err := FromHex("bad", "#ffffff", "not-a-colour"); err == nil {
		t.Error("expected error for invalid hex")
	}
}

func TestAssignGreys(t *testing.T) {
	greys, err := FromHex("greys", "#ffffff", "#000000", "#808080", "#c0c0c0", "#404040")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		order Order
		want  [Size]int
	}{
		{"ascending", Ascending, [Size]int{0, 3, 2, 4, 1}},
		{"descending", Descending, [Size]int{1, 4, 2, 3, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roles, err := Assign(greys, 0, tt.order)
			if err != nil {
				t.Fatal(err)
			}
			if roles.Indices != tt.want {
				t.Errorf("Indices = %v, want %v", roles.Indices, tt.want)
			}
			for rank, idx := range roles.Indices {
				if roles.Colors[rank] != greys.Colors[idx] {
					t.Errorf("rank %d colour does not match palette index %d", rank, idx)
				}
			}
		})
	}
}

func TestAssignTiesKeepPaletteOrder(t *testing.T) {
	p, err := FromHex("ties", "#808080", "#808080", "#ffffff", "#000000", "#808080")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		order Order
		want  [Size]int
	}{
		{Ascending, [Size]int{2, 0, 1, 4, 3}},
		{Descending, [Size]int{3, 0, 1, 4, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.order.String(), func(t *testing.T) {
			roles, err := Assign(p, 2, tt.order)
			if err != nil {
				t.Fatal(err)
			}
			if roles.Indices != tt.want {
				t.Errorf("Indices = %v, want %v", roles.Indices, tt.want)
			}
		})
	}
}

func TestAssignReferenceWraps(t *testing.T) {
	p := Curated()[0]
	a, _ := Assign(p, 1, Ascending)
	b, _ := Assign(p, 1+len(p.Colors), Ascending)
	c, _ := Assign(p, 1-len(p.Colors), Ascending)
	if a != b || a != c {
		t.Error("reference index does not wrap modulo palette length")
	}
}

func TestAssignTooFewColours(t *testing.T) {
	p, _ := FromHex("short", "#ffffff", "#000000")
	if _, err := Assign(p, 0, Ascending); !errors.Is(err, errors.ErrCodeInvalidConfiguration) {
		t.Errorf("error = %v, want INVALID_CONFIGURATION", err)
	}
}

func TestRoleStrings(t *testing.T) {
	want := []string{"background", "bottom", "top", "even", "odd"}
	for i, role := range AllRoles {
		if role.String() != want[i] {
			t.Errorf("role %d = %q, want %q", i, role, want[i])
		}
	}
	roles, _ := Assign(Curated()[1], 0, Ascending)
	if len(roles.Hexes()) != Size {
		t.Errorf("Hexes() has %d entries", len(roles.Hexes()))
	}
}

func TestGenerateDeterministic(t *testing.T) {
	for family := range Families {
		a := Generate(family, prng.New("palette-seed"))
		b := Generate(family, prng.New("palette-seed"))
		if len(a.Colors) != Size {
			t.Fatalf("family %d: %d colours, want %d", family, len(a.Colors), Size)
		}
		for i := range a.Colors {
			if a.Colors[i] != b.Colors[i] {
				t.Errorf("family %d colour %d differs between runs", family, i)
			}
		}
		if a.Name != "generated-"+FamilyNames[family] {
			t.Errorf("Name = %q", a.Name)
		}
	}
}

func TestGenerateAnchorFamily(t *testing.T) {
	for _, seed := range []string{"a", "b", "c", "d"} {
		for family := range Families {
			p := Generate(family, prng.New(seed))
			h, _, _ := p.Colors[0].Hsv()
			lo, hi := float64(family)*60, float64(family+1)*60
			if h < lo-1e-6 || h > hi+1e-6 {
				t.Errorf("seed %q family %d: anchor hue %.2f outside [%v,%v]", seed, family, h, lo, hi)
			}
		}
	}
}

func TestCompanionHue(t *testing.T) {
	r := prng.New("companion")
	for range 200 {
		anchor := r.Next()
		h := companionHue(anchor, r)
		if h < 0 || h >= 1 {
			t.Fatalf("hue %v out of [0,1)", h)
		}
		diff := math.Abs(h - anchor)
		fallback := math.Abs(h-math.Mod(anchor+fallbackTurn, 1)) < 1e-12
		if !fallback && (diff < minHueDiff || diff > maxHueDiff) {
			t.Errorf("anchor %.3f: hue %.3f differs by %.3f", anchor, h, diff)
		}
	}
}
