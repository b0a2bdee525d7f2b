package combination

import "fmt"

// Variation is one decoded node of a slot tree.
//
// Number variations carry an int Value, set variations the selected element.
// Collection variations hold exactly one child (the chosen member) and mirror
// its Value and Label. Features variations hold their children in slot order.
type Variation struct {
	Name               string      `json:"name"`
	Kind               Kind        `json:"-"`
	Index              int         `json:"index"`
	Label              string      `json:"label"`
	NumberOfVariations int         `json:"variations"`
	Value              any         `json:"value,omitempty"`
	Children           []Variation `json:"children,omitempty"`
}

// Child returns the direct child with the given name.
func (v Variation) Child(name string) (Variation, bool) {
	for _, c := range v.Children {
		if c.Name == name {
			return c, true
		}
	}
	return Variation{}, false
}

// MustChild is like Child but panics when the child is missing. It is meant
// for slot trees fixed at compile time.
func (v Variation) MustChild(name string) Variation {
	c, ok := v.Child(name)
	if !ok {
		panic(fmt.Sprintf("combination: variation %q has no child %q", v.Name, name))
	}
	return c
}

// Path descends through the named children in order. Through a collection it
// only finds the chosen member.
func (v Variation) Path(names ...string) (Variation, bool) {
	cur := v
	for _, name := range names {
		next, ok := cur.Child(name)
		if !ok {
			return Variation{}, false
		}
		cur = next
	}
	return cur, true
}

// Chosen returns the selected member of a collection variation.
func (v Variation) Chosen() (Variation, bool) {
	if v.Kind != KindCollection || len(v.Children) != 1 {
		return Variation{}, false
	}
	return v.Children[0], true
}

// Labels flattens the labels of all leaf variations in depth-first order.
// A collection contributes the labels of its chosen member.
func (v Variation) Labels() []string {
	if len(v.Children) == 0 {
		return []string{v.Label}
	}
	var out []string
	for _, c := range v.Children {
		out = append(out, c.Labels()...)
	}
	return out
}

// ValueAs returns v.Value asserted to T.
func ValueAs[T any](v Variation) (T, bool) {
	t, ok := v.Value.(T)
	return t, ok
}
