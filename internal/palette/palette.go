// Package palette holds the color harmony table used to decide which
// dominant colors go well with a base color.
package palette

import (
	"slices"

	"github.com/wichananm65/kombin-backend/internal/label"
)

// Relations groups the colors related to one base color.
type Relations struct {
	Complementary []string `json:"complementary"`
	Analogous     []string `json:"analogous"`
	Triadic       []string `json:"triadic"`
	Monochrome    []string `json:"monochrome"`
}

func (r Relations) all() []string {
	out := make([]string, 0, len(r.Complementary)+len(r.Analogous)+len(r.Triadic)+len(r.Monochrome))
	out = append(out, r.Complementary...)
	out = append(out, r.Analogous...)
	out = append(out, r.Triadic...)
	out = append(out, r.Monochrome...)
	return out
}

func (r Relations) clone() Relations {
	return Relations{
		Complementary: append([]string(nil), r.Complementary...),
		Analogous:     append([]string(nil), r.Analogous...),
		Triadic:       append([]string(nil), r.Triadic...),
		Monochrome:    append([]string(nil), r.Monochrome...),
	}
}

// Harmony is an immutable color harmony table plus the set of neutrals that
// go with every base color.
type Harmony struct {
	table    map[string]Relations
	bases    []string
	neutrals []string
}

// New builds a Harmony. Base color keys are folded so lookups ignore case.
func New(table map[string]Relations, neutrals []string) Harmony {
	h := Harmony{
		table:    make(map[string]Relations, len(table)),
		neutrals: append([]string(nil), neutrals...),
	}
	for base, r := range table {
		f := label.Fold(base)
		if f == "" {
			continue
		}
		if _, dup := h.table[f]; !dup {
			h.bases = append(h.bases, base)
		}
		h.table[f] = r.clone()
	}
	slices.Sort(h.bases)
	return h
}

// Relations returns the four relation sets for base. Unknown colors yield
// empty sets.
func (h Harmony) Relations(base string) Relations {
	return h.table[label.Fold(base)].clone()
}

// Known reports whether base has an entry in the table.
func (h Harmony) Known(base string) bool {
	_, ok := h.table[label.Fold(base)]
	return ok
}

// HarmonicColors is the union of every relation set for base and the
// neutral colors. The neutrals are always present, so the result is never
// empty. Entries are unique by folded form and keep first-seen order.
func (h Harmony) HarmonicColors(base string) []string {
	rel := h.table[label.Fold(base)]
	seen := make(label.Set)
	out := make([]string, 0, len(h.neutrals)+8)
	for _, c := range append(rel.all(), h.neutrals...) {
		f := label.Fold(c)
		if f == "" {
			continue
		}
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, c)
	}
	return out
}

// HarmonicSet is HarmonicColors as a folded membership set.
func (h Harmony) HarmonicSet(base string) label.Set {
	return label.NewSet(h.HarmonicColors(base)...)
}

// Neutrals returns the colors compatible with any base.
func (h Harmony) Neutrals() []string {
	return append([]string(nil), h.neutrals...)
}

// Bases lists the base colors that have table entries, sorted.
func (h Harmony) Bases() []string {
	return append([]string(nil), h.bases...)
}
