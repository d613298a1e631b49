// Package taxonomy maps fine-grained garment category labels onto a closed
// set of main categories and records which main categories complement each
// other.
//
// A Taxonomy is built once and never mutated, so it can be shared freely
// between goroutines.
package taxonomy

import (
	"github.com/wichananm65/kombin-backend/internal/label"
)

// MainCategory is a coarse garment class used for compatibility reasoning.
type MainCategory string

const (
	Tops        MainCategory = "TOPS"
	Bottoms     MainCategory = "BOTTOMS"
	Outerwear   MainCategory = "OUTERWEAR"
	OnePiece    MainCategory = "ONE_PIECE"
	Shoes       MainCategory = "SHOES"
	Accessories MainCategory = "ACCESSORIES"
)

// Entry registers the fine-grained labels that belong to one main category.
type Entry struct {
	Main   MainCategory
	Labels []string
}

// Taxonomy is the immutable category rule set. The zero value has no
// entries and resolves nothing.
type Taxonomy struct {
	entries  []Entry
	folded   [][]string
	graph    map[MainCategory][]MainCategory
	single   map[MainCategory]bool
	mainsIdx map[MainCategory]int
}

// New builds a Taxonomy. Entries keep their declaration order: when a label
// is registered under more than one main category the first entry wins.
func New(entries []Entry, graph map[MainCategory][]MainCategory, single []MainCategory) Taxonomy {
	t := Taxonomy{
		entries:  make([]Entry, 0, len(entries)),
		folded:   make([][]string, 0, len(entries)),
		graph:    make(map[MainCategory][]MainCategory, len(graph)),
		single:   make(map[MainCategory]bool, len(single)),
		mainsIdx: make(map[MainCategory]int, len(entries)),
	}
	for _, e := range entries {
		labels := append([]string(nil), e.Labels...)
		t.entries = append(t.entries, Entry{Main: e.Main, Labels: labels})
		t.folded = append(t.folded, label.FoldAll(labels))
		if _, ok := t.mainsIdx[e.Main]; !ok {
			t.mainsIdx[e.Main] = len(t.entries) - 1
		}
	}
	for m, to := range graph {
		t.graph[m] = append([]MainCategory(nil), to...)
	}
	for _, m := range single {
		t.single[m] = true
	}
	return t
}

// Resolve returns the main category a fine-grained label belongs to. The
// match is an exact, case-insensitive comparison. ok is false when the label
// is outside the modelled taxonomy.
func (t Taxonomy) Resolve(categoryLabel string) (MainCategory, bool) {
	f := label.Fold(categoryLabel)
	if f == "" {
		return "", false
	}
	for i, labels := range t.folded {
		for _, l := range labels {
			if l == f {
				return t.entries[i].Main, true
			}
		}
	}
	return "", false
}

// SubCategories returns the labels registered under m, in declaration order.
// Unknown main categories yield nil.
func (t Taxonomy) SubCategories(m MainCategory) []string {
	var out []string
	for _, e := range t.entries {
		if e.Main == m {
			out = append(out, e.Labels...)
		}
	}
	return out
}

// IsSingleInstance reports whether an outfit may hold at most one item of m.
func (t Taxonomy) IsSingleInstance(m MainCategory) bool {
	return t.single[m]
}

// Mains lists the main categories in declaration order.
func (t Taxonomy) Mains() []MainCategory {
	out := make([]MainCategory, 0, len(t.mainsIdx))
	for i, e := range t.entries {
		if t.mainsIdx[e.Main] == i {
			out = append(out, e.Main)
		}
	}
	return out
}
