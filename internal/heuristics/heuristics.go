// Package heuristics holds the free-text keyword tables that softly match
// catalog products against a style, a season or a silhouette archetype.
//
// Every table maps a key to a list of substrings. Lookups ignore case and an
// unknown key returns an empty list, which callers treat as "apply no
// filter".
package heuristics

import (
	"github.com/wichananm65/kombin-backend/internal/label"
)

// Group is one named row of a keyword table.
type Group struct {
	Key      string   `json:"key"`
	Keywords []string `json:"keywords"`
}

type table struct {
	rows  map[string][]string
	order []string
}

func newTable(groups []Group) table {
	t := table{rows: make(map[string][]string, len(groups))}
	for _, g := range groups {
		f := label.Fold(g.Key)
		if f == "" {
			continue
		}
		if _, dup := t.rows[f]; !dup {
			t.order = append(t.order, g.Key)
		}
		t.rows[f] = append([]string(nil), g.Keywords...)
	}
	return t
}

func (t table) lookup(key string) []string {
	return append([]string(nil), t.rows[label.Fold(key)]...)
}

func (t table) groups() []Group {
	out := make([]Group, 0, len(t.order))
	for _, k := range t.order {
		out = append(out, Group{Key: k, Keywords: t.lookup(k)})
	}
	return out
}

// Tables bundles every heuristic table. The zero value matches nothing.
type Tables struct {
	styles      table
	seasons     table
	silhouettes table
	shoes       table
	proportions map[string]string
}

// Options lists the rows used to build Tables.
type Options struct {
	Styles      []Group
	Seasons     []Group
	Silhouettes []Group
	ShoeStyles  []Group
	Proportions map[string]string
}

// New builds Tables from opts.
func New(opts Options) Tables {
	t := Tables{
		styles:      newTable(opts.Styles),
		seasons:     newTable(opts.Seasons),
		silhouettes: newTable(opts.Silhouettes),
		shoes:       newTable(opts.ShoeStyles),
		proportions: make(map[string]string, len(opts.Proportions)),
	}
	for top, bottom := range opts.Proportions {
		t.proportions[label.Fold(top)] = bottom
	}
	return t
}

// Styles returns the keywords of a style such as "casual" or "chic".
func (t Tables) Styles(key string) []string { return t.styles.lookup(key) }

// Seasons returns the keywords of a season such as "yaz".
func (t Tables) Seasons(key string) []string { return t.seasons.lookup(key) }

// Silhouettes returns the top shapes that balance the given garment
// category.
func (t Tables) Silhouettes(category string) []string { return t.silhouettes.lookup(category) }

// ShoeStyles returns the styles and seasons a shoe type suits.
func (t Tables) ShoeStyles(shoe string) []string { return t.shoes.lookup(shoe) }

// Proportion returns the bottom rise that balances a top shape.
func (t Tables) Proportion(top string) (string, bool) {
	b, ok := t.proportions[label.Fold(top)]
	return b, ok
}

// StyleGroups, SeasonGroups, SilhouetteGroups and ShoeStyleGroups list the
// rows of each table in declaration order.
func (t Tables) StyleGroups() []Group      { return t.styles.groups() }
func (t Tables) SeasonGroups() []Group     { return t.seasons.groups() }
func (t Tables) SilhouetteGroups() []Group { return t.silhouettes.groups() }
func (t Tables) ShoeStyleGroups() []Group  { return t.shoes.groups() }

// MatchesProduct reports whether any keyword is a case-insensitive substring
// of the product's name followed by its category. An empty keyword list
// matches nothing; callers decide whether that means "skip the filter".
func MatchesProduct(keywords []string, name, category string) bool {
	return label.ContainsAny(label.Fold(name+" "+category), label.FoldAll(keywords))
}

// MatchesName is MatchesProduct restricted to the product name.
func MatchesName(keywords []string, name string) bool {
	return label.ContainsAny(label.Fold(name), label.FoldAll(keywords))
}
