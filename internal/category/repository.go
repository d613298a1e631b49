package category

import (
	"github.com/wichananm65/kombin-backend/internal/product"
	"github.com/wichananm65/kombin-backend/internal/taxonomy"
)

// Repository provides access to category rows.
type Repository interface {
	List(limit int) []CategoryItem
	Resolve(label string) (Resolution, bool)
}

// SnapshotSource hands out the current catalog snapshot.
type SnapshotSource interface {
	Snapshot() *product.Snapshot
}

// TaxonomyRepository serves categories from the in-process taxonomy, with
// product counts taken from the live catalog.
type TaxonomyRepository struct {
	tx      taxonomy.Taxonomy
	catalog SnapshotSource
}

// NewTaxonomyRepository builds a repository. catalog may be nil, in which
// case every count is zero.
func NewTaxonomyRepository(tx taxonomy.Taxonomy, catalog SnapshotSource) *TaxonomyRepository {
	return &TaxonomyRepository{tx: tx, catalog: catalog}
}

// List returns up to limit main categories in declaration order.
func (r *TaxonomyRepository) List(limit int) []CategoryItem {
	counts := r.counts()
	out := make([]CategoryItem, 0)
	for _, m := range r.tx.Mains() {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, CategoryItem{
			Main:           m,
			Labels:         r.tx.SubCategories(m),
			Suggests:       r.tx.Suggested(m),
			SingleInstance: r.tx.IsSingleInstance(m),
			Products:       counts[m],
		})
	}
	return out
}

func (r *TaxonomyRepository) Resolve(label string) (Resolution, bool) {
	m, ok := r.tx.Resolve(label)
	if !ok {
		return Resolution{}, false
	}
	return Resolution{Label: label, Main: m, Suggests: r.tx.Suggested(m)}, true
}

func (r *TaxonomyRepository) counts() map[taxonomy.MainCategory]int {
	out := map[taxonomy.MainCategory]int{}
	if r.catalog == nil {
		return out
	}
	for _, p := range r.catalog.Snapshot().Products() {
		if m, ok := r.tx.Resolve(p.Category); ok {
			out[m]++
		}
	}
	return out
}
