package product

import (
	"context"
	"errors"
	"sync/atomic"
)

var (
	ErrNotFound = errors.New("product not found")
)

// Loader produces a full catalog. Implementations read a JSON file or a
// database table.
type Loader interface {
	Load(ctx context.Context) ([]Product, error)
}

// Snapshot is an immutable view of the catalog. It is never modified after
// construction, so readers need no locking.
type Snapshot struct {
	products []Product
	byURL    map[string]int
}

func newSnapshot(products []Product) *Snapshot {
	s := &Snapshot{
		products: make([]Product, 0, len(products)),
		byURL:    make(map[string]int, len(products)),
	}
	for _, p := range products {
		p.DominantColors = append([]string(nil), p.DominantColors...)
		s.products = append(s.products, p)
		if p.ProductURL == "" {
			continue
		}
		if _, dup := s.byURL[p.ProductURL]; !dup {
			s.byURL[p.ProductURL] = len(s.products) - 1
		}
	}
	return s
}

// Len returns the number of products.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.products)
}

// Products returns the snapshot's backing slice. Callers must not modify it.
func (s *Snapshot) Products() []Product {
	if s == nil {
		return nil
	}
	return s.products
}

// Get looks a product up by URL.
func (s *Snapshot) Get(url string) (Product, error) {
	if s == nil || url == "" {
		return Product{}, ErrNotFound
	}
	i, ok := s.byURL[url]
	if !ok {
		return Product{}, ErrNotFound
	}
	return s.products[i], nil
}

// Catalog holds the live snapshot and swaps it atomically on reload.
type Catalog struct {
	current atomic.Pointer[Snapshot]
}

// NewCatalog returns a catalog serving products.
func NewCatalog(products []Product) *Catalog {
	c := &Catalog{}
	c.current.Store(newSnapshot(products))
	return c
}

// Snapshot returns the current snapshot. A request should read it once and
// work on that value throughout.
func (c *Catalog) Snapshot() *Snapshot {
	return c.current.Load()
}

// Replace installs a new snapshot built from products.
func (c *Catalog) Replace(products []Product) {
	c.current.Store(newSnapshot(products))
}
