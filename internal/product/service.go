package product

import (
	"context"
	"errors"

	"github.com/wichananm65/kombin-backend/internal/label"
	"github.com/wichananm65/kombin-backend/internal/logging"
	"github.com/wichananm65/kombin-backend/internal/metrics"
)

var ErrNoLoader = errors.New("catalog has no loader")

type Service struct {
	catalog *Catalog
	loader  Loader
}

// NewService serves catalog reads and reloads it through loader. loader may
// be nil when the catalog is fixed.
func NewService(catalog *Catalog, loader Loader) *Service {
	return &Service{catalog: catalog, loader: loader}
}

func (s *Service) Catalog() *Catalog {
	return s.catalog
}

func (s *Service) Count() int {
	return s.catalog.Snapshot().Len()
}

// List pages through the catalog, optionally keeping only one fine-grained
// category (compared case-insensitively). limit <= 0 means no limit.
func (s *Service) List(category string, limit, offset int) []Product {
	all := s.catalog.Snapshot().Products()
	out := make([]Product, 0)
	skipped := 0
	for _, p := range all {
		if category != "" && !label.Equal(p.Category, category) {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		out = append(out, p)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

func (s *Service) GetByURL(url string) (Product, error) {
	return s.catalog.Snapshot().Get(url)
}

// Reload loads a fresh catalog and swaps it in. On failure the current
// snapshot stays in place.
func (s *Service) Reload(ctx context.Context) (int, error) {
	if s.loader == nil {
		return 0, ErrNoLoader
	}
	products, err := s.loader.Load(ctx)
	metrics.RecordCatalogReload(len(products), err)
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Msg("catalog reload failed, keeping previous snapshot")
		return 0, err
	}
	s.catalog.Replace(products)
	logging.Ctx(ctx).Info().Int("products", len(products)).Msg("catalog reloaded")
	return len(products), nil
}
