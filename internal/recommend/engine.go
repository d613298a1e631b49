// Package recommend suggests catalog products that complete an outfit
// around a selected item.
//
// A request runs a fixed chain of stages over one catalog snapshot:
//
//  0. resolve the selected category and check the catalog
//  1. collect main categories the outfit already holds
//  2. take the complementary main categories minus exclusions
//  3. expand them to fine-grained sub-categories
//  4. gather products in those sub-categories, minus the selected item
//  5. filter by an explicit color, or by harmony with the selected item
//  6. filter by style, else season, else silhouette balance
//  7. filter by free-text keywords on the product name
//  8. sample without replacement
//
// Every filter commits its result even when it empties the candidate set,
// except silhouette balance, which only commits a non-empty result.
package recommend

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/wichananm65/kombin-backend/internal/heuristics"
	"github.com/wichananm65/kombin-backend/internal/label"
	"github.com/wichananm65/kombin-backend/internal/logging"
	"github.com/wichananm65/kombin-backend/internal/palette"
	"github.com/wichananm65/kombin-backend/internal/product"
	"github.com/wichananm65/kombin-backend/internal/taxonomy"
)

// SnapshotSource hands out the current catalog snapshot.
type SnapshotSource interface {
	Snapshot() *product.Snapshot
}

// Engine runs the recommendation pipeline. It is safe for concurrent use.
type Engine struct {
	catalog  SnapshotSource
	config   Config
	taxonomy taxonomy.Taxonomy
	harmony  palette.Harmony
	tables   heuristics.Tables
	logger   zerolog.Logger

	// rng is shared by all requests
	rng   *rand.Rand
	rngMu sync.Mutex
}

// Option customizes an Engine.
type Option func(*Engine)

// WithRand sets the sampling source.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

func WithTaxonomy(t taxonomy.Taxonomy) Option {
	return func(e *Engine) { e.taxonomy = t }
}

func WithHarmony(h palette.Harmony) Option {
	return func(e *Engine) { e.harmony = h }
}

func WithHeuristics(t heuristics.Tables) Option {
	return func(e *Engine) { e.tables = t }
}

//nolint:gocritic // zerolog.Logger is passed by value
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// NewEngine builds an engine over catalog with the built-in rule tables.
func NewEngine(catalog SnapshotSource, cfg Config, opts ...Option) (*Engine, error) {
	if catalog == nil {
		return nil, errors.New("invalid config: catalog is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	e := &Engine{
		catalog:  catalog,
		config:   cfg,
		taxonomy: taxonomy.Default(),
		harmony:  palette.Default(),
		tables:   heuristics.Default(),
		logger:   logging.Logger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		e.rng = rand.New(rand.NewSource(seed)) //nolint:gosec // sampling does not need crypto randomness
	}
	e.logger = e.logger.With().Str("component", "recommend").Logger()
	return e, nil
}

// Recommend runs the pipeline for req. It fails only when the catalog is
// empty or the selected category is missing or unknown; every other dead end
// is a Result with an empty list.
func (e *Engine) Recommend(ctx context.Context, req Request) (*Result, error) {
	log := e.logger
	if id := logging.RequestIDFromContext(ctx); id != "" {
		log = log.With().Str("request_id", id).Logger()
	}

	snap := e.catalog.Snapshot()
	if snap.Len() == 0 {
		return nil, ErrCatalogUnavailable
	}

	// Stage 0
	if strings.TrimSpace(req.Category) == "" {
		return nil, ErrCategoryRequired
	}
	main, ok := e.taxonomy.Resolve(req.Category)
	if !ok {
		return nil, &InvalidCategoryError{Label: req.Category}
	}
	res := &Result{Main: main, Recommendations: []product.Product{}}

	// Stage 1
	excluded := e.exclusions(req.CurrentCategories)
	res.Excluded = excluded.list(e.taxonomy.Mains())

	// Stage 2
	for _, m := range e.taxonomy.Suggested(main) {
		if !excluded[m] {
			res.Categories = append(res.Categories, m)
		}
	}
	log.Debug().
		Str("category", req.Category).
		Str("main", string(main)).
		Interface("excluded", res.Excluded).
		Interface("suggest", res.Categories).
		Msg("resolved categories")
	if len(res.Categories) == 0 {
		res.Status = StatusNoApplicableCategories
		res.Message = msgNoApplicableCategories
		return res, nil
	}

	// Stage 3
	var subs []string
	for _, m := range res.Categories {
		subs = append(subs, e.taxonomy.SubCategories(m)...)
	}
	targets := label.NewSet(subs...)
	if len(targets) == 0 {
		res.Status = StatusNoSuitableSubCategories
		res.Message = msgNoSuitableSubCategories
		return res, nil
	}

	// Stage 4
	candidates := filter(snap.Products(), func(p product.Product) bool {
		if req.ID != "" && p.ProductURL == req.ID {
			return false
		}
		return targets.Has(p.Category)
	})
	log.Debug().Int("candidates", len(candidates)).Msg("category stage")

	selected, selErr := snap.Get(req.ID)
	hasSelected := selErr == nil

	// Stage 5
	if len(candidates) > 0 {
		if pref := strings.TrimSpace(req.ColorPreference); pref != "" {
			candidates = filter(candidates, func(p product.Product) bool {
				return label.NewSet(p.DominantColors...).Has(pref)
			})
			log.Debug().Str("color", pref).Int("candidates", len(candidates)).Msg("color preference stage")
		} else if primary, ok := selected.PrimaryColor(); hasSelected && ok {
			harmonic := e.harmony.HarmonicSet(primary)
			candidates = filter(candidates, func(p product.Product) bool {
				return harmonic.HasAny(p.DominantColors)
			})
			log.Debug().Str("base_color", primary).Int("candidates", len(candidates)).Msg("color harmony stage")
		}
	}

	// Stage 6
	if len(candidates) > 0 {
		switch {
		case strings.TrimSpace(req.StylePreference) != "":
			candidates = keywordFilter(candidates, e.tables.Styles(req.StylePreference))
			log.Debug().Str("style", req.StylePreference).Int("candidates", len(candidates)).Msg("style stage")
		case strings.TrimSpace(req.SeasonPreference) != "":
			candidates = keywordFilter(candidates, e.tables.Seasons(req.SeasonPreference))
			log.Debug().Str("season", req.SeasonPreference).Int("candidates", len(candidates)).Msg("season stage")
		default:
			key := req.Category
			if hasSelected {
				key = selected.Category
			}
			if kws := e.tables.Silhouettes(key); len(kws) > 0 {
				balanced := keywordFilter(candidates, kws)
				if len(balanced) > 0 {
					candidates = balanced
				}
				log.Debug().Str("silhouette", key).Int("candidates", len(candidates)).Msg("silhouette stage")
			}
		}
	}

	// Stage 7
	if kws := label.FoldAll(req.StyleKeywords); len(kws) > 0 && len(candidates) > 0 {
		candidates = filter(candidates, func(p product.Product) bool {
			return heuristics.MatchesName(kws, p.Name)
		})
		log.Debug().Int("candidates", len(candidates)).Msg("keyword stage")
	}

	// Stage 8
	res.PoolSize = len(candidates)
	res.Recommendations = e.sample(candidates, e.count(req.Count))
	log.Debug().Int("pool", res.PoolSize).Int("returned", len(res.Recommendations)).Msg("sampled")
	return res, nil
}

type mainSet map[taxonomy.MainCategory]bool

// list returns the members of s in the given order.
func (s mainSet) list(order []taxonomy.MainCategory) []taxonomy.MainCategory {
	out := make([]taxonomy.MainCategory, 0, len(s))
	for _, m := range order {
		if s[m] {
			out = append(out, m)
		}
	}
	return out
}

// exclusions returns the main categories the outfit cannot take another item
// of. A one-piece garment also rules out separate tops and bottoms.
func (e *Engine) exclusions(current []string) mainSet {
	out := mainSet{}
	for _, c := range current {
		m, ok := e.taxonomy.Resolve(c)
		if !ok {
			continue
		}
		if e.taxonomy.IsSingleInstance(m) {
			out[m] = true
		}
		if m == taxonomy.OnePiece {
			out[taxonomy.Tops] = true
			out[taxonomy.Bottoms] = true
		}
	}
	return out
}

func (e *Engine) count(requested int) int {
	switch {
	case requested <= 0:
		return e.config.DefaultCount
	case requested > e.config.MaxCount:
		return e.config.MaxCount
	default:
		return requested
	}
}

// sample draws min(n, len(pool)) distinct products uniformly at random with
// a partial Fisher-Yates shuffle over indices. pool is left untouched.
func (e *Engine) sample(pool []product.Product, n int) []product.Product {
	if n > len(pool) {
		n = len(pool)
	}
	out := make([]product.Product, 0, n)
	if n <= 0 {
		return out
	}

	idx := make([]int, len(pool))
	for i := range idx {
		idx[i] = i
	}
	e.rngMu.Lock()
	for i := 0; i < n; i++ {
		j := i + e.rng.Intn(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	e.rngMu.Unlock()

	for _, i := range idx[:n] {
		p := pool[i]
		p.DominantColors = append([]string(nil), p.DominantColors...)
		out = append(out, p)
	}
	return out
}

func filter(in []product.Product, keep func(product.Product) bool) []product.Product {
	out := make([]product.Product, 0, len(in))
	for _, p := range in {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// keywordFilter keeps products whose name or category mentions a keyword.
// An empty keyword list applies no filter.
func keywordFilter(in []product.Product, keywords []string) []product.Product {
	if len(keywords) == 0 {
		return in
	}
	return filter(in, func(p product.Product) bool {
		return heuristics.MatchesProduct(keywords, p.Name, p.Category)
	})
}
