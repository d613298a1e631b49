package recommend

import (
	"context"
	"errors"

	"github.com/wichananm65/kombin-backend/internal/logging"
	"github.com/wichananm65/kombin-backend/internal/metrics"
)

// Recommender is implemented by *Engine.
type Recommender interface {
	Recommend(ctx context.Context, req Request) (*Result, error)
}

// Service records the outcome of each pipeline run.
type Service struct {
	engine   Recommender
	maxCount int
}

func NewService(engine Recommender, maxCount int) *Service {
	return &Service{engine: engine, maxCount: maxCount}
}

func (s *Service) MaxCount() int {
	return s.maxCount
}

func (s *Service) Recommend(ctx context.Context, req Request) (*Result, error) {
	res, err := s.engine.Recommend(ctx, req)
	outcome := Outcome(res, err)
	pool := 0
	if res != nil {
		pool = res.PoolSize
	}
	metrics.RecordRecommendation(outcome, pool)

	if err != nil {
		ev := logging.Ctx(ctx).Warn()
		if errors.Is(err, ErrCatalogUnavailable) {
			ev = logging.Ctx(ctx).Error()
		}
		ev.Err(err).Str("category", req.Category).Msg("recommendation rejected")
		return nil, err
	}
	logging.Ctx(ctx).Info().
		Str("category", req.Category).
		Str("main", string(res.Main)).
		Str("outcome", outcome).
		Int("pool", res.PoolSize).
		Int("returned", len(res.Recommendations)).
		Msg("recommendation served")
	return res, nil
}

// Outcome maps a pipeline result to its metrics label.
func Outcome(res *Result, err error) string {
	switch {
	case errors.Is(err, ErrCatalogUnavailable):
		return metrics.OutcomeCatalogUnavailable
	case err != nil:
		return metrics.OutcomeInvalidCategory
	case res.Status == StatusNoApplicableCategories:
		return metrics.OutcomeNoCategories
	case res.Status == StatusNoSuitableSubCategories:
		return metrics.OutcomeNoSubCategories
	case len(res.Recommendations) == 0:
		return metrics.OutcomeEmpty
	default:
		return metrics.OutcomeOK
	}
}
