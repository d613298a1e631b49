// Package metrics registers the Prometheus collectors exported on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recommendation outcomes.
const (
	OutcomeOK                 = "ok"
	OutcomeEmpty              = "empty"
	OutcomeNoCategories       = "no_categories"
	OutcomeNoSubCategories    = "no_subcategories"
	OutcomeInvalidCategory    = "invalid_category"
	OutcomeCatalogUnavailable = "catalog_unavailable"
)

var (
	// API
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kombin_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kombin_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// Recommendation pipeline
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kombin_recommendations_total",
			Help: "Recommendation requests by outcome",
		},
		[]string{"outcome"},
	)

	RecommendationPoolSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "kombin_recommendation_pool_size",
			Help:    "Size of the final candidate set before sampling",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
	)

	// Catalog
	CatalogProducts = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "kombin_catalog_products",
			Help: "Number of products in the live catalog snapshot",
		},
	)

	CatalogReloadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kombin_catalog_reloads_total",
			Help: "Catalog reload attempts by result",
		},
		[]string{"result"}, // "success", "error"
	)
)

// RecordAPIRequest records one served request.
func RecordAPIRequest(method, route, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordRecommendation records a pipeline outcome and, for served results,
// the size of the pool the sample was drawn from.
func RecordRecommendation(outcome string, poolSize int) {
	RecommendationsTotal.WithLabelValues(outcome).Inc()
	if outcome == OutcomeOK || outcome == OutcomeEmpty {
		RecommendationPoolSize.Observe(float64(poolSize))
	}
}

// RecordCatalogReload records a reload attempt. On success the product gauge
// follows the new snapshot size.
func RecordCatalogReload(products int, err error) {
	if err != nil {
		CatalogReloadsTotal.WithLabelValues("error").Inc()
		return
	}
	CatalogReloadsTotal.WithLabelValues("success").Inc()
	CatalogProducts.Set(float64(products))
}

// Middleware records request count and latency per matched route.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		route := c.Route().Path
		if route == "" || (route == "/" && c.Path() != "/") {
			route = "unmatched"
		}
		RecordAPIRequest(c.Method(), route, strconv.Itoa(status), time.Since(start))
		return err
	}
}

// Handler exposes the default registry through fiber.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
