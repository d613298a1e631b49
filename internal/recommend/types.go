package recommend

import (
	"errors"
	"fmt"

	"github.com/wichananm65/kombin-backend/internal/product"
	"github.com/wichananm65/kombin-backend/internal/taxonomy"
)

var (
	// ErrCatalogUnavailable means the catalog failed to load or is empty.
	ErrCatalogUnavailable = errors.New("product catalog could not be loaded or is empty")
	// ErrCategoryRequired means the request named no category.
	ErrCategoryRequired = errors.New("category is required")
	// ErrInvalidCategory is matched by every *InvalidCategoryError.
	ErrInvalidCategory = errors.New("category has no main category")
)

// InvalidCategoryError reports a selected category outside the taxonomy.
type InvalidCategoryError struct {
	Label string
}

func (e *InvalidCategoryError) Error() string {
	return fmt.Sprintf("no main category found for %q", e.Label)
}

func (e *InvalidCategoryError) Unwrap() error {
	return ErrInvalidCategory
}

// Request describes the selected item and the outfit around it.
type Request struct {
	// Category is the fine-grained category of the selected item.
	Category string `json:"category" validate:"required,max=100"`
	// ID is the selected item's product URL.
	ID                string   `json:"id" validate:"max=2048"`
	Count             int      `json:"count" validate:"omitempty,min=1"`
	ColorPreference   string   `json:"color_preference" validate:"max=64"`
	StyleKeywords     []string `json:"style_keywords" validate:"omitempty,max=20,dive,max=64"`
	StylePreference   string   `json:"style_preference" validate:"max=64"`
	SeasonPreference  string   `json:"season_preference" validate:"max=64"`
	CurrentCategories []string `json:"current_categories" validate:"omitempty,max=20,dive,max=100"`
}

// Status tells a served recommendation apart from an informational empty
// result.
type Status int

const (
	StatusOK Status = iota
	// StatusNoApplicableCategories: exclusions removed every suggested main
	// category.
	StatusNoApplicableCategories
	// StatusNoSuitableSubCategories: the remaining main categories have no
	// registered labels.
	StatusNoSuitableSubCategories
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoApplicableCategories:
		return "no_categories"
	case StatusNoSuitableSubCategories:
		return "no_subcategories"
	default:
		return "unknown"
	}
}

const (
	msgNoApplicableCategories  = "no suitable category remains for this item"
	msgNoSuitableSubCategories = "no suitable sub-category was found"
)

// Result is the outcome of one request. Only Recommendations and Message are
// serialized.
type Result struct {
	Recommendations []product.Product `json:"recommendations"`
	Message         string            `json:"message,omitempty"`

	Status     Status                  `json:"-"`
	Main       taxonomy.MainCategory   `json:"-"`
	Excluded   []taxonomy.MainCategory `json:"-"`
	Categories []taxonomy.MainCategory `json:"-"`
	// PoolSize is the size of the final candidate set sampled from.
	PoolSize int `json:"-"`
}
