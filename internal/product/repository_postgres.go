package product

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

const listCatalogQuery = `
	SELECT product_url, name, category, image_url, dominant_colors
	FROM catalog_product
	ORDER BY position, product_url
`

// PostgresLoader reads the catalog from the catalog_product table filled by
// the ingestion job.
type PostgresLoader struct {
	db *sql.DB
}

func NewPostgresLoader(db *sql.DB) *PostgresLoader {
	return &PostgresLoader{db: db}
}

func (r *PostgresLoader) Load(ctx context.Context) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx, listCatalogQuery)
	if err != nil {
		return nil, fmt.Errorf("query catalog: %w", err)
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan catalog row: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate catalog: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(scanner rowScanner) (Product, error) {
	p := Product{}
	var imageURL sql.NullString
	var colors pq.StringArray

	if err := scanner.Scan(
		&p.ProductURL,
		&p.Name,
		&p.Category,
		&imageURL,
		&colors,
	); err != nil {
		return Product{}, err
	}

	if imageURL.Valid {
		p.ImageURL = imageURL.String
	}
	p.DominantColors = []string(colors)
	return p, nil
}
