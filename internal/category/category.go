package category

import "github.com/wichananm65/kombin-backend/internal/taxonomy"

// CategoryItem describes one main category of the taxonomy.
type CategoryItem struct {
	Main           taxonomy.MainCategory   `json:"main"`
	Labels         []string                `json:"labels"`
	Suggests       []taxonomy.MainCategory `json:"suggests"`
	SingleInstance bool                    `json:"singleInstance"`
	Products       int                     `json:"products"`
}

// Resolution is the answer to a label lookup.
type Resolution struct {
	Label    string                  `json:"label"`
	Main     taxonomy.MainCategory   `json:"main"`
	Suggests []taxonomy.MainCategory `json:"suggests"`
}
