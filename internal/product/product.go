package product

// Product is one catalog record. The catalog is produced upstream by the
// scraper and color annotator; nothing in this service writes it.
type Product struct {
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	ImageURL       string   `json:"image_url"`
	ProductURL     string   `json:"product_url"`
	DominantColors []string `json:"dominant_colors"`
}

// ID returns the product's stable identifier, its URL.
func (p Product) ID() string {
	return p.ProductURL
}

// PrimaryColor returns the first dominant color, if any.
func (p Product) PrimaryColor() (string, bool) {
	if len(p.DominantColors) == 0 {
		return "", false
	}
	return p.DominantColors[0], true
}
