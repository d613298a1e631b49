package product

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

// FileLoader reads the annotated catalog, a JSON array of products.
type FileLoader struct {
	Path string
}

func NewFileLoader(path string) *FileLoader {
	return &FileLoader{Path: path}
}

func (l *FileLoader) Load(ctx context.Context) ([]Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", l.Path, err)
	}
	return Decode(data)
}

// Decode parses a JSON array of products.
func Decode(data []byte) ([]Product, error) {
	var products []Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return products, nil
}
