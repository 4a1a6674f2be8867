package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/gifthelper/backend/internal/domain"
)

// FileSource reads the seed catalog from a JSON file on disk.
// A missing file is not an error: suggestions degrade to an empty list.
type FileSource struct {
	path string
}

// NewFileSource creates a file-backed catalog source
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Load reads and parses the seed file. Field names are matched
// case-insensitively (encoding/json default), so hand-edited seed files
// with mixed casing still parse.
func (f *FileSource) Load(ctx context.Context) ([]domain.CatalogItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("[CATALOG] Seed file missing at %s - serving empty catalog", f.path)
			return []domain.CatalogItem{}, nil
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	var items []domain.CatalogItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogMalformed, err)
	}

	return items, nil
}
