package repo

import (
	"context"

	"github.com/rogerio-castellano/furniture-catalog/internal/importer"
	"github.com/rogerio-castellano/furniture-catalog/internal/models"
)

// FileProductSource reads the generated products.json catalog file.
type FileProductSource struct {
	path string
}

func NewFileProductSource(path string) *FileProductSource {
	return &FileProductSource{path: path}
}

func (s *FileProductSource) LoadAll(_ context.Context) ([]models.Product, error) {
	return importer.LoadCatalog(s.path)
}
