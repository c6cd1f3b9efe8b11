package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rogerio-castellano/furniture-catalog/internal/models"
)

// WriteJSON writes products in the catalog file format: an indented JSON array.
func WriteJSON(w io.Writer, products []models.Product) error {
	if products == nil {
		products = []models.Product{}
	}

	out, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	out = append(out, '\n')

	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	return nil
}

// DecodeCatalog reads a catalog file. Ids must be unique and prices non-negative.
func DecodeCatalog(r io.Reader) ([]models.Product, error) {
	var products []models.Product
	if err := json.NewDecoder(r).Decode(&products); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	seen := make(map[int]struct{}, len(products))
	for i, p := range products {
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("entry %d: duplicate product id %d", i, p.ID)
		}
		seen[p.ID] = struct{}{}
		if p.Price < 0 {
			return nil, fmt.Errorf("entry %d: product %d has a negative price", i, p.ID)
		}
	}

	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// LoadCatalog reads the catalog file at path.
func LoadCatalog(path string) ([]models.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	products, err := DecodeCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return products, nil
}
