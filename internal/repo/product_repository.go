package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/rogerio-castellano/furniture-catalog/internal/catalog"
	"github.com/rogerio-castellano/furniture-catalog/internal/models"
)

// ProductRepository defines the read operations the storefront needs.
// Implementations hold a catalog that never changes after construction.
type ProductRepository interface {
	GetAll() []models.Product
	GetByID(id int) (models.Product, error)
	Filter(q catalog.QueryState) []models.Product
	PriceRanges() catalog.PriceTable
	Facets() catalog.Facets
	Fingerprint() string
}

// ProductSource loads the complete catalog once, before the first query is served.
type ProductSource interface {
	LoadAll(ctx context.Context) ([]models.Product, error)
}

// ErrProductNotFound is returned when a product is not found in the repository.
var ErrProductNotFound = errors.New("product not found")

// ErrDuplicateProductID is returned when a catalog holds two products with the same id.
var ErrDuplicateProductID = errors.New("duplicate product id")

// LoadProductRepository reads the whole catalog from src and serves it from memory.
func LoadProductRepository(ctx context.Context, src ProductSource, table catalog.PriceTable) (*InMemoryProductRepository, error) {
	products, err := src.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return NewInMemoryProductRepository(products, table)
}
