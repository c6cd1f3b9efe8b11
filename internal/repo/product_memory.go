package repo

import (
	"fmt"
	"slices"

	"github.com/rogerio-castellano/furniture-catalog/internal/catalog"
	"github.com/rogerio-castellano/furniture-catalog/internal/models"
)

// InMemoryProductRepository serves an immutable catalog from memory.
type InMemoryProductRepository struct {
	products    []models.Product
	byID        map[int]int
	table       catalog.PriceTable
	facets      catalog.Facets
	fingerprint string
}

// NewInMemoryProductRepository copies products into a new repository using the
// given price table. It fails when two products share an id.
func NewInMemoryProductRepository(products []models.Product, table catalog.PriceTable) (*InMemoryProductRepository, error) {
	r := &InMemoryProductRepository{
		products: slices.Clone(products),
		byID:     make(map[int]int, len(products)),
		table:    slices.Clone(table),
	}
	if r.products == nil {
		r.products = []models.Product{}
	}

	for i, p := range r.products {
		if _, exists := r.byID[p.ID]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateProductID, p.ID)
		}
		r.byID[p.ID] = i
	}

	r.facets = catalog.ComputeFacets(r.products, r.table)
	r.fingerprint = catalog.Fingerprint(r.products)
	return r, nil
}

// GetAll returns a copy of the catalog in its original order.
func (r *InMemoryProductRepository) GetAll() []models.Product {
	return slices.Clone(r.products)
}

// GetByID retrieves a product by its ID.
func (r *InMemoryProductRepository) GetByID(id int) (models.Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return r.products[i], nil
}

// Filter runs the browse query against the catalog.
func (r *InMemoryProductRepository) Filter(q catalog.QueryState) []models.Product {
	return catalog.Evaluate(r.products, r.table, q)
}

func (r *InMemoryProductRepository) PriceRanges() catalog.PriceTable {
	return slices.Clone(r.table)
}

func (r *InMemoryProductRepository) Facets() catalog.Facets {
	f := r.facets
	f.Categories = slices.Clone(f.Categories)
	f.PriceRanges = slices.Clone(f.PriceRanges)
	return f
}

func (r *InMemoryProductRepository) Fingerprint() string {
	return r.fingerprint
}
