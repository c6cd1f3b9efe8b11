package catalog

import "github.com/rogerio-castellano/furniture-catalog/internal/models"

// FacetCount is a filter option together with the number of products it selects.
type FacetCount struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Facets summarises the catalog for the filter sidebar.
type Facets struct {
	TotalProducts int          `json:"total_products"`
	NewArrivals   int          `json:"new_arrivals"`
	Categories    []FacetCount `json:"categories"`
	PriceRanges   []FacetCount `json:"price_ranges"`
}

// ComputeFacets counts products per category (in order of first appearance) and
// per price bucket. Boundary prices are counted in every bucket they fall in.
func ComputeFacets(products []models.Product, table PriceTable) Facets {
	f := Facets{
		TotalProducts: len(products),
		Categories:    []FacetCount{},
		PriceRanges:   make([]FacetCount, len(table)),
	}

	for i, r := range table {
		f.PriceRanges[i] = FacetCount{Value: r.ID, Label: r.Label}
	}

	index := map[string]int{}
	for _, p := range products {
		if p.IsNew {
			f.NewArrivals++
		}

		i, ok := index[p.Category]
		if !ok {
			i = len(f.Categories)
			index[p.Category] = i
			f.Categories = append(f.Categories, FacetCount{Value: p.Category, Label: p.Category})
		}
		f.Categories[i].Count++

		for j, r := range table {
			if r.Contains(p.Price) {
				f.PriceRanges[j].Count++
			}
		}
	}
	return f
}
