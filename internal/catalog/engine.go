package catalog

import (
	"cmp"
	"slices"
	"strings"

	"github.com/rogerio-castellano/furniture-catalog/internal/models"
)

type matcher struct {
	search      string
	category    string
	filterPrice bool
	ranges      PriceTable
}

func newMatcher(table PriceTable, q QueryState) matcher {
	return matcher{
		search:      strings.ToLower(q.SearchText),
		category:    q.Category,
		filterPrice: len(q.PriceRangeIDs) > 0,
		ranges:      table.Select(q.PriceRangeIDs),
	}
}

func (m matcher) matches(p models.Product) bool {
	return m.matchesSearch(p) && m.matchesCategory(p) && m.matchesPrice(p)
}

// Search text is matched as a plain substring, without trimming.
func (m matcher) matchesSearch(p models.Product) bool {
	if m.search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), m.search) ||
		strings.Contains(strings.ToLower(p.Category), m.search)
}

// Category labels are opaque tokens: equality is exact and case-sensitive.
func (m matcher) matchesCategory(p models.Product) bool {
	if m.category == "" || m.category == AllCategories {
		return true
	}
	return p.Category == m.category
}

// A product matches when it falls in any selected bucket.
func (m matcher) matchesPrice(p models.Product) bool {
	if !m.filterPrice {
		return true
	}
	for _, r := range m.ranges {
		if r.Contains(p.Price) {
			return true
		}
	}
	return false
}

// Evaluate returns the catalog products matching q in display order.
// It never modifies products and always returns a new, non-nil slice.
func Evaluate(products []models.Product, table PriceTable, q QueryState) []models.Product {
	m := newMatcher(table, q)

	result := make([]models.Product, 0, len(products))
	for _, p := range products {
		if m.matches(p) {
			result = append(result, p)
		}
	}

	sortProducts(result, ParseSortMode(string(q.SortMode)))
	return result
}

func sortProducts(products []models.Product, mode SortMode) {
	switch mode {
	case SortPriceLow:
		slices.SortStableFunc(products, func(a, b models.Product) int {
			return cmp.Compare(a.Price, b.Price)
		})
	case SortPriceHigh:
		slices.SortStableFunc(products, func(a, b models.Product) int {
			return cmp.Compare(b.Price, a.Price)
		})
	case SortNew:
		slices.SortStableFunc(products, func(a, b models.Product) int {
			return cmp.Compare(arrivalRank(a), arrivalRank(b))
		})
	}
}

func arrivalRank(p models.Product) int {
	if p.IsNew {
		return 0
	}
	return 1
}
