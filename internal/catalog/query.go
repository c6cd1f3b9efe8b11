package catalog

import (
	"slices"
	"strconv"
	"strings"
)

// AllCategories is the category sentinel that disables category filtering.
const AllCategories = "All"

// StorefrontCategories lists the category filters offered by the shop page, in display order.
var StorefrontCategories = []string{
	AllCategories, "Sofas", "Couches", "Beds", "Dining Sets",
	"Office Chairs", "Night Stands", "Tables", "Wardrobes",
}

// SortMode selects the display order of a filtered result.
type SortMode string

const (
	SortDefault   SortMode = "default"
	SortPriceLow  SortMode = "price-low"
	SortPriceHigh SortMode = "price-high"
	SortNew       SortMode = "new"
)

// ParseSortMode maps a caller supplied value to a SortMode.
// Unknown values fall back to SortDefault.
func ParseSortMode(s string) SortMode {
	switch mode := SortMode(s); mode {
	case SortPriceLow, SortPriceHigh, SortNew:
		return mode
	default:
		return SortDefault
	}
}

// QueryState is the combination of filters chosen on the browse page.
type QueryState struct {
	SearchText    string
	Category      string
	PriceRangeIDs []string
	SortMode      SortMode
}

// Normalize returns an equivalent query with a canonical form: empty category
// becomes AllCategories, price range ids are sorted and deduplicated and the sort
// mode is parsed. Search text is kept verbatim.
func (q QueryState) Normalize() QueryState {
	out := QueryState{
		SearchText: q.SearchText,
		Category:   q.Category,
		SortMode:   ParseSortMode(string(q.SortMode)),
	}
	if out.Category == "" {
		out.Category = AllCategories
	}
	if len(q.PriceRangeIDs) > 0 {
		ids := slices.Clone(q.PriceRangeIDs)
		slices.Sort(ids)
		out.PriceRangeIDs = slices.Compact(ids)
	}
	return out
}

// Key renders the normalized query as a stable string, suitable for cache keys.
func (q QueryState) Key() string {
	n := q.Normalize()
	var b strings.Builder
	b.WriteString("q=")
	b.WriteString(strconv.Quote(n.SearchText))
	b.WriteString("&category=")
	b.WriteString(strconv.Quote(n.Category))
	b.WriteString("&price=")
	for i, id := range n.PriceRangeIDs {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Quote(id))
	}
	b.WriteString("&sort=")
	b.WriteString(string(n.SortMode))
	return b.String()
}
