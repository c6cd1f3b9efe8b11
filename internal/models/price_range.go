package models

// PriceRange is a named price bucket used by the storefront price filter.
// Both bounds are inclusive. A nil Max means the bucket has no upper bound.
type PriceRange struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Min   int    `json:"min"`
	Max   *int   `json:"max"`
}

// Contains reports whether price falls inside the bucket.
func (r PriceRange) Contains(price int) bool {
	if price < r.Min {
		return false
	}
	return r.Max == nil || price <= *r.Max
}
