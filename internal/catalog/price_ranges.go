package catalog

import "github.com/rogerio-castellano/furniture-catalog/internal/models"

// PriceTable is an ordered set of price buckets.
type PriceTable []models.PriceRange

func bound(v int) *int { return &v }

// Adjacent buckets share their boundary value, so a product priced exactly on a
// boundary belongs to both of them.
var defaultPriceRanges = PriceTable{
	{ID: "0-20000", Label: "Under KSh 20,000", Min: 0, Max: bound(20000)},
	{ID: "20000-40000", Label: "KSh 20,000 - 40,000", Min: 20000, Max: bound(40000)},
	{ID: "40000-60000", Label: "KSh 40,000 - 60,000", Min: 40000, Max: bound(60000)},
	{ID: "60000-80000", Label: "KSh 60,000 - 80,000", Min: 60000, Max: bound(80000)},
	{ID: "80000+", Label: "Over KSh 80,000", Min: 80000, Max: nil},
}

// DefaultPriceTable returns a copy of the storefront price buckets.
func DefaultPriceTable() PriceTable {
	out := make(PriceTable, len(defaultPriceRanges))
	for i, r := range defaultPriceRanges {
		if r.Max != nil {
			r.Max = bound(*r.Max)
		}
		out[i] = r
	}
	return out
}

// FindByID looks up a bucket by its slug.
func (t PriceTable) FindByID(id string) (models.PriceRange, bool) {
	for _, r := range t {
		if r.ID == id {
			return r, true
		}
	}
	return models.PriceRange{}, false
}

// Select returns the buckets whose ids appear in ids, in table order.
// Unknown ids are ignored.
func (t PriceTable) Select(ids []string) PriceTable {
	if len(ids) == 0 {
		return nil
	}
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	var selected PriceTable
	for _, r := range t {
		if _, ok := wanted[r.ID]; ok {
			selected = append(selected, r)
		}
	}
	return selected
}
