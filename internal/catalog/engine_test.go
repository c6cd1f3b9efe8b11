package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rogerio-castellano/furniture-catalog/internal/models"
)

func sampleCatalog() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Modern Linen Sofa", Category: "Sofas", Price: 45000, Image: "/products/sofa-1.jpg", IsNew: true},
		{ID: 2, Name: "L-Shape Sectional", Category: "Couches", Price: 68000, Image: "/products/couch-1.jpg"},
		{ID: 3, Name: "King Size Bed", Category: "Beds", Price: 55000, Image: "/products/bed-1.jpg"},
		{ID: 4, Name: "Oak Night Stand", Category: "Night Stands", Price: 12000, Image: "/products/stand-1.jpg", IsNew: true},
		{ID: 5, Name: "Executive Office Chair", Category: "Office Chairs", Price: 20000, Image: "/products/chair-1.jpg"},
		{ID: 6, Name: "Six Seater Dining Set", Category: "Dining Sets", Price: 95000, Image: "/products/dining-1.jpg"},
		{ID: 7, Name: "Velvet Sofa", Category: "Sofas", Price: 45000, Image: "/products/sofa-2.jpg"},
	}
}

func ids(products []models.Product) []int {
	out := make([]int, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestEvaluate_DefaultReturnsCatalogInOrder(t *testing.T) {
	products := sampleCatalog()

	got := Evaluate(products, DefaultPriceTable(), QueryState{Category: AllCategories, SortMode: SortDefault})

	if diff := cmp.Diff(products, got); diff != "" {
		t.Errorf("unfiltered default query mismatch (-want +got):\n%s", diff)
	}
}

func TestEvaluate_IsDeterministic(t *testing.T) {
	products := sampleCatalog()
	queries := []QueryState{
		{Category: AllCategories},
		{SearchText: "sofa", Category: AllCategories, SortMode: SortPriceHigh},
		{Category: "Sofas", PriceRangeIDs: []string{"40000-60000"}, SortMode: SortNew},
		{SearchText: "o", Category: AllCategories, PriceRangeIDs: []string{"0-20000", "80000+"}, SortMode: SortPriceLow},
	}

	for _, q := range queries {
		first := Evaluate(products, DefaultPriceTable(), q)
		second := Evaluate(products, DefaultPriceTable(), q)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("query %+v not deterministic (-first +second):\n%s", q, diff)
		}
	}
}

func TestEvaluate_ResultIsSubsetOfCatalog(t *testing.T) {
	products := sampleCatalog()
	known := map[int]models.Product{}
	for _, p := range products {
		known[p.ID] = p
	}

	got := Evaluate(products, DefaultPriceTable(), QueryState{SearchText: "e", Category: AllCategories, SortMode: SortPriceLow})

	for _, p := range got {
		if want, ok := known[p.ID]; !ok || want != p {
			t.Errorf("result contains product %+v not present in the catalog", p)
		}
	}
}

func TestEvaluate_DoesNotMutateCatalog(t *testing.T) {
	products := sampleCatalog()
	before := sampleCatalog()

	for _, mode := range []SortMode{SortPriceLow, SortPriceHigh, SortNew, SortDefault} {
		Evaluate(products, DefaultPriceTable(), QueryState{Category: AllCategories, SortMode: mode})
	}

	if diff := cmp.Diff(before, products); diff != "" {
		t.Errorf("catalog was mutated (-before +after):\n%s", diff)
	}
}

func TestEvaluate_EmptyCatalog(t *testing.T) {
	got := Evaluate(nil, DefaultPriceTable(), QueryState{SearchText: "sofa", SortMode: SortPriceHigh})

	if got == nil {
		t.Fatal("expected an empty slice, got nil")
	}
	if len(got) != 0 {
		t.Errorf("expected no products, got %v", ids(got))
	}
}

func TestEvaluate_Search(t *testing.T) {
	products := []models.Product{
		{ID: 1, Name: "Modern Sofa", Category: "Sofas", Price: 30000},
		{ID: 2, Name: "Oak Bed", Category: "Beds", Price: 50000},
	}

	tests := []struct {
		name   string
		search string
		want   []int
	}{
		{"upper case", "MODERN", []int{1}},
		{"lower case", "modern", []int{1}},
		{"second word", "sofa", []int{1}},
		{"matches category", "beds", []int{2}},
		{"substring inside word", "ode", []int{1}},
		{"no match", "wardrobe", []int{}},
		{"whitespace is literal", " modern", []int{}},
		{"inner space matches", "n s", []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(products, DefaultPriceTable(), QueryState{SearchText: tt.search, Category: AllCategories})
			if diff := cmp.Diff(tt.want, ids(got)); diff != "" {
				t.Errorf("search %q mismatch (-want +got):\n%s", tt.search, diff)
			}
		})
	}
}

func TestEvaluate_CategoryIsCaseSensitive(t *testing.T) {
	products := []models.Product{
		{ID: 1, Name: "Lowercase Sofa", Category: "sofas", Price: 30000},
		{ID: 2, Name: "Proper Sofa", Category: "Sofas", Price: 30000},
	}

	got := Evaluate(products, DefaultPriceTable(), QueryState{Category: "Sofas"})

	if diff := cmp.Diff([]int{2}, ids(got)); diff != "" {
		t.Errorf("category mismatch (-want +got):\n%s", diff)
	}
}

func TestEvaluate_EmptyCategoryMeansAll(t *testing.T) {
	products := sampleCatalog()

	got := Evaluate(products, DefaultPriceTable(), QueryState{})

	if len(got) != len(products) {
		t.Errorf("expected %d products, got %d", len(products), len(got))
	}
}

func TestEvaluate_PriceBucketBoundary(t *testing.T) {
	products := []models.Product{{ID: 1, Name: "Boundary Chair", Category: "Office Chairs", Price: 20000}}

	tests := []struct {
		name   string
		ranges []string
		want   []int
	}{
		{"lower bucket", []string{"0-20000"}, []int{1}},
		{"upper bucket", []string{"20000-40000"}, []int{1}},
		{"both buckets", []string{"0-20000", "20000-40000"}, []int{1}},
		{"neither bucket", []string{"40000-60000", "80000+"}, []int{}},
		{"no price filter", nil, []int{1}},
		{"unknown bucket only", []string{"bogus"}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(products, DefaultPriceTable(), QueryState{Category: AllCategories, PriceRangeIDs: tt.ranges})
			if diff := cmp.Diff(tt.want, ids(got)); diff != "" {
				t.Errorf("ranges %v mismatch (-want +got):\n%s", tt.ranges, diff)
			}
		})
	}
}

func TestEvaluate_PriceRangesAreOred(t *testing.T) {
	got := Evaluate(sampleCatalog(), DefaultPriceTable(), QueryState{
		Category:      AllCategories,
		PriceRangeIDs: []string{"0-20000", "80000+"},
	})

	if diff := cmp.Diff([]int{4, 5, 6}, ids(got)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestEvaluate_TopBucketIsUnbounded(t *testing.T) {
	products := []models.Product{{ID: 1, Name: "Palace Bed", Category: "Beds", Price: 5_000_000}}

	got := Evaluate(products, DefaultPriceTable(), QueryState{PriceRangeIDs: []string{"80000+"}})

	if len(got) != 1 {
		t.Errorf("expected the product in the top bucket, got %v", ids(got))
	}
}

func TestEvaluate_Sorting(t *testing.T) {
	tests := []struct {
		mode SortMode
		want []int
	}{
		{SortDefault, []int{1, 2, 3, 4, 5, 6, 7}},
		{SortPriceLow, []int{4, 5, 1, 7, 3, 2, 6}},
		{SortPriceHigh, []int{6, 2, 3, 1, 7, 5, 4}},
		{SortNew, []int{1, 4, 2, 3, 5, 6, 7}},
		{SortMode("cheapest-first"), []int{1, 2, 3, 4, 5, 6, 7}},
		{SortMode(""), []int{1, 2, 3, 4, 5, 6, 7}},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			got := Evaluate(sampleCatalog(), DefaultPriceTable(), QueryState{Category: AllCategories, SortMode: tt.mode})
			if diff := cmp.Diff(tt.want, ids(got)); diff != "" {
				t.Errorf("sort %q mismatch (-want +got):\n%s", tt.mode, diff)
			}
		})
	}
}

func TestEvaluate_NewArrivalsStablePartition(t *testing.T) {
	products := []models.Product{
		{ID: 'A', Name: "A", Category: "Beds", Price: 4},
		{ID: 'B', Name: "B", Category: "Beds", Price: 3, IsNew: true},
		{ID: 'C', Name: "C", Category: "Beds", Price: 2},
		{ID: 'D', Name: "D", Category: "Beds", Price: 1, IsNew: true},
	}

	got := Evaluate(products, DefaultPriceTable(), QueryState{Category: AllCategories, SortMode: SortNew})

	if diff := cmp.Diff([]int{'B', 'D', 'A', 'C'}, ids(got)); diff != "" {
		t.Errorf("new arrivals mismatch (-want +got):\n%s", diff)
	}
}

func TestEvaluate_Scenario(t *testing.T) {
	products := []models.Product{
		{ID: 1, Name: "Oak Bed", Category: "Beds", Price: 55000},
		{ID: 2, Name: "Linen Sofa", Category: "Sofas", Price: 45000, IsNew: true},
	}

	got := Evaluate(products, DefaultPriceTable(), QueryState{
		SearchText:    "",
		Category:      AllCategories,
		PriceRangeIDs: []string{"40000-60000"},
		SortMode:      SortPriceLow,
	})

	want := []models.Product{products[1], products[0]}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("scenario mismatch (-want +got):\n%s", diff)
	}
}

func TestEvaluate_NoMatches(t *testing.T) {
	got := Evaluate(sampleCatalog(), DefaultPriceTable(), QueryState{SearchText: "hammock", Category: AllCategories})

	if got == nil || len(got) != 0 {
		t.Errorf("expected an empty non-nil result, got %#v", got)
	}
}

func TestEvaluate_CombinedFilters(t *testing.T) {
	got := Evaluate(sampleCatalog(), DefaultPriceTable(), QueryState{
		SearchText:    "SOFA",
		Category:      "Sofas",
		PriceRangeIDs: []string{"40000-60000"},
		SortMode:      SortNew,
	})

	if diff := cmp.Diff([]int{1, 7}, ids(got)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
