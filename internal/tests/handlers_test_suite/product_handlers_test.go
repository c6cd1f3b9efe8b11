package handlers_test_suite

import (
	"net/http"
	"slices"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/redis/go-redis/v9"

	"github.com/rogerio-castellano/furniture-catalog/internal/cache"
	handler "github.com/rogerio-castellano/furniture-catalog/internal/http/handlers"
)

func TestGetProductsHandler(t *testing.T) {
	r := newRouter()

	tests := []struct {
		name   string
		target string
		want   []int
	}{
		{"No filters keeps catalog order", "/products", []int{1, 2, 3, 4, 5}},
		{"Price bucket sorted by price", "/products?priceRange=40000-60000&sort=price-low", []int{2, 1}},
		{"Price high to low", "/products?sort=price-high", []int{4, 1, 2, 3, 5}},
		{"New arrivals first, stable", "/products?sort=new", []int{2, 4, 1, 3, 5}},
		{"Unknown sort falls back to default", "/products?sort=cheapest", []int{1, 2, 3, 4, 5}},
		{"Boundary price in lower bucket", "/products?priceRange=0-20000", []int{3, 5}},
		{"Boundary price in upper bucket", "/products?priceRange=20000-40000", []int{3}},
		{"Buckets are ORed", "/products?priceRange=0-20000&priceRange=80000%2B", []int{3, 4, 5}},
		{"Comma separated buckets", "/products?priceRange=0-20000,80000%2B", []int{3, 4, 5}},
		{"Unknown bucket matches nothing", "/products?priceRange=1-2", []int{}},
		{"Category is exact", "/products?category=Sofas", []int{2}},
		{"Category is case-sensitive", "/products?category=sofas", []int{}},
		{"All categories", "/products?category=All", []int{1, 2, 3, 4, 5}},
		{"Search is case-insensitive", "/products?q=SOFA", []int{2}},
		{"Search matches category", "/products?q=chairs", []int{3}},
		{"Search is not trimmed", "/products?q=sofa%20", []int{}},
		{"Combined filters", "/products?q=o&category=Couches&priceRange=80000%2B", []int{4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(r, tt.target)
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200 OK, got %d", w.Code)
			}

			resp := decode[handler.ProductsSearchResult](t, w)
			if resp.Data == nil {
				t.Fatal("expected data to be an array, got null")
			}
			if diff := cmp.Diff(tt.want, productIDs(resp.Data)); diff != "" {
				t.Errorf("unexpected products (-want +got):\n%s", diff)
			}
			if resp.Meta.TotalCount != len(tt.want) {
				t.Errorf("expected total_count %d, got %d", len(tt.want), resp.Meta.TotalCount)
			}
		})
	}
}

func TestGetProductsHandler_VersionHeader(t *testing.T) {
	w := get(newRouter(), "/products")

	if got := w.Header().Get(handler.CatalogVersionHeader); got != productRepo.Fingerprint() {
		t.Errorf("expected %s header %q, got %q", handler.CatalogVersionHeader, productRepo.Fingerprint(), got)
	}
}

func TestGetProductsHandler_QueryCache(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	qc := cache.NewQueryCache(rdb, "", 0)
	handler.SetQueryCache(qc)
	t.Cleanup(func() {
		handler.SetQueryCache(nil)
		_ = rdb.Close()
	})

	r := newRouter()
	first := decode[handler.ProductsSearchResult](t, get(r, "/products?category=Beds"))
	second := decode[handler.ProductsSearchResult](t, get(r, "/products?category=Beds"))

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("cached response differs (-first +second):\n%s", diff)
	}
	if stats := qc.Stats(); stats.Hits != 1 || stats.Misses != 1 {
		t.Errorf("expected 1 hit and 1 miss, got %+v", stats)
	}

	t.Run("Redis down is bypassed", func(t *testing.T) {
		mr.Close()

		w := get(r, "/products?category=Sofas")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}
		resp := decode[handler.ProductsSearchResult](t, w)
		if ids := productIDs(resp.Data); !slices.Equal(ids, []int{2}) {
			t.Errorf("expected [2], got %v", ids)
		}
	})
}

func TestGetProductByIDHandler(t *testing.T) {
	r := newRouter()

	t.Run("Found", func(t *testing.T) {
		w := get(r, "/products/2")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}
		p := decode[struct {
			ID    int    `json:"id"`
			Name  string `json:"name"`
			IsNew bool   `json:"isNew"`
		}](t, w)
		if p.ID != 2 || p.Name != "Linen Sofa" || !p.IsNew {
			t.Errorf("unexpected product %+v", p)
		}
	})

	t.Run("Not found", func(t *testing.T) {
		if w := get(r, "/products/99"); w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})

	t.Run("Invalid ID", func(t *testing.T) {
		if w := get(r, "/products/abc"); w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}
