package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/furniture-catalog/internal/catalog"
	"github.com/rogerio-castellano/furniture-catalog/internal/models"
	repo "github.com/rogerio-castellano/furniture-catalog/internal/repo"
)

const cacheTimeout = 3 * time.Second

// queryFromRequest reads the browse filters. priceRange may be repeated or
// comma separated; a literal "+" in a bucket id must be sent as %2B.
func queryFromRequest(r *http.Request) catalog.QueryState {
	q := r.URL.Query()

	var ids []string
	for _, v := range q["priceRange"] {
		for _, id := range strings.Split(v, ",") {
			if id != "" {
				ids = append(ids, id)
			}
		}
	}

	return catalog.QueryState{
		SearchText:    q.Get("q"),
		Category:      q.Get("category"),
		PriceRangeIDs: ids,
		SortMode:      catalog.ParseSortMode(q.Get("sort")),
	}.Normalize()
}

// filterProducts evaluates q, going through the query cache when one is set.
// Cache failures are logged and never fail the request.
func filterProducts(ctx context.Context, q catalog.QueryState) []models.Product {
	if queryCache == nil {
		return productRepo.Filter(q)
	}

	fingerprint := productRepo.Fingerprint()
	ctx, cancel := context.WithTimeout(ctx, cacheTimeout)
	defer cancel()

	cached, ok, err := queryCache.Get(ctx, fingerprint, q)
	if err != nil {
		logger.Warn("query cache read failed", zap.Error(err))
	}
	if ok {
		return cached
	}

	products := productRepo.Filter(q)
	if err := queryCache.Set(ctx, fingerprint, q, products); err != nil {
		logger.Warn("query cache write failed", zap.Error(err))
	}
	return products
}

// GetProductsHandler godoc
// @Summary Browse the catalog
// @Description Filters by search text, category and price buckets, then sorts.
// @Tags products
// @Produce json
// @Param q query string false "Case-insensitive search on name or category"
// @Param category query string false "Exact category, All for every category"
// @Param priceRange query []string false "Price bucket id, repeatable" collectionFormat(multi)
// @Param sort query string false "default, price-low, price-high or new"
// @Success 200 {object} ProductsSearchResult
// @Failure 500 {string} string "Internal error"
// @Router /products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	products := filterProducts(r.Context(), queryFromRequest(r))

	resp := ProductsSearchResult{
		Data: products,
		Meta: Meta{TotalCount: len(products)},
	}
	if err := writeJSON(w, http.StatusOK, resp, versionHeader()); err != nil {
		logger.Error("failed to write products response", zap.Error(err))
	}
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Product
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := productIDParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	product, err := productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, product, versionHeader()); err != nil {
		logger.Error("failed to write product response", zap.Error(err))
	}
}

// GetCategoriesHandler godoc
// @Summary List the storefront category filters
// @Tags catalog
// @Produce json
// @Success 200 {object} CategoriesResult
// @Router /categories [get]
func GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	resp := CategoriesResult{Data: append([]string(nil), catalog.StorefrontCategories...)}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		logger.Error("failed to write categories response", zap.Error(err))
	}
}

// GetPriceRangesHandler godoc
// @Summary List the price buckets
// @Description Bounds are inclusive, so a price on a boundary belongs to two buckets.
// @Tags catalog
// @Produce json
// @Success 200 {object} PriceRangesResult
// @Router /price-ranges [get]
func GetPriceRangesHandler(w http.ResponseWriter, r *http.Request) {
	resp := PriceRangesResult{Data: productRepo.PriceRanges()}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		logger.Error("failed to write price ranges response", zap.Error(err))
	}
}

// GetFacetsHandler godoc
// @Summary Product counts per category and price bucket
// @Tags catalog
// @Produce json
// @Success 200 {object} FacetsResult
// @Router /facets [get]
func GetFacetsHandler(w http.ResponseWriter, r *http.Request) {
	resp := FacetsResult{Facets: productRepo.Facets(), Version: productRepo.Fingerprint()}
	if err := writeJSON(w, http.StatusOK, resp, versionHeader()); err != nil {
		logger.Error("failed to write facets response", zap.Error(err))
	}
}
