package handlers_integrated_test_suite

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/furniture-catalog/internal/catalog"
	api "github.com/rogerio-castellano/furniture-catalog/internal/http"
	handler "github.com/rogerio-castellano/furniture-catalog/internal/http/handlers"
	"github.com/rogerio-castellano/furniture-catalog/internal/models"
	"github.com/rogerio-castellano/furniture-catalog/internal/repo"
)

var (
	database *sql.DB
	pgRepo   *repo.PostgresProductRepository
)

func clearAllProducts() {
	if _, err := database.Exec(`DELETE FROM products`); err != nil {
		log.Printf("failed to clear products: %v", err)
	}
}

// seedCatalog stores products in Postgres and serves them the way the API
// process does: loaded once into memory.
func seedCatalog(t *testing.T, products []models.Product) http.Handler {
	t.Helper()
	t.Cleanup(clearAllProducts)

	ctx := context.Background()
	if err := pgRepo.ReplaceAll(ctx, products); err != nil {
		t.Fatalf("failed to seed products: %v", err)
	}

	loaded, err := repo.LoadProductRepository(ctx, pgRepo, catalog.DefaultPriceTable())
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}
	handler.SetProductRepo(loaded)

	return api.NewRouter(zap.NewNop(), nil)
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
