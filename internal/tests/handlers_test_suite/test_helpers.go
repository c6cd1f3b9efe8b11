package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/furniture-catalog/internal/catalog"
	api "github.com/rogerio-castellano/furniture-catalog/internal/http"
	handler "github.com/rogerio-castellano/furniture-catalog/internal/http/handlers"
	rl "github.com/rogerio-castellano/furniture-catalog/internal/http/rate_limiter"
	"github.com/rogerio-castellano/furniture-catalog/internal/messaging"
	"github.com/rogerio-castellano/furniture-catalog/internal/models"
	"github.com/rogerio-castellano/furniture-catalog/internal/repo"
)

const (
	iPhoneUA  = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15"
	desktopUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

var productRepo *repo.InMemoryProductRepository

// Prices 20000 and 0 sit on bucket boundaries; 0 also means the price is unpublished.
var fixtureProducts = []models.Product{
	{ID: 1, Name: "Oak Bed", Category: "Beds", Price: 55000, Image: "/products/bed.jpg", IsNew: false},
	{ID: 2, Name: "Linen Sofa", Category: "Sofas", Price: 45000, Image: "/products/sofa.jpg", IsNew: true},
	{ID: 3, Name: "Mesh Office Chair", Category: "Office Chairs", Price: 20000, Image: "https://cdn.example/chair.jpg", IsNew: false},
	{ID: 4, Name: "Velvet Couch", Category: "Couches", Price: 82000, Image: "/products/couch.jpg", IsNew: true},
	{ID: 5, Name: "Pine Night Stand", Category: "Night Stands", Price: 0, Image: "/products/stand.jpg", IsNew: false},
}

func init() {
	setupTestRepos()
}

func setupTestRepos() {
	var err error
	productRepo, err = repo.NewInMemoryProductRepository(fixtureProducts, catalog.DefaultPriceTable())
	if err != nil {
		panic(fmt.Sprintf("error building test catalog: %v", err))
	}
	handler.SetProductRepo(productRepo)
	handler.SetLogger(zap.NewNop())
	handler.SetQueryCache(nil)
	handler.SetComposer(messaging.NewComposer(messaging.Config{
		Phone:        "+254 728 260288",
		BusinessName: "Siestar Furnitures",
		Location:     "Nairobi, Kenya",
		SiteURL:      "https://shop.example",
		FacebookPage: "https://www.facebook.com/siestherfurniture/",
	}, messaging.WebLink))
}

func newRouter() http.Handler {
	return api.NewRouter(zap.NewNop(), rl.New(1000, 1000))
}

func get(r http.Handler, target string, userAgent ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if len(userAgent) > 0 {
		req.Header.Set("User-Agent", userAgent[0])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postJSON(r http.Handler, target string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func multipartCSV(csvContent string, filename string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, _ := writer.CreateFormFile("file", filename)
	part.Write([]byte(csvContent))

	writer.Close()
	return &buf, writer.FormDataContentType()
}

func uploadCSV(r http.Handler, target, csvContent string) *httptest.ResponseRecorder {
	body, contentType := multipartCSV(csvContent, "products.csv")
	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(w.Body).Decode(&v); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	return v
}

func productIDs(products []models.Product) []int {
	ids := make([]int, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}
