package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	_ "github.com/rogerio-castellano/furniture-catalog/docs"
	"github.com/rogerio-castellano/furniture-catalog/internal/http/handlers"
	rl "github.com/rogerio-castellano/furniture-catalog/internal/http/rate_limiter"
)

// NewRouter wires every storefront and admin route. importLimiter may be nil,
// which leaves the import endpoint unthrottled.
func NewRouter(logger *zap.Logger, importLimiter *rl.Limiter) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(chimw.Recoverer)

	r.Get("/products", handlers.GetProductsHandler)
	r.Get("/products/{id}", handlers.GetProductByIDHandler)
	r.Get("/products/{id}/inquiry", handlers.GetProductInquiryHandler)
	r.Get("/categories", handlers.GetCategoriesHandler)
	r.Get("/price-ranges", handlers.GetPriceRangesHandler)
	r.Get("/facets", handlers.GetFacetsHandler)
	r.Get("/contact", handlers.GetContactHandler)
	r.Post("/custom-orders", handlers.CreateCustomOrderHandler)

	r.Get("/admin/import/template", handlers.GetImportTemplateHandler)
	if importLimiter != nil {
		r.With(importLimiter.Middleware).Post("/admin/import", handlers.ImportProductsHandler)
	} else {
		r.Post("/admin/import", handlers.ImportProductsHandler)
	}

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}
