package handlers

import (
	"github.com/rogerio-castellano/furniture-catalog/internal/catalog"
	"github.com/rogerio-castellano/furniture-catalog/internal/models"
)

type Meta struct {
	TotalCount int `json:"total_count"`
}

type ProductsSearchResult struct {
	Data []models.Product `json:"data"`
	Meta Meta             `json:"meta"`
}

type CategoriesResult struct {
	Data []string `json:"data"`
}

type PriceRangesResult struct {
	Data []models.PriceRange `json:"data"`
}

type FacetsResult struct {
	catalog.Facets
	Version string `json:"version"`
}

type InquiryResponse struct {
	ProductID int    `json:"product_id,omitempty"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`
	Link      string `json:"link"`
}

type ContactResponse struct {
	BusinessName string `json:"business_name"`
	Phone        string `json:"phone"`
	Location     string `json:"location"`
	FacebookPage string `json:"facebook_page,omitempty"`
	Message      string `json:"message"`
	Link         string `json:"link"`
}

type CustomOrderRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Description string `json:"description"`
	ImageCount  int    `json:"imageCount"`
}

type ValidationErrorsResult struct {
	Errors []ValidationError `json:"errors"`
}

type ImportProductsResult struct {
	ImportedProductsCount int               `json:"imported"`
	Products              []models.Product  `json:"products"`
	Errors                []ValidationError `json:"errors"`
}
