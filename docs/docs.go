// Package docs is generated by swaggo/swag from the handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/admin/import": {
            "post": {
                "description": "Columns are detected from the header row. With download=true the\nresponse is the products.json catalog file instead of the report.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["import"],
                "summary": "Convert a CSV spreadsheet into catalog products",
                "parameters": [
                    {"type": "file", "description": "CSV file", "name": "file", "in": "formData", "required": true},
                    {"type": "boolean", "description": "Return the catalog file as an attachment", "name": "download", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ImportProductsResult"}},
                    "400": {"description": "Invalid file", "schema": {"type": "string"}},
                    "429": {"description": "Too many requests", "schema": {"type": "string"}}
                }
            }
        },
        "/admin/import/template": {
            "get": {
                "produces": ["text/csv"],
                "tags": ["import"],
                "summary": "Download the CSV import template",
                "responses": {
                    "200": {"description": "CSV template", "schema": {"type": "string"}}
                }
            }
        },
        "/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List the storefront category filters",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.CategoriesResult"}}
                }
            }
        },
        "/contact": {
            "get": {
                "produces": ["application/json"],
                "tags": ["messaging"],
                "summary": "Business contact details and a general WhatsApp inquiry",
                "parameters": [
                    {"type": "string", "description": "Product name to mention in the greeting", "name": "product", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ContactResponse"}}
                }
            }
        },
        "/custom-orders": {
            "post": {
                "description": "Validates the form and returns the WhatsApp message to send. Nothing is stored.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["messaging"],
                "summary": "Compose a custom furniture order",
                "parameters": [
                    {"description": "Custom order form", "name": "order", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CustomOrderRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.InquiryResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ValidationErrorsResult"}}
                }
            }
        },
        "/facets": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Product counts per category and price bucket",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.FacetsResult"}}
                }
            }
        },
        "/price-ranges": {
            "get": {
                "description": "Bounds are inclusive, so a price on a boundary belongs to two buckets.",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List the price buckets",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.PriceRangesResult"}}
                }
            }
        },
        "/products": {
            "get": {
                "description": "Filters by search text, category and price buckets, then sorts.",
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Browse the catalog",
                "parameters": [
                    {"type": "string", "description": "Case-insensitive search on name or category", "name": "q", "in": "query"},
                    {"type": "string", "description": "Exact category, All for every category", "name": "category", "in": "query"},
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "description": "Price bucket id, repeatable", "name": "priceRange", "in": "query"},
                    {"type": "string", "description": "default, price-low, price-high or new", "name": "sort", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ProductsSearchResult"}},
                    "500": {"description": "Internal error", "schema": {"type": "string"}}
                }
            }
        },
        "/products/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Get product by ID",
                "parameters": [
                    {"type": "integer", "description": "Product ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Product"}},
                    "400": {"description": "Invalid ID", "schema": {"type": "string"}},
                    "404": {"description": "Not found", "schema": {"type": "string"}}
                }
            }
        },
        "/products/{id}/inquiry": {
            "get": {
                "description": "Mobile user agents get a whatsapp:// link, everyone else a wa.me link.",
                "produces": ["application/json"],
                "tags": ["messaging"],
                "summary": "WhatsApp inquiry for a product",
                "parameters": [
                    {"type": "integer", "description": "Product ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.InquiryResponse"}},
                    "400": {"description": "Invalid ID", "schema": {"type": "string"}},
                    "404": {"description": "Not found", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "catalog.FacetCount": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "label": {"type": "string"},
                "value": {"type": "string"}
            }
        },
        "handlers.CategoriesResult": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handlers.ContactResponse": {
            "type": "object",
            "properties": {
                "business_name": {"type": "string"},
                "facebook_page": {"type": "string"},
                "link": {"type": "string"},
                "location": {"type": "string"},
                "message": {"type": "string"},
                "phone": {"type": "string"}
            }
        },
        "handlers.CustomOrderRequest": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "imageCount": {"type": "integer"},
                "name": {"type": "string"},
                "phone": {"type": "string"}
            }
        },
        "handlers.FacetsResult": {
            "type": "object",
            "properties": {
                "categories": {"type": "array", "items": {"$ref": "#/definitions/catalog.FacetCount"}},
                "new_arrivals": {"type": "integer"},
                "price_ranges": {"type": "array", "items": {"$ref": "#/definitions/catalog.FacetCount"}},
                "total_products": {"type": "integer"},
                "version": {"type": "string"}
            }
        },
        "handlers.ImportProductsResult": {
            "type": "object",
            "properties": {
                "errors": {"type": "array", "items": {"$ref": "#/definitions/handlers.ValidationError"}},
                "imported": {"type": "integer"},
                "products": {"type": "array", "items": {"$ref": "#/definitions/models.Product"}}
            }
        },
        "handlers.InquiryResponse": {
            "type": "object",
            "properties": {
                "link": {"type": "string"},
                "message": {"type": "string"},
                "phone": {"type": "string"},
                "product_id": {"type": "integer"}
            }
        },
        "handlers.Meta": {
            "type": "object",
            "properties": {
                "total_count": {"type": "integer"}
            }
        },
        "handlers.PriceRangesResult": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/models.PriceRange"}}
            }
        },
        "handlers.ProductsSearchResult": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/models.Product"}},
                "meta": {"$ref": "#/definitions/handlers.Meta"}
            }
        },
        "handlers.ValidationError": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "field": {"type": "string"}
            }
        },
        "handlers.ValidationErrorsResult": {
            "type": "object",
            "properties": {
                "errors": {"type": "array", "items": {"$ref": "#/definitions/handlers.ValidationError"}}
            }
        },
        "models.PriceRange": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "label": {"type": "string"},
                "max": {"type": "integer"},
                "min": {"type": "integer"}
            }
        },
        "models.Product": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "id": {"type": "integer"},
                "image": {"type": "string"},
                "isNew": {"type": "boolean"},
                "name": {"type": "string"},
                "price": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Furniture Catalog API",
	Description:      "Storefront catalog browsing, WhatsApp inquiries and CSV catalog import.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
