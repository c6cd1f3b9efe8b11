package models

// Product represents one entry of the storefront catalog.
// The JSON shape matches the generated products.json file.
type Product struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    int    `json:"price"`
	Image    string `json:"image"`
	IsNew    bool   `json:"isNew"`
}
