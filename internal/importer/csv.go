// Package importer converts spreadsheet exports into the catalog file format.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rogerio-castellano/furniture-catalog/internal/models"
)

const (
	DefaultCategory = "Uncategorized"
	DefaultImage    = "https://images.unsplash.com/photo-1555041469-a586c61ea9bc?w=800&q=80"
)

// ErrNoRows is returned when the input has no header row or no data rows.
var ErrNoRows = errors.New("csv needs a header row and at least one product row")

type columns struct {
	name, category, price, image, isNew int
}

// Each role takes the first header containing one of its keywords.
func detectColumns(headers []string) columns {
	find := func(keywords ...string) int {
		for i, h := range headers {
			h = strings.ToLower(strings.TrimSpace(h))
			for _, k := range keywords {
				if strings.Contains(h, k) {
					return i
				}
			}
		}
		return -1
	}

	return columns{
		name:     find("name", "product"),
		category: find("category", "type"),
		price:    find("price"),
		image:    find("image", "url", "photo"),
		isNew:    find("new", "arrival"),
	}
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// parsePrice keeps only the digits of s, so "KSh 45,000" becomes 45000.
// Anything that still does not parse yields 0.
func parsePrice(s string) int {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)

	v, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return v
}

func parseIsNew(s string) bool {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true
	}
	return false
}

func placeholderName(id int) string {
	return fmt.Sprintf("Product %d", id)
}

// Result is the outcome of an import. Skipped holds the ids (data row numbers)
// of rows dropped for having no name.
type Result struct {
	Products []models.Product
	Skipped  []int
}

// Parse reads CSV text with a header row and returns the products it describes.
// Columns are detected from header names, missing cells fall back to defaults,
// and rows without a usable name are dropped. Product ids follow the row order.
func Parse(r io.Reader) ([]models.Product, error) {
	res, err := Import(r)
	if err != nil {
		return nil, err
	}
	return res.Products, nil
}

// Import is Parse with a report of the dropped rows.
func Import(r io.Reader) (Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err == io.EOF {
		return Result{}, ErrNoRows
	}
	if err != nil {
		return Result{}, fmt.Errorf("invalid CSV header: %w", err)
	}
	if len(headers) > 0 {
		headers[0] = strings.TrimPrefix(headers[0], "\ufeff")
	}
	cols := detectColumns(headers)

	res := Result{Products: []models.Product{}}
	rows := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Result{}, fmt.Errorf("CSV read error: %w", err)
		}
		rows++

		id := rows
		p := models.Product{
			ID:       id,
			Name:     orDefault(field(record, cols.name), placeholderName(id)),
			Category: orDefault(field(record, cols.category), DefaultCategory),
			Price:    parsePrice(orDefault(field(record, cols.price), "0")),
			Image:    orDefault(field(record, cols.image), DefaultImage),
			IsNew:    parseIsNew(field(record, cols.isNew)),
		}
		if p.Name == placeholderName(p.ID) {
			res.Skipped = append(res.Skipped, id)
			continue
		}
		res.Products = append(res.Products, p)
	}

	if rows == 0 {
		return Result{}, ErrNoRows
	}
	return res, nil
}
