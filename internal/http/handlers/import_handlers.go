package handlers

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/furniture-catalog/internal/importer"
)

// ImportProductsHandler godoc
// @Summary Convert a CSV spreadsheet into catalog products
// @Description Columns are detected from the header row. With download=true the
// @Description response is the products.json catalog file instead of the report.
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Param download query bool false "Return the catalog file as an attachment"
// @Success 200 {object} ImportProductsResult
// @Failure 400 {string} string "Invalid file"
// @Failure 429 {string} string "Too many requests"
// @Router /admin/import [post]
func ImportProductsHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	res, err := importer.Import(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	logger.Info("catalog import parsed",
		zap.Int("imported", len(res.Products)),
		zap.Int("skipped", len(res.Skipped)))

	if download, _ := strconv.ParseBool(r.URL.Query().Get("download")); download {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", `attachment; filename="products.json"`)
		if err := importer.WriteJSON(w, res.Products); err != nil {
			logger.Error("failed to write catalog file", zap.Error(err))
		}
		return
	}

	err = writeJSON(w, http.StatusOK, ImportProductsResult{
		ImportedProductsCount: len(res.Products),
		Products:              res.Products,
		Errors:                skippedRowErrors(res.Skipped),
	})
	if err != nil {
		http.Error(w, "", http.StatusInternalServerError)
	}
}

// GetImportTemplateHandler godoc
// @Summary Download the CSV import template
// @Tags import
// @Produce text/csv
// @Success 200 {string} string "CSV template"
// @Router /admin/import/template [get]
func GetImportTemplateHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+importer.TemplateFilename+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(importer.Template())); err != nil {
		logger.Error("failed to write import template", zap.Error(err))
	}
}
