package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/furniture-catalog/internal/messaging"
	repo "github.com/rogerio-castellano/furniture-catalog/internal/repo"
)

// composerFor picks the link scheme from the caller's User-Agent.
func composerFor(r *http.Request) *messaging.Composer {
	return composer.WithLinkBuilder(messaging.LinkForUserAgent(r.UserAgent()))
}

// GetProductInquiryHandler godoc
// @Summary WhatsApp inquiry for a product
// @Description Mobile user agents get a whatsapp:// link, everyone else a wa.me link.
// @Tags messaging
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} InquiryResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /products/{id}/inquiry [get]
func GetProductInquiryHandler(w http.ResponseWriter, r *http.Request) {
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

	pc := messaging.ProductContext{
		Name:     product.Name,
		Category: product.Category,
		Image:    product.Image,
	}
	// A zero price is what the importer records for a missing or unreadable price.
	if product.Price > 0 {
		price := product.Price
		pc.Price = &price
	}

	c := composerFor(r)
	msg := c.ProductInquiry(pc)
	resp := InquiryResponse{
		ProductID: product.ID,
		Phone:     c.Phone(),
		Message:   msg.Text,
		Link:      msg.Link,
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		logger.Error("failed to write inquiry response", zap.Error(err))
	}
}

// GetContactHandler godoc
// @Summary Business contact details and a general WhatsApp inquiry
// @Tags messaging
// @Produce json
// @Param product query string false "Product name to mention in the greeting"
// @Success 200 {object} ContactResponse
// @Router /contact [get]
func GetContactHandler(w http.ResponseWriter, r *http.Request) {
	c := composerFor(r)
	msg := c.GeneralInquiry(r.URL.Query().Get("product"))
	cfg := c.Config()

	resp := ContactResponse{
		BusinessName: cfg.BusinessName,
		Phone:        c.Phone(),
		Location:     cfg.Location,
		FacebookPage: cfg.FacebookPage,
		Message:      msg.Text,
		Link:         msg.Link,
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		logger.Error("failed to write contact response", zap.Error(err))
	}
}

// CreateCustomOrderHandler godoc
// @Summary Compose a custom furniture order
// @Description Validates the form and returns the WhatsApp message to send. Nothing is stored.
// @Tags messaging
// @Accept json
// @Produce json
// @Param order body CustomOrderRequest true "Custom order form"
// @Success 200 {object} InquiryResponse
// @Failure 400 {object} ValidationErrorsResult
// @Router /custom-orders [post]
func CreateCustomOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req CustomOrderRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	c := composerFor(r)
	msg, err := c.CustomOrder(messaging.CustomOrderRequest{
		Name:        req.Name,
		Phone:       req.Phone,
		Description: req.Description,
		ImageCount:  req.ImageCount,
	})
	if err != nil {
		var verr *messaging.ValidationError
		if errors.As(err, &verr) {
			_ = writeJSON(w, http.StatusBadRequest, ValidationErrorsResult{Errors: fromMessagingErrors(verr)})
			return
		}
		http.Error(w, "could not compose order", http.StatusInternalServerError)
		return
	}

	resp := InquiryResponse{
		Phone:   c.Phone(),
		Message: msg.Text,
		Link:    msg.Link,
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		logger.Error("failed to write custom order response", zap.Error(err))
	}
}
