package messaging

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MaxReferenceImages is the most reference photos a custom order may mention.
const MaxReferenceImages = 5

// CustomOrderRequest is the custom furniture form a customer fills in.
type CustomOrderRequest struct {
	Name        string `json:"name" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	Description string `json:"description" validate:"required"`
	ImageCount  int    `json:"imageCount" validate:"min=0,max=5"`
}

type FieldError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// ValidationError lists every field of a request that failed validation.
type ValidationError struct {
	Fields []FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Description)
	}
	return "invalid custom order: " + strings.Join(parts, "; ")
}

var fieldDescriptions = map[string]string{
	"name":        "Please enter your name.",
	"phone":       "Please enter your phone number.",
	"description": "Please describe the furniture you want.",
	"imageCount":  fmt.Sprintf("You can share at most %d reference images.", MaxReferenceImages),
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

var validate = newValidator()

// Normalize trims the free-text fields of r.
func (r CustomOrderRequest) Normalize() CustomOrderRequest {
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Description = strings.TrimSpace(r.Description)
	return r
}

// Validate checks a normalized request and returns a *ValidationError if any field is unusable.
func (r CustomOrderRequest) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &ValidationError{}
	for _, fe := range verrs {
		desc, ok := fieldDescriptions[fe.Field()]
		if !ok {
			desc = "is invalid"
		}
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Description: desc})
	}
	return out
}

// CustomOrder validates req and composes the order request message.
func (c *Composer) CustomOrder(req CustomOrderRequest) (Message, error) {
	req = req.Normalize()
	if err := req.Validate(); err != nil {
		return Message{}, err
	}

	imageNote := ""
	if req.ImageCount > 0 {
		imageNote = fmt.Sprintf("\n\n📷 I have %d reference image(s) to share with you.", req.ImageCount)
	}

	text := fmt.Sprintf(`🛋️ *Custom Furniture Order Request*

*Name:* %s
*Phone:* %s

*Furniture Description:*
%s%s

---
Sent from %s website`, req.Name, req.Phone, req.Description, imageNote, c.cfg.BusinessName)

	return c.compose(text), nil
}
