package handlers

import (
	"fmt"

	"github.com/rogerio-castellano/furniture-catalog/internal/messaging"
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func fromMessagingErrors(verr *messaging.ValidationError) []ValidationError {
	errs := make([]ValidationError, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		errs = append(errs, ValidationError{Field: f.Field, Description: f.Description})
	}
	return errs
}

// skippedRowErrors reports import rows dropped for having no name. Row numbers
// count the header as row 1.
func skippedRowErrors(skipped []int) []ValidationError {
	errs := []ValidationError{}
	for _, id := range skipped {
		errs = append(errs, ValidationError{
			Field:       "name",
			Description: fmt.Sprintf("row %d: missing name, row skipped", id+1),
		})
	}
	return errs
}
