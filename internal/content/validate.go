package content

import (
	"strings"
)

// FieldError represents a single pre-submit validation error
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validate checks the required fields before submission. Failures block the
// submit and are reported per-field; no network call is made while any
// remain.
func (f *FormModel) Validate() []FieldError {
	var errs []FieldError

	if strings.TrimSpace(f.Region) == "" {
		errs = append(errs, FieldError{Field: "region", Message: "region is required"})
	}
	if strings.TrimSpace(f.Country) == "" {
		errs = append(errs, FieldError{Field: "country", Message: "country is required"})
	}

	return errs
}

// Required is a helper for the other entity forms that share the same
// per-field reporting shape
func Required(field, value string) *FieldError {
	if strings.TrimSpace(value) == "" {
		return &FieldError{Field: field, Message: field + " is required"}
	}
	return nil
}
