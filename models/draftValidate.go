package models

import (
	"fmt"
	"strings"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Message
}

// DraftValidationError carries the complete ordered error set; the first
// entry is the user-visible message.
type DraftValidationError struct {
	Errors []FieldError
}

func (e *DraftValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "draft is not valid"
	}
	return e.Errors[0].Message
}

// ValidateDraft runs the required-field checks in precedence order and
// returns every failure, not just the first. Quantity is deliberately not
// checked: a zero quantity is accepted and yields a zero line total.
func ValidateDraft(d *DocumentDraft) error {
	numberField := "invoice_number"
	if d.Kind == DraftKindQuotation {
		numberField = "quotation_number"
	}

	var errs []FieldError
	if strings.TrimSpace(d.DocumentNumber) == "" {
		errs = append(errs, FieldError{Field: numberField, Message: fmt.Sprintf("please enter a %s", strings.ReplaceAll(numberField, "_", " "))})
	}
	if strings.TrimSpace(d.CompanyId) == "" {
		errs = append(errs, FieldError{Field: "company_id", Message: "please select a company"})
	}
	if strings.TrimSpace(d.ClientName) == "" {
		errs = append(errs, FieldError{Field: "client_name", Message: "please enter a client name"})
	}
	// A single default row with no name is an empty document.
	if len(d.Items) == 0 || strings.TrimSpace(d.Items[0].Name) == "" {
		errs = append(errs, FieldError{Field: "items", Message: "please add at least one item"})
	}
	if len(errs) > 0 {
		return &DraftValidationError{Errors: errs}
	}
	return nil
}
