package forms

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"invoice-dashboard-backend/internal/models"
)

// InvoiceForm is the field subset a browser form may supply. The invoice id
// never travels in the body (update receives it in the URL) and the issue date
// is stamped server-side, so neither appears here.
type InvoiceForm struct {
	CustomerID string `form:"customerId" binding:"required"`
	Amount     string `form:"amount" binding:"required"`
	Status     string `form:"status" binding:"required,oneof=pending paid"`
}

// InvoiceInput is the validated, typed record handed to the service layer.
type InvoiceInput struct {
	CustomerID string
	Amount     float64
	Status     models.InvoiceStatus
}

// FieldErrors maps a form field name to a validation message.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, field+" "+msg)
	}
	return strings.Join(parts, "; ")
}

var formFieldNames = map[string]string{
	"CustomerID": "customerId",
	"Amount":     "amount",
	"Status":     "status",
}

// Fields converts a binding error into per-field messages. Anything that is
// not a validator error (e.g. a malformed body) becomes a form-level message.
func Fields(err error) FieldErrors {
	fe := FieldErrors{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fe["form"] = "malformed form body"
		return fe
	}
	for _, v := range verrs {
		field := formFieldNames[v.Field()]
		if field == "" {
			field = v.Field()
		}
		switch v.Tag() {
		case "required":
			fe[field] = "is required"
		case "oneof":
			fe[field] = "must be one of: " + strings.ReplaceAll(v.Param(), " ", ", ")
		default:
			fe[field] = "is invalid"
		}
	}
	return fe
}

// Input parses the bound form into a typed input. The amount must be a
// non-negative decimal number; empty or non-numeric strings fail here even if
// they survived binding.
func (f *InvoiceForm) Input() (InvoiceInput, FieldErrors) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(f.Amount), 64)
	if err != nil {
		return InvoiceInput{}, FieldErrors{"amount": "must be a number"}
	}
	if amount < 0 {
		return InvoiceInput{}, FieldErrors{"amount": "must not be negative"}
	}
	return InvoiceInput{
		CustomerID: f.CustomerID,
		Amount:     amount,
		Status:     models.InvoiceStatus(f.Status),
	}, nil
}
