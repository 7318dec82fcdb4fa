package validation

import (
	"github.com/shopspring/decimal"
)

// Form field names as submitted by the dashboard forms.
const (
	FieldCustomerID = "customerId"
	FieldAmount     = "amount"
	FieldStatus     = "status"
)

// User-facing violation messages, rendered inline next to each field.
const (
	MsgSelectCustomer    = "Please select a customer."
	MsgAmountNotPositive = "Please enter an amount greater than $0."
	MsgSelectStatus      = "Please select an invoice status."
)

// InvoiceForm is the typed record produced from a create/update invoice
// submission. The same schema serves both operations; id and date are never
// user-supplied.
type InvoiceForm struct {
	CustomerID string          `validate:"required"`
	Amount     decimal.Decimal `validate:"-"`
	Status     string          `validate:"required,oneof=pending paid"`
}

// FieldErrors maps a form field name to its ordered violation messages.
type FieldErrors map[string][]string

func (fe FieldErrors) add(field, message string) {
	fe[field] = append(fe[field], message)
}
