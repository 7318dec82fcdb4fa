package domain

import (
	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// Valid reports whether the status is one of the accepted values.
func (s InvoiceStatus) Valid() bool {
	return s == InvoiceStatusPending || s == InvoiceStatusPaid
}

// Invoice is a billing record for a customer. Amount is stored in cents;
// the dollar representation only exists at the form boundary.
type Invoice struct {
	ID         string
	CustomerID string
	Amount     int64
	Status     InvoiceStatus
	Date       string
}

var oneHundred = decimal.NewFromInt(100)

// CentsFromDollars converts a dollar amount to integer cents,
// rounding half away from zero.
func CentsFromDollars(dollars decimal.Decimal) int64 {
	return dollars.Mul(oneHundred).Round(0).IntPart()
}
