package validation

import (
	"net/url"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// New returns a configured validator with the invoice form's struct-level
// amount check registered.
func New() *validatorv10.Validate {
	v := validatorv10.New()
	v.RegisterStructValidation(invoiceFormStructValidation, InvoiceForm{})
	return v
}

// invoiceFormStructValidation enforces Amount > 0. The amount arrives as an
// arbitrary-precision decimal, which tag-based numeric rules cannot compare.
func invoiceFormStructValidation(sl validatorv10.StructLevel) {
	form := sl.Current().Interface().(InvoiceForm)
	if !form.Amount.GreaterThan(decimal.Zero) {
		sl.ReportError(form.Amount, "Amount", "Amount", "gt", "0")
	}
}

// ParseInvoiceForm reads the invoice fields out of a submitted form, coerces
// them, and checks every rule without stopping at the first violation.
// It returns either the typed form or the full set of field errors.
func ParseInvoiceForm(v *validatorv10.Validate, values url.Values) (*InvoiceForm, FieldErrors) {
	form := &InvoiceForm{
		CustomerID: values.Get(FieldCustomerID),
		Status:     values.Get(FieldStatus),
	}

	amountCoerced := true
	if raw := values.Get(FieldAmount); raw != "" {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			amountCoerced = false
		} else {
			form.Amount = amount
		}
	}

	errs := FieldErrors{}
	if !amountCoerced {
		errs.add(FieldAmount, MsgAmountNotPositive)
	}

	if err := v.Struct(form); err != nil {
		violations, ok := err.(validatorv10.ValidationErrors)
		if !ok {
			// Only reachable when the schema itself is broken.
			return nil, FieldErrors{"form": {err.Error()}}
		}
		for _, fe := range violations {
			field, message := fieldMessage(fe)
			// A failed coercion already produced the amount message.
			if field == FieldAmount && !amountCoerced {
				continue
			}
			errs.add(field, message)
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return form, nil
}

func fieldMessage(fe validatorv10.FieldError) (string, string) {
	switch fe.StructField() {
	case "CustomerID":
		return FieldCustomerID, MsgSelectCustomer
	case "Amount":
		return FieldAmount, MsgAmountNotPositive
	case "Status":
		return FieldStatus, MsgSelectStatus
	default:
		return fe.StructField(), fe.Error()
	}
}
