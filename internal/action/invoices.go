// Package action implements the dashboard's form mutation handlers: each
// one validates untrusted form input, performs a single database write,
// invalidates the affected listing route, and reports a terminal Result.
package action

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/avelikov/finboard/internal/config"
	"github.com/avelikov/finboard/internal/domain"
	"github.com/avelikov/finboard/internal/validation"
)

// Summary and database failure messages, fixed per operation.
const (
	msgMissingCreate = "Missing Fields. Failed to Create Invoice."
	msgMissingUpdate = "Missing Fields. Failed to Update Invoice."

	msgDBCreate = "Database Error: Failed to Create Invoice"
	msgDBUpdate = "Database Error: Failed to Update Invoice"
	msgDBDelete = "Database Error: Failed to Delete Invoice"
)

// InvoiceStore is the persistence boundary: one parameterized statement
// per call, no multi-statement transactions.
type InvoiceStore interface {
	Insert(ctx context.Context, customerID string, amount int64, status domain.InvoiceStatus, date string) (string, error)
	Update(ctx context.Context, id string, customerID string, amount int64, status domain.InvoiceStatus) error
	Delete(ctx context.Context, id string) error
}

// Revalidator marks a named route's cached render stale.
type Revalidator interface {
	Invalidate(route string)
}

// SignInProvider is the identity boundary. A classified failure is an
// *auth.Error; anything else is infrastructure.
type SignInProvider interface {
	SignIn(ctx context.Context, provider string, form url.Values) (token string, err error)
}

type Actions struct {
	invoices InvoiceStore
	cache    Revalidator
	signIn   SignInProvider
	validate *validatorv10.Validate
	now      func() time.Time
}

func New(invoices InvoiceStore, cache Revalidator, signIn SignInProvider) *Actions {
	return &Actions{
		invoices: invoices,
		cache:    cache,
		signIn:   signIn,
		validate: validation.New(),
		now:      time.Now,
	}
}

// CreateInvoice validates the submitted form and inserts a new invoice
// dated today. On success it invalidates the invoices listing and redirects
// there; any store failure collapses to a fixed message with no field errors.
func (a *Actions) CreateInvoice(ctx context.Context, _ State, form url.Values) Result {
	parsed, fieldErrs := validation.ParseInvoiceForm(a.validate, form)
	if fieldErrs != nil {
		return failWith(State{Errors: fieldErrs, Message: msgMissingCreate})
	}

	amount := domain.CentsFromDollars(parsed.Amount)
	date := a.now().UTC().Format(time.DateOnly)

	id, err := a.invoices.Insert(ctx, parsed.CustomerID, amount, domain.InvoiceStatus(parsed.Status), date)
	if err != nil {
		slog.Error("create invoice", "error", err)
		return failWith(State{Message: msgDBCreate})
	}
	slog.Info("invoice created", "id", id, "customer_id", parsed.CustomerID, "amount", amount)

	a.cache.Invalidate(config.InvoicesRoute)
	return redirectTo(config.InvoicesRoute)
}

// UpdateInvoice replaces the customer, amount, and status of an existing
// invoice. The id and issue date are never modified.
func (a *Actions) UpdateInvoice(ctx context.Context, id string, _ State, form url.Values) Result {
	parsed, fieldErrs := validation.ParseInvoiceForm(a.validate, form)
	if fieldErrs != nil {
		return failWith(State{Errors: fieldErrs, Message: msgMissingUpdate})
	}

	amount := domain.CentsFromDollars(parsed.Amount)

	if err := a.invoices.Update(ctx, id, parsed.CustomerID, amount, domain.InvoiceStatus(parsed.Status)); err != nil {
		slog.Error("update invoice", "id", id, "error", err)
		return failWith(State{Message: msgDBUpdate})
	}
	slog.Info("invoice updated", "id", id)

	a.cache.Invalidate(config.InvoicesRoute)
	return redirectTo(config.InvoicesRoute)
}

// DeleteInvoice removes an invoice by its already-known id; there is no
// form input to validate. Success invalidates the listing without a
// redirect, the caller is assumed to be on it already.
func (a *Actions) DeleteInvoice(ctx context.Context, id string) Result {
	if err := a.invoices.Delete(ctx, id); err != nil {
		slog.Error("delete invoice", "id", id, "error", err)
		return failWith(State{Message: msgDBDelete})
	}
	slog.Info("invoice deleted", "id", id)

	a.cache.Invalidate(config.InvoicesRoute)
	return Result{}
}
