package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avelikov/finboard/internal/domain"
)

type InvoiceRepository struct {
	db *pgxpool.Pool
}

func NewInvoiceRepository(db *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// Insert creates an invoice row and returns its generated id.
func (r *InvoiceRepository) Insert(ctx context.Context, customerID string, amount int64, status domain.InvoiceStatus, date string) (string, error) {
	id := uuid.NewString()

	query := `
		INSERT INTO invoices (id, customer_id, amount, status, date)
		VALUES ($1, $2, $3, $4, $5)`

	if _, err := r.db.Exec(ctx, query, id, customerID, amount, string(status), date); err != nil {
		return "", fmt.Errorf("insert invoice: %w", err)
	}
	return id, nil
}

// Update replaces customer, amount, and status of an existing invoice.
// The id and date columns are never modified.
func (r *InvoiceRepository) Update(ctx context.Context, id string, customerID string, amount int64, status domain.InvoiceStatus) error {
	query := `
		UPDATE invoices
		SET customer_id = $1, amount = $2, status = $3
		WHERE id = $4`

	tag, err := r.db.Exec(ctx, query, customerID, amount, string(status), id)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInvoiceNotFound
	}
	return nil
}

func (r *InvoiceRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

// List returns all invoices, newest first, for the dashboard listing.
func (r *InvoiceRepository) List(ctx context.Context) ([]domain.Invoice, error) {
	query := `
		SELECT id, customer_id, amount, status, to_char(date, 'YYYY-MM-DD')
		FROM invoices
		ORDER BY date DESC, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var invoices []domain.Invoice
	for rows.Next() {
		var inv domain.Invoice
		var status string
		if err := rows.Scan(&inv.ID, &inv.CustomerID, &inv.Amount, &status, &inv.Date); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		inv.Status = domain.InvoiceStatus(status)
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate invoices: %w", err)
	}
	return invoices, nil
}

// Get fetches a single invoice by id.
func (r *InvoiceRepository) Get(ctx context.Context, id string) (*domain.Invoice, error) {
	query := `
		SELECT id, customer_id, amount, status, to_char(date, 'YYYY-MM-DD')
		FROM invoices
		WHERE id = $1`

	var inv domain.Invoice
	var status string
	err := r.db.QueryRow(ctx, query, id).Scan(&inv.ID, &inv.CustomerID, &inv.Amount, &status, &inv.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	inv.Status = domain.InvoiceStatus(status)
	return &inv, nil
}
