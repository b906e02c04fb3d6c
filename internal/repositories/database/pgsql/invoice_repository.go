package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/invoicing_api/internal/apperrors"
	"github.com/SscSPs/invoicing_api/internal/core/domain"
	portsrepo "github.com/SscSPs/invoicing_api/internal/core/ports/repositories"
	"github.com/SscSPs/invoicing_api/internal/models"
	"github.com/SscSPs/invoicing_api/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxInvoiceRepository struct {
	BaseRepository
}

// newPgxInvoiceRepository creates a new repository for invoice data.
func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

func invoiceNotFound(id int64) error {
	return apperrors.NewNotFoundError(fmt.Sprintf("Invoice with id %d not found", id))
}

// translateWriteError maps constraint violations raised by invoice writes.
// Foreign key violations stay unclassified and surface as server errors.
func translateWriteError(err error, action string) error {
	if pgErr, ok := asPgError(err, pgCheckViolation); ok {
		return apperrors.NewValidationError("Invalid invoice: " + pgErr.Message)
	}
	return fmt.Errorf("failed to %s invoice: %w", action, err)
}

// scanInvoice reads the full invoice row in column order.
func scanInvoice(row pgx.Row) (models.Invoice, error) {
	var inv models.Invoice
	err := row.Scan(
		&inv.ID,
		&inv.CompCode,
		&inv.Amt,
		&inv.Paid,
		&inv.AddDate,
		&inv.PaidDate,
	)
	return inv, err
}

// ListInvoices retrieves the id and company code of every invoice.
func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	query := `
		SELECT id, comp_code
		FROM invoices
		ORDER BY id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	modelInvoices, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Invoice, error) {
		var inv models.Invoice
		err := row.Scan(&inv.ID, &inv.CompCode)
		return inv, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect invoice rows: %w", err)
	}

	return mapping.ToDomainInvoiceSlice(modelInvoices), nil
}

// FindInvoiceByID retrieves an invoice joined with its owning company.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	query := `
		SELECT i.id, i.comp_code, i.amt, i.paid, i.add_date, i.paid_date,
		       c.code, c.name, c.description
		FROM invoices i
		JOIN companies c ON c.code = i.comp_code
		WHERE i.id = $1;
	`
	var joined models.InvoiceWithCompany
	err := r.Pool.QueryRow(ctx, query, id).Scan(
		&joined.ID,
		&joined.CompCode,
		&joined.Amt,
		&joined.Paid,
		&joined.AddDate,
		&joined.PaidDate,
		&joined.Company.Code,
		&joined.Company.Name,
		&joined.Company.Description,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, invoiceNotFound(id)
		}
		return nil, fmt.Errorf("failed to find invoice by id %d: %w", id, err)
	}

	invoice := mapping.ToDomainInvoiceWithCompany(joined)
	return &invoice, nil
}

// CreateInvoice inserts a new invoice and returns the stored row.
func (r *PgxInvoiceRepository) CreateInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error) {
	modelInvoice := mapping.ToModelInvoice(invoice)

	query := `
		INSERT INTO invoices (comp_code, amt, paid, add_date, paid_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, comp_code, amt, paid, add_date, paid_date;
	`
	created, err := scanInvoice(r.Pool.QueryRow(ctx, query,
		modelInvoice.CompCode,
		modelInvoice.Amt,
		modelInvoice.Paid,
		modelInvoice.AddDate,
		modelInvoice.PaidDate,
	))
	if err != nil {
		return nil, translateWriteError(err, "insert")
	}

	domainInvoice := mapping.ToDomainInvoice(created)
	return &domainInvoice, nil
}

// UpdateInvoice changes the amount only; a nil amount leaves the row as is.
func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, id int64, update domain.InvoiceUpdate) (*domain.Invoice, error) {
	query := `
		UPDATE invoices
		SET amt = COALESCE($1, amt)
		WHERE id = $2
		RETURNING id, comp_code, amt, paid, add_date, paid_date;
	`
	updated, err := scanInvoice(r.Pool.QueryRow(ctx, query, update.Amt, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, invoiceNotFound(id)
		}
		return nil, translateWriteError(err, "update")
	}

	domainInvoice := mapping.ToDomainInvoice(updated)
	return &domainInvoice, nil
}

// DeleteInvoice removes an invoice by id.
func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, id int64) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM invoices WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete invoice %d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return invoiceNotFound(id)
	}
	return nil
}
