package repositories

import (
	"context"

	"github.com/SscSPs/invoicing_api/internal/core/domain"
)

// InvoiceReader defines read operations for invoice data
type InvoiceReader interface {
	// ListInvoices retrieves every invoice (id and company code only).
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)

	// FindInvoiceByID retrieves an invoice joined with its owning company.
	FindInvoiceByID(ctx context.Context, id int64) (*domain.Invoice, error)
}

// InvoiceWriter defines write operations for invoice data
type InvoiceWriter interface {
	// CreateInvoice inserts a new invoice; the database assigns the id.
	CreateInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error)

	// UpdateInvoice changes the amount only and returns the full row.
	UpdateInvoice(ctx context.Context, id int64, update domain.InvoiceUpdate) (*domain.Invoice, error)

	// DeleteInvoice removes an invoice. Returns apperrors.ErrNotFound when no row matched.
	DeleteInvoice(ctx context.Context, id int64) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
