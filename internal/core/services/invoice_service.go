package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/invoicing_api/internal/core/domain"
	portsrepo "github.com/SscSPs/invoicing_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/invoicing_api/internal/core/ports/services"
	"github.com/SscSPs/invoicing_api/internal/dto"
)

type invoiceService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryFacade) portssvc.InvoiceSvcFacade {
	return &invoiceService{invoiceRepo: invoiceRepo}
}

func (s *invoiceService) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	invoices, err := s.invoiceRepo.ListInvoices(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices")
		return nil, fmt.Errorf("failed to list invoices in service: %w", err)
	}
	s.LogDebug(ctx, "Listed invoices", slog.Int("count", len(invoices)))
	if invoices == nil {
		return []domain.Invoice{}, nil
	}
	return invoices, nil
}

func (s *invoiceService) GetInvoiceByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice by id in service: %w", err)
	}
	return invoice, nil
}

// CreateInvoice checks the required fields first and the paid/paid_date rule
// second. An unpaid invoice without paid_date is stored with a NULL paid_date.
func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var paidDate *time.Time
	if req.PaidDate != nil {
		t := req.PaidDate.Time
		paidDate = &t
	}

	invoice := domain.Invoice{
		CompCode: *req.CompCode,
		Amt:      *req.Amt,
		Paid:     *req.Paid,
		AddDate:  req.AddDate.Time,
		PaidDate: paidDate,
	}

	created, err := s.invoiceRepo.CreateInvoice(ctx, invoice)
	if err != nil {
		s.LogError(ctx, err, "Failed to create invoice", slog.String("comp_code", invoice.CompCode))
		return nil, fmt.Errorf("failed to create invoice in service: %w", err)
	}

	s.LogInfo(ctx, "Invoice created", slog.Int64("invoice_id", created.ID), slog.String("comp_code", created.CompCode))
	return created, nil
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, id int64, req dto.UpdateInvoiceRequest) (*domain.Invoice, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.invoiceRepo.UpdateInvoice(ctx, id, domain.InvoiceUpdate{Amt: req.Amt})
	if err != nil {
		return nil, fmt.Errorf("failed to update invoice in service: %w", err)
	}

	s.LogInfo(ctx, "Invoice updated", slog.Int64("invoice_id", id))
	return updated, nil
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, id int64) error {
	if err := s.invoiceRepo.DeleteInvoice(ctx, id); err != nil {
		return fmt.Errorf("failed to delete invoice in service: %w", err)
	}

	s.LogInfo(ctx, "Invoice deleted", slog.Int64("invoice_id", id))
	return nil
}
