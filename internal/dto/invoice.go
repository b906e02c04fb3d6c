package dto

import (
	"encoding/json"

	"github.com/SscSPs/invoicing_api/internal/apperrors"
	"github.com/SscSPs/invoicing_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	// MsgMissingInvoiceFields is returned when a create request lacks a required field.
	MsgMissingInvoiceFields = "Missing arguments. POST request body must include comp_code, amt, paid, and add_date"
	// MsgPaidWithoutPaidDate is returned when a paid invoice is created without a paid_date.
	MsgPaidWithoutPaidDate = "Paid invoices must include a paid_date"
	// MsgAmtPrecision is returned when amt carries more decimal places than the amt column stores.
	MsgAmtPrecision = "amt must have at most 2 decimal places"
)

// amtScale matches the NUMERIC(12, 2) amt column.
const amtScale = 2

func validateAmt(amt *decimal.Decimal) error {
	if amt != nil && !amt.Equal(amt.Round(amtScale)) {
		return apperrors.NewValidationError(MsgAmtPrecision)
	}
	return nil
}

// CreateInvoiceRequest defines the data needed to create a new invoice.
// paid_date is optional unless paid is true.
type CreateInvoiceRequest struct {
	CompCode *string          `json:"comp_code" binding:"required"`
	Amt      *decimal.Decimal `json:"amt" binding:"required"`
	Paid     *bool            `json:"paid" binding:"required"`
	AddDate  *Date            `json:"add_date" binding:"required"`
	PaidDate *Date            `json:"paid_date"`
}

// Validate applies the required-field check, then the paid/paid_date rule, then the amt scale.
func (r CreateInvoiceRequest) Validate() error {
	if r.CompCode == nil || r.Amt == nil || r.Paid == nil || r.AddDate == nil {
		return apperrors.NewValidationError(MsgMissingInvoiceFields)
	}
	if r.PaidDate == nil && *r.Paid {
		return apperrors.NewValidationError(MsgPaidWithoutPaidDate)
	}
	return validateAmt(r.Amt)
}

// UpdateInvoiceRequest defines the fields allowed when updating an invoice.
// Anything else in the body is ignored.
type UpdateInvoiceRequest struct {
	Amt *decimal.Decimal `json:"amt"`
}

// Validate rejects an amt the amt column would have to round. A missing amt is allowed.
func (r UpdateInvoiceRequest) Validate() error {
	return validateAmt(r.Amt)
}

// InvoiceSummaryResponse is an invoice as it appears in listings.
type InvoiceSummaryResponse struct {
	ID       int64  `json:"id"`
	CompCode string `json:"comp_code"`
}

// InvoiceResponse is a full invoice row.
type InvoiceResponse struct {
	ID       int64       `json:"id"`
	CompCode string      `json:"comp_code"`
	Amt      json.Number `json:"amt"`
	Paid     bool        `json:"paid"`
	AddDate  Date        `json:"add_date"`
	PaidDate *Date       `json:"paid_date"`
}

// InvoiceDetailResponse is an invoice with its owning company embedded.
type InvoiceDetailResponse struct {
	ID       int64           `json:"id"`
	Amt      json.Number     `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  Date            `json:"add_date"`
	PaidDate *Date           `json:"paid_date"`
	Company  CompanyResponse `json:"company"`
}

// ListInvoicesResponse wraps the list of invoices.
type ListInvoicesResponse struct {
	Invoices []InvoiceSummaryResponse `json:"invoices"`
}

// InvoiceEnvelope wraps a single invoice row.
type InvoiceEnvelope struct {
	Invoice InvoiceResponse `json:"invoice"`
}

// InvoiceDetailEnvelope wraps a single invoice with its company.
type InvoiceDetailEnvelope struct {
	Invoice InvoiceDetailResponse `json:"invoice"`
}

// amountJSON renders a decimal as a bare JSON number.
func amountJSON(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse DTO
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:       inv.ID,
		CompCode: inv.CompCode,
		Amt:      amountJSON(inv.Amt),
		Paid:     inv.Paid,
		AddDate:  NewDate(inv.AddDate),
		PaidDate: NewDatePtr(inv.PaidDate),
	}
}

// ToInvoiceDetailResponse converts a domain.Invoice joined with its company.
func ToInvoiceDetailResponse(inv *domain.Invoice) InvoiceDetailResponse {
	resp := InvoiceDetailResponse{
		ID:       inv.ID,
		Amt:      amountJSON(inv.Amt),
		Paid:     inv.Paid,
		AddDate:  NewDate(inv.AddDate),
		PaidDate: NewDatePtr(inv.PaidDate),
	}
	if inv.Company != nil {
		resp.Company = ToCompanyResponse(inv.Company)
	}
	return resp
}

// ToListInvoicesResponse converts a slice of domain.Invoice to ListInvoicesResponse DTO
func ToListInvoicesResponse(invoices []domain.Invoice) ListInvoicesResponse {
	res := make([]InvoiceSummaryResponse, len(invoices))
	for i, inv := range invoices {
		res[i] = InvoiceSummaryResponse{ID: inv.ID, CompCode: inv.CompCode}
	}
	return ListInvoicesResponse{Invoices: res}
}
