package dto

import (
	"github.com/SscSPs/invoicing_api/internal/apperrors"
	"github.com/SscSPs/invoicing_api/internal/core/domain"
)

// MsgMissingCompanyFields is returned when a create request lacks a required field.
const MsgMissingCompanyFields = "Missing parameters. Request body must include code, name, and description"

// CreateCompanyRequest defines the data needed to create a new company.
// All three keys must be sent. Empty strings are accepted, and description may be null.
type CreateCompanyRequest struct {
	Code        Optional[string] `json:"code" swaggertype:"string"`
	Name        Optional[string] `json:"name" swaggertype:"string"`
	Description Optional[string] `json:"description" swaggertype:"string"`
}

// Validate reports a validation AppError when a key is absent, or when code or name is null.
func (r CreateCompanyRequest) Validate() error {
	if !r.Code.Set || !r.Name.Set || !r.Description.Set {
		return apperrors.NewValidationError(MsgMissingCompanyFields)
	}
	if r.Code.Value == nil || r.Name.Value == nil {
		return apperrors.NewValidationError(MsgMissingCompanyFields)
	}
	return nil
}

// UpdateCompanyRequest defines the fields allowed when updating a company.
// The code comes from the path and can never change.
type UpdateCompanyRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// CompanySummaryResponse is a company as it appears in listings.
type CompanySummaryResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CompanyResponse is the public view of a company.
type CompanyResponse struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// CompanyDetailResponse is a company with the ids of its invoices.
type CompanyDetailResponse struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Invoices    []int64 `json:"invoices"`
}

// ListCompaniesResponse wraps the list of companies.
type ListCompaniesResponse struct {
	Companies []CompanySummaryResponse `json:"companies"`
}

// CompanyEnvelope wraps a single company.
type CompanyEnvelope struct {
	Company CompanyResponse `json:"company"`
}

// CompanyDetailEnvelope wraps a single company with its invoice ids.
type CompanyDetailEnvelope struct {
	Company CompanyDetailResponse `json:"company"`
}

// ToCompanyResponse converts a domain.Company to CompanyResponse DTO
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
	}
}

// ToCompanyDetailResponse converts a domain.Company to CompanyDetailResponse DTO.
// Invoices is always a JSON array, never null.
func ToCompanyDetailResponse(c *domain.Company) CompanyDetailResponse {
	invoices := c.InvoiceIDs
	if invoices == nil {
		invoices = []int64{}
	}
	return CompanyDetailResponse{
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
		Invoices:    invoices,
	}
}

// ToListCompaniesResponse converts a slice of domain.Company to ListCompaniesResponse DTO
func ToListCompaniesResponse(companies []domain.Company) ListCompaniesResponse {
	res := make([]CompanySummaryResponse, len(companies))
	for i, c := range companies {
		res[i] = CompanySummaryResponse{Code: c.Code, Name: c.Name}
	}
	return ListCompaniesResponse{Companies: res}
}
