package repositories

import (
	"context"

	"github.com/SscSPs/invoicing_api/internal/core/domain"
)

// CompanyReader defines read operations for company data
type CompanyReader interface {
	// ListCompanies retrieves every company (code and name only).
	ListCompanies(ctx context.Context) ([]domain.Company, error)

	// FindCompanyByCode retrieves a company together with the ids of its invoices.
	// Returns apperrors.ErrNotFound when no company has the code.
	FindCompanyByCode(ctx context.Context, code string) (*domain.Company, error)
}

// CompanyWriter defines write operations for company data
type CompanyWriter interface {
	// CreateCompany inserts a new company and returns the stored row.
	CreateCompany(ctx context.Context, company domain.Company) (*domain.Company, error)

	// UpdateCompany changes name and/or description. Returns apperrors.ErrNotFound when no row matched.
	UpdateCompany(ctx context.Context, code string, update domain.CompanyUpdate) (*domain.Company, error)

	// DeleteCompany removes a company and returns the deleted row.
	DeleteCompany(ctx context.Context, code string) (*domain.Company, error)
}

// CompanyRepositoryFacade combines all company-related repository interfaces
type CompanyRepositoryFacade interface {
	CompanyReader
	CompanyWriter
}
