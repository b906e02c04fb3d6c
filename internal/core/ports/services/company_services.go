package services

import (
	"context"

	"github.com/SscSPs/invoicing_api/internal/core/domain"
	"github.com/SscSPs/invoicing_api/internal/dto"
)

// CompanyReaderSvc defines read operations for company data
type CompanyReaderSvc interface {
	// ListCompanies retrieves all companies.
	ListCompanies(ctx context.Context) ([]domain.Company, error)

	// GetCompanyByCode retrieves a company and its invoice ids.
	GetCompanyByCode(ctx context.Context, code string) (*domain.Company, error)
}

// CompanyWriterSvc defines write operations for company data
type CompanyWriterSvc interface {
	// CreateCompany persists a new company.
	CreateCompany(ctx context.Context, req dto.CreateCompanyRequest) (*domain.Company, error)

	// UpdateCompany changes the name and description of an existing company.
	UpdateCompany(ctx context.Context, code string, req dto.UpdateCompanyRequest) (*domain.Company, error)

	// DeleteCompany removes a company and returns what was deleted.
	DeleteCompany(ctx context.Context, code string) (*domain.Company, error)
}

// CompanySvcFacade combines all company-related service interfaces
type CompanySvcFacade interface {
	CompanyReaderSvc
	CompanyWriterSvc
}
