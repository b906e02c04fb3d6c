package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/invoicing_api/internal/core/domain"
	portsrepo "github.com/SscSPs/invoicing_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/invoicing_api/internal/core/ports/services"
	"github.com/SscSPs/invoicing_api/internal/dto"
)

type companyService struct {
	BaseService
	companyRepo portsrepo.CompanyRepositoryFacade
}

// NewCompanyService creates a new company service
func NewCompanyService(companyRepo portsrepo.CompanyRepositoryFacade) portssvc.CompanySvcFacade {
	return &companyService{companyRepo: companyRepo}
}

func (s *companyService) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	companies, err := s.companyRepo.ListCompanies(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list companies")
		return nil, fmt.Errorf("failed to list companies in service: %w", err)
	}
	s.LogDebug(ctx, "Listed companies", slog.Int("count", len(companies)))
	// Return empty slice if no companies found, not nil
	if companies == nil {
		return []domain.Company{}, nil
	}
	return companies, nil
}

func (s *companyService) GetCompanyByCode(ctx context.Context, code string) (*domain.Company, error) {
	company, err := s.companyRepo.FindCompanyByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get company by code in service: %w", err)
	}
	if company.InvoiceIDs == nil {
		company.InvoiceIDs = []int64{}
	}
	return company, nil
}

func (s *companyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest) (*domain.Company, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	company := domain.Company{
		Code:        *req.Code.Value,
		Name:        *req.Name.Value,
		Description: req.Description.Value,
	}

	created, err := s.companyRepo.CreateCompany(ctx, company)
	if err != nil {
		s.LogError(ctx, err, "Failed to create company", slog.String("code", company.Code))
		return nil, fmt.Errorf("failed to create company in service: %w", err)
	}

	s.LogInfo(ctx, "Company created", slog.String("code", created.Code))
	return created, nil
}

func (s *companyService) UpdateCompany(ctx context.Context, code string, req dto.UpdateCompanyRequest) (*domain.Company, error) {
	update := domain.CompanyUpdate{
		Name:        req.Name,
		Description: req.Description,
	}

	updated, err := s.companyRepo.UpdateCompany(ctx, code, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update company in service: %w", err)
	}

	s.LogInfo(ctx, "Company updated", slog.String("code", code))
	return updated, nil
}

func (s *companyService) DeleteCompany(ctx context.Context, code string) (*domain.Company, error) {
	deleted, err := s.companyRepo.DeleteCompany(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to delete company in service: %w", err)
	}

	s.LogInfo(ctx, "Company deleted", slog.String("code", code))
	return deleted, nil
}
