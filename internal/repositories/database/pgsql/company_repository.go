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

type PgxCompanyRepository struct {
	BaseRepository
}

// newPgxCompanyRepository creates a new repository for company data.
func newPgxCompanyRepository(pool *pgxpool.Pool) portsrepo.CompanyRepositoryFacade {
	return &PgxCompanyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CompanyRepositoryFacade = (*PgxCompanyRepository)(nil)

func companyNotFound(code string) error {
	return apperrors.NewNotFoundError(fmt.Sprintf("Company with code %s not found", code))
}

// ListCompanies retrieves the code and name of every company.
func (r *PgxCompanyRepository) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	query := `
		SELECT code, name
		FROM companies
		ORDER BY code;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query companies: %w", err)
	}
	defer rows.Close()

	modelCompanies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Company, error) {
		var company models.Company
		err := row.Scan(&company.Code, &company.Name)
		return company, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect company rows: %w", err)
	}

	return mapping.ToDomainCompanySlice(modelCompanies), nil
}

// FindCompanyByCode retrieves a company and the ordered ids of its invoices in one query.
func (r *PgxCompanyRepository) FindCompanyByCode(ctx context.Context, code string) (*domain.Company, error) {
	query := `
		SELECT c.code, c.name, c.description,
		       COALESCE(array_agg(i.id ORDER BY i.id) FILTER (WHERE i.id IS NOT NULL), '{}') AS invoices
		FROM companies c
		LEFT JOIN invoices i ON i.comp_code = c.code
		WHERE c.code = $1
		GROUP BY c.code, c.name, c.description;
	`
	var modelCompany models.Company
	var invoiceIDs []int64
	err := r.Pool.QueryRow(ctx, query, code).Scan(
		&modelCompany.Code,
		&modelCompany.Name,
		&modelCompany.Description,
		&invoiceIDs,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, companyNotFound(code)
		}
		return nil, fmt.Errorf("failed to find company by code %s: %w", code, err)
	}

	company := mapping.ToDomainCompany(modelCompany)
	company.InvoiceIDs = invoiceIDs
	if company.InvoiceIDs == nil {
		company.InvoiceIDs = []int64{}
	}
	return &company, nil
}

// CreateCompany inserts a new company.
func (r *PgxCompanyRepository) CreateCompany(ctx context.Context, company domain.Company) (*domain.Company, error) {
	modelCompany := mapping.ToModelCompany(company)

	query := `
		INSERT INTO companies (code, name, description)
		VALUES ($1, $2, $3)
		RETURNING code, name, description;
	`
	var created models.Company
	err := r.Pool.QueryRow(ctx, query,
		modelCompany.Code,
		modelCompany.Name,
		modelCompany.Description,
	).Scan(&created.Code, &created.Name, &created.Description)
	if err != nil {
		if pgErr, ok := asPgError(err, pgUniqueViolation); ok {
			if pgErr.ConstraintName == companyNameConstraint {
				return nil, apperrors.NewDuplicateError(fmt.Sprintf("Company with name '%s' already exists", company.Name))
			}
			return nil, apperrors.NewDuplicateError(fmt.Sprintf("Company with code '%s' already exists", company.Code))
		}
		return nil, fmt.Errorf("failed to insert company %s: %w", company.Code, err)
	}

	domainCompany := mapping.ToDomainCompany(created)
	return &domainCompany, nil
}

// UpdateCompany changes name and/or description. Nil fields keep their stored value.
func (r *PgxCompanyRepository) UpdateCompany(ctx context.Context, code string, update domain.CompanyUpdate) (*domain.Company, error) {
	query := `
		UPDATE companies
		SET name = COALESCE($1, name),
		    description = COALESCE($2, description)
		WHERE code = $3
		RETURNING code, name, description;
	`
	var updated models.Company
	err := r.Pool.QueryRow(ctx, query, update.Name, update.Description, code).Scan(
		&updated.Code,
		&updated.Name,
		&updated.Description,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, companyNotFound(code)
		}
		if _, ok := asPgError(err, pgUniqueViolation); ok && update.Name != nil {
			return nil, apperrors.NewDuplicateError(fmt.Sprintf("Company with name '%s' already exists", *update.Name))
		}
		return nil, fmt.Errorf("failed to update company %s: %w", code, err)
	}

	domainCompany := mapping.ToDomainCompany(updated)
	return &domainCompany, nil
}

// DeleteCompany removes a company; its invoices go with it (ON DELETE CASCADE).
func (r *PgxCompanyRepository) DeleteCompany(ctx context.Context, code string) (*domain.Company, error) {
	query := `
		DELETE FROM companies
		WHERE code = $1
		RETURNING code, name;
	`
	var deleted models.Company
	err := r.Pool.QueryRow(ctx, query, code).Scan(&deleted.Code, &deleted.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, companyNotFound(code)
		}
		return nil, fmt.Errorf("failed to delete company %s: %w", code, err)
	}

	domainCompany := mapping.ToDomainCompany(deleted)
	return &domainCompany, nil
}
