package pgsql

import (
	portsrepo "github.com/SscSPs/invoicing_api/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CompanyRepo: newPgxCompanyRepository(dbPool),
		InvoiceRepo: newPgxInvoiceRepository(dbPool),
	}
}
