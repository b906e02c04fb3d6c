package services

import (
	portsrepo "github.com/SscSPs/invoicing_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/invoicing_api/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Company: NewCompanyService(repos.CompanyRepo),
		Invoice: NewInvoiceService(repos.InvoiceRepo),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CompanySvcFacade = (*companyService)(nil)
	_ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)
)
