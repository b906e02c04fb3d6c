package mapping

import (
	"github.com/SscSPs/invoicing_api/internal/core/domain"
	"github.com/SscSPs/invoicing_api/internal/models"
)

// ToModelCompany converts a domain Company to a model Company
func ToModelCompany(d domain.Company) models.Company {
	return models.Company{
		Code:        d.Code,
		Name:        d.Name,
		Description: d.Description,
	}
}

// ToDomainCompany converts a model Company to a domain Company
func ToDomainCompany(m models.Company) domain.Company {
	return domain.Company{
		Code:        m.Code,
		Name:        m.Name,
		Description: m.Description,
	}
}

// ToDomainCompanySlice converts a slice of model Companies to a slice of domain Companies
func ToDomainCompanySlice(ms []models.Company) []domain.Company {
	ds := make([]domain.Company, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCompany(m)
	}
	return ds
}
