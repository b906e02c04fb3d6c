package services_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/SscSPs/invoicing_api/internal/apperrors"
	"github.com/SscSPs/invoicing_api/internal/core/domain"
	portssvc "github.com/SscSPs/invoicing_api/internal/core/ports/services"
	"github.com/SscSPs/invoicing_api/internal/core/services"
	"github.com/SscSPs/invoicing_api/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func strPtr(s string) *string { return &s }

type CompanyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCompanyRepository
	service  portssvc.CompanySvcFacade
}

func (suite *CompanyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCompanyRepository)
	suite.service = services.NewCompanyService(suite.mockRepo)
}

func (suite *CompanyServiceTestSuite) TestListCompanies_Success() {
	ctx := context.Background()
	expected := []domain.Company{{Code: "apple", Name: "Apple"}, {Code: "ibm", Name: "IBM"}}
	suite.mockRepo.On("ListCompanies", ctx).Return(expected, nil).Once()

	companies, err := suite.service.ListCompanies(ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, companies)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CompanyServiceTestSuite) TestListCompanies_EmptyIsNotNil() {
	ctx := context.Background()
	suite.mockRepo.On("ListCompanies", ctx).Return(nil, nil).Once()

	companies, err := suite.service.ListCompanies(ctx)

	suite.Require().NoError(err)
	suite.NotNil(companies)
	suite.Empty(companies)
}

func (suite *CompanyServiceTestSuite) TestListCompanies_RepoError() {
	ctx := context.Background()
	suite.mockRepo.On("ListCompanies", ctx).Return(nil, assert.AnError).Once()

	companies, err := suite.service.ListCompanies(ctx)

	suite.Require().Error(err)
	suite.Nil(companies)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *CompanyServiceTestSuite) TestGetCompanyByCode_Success() {
	ctx := context.Background()
	expected := &domain.Company{Code: "test", Name: "Test Company", Description: strPtr("Foo"), InvoiceIDs: []int64{1, 2}}
	suite.mockRepo.On("FindCompanyByCode", ctx, "test").Return(expected, nil).Once()

	company, err := suite.service.GetCompanyByCode(ctx, "test")

	suite.Require().NoError(err)
	suite.Equal(expected, company)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CompanyServiceTestSuite) TestGetCompanyByCode_NoInvoices() {
	ctx := context.Background()
	suite.mockRepo.On("FindCompanyByCode", ctx, "lonely").Return(&domain.Company{Code: "lonely"}, nil).Once()

	company, err := suite.service.GetCompanyByCode(ctx, "lonely")

	suite.Require().NoError(err)
	suite.NotNil(company.InvoiceIDs)
	suite.Empty(company.InvoiceIDs)
}

func (suite *CompanyServiceTestSuite) TestGetCompanyByCode_NotFound() {
	ctx := context.Background()
	notFound := apperrors.NewNotFoundError("Company with code nope not found")
	suite.mockRepo.On("FindCompanyByCode", ctx, "nope").Return(nil, notFound).Once()

	company, err := suite.service.GetCompanyByCode(ctx, "nope")

	suite.Require().Error(err)
	suite.Nil(company)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Equal(http.StatusNotFound, apperrors.StatusOf(err))
	suite.Equal("Company with code nope not found", apperrors.MessageOf(err))
}

func (suite *CompanyServiceTestSuite) TestCreateCompany_Success() {
	ctx := context.Background()
	req := dto.CreateCompanyRequest{Code: dto.Some("post"), Name: dto.Some("Post Company"), Description: dto.Some("")}
	want := domain.Company{Code: "post", Name: "Post Company", Description: strPtr("")}
	suite.mockRepo.On("CreateCompany", ctx, want).Return(&want, nil).Once()

	company, err := suite.service.CreateCompany(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(&want, company)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CompanyServiceTestSuite) TestCreateCompany_NullDescription() {
	ctx := context.Background()
	req := dto.CreateCompanyRequest{Code: dto.Some("n"), Name: dto.Some("N"), Description: dto.Null[string]()}
	want := domain.Company{Code: "n", Name: "N"}
	suite.mockRepo.On("CreateCompany", ctx, want).Return(&want, nil).Once()

	company, err := suite.service.CreateCompany(ctx, req)

	suite.Require().NoError(err)
	suite.Nil(company.Description)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CompanyServiceTestSuite) TestCreateCompany_MissingField() {
	ctx := context.Background()
	req := dto.CreateCompanyRequest{Code: dto.Some("post"), Name: dto.Some("Post Company")}

	company, err := suite.service.CreateCompany(ctx, req)

	suite.Require().Error(err)
	suite.Nil(company)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal(dto.MsgMissingCompanyFields, apperrors.MessageOf(err))
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateCompany", mock.Anything, mock.Anything)
}

func (suite *CompanyServiceTestSuite) TestCreateCompany_Duplicate() {
	ctx := context.Background()
	req := dto.CreateCompanyRequest{Code: dto.Some("test"), Name: dto.Some("Test"), Description: dto.Some("dup")}
	dup := apperrors.NewDuplicateError("Company with code 'test' already exists")
	suite.mockRepo.On("CreateCompany", ctx, mock.AnythingOfType("domain.Company")).Return(nil, dup).Once()

	company, err := suite.service.CreateCompany(ctx, req)

	suite.Require().Error(err)
	suite.Nil(company)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Equal(http.StatusConflict, apperrors.StatusOf(err))
}

func (suite *CompanyServiceTestSuite) TestUpdateCompany_PassesOnlyProvidedFields() {
	ctx := context.Background()
	req := dto.UpdateCompanyRequest{Name: strPtr("Renamed")}
	updated := &domain.Company{Code: "test", Name: "Renamed", Description: strPtr("Foo")}
	suite.mockRepo.On("UpdateCompany", ctx, "test", mock.MatchedBy(func(u domain.CompanyUpdate) bool {
		return u.Name != nil && *u.Name == "Renamed" && u.Description == nil
	})).Return(updated, nil).Once()

	company, err := suite.service.UpdateCompany(ctx, "test", req)

	suite.Require().NoError(err)
	suite.Equal(updated, company)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CompanyServiceTestSuite) TestUpdateCompany_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("UpdateCompany", ctx, "nope", mock.Anything).
		Return(nil, apperrors.NewNotFoundError("Company with code nope not found")).Once()

	company, err := suite.service.UpdateCompany(ctx, "nope", dto.UpdateCompanyRequest{Name: strPtr("x")})

	suite.Require().Error(err)
	suite.Nil(company)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CompanyServiceTestSuite) TestDeleteCompany_Success() {
	ctx := context.Background()
	deleted := &domain.Company{Code: "test", Name: "Test Company"}
	suite.mockRepo.On("DeleteCompany", ctx, "test").Return(deleted, nil).Once()

	company, err := suite.service.DeleteCompany(ctx, "test")

	suite.Require().NoError(err)
	suite.Equal(deleted, company)
}

func (suite *CompanyServiceTestSuite) TestDeleteCompany_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("DeleteCompany", ctx, "nope").
		Return(nil, apperrors.NewNotFoundError("Company with code nope not found")).Once()

	company, err := suite.service.DeleteCompany(ctx, "nope")

	suite.Require().Error(err)
	suite.Nil(company)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestCompanyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CompanyServiceTestSuite))
}
