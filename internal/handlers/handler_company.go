package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/invoicing_api/internal/core/ports/services"
	"github.com/SscSPs/invoicing_api/internal/dto"
	"github.com/SscSPs/invoicing_api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// companyHandler handles HTTP requests related to companies.
type companyHandler struct {
	companyService portssvc.CompanySvcFacade
}

// newCompanyHandler creates a new companyHandler.
func newCompanyHandler(cs portssvc.CompanySvcFacade) *companyHandler {
	return &companyHandler{
		companyService: cs,
	}
}

// registerCompanyRoutes registers routes related to companies.
func registerCompanyRoutes(r gin.IRouter, companyService portssvc.CompanySvcFacade) {
	h := newCompanyHandler(companyService)

	companies := r.Group("/companies")
	{
		companies.GET("", h.listCompanies)
		companies.POST("", h.createCompany)
		companies.GET("/:code", h.getCompany)
		companies.PUT("/:code", h.updateCompany)
		companies.DELETE("/:code", h.deleteCompany)
	}
}

// listCompanies godoc
// @Summary List companies
// @Description Retrieves the code and name of every company
// @Tags companies
// @Produce json
// @Success 200 {object} dto.ListCompaniesResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies [get]
func (h *companyHandler) listCompanies(c *gin.Context) {
	companies, err := h.companyService.ListCompanies(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListCompaniesResponse(companies))
}

// getCompany godoc
// @Summary Get a company
// @Description Retrieves a company together with the ids of its invoices
// @Tags companies
// @Produce json
// @Param code path string true "Company code"
// @Success 200 {object} dto.CompanyDetailEnvelope
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{code} [get]
func (h *companyHandler) getCompany(c *gin.Context) {
	code := c.Param("code")

	company, err := h.companyService.GetCompanyByCode(c.Request.Context(), code)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.CompanyDetailEnvelope{Company: dto.ToCompanyDetailResponse(company)})
}

// createCompany godoc
// @Summary Create a company
// @Description Adds a new company. code, name and description are all required; description may be null.
// @Tags companies
// @Accept json
// @Produce json
// @Param company body dto.CreateCompanyRequest true "Company details"
// @Success 201 {object} dto.CompanyEnvelope
// @Failure 400 {object} dto.ErrorResponse "Missing parameters"
// @Failure 409 {object} dto.ErrorResponse "Company already exists"
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies [post]
func (h *companyHandler) createCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCompanyRequest
	if err := bindJSON(c, &req, dto.MsgMissingCompanyFields); err != nil {
		_ = c.Error(err)
		return
	}
	if err := req.Validate(); err != nil {
		_ = c.Error(err)
		return
	}

	company, err := h.companyService.CreateCompany(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	logger.Info("Company created successfully", slog.String("code", company.Code))
	c.JSON(http.StatusCreated, dto.CompanyEnvelope{Company: dto.ToCompanyResponse(company)})
}

// updateCompany godoc
// @Summary Update a company
// @Description Changes the name and/or description of a company. The code cannot change.
// @Tags companies
// @Accept json
// @Produce json
// @Param code path string true "Company code"
// @Param company body dto.UpdateCompanyRequest true "Fields to update"
// @Success 200 {object} dto.CompanyEnvelope
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{code} [put]
func (h *companyHandler) updateCompany(c *gin.Context) {
	code := c.Param("code")

	var req dto.UpdateCompanyRequest
	if err := bindJSON(c, &req, ""); err != nil {
		_ = c.Error(err)
		return
	}

	company, err := h.companyService.UpdateCompany(c.Request.Context(), code, req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.CompanyEnvelope{Company: dto.ToCompanyResponse(company)})
}

// deleteCompany godoc
// @Summary Delete a company
// @Description Removes a company by code
// @Tags companies
// @Produce json
// @Param code path string true "Company code"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{code} [delete]
func (h *companyHandler) deleteCompany(c *gin.Context) {
	code := c.Param("code")

	company, err := h.companyService.DeleteCompany(c.Request.Context(), code)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: fmt.Sprintf("Company %s (%s) deleted", company.Name, company.Code),
	})
}
