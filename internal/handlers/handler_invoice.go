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

// invoiceHandler handles HTTP requests related to invoices.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

// newInvoiceHandler creates a new invoiceHandler.
func newInvoiceHandler(is portssvc.InvoiceSvcFacade) *invoiceHandler {
	return &invoiceHandler{
		invoiceService: is,
	}
}

// registerInvoiceRoutes registers routes related to invoices.
func registerInvoiceRoutes(r gin.IRouter, invoiceService portssvc.InvoiceSvcFacade) {
	h := newInvoiceHandler(invoiceService)

	invoices := r.Group("/invoices")
	{
		invoices.GET("", h.listInvoices)
		invoices.POST("", h.createInvoice)
		invoices.GET("/:id", h.getInvoice)
		invoices.PUT("/:id", h.updateInvoice)
		invoices.DELETE("/:id", h.deleteInvoice)
	}
}

// listInvoices godoc
// @Summary List invoices
// @Description Retrieves the id and company code of every invoice
// @Tags invoices
// @Produce json
// @Success 200 {object} dto.ListInvoicesResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	invoices, err := h.invoiceService.ListInvoices(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListInvoicesResponse(invoices))
}

// getInvoice godoc
// @Summary Get an invoice
// @Description Retrieves an invoice with its owning company embedded
// @Tags invoices
// @Produce json
// @Param id path int true "Invoice ID"
// @Success 200 {object} dto.InvoiceDetailEnvelope
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 404 {object} dto.ErrorResponse "Invoice not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /invoices/{id} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	id, err := invoiceIDParam(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	invoice, err := h.invoiceService.GetInvoiceByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.InvoiceDetailEnvelope{Invoice: dto.ToInvoiceDetailResponse(invoice)})
}

// createInvoice godoc
// @Summary Create an invoice
// @Description Adds an invoice. comp_code, amt, paid and add_date are required; paid invoices also need paid_date.
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body dto.CreateInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.InvoiceEnvelope
// @Failure 400 {object} dto.ErrorResponse "Missing arguments or paid without paid_date"
// @Failure 500 {object} dto.ErrorResponse
// @Router /invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateInvoiceRequest
	if err := bindJSON(c, &req, dto.MsgMissingInvoiceFields); err != nil {
		_ = c.Error(err)
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	logger.Info("Invoice created successfully", slog.Int64("invoice_id", invoice.ID))
	c.JSON(http.StatusCreated, dto.InvoiceEnvelope{Invoice: dto.ToInvoiceResponse(invoice)})
}

// updateInvoice godoc
// @Summary Update an invoice amount
// @Description Changes amt only. Every other field in the body is ignored.
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path int true "Invoice ID"
// @Param invoice body dto.UpdateInvoiceRequest true "New amount"
// @Success 200 {object} dto.InvoiceEnvelope
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Invoice not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /invoices/{id} [put]
func (h *invoiceHandler) updateInvoice(c *gin.Context) {
	id, err := invoiceIDParam(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req dto.UpdateInvoiceRequest
	if err := bindJSON(c, &req, ""); err != nil {
		_ = c.Error(err)
		return
	}

	invoice, err := h.invoiceService.UpdateInvoice(c.Request.Context(), id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.InvoiceEnvelope{Invoice: dto.ToInvoiceResponse(invoice)})
}

// deleteInvoice godoc
// @Summary Delete an invoice
// @Description Removes an invoice by id
// @Tags invoices
// @Produce json
// @Param id path int true "Invoice ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid id"
// @Failure 404 {object} dto.ErrorResponse "Invoice not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /invoices/{id} [delete]
func (h *invoiceHandler) deleteInvoice(c *gin.Context) {
	id, err := invoiceIDParam(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: fmt.Sprintf("Invoice %d deleted.", id)})
}
