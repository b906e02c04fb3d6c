package handlers

import (
	"errors"
	"io"
	"log/slog"
	"strconv"

	"github.com/SscSPs/invoicing_api/internal/apperrors"
	"github.com/SscSPs/invoicing_api/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// MsgInvalidInvoiceID is returned when an :id path segment is not an integer.
const MsgInvalidInvoiceID = "Invoice id must be an integer"

// bindJSON decodes the request body into obj and runs its binding tags.
// Failed "required" checks and an empty body are reported with missingMsg;
// an empty missingMsg means the body is optional. Anything else is a malformed body.
func bindJSON(c *gin.Context, obj any, missingMsg string) error {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return nil
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Warn("Failed to bind JSON", slog.String("error", err.Error()))

	var verrs validator.ValidationErrors
	switch {
	case errors.Is(err, io.EOF) && missingMsg == "":
		return nil
	case errors.As(err, &verrs), errors.Is(err, io.EOF):
		return apperrors.NewValidationError(missingMsg)
	}
	return apperrors.NewValidationError("Invalid request format: " + err.Error())
}

// invoiceIDParam parses the :id path parameter.
func invoiceIDParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewValidationError(MsgInvalidInvoiceID)
	}
	return id, nil
}
