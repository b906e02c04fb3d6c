package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/invoicing_api/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found app error", apperrors.NewNotFoundError("Company with code x not found"), http.StatusNotFound},
		{"validation app error", apperrors.NewValidationError("bad"), http.StatusBadRequest},
		{"duplicate app error", apperrors.NewDuplicateError("dup"), http.StatusConflict},
		{"wrapped app error", fmt.Errorf("service: %w", apperrors.NewNotFoundError("gone")), http.StatusNotFound},
		{"bare sentinel", fmt.Errorf("repo: %w", apperrors.ErrNotFound), http.StatusNotFound},
		{"bare validation sentinel", apperrors.ErrValidation, http.StatusBadRequest},
		{"unknown error", errors.New("connection refused"), http.StatusInternalServerError},
		{"app error without status", apperrors.NewAppError(0, "odd", nil), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperrors.StatusOf(tt.err))
		})
	}
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "Paid invoices must include a paid_date",
		apperrors.MessageOf(apperrors.NewValidationError("Paid invoices must include a paid_date")))
	assert.Equal(t, "Internal Server Error",
		apperrors.MessageOf(errors.New("pq: relation does not exist")))
	assert.Equal(t, "Internal Server Error",
		apperrors.MessageOf(apperrors.NewAppError(http.StatusInternalServerError, "failed to begin transaction", errors.New("boom"))))
	assert.Equal(t, "resource not found", apperrors.MessageOf(apperrors.ErrNotFound))
}

func TestAppErrorUnwrap(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", apperrors.NewDuplicateError("Company with code 'acme' already exists"))

	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)

	var appErr *apperrors.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Company with code 'acme' already exists", appErr.Error())
}
