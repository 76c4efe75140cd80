package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maestroworks/maestro/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation error", services.NewValidationError("role", "unknown role"), http.StatusBadRequest},
		{"not found", services.ErrNotFound, http.StatusNotFound},
		{"lease expired", services.ErrLeaseExpired, http.StatusGone},
		{"contract violation", fmt.Errorf("%w: missing field summary", services.ErrContractViolation), http.StatusUnprocessableEntity},
		{"not cancellable", services.ErrNotCancellable, http.StatusConflict},
		{"already exists", services.ErrAlreadyExists, http.StatusConflict},
		{"wrapped not found", fmt.Errorf("loading job: %w", services.ErrNotFound), http.StatusNotFound},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := mapServiceError(tt.err)
			assert.Equal(t, tt.want, he.Code)
		})
	}
}
