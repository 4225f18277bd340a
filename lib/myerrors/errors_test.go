package myerrors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorStatusCodes(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"invalid input", NewInvalidInputError(fmt.Errorf("bad")), http.StatusBadRequest},
		{"invalid input formatted", NewInvalidInputErrorf("bad %s", "field"), http.StatusBadRequest},
		{"not found", NewNotFoundError(fmt.Errorf("missing")), http.StatusNotFound},
		{"authentication", NewAuthenticationError(fmt.Errorf("denied")), http.StatusForbidden},
		{"internal", NewInternalError(fmt.Errorf("boom")), http.StatusInternalServerError},
		{"not implemented", NewNotImplementedError(fmt.Errorf("todo")), http.StatusNotImplemented},
		{"plain error", fmt.Errorf("anything"), http.StatusInternalServerError},
		{"nil error", nil, http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedStatus, GetHTTPStatus(tc.err))
		})
	}
}

func TestErrorMessageRetained(t *testing.T) {
	err := NewNotFoundError(fmt.Errorf("product with id 123 not found"))
	assert.Contains(t, err.Error(), "product with id 123 not found")
}
