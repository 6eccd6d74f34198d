package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code   string
		status int
	}{
		{"INVALID_REQUEST", http.StatusBadRequest},
		{"INVALID_QUANTITY", http.StatusBadRequest},
		{"INVALID_THRESHOLD", http.StatusBadRequest},
		{"EMPTY_INGREDIENTS", http.StatusBadRequest},
		{"RESTAURANT_REQUIRED", http.StatusBadRequest},
		{"INSUFFICIENT_STOCK", http.StatusBadRequest},
		{"PRODUCT_NOT_IN_INVENTORY", http.StatusBadRequest},

		{"INVALID_CREDENTIALS", http.StatusUnauthorized},
		{"UNAUTHORIZED", http.StatusUnauthorized},
		{"TOKEN_EXPIRED", http.StatusUnauthorized},

		{"FORBIDDEN", http.StatusForbidden},

		{"NOT_FOUND", http.StatusNotFound},
		{"RECIPE_NOT_FOUND", http.StatusNotFound},
		{"PACKAGING_NOT_FOUND", http.StatusNotFound},
		{"USER_NOT_FOUND", http.StatusNotFound},

		{"EMAIL_TAKEN", http.StatusConflict},
		{"NAME_TAKEN", http.StatusConflict},
		{"EAN_TAKEN", http.StatusConflict},
		{"CATEGORY_EXISTS", http.StatusConflict},
		{"PRODUCT_EXISTS", http.StatusConflict},
		{"RESTAURANT_IN_USE", http.StatusConflict},
		{"PRODUCT_IN_USE", http.StatusConflict},

		{"INTERNAL_ERROR", http.StatusInternalServerError},
		{"SOMETHING_UNEXPECTED", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.status, GetHTTPStatus(tt.code))
		})
	}
}
