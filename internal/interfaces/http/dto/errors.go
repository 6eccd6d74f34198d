package dto

import (
	"net/http"
	"strings"
)

// General error codes used by the HTTP layer itself
const (
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeInvalidJSON  = "INVALID_JSON"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeConflict     = "CONFLICT"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// errorCodeStatus maps domain error codes to HTTP status codes. Codes
// not listed here fall back to the suffix rules in GetHTTPStatus.
var errorCodeStatus = map[string]int{
	// Malformed or rejected input -> 400
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidJSON:  http.StatusBadRequest,
	"INVALID_REQUEST":   http.StatusBadRequest,
	"EMPTY_INGREDIENTS": http.StatusBadRequest,
	"VALIDATION_ERROR":  http.StatusBadRequest,

	// Stock validation failures reject the batch as a client error: the
	// request asked for more than the restaurant holds
	"INSUFFICIENT_STOCK":       http.StatusBadRequest,
	"PRODUCT_NOT_IN_INVENTORY": http.StatusBadRequest,

	// Authentication
	ErrCodeUnauthorized:   http.StatusUnauthorized,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"TOKEN_EXPIRED":       http.StatusUnauthorized,
	"INVALID_TOKEN":       http.StatusUnauthorized,
	"TOKEN_REVOKED":       http.StatusUnauthorized,

	// Authorization
	ErrCodeForbidden: http.StatusForbidden,

	// Missing resources
	ErrCodeNotFound: http.StatusNotFound,

	// Conflicts
	ErrCodeConflict:        http.StatusConflict,
	"ALREADY_EXISTS":       http.StatusConflict,
	"CONCURRENCY_CONFLICT": http.StatusConflict,
	"RESTAURANT_IN_USE":    http.StatusConflict,
	"PRODUCT_IN_USE":       http.StatusConflict,

	// Server faults
	ErrCodeInternal: http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status for a domain error code. Codes
// follow naming conventions: *_NOT_FOUND is 404, *_TAKEN and *_EXISTS
// are 409, INVALID_* and *_REQUIRED are 400. Unknown codes answer 500 so
// unexpected errors never masquerade as client mistakes.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeStatus[code]; ok {
		return status
	}

	switch {
	case strings.HasSuffix(code, "_NOT_FOUND"):
		return http.StatusNotFound
	case strings.HasSuffix(code, "_TAKEN"), strings.HasSuffix(code, "_EXISTS"), strings.HasSuffix(code, "_IN_USE"):
		return http.StatusConflict
	case strings.HasPrefix(code, "INVALID_"), strings.HasSuffix(code, "_REQUIRED"):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
