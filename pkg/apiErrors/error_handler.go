package apiErrors

import (
	"encoding/json"
	"net/http"
)

// API error codes grouped by concern.
const (
	// Auth errors (1000-1999)
	ErrInvalidToken          = "AUTH_001" // Missing or malformed token
	ErrExpiredToken          = "AUTH_002" // Token expired
	ErrInsufficientPrivilege = "AUTH_003" // Role not allowed on this route

	// Validation errors (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Malformed request
	ErrMissingRequiredData = "VAL_002" // Required field absent
	ErrInvalidFormat       = "VAL_003" // Field present but unparseable

	// Server errors (5000-5999)
	ErrInternalServer    = "SRV_001" // Unclassified internal failure
	ErrDatabaseOperation = "SRV_002" // Database operation failed

	// External integration errors (6000-6999)
	ErrUpstreamService = "EXT_001" // Third-party API returned non-2xx
	ErrUpstreamTimeout = "EXT_002" // Third-party call exceeded its budget
)

var httpStatusMap = map[string]int{
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrUpstreamService:       http.StatusBadGateway,
	ErrUpstreamTimeout:       http.StatusGatewayTimeout,
}

// APIError is the standardized error payload.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError writes the standardized error payload to the response.
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError wraps a Go error in an APIError with the given code.
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Unknown error",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
