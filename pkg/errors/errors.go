package errors

import (
	"errors"
	"fmt"
	"net/http"
)

type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code string, message string, status int, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

func NotFound(resource string, err error) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
		Status:  http.StatusNotFound,
		Err:     err,
	}
}

func BadRequest(message string, err error) *AppError {
	return &AppError{
		Code:    "BAD_REQUEST",
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

func Unauthorized(message string, err error) *AppError {
	return &AppError{
		Code:    "UNAUTHORIZED",
		Message: message,
		Status:  http.StatusUnauthorized,
		Err:     err,
	}
}

func Forbidden(message string, err error) *AppError {
	return &AppError{
		Code:    "FORBIDDEN",
		Message: message,
		Status:  http.StatusForbidden,
		Err:     err,
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: message,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// NotAvailable reports a status precondition violation, e.g. buying an item
// that is already sold or delisting one that is not live.
func NotAvailable(message string, err error) *AppError {
	return &AppError{
		Code:    "NOT_AVAILABLE",
		Message: message,
		Status:  http.StatusConflict,
		Err:     err,
	}
}

func SelfPurchase() *AppError {
	return &AppError{
		Code:    "SELF_PURCHASE",
		Message: "You cannot buy your own item",
		Status:  http.StatusBadRequest,
		Err:     nil,
	}
}

func NotOwner(message string) *AppError {
	return &AppError{
		Code:    "NOT_OWNER",
		Message: message,
		Status:  http.StatusForbidden,
		Err:     nil,
	}
}

func ResolutionUnavailable(message string, err error) *AppError {
	return &AppError{
		Code:    "RESOLUTION_UNAVAILABLE",
		Message: message,
		Status:  http.StatusServiceUnavailable,
		Err:     err,
	}
}

// SyncFailure means an item mutation landed but the per-user reference lists
// could not be updated. Callers are expected to compensate the mutation.
func SyncFailure(message string, err error) *AppError {
	return &AppError{
		Code:    "SYNC_FAILURE",
		Message: message,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

func Is(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
