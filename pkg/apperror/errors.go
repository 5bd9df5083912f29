package apperror

import (
	"errors"
	"net/http"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
	cause   error
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause, if any.
func (e *AppError) Unwrap() error {
	return e.cause
}

// Common errors
var (
	ErrNotFound       = &AppError{Code: http.StatusNotFound, Message: "Resource not found"}
	ErrBadRequest     = &AppError{Code: http.StatusBadRequest, Message: "Bad request"}
	ErrInternalServer = &AppError{Code: http.StatusInternalServerError, Message: "Internal server error"}
	ErrConflict       = &AppError{Code: http.StatusConflict, Message: "Resource already exists"}
	ErrUnprocessable  = &AppError{Code: http.StatusUnprocessableEntity, Message: "Unprocessable entity"}
)

// Point-of-sale errors. Each rejected operation reports a distinguishable
// kind so the caller can choose the right recovery (retry, re-enter amount,
// back out) instead of guessing from a message string.
var (
	// ErrStockExceeded is the advisory rejection of a cart mutation that
	// would push a line past its stock ceiling; the cart keeps its last
	// valid state.
	ErrStockExceeded = &AppError{Code: http.StatusConflict, Message: "Requested quantity exceeds available stock"}

	// ErrEmptyCart rejects beginning checkout with no cart lines.
	ErrEmptyCart = &AppError{Code: http.StatusBadRequest, Message: "Cart is empty"}

	// ErrInvalidAmount rejects a cash tender that is not a positive number.
	ErrInvalidAmount = &AppError{Code: http.StatusBadRequest, Message: "Amount must be a positive number"}

	// ErrInsufficientAmount rejects a cash tender below the sale total.
	ErrInsufficientAmount = &AppError{Code: http.StatusBadRequest, Message: "Amount tendered is less than the total"}

	// ErrAlreadyInProgress indicates checkout was begun while a previous
	// checkout is still awaiting payment or committing.
	ErrAlreadyInProgress = &AppError{Code: http.StatusConflict, Message: "A checkout is already in progress"}

	// ErrProductInUse rejects deleting a product referenced by past sales.
	ErrProductInUse = &AppError{Code: http.StatusConflict, Message: "Product is referenced by past sales and cannot be deleted"}
)

// NewAppError creates a new application error
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(fieldErrors []FieldError) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: "Validation failed",
		Errors:  fieldErrors,
	}
}

// NewNotFoundError creates a not found error with a custom message
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: resource + " not found",
	}
}

// NewConflictError creates a conflict error with a custom message
func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// NewBadRequestError creates a bad request error with a custom message
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// NewCommitFailedError wraps the underlying cause of a failed checkout
// commit. The cart and stock are unchanged when this is returned.
func NewCommitFailedError(cause error) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Message: "Checkout commit failed: " + cause.Error(),
		cause:   cause,
	}
}

// IsCommitFailed reports whether err is a failed-commit error.
func IsCommitFailed(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.cause != nil
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}
