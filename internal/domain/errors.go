package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business logic error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeInvalidPackage       = "INVALID_PACKAGE"
	ErrCodeInvalidAmount        = "INVALID_AMOUNT"
	ErrCodeMissingRequiredField = "MISSING_REQUIRED_FIELD"
	ErrCodeFieldTooLong         = "FIELD_TOO_LONG"
)

func NewInvalidPackageError(packageID string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidPackage,
		Message: "packageId non valido. Valori ammessi: 1, 3, 5 (o pack_1, pack_3, pack_5)",
		Err:     fmt.Errorf("unknown package %q", packageID),
	}
}

func NewInvalidAmountError(amount float64) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidAmount,
		Message: fmt.Sprintf("importo non valido: %v", amount),
	}
}

func NewMissingRequiredFieldError(field string) *DomainError {
	return &DomainError{
		Code:    ErrCodeMissingRequiredField,
		Message: fmt.Sprintf("%s obbligatorio", field),
	}
}

func NewFieldTooLongError(field string, max int) *DomainError {
	return &DomainError{
		Code:    ErrCodeFieldTooLong,
		Message: fmt.Sprintf("%s troppo lungo (max %d caratteri)", field, max),
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}
