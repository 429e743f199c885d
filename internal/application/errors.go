package application

import (
	"errors"
	"fmt"
	"net/http"
)

// APPLICATION-LEVEL ERRORS (Orchestration)

type ServiceError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeValidation           = "VALIDATION_ERROR"
	ErrCodeMethodNotAllowed     = "METHOD_NOT_ALLOWED"
	ErrCodeConfiguration        = "CONFIGURATION_ERROR"
	ErrCodeUpstreamAuth         = "UPSTREAM_AUTH_ERROR"
	ErrCodeUpstreamOrder        = "UPSTREAM_ORDER_ERROR"
	ErrCodeUpstreamCapture      = "UPSTREAM_CAPTURE_ERROR"
	ErrCodeSettlementIncomplete = "SETTLEMENT_INCOMPLETE"
	ErrCodeInternal             = "INTERNAL_ERROR"
)

func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInternal,
		Message:    "Errore interno",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func NewValidationError(message string) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeValidation,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

func NewMethodNotAllowedError() *ServiceError {
	return &ServiceError{
		Code:       ErrCodeMethodNotAllowed,
		Message:    "Metodo non consentito",
		HTTPStatus: http.StatusMethodNotAllowed,
	}
}

// NewConfigurationError marks missing server-side secrets. It maps to 500
// and is kept distinct from client input errors so clients never retry
// with different input hoping to fix a server misconfiguration.
func NewConfigurationError() *ServiceError {
	return &ServiceError{
		Code:       ErrCodeConfiguration,
		Message:    "Configurazione PayPal mancante",
		HTTPStatus: http.StatusInternalServerError,
	}
}

func NewUpstreamAuthError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeUpstreamAuth,
		Message:    "Errore di autenticazione verso PayPal",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func NewUpstreamOrderError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeUpstreamOrder,
		Message:    "Errore durante la creazione dell'ordine",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func NewUpstreamCaptureError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeUpstreamCapture,
		Message:    "Errore durante la cattura del pagamento",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// NewSettlementIncompleteError reports a capture call that succeeded as an
// API call but whose processor-reported status is not terminal. This is a
// 400 so the client knows the payment must not be treated as final.
func NewSettlementIncompleteError(status string) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeSettlementIncomplete,
		Message:    fmt.Sprintf("Pagamento non completato (stato: %s)", status),
		HTTPStatus: http.StatusBadRequest,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}
