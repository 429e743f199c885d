package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/teamarena/paypal-gateway/internal/application"
)

// ErrorResponse is the uniform error envelope every endpoint returns.
// Endpoint-specific extras (capture payload, processor diagnostics) are
// written by the handlers themselves.
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteJSON writes v as the JSON response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// WriteError maps application errors to HTTP responses. Upstream and
// internal failures are logged with their cause before the client-safe
// message goes out.
func WriteError(w http.ResponseWriter, err error, logger *slog.Logger) {
	svcErr, ok := application.IsServiceError(err)
	if !ok {
		svcErr = application.NewInternalError(err)
	}

	if svcErr.HTTPStatus >= http.StatusInternalServerError {
		logger.Error("request failed",
			"code", svcErr.Code,
			"error", svcErr.Error(),
		)
	}

	WriteJSON(w, svcErr.HTTPStatus, ErrorResponse{Error: svcErr.Message})
}
