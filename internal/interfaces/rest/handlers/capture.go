package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/teamarena/paypal-gateway/internal/application"
	"github.com/teamarena/paypal-gateway/internal/application/services"
	"github.com/teamarena/paypal-gateway/internal/infrastructure/paypal"
	"github.com/teamarena/paypal-gateway/internal/interfaces/rest"
)

type CaptureOrderRequest struct {
	OrderID string `json:"orderID"`
}

type CaptureOrderResponse struct {
	Capture json.RawMessage `json:"capture"`
}

// settlementFailedResponse carries the raw capture payload alongside the
// error so the storefront can show the payer what the processor reported.
type settlementFailedResponse struct {
	Error   string          `json:"error"`
	Capture json.RawMessage `json:"capture"`
}

type upstreamErrorResponse struct {
	Error  string           `json:"error"`
	PayPal *processorErrors `json:"paypal,omitempty"`
}

// processorErrors is the support-triage slice of a processor failure.
type processorErrors struct {
	Status  int                  `json:"status"`
	Details []paypal.ErrorDetail `json:"details,omitempty"`
	DebugID string               `json:"debugId,omitempty"`
}

func (h *Handlers) HandleCaptureOrder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		rest.WriteError(w, application.NewMethodNotAllowedError(), h.logger)
		return
	}

	var req CaptureOrderRequest
	decodeLoose(r, &req)

	result, err := h.captureService.Capture(r.Context(), services.CaptureCommand{OrderID: req.OrderID})
	if err != nil {
		h.writeCaptureError(w, result, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, CaptureOrderResponse{Capture: result.Raw})
}

func (h *Handlers) writeCaptureError(w http.ResponseWriter, result *application.CaptureResult, err error) {
	svcErr, ok := application.IsServiceError(err)
	if !ok {
		rest.WriteError(w, err, h.logger)
		return
	}

	switch svcErr.Code {
	case application.ErrCodeSettlementIncomplete:
		// the capture call itself succeeded; hand the payload back, but
		// never let an unserializable payload break the envelope
		raw := json.RawMessage("null")
		if result != nil && json.Valid(result.Raw) {
			raw = result.Raw
		}
		rest.WriteJSON(w, svcErr.HTTPStatus, settlementFailedResponse{
			Error:   svcErr.Message,
			Capture: raw,
		})
	case application.ErrCodeUpstreamCapture:
		resp := upstreamErrorResponse{Error: svcErr.Message}
		if apiErr, ok := paypal.IsAPIError(svcErr.Err); ok {
			resp.PayPal = &processorErrors{
				Status:  apiErr.StatusCode,
				Details: apiErr.Details,
				DebugID: apiErr.DebugID,
			}
		}
		h.logger.Error("capture failed",
			"code", svcErr.Code,
			"error", svcErr.Error(),
		)
		rest.WriteJSON(w, svcErr.HTTPStatus, resp)
	default:
		rest.WriteError(w, err, h.logger)
	}
}
