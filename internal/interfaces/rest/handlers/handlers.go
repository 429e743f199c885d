package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/teamarena/paypal-gateway/internal/application"
	"github.com/teamarena/paypal-gateway/internal/application/services"
)

// CreateOrderService is the slice of the create-order orchestration the
// handler needs.
type CreateOrderService interface {
	Create(ctx context.Context, cmd services.CreateOrderCommand, origin string) (*services.CreateOrderResult, error)
}

// CaptureService is the slice of the capture orchestration the handler needs.
type CaptureService interface {
	Capture(ctx context.Context, cmd services.CaptureCommand) (*application.CaptureResult, error)
}

type Handlers struct {
	createService  CreateOrderService
	captureService CaptureService
	logger         *slog.Logger
}

func NewHandlers(createService CreateOrderService, captureService CaptureService, logger *slog.Logger) *Handlers {
	return &Handlers{
		createService:  createService,
		captureService: captureService,
		logger:         logger,
	}
}

// Register mounts both endpoints on the mux. Preflight requests are
// short-circuited by the CORS middleware before reaching these routes.
func (h *Handlers) Register(mux *http.ServeMux) {
	mux.HandleFunc("/paypalCreateOrder", h.HandleCreateOrder)
	mux.HandleFunc("/paypalCaptureOrder", h.HandleCaptureOrder)
}
