package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/teamarena/paypal-gateway/internal/application"
	"github.com/teamarena/paypal-gateway/internal/config"
	"github.com/teamarena/paypal-gateway/internal/domain"
)

// terminal settlement status the processor reports on a fully captured order
const statusCompleted = "COMPLETED"

type CaptureCommand struct {
	OrderID string
}

type CaptureService struct {
	paypalCfg config.PayPalConfig
	client    application.ProcessorClient
	logger    *slog.Logger
}

func NewCaptureService(
	paypalCfg config.PayPalConfig,
	client application.ProcessorClient,
	logger *slog.Logger,
) *CaptureService {
	return &CaptureService{
		paypalCfg: paypalCfg,
		client:    client,
		logger:    logger,
	}
}

// Capture runs the token + capture pair and verifies the settlement
// status. A capture whose status is not COMPLETED returns both the raw
// processor payload and a SETTLEMENT_INCOMPLETE error, so the endpoint can
// hand the payload to the client for diagnostics. Nothing is retried; a
// failed remote call is terminal for the request.
func (s *CaptureService) Capture(ctx context.Context, cmd CaptureCommand) (*application.CaptureResult, error) {
	if strings.TrimSpace(cmd.OrderID) == "" {
		return nil, validationError(domain.NewMissingRequiredFieldError("orderID"))
	}

	if !s.paypalCfg.HasCredentials() {
		return nil, application.NewConfigurationError()
	}

	token, err := s.client.GetAccessToken(ctx)
	if err != nil {
		return nil, application.NewUpstreamAuthError(err)
	}

	result, err := s.client.CaptureOrder(ctx, token, cmd.OrderID)
	if err != nil {
		return nil, application.NewUpstreamCaptureError(err)
	}

	if !strings.EqualFold(result.Status, statusCompleted) {
		s.logger.Warn("capture not completed",
			"order_id", cmd.OrderID,
			"status", result.Status,
		)
		return result, application.NewSettlementIncompleteError(result.Status)
	}

	return result, nil
}
