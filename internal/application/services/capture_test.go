package services_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamarena/paypal-gateway/internal/application"
	"github.com/teamarena/paypal-gateway/internal/application/services"
	"github.com/teamarena/paypal-gateway/internal/infrastructure/paypal"
)

func newCaptureService(client *mockProcessorClient) *services.CaptureService {
	return services.NewCaptureService(testPayPalConfig(), client, slog.Default())
}

func TestCapture_Completed(t *testing.T) {
	raw := json.RawMessage(`{"status":"COMPLETED","id":"O1"}`)
	client := &mockProcessorClient{
		getAccessTokenFn: func(ctx context.Context) (string, error) {
			return "tok-1", nil
		},
		captureOrderFn: func(ctx context.Context, token, orderID string) (*application.CaptureResult, error) {
			assert.Equal(t, "tok-1", token)
			assert.Equal(t, "O1", orderID)
			return &application.CaptureResult{Status: "COMPLETED", Raw: raw}, nil
		},
	}
	svc := newCaptureService(client)

	result, err := svc.Capture(context.Background(), services.CaptureCommand{OrderID: "O1"})
	require.NoError(t, err)
	assert.Equal(t, raw, result.Raw)
}

func TestCapture_StatusCaseInsensitive(t *testing.T) {
	client := &mockProcessorClient{
		getAccessTokenFn: func(ctx context.Context) (string, error) {
			return "tok-1", nil
		},
		captureOrderFn: func(ctx context.Context, token, orderID string) (*application.CaptureResult, error) {
			return &application.CaptureResult{Status: "completed", Raw: json.RawMessage(`{}`)}, nil
		},
	}
	svc := newCaptureService(client)

	_, err := svc.Capture(context.Background(), services.CaptureCommand{OrderID: "O1"})
	require.NoError(t, err)
}

func TestCapture_PendingIsSettlementIncomplete(t *testing.T) {
	raw := json.RawMessage(`{"status":"PENDING","id":"O1"}`)
	client := &mockProcessorClient{
		getAccessTokenFn: func(ctx context.Context) (string, error) {
			return "tok-1", nil
		},
		captureOrderFn: func(ctx context.Context, token, orderID string) (*application.CaptureResult, error) {
			return &application.CaptureResult{Status: "PENDING", Raw: raw}, nil
		},
	}
	svc := newCaptureService(client)

	result, err := svc.Capture(context.Background(), services.CaptureCommand{OrderID: "O1"})
	require.Error(t, err)

	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeSettlementIncomplete, svcErr.Code)
	assert.Contains(t, svcErr.Message, "PENDING")

	// the raw payload is still handed back for client-side diagnostics
	require.NotNil(t, result)
	assert.Equal(t, raw, result.Raw)
}

func TestCapture_MissingOrderID_NoOutboundCalls(t *testing.T) {
	client := &mockProcessorClient{}
	svc := newCaptureService(client)

	_, err := svc.Capture(context.Background(), services.CaptureCommand{OrderID: "  "})
	require.Error(t, err)

	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeValidation, svcErr.Code)
	assert.Equal(t, "orderID obbligatorio", svcErr.Message)
	assert.Zero(t, client.tokenCalls)
	assert.Zero(t, client.captureCalls)
}

func TestCapture_MissingCredentials(t *testing.T) {
	cfg := testPayPalConfig()
	cfg.Secret = ""
	client := &mockProcessorClient{}
	svc := services.NewCaptureService(cfg, client, slog.Default())

	_, err := svc.Capture(context.Background(), services.CaptureCommand{OrderID: "O1"})
	require.Error(t, err)

	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeConfiguration, svcErr.Code)
}

func TestCapture_UpstreamErrorCarriesProcessorDiagnostics(t *testing.T) {
	apiErr := &paypal.APIError{
		StatusCode: 422,
		Message:    "ORDER_NOT_APPROVED",
		DebugID:    "debug-123",
		Details:    []paypal.ErrorDetail{{Issue: "ORDER_NOT_APPROVED"}},
	}
	client := &mockProcessorClient{
		getAccessTokenFn: func(ctx context.Context) (string, error) {
			return "tok-1", nil
		},
		captureOrderFn: func(ctx context.Context, token, orderID string) (*application.CaptureResult, error) {
			return nil, apiErr
		},
	}
	svc := newCaptureService(client)

	_, err := svc.Capture(context.Background(), services.CaptureCommand{OrderID: "O1"})
	require.Error(t, err)

	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeUpstreamCapture, svcErr.Code)

	unwrapped, ok := paypal.IsAPIError(svcErr.Err)
	require.True(t, ok)
	assert.Equal(t, "debug-123", unwrapped.DebugID)
}
