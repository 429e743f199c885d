package services_test

import (
	"context"

	"github.com/teamarena/paypal-gateway/internal/application"
)

// mockProcessorClient implements application.ProcessorClient with
// pluggable behavior and call counters, so tests can assert that
// validation failures never reach the processor.
type mockProcessorClient struct {
	getAccessTokenFn func(ctx context.Context) (string, error)
	createOrderFn    func(ctx context.Context, token, value, description string, urls application.RedirectURLs) (*application.RemoteOrder, error)
	captureOrderFn   func(ctx context.Context, token, orderID string) (*application.CaptureResult, error)

	tokenCalls   int
	createCalls  int
	captureCalls int
}

func (m *mockProcessorClient) GetAccessToken(ctx context.Context) (string, error) {
	m.tokenCalls++
	return m.getAccessTokenFn(ctx)
}

func (m *mockProcessorClient) CreateOrder(ctx context.Context, token, value, description string, urls application.RedirectURLs) (*application.RemoteOrder, error) {
	m.createCalls++
	return m.createOrderFn(ctx, token, value, description, urls)
}

func (m *mockProcessorClient) CaptureOrder(ctx context.Context, token, orderID string) (*application.CaptureResult, error) {
	m.captureCalls++
	return m.captureOrderFn(ctx, token, orderID)
}
