package application

import (
	"context"
	"encoding/json"
)

// Link is a HATEOAS link returned by the processor on a created order.
type Link struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
}

// RemoteOrder is the processor-side record of an intended payment. It is
// owned by the processor; this service only reads it within one request.
type RemoteOrder struct {
	ID     string
	Status string
	Links  []Link
}

// CaptureResult carries the processor-reported settlement status together
// with the raw payload, which is passed through to the client untouched.
type CaptureResult struct {
	Status string
	Raw    json.RawMessage
}

// RedirectURLs are the approval-flow callback URLs for one order.
type RedirectURLs struct {
	ReturnURL string
	CancelURL string
}

// ProcessorClient is the port for the external payment processor. A token
// is fetched fresh per incoming request and used exactly once for the
// downstream call that follows it.
type ProcessorClient interface {
	GetAccessToken(ctx context.Context) (string, error)
	CreateOrder(ctx context.Context, token, value, description string, urls RedirectURLs) (*RemoteOrder, error)
	CaptureOrder(ctx context.Context, token, orderID string) (*CaptureResult, error)
}
