package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/teamarena/paypal-gateway/internal/application"
	"github.com/teamarena/paypal-gateway/internal/config"
)

const (
	sandboxBaseURL = "https://api-m.sandbox.paypal.com"
	liveBaseURL    = "https://api-m.paypal.com"
)

type Client struct {
	baseURL    string
	clientID   string
	secret     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient builds a processor client bound to the environment selected by
// the configuration. The endpoint choice is made here, once, never per
// sub-call.
func NewClient(cfg config.PayPalConfig, logger *slog.Logger) *Client {
	baseURL := liveBaseURL
	if cfg.Env == "sandbox" {
		baseURL = sandboxBaseURL
	}
	return &Client{
		baseURL:  baseURL,
		clientID: cfg.ClientID,
		secret:   cfg.Secret,
		httpClient: &http.Client{
			Timeout: cfg.ConnTimeout,
		},
		logger: logger,
	}
}

// GetAccessToken exchanges the credential pair for a bearer token via the
// client-credentials grant. The token is environment-scoped and is fetched
// fresh for every incoming request.
func (c *Client) GetAccessToken(ctx context.Context) (string, error) {
	url := fmt.Sprintf("%s/v1/oauth2/token", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader("grant_type=client_credentials"))
	if err != nil {
		return "", fmt.Errorf("error creating request: %w", err)
	}
	req.SetBasicAuth(c.clientID, c.secret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("token request failed",
			"status", resp.StatusCode,
			"body", string(body),
		)
		return "", newAPIError(resp.StatusCode, "token request failed", body)
	}

	var tokenResp tokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil || tokenResp.AccessToken == "" {
		c.logger.Error("token response missing access_token",
			"status", resp.StatusCode,
			"body", string(body),
		)
		return "", newAPIError(resp.StatusCode, "token response missing access_token", body)
	}

	return tokenResp.AccessToken, nil
}

// CreateOrder creates a capture-intent order with a single purchase unit.
// Shipping is disabled and the payer is sent straight to payment.
func (c *Client) CreateOrder(ctx context.Context, token, value, description string, urls application.RedirectURLs) (*application.RemoteOrder, error) {
	url := fmt.Sprintf("%s/v2/checkout/orders", c.baseURL)

	orderReq := createOrderRequest{
		Intent: "CAPTURE",
		PurchaseUnits: []purchaseUnit{
			{
				Amount: amount{
					CurrencyCode: "EUR",
					Value:        value,
				},
				Description: description,
			},
		},
		ApplicationContext: applicationContext{
			ReturnURL:          urls.ReturnURL,
			CancelURL:          urls.CancelURL,
			ShippingPreference: "NO_SHIPPING",
			UserAction:         "PAY_NOW",
		},
	}

	status, body, err := c.sendJSON(ctx, url, token, orderReq)
	if err != nil {
		return nil, err
	}

	if status < 200 || status >= 300 {
		c.logger.Error("order creation failed",
			"status", status,
			"body", string(body),
		)
		return nil, newAPIError(status, "order creation failed", body)
	}

	var orderResp orderResponse
	if err := json.Unmarshal(body, &orderResp); err != nil || orderResp.ID == "" {
		c.logger.Error("order response missing id",
			"status", status,
			"body", string(body),
		)
		return nil, newAPIError(status, "order response missing id", body)
	}

	return &application.RemoteOrder{
		ID:     orderResp.ID,
		Status: orderResp.Status,
		Links:  orderResp.Links,
	}, nil
}

// CaptureOrder settles a previously approved order. The raw payload is
// returned untouched so the endpoint can pass it through to the client.
func (c *Client) CaptureOrder(ctx context.Context, token, orderID string) (*application.CaptureResult, error) {
	url := fmt.Sprintf("%s/v2/checkout/orders/%s/capture", c.baseURL, orderID)

	status, body, err := c.sendJSON(ctx, url, token, nil)
	if err != nil {
		return nil, err
	}

	if status < 200 || status >= 300 {
		c.logger.Error("capture failed",
			"order_id", orderID,
			"status", status,
			"body", string(body),
		)
		return nil, newAPIError(status, "capture failed", body)
	}

	var captureResp captureResponse
	// tolerate a non-JSON success body; the raw payload still goes back
	_ = json.Unmarshal(body, &captureResp)

	return &application.CaptureResult{
		Status: captureResp.Status,
		Raw:    normalizeRaw(body),
	}, nil
}

// normalizeRaw makes a passthrough payload safe to re-serialize: an empty
// body becomes JSON null and a non-JSON body is wrapped as a JSON string,
// so the endpoint can always embed the result in its response envelope.
func normalizeRaw(body []byte) json.RawMessage {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return json.RawMessage("null")
	}
	if json.Valid(trimmed) {
		return json.RawMessage(trimmed)
	}
	quoted, err := json.Marshal(string(trimmed))
	if err != nil {
		return json.RawMessage("null")
	}
	return json.RawMessage(quoted)
}

func (c *Client) sendJSON(ctx context.Context, url, token string, reqBody any) (int, []byte, error) {
	var bodyReader io.Reader
	if reqBody != nil {
		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			return 0, nil, fmt.Errorf("error marshalling json: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	} else {
		bodyReader = strings.NewReader("{}")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bodyReader)
	if err != nil {
		return 0, nil, fmt.Errorf("error creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, body, nil
}

// newAPIError decodes the processor's structured error body when present.
// Non-JSON or empty bodies degrade to the fallback message.
func newAPIError(status int, fallback string, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: status,
		Message:    fallback,
		Body:       string(body),
	}
	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		if errResp.Message != "" {
			apiErr.Message = errResp.Message
		} else if errResp.Name != "" {
			apiErr.Message = errResp.Name
		}
		apiErr.DebugID = errResp.DebugID
		apiErr.Details = errResp.Details
	}
	return apiErr
}
