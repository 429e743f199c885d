package paypal

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamarena/paypal-gateway/internal/application"
	"github.com/teamarena/paypal-gateway/internal/config"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient(config.PayPalConfig{
		Env:         "sandbox",
		ClientID:    "client-id",
		Secret:      "client-secret",
		ConnTimeout: 5 * time.Second,
	}, slog.Default())
	c.baseURL = srv.URL
	return c
}

func TestNewClient_EnvironmentSelectsEndpoint(t *testing.T) {
	sandbox := NewClient(config.PayPalConfig{Env: "sandbox"}, slog.Default())
	assert.Equal(t, sandboxBaseURL, sandbox.baseURL)

	live := NewClient(config.PayPalConfig{Env: "live"}, slog.Default())
	assert.Equal(t, liveBaseURL, live.baseURL)
}

func TestGetAccessToken_Success(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/oauth2/token", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "client-id", user)
		assert.Equal(t, "client-secret", pass)

		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "grant_type=client_credentials", string(body))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"tok-1","token_type":"Bearer","expires_in":32400}`))
	})

	token, err := c.GetAccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
}

func TestGetAccessToken_Unauthorized(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid_client"}`))
	})

	_, err := c.GetAccessToken(context.Background())
	require.Error(t, err)

	apiErr, ok := IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestGetAccessToken_MissingTokenField(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token_type":"Bearer"}`))
	})

	_, err := c.GetAccessToken(context.Background())
	require.Error(t, err)
}

func TestCreateOrder_Success(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/checkout/orders", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))

		var req createOrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "CAPTURE", req.Intent)
		require.Len(t, req.PurchaseUnits, 1)
		assert.Equal(t, "EUR", req.PurchaseUnits[0].Amount.CurrencyCode)
		assert.Equal(t, "20.00", req.PurchaseUnits[0].Amount.Value)
		assert.Equal(t, "NO_SHIPPING", req.ApplicationContext.ShippingPreference)
		assert.Equal(t, "PAY_NOW", req.ApplicationContext.UserAction)
		assert.Equal(t, "https://www.teamarena.it/pagamento.html?esito=ok", req.ApplicationContext.ReturnURL)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{
			"id": "O1",
			"status": "CREATED",
			"links": [
				{"rel": "self", "href": "https://x/self"},
				{"rel": "approve", "href": "https://x/approve"}
			]
		}`))
	})

	order, err := c.CreateOrder(context.Background(), "tok-1", "20.00", "Pacchetto da 3 - Team: Red Team", application.RedirectURLs{
		ReturnURL: "https://www.teamarena.it/pagamento.html?esito=ok",
		CancelURL: "https://www.teamarena.it/pagamento.html?esito=annullato",
	})
	require.NoError(t, err)

	assert.Equal(t, "O1", order.ID)
	assert.Equal(t, "CREATED", order.Status)
	require.Len(t, order.Links, 2)
	assert.Equal(t, application.Link{Rel: "approve", Href: "https://x/approve"}, order.Links[1])
}

func TestCreateOrder_MissingID(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"CREATED"}`))
	})

	_, err := c.CreateOrder(context.Background(), "tok-1", "10.00", "desc", application.RedirectURLs{})
	require.Error(t, err)
}

func TestCreateOrder_RemoteFailure(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"name":"UNPROCESSABLE_ENTITY","message":"The requested action could not be performed.","debug_id":"d-1"}`))
	})

	_, err := c.CreateOrder(context.Background(), "tok-1", "10.00", "desc", application.RedirectURLs{})
	require.Error(t, err)

	apiErr, ok := IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "d-1", apiErr.DebugID)
}

func TestCaptureOrder_Success(t *testing.T) {
	rawBody := `{"id":"O1","status":"COMPLETED","payer":{"email_address":"payer@example.com"}}`
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/checkout/orders/O1/capture", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(rawBody))
	})

	result, err := c.CaptureOrder(context.Background(), "tok-1", "O1")
	require.NoError(t, err)

	assert.Equal(t, "COMPLETED", result.Status)
	assert.JSONEq(t, rawBody, string(result.Raw))
}

func TestCaptureOrder_FailureParsesDiagnostics(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{
			"name": "UNPROCESSABLE_ENTITY",
			"message": "The requested action could not be performed.",
			"debug_id": "debug-42",
			"details": [{"issue": "ORDER_NOT_APPROVED", "description": "Payer has not yet approved the Order."}]
		}`))
	})

	_, err := c.CaptureOrder(context.Background(), "tok-1", "O1")
	require.Error(t, err)

	apiErr, ok := IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "debug-42", apiErr.DebugID)
	require.Len(t, apiErr.Details, 1)
	assert.Equal(t, "ORDER_NOT_APPROVED", apiErr.Details[0].Issue)
}

func TestCaptureOrder_EmptySuccessBody(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	result, err := c.CaptureOrder(context.Background(), "tok-1", "O1")
	require.NoError(t, err)

	// the passthrough payload must stay embeddable in a JSON envelope
	assert.True(t, json.Valid(result.Raw))
	assert.Equal(t, json.RawMessage("null"), result.Raw)
}

func TestCaptureOrder_NonJSONSuccessBody(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	result, err := c.CaptureOrder(context.Background(), "tok-1", "O1")
	require.NoError(t, err)

	assert.True(t, json.Valid(result.Raw))
	assert.Equal(t, json.RawMessage(`"OK"`), result.Raw)
}

func TestCaptureOrder_NonJSONErrorBody(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream unavailable"))
	})

	_, err := c.CaptureOrder(context.Background(), "tok-1", "O1")
	require.Error(t, err)

	apiErr, ok := IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "upstream unavailable", apiErr.Body)
}
