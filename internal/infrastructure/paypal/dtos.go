package paypal

import "github.com/teamarena/paypal-gateway/internal/application"

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// createOrderRequest is the Orders v2 create payload: capture intent, a
// single purchase unit and the redirect application context.
type createOrderRequest struct {
	Intent             string             `json:"intent"`
	PurchaseUnits      []purchaseUnit     `json:"purchase_units"`
	ApplicationContext applicationContext `json:"application_context"`
}

type purchaseUnit struct {
	Amount      amount `json:"amount"`
	Description string `json:"description,omitempty"`
}

type amount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type applicationContext struct {
	ReturnURL          string `json:"return_url"`
	CancelURL          string `json:"cancel_url"`
	ShippingPreference string `json:"shipping_preference"`
	UserAction         string `json:"user_action"`
}

type orderResponse struct {
	ID     string             `json:"id"`
	Status string             `json:"status"`
	Links  []application.Link `json:"links"`
}

type captureResponse struct {
	Status string `json:"status"`
}
