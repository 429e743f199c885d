package handlers

import (
	"net/http"

	"github.com/teamarena/paypal-gateway/internal/application"
	"github.com/teamarena/paypal-gateway/internal/application/services"
	"github.com/teamarena/paypal-gateway/internal/interfaces/rest"
)

type CreateOrderRequest struct {
	TeamName  string `json:"teamName"`
	PackageID string `json:"packageId"`
	SiteBase  string `json:"siteBase"`
}

type CreateOrderResponse struct {
	OrderID    string             `json:"orderID"`
	ApproveURL string             `json:"approveUrl"`
	Env        string             `json:"env"`
	Links      []application.Link `json:"links"`
}

func (h *Handlers) HandleCreateOrder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		rest.WriteError(w, application.NewMethodNotAllowedError(), h.logger)
		return
	}

	var req CreateOrderRequest
	decodeLoose(r, &req)

	cmd := services.CreateOrderCommand{
		TeamName:  req.TeamName,
		PackageID: req.PackageID,
		SiteBase:  req.SiteBase,
	}

	result, err := h.createService.Create(r.Context(), cmd, r.Header.Get("Origin"))
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	links := result.Links
	if links == nil {
		links = []application.Link{}
	}

	rest.WriteJSON(w, http.StatusOK, CreateOrderResponse{
		OrderID:    result.OrderID,
		ApproveURL: result.ApproveURL,
		Env:        result.Env,
		Links:      links,
	})
}
