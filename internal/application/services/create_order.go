package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/teamarena/paypal-gateway/internal/application"
	"github.com/teamarena/paypal-gateway/internal/config"
	"github.com/teamarena/paypal-gateway/internal/domain"
)

const maxTeamNameLength = 40

type CreateOrderCommand struct {
	TeamName  string
	PackageID string
	SiteBase  string
}

// CreateOrderResult is what the storefront needs to send the payer into
// the approval flow.
type CreateOrderResult struct {
	OrderID    string
	ApproveURL string
	Env        string
	Links      []application.Link
}

type CreateOrderService struct {
	paypalCfg config.PayPalConfig
	corsCfg   config.CORSConfig
	client    application.ProcessorClient
	logger    *slog.Logger
}

func NewCreateOrderService(
	paypalCfg config.PayPalConfig,
	corsCfg config.CORSConfig,
	client application.ProcessorClient,
	logger *slog.Logger,
) *CreateOrderService {
	return &CreateOrderService{
		paypalCfg: paypalCfg,
		corsCfg:   corsCfg,
		client:    client,
		logger:    logger,
	}
}

// Create validates the command, resolves the package price and runs the
// token + order-creation pair against the processor. origin is the
// request's Origin header, used as a site-base fallback. No remote call is
// made until validation has passed.
func (s *CreateOrderService) Create(ctx context.Context, cmd CreateOrderCommand, origin string) (*CreateOrderResult, error) {
	teamName := strings.TrimSpace(cmd.TeamName)
	if teamName == "" {
		return nil, validationError(domain.NewMissingRequiredFieldError("teamName"))
	}
	if utf8.RuneCountInString(teamName) > maxTeamNameLength {
		return nil, validationError(domain.NewFieldTooLongError("teamName", maxTeamNameLength))
	}

	price, err := domain.ResolvePrice(cmd.PackageID)
	if err != nil {
		return nil, validationError(err)
	}

	value, err := domain.FormatAmount(price.Amount)
	if err != nil {
		return nil, validationError(err)
	}

	urls := BuildRedirectURLs(selectSiteBase(s.corsCfg, cmd.SiteBase, origin))

	if !s.paypalCfg.HasCredentials() {
		return nil, application.NewConfigurationError()
	}

	token, err := s.client.GetAccessToken(ctx)
	if err != nil {
		return nil, application.NewUpstreamAuthError(err)
	}

	description := fmt.Sprintf("Pacchetto da %s - Team: %s", domain.PackageTier(cmd.PackageID), teamName)

	order, err := s.client.CreateOrder(ctx, token, value, description, urls)
	if err != nil {
		return nil, application.NewUpstreamOrderError(err)
	}

	s.logger.Info("order created",
		"order_id", order.ID,
		"package_id", cmd.PackageID,
		"amount", value,
	)

	return &CreateOrderResult{
		OrderID:    order.ID,
		ApproveURL: s.approveURL(order),
		Env:        s.paypalCfg.Env,
		Links:      order.Links,
	}, nil
}

// approveURL prefers the processor-provided "approve" link. When the
// processor omits it, a checkout URL is synthesized from the environment
// and order id.
func (s *CreateOrderService) approveURL(order *application.RemoteOrder) string {
	for _, link := range order.Links {
		if link.Rel == "approve" {
			return link.Href
		}
	}
	host := "www.paypal.com"
	if s.paypalCfg.Env == "sandbox" {
		host = "www.sandbox.paypal.com"
	}
	return fmt.Sprintf("https://%s/checkoutnow?token=%s", host, order.ID)
}

// validationError translates a domain error into the 400 the client sees,
// keeping the domain message as the client-facing text.
func validationError(err error) *application.ServiceError {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return application.NewValidationError(domainErr.Message)
	}
	return application.NewValidationError(err.Error())
}
