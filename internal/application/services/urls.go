package services

import (
	"strings"

	"github.com/teamarena/paypal-gateway/internal/application"
	"github.com/teamarena/paypal-gateway/internal/config"
)

// BuildRedirectURLs derives the approval-flow callback URLs from a site
// base. Trailing slashes are stripped so a base with or without one yields
// the same URLs. Both point at the same landing page, distinguished by the
// esito query parameter.
func BuildRedirectURLs(siteBase string) application.RedirectURLs {
	base := strings.TrimRight(strings.TrimSpace(siteBase), "/")
	return application.RedirectURLs{
		ReturnURL: base + "/pagamento.html?esito=ok",
		CancelURL: base + "/pagamento.html?esito=annullato",
	}
}

// selectSiteBase picks the site base for the redirect URLs: the client's
// explicit value if it passes the origin allow-list, else the request's
// Origin header if it passes, else the configured default site.
func selectSiteBase(cors config.CORSConfig, clientBase, origin string) string {
	if cors.OriginAllowed(clientBase) {
		return clientBase
	}
	if cors.OriginAllowed(origin) {
		return origin
	}
	return cors.DefaultSite
}
