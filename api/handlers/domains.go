package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sendbun/SimpleInbox/interfaces"
	"github.com/sendbun/SimpleInbox/internal/tracing"
)

type DomainsHandler struct {
	provider interfaces.ProviderClient
}

func NewDomainsHandler(provider interfaces.ProviderClient) *DomainsHandler {
	return &DomainsHandler{provider: provider}
}

// SiteDomains proxies the provider's domain listing.
func (h *DomainsHandler) SiteDomains() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracing.StartHttpServerTracerSpanWithHeader(c.Request.Context(), "SiteDomains", c.Request.Header)
		defer span.Finish()
		tracing.TagComponentRest(span)

		domains, err := h.provider.ListDomains(ctx)
		if err != nil {
			tracing.TraceErr(span, err)
			respondProviderError(c, err)
			return
		}

		respondOK(c, gin.H{"domains": domains})
	}
}
