package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sendbun/SimpleInbox/interfaces"
	"github.com/sendbun/SimpleInbox/internal/tracing"
	"github.com/sendbun/SimpleInbox/services/sendbun"
)

type EmailsHandler struct {
	provider interfaces.ProviderClient
}

func NewEmailsHandler(provider interfaces.ProviderClient) *EmailsHandler {
	return &EmailsHandler{provider: provider}
}

// List proxies the provider's message listing for an account, normalized
// into the stable message shape.
func (h *EmailsHandler) List() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracing.StartHttpServerTracerSpanWithHeader(c.Request.Context(), "ListEmails", c.Request.Header)
		defer span.Finish()
		tracing.TagComponentRest(span)

		accountID := c.Query("emailAccountId")
		if accountID == "" {
			respondError(c, http.StatusBadRequest, "emailAccountId is required")
			return
		}
		tracing.TagEntity(span, accountID)

		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil || page < 1 {
			page = 1
		}
		folder := c.DefaultQuery("folder", "inbox,spam")

		resp, err := h.provider.ListMessages(ctx, accountID, page, folder)
		if err != nil {
			tracing.TraceErr(span, err)
			respondProviderError(c, err)
			return
		}

		respondOK(c, sendbun.NormalizeMessages(resp, page))
	}
}

// Get proxies a single raw message fetch.
func (h *EmailsHandler) Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracing.StartHttpServerTracerSpanWithHeader(c.Request.Context(), "GetEmail", c.Request.Header)
		defer span.Finish()
		tracing.TagComponentRest(span)

		accountID := c.Param("emailAccountId")
		messageID := c.Param("messageId")
		tracing.TagEntity(span, messageID)

		raw, err := h.provider.GetMessage(ctx, accountID, messageID)
		if err != nil {
			tracing.TraceErr(span, err)
			respondProviderError(c, err)
			return
		}

		c.Data(http.StatusOK, "application/json", raw)
	}
}

// Delete proxies a single message delete.
func (h *EmailsHandler) Delete() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracing.StartHttpServerTracerSpanWithHeader(c.Request.Context(), "DeleteEmail", c.Request.Header)
		defer span.Finish()
		tracing.TagComponentRest(span)

		accountID := c.Param("emailAccountId")
		messageID := c.Param("messageId")
		tracing.TagEntity(span, messageID)

		if err := h.provider.DeleteMessage(ctx, accountID, messageID); err != nil {
			tracing.TraceErr(span, err)
			respondProviderError(c, err)
			return
		}

		respondOK(c, gin.H{"deleted": messageID})
	}
}
