package handlers

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"

	"github.com/sendbun/SimpleInbox/interfaces"
	"github.com/sendbun/SimpleInbox/internal/tracing"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type AccountsHandler struct {
	provider interfaces.ProviderClient
}

func NewAccountsHandler(provider interfaces.ProviderClient) *AccountsHandler {
	return &AccountsHandler{provider: provider}
}

type createAccountRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Create validates the request and proxies account creation. The provider's
// own status discriminator is passed through untouched; a 409 from upstream
// stays a 409.
func (h *AccountsHandler) Create() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracing.StartHttpServerTracerSpanWithHeader(c.Request.Context(), "CreateAccount", c.Request.Header)
		defer span.Finish()
		tracing.TagComponentRest(span)

		var req createAccountRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			tracing.TraceErr(span, err)
			respondError(c, http.StatusBadRequest, "Invalid request body", err.Error())
			return
		}

		if !emailPattern.MatchString(req.Email) {
			respondError(c, http.StatusBadRequest, "Invalid email address")
			return
		}
		if len(req.Password) < 8 {
			respondError(c, http.StatusBadRequest, "Password must be at least 8 characters")
			return
		}

		resp, err := h.provider.CreateAccount(ctx, req.Email, req.Password)
		if err != nil {
			tracing.TraceErr(span, err)
			respondProviderError(c, err)
			return
		}

		respondOK(c, resp)
	}
}

// Delete removes a provider-side account.
func (h *AccountsHandler) Delete() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracing.StartHttpServerTracerSpanWithHeader(c.Request.Context(), "DeleteAccount", c.Request.Header)
		defer span.Finish()
		tracing.TagComponentRest(span)

		accountID := c.Param("emailAccountId")
		tracing.TagEntity(span, accountID)

		if err := h.provider.DeleteAccount(ctx, accountID); err != nil {
			tracing.TraceErr(span, err)
			respondProviderError(c, err)
			return
		}

		respondOK(c, gin.H{"deleted": accountID})
	}
}
