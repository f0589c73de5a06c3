package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	er "github.com/sendbun/SimpleInbox/internal/errors"
	"github.com/sendbun/SimpleInbox/internal/logger"
	"github.com/sendbun/SimpleInbox/services"
)

type Handlers struct {
	Domains  *DomainsHandler
	Accounts *AccountsHandler
	Emails   *EmailsHandler
	Session  *SessionHandler
}

func InitHandlers(s *services.Services, log logger.Logger) *Handlers {
	return &Handlers{
		Domains:  NewDomainsHandler(s.ProviderClient),
		Accounts: NewAccountsHandler(s.ProviderClient),
		Emails:   NewEmailsHandler(s.ProviderClient),
		Session:  NewSessionHandler(s.LifecycleService, s.InboxService, log),
	}
}

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func respondError(c *gin.Context, status int, message string, details ...string) {
	body := gin.H{"error": message}
	if len(details) > 0 && details[0] != "" {
		body["details"] = details[0]
	}
	c.JSON(status, body)
}

// respondProviderError translates gateway failures into the proxy's error
// envelope: 404s get domain-specific messages, other upstream statuses pass
// through, missing credentials become a 500.
func respondProviderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, er.ErrConfigurationMissing):
		respondError(c, http.StatusInternalServerError, "API configuration missing")
	case errors.Is(err, er.ErrAccountNotFound):
		respondError(c, http.StatusNotFound, "Email account not found")
	case errors.Is(err, er.ErrMessageNotFound):
		respondError(c, http.StatusNotFound, "Email not found")
	default:
		var pe *er.ProviderError
		if errors.As(err, &pe) {
			respondError(c, pe.StatusCode, pe.Error(), pe.Body)
			return
		}
		respondError(c, http.StatusBadGateway, "Provider unavailable", err.Error())
	}
}
