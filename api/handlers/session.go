package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sendbun/SimpleInbox/dto"
	"github.com/sendbun/SimpleInbox/interfaces"
	"github.com/sendbun/SimpleInbox/internal/enum"
	"github.com/sendbun/SimpleInbox/internal/logger"
	"github.com/sendbun/SimpleInbox/internal/models"
	"github.com/sendbun/SimpleInbox/internal/tracing"
)

// SessionHandler exposes the managed mailbox session: the server owns account
// lifecycle and the inbox view, the client only asks for the current state.
type SessionHandler struct {
	lifecycle interfaces.LifecycleService
	inbox     interfaces.InboxService
	log       logger.Logger
}

func NewSessionHandler(lifecycle interfaces.LifecycleService, inbox interfaces.InboxService, log logger.Logger) *SessionHandler {
	return &SessionHandler{
		lifecycle: lifecycle,
		inbox:     inbox,
		log:       log,
	}
}

func scopeFromQuery(c *gin.Context) enum.AccountScope {
	return enum.DecodeAccountScope(c.Query("scope"))
}

// Bootstrap returns the active account for the scope, minting one when
// needed. ?force=true rotates instead.
func (h *SessionHandler) Bootstrap() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracing.StartHttpServerTracerSpanWithHeader(c.Request.Context(), "SessionBootstrap", c.Request.Header)
		defer span.Finish()
		tracing.TagComponentRest(span)

		scope := scopeFromQuery(c)
		tracing.TagScope(span, scope.String())
		forceNew := c.Query("force") == "true"

		account, err := h.lifecycle.Bootstrap(ctx, scope, forceNew)
		if err != nil {
			tracing.TraceErr(span, err)
			respondProviderError(c, err)
			return
		}

		respondOK(c, account)
	}
}

// Rotate unconditionally mints a replacement account for the scope.
func (h *SessionHandler) Rotate() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracing.StartHttpServerTracerSpanWithHeader(c.Request.Context(), "SessionRotate", c.Request.Header)
		defer span.Finish()
		tracing.TagComponentRest(span)

		scope := scopeFromQuery(c)
		tracing.TagScope(span, scope.String())

		account, err := h.lifecycle.Rotate(ctx, scope)
		if err != nil {
			tracing.TraceErr(span, err)
			respondProviderError(c, err)
			return
		}

		respondOK(c, account)
	}
}

// Cleanup sweeps both scopes for expired accounts.
func (h *SessionHandler) Cleanup() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracing.StartHttpServerTracerSpanWithHeader(c.Request.Context(), "SessionCleanup", c.Request.Header)
		defer span.Finish()
		tracing.TagComponentRest(span)

		if err := h.lifecycle.Cleanup(ctx); err != nil {
			tracing.TraceErr(span, err)
			respondProviderError(c, err)
			return
		}

		respondOK(c, gin.H{"cleaned": true})
	}
}

// Account returns the persisted account for the scope without minting.
func (h *SessionHandler) Account() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracing.StartHttpServerTracerSpanWithHeader(c.Request.Context(), "SessionAccount", c.Request.Header)
		defer span.Finish()
		tracing.TagComponentRest(span)

		scope := scopeFromQuery(c)
		tracing.TagScope(span, scope.String())

		account, err := h.lifecycle.CurrentAccount(ctx, scope)
		if err != nil {
			tracing.TraceErr(span, err)
			respondProviderError(c, err)
			return
		}
		if account == nil {
			respondError(c, http.StatusNotFound, "No active account")
			return
		}

		respondOK(c, account)
	}
}

// Inbox refreshes the message list for the scope's active account. A failed
// or timed-out fetch yields an empty list, never an error.
func (h *SessionHandler) Inbox() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracing.StartHttpServerTracerSpanWithHeader(c.Request.Context(), "SessionInbox", c.Request.Header)
		defer span.Finish()
		tracing.TagComponentRest(span)

		account, ok := h.activeAccount(c, ctx)
		if !ok {
			return
		}

		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil || page < 1 {
			page = 1
		}
		folder := c.DefaultQuery("folder", "inbox,spam")

		listing := h.inbox.Refresh(ctx, account.ID, page, folder)
		if listing == nil {
			h.log.Warnf("inbox refresh returned no data for account %s", account.ID)
			listing = &dto.EmailListResponse{
				Messages: []dto.EmailMessage{},
				Pagination: dto.Pagination{
					CurrentPage: page,
					TotalPages:  1,
				},
			}
		}

		respondOK(c, listing)
	}
}

// Open returns one message from the fetched set and marks it read.
func (h *SessionHandler) Open() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracing.StartHttpServerTracerSpanWithHeader(c.Request.Context(), "SessionOpenEmail", c.Request.Header)
		defer span.Finish()
		tracing.TagComponentRest(span)

		account, ok := h.activeAccount(c, ctx)
		if !ok {
			return
		}

		messageID := c.Param("messageId")
		tracing.TagEntity(span, messageID)

		msg := h.inbox.Open(ctx, account.ID, messageID)
		if msg == nil {
			respondError(c, http.StatusNotFound, "Email not found")
			return
		}

		respondOK(c, msg)
	}
}

// Delete removes a message from the local view and issues the remote delete.
func (h *SessionHandler) Delete() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracing.StartHttpServerTracerSpanWithHeader(c.Request.Context(), "SessionDeleteEmail", c.Request.Header)
		defer span.Finish()
		tracing.TagComponentRest(span)

		account, ok := h.activeAccount(c, ctx)
		if !ok {
			return
		}

		messageID := c.Param("messageId")
		tracing.TagEntity(span, messageID)

		if !h.inbox.Delete(ctx, account.ID, messageID) {
			respondError(c, http.StatusNotFound, "Email not found")
			return
		}

		respondOK(c, gin.H{"deleted": messageID})
	}
}

// Download serves a message as a plain-text attachment.
func (h *SessionHandler) Download() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracing.StartHttpServerTracerSpanWithHeader(c.Request.Context(), "SessionDownloadEmail", c.Request.Header)
		defer span.Finish()
		tracing.TagComponentRest(span)

		account, ok := h.activeAccount(c, ctx)
		if !ok {
			return
		}

		messageID := c.Param("messageId")
		tracing.TagEntity(span, messageID)

		filename, content, found := h.inbox.Download(ctx, account.ID, messageID)
		if !found {
			respondError(c, http.StatusNotFound, "Email not found")
			return
		}

		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
		c.Data(http.StatusOK, "text/plain; charset=utf-8", content)
	}
}

// Print serves a message as a standalone printable HTML document.
func (h *SessionHandler) Print() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracing.StartHttpServerTracerSpanWithHeader(c.Request.Context(), "SessionPrintEmail", c.Request.Header)
		defer span.Finish()
		tracing.TagComponentRest(span)

		account, ok := h.activeAccount(c, ctx)
		if !ok {
			return
		}

		messageID := c.Param("messageId")
		tracing.TagEntity(span, messageID)

		doc, found := h.inbox.Print(ctx, account.ID, messageID)
		if !found {
			respondError(c, http.StatusNotFound, "Email not found")
			return
		}

		c.Data(http.StatusOK, "text/html; charset=utf-8", doc)
	}
}

// activeAccount resolves the scope's persisted account or writes the 404.
func (h *SessionHandler) activeAccount(c *gin.Context, ctx context.Context) (*models.EmailAccount, bool) {
	scope := scopeFromQuery(c)

	account, err := h.lifecycle.CurrentAccount(ctx, scope)
	if err != nil {
		respondProviderError(c, err)
		return nil, false
	}
	if account == nil {
		respondError(c, http.StatusNotFound, "No active account")
		return nil, false
	}
	return account, true
}
