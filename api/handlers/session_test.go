package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/sendbun/SimpleInbox/dto"
	"github.com/sendbun/SimpleInbox/internal/enum"
	"github.com/sendbun/SimpleInbox/internal/logger"
	"github.com/sendbun/SimpleInbox/internal/models"
)

type fakeLifecycle struct {
	account *models.EmailAccount
}

func (f *fakeLifecycle) Bootstrap(ctx context.Context, scope enum.AccountScope, forceNew bool) (*models.EmailAccount, error) {
	return f.account, nil
}

func (f *fakeLifecycle) Rotate(ctx context.Context, scope enum.AccountScope) (*models.EmailAccount, error) {
	return f.account, nil
}

func (f *fakeLifecycle) Cleanup(ctx context.Context) error {
	return nil
}

func (f *fakeLifecycle) CurrentAccount(ctx context.Context, scope enum.AccountScope) (*models.EmailAccount, error) {
	return f.account, nil
}

type fakeInbox struct {
	listing *dto.EmailListResponse
	message *dto.EmailMessage
}

func (f *fakeInbox) Refresh(ctx context.Context, accountID string, page int, folder string) *dto.EmailListResponse {
	return f.listing
}

func (f *fakeInbox) Open(ctx context.Context, accountID, messageID string) *dto.EmailMessage {
	return f.message
}

func (f *fakeInbox) Delete(ctx context.Context, accountID, messageID string) bool {
	return f.message != nil
}

func (f *fakeInbox) Download(ctx context.Context, accountID, messageID string) (string, []byte, bool) {
	if f.message == nil {
		return "", nil, false
	}
	return "email-m1.txt", []byte("body"), true
}

func (f *fakeInbox) Print(ctx context.Context, accountID, messageID string) ([]byte, bool) {
	if f.message == nil {
		return nil, false
	}
	return []byte("<html></html>"), true
}

func newSessionHandler(lifecycle *fakeLifecycle, inbox *fakeInbox) *SessionHandler {
	log := logger.NewAppLogger(&logger.Config{DevMode: true})
	log.InitLogger()
	return NewSessionHandler(lifecycle, inbox, log)
}

func TestSessionBootstrap_ReturnsAccount(t *testing.T) {
	account := &models.EmailAccount{ID: "1", Email: "a@sendbun.com"}
	h := newSessionHandler(&fakeLifecycle{account: account}, &fakeInbox{})

	w := performRequest(h.Bootstrap(), http.MethodPost, "/api/session/bootstrap", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "a@sendbun.com")
}

func TestSessionAccount_NotFoundWhenEmpty(t *testing.T) {
	h := newSessionHandler(&fakeLifecycle{}, &fakeInbox{})

	w := performRequest(h.Account(), http.MethodGet, "/api/session/account", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "No active account")
}

func TestSessionInbox_EmptyListWhenRefreshFails(t *testing.T) {
	account := &models.EmailAccount{ID: "1", Email: "a@sendbun.com"}
	h := newSessionHandler(&fakeLifecycle{account: account}, &fakeInbox{listing: nil})

	w := performRequest(h.Inbox(), http.MethodGet, "/api/session/inbox", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"messages":[]`)
}

func TestSessionInbox_RequiresAccount(t *testing.T) {
	h := newSessionHandler(&fakeLifecycle{}, &fakeInbox{})

	w := performRequest(h.Inbox(), http.MethodGet, "/api/session/inbox", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestSessionOpen_NotFound(t *testing.T) {
	account := &models.EmailAccount{ID: "1"}
	h := newSessionHandler(&fakeLifecycle{account: account}, &fakeInbox{})

	w := performRequest(h.Open(), http.MethodGet, "/api/session/inbox/m1", "",
		gin.Param{Key: "messageId", Value: "m1"})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestSessionDownload_ContentDisposition(t *testing.T) {
	account := &models.EmailAccount{ID: "1"}
	msg := &dto.EmailMessage{ID: "m1"}
	h := newSessionHandler(&fakeLifecycle{account: account}, &fakeInbox{message: msg})

	w := performRequest(h.Download(), http.MethodGet, "/api/session/inbox/m1/download", "",
		gin.Param{Key: "messageId", Value: "m1"})
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Disposition"), "email-m1.txt")
}
