package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/sendbun/SimpleInbox/dto"
	er "github.com/sendbun/SimpleInbox/internal/errors"
	"github.com/sendbun/SimpleInbox/internal/models"
)

type fakeProvider struct {
	domains    []models.Domain
	domainsErr error
	createResp *dto.CreateAccountResponse
	createErr  error
	deleteErr  error
	messages   *dto.MessagesResponse
	listErr    error
}

func (f *fakeProvider) ListDomains(ctx context.Context) ([]models.Domain, error) {
	return f.domains, f.domainsErr
}

func (f *fakeProvider) CreateAccount(ctx context.Context, email, password string) (*dto.CreateAccountResponse, error) {
	return f.createResp, f.createErr
}

func (f *fakeProvider) DeleteAccount(ctx context.Context, accountID string) error {
	return f.deleteErr
}

func (f *fakeProvider) ListMessages(ctx context.Context, accountID string, page int, folder string) (*dto.MessagesResponse, error) {
	return f.messages, f.listErr
}

func (f *fakeProvider) GetMessage(ctx context.Context, accountID, messageID string) (json.RawMessage, error) {
	return json.RawMessage(`{"id":"m1"}`), nil
}

func (f *fakeProvider) DeleteMessage(ctx context.Context, accountID, messageID string) error {
	return f.deleteErr
}

func performRequest(handler gin.HandlerFunc, method, path, body string, params ...gin.Param) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	c.Request = httptest.NewRequest(method, path, reader)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = params
	handler(c)
	return w
}

func TestSiteDomains_Success(t *testing.T) {
	h := NewDomainsHandler(&fakeProvider{domains: []models.Domain{{ID: 1, Name: "sendbun.com"}}})

	w := performRequest(h.SiteDomains(), http.MethodGet, "/api/domains/site-domains", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Domains []models.Domain `json:"domains"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.True(t, body.Success)
	require.Len(t, body.Data.Domains, 1)
}

func TestSiteDomains_ConfigurationMissing(t *testing.T) {
	h := NewDomainsHandler(&fakeProvider{domainsErr: er.ErrConfigurationMissing})

	w := performRequest(h.SiteDomains(), http.MethodGet, "/api/domains/site-domains", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "API configuration missing")
}

func TestCreateAccount_ValidatesEmail(t *testing.T) {
	h := NewAccountsHandler(&fakeProvider{})

	w := performRequest(h.Create(), http.MethodPost, "/api/accounts/create",
		`{"email":"not-an-email","password":"longenough"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Invalid email address")
}

func TestCreateAccount_ValidatesPasswordLength(t *testing.T) {
	h := NewAccountsHandler(&fakeProvider{})

	w := performRequest(h.Create(), http.MethodPost, "/api/accounts/create",
		`{"email":"a@sendbun.com","password":"short"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "at least 8 characters")
}

func TestCreateAccount_UpstreamStatusPassthrough(t *testing.T) {
	h := NewAccountsHandler(&fakeProvider{
		createErr: er.NewProviderError(http.StatusConflict, `{"message":"exists"}`),
	})

	w := performRequest(h.Create(), http.MethodPost, "/api/accounts/create",
		`{"email":"a@sendbun.com","password":"longenough"}`)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateAccount_Success(t *testing.T) {
	h := NewAccountsHandler(&fakeProvider{
		createResp: &dto.CreateAccountResponse{Status: true, ID: "55", Email: "a@sendbun.com"},
	})

	w := performRequest(h.Create(), http.MethodPost, "/api/accounts/create",
		`{"email":"a@sendbun.com","password":"longenough"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"success":true`)
}

func TestDeleteAccount_NotFoundRemap(t *testing.T) {
	h := NewAccountsHandler(&fakeProvider{deleteErr: er.ErrAccountNotFound})

	w := performRequest(h.Delete(), http.MethodDelete, "/api/accounts/55", "",
		gin.Param{Key: "emailAccountId", Value: "55"})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "Email account not found")
}

func TestListEmails_RequiresAccountID(t *testing.T) {
	h := NewEmailsHandler(&fakeProvider{})

	w := performRequest(h.List(), http.MethodGet, "/api/emails", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "emailAccountId is required")
}

func TestListEmails_NormalizesMessages(t *testing.T) {
	h := NewEmailsHandler(&fakeProvider{messages: &dto.MessagesResponse{
		Status: true,
		Data: []dto.ProviderMessage{
			{ID: "m1", Subject: "", Body: "hi", IsSeen: "0"},
		},
	}})

	w := performRequest(h.List(), http.MethodGet, "/api/emails?emailAccountId=55", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "No Subject")
	require.Contains(t, w.Body.String(), "Unknown")
}

func TestDeleteEmail_NotFoundRemap(t *testing.T) {
	h := NewEmailsHandler(&fakeProvider{deleteErr: er.ErrMessageNotFound})

	w := performRequest(h.Delete(), http.MethodDelete, "/api/emails/55/m1/delete", "",
		gin.Param{Key: "emailAccountId", Value: "55"},
		gin.Param{Key: "messageId", Value: "m1"})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "Email not found")
}
