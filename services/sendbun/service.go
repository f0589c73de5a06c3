package sendbun

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jpillora/backoff"
	"github.com/opentracing/opentracing-go"
	tracingLog "github.com/opentracing/opentracing-go/log"
	"github.com/pkg/errors"
	"golang.org/x/net/context"

	"github.com/sendbun/SimpleInbox/config"
	"github.com/sendbun/SimpleInbox/dto"
	"github.com/sendbun/SimpleInbox/interfaces"
	er "github.com/sendbun/SimpleInbox/internal/errors"
	"github.com/sendbun/SimpleInbox/internal/logger"
	"github.com/sendbun/SimpleInbox/internal/models"
	"github.com/sendbun/SimpleInbox/internal/tracing"
)

const defaultPageLimit = 10

// sendbunService is the gateway to the upstream mail-hosting REST API. Every
// call carries a uniform client-side timeout and a single bounded retry; the
// upstream has at-least-once semantics and no transactional guarantees, so
// callers must treat duplicate effects as normal.
type sendbunService struct {
	cfg        *config.ProviderConfig
	log        logger.Logger
	httpClient *http.Client
}

func NewSendbunService(cfg *config.ProviderConfig, log logger.Logger) interfaces.ProviderClient {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &sendbunService{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (s *sendbunService) ListDomains(ctx context.Context) ([]models.Domain, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "SendbunService.ListDomains")
	defer span.Finish()
	tracing.TagComponentProviderClient(span)

	body, err := s.doRequest(ctx, span, http.MethodGet, "site/site-domains", nil)
	if err != nil {
		return nil, err
	}

	var result dto.SiteDomainsResponse
	if err := json.Unmarshal(body, &result); err != nil {
		tracing.TraceErr(span, errors.Wrap(err, "failed to parse domain list"))
		return nil, errors.Wrap(er.ErrProviderUnavailable, "malformed domain list")
	}

	domains := make([]models.Domain, 0, len(result.Domains))
	for _, d := range result.Domains {
		domains = append(domains, models.Domain{
			ID:           d.ID,
			Name:         d.Name,
			AccountCount: d.Accounts,
			TotalEmails:  d.TotalEmails,
			MemoryUsed:   d.Memory,
		})
	}
	span.LogFields(tracingLog.Int("result.domains", len(domains)))
	return domains, nil
}

func (s *sendbunService) CreateAccount(ctx context.Context, email, password string) (*dto.CreateAccountResponse, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "SendbunService.CreateAccount")
	defer span.Finish()
	tracing.TagComponentProviderClient(span)
	span.LogKV("email", email)

	payload, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	body, err := s.doRequest(ctx, span, http.MethodPost, "site/account/create", payload)
	if err != nil {
		return nil, err
	}

	var result dto.CreateAccountResponse
	if err := json.Unmarshal(body, &result); err != nil {
		tracing.TraceErr(span, errors.Wrap(err, "failed to parse create-account response"))
		return nil, errors.Wrap(er.ErrProviderUnavailable, "malformed create-account response")
	}
	span.LogFields(tracingLog.Bool("result.status", result.Status))
	return &result, nil
}

func (s *sendbunService) DeleteAccount(ctx context.Context, accountID string) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "SendbunService.DeleteAccount")
	defer span.Finish()
	tracing.TagComponentProviderClient(span)
	tracing.TagEntity(span, accountID)

	_, err := s.doRequest(ctx, span, http.MethodDelete, "site/account/"+url.PathEscape(accountID), nil)
	if err != nil {
		var pe *er.ProviderError
		if errors.As(err, &pe) && pe.StatusCode == http.StatusNotFound {
			return er.ErrAccountNotFound
		}
		return err
	}
	return nil
}

func (s *sendbunService) ListMessages(ctx context.Context, accountID string, page int, folder string) (*dto.MessagesResponse, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "SendbunService.ListMessages")
	defer span.Finish()
	tracing.TagComponentProviderClient(span)
	tracing.TagEntity(span, accountID)
	span.LogKV("page", page, "folder", folder)

	if page < 1 {
		page = 1
	}
	if folder == "" {
		folder = "inbox,spam"
	}

	params := url.Values{}
	params.Set("folder", folder)
	params.Set("page", fmt.Sprintf("%d", page))
	params.Set("limit", fmt.Sprintf("%d", defaultPageLimit))

	path := "site/messages/" + url.PathEscape(accountID) + "?" + params.Encode()
	body, err := s.doRequest(ctx, span, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var result dto.MessagesResponse
	if err := json.Unmarshal(body, &result); err != nil {
		tracing.TraceErr(span, errors.Wrap(err, "failed to parse message list"))
		return nil, errors.Wrap(er.ErrProviderUnavailable, "malformed message list")
	}
	span.LogFields(tracingLog.Int("result.messages", len(result.Data)))
	return &result, nil
}

func (s *sendbunService) GetMessage(ctx context.Context, accountID, messageID string) (json.RawMessage, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "SendbunService.GetMessage")
	defer span.Finish()
	tracing.TagComponentProviderClient(span)
	tracing.TagEntity(span, messageID)

	path := "site/message/" + url.PathEscape(accountID) + "/" + url.PathEscape(messageID)
	body, err := s.doRequest(ctx, span, http.MethodGet, path, nil)
	if err != nil {
		var pe *er.ProviderError
		if errors.As(err, &pe) && pe.StatusCode == http.StatusNotFound {
			return nil, er.ErrMessageNotFound
		}
		return nil, err
	}
	return json.RawMessage(body), nil
}

func (s *sendbunService) DeleteMessage(ctx context.Context, accountID, messageID string) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "SendbunService.DeleteMessage")
	defer span.Finish()
	tracing.TagComponentProviderClient(span)
	tracing.TagEntity(span, messageID)

	path := "site/message/" + url.PathEscape(accountID) + "/" + url.PathEscape(messageID)
	_, err := s.doRequest(ctx, span, http.MethodDelete, path, nil)
	if err != nil {
		var pe *er.ProviderError
		if errors.As(err, &pe) && pe.StatusCode == http.StatusNotFound {
			return er.ErrMessageNotFound
		}
		return err
	}
	return nil
}

// doRequest performs one authenticated call against the provider, retrying
// once on network failure or 5xx. Non-2xx responses come back as
// *errors.ProviderError so callers can inspect the upstream status.
func (s *sendbunService) doRequest(ctx context.Context, span opentracing.Span, method, path string, payload []byte) ([]byte, error) {
	if s.cfg.APIURL == "" || s.cfg.APIKey == "" {
		err := er.ErrConfigurationMissing
		tracing.TraceErr(span, err)
		return nil, err
	}

	endpoint := strings.TrimSuffix(s.cfg.APIURL, "/") + "/" + path

	b := &backoff.Backoff{
		Min:    250 * time.Millisecond,
		Max:    2 * time.Second,
		Factor: 2,
		Jitter: true,
	}

	maxRetries := s.cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(b.Duration()):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		var bodyReader io.Reader
		if payload != nil {
			bodyReader = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "bearer "+s.cfg.APIKey)
		req = tracing.InjectSpanContextIntoHTTPRequest(req, span)

		resp, err := s.httpClient.Do(req)
		if err != nil {
			lastErr = errors.Wrap(er.ErrProviderUnavailable, err.Error())
			s.log.Warnf("provider call %s %s failed: %v", method, path, err)
			continue
		}

		responseBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = errors.Wrap(er.ErrProviderUnavailable, err.Error())
			continue
		}

		if resp.StatusCode >= http.StatusInternalServerError {
			lastErr = er.NewProviderError(resp.StatusCode, string(responseBody))
			s.log.Warnf("provider call %s %s returned %d", method, path, resp.StatusCode)
			continue
		}

		if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
			err := er.NewProviderError(resp.StatusCode, string(responseBody))
			tracing.TraceErr(span, err)
			return nil, err
		}

		return responseBody, nil
	}

	tracing.TraceErr(span, lastErr)
	return nil, lastErr
}
