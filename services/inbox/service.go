package inbox

import (
	"fmt"
	"html"
	"sync"
	"time"

	"github.com/opentracing/opentracing-go"
	tracingLog "github.com/opentracing/opentracing-go/log"
	"github.com/pkg/errors"
	"golang.org/x/net/context"

	"github.com/sendbun/SimpleInbox/dto"
	"github.com/sendbun/SimpleInbox/interfaces"
	er "github.com/sendbun/SimpleInbox/internal/errors"
	"github.com/sendbun/SimpleInbox/internal/logger"
	"github.com/sendbun/SimpleInbox/internal/tracing"
	"github.com/sendbun/SimpleInbox/services/sendbun"
)

const fetchTimeout = 15 * time.Second

// accountView is the locally cached inbox state for one account: the last
// fetched page, a read-marker overlay, and message ids deleted locally whose
// remote delete has not been confirmed yet.
type accountView struct {
	messages      []dto.EmailMessage
	pagination    dto.Pagination
	readIDs       map[string]bool
	pendingDelete map[string]bool
}

type inboxService struct {
	provider interfaces.ProviderClient
	log      logger.Logger

	mu    sync.Mutex
	views map[string]*accountView
}

func NewInboxService(provider interfaces.ProviderClient, log logger.Logger) interfaces.InboxService {
	return &inboxService{
		provider: provider,
		log:      log,
		views:    map[string]*accountView{},
	}
}

func (s *inboxService) Refresh(ctx context.Context, accountID string, page int, folder string) *dto.EmailListResponse {
	span, ctx := opentracing.StartSpanFromContext(ctx, "InboxService.Refresh")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)
	tracing.TagEntity(span, accountID)

	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	view := s.view(accountID)
	s.retryPendingDeletes(ctx, accountID, view)

	resp, err := s.provider.ListMessages(ctx, accountID, page, folder)
	if err != nil {
		tracing.TraceErr(span, err)
		s.log.Warnf("inbox fetch failed for %s: %v", accountID, err)
		return nil
	}
	if resp == nil || !resp.Status {
		return nil
	}

	normalized := sendbun.NormalizeMessages(resp, page)

	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := make([]dto.EmailMessage, 0, len(normalized.Messages))
	for _, msg := range normalized.Messages {
		if view.pendingDelete[msg.ID] {
			continue
		}
		if view.readIDs[msg.ID] {
			msg.Read = true
		}
		filtered = append(filtered, msg)
	}

	view.messages = filtered
	view.pagination = normalized.Pagination

	span.LogFields(tracingLog.Int("result.messages", len(filtered)))
	return &dto.EmailListResponse{
		Messages:   filtered,
		Pagination: normalized.Pagination,
	}
}

func (s *inboxService) Open(ctx context.Context, accountID, messageID string) *dto.EmailMessage {
	span, _ := opentracing.StartSpanFromContext(ctx, "InboxService.Open")
	defer span.Finish()
	tracing.TagEntity(span, messageID)

	s.mu.Lock()
	defer s.mu.Unlock()

	view, ok := s.views[accountID]
	if !ok {
		return nil
	}
	for i := range view.messages {
		if view.messages[i].ID == messageID {
			view.messages[i].Read = true
			view.readIDs[messageID] = true
			msg := view.messages[i]
			return &msg
		}
	}
	return nil
}

func (s *inboxService) Delete(ctx context.Context, accountID, messageID string) bool {
	span, ctx := opentracing.StartSpanFromContext(ctx, "InboxService.Delete")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)
	tracing.TagEntity(span, messageID)

	s.mu.Lock()
	view, ok := s.views[accountID]
	if !ok {
		s.mu.Unlock()
		return false
	}

	found := false
	kept := view.messages[:0]
	for _, msg := range view.messages {
		if msg.ID == messageID {
			found = true
			continue
		}
		kept = append(kept, msg)
	}
	if !found {
		s.mu.Unlock()
		return false
	}
	view.messages = kept
	s.mu.Unlock()

	// The message disappears from the local view immediately; a failed remote
	// delete is retried on the next refresh.
	if err := s.provider.DeleteMessage(ctx, accountID, messageID); err != nil {
		tracing.TraceErr(span, err)
		s.log.Warnf("remote delete of message %s failed, will retry: %v", messageID, err)
		s.mu.Lock()
		view.pendingDelete[messageID] = true
		s.mu.Unlock()
	}
	return true
}

func (s *inboxService) Download(ctx context.Context, accountID, messageID string) (string, []byte, bool) {
	span, _ := opentracing.StartSpanFromContext(ctx, "InboxService.Download")
	defer span.Finish()
	tracing.TagEntity(span, messageID)

	msg := s.lookup(accountID, messageID)
	if msg == nil {
		return "", nil, false
	}

	content := fmt.Sprintf("From: %s\nSubject: %s\nDate: %s\n\n%s",
		msg.From, msg.Subject, msg.Date, msg.Text)
	filename := fmt.Sprintf("email-%s.txt", msg.ID)
	return filename, []byte(content), true
}

func (s *inboxService) Print(ctx context.Context, accountID, messageID string) ([]byte, bool) {
	span, _ := opentracing.StartSpanFromContext(ctx, "InboxService.Print")
	defer span.Finish()
	tracing.TagEntity(span, messageID)

	msg := s.lookup(accountID, messageID)
	if msg == nil {
		return nil, false
	}

	doc := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><title>Print Email - %s</title></head>
<body>
<h1>%s</h1>
<p><strong>From:</strong> %s</p>
<p><strong>Date:</strong> %s</p>
<hr>
<div>%s</div>
</body>
</html>`,
		html.EscapeString(msg.Subject),
		html.EscapeString(msg.Subject),
		html.EscapeString(msg.From),
		html.EscapeString(msg.Date),
		msg.HTML)
	return []byte(doc), true
}

func (s *inboxService) view(accountID string) *accountView {
	s.mu.Lock()
	defer s.mu.Unlock()
	view, ok := s.views[accountID]
	if !ok {
		view = &accountView{
			readIDs:       map[string]bool{},
			pendingDelete: map[string]bool{},
		}
		s.views[accountID] = view
	}
	return view
}

func (s *inboxService) lookup(accountID, messageID string) *dto.EmailMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	view, ok := s.views[accountID]
	if !ok {
		return nil
	}
	for i := range view.messages {
		if view.messages[i].ID == messageID {
			msg := view.messages[i]
			return &msg
		}
	}
	return nil
}

// retryPendingDeletes re-issues remote deletes that failed earlier. An id is
// dropped from the pending set only when the provider confirms the delete.
func (s *inboxService) retryPendingDeletes(ctx context.Context, accountID string, view *accountView) {
	s.mu.Lock()
	pending := make([]string, 0, len(view.pendingDelete))
	for id := range view.pendingDelete {
		pending = append(pending, id)
	}
	s.mu.Unlock()

	for _, id := range pending {
		err := s.provider.DeleteMessage(ctx, accountID, id)
		if err != nil && !errors.Is(err, er.ErrMessageNotFound) {
			s.log.Warnf("pending delete of message %s still failing: %v", id, err)
			continue
		}
		s.mu.Lock()
		delete(view.pendingDelete, id)
		s.mu.Unlock()
	}
}
