package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/sendbun/SimpleInbox/interfaces"
	"github.com/sendbun/SimpleInbox/internal/enum"
	"github.com/sendbun/SimpleInbox/internal/models"
	"github.com/sendbun/SimpleInbox/internal/tracing"
	"github.com/sendbun/SimpleInbox/internal/utils"
)

type mailboxStateRepository struct {
	db     *gorm.DB
	origin string
}

func NewMailboxStateRepository(db *gorm.DB, originIdentifier string) interfaces.MailboxStateRepository {
	return &mailboxStateRepository{db: db, origin: originIdentifier}
}

func (r *mailboxStateRepository) Save(ctx context.Context, scope enum.AccountScope, data *models.SiteEmailData) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "mailboxStateRepository.Save")
	defer span.Finish()
	tracing.SetDefaultStorageRepositorySpanTags(ctx, span)
	tracing.TagScope(span, scope.String())

	if data == nil {
		return errors.New("state data cannot be nil")
	}

	payload, err := json.Marshal(data)
	if err != nil {
		tracing.TraceErr(span, err)
		return errors.Wrap(err, "failed to encode state payload")
	}

	key := utils.SiteKey(r.origin, scope)
	now := time.Now().UTC()

	var existing models.MailboxState
	err = r.db.First(&existing, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		state := models.MailboxState{
			Key:         key,
			Scope:       scope.String(),
			Payload:     string(payload),
			LastUpdated: now,
		}
		if err := r.db.Create(&state).Error; err != nil {
			tracing.TraceErr(span, err)
			return err
		}
		return nil
	}
	if err != nil {
		tracing.TraceErr(span, err)
		return err
	}

	err = r.db.Model(&existing).Updates(map[string]interface{}{
		"payload":      string(payload),
		"last_updated": now,
	}).Error
	if err != nil {
		tracing.TraceErr(span, err)
	}
	return err
}

func (r *mailboxStateRepository) Load(ctx context.Context, scope enum.AccountScope) (*models.SiteEmailData, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "mailboxStateRepository.Load")
	defer span.Finish()
	tracing.SetDefaultStorageRepositorySpanTags(ctx, span)
	tracing.TagScope(span, scope.String())

	key := utils.SiteKey(r.origin, scope)

	var state models.MailboxState
	err := r.db.First(&state, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}

	var data models.SiteEmailData
	if err := json.Unmarshal([]byte(state.Payload), &data); err != nil {
		// a corrupt record reads as absence, never as a failure
		tracing.TraceErr(span, errors.Wrap(err, "discarding malformed state payload"))
		return nil, nil
	}
	return &data, nil
}

func (r *mailboxStateRepository) Clear(ctx context.Context, scope enum.AccountScope) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "mailboxStateRepository.Clear")
	defer span.Finish()
	tracing.SetDefaultStorageRepositorySpanTags(ctx, span)
	tracing.TagScope(span, scope.String())

	key := utils.SiteKey(r.origin, scope)
	err := r.db.Delete(&models.MailboxState{}, "key = ?", key).Error
	if err != nil {
		tracing.TraceErr(span, err)
	}
	return err
}
