package interfaces

import (
	"context"

	"github.com/sendbun/SimpleInbox/internal/enum"
	"github.com/sendbun/SimpleInbox/internal/models"
)

// MailboxStateRepository persists one SiteEmailData record per account scope.
// Load tolerates malformed stored content by returning nil, nil; writes to one
// scope are never observable from the other.
type MailboxStateRepository interface {
	Save(ctx context.Context, scope enum.AccountScope, data *models.SiteEmailData) error
	Load(ctx context.Context, scope enum.AccountScope) (*models.SiteEmailData, error)
	Clear(ctx context.Context, scope enum.AccountScope) error
}
