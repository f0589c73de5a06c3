package interfaces

import (
	"context"

	"github.com/sendbun/SimpleInbox/dto"
	"github.com/sendbun/SimpleInbox/internal/enum"
	"github.com/sendbun/SimpleInbox/internal/models"
)

// LifecycleService owns the temporary-account state machine for both scopes:
// minting, expiry, rotation, and reconciliation with the persisted state.
type LifecycleService interface {
	// Bootstrap returns the active account for the scope, minting a new one
	// when the scope is empty, expired, or forceNew is set.
	Bootstrap(ctx context.Context, scope enum.AccountScope, forceNew bool) (*models.EmailAccount, error)
	// Rotate unconditionally mints a replacement account and deletes the
	// previous provider-side account best-effort.
	Rotate(ctx context.Context, scope enum.AccountScope) (*models.EmailAccount, error)
	// Cleanup expires overdue accounts in both scopes, deleting them
	// provider-side best-effort and clearing the stored record.
	Cleanup(ctx context.Context) error
	// CurrentAccount returns the persisted account for the scope without
	// minting; nil when the scope is empty.
	CurrentAccount(ctx context.Context, scope enum.AccountScope) (*models.EmailAccount, error)
}

type InboxService interface {
	// Refresh fetches a page of messages for the account. Any failure,
	// including the fetch timeout, yields nil rather than an error.
	Refresh(ctx context.Context, accountID string, page int, folder string) *dto.EmailListResponse
	// Open returns a message from the last fetched page and marks it read
	// locally; nil when the id is not in the fetched set.
	Open(ctx context.Context, accountID, messageID string) *dto.EmailMessage
	// Delete removes the message from the local view immediately and issues
	// the remote delete; a remote failure leaves the id pending re-sync.
	Delete(ctx context.Context, accountID, messageID string) bool
	Download(ctx context.Context, accountID, messageID string) (filename string, content []byte, ok bool)
	Print(ctx context.Context, accountID, messageID string) ([]byte, bool)
}

type IdentityGenerator interface {
	LocalPart(style enum.IdentityStyle) string
	Password() string
}
