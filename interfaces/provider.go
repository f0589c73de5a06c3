package interfaces

import (
	"context"
	"encoding/json"

	"github.com/sendbun/SimpleInbox/dto"
	"github.com/sendbun/SimpleInbox/internal/models"
)

// ProviderClient talks to the upstream mail-hosting REST API. The provider
// owns mailboxes and messages; this client is the only component allowed to
// hold the upstream bearer credential.
type ProviderClient interface {
	ListDomains(ctx context.Context) ([]models.Domain, error)
	CreateAccount(ctx context.Context, email, password string) (*dto.CreateAccountResponse, error)
	DeleteAccount(ctx context.Context, accountID string) error
	ListMessages(ctx context.Context, accountID string, page int, folder string) (*dto.MessagesResponse, error)
	GetMessage(ctx context.Context, accountID, messageID string) (json.RawMessage, error)
	DeleteMessage(ctx context.Context, accountID, messageID string) error
}
