package repository

import (
	"gorm.io/gorm"

	"github.com/sendbun/SimpleInbox/interfaces"
	"github.com/sendbun/SimpleInbox/internal/models"
)

type Repositories struct {
	MailboxStateRepository interfaces.MailboxStateRepository
}

// InitRepositories wires the state store. The origin identifier is fixed at
// process start and scopes every storage key (see utils.SiteKey).
func InitRepositories(db *gorm.DB, originIdentifier string) *Repositories {
	return &Repositories{
		MailboxStateRepository: NewMailboxStateRepository(db, originIdentifier),
	}
}

func MigrateDB(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.MailboxState{},
	)
}
