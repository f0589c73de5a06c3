package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/sendbun/SimpleInbox/internal/utils"
)

// SiteEmailData is the persisted view of one account scope: the last known
// domain list, the active account (nil when the scope is empty), and when the
// record was last written. It is the sole source of truth the application
// trusts between restarts.
type SiteEmailData struct {
	Domains        []Domain      `json:"domains"`
	CurrentAccount *EmailAccount `json:"currentAccount"`
	LastUpdated    time.Time     `json:"lastUpdated"`
}

// MailboxState is the storage row backing one scope of SiteEmailData. The
// payload is kept as an opaque JSON blob so a malformed record degrades to
// "no account" instead of poisoning reads.
type MailboxState struct {
	ID          string    `gorm:"column:id;type:varchar(50);primaryKey" json:"id"`
	Key         string    `gorm:"column:key;type:varchar(255);NOT NULL;uniqueIndex" json:"key"`
	Scope       string    `gorm:"column:scope;type:varchar(50);index;NOT NULL" json:"scope"`
	Payload     string    `gorm:"column:payload;type:text" json:"payload"`
	CreatedAt   time.Time `gorm:"column:created_at;type:timestamp;DEFAULT:current_timestamp" json:"createdAt"`
	LastUpdated time.Time `gorm:"column:last_updated;type:timestamp;DEFAULT:current_timestamp" json:"lastUpdated"`
}

func (MailboxState) TableName() string {
	return "mailbox_states"
}

func (m *MailboxState) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = utils.GenerateNanoIDWithPrefix("state", 16)
	}
	return nil
}
