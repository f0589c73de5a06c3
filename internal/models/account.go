package models

import "time"

// DegradedDomainID marks accounts synthesized locally when the provider was
// unreachable. Such accounts are not backed by a real mailbox.
const DegradedDomainID = "mock"

// EmailAccount is a minted mailbox identity. Accounts are never mutated after
// creation; rotation creates a new record and the old one is deleted.
type EmailAccount struct {
	ID         string     `json:"id"`
	Email      string     `json:"email"`
	Password   string     `json:"password"`
	CreatedAt  time.Time  `json:"createdAt"`
	DomainID   string     `json:"domainId"`
	ExpiresAt  *time.Time `json:"expiresAt,omitempty"`
	FiveMinute bool       `json:"isFiveMinute"`
	Degraded   bool       `json:"degraded,omitempty"`
}

// IsExpired reports whether the account has outlived its TTL. Accounts
// without an explicit expiry never expire by this check; their age limit is
// enforced by the lifecycle manager instead.
func (a *EmailAccount) IsExpired(now time.Time) bool {
	if a.ExpiresAt == nil {
		return false
	}
	return now.After(*a.ExpiresAt)
}

// TimeRemaining returns the number of whole seconds until expiry, clamped at
// zero. Accounts without an expiry report zero.
func (a *EmailAccount) TimeRemaining(now time.Time) int64 {
	if a.ExpiresAt == nil {
		return 0
	}
	remaining := a.ExpiresAt.Sub(now) / time.Second
	if remaining < 0 {
		return 0
	}
	return int64(remaining)
}
