package models

// Domain is an immutable snapshot of a mail-hosting domain offered by the
// provider, refreshed on each lifecycle bootstrap. Name is the join key used
// when minting an address.
type Domain struct {
	ID           uint64 `json:"id"`
	Name         string `json:"name"`
	AccountCount int    `json:"accountCount"`
	TotalEmails  string `json:"totalEmails"`
	MemoryUsed   string `json:"memoryUsed"`
}

// FallbackDomains is what the lifecycle manager falls back to when the
// provider cannot be reached. These are real provider domains, not synthetic
// ones, so a degraded bootstrap still mints a plausible address.
func FallbackDomains() []Domain {
	return []Domain{
		{ID: 1, Name: "sendbun.com"},
		{ID: 2, Name: "mailbun.cc"},
		{ID: 3, Name: "tempmail.org"},
	}
}
