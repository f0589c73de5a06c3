package dto

import (
	"bytes"
	"encoding/json"
)

// StringID absorbs provider ids that arrive either as JSON numbers or as
// strings and always presents them as a string.
type StringID string

func (s *StringID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = StringID(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = StringID(n.String())
	return nil
}

func (s StringID) String() string {
	return string(s)
}

type ProviderDomain struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Accounts    int    `json:"accounts"`
	TotalEmails string `json:"total_emails"`
	Memory      string `json:"memory"`
}

type SiteDomainsResponse struct {
	Domains []ProviderDomain `json:"domains"`
}

// CreateAccountResponse is the provider reply to account creation. Success is
// discriminated by the Status field, not by the HTTP status alone.
type CreateAccountResponse struct {
	Status   bool     `json:"status"`
	Message  string   `json:"message"`
	ID       StringID `json:"id"`
	Email    string   `json:"email"`
	DomainID StringID `json:"domain_id"`
}

type MailHeaderEntry struct {
	Full     string `json:"full"`
	Personal string `json:"personal"`
}

type MailHeaders struct {
	From []MailHeaderEntry `json:"from"`
	To   []MailHeaderEntry `json:"to"`
}

// ProviderMessage is the raw message shape. Sender and recipient may appear as
// flat strings, as structured header lists, or not at all.
type ProviderMessage struct {
	ID          StringID     `json:"id"`
	From        string       `json:"from"`
	To          string       `json:"to"`
	Subject     string       `json:"subject"`
	Body        string       `json:"body"`
	HTML        string       `json:"html"`
	Date        string       `json:"date"`
	Folder      string       `json:"folder"`
	IsSeen      string       `json:"is_seen"`
	MailHeaders *MailHeaders `json:"mail_headers"`
}

// ProviderPagination carries both key styles the provider has been observed to
// emit. Normalization prefers the camelCase fields.
type ProviderPagination struct {
	CurrentPage  *int  `json:"currentPage"`
	PageSize     *int  `json:"pageSize"`
	TotalItems   *int  `json:"totalItems"`
	TotalPages   *int  `json:"totalPages"`
	HasNextPage  *bool `json:"hasNextPage"`
	CurrentPage2 *int  `json:"current_page"`
	PageSize2    *int  `json:"items_per_page"`
	TotalItems2  *int  `json:"total_items"`
	TotalPages2  *int  `json:"total_pages"`
}

type MessagesResponse struct {
	Status     bool               `json:"status"`
	Data       []ProviderMessage  `json:"data"`
	Pagination ProviderPagination `json:"pagination"`
}
