package sendbun

import (
	"github.com/sendbun/SimpleInbox/dto"
	"github.com/sendbun/SimpleInbox/internal/utils"
)

// NormalizeMessages flattens the provider's inconsistent message shapes into
// the stable representation the UI consumes.
func NormalizeMessages(resp *dto.MessagesResponse, page int) *dto.EmailListResponse {
	if resp == nil {
		return nil
	}

	messages := make([]dto.EmailMessage, 0, len(resp.Data))
	for _, raw := range resp.Data {
		messages = append(messages, normalizeMessage(raw))
	}

	return &dto.EmailListResponse{
		Messages:   messages,
		Pagination: normalizePagination(resp.Pagination, page, len(messages)),
	}
}

func normalizeMessage(raw dto.ProviderMessage) dto.EmailMessage {
	from := raw.From
	if from == "" && raw.MailHeaders != nil && len(raw.MailHeaders.From) > 0 {
		from = raw.MailHeaders.From[0].Full
	}
	if from == "" {
		from = "Unknown"
	}

	to := raw.To
	if to == "" && raw.MailHeaders != nil && len(raw.MailHeaders.To) > 0 {
		to = raw.MailHeaders.To[0].Full
	}
	if to == "" {
		to = "Unknown"
	}

	subject := raw.Subject
	if subject == "" {
		subject = "No Subject"
	}

	text := utils.FirstNonEmpty(raw.Body, raw.HTML, "No content")
	htmlBody := utils.FirstNonEmpty(raw.HTML, raw.Body, "No content")

	return dto.EmailMessage{
		ID:      raw.ID.String(),
		From:    from,
		To:      to,
		Subject: subject,
		Text:    text,
		HTML:    htmlBody,
		Date:    raw.Date,
		Read:    raw.IsSeen == "1",
		Folder:  raw.Folder,
	}
}

// normalizePagination prefers the camelCase key style and falls back to the
// snake_case one field by field. Absent fields get computed defaults so the
// UI never sees a zero-page response.
func normalizePagination(p dto.ProviderPagination, requestedPage, itemCount int) dto.Pagination {
	currentPage := firstInt(p.CurrentPage, p.CurrentPage2, requestedPage)
	pageSize := firstInt(p.PageSize, p.PageSize2, defaultPageLimit)
	totalItems := firstInt(p.TotalItems, p.TotalItems2, itemCount)
	totalPages := firstInt(p.TotalPages, p.TotalPages2, 1)

	hasNext := currentPage < totalPages
	if p.HasNextPage != nil {
		hasNext = *p.HasNextPage
	}

	return dto.Pagination{
		CurrentPage: currentPage,
		PageSize:    pageSize,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		HasNextPage: hasNext,
	}
}

func firstInt(primary, secondary *int, fallback int) int {
	if primary != nil {
		return *primary
	}
	if secondary != nil {
		return *secondary
	}
	return fallback
}
