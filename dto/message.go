package dto

// EmailMessage is the normalized message shape handed to the UI. All the
// provider's optional-field heterogeneity is resolved before it gets here.
type EmailMessage struct {
	ID      string `json:"id"`
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
	HTML    string `json:"html"`
	Date    string `json:"date"`
	Read    bool   `json:"read"`
	Folder  string `json:"folder"`
}

type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	PageSize    int  `json:"pageSize"`
	TotalItems  int  `json:"totalItems"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
}

type EmailListResponse struct {
	Messages   []EmailMessage `json:"messages"`
	Pagination Pagination     `json:"pagination"`
}
