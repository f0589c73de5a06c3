package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// configuration errors
	ErrConfigurationMissing = errors.New("API configuration missing")

	// account lifecycle errors
	ErrNoDomainsAvailable = errors.New("no domains available")
	ErrAccountNotFound    = errors.New("email account not found")

	// provider errors
	ErrProviderUnavailable = errors.New("provider unavailable")
	ErrMessageNotFound     = errors.New("email not found")
)

// ProviderError carries the upstream HTTP status and body so proxy routes can
// propagate them to the caller.
type ProviderError struct {
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider returned status %d", e.StatusCode)
}

func NewProviderError(statusCode int, body string) *ProviderError {
	return &ProviderError{StatusCode: statusCode, Body: body}
}
