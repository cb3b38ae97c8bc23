package domain

import (
	"errors"
	"fmt"
)

// UpstreamError is returned when a third-party API answers with a
// non-2xx status or the call fails at the transport level. Callers do
// not retry; any retry/circuit policy sits outside this service.
type UpstreamError struct {
	Service string
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s: request failed with status %d: %s", e.Service, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Service, e.Message)
}

// IsUpstreamError reports whether err wraps an UpstreamError.
func IsUpstreamError(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}

// ValidationError rejects a webhook payload before any side effect.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsValidationError reports whether err wraps a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ErrOrganizationNotFound marks webhook events that reference a
// location with no synced organization; handled as a logged no-op.
var ErrOrganizationNotFound = errors.New("organization not found")

// PartialFetchError records a failed message-history lookup for one
// conversation. It never aborts the batch; the conversation is scored
// as if the team had not responded.
type PartialFetchError struct {
	ConversationID string
	Err            error
}

func (e *PartialFetchError) Error() string {
	return fmt.Sprintf("fetching history for conversation %s: %v", e.ConversationID, e.Err)
}

func (e *PartialFetchError) Unwrap() error {
	return e.Err
}
