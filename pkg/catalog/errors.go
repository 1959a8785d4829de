package catalog

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Error types
var (
	// ErrContentNotFound indicates a content item was not found
	ErrContentNotFound = errors.New("content not found")

	// ErrValidationFailed indicates a required field is missing or malformed
	ErrValidationFailed = errors.New("validation failed")

	// ErrStoreUnavailable indicates the backing store or blob gateway is unreachable or throttled
	ErrStoreUnavailable = errors.New("storage unavailable")

	// ErrInvalidStatusTransition indicates a disallowed lifecycle transition
	ErrInvalidStatusTransition = errors.New("invalid status transition")

	// ErrImmutableField indicates an attempt to change a field fixed at creation
	ErrImmutableField = errors.New("field is immutable")

	// ErrUnauthorized indicates a write attempted without the required role
	ErrUnauthorized = errors.New("unauthorized")
)

// ContentError represents an error related to a catalog operation
type ContentError struct {
	ContentID uuid.UUID
	Op        string
	Err       error
}

func (e *ContentError) Error() string {
	return fmt.Sprintf("content operation %s failed for content %s: %v", e.Op, e.ContentID, e.Err)
}

func (e *ContentError) Unwrap() error {
	return e.Err
}

// StorageError represents an error related to blob storage operations
type StorageError struct {
	Backend string
	Key     string
	Op      string
	Err     error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage operation %s failed for key %s on backend %s: %v", e.Op, e.Key, e.Backend, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
