package catalog

import "fmt"

// CanTransition reports whether the lifecycle allows moving from one status
// to another. Same-state transitions are allowed so publish/unpublish stay
// idempotent. Archived is terminal.
func CanTransition(from, to ContentStatus) bool {
	if from == to {
		return true
	}
	switch from {
	case ContentStatusDraft:
		return to == ContentStatusPublished || to == ContentStatusArchived
	case ContentStatusPublished:
		return to == ContentStatusDraft || to == ContentStatusArchived
	case ContentStatusArchived:
		return false
	default:
		return false
	}
}

// ValidateTransition returns ErrInvalidStatusTransition when the lifecycle
// disallows the move.
func ValidateTransition(from, to ContentStatus) error {
	if !to.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidStatusTransition, to)
	}
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, from, to)
	}
	return nil
}
