package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    ContentStatus
		to      ContentStatus
		allowed bool
	}{
		{"draft to published", ContentStatusDraft, ContentStatusPublished, true},
		{"draft to archived", ContentStatusDraft, ContentStatusArchived, true},
		{"published to draft", ContentStatusPublished, ContentStatusDraft, true},
		{"published to archived", ContentStatusPublished, ContentStatusArchived, true},
		{"archived to draft", ContentStatusArchived, ContentStatusDraft, false},
		{"archived to published", ContentStatusArchived, ContentStatusPublished, false},
		{"draft to draft", ContentStatusDraft, ContentStatusDraft, true},
		{"published to published", ContentStatusPublished, ContentStatusPublished, true},
		{"archived to archived", ContentStatusArchived, ContentStatusArchived, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestValidateTransition(t *testing.T) {
	assert.NoError(t, ValidateTransition(ContentStatusDraft, ContentStatusPublished))

	err := ValidateTransition(ContentStatusArchived, ContentStatusPublished)
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)

	err = ValidateTransition(ContentStatusDraft, ContentStatus("retired"))
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}
