package entities

import (
	"github.com/google/uuid"
)

// IllustrationStatus represents the generation state of an illustration
type IllustrationStatus string

const (
	IllustrationStatusPending   IllustrationStatus = "pending"
	IllustrationStatusGenerated IllustrationStatus = "generated"
	IllustrationStatusFailed    IllustrationStatus = "failed"
)

// Illustration is a generated image attached to a paragraph. Only entries with
// status "generated" are eligible for display.
type Illustration struct {
	ID         uuid.UUID          `json:"id"`
	ImageURL   string             `json:"image_url"`
	PromptUsed string             `json:"prompt_used,omitempty"`
	Style      string             `json:"style,omitempty"`
	Status     IllustrationStatus `json:"status"`
}
