package entities

import (
	"time"

	"github.com/google/uuid"
)

// Story is the read-only aggregate the client browses and plays. It is fetched
// from the archive backend and never mutated locally except through explicit
// update/delete calls.
type Story struct {
	ID           uuid.UUID     `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description,omitempty"`
	Language     string        `json:"language,omitempty"`
	AudioURL     string        `json:"audio_url"`
	Duration     float64       `json:"duration,omitempty"` // in seconds
	Paragraphs   []Paragraph   `json:"paragraphs,omitempty"`
	Translations []Translation `json:"translations,omitempty"`
	IsPublished  bool          `json:"is_published"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// NewStory creates a new story shell for an uploaded recording
func NewStory(title string) *Story {
	return &Story{
		ID:        uuid.New(),
		Title:     title,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// Transcript returns the word timings for the requested language. For the
// original language (or an empty request) it flattens the paragraph words; for
// a translation it returns the translation's words, which may be empty when
// the translation is text-only. Callers decide how to fall back.
func (s *Story) Transcript(language string) []Word {
	if language == "" || language == s.Language {
		return s.Words()
	}
	for _, tr := range s.Translations {
		if tr.Language == language {
			return tr.Words
		}
	}
	return nil
}

// Words flattens the paragraph word timings into a single transcript sequence
func (s *Story) Words() []Word {
	var words []Word
	for _, p := range s.Paragraphs {
		words = append(words, p.Words...)
	}
	return words
}
