package entities

import (
	"github.com/google/uuid"
)

// Word represents a single transcript word with time alignment
type Word struct {
	Word      string  `json:"word"`
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`
}

// Paragraph is a contiguous grouping of transcript text with an optional time
// range and zero or more illustrations. Paragraphs without timing are shown in
// the transcript but never highlighted during playback.
type Paragraph struct {
	ID            uuid.UUID      `json:"id"`
	SequenceOrder int            `json:"sequence_order"`
	Content       string         `json:"content"`
	StartTime     *float64       `json:"start_time,omitempty"`
	EndTime       *float64       `json:"end_time,omitempty"`
	Words         []Word         `json:"words,omitempty"`
	Illustrations []Illustration `json:"illustrations,omitempty"`
}

// HasTiming reports whether the paragraph carries a usable time range
func (p *Paragraph) HasTiming() bool {
	return p.StartTime != nil && p.EndTime != nil
}

// Covers reports whether the paragraph's time range contains t (inclusive
// bounds). Untimed paragraphs never cover any time.
func (p *Paragraph) Covers(t float64) bool {
	return p.HasTiming() && *p.StartTime <= t && t <= *p.EndTime
}

// DisplayIllustration returns the first illustration that finished generating,
// or nil when the paragraph has nothing ready to show. Callers render an empty
// placeholder on nil, never an error.
func (p *Paragraph) DisplayIllustration() *Illustration {
	for i := range p.Illustrations {
		if p.Illustrations[i].Status == IllustrationStatusGenerated {
			return &p.Illustrations[i]
		}
	}
	return nil
}

// Translation is an alternate-language rendering of the same transcript. When
// Words is empty the translation text is shown without highlighting.
type Translation struct {
	Language string `json:"language"`
	Text     string `json:"text"`
	Words    []Word `json:"words,omitempty"`
}
