package entities

import (
	"time"
)

// ProcessingStep represents a stage in the upload-processing pipeline
type ProcessingStep string

const (
	ProcessingStepUploading    ProcessingStep = "uploading"
	ProcessingStepTranscribing ProcessingStep = "transcribing"
	ProcessingStepEnhancing    ProcessingStep = "enhancing"
	ProcessingStepAnalyzing    ProcessingStep = "analyzing"
	ProcessingStepTranslating  ProcessingStep = "translating"
	ProcessingStepPublished    ProcessingStep = "published"
	ProcessingStepFailed       ProcessingStep = "failed"
)

// IsTerminal reports whether no further status transitions will occur. The
// backend may emit intermediate steps this client does not know about, so
// anything that is not published or failed is treated as in-progress.
func (s ProcessingStep) IsTerminal() bool {
	return s == ProcessingStepPublished || s == ProcessingStepFailed
}

// ProcessingStatus is the ephemeral processing state of an uploaded story. It
// is polled from the backend until a terminal step is reached, then discarded.
type ProcessingStatus struct {
	StoryID            string         `json:"story_id"`
	CurrentStep        ProcessingStep `json:"current_step"`
	ProgressPercentage int            `json:"progress_percentage"`
	Message            string         `json:"message"`
	Error              string         `json:"error,omitempty"`
	TranscriptText     string         `json:"transcript_text,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
}
