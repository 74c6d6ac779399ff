package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/storykeep/storykeep/errors"
	"github.com/storykeep/storykeep/internal/domain/entities"
)

// pipelineStage is one step of the simulated processing pipeline
type pipelineStage struct {
	step     entities.ProcessingStep
	progress int
	message  string
}

// processingPipeline is the stage sequence a freshly uploaded story walks
// through. Every status poll advances the story one stage, so a poller sees a
// realistic progression without any real processing happening.
var processingPipeline = []pipelineStage{
	{entities.ProcessingStepUploading, 10, "Storing your recording"},
	{entities.ProcessingStepTranscribing, 30, "Transcribing the audio"},
	{entities.ProcessingStepEnhancing, 50, "Cleaning up the transcript"},
	{entities.ProcessingStepAnalyzing, 65, "Splitting into paragraphs"},
	{entities.ProcessingStepTranslating, 85, "Translating the transcript"},
	{entities.ProcessingStepPublished, 100, "Your story is ready"},
}

// Status reports the processing state of a story. Stories that were seeded
// rather than uploaded are already published. The response body is bare JSON,
// not the envelope: it mirrors the real status endpoint contract.
func (h *StoryHandler) Status(c echo.Context) error {
	id := c.Param("id")

	h.mu.Lock()
	s, ok := h.stories[id]
	var stage pipelineStage
	if ok {
		idx, inPipeline := h.pipeline[id]
		switch {
		case !inPipeline:
			stage = processingPipeline[len(processingPipeline)-1]
		default:
			stage = processingPipeline[idx]
			if idx < len(processingPipeline)-1 {
				h.pipeline[id] = idx + 1
			} else {
				s.IsPublished = true
				delete(h.pipeline, id)
			}
		}
	}
	h.mu.Unlock()

	if !ok {
		return HandleError(h.logger, c, errors.ErrStoryNotFound(id))
	}

	if h.logger != nil {
		h.logger.Info("status poll",
			zap.String("story_id", id),
			zap.String("step", string(stage.step)),
			zap.Int("progress", stage.progress),
		)
	}

	return c.JSON(http.StatusOK, entities.ProcessingStatus{
		StoryID:            id,
		CurrentStep:        stage.step,
		ProgressPercentage: stage.progress,
		Message:            stage.message,
		CreatedAt:          time.Now().UTC(),
	})
}
