package handler

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/storykeep/storykeep/errors"
	"github.com/storykeep/storykeep/internal/adapter/dto/common"
	"github.com/storykeep/storykeep/internal/adapter/dto/story"
	"github.com/storykeep/storykeep/internal/domain/entities"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// StoryHandler serves the development backend's story endpoints from an
// in-memory store. It exists so the client, player and poller can be exercised
// locally without the real archive service; it performs no actual
// transcription or illustration work.
type StoryHandler struct {
	logger *zap.Logger

	mu       sync.RWMutex
	stories  map[string]*entities.Story
	pipeline map[string]int // story id -> index into processingPipeline
}

// NewStoryHandler creates a story handler pre-seeded with demo stories
func NewStoryHandler(logger *zap.Logger) *StoryHandler {
	h := &StoryHandler{
		logger:   logger,
		stories:  make(map[string]*entities.Story),
		pipeline: make(map[string]int),
	}
	for _, s := range SeedStories() {
		h.stories[s.ID.String()] = s
	}
	return h
}

// List returns one page of stories, optionally filtered by a search query
func (h *StoryHandler) List(c echo.Context) error {
	var req story.ListStoriesRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid query parameters"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 || req.PageSize > maxPageSize {
		req.PageSize = defaultPageSize
	}

	h.mu.RLock()
	var matched []entities.Story
	for _, s := range h.stories {
		if req.Query == "" || matchesQuery(s, req.Query) {
			matched = append(matched, *s)
		}
	}
	h.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	start := (req.Page - 1) * req.PageSize
	if start > len(matched) {
		start = len(matched)
	}
	end := start + req.PageSize
	if end > len(matched) {
		end = len(matched)
	}

	totalPages := int((total + int64(req.PageSize) - 1) / int64(req.PageSize))
	return HandleSuccess(h.logger, c, map[string]interface{}{
		"stories": matched[start:end],
		"pagination": common.Pagination{
			Page:       req.Page,
			PageSize:   req.PageSize,
			TotalPages: totalPages,
			TotalItems: total,
		},
	})
}

func matchesQuery(s *entities.Story, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(s.Title), q) ||
		strings.Contains(strings.ToLower(s.Description), q) {
		return true
	}
	for _, p := range s.Paragraphs {
		if strings.Contains(strings.ToLower(p.Content), q) {
			return true
		}
	}
	return false
}

// Get returns a single story by id
func (h *StoryHandler) Get(c echo.Context) error {
	id := c.Param("id")

	// Snapshot under the lock; Update and Status mutate the stored story and
	// serialization happens outside the critical section.
	h.mu.RLock()
	s, ok := h.stories[id]
	var snapshot entities.Story
	if ok {
		snapshot = *s
	}
	h.mu.RUnlock()

	if !ok {
		return HandleError(h.logger, c, errors.ErrStoryNotFound(id))
	}
	return HandleSuccess(h.logger, c, snapshot)
}

// Update changes the mutable metadata of a story
func (h *StoryHandler) Update(c echo.Context) error {
	id := c.Param("id")

	var req story.UpdateStoryRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid payload"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	h.mu.Lock()
	s, ok := h.stories[id]
	var snapshot entities.Story
	if ok {
		if req.Title != nil {
			s.Title = *req.Title
		}
		if req.Description != nil {
			s.Description = *req.Description
		}
		s.UpdatedAt = time.Now()
		snapshot = *s
	}
	h.mu.Unlock()

	if !ok {
		return HandleError(h.logger, c, errors.ErrStoryNotFound(id))
	}
	return HandleSuccess(h.logger, c, snapshot)
}

// Delete removes a story
func (h *StoryHandler) Delete(c echo.Context) error {
	id := c.Param("id")

	h.mu.Lock()
	_, ok := h.stories[id]
	delete(h.stories, id)
	delete(h.pipeline, id)
	h.mu.Unlock()

	if !ok {
		return HandleError(h.logger, c, errors.ErrStoryNotFound(id))
	}
	return HandleSuccess(h.logger, c, nil)
}

// Upload accepts a multipart audio upload and registers a new story whose
// simulated processing starts at the first pipeline step
func (h *StoryHandler) Upload(c echo.Context) error {
	var req story.UploadStoryRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid form payload"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument(err.Error()))
	}
	file, err := c.FormFile("audio")
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("audio file is required"))
	}

	s := entities.NewStory(req.Title)
	s.Description = req.Description
	s.Language = req.Language
	s.AudioURL = "/media/" + s.ID.String() + "/" + file.Filename

	h.mu.Lock()
	h.stories[s.ID.String()] = s
	h.pipeline[s.ID.String()] = 0
	h.mu.Unlock()

	if h.logger != nil {
		h.logger.Info("story uploaded",
			zap.String("story_id", s.ID.String()),
			zap.String("title", s.Title),
			zap.String("filename", file.Filename),
			zap.Int64("size", file.Size),
		)
	}

	return HandleSuccess(h.logger, c, story.UploadStoryResponse{StoryID: s.ID.String()})
}
