package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	stdErrors "errors"

	apperrors "github.com/storykeep/storykeep/errors"
	"github.com/storykeep/storykeep/internal/adapter/dto/common"
	"github.com/storykeep/storykeep/internal/adapter/dto/story"
	"github.com/storykeep/storykeep/internal/domain/entities"
)

// StoryList is one page of the story catalogue
type StoryList struct {
	Stories    []entities.Story   `json:"stories"`
	Pagination *common.Pagination `json:"pagination,omitempty"`
}

// ListStories fetches one page of published stories
func (c *Client) ListStories(ctx context.Context, page, pageSize int) (*StoryList, error) {
	return c.listStories(ctx, "", page, pageSize)
}

// SearchStories fetches one page of stories matching the query
func (c *Client) SearchStories(ctx context.Context, query string, page, pageSize int) (*StoryList, error) {
	return c.listStories(ctx, query, page, pageSize)
}

func (c *Client) listStories(ctx context.Context, query string, page, pageSize int) (*StoryList, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		q.Set("page_size", strconv.Itoa(pageSize))
	}
	if query != "" {
		q.Set("q", query)
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/v1/stories", q, nil)
	if err != nil {
		return nil, apperrors.ErrTransport("list stories", err)
	}

	var list StoryList
	if err := c.do(req, "list stories", &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetStory fetches a single story with its transcript, translations and
// illustrations
func (c *Client) GetStory(ctx context.Context, storyID string) (*entities.Story, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/v1/stories/"+storyID, nil, nil)
	if err != nil {
		return nil, apperrors.ErrTransport("get story", err)
	}

	var s entities.Story
	if err := c.do(req, "get story", &s); err != nil {
		var appErr apperrors.AppError
		if stdErrors.As(err, &appErr) && appErr.Code == apperrors.ErrorCode_NOT_FOUND {
			return nil, apperrors.ErrStoryNotFound(storyID)
		}
		return nil, err
	}
	return &s, nil
}

// UpdateStory updates the mutable metadata of a story
func (c *Client) UpdateStory(ctx context.Context, storyID string, update story.UpdateStoryRequest) (*entities.Story, error) {
	body, err := json.Marshal(update)
	if err != nil {
		return nil, apperrors.ErrInternal(fmt.Errorf("encode update: %w", err))
	}

	req, err := c.newRequest(ctx, http.MethodPut, "/v1/stories/"+storyID, nil, bytes.NewReader(body))
	if err != nil {
		return nil, apperrors.ErrTransport("update story", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var s entities.Story
	if err := c.do(req, "update story", &s); err != nil {
		var appErr apperrors.AppError
		if stdErrors.As(err, &appErr) && appErr.Code == apperrors.ErrorCode_NOT_FOUND {
			return nil, apperrors.ErrStoryNotFound(storyID)
		}
		return nil, err
	}
	return &s, nil
}

// DeleteStory removes a story from the archive
func (c *Client) DeleteStory(ctx context.Context, storyID string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/v1/stories/"+storyID, nil, nil)
	if err != nil {
		return apperrors.ErrTransport("delete story", err)
	}

	if err := c.do(req, "delete story", nil); err != nil {
		var appErr apperrors.AppError
		if stdErrors.As(err, &appErr) && appErr.Code == apperrors.ErrorCode_NOT_FOUND {
			return apperrors.ErrStoryNotFound(storyID)
		}
		return err
	}
	return nil
}
