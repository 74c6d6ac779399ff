package api

import (
	"context"
	"encoding/json"
	"net/http"

	stdErrors "errors"

	apperrors "github.com/storykeep/storykeep/errors"
	"github.com/storykeep/storykeep/internal/domain/entities"
)

// GetProcessingStatus fetches the current processing state of an uploaded
// story. The status endpoint returns its body bare, without the envelope the
// other story endpoints use. Satisfies processing.StatusFetcher.
func (c *Client) GetProcessingStatus(ctx context.Context, storyID string) (*entities.ProcessingStatus, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/v1/stories/"+storyID+"/status", nil, nil)
	if err != nil {
		return nil, apperrors.ErrTransport("get processing status", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, apperrors.ErrTransport("get processing status", err)
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, "get processing status"); err != nil {
		var appErr apperrors.AppError
		if stdErrors.As(err, &appErr) && appErr.Code == apperrors.ErrorCode_NOT_FOUND {
			return nil, apperrors.ErrStoryNotFound(storyID)
		}
		return nil, err
	}

	var status entities.ProcessingStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, apperrors.ErrResponseDecode("get processing status", err)
	}
	return &status, nil
}
