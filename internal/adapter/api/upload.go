package api

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"strings"

	apperrors "github.com/storykeep/storykeep/errors"
	"github.com/storykeep/storykeep/internal/adapter/dto/story"
)

// mimeFromExt returns the MIME type for common audio extensions
func mimeFromExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".mp3":
		return "audio/mp3"
	case ".m4a":
		return "audio/m4a"
	case ".wav":
		return "audio/wav"
	case ".flac":
		return "audio/flac"
	case ".ogg":
		return "audio/ogg"
	case ".aac":
		return "audio/aac"
	default:
		return "application/octet-stream"
	}
}

// UploadStory streams an audio recording and its metadata to the backend and
// returns the id of the story created for it. The returned id is what callers
// hand to the processing watcher. The audio is streamed through an io.Pipe so
// large recordings never sit in memory whole.
func (c *Client) UploadStory(ctx context.Context, req story.UploadStoryRequest, filename string, audio io.Reader) (string, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	errCh := make(chan error, 1)
	go func() {
		err := func() error {
			if err := mw.WriteField("title", req.Title); err != nil {
				return err
			}
			if req.Description != "" {
				if err := mw.WriteField("description", req.Description); err != nil {
					return err
				}
			}
			if req.Language != "" {
				if err := mw.WriteField("language", req.Language); err != nil {
					return err
				}
			}

			header := make(textproto.MIMEHeader)
			header.Set("Content-Disposition",
				fmt.Sprintf(`form-data; name="audio"; filename="%s"`, filepath.Base(filename)))
			header.Set("Content-Type", mimeFromExt(filepath.Ext(filename)))
			part, err := mw.CreatePart(header)
			if err != nil {
				return err
			}
			_, err = io.Copy(part, audio)
			return err
		}()
		if err != nil {
			// Abort the request without the terminating boundary. Closing the
			// multipart writer here would hand the backend a well-formed body
			// holding truncated audio, and it would create a corrupt story.
			pw.CloseWithError(err)
			errCh <- err
			return
		}
		if err := mw.Close(); err != nil {
			pw.CloseWithError(err)
			errCh <- err
			return
		}
		pw.Close()
		errCh <- nil
	}()

	httpReq, err := c.newRequest(ctx, http.MethodPost, "/v1/stories", nil, pr)
	if err != nil {
		pr.CloseWithError(err) // unblock the writer goroutine
		return "", apperrors.ErrUploadFailed(err)
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())

	var created story.UploadStoryResponse
	if err := c.do(httpReq, "upload story", &created); err != nil {
		// An aborted body surfaces as a transport error; the underlying read
		// or encode failure is the more useful one to report.
		if writeErr := <-errCh; writeErr != nil {
			return "", apperrors.ErrUploadFailed(writeErr)
		}
		return "", err
	}
	if writeErr := <-errCh; writeErr != nil {
		return "", apperrors.ErrUploadFailed(writeErr)
	}
	return created.StoryID, nil
}
