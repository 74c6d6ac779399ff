package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	stdErrors "errors"

	apperrors "github.com/storykeep/storykeep/errors"
	"github.com/storykeep/storykeep/internal/adapter/dto/story"
	"github.com/storykeep/storykeep/internal/domain/entities"
)

func newTestClient(url string) *Client {
	c := NewClient(url, 5*time.Second, nil)
	c.SetToken("test-token")
	return c
}

func TestGetStory_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/stories/abc" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Fatalf("missing bearer token, got %q", got)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"code":    0,
			"message": "success",
			"data": map[string]interface{}{
				"id":        "7b0c2cb4-5a3e-4a39-b1a2-9a6f0a3f51de",
				"title":     "The Weaver and the River",
				"audio_url": "/media/demo/weaver.mp3",
				"paragraphs": []map[string]interface{}{
					{"sequence_order": 0, "content": "Long ago", "start_time": 0.0, "end_time": 6.0},
				},
			},
		})
	}))
	defer ts.Close()

	s, err := newTestClient(ts.URL).GetStory(context.Background(), "abc")
	if err != nil {
		t.Fatalf("GetStory failed: %v", err)
	}
	if s.Title != "The Weaver and the River" {
		t.Errorf("unexpected title %q", s.Title)
	}
	if len(s.Paragraphs) != 1 || !s.Paragraphs[0].HasTiming() {
		t.Errorf("paragraph timing not decoded: %+v", s.Paragraphs)
	}
}

func TestGetStory_NotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	_, err := newTestClient(ts.URL).GetStory(context.Background(), "missing")
	var appErr apperrors.AppError
	if !stdErrors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_STORY_NOT_FOUND {
		t.Fatalf("expected STORY_NOT_FOUND, got %v", err)
	}
}

func TestClient_AuthRejectionIsDistinguishable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	_, err := newTestClient(ts.URL).GetProcessingStatus(context.Background(), "abc")
	var appErr apperrors.AppError
	if !stdErrors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_AUTH_TOKEN_REJECTED {
		t.Fatalf("expected AUTH_TOKEN_REJECTED, got %v", err)
	}
}

func TestClient_ServerErrorIsTransport(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	_, err := newTestClient(ts.URL).GetProcessingStatus(context.Background(), "abc")
	var appErr apperrors.AppError
	if !stdErrors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_TRANSPORT_FAILED {
		t.Fatalf("expected TRANSPORT_FAILED, got %v", err)
	}
}

func TestGetProcessingStatus_BareBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/stories/abc/status" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		// The status endpoint returns bare JSON, no envelope.
		json.NewEncoder(w).Encode(map[string]interface{}{
			"story_id":            "abc",
			"current_step":        "transcribing",
			"progress_percentage": 30,
			"message":             "Transcribing the audio",
		})
	}))
	defer ts.Close()

	status, err := newTestClient(ts.URL).GetProcessingStatus(context.Background(), "abc")
	if err != nil {
		t.Fatalf("GetProcessingStatus failed: %v", err)
	}
	if status.CurrentStep != entities.ProcessingStepTranscribing {
		t.Errorf("unexpected step %q", status.CurrentStep)
	}
	if status.CurrentStep.IsTerminal() {
		t.Error("transcribing must not be terminal")
	}
}

func TestGetProcessingStatus_DecodeFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "not json")
	}))
	defer ts.Close()

	_, err := newTestClient(ts.URL).GetProcessingStatus(context.Background(), "abc")
	var appErr apperrors.AppError
	if !stdErrors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_RESPONSE_DECODE_FAILED {
		t.Fatalf("expected RESPONSE_DECODE_FAILED, got %v", err)
	}
}

func TestUploadStory_MultipartForm(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST got %s", r.Method)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("invalid multipart form: %v", err)
		}
		if got := r.FormValue("title"); got != "Harvest Song" {
			t.Fatalf("title = %q", got)
		}
		if got := r.FormValue("language"); got != "bm" {
			t.Fatalf("language = %q", got)
		}
		file, header, err := r.FormFile("audio")
		if err != nil {
			t.Fatalf("audio part missing: %v", err)
		}
		defer file.Close()
		if header.Filename != "song.mp3" {
			t.Fatalf("filename = %q", header.Filename)
		}
		if got := header.Header.Get("Content-Type"); got != "audio/mp3" {
			t.Fatalf("audio part content type = %q", got)
		}
		content, _ := io.ReadAll(file)
		if string(content) != "fake audio bytes" {
			t.Fatalf("audio content = %q", content)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"code": 0,
			"data": map[string]string{"story_id": "story-42"},
		})
	}))
	defer ts.Close()

	id, err := newTestClient(ts.URL).UploadStory(
		context.Background(),
		story.UploadStoryRequest{Title: "Harvest Song", Language: "bm"},
		"/tmp/song.mp3",
		strings.NewReader("fake audio bytes"),
	)
	if err != nil {
		t.Fatalf("UploadStory failed: %v", err)
	}
	if id != "story-42" {
		t.Errorf("unexpected story id %q", id)
	}
}

// brokenReader yields some bytes, then fails like a disk read error would
type brokenReader struct {
	data []byte
	read bool
}

func (r *brokenReader) Read(p []byte) (int, error) {
	if !r.read {
		r.read = true
		return copy(p, r.data), nil
	}
	return 0, fmt.Errorf("read audio: input/output error")
}

func TestUploadStory_AudioReadFailureAbortsRequest(t *testing.T) {
	var mu sync.Mutex
	storyCreated := false

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// A mid-stream read failure must not leave the backend with a
		// well-formed multipart body; parsing has to fail.
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		mu.Lock()
		storyCreated = true
		mu.Unlock()
		json.NewEncoder(w).Encode(map[string]interface{}{
			"code": 0,
			"data": map[string]string{"story_id": "orphan"},
		})
	}))
	defer ts.Close()

	_, err := newTestClient(ts.URL).UploadStory(
		context.Background(),
		story.UploadStoryRequest{Title: "Interrupted"},
		"tale.mp3",
		&brokenReader{data: []byte("partial audio")},
	)

	var appErr apperrors.AppError
	if !stdErrors.As(err, &appErr) || appErr.Code != apperrors.ErrorCode_UPLOAD_FAILED {
		t.Fatalf("expected UPLOAD_FAILED, got %v", err)
	}
	if !strings.Contains(err.Error(), "input/output error") {
		t.Errorf("expected the read failure as cause, got %v", err)
	}

	mu.Lock()
	created := storyCreated
	mu.Unlock()
	if created {
		t.Error("backend accepted a truncated upload as a complete story")
	}
}

func TestListStories_Pagination(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("page") != "2" || q.Get("page_size") != "10" || q.Get("q") != "river" {
			t.Fatalf("unexpected query %v", q)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"code": 0,
			"data": map[string]interface{}{
				"stories": []map[string]interface{}{
					{"title": "The Weaver and the River", "audio_url": "/a.mp3"},
				},
				"pagination": map[string]interface{}{
					"page": 2, "page_size": 10, "total_pages": 2, "total_items": 11,
				},
			},
		})
	}))
	defer ts.Close()

	list, err := newTestClient(ts.URL).SearchStories(context.Background(), "river", 2, 10)
	if err != nil {
		t.Fatalf("SearchStories failed: %v", err)
	}
	if len(list.Stories) != 1 {
		t.Fatalf("expected 1 story, got %d", len(list.Stories))
	}
	if list.Pagination == nil || list.Pagination.TotalItems != 11 {
		t.Errorf("pagination not decoded: %+v", list.Pagination)
	}
}

func TestClearToken(t *testing.T) {
	var sawAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]interface{}{"code": 0})
	}))
	defer ts.Close()

	c := newTestClient(ts.URL)
	c.ClearToken()
	if _, err := c.ListStories(context.Background(), 1, 10); err != nil {
		t.Fatalf("ListStories failed: %v", err)
	}
	if sawAuth != "" {
		t.Errorf("token still attached after ClearToken: %q", sawAuth)
	}
}
