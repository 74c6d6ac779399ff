package story

// UploadStoryResponse is returned after a successful upload. Processing
// continues asynchronously; the client polls the status endpoint with the
// returned id.
type UploadStoryResponse struct {
	StoryID string `json:"story_id"`
}
