package story

// UploadStoryRequest carries the metadata fields of a multipart story upload
type UploadStoryRequest struct {
	Title       string `json:"title" form:"title" validate:"required,min=1,max=200"`
	Description string `json:"description,omitempty" form:"description" validate:"max=2000"`
	Language    string `json:"language,omitempty" form:"language" validate:"omitempty,bcp47_language_tag"`
}

// UpdateStoryRequest updates the mutable metadata of a story. Nil fields are
// left unchanged.
type UpdateStoryRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
}

// ListStoriesRequest holds the query parameters of the list/search endpoint
type ListStoriesRequest struct {
	Page     int    `query:"page" validate:"omitempty,min=1"`
	PageSize int    `query:"page_size" validate:"omitempty,min=1,max=100"`
	Query    string `query:"q"`
}
