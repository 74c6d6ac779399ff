package common

// Response is the standard success envelope for story endpoints
type Response struct {
	Code    int         `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorBody is the standard error envelope
type ErrorBody struct {
	Code    int    `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Info    string `json:"info,omitempty"`
}

// Pagination carries list paging metadata
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
	TotalItems int64 `json:"total_items"`
}
