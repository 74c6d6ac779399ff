package errors

// ErrorCode identifies the category of an AppError
type ErrorCode int

const (
	ErrorCode_UNKNOWN ErrorCode = iota
	ErrorCode_INTERNAL
	ErrorCode_INVALID_ARGUMENT
	ErrorCode_NOT_FOUND
	ErrorCode_UNAUTHENTICATED
	ErrorCode_AUTH_TOKEN_REJECTED
	ErrorCode_STORY_NOT_FOUND
	ErrorCode_UPLOAD_FAILED
	ErrorCode_TRANSPORT_FAILED
	ErrorCode_RESPONSE_DECODE_FAILED
	ErrorCode_POLL_TIMEOUT
	ErrorCode_PROCESSING_FAILED
	ErrorCode_HTTP_OK
)

// String returns a human-readable name for the error code
func (c ErrorCode) String() string {
	switch c {
	case ErrorCode_INTERNAL:
		return "INTERNAL"
	case ErrorCode_INVALID_ARGUMENT:
		return "INVALID_ARGUMENT"
	case ErrorCode_NOT_FOUND:
		return "NOT_FOUND"
	case ErrorCode_UNAUTHENTICATED:
		return "UNAUTHENTICATED"
	case ErrorCode_AUTH_TOKEN_REJECTED:
		return "AUTH_TOKEN_REJECTED"
	case ErrorCode_STORY_NOT_FOUND:
		return "STORY_NOT_FOUND"
	case ErrorCode_UPLOAD_FAILED:
		return "UPLOAD_FAILED"
	case ErrorCode_TRANSPORT_FAILED:
		return "TRANSPORT_FAILED"
	case ErrorCode_RESPONSE_DECODE_FAILED:
		return "RESPONSE_DECODE_FAILED"
	case ErrorCode_POLL_TIMEOUT:
		return "POLL_TIMEOUT"
	case ErrorCode_PROCESSING_FAILED:
		return "PROCESSING_FAILED"
	case ErrorCode_HTTP_OK:
		return "OK"
	default:
		return "UNKNOWN"
	}
}
