package errors

const (
	HttpInternalError          = "internal_error"
	HttpInvalidJsonError       = "invalid_json"
	HttpInvalidQueryError      = "invalid_query"
	HttpJobNotFoundError       = "job_not_found"
	HttpAnnotationInvalidError = "annotation_validation_failed"
	HttpDuplicateAnnotation    = "duplicate_annotation"
)

// ErrorResponse is the error response body for API errors.
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}
