package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorCode represents standardized error codes for the API
type ErrorCode string

const (
	// Client Error Codes (4xx)
	ErrorCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	ErrorCodeRateLimited    ErrorCode = "RATE_LIMITED"
	ErrorCodeNotFound       ErrorCode = "NOT_FOUND"

	// Server Error Codes (5xx)
	ErrorCodeInternalError     ErrorCode = "INTERNAL_ERROR"
	ErrorCodeSearchUnavailable ErrorCode = "SEARCH_UNAVAILABLE"
)

// Client-facing summaries. They never carry internal detail.
const (
	searchUnavailableMessage = "Search service unavailable"
	rateLimitedMessage       = "Too many requests. Please try again later."
	defaultErrorSummary      = "Request failed"
)

// errorSummaries maps codes to the top-level error string clients display
var errorSummaries = map[ErrorCode]string{
	ErrorCodeSearchUnavailable: searchUnavailableMessage,
	ErrorCodeRateLimited:       rateLimitedMessage,
}

// ErrorDetail provides additional context for an error
type ErrorDetail struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// APIError represents a standardized API error response
type APIError struct {
	Error     string        `json:"error"`
	Code      ErrorCode     `json:"code"`
	Message   string        `json:"message"`
	Details   []ErrorDetail `json:"details,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
	RequestID string        `json:"request_id,omitempty"`
}

// APIErrorResponse creates a standardized error response
func APIErrorResponse(code ErrorCode, message string, details ...ErrorDetail) *APIError {
	summary, ok := errorSummaries[code]
	if !ok {
		summary = defaultErrorSummary
	}
	return &APIError{
		Error:     summary,
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now(),
	}
}

// SendError sends a standardized error response
func SendError(c *gin.Context, statusCode int, code ErrorCode, message string, details ...ErrorDetail) {
	errorResponse := APIErrorResponse(code, message, details...)

	// Add request ID if available
	if requestID, exists := c.Get(requestIDKey); exists {
		if id, ok := requestID.(string); ok {
			errorResponse.RequestID = id
		}
	}

	c.JSON(statusCode, errorResponse)
}

// SendSearchUnavailableError sends the generic search failure. The cause is logged by the caller, never returned.
func SendSearchUnavailableError(c *gin.Context) {
	SendError(c, http.StatusInternalServerError, ErrorCodeSearchUnavailable, searchUnavailableMessage)
}

// SendRateLimitedError sends a standardized too many requests error
func SendRateLimitedError(c *gin.Context) {
	c.Abort()
	SendError(c, http.StatusTooManyRequests, ErrorCodeRateLimited, rateLimitedMessage)
}

// SendInternalError sends a standardized internal server error
func SendInternalError(c *gin.Context, operation string) {
	SendError(c, http.StatusInternalServerError, ErrorCodeInternalError,
		"Internal error during "+operation)
}

// SendNotFoundError sends a standardized route not found error
func SendNotFoundError(c *gin.Context) {
	SendError(c, http.StatusNotFound, ErrorCodeNotFound,
		"Route '"+c.Request.URL.Path+"' not found")
}
