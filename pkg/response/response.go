package response

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Envelope statuses.
const (
	StatusSuccess = "SUCCESS"
	StatusError   = "ERROR"
)

// Operation messages returned in the success envelope.
const (
	MsgUsersFetched = "Users fetched successfully"
	MsgUserFetched  = "User fetched successfully"
	MsgUserCreated  = "User created successfully"
	MsgUserUpdated  = "User updated successfully"
	MsgUserDeleted  = "User deleted successfully"
)

// TimeLayout renders timestamps as fixed-format UTC strings with millisecond
// precision, e.g. 2025-01-02T15:04:05.123Z.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatTime renders t in the wire format.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// APIResponse is the uniform success envelope wrapping every API outcome.
type APIResponse[T any] struct {
	StatusCode int    `json:"statusCode"`
	Status     string `json:"status"`
	Message    string `json:"message"`
	Data       T      `json:"data"`
}

// Success writes the success envelope with the given payload.
func Success[T any](c *gin.Context, status int, message string, data T) {
	c.JSON(status, APIResponse[T]{
		StatusCode: status,
		Status:     StatusSuccess,
		Message:    message,
		Data:       data,
	})
}

// APIError is the uniform error envelope.
type APIError struct {
	Timestamp string `json:"timestamp"`
	Status    int    `json:"status"`
	Error     string `json:"error"`
	Message   string `json:"message"`
	Path      string `json:"path"`
}

// Error writes the error envelope. title is the short reason phrase for the
// status; message carries the detail.
func Error(c *gin.Context, status int, title, message string) {
	c.JSON(status, APIError{
		Timestamp: FormatTime(time.Now()),
		Status:    status,
		Error:     title,
		Message:   message,
		Path:      c.Request.URL.Path,
	})
}
