package playground

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// ErrNullBody is returned when a list endpoint answers with JSON null.
var ErrNullBody = errors.New("playground: response body is null")

// ErrNullAgent is returned when the agents array contains a null element.
var ErrNullAgent = errors.New("playground: null agent in response")

// StatusError reports a non-success HTTP status.
type StatusError struct {
	Op         string
	StatusCode int
	Status     string // reason phrase, e.g. "Not Found"
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: failed with status %d %s", e.Op, e.StatusCode, e.Status)
}

func newStatusError(op string, resp *http.Response) *StatusError {
	return &StatusError{Op: op, StatusCode: resp.StatusCode, Status: statusText(resp)}
}

// statusText extracts the reason phrase the server sent, falling back to
// the standard text for the code.
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}
