package escolar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"
)

// TransportError is returned when no HTTP response was received at all:
// DNS failure, refused connection, or the client timeout elapsing.
type TransportError struct {
	// Timeout is true when the failure was an elapsed-time abort rather
	// than a reachability problem.
	Timeout bool
	Err     error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("request timed out: %v", e.Err)
	}
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error { return e.Err }

// ResponseError is returned when the server answered with an error
// status. Body holds the raw server body; Message the human-readable
// message parsed from it, when one was present.
type ResponseError struct {
	StatusCode int
	Body       []byte
	Message    string
}

// Error implements the error interface.
func (e *ResponseError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server responded %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("server responded %d", e.StatusCode)
}

// newTransportError wraps a request failure, detecting timeouts.
func newTransportError(err error) *TransportError {
	return &TransportError{Timeout: isTimeout(err), Err: err}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	// http.Client surfaces its own timeout as a plain wrapped error.
	return strings.Contains(err.Error(), "Client.Timeout exceeded")
}

// newResponseError parses the server error body. The service emits
// Nest-style bodies where "message" is either a string or a list of
// field-level strings.
func newResponseError(status int, body []byte) *ResponseError {
	re := &ResponseError{StatusCode: status, Body: body}

	var single struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &single); err == nil && single.Message != "" {
		re.Message = single.Message
		return re
	}

	var multi struct {
		Message []string `json:"message"`
	}
	if err := json.Unmarshal(body, &multi); err == nil && len(multi.Message) > 0 {
		re.Message = strings.Join(multi.Message, "; ")
	}
	return re
}
