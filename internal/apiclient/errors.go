package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

// TransportError means the backend could not be reached at all.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ServerError means the backend answered with a non-2xx status.
type ServerError struct {
	Status int
	Body   string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Status, http.StatusText(e.Status))
}

// DecodeError means the response body was not the JSON we expected.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Humanize turns a client error into a short message suitable for the
// status line or a CLI error. Unknown errors pass through unchanged.
func Humanize(err error) string {
	if err == nil {
		return ""
	}
	var te *TransportError
	if errors.As(err, &te) {
		return "cannot reach server"
	}
	var se *ServerError
	if errors.As(err, &se) {
		return fmt.Sprintf("server error (HTTP %d)", se.Status)
	}
	var de *DecodeError
	if errors.As(err, &de) {
		return "unexpected response from server"
	}
	return err.Error()
}
