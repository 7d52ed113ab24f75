package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-writenest/models"
)

// StatusError is returned for every non-2xx response. It unwraps to the
// sentinel matching the status code.
type StatusError struct {
	StatusCode int
	Message    string
	sentinel   error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %s", e.sentinel, e.Message)
}

func (e *StatusError) Unwrap() error {
	return e.sentinel
}

// NewStatusError builds the error for a response with the given status and
// CMS message.
func NewStatusError(status int, message string) *StatusError {
	return &StatusError{
		StatusCode: status,
		Message:    message,
		sentinel:   sentinelFor(status),
	}
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return NewStatusError(resp.StatusCode(), errorMessage(resp))
}

func sentinelFor(status int) error {
	switch status {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusBadGateway:
		return ErrBadGateway
	case http.StatusInternalServerError:
		return ErrInternalServerError
	default:
		return ErrUnexpectedStatus
	}
}

// errorMessage prefers the "error"/"message" field of a JSON body, then the
// raw body, then the status text.
func errorMessage(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))

	var payload models.ErrorResponse
	if err := json.Unmarshal([]byte(body), &payload); err == nil && payload.Text() != "" {
		return payload.Text()
	}
	if body != "" && !strings.HasPrefix(body, "{") {
		return body
	}

	return http.StatusText(resp.StatusCode())
}

// ServerMessage returns the message the CMS attached to a failed response,
// or "" when err is not a status error.
func ServerMessage(err error) string {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Message
	}
	return ""
}

func transportError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrTransport, err)
}
