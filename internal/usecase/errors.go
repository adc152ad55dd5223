package usecase

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrNetwork               = errors.New("network error")
	ErrAPI                   = errors.New("api error")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrClosed                = errors.New("query closed")
)

// GenericErrorMessage is shown when neither the server nor the transport
// produced anything readable.
const GenericErrorMessage = "An error occurred"

// APIError is a non-2xx response from the ranking service.
type APIError struct {
	StatusCode int
	Message    string
	Method     string
	Path       string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
}

func (e *APIError) Is(target error) bool {
	switch target {
	case ErrAPI:
		return true
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrInvalidInput:
		return e.StatusCode == http.StatusBadRequest || e.StatusCode == http.StatusUnprocessableEntity
	default:
		return false
	}
}

// NetworkError is a transport failure: connection refused, timeout, open
// circuit.
type NetworkError struct {
	Method string
	Path   string
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s: network error", e.Method, e.Path)
	}
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}

// ServerMessage returns the message the service put in its error body, if any.
func ServerMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return strings.TrimSpace(apiErr.Message)
	}
	return ""
}

// ErrorMessage picks the text to show for err: the server message, then the
// error text, then fallback, then GenericErrorMessage.
func ErrorMessage(err error, fallback string) string {
	if msg := ServerMessage(err); msg != "" {
		return msg
	}
	if err != nil {
		if msg := strings.TrimSpace(err.Error()); msg != "" {
			return msg
		}
	}
	if fallback = strings.TrimSpace(fallback); fallback != "" {
		return fallback
	}
	return GenericErrorMessage
}

// MutationMessage is what a failed write shows: the server message when the
// service sent one, otherwise the fixed fallback for the operation.
func MutationMessage(err error, fallback string) string {
	if msg := ServerMessage(err); msg != "" {
		return msg
	}
	if fallback = strings.TrimSpace(fallback); fallback != "" {
		return fallback
	}
	return GenericErrorMessage
}
