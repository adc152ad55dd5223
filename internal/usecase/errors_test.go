package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestAPIError_Matching(t *testing.T) {
	err := fmt.Errorf("get country: %w", &APIError{StatusCode: 404, Message: "Country not found"})

	if !errors.Is(err, ErrAPI) {
		t.Fatalf("expected ErrAPI match")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected 404 to match ErrNotFound")
	}
	if errors.Is(err, ErrNetwork) {
		t.Fatalf("api error must not match ErrNetwork")
	}
	if got := ServerMessage(err); got != "Country not found" {
		t.Fatalf("unexpected server message: %q", got)
	}
}

func TestNetworkError_Matching(t *testing.T) {
	err := &NetworkError{Method: "GET", Path: "/countries", Err: context.DeadlineExceeded}

	if !errors.Is(err, ErrNetwork) {
		t.Fatalf("expected ErrNetwork match")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected cause to be reachable")
	}
	if ServerMessage(err) != "" {
		t.Fatalf("network errors carry no server message")
	}
}

func TestErrorMessage_Precedence(t *testing.T) {
	apiErr := &APIError{StatusCode: 400, Message: "Code already exists"}
	if got := ErrorMessage(apiErr, "fallback"); got != "Code already exists" {
		t.Fatalf("expected server message, got %q", got)
	}

	plain := errors.New("dial tcp: connection refused")
	if got := ErrorMessage(plain, "fallback"); got != "dial tcp: connection refused" {
		t.Fatalf("expected raw error text, got %q", got)
	}

	if got := ErrorMessage(nil, ""); got != GenericErrorMessage {
		t.Fatalf("expected generic message, got %q", got)
	}
}

func TestMutationMessage_UsesFallbackWithoutServerMessage(t *testing.T) {
	err := &APIError{StatusCode: 500}
	if got := MutationMessage(err, "Failed to create country"); got != "Failed to create country" {
		t.Fatalf("unexpected message: %q", got)
	}
}
