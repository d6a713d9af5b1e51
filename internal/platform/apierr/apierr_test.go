package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestFrom(t *testing.T) {
	if From(nil) != nil {
		t.Fatalf("From(nil) should be nil")
	}

	wrapped := fmt.Errorf("generate: %w", Forbidden("forbidden", errors.New("admin role required")))
	got := From(wrapped)
	if got.Status != http.StatusForbidden || got.Code != "forbidden" {
		t.Fatalf("unexpected: %+v", got)
	}

	plain := From(errors.New("boom"))
	if plain.Status != http.StatusInternalServerError || plain.Code != "internal" {
		t.Fatalf("unexpected: %+v", plain)
	}

	zero := From(&Error{Code: "x"})
	if zero.Status != http.StatusInternalServerError {
		t.Fatalf("zero status should map to 500, got %d", zero.Status)
	}
}

func TestErrorString(t *testing.T) {
	if got := New(http.StatusBadRequest, "invalid_body", nil).Error(); got != "invalid_body" {
		t.Fatalf("got=%q", got)
	}
	if got := New(http.StatusTeapot, "", nil).Error(); got != "api error (418)" {
		t.Fatalf("got=%q", got)
	}
}
