package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	cases := map[ErrorKind]int{
		KindUnauthenticated:   http.StatusUnauthorized,
		KindForbidden:         http.StatusForbidden,
		KindNotFound:          http.StatusNotFound,
		KindDuplicateSlot:     http.StatusConflict,
		KindSlotTaken:         http.StatusConflict,
		KindInUse:             http.StatusConflict,
		KindInvalidTransition: http.StatusConflict,
		KindValidation:        http.StatusBadRequest,
	}
	for kind, want := range cases {
		if got := kind.HTTPStatus(); got != want {
			t.Errorf("%s.HTTPStatus() = %d, want %d", kind, got, want)
		}
	}
}

func TestCategory(t *testing.T) {
	if got := KindDuplicateSlot.Category(); got != "warning" {
		t.Errorf("DuplicateSlot category = %q, want warning", got)
	}
	if got := KindInvalidTransition.Category(); got != "warning" {
		t.Errorf("InvalidTransition category = %q, want warning", got)
	}
	if got := KindSlotTaken.Category(); got != "danger" {
		t.Errorf("SlotTaken category = %q, want danger", got)
	}
}

func TestAsDomainError(t *testing.T) {
	base := NewDomainError(KindNotFound, "doctor not found")

	if de := AsDomainError(base); de == nil || de.Kind != KindNotFound {
		t.Errorf("AsDomainError() = %+v, want NotFound error", de)
	}

	// Survives wrapping.
	wrapped := fmt.Errorf("loading doctor: %w", base)
	if de := AsDomainError(wrapped); de == nil || de.Message != "doctor not found" {
		t.Errorf("AsDomainError(wrapped) = %+v", de)
	}

	if de := AsDomainError(errors.New("plain")); de != nil {
		t.Errorf("AsDomainError(plain) = %+v, want nil", de)
	}
	if de := AsDomainError(nil); de != nil {
		t.Errorf("AsDomainError(nil) = %+v, want nil", de)
	}
}

func TestIsKind(t *testing.T) {
	err := NewDomainError(KindSlotTaken, "slot taken")
	if !IsKind(err, KindSlotTaken) {
		t.Error("IsKind() = false for matching kind")
	}
	if IsKind(err, KindNotFound) {
		t.Error("IsKind() = true for mismatched kind")
	}
	if IsKind(nil, KindSlotTaken) {
		t.Error("IsKind(nil) = true")
	}
}
