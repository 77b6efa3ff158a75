package utils

import (
	"errors"
	"net/http"
)

// ErrorKind classifies a domain failure so the HTTP layer can pick a status
// code and a flash category without parsing message text.
type ErrorKind string

const (
	KindUnauthenticated   ErrorKind = "unauthenticated"
	KindForbidden         ErrorKind = "forbidden"
	KindNotFound          ErrorKind = "not_found"
	KindDuplicateSlot     ErrorKind = "duplicate_slot"
	KindSlotTaken         ErrorKind = "slot_taken"
	KindInUse             ErrorKind = "in_use"
	KindInvalidTransition ErrorKind = "invalid_transition"
	KindValidation        ErrorKind = "validation_error"
)

// DomainError is the structured outcome surfaced for every expected failure.
// Anything that is not a DomainError is treated as storage unavailability.
type DomainError struct {
	Kind    ErrorKind
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(kind ErrorKind, message string) *DomainError {
	return &DomainError{Kind: kind, Message: message}
}

// AsDomainError unwraps err into a DomainError, or nil if it is not one.
func AsDomainError(err error) *DomainError {
	var de *DomainError
	if errors.As(err, &de) {
		return de
	}
	return nil
}

// IsKind reports whether err is a DomainError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	de := AsDomainError(err)
	return de != nil && de.Kind == kind
}

// HTTPStatus maps an error kind to the response status code.
func (k ErrorKind) HTTPStatus() int {
	switch k {
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindDuplicateSlot, KindSlotTaken, KindInUse, KindInvalidTransition:
		return http.StatusConflict
	case KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Category maps an error kind to the flash category shown by the UI layer.
func (k ErrorKind) Category() string {
	switch k {
	case KindDuplicateSlot, KindInvalidTransition:
		return "warning"
	default:
		return "danger"
	}
}
