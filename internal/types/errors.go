package types

import (
	"errors"
	"fmt"
)

// Kind classifies an error produced by the screening pipeline.
// Row-level kinds end up on FailedCandidate entries; call-level kinds
// are returned to the caller directly.
type Kind string

// Error kinds recognized by the screening pipeline.
const (
	// Call-level kinds.
	KindInvalidInput       Kind = "InvalidInput"
	KindAlreadySet         Kind = "AlreadySet"
	KindRequirementsNotSet Kind = "RequirementsNotSet"
	KindDuplicateRow       Kind = "DuplicateRow"
	KindNotFound           Kind = "NotFound"

	// Row-level kinds: validation.
	KindLocatorInvalid Kind = "LocatorInvalid"
	KindMissingField   Kind = "MissingField"

	// Row-level kinds: resume fetch.
	KindFetchTimeout      Kind = "FetchTimeout"
	KindFetchAccessDenied Kind = "FetchAccessDenied"
	KindFetchNotFound     Kind = "FetchNotFound"

	// Row-level kinds: text extraction.
	KindUnsupportedFormat Kind = "UnsupportedFormat"
	KindExtractionFailed  Kind = "ExtractionFailed"

	// Row-level kinds: scoring oracle.
	KindScoringTimeout           Kind = "ScoringTimeout"
	KindScoringRateLimited       Kind = "ScoringRateLimited"
	KindScoringMalformedResponse Kind = "ScoringMalformedResponse"
	KindScoringUnavailable       Kind = "ScoringUnavailable"
)

// Retryable reports whether an error of this kind is transient and worth
// retrying with backoff before being finalized as a failure.
func (k Kind) Retryable() bool {
	return k == KindFetchTimeout || k == KindScoringRateLimited
}

// Error is a classified error carrying a taxonomy kind alongside a
// human-readable message. It wraps an optional cause.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// E builds a classified error with a formatted message.
func E(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds a classified error around a cause.
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// KindOf extracts the classification from err. Unclassified errors map to
// the empty kind.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return ""
}

// IsKind reports whether err carries the given classification.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
