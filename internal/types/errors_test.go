package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	err := E(KindNotFound, "candidate %d not found", 7)
	assert.Equal(t, "NotFound: candidate 7 not found", err.Error())

	cause := fmt.Errorf("connection reset")
	wrapped := Wrap(KindFetchTimeout, cause, "fetch of abc failed")
	assert.Equal(t, "FetchTimeout: fetch of abc failed: connection reset", wrapped.Error())
	assert.Equal(t, cause, errors.Unwrap(wrapped))
}

func TestKindOf(t *testing.T) {
	err := E(KindDuplicateRow, "row 3 appears twice")
	assert.Equal(t, KindDuplicateRow, KindOf(err))
	assert.True(t, IsKind(err, KindDuplicateRow))
	assert.False(t, IsKind(err, KindNotFound))

	// Classification survives further wrapping.
	outer := fmt.Errorf("batch rejected: %w", err)
	assert.Equal(t, KindDuplicateRow, KindOf(outer))

	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
	assert.Equal(t, Kind(""), KindOf(nil))
}

func TestRetryable(t *testing.T) {
	retryable := []Kind{KindFetchTimeout, KindScoringRateLimited}
	for _, kind := range retryable {
		assert.True(t, kind.Retryable(), "%s", kind)
	}

	terminal := []Kind{
		KindLocatorInvalid, KindMissingField, KindFetchAccessDenied,
		KindFetchNotFound, KindUnsupportedFormat, KindExtractionFailed,
		KindScoringTimeout, KindScoringMalformedResponse, KindScoringUnavailable,
	}
	for _, kind := range terminal {
		require.False(t, kind.Retryable(), "%s", kind)
	}
}
