// Package requirements owns the single active requirement set and its
// lifecycle: created by Set, destroyed only by an explicit Reset.
package requirements

import (
	"context"
	"strings"
	"sync"

	"github.com/jonathan/resume-screener/internal/scoring"
	"github.com/jonathan/resume-screener/internal/types"
)

// Job description length bounds. Shorter texts carry too little signal for
// the oracle to extract anything; the upper bound guards the prompt budget.
const (
	MinJDLength = 50
	MaxJDLength = 10000
)

// Extractor converts job description text into the active requirement set
// via the scoring oracle.
type Extractor struct {
	oracle scoring.Oracle

	mu     sync.RWMutex
	active *types.RequirementSet
	jdText string
}

// NewExtractor creates an extractor backed by the given oracle.
func NewExtractor(oracle scoring.Oracle) *Extractor {
	return &Extractor{oracle: oracle}
}

// Set parses jdText into a requirement set and makes it active.
// Fails with AlreadySet while a set is active: all ranked candidates must
// share one requirement basis, so callers reset first.
func (e *Extractor) Set(ctx context.Context, jdText string) (*types.RequirementSet, error) {
	jdText = strings.TrimSpace(jdText)
	if len(jdText) < MinJDLength {
		return nil, types.E(types.KindInvalidInput, "job description too short: %d chars, minimum %d", len(jdText), MinJDLength)
	}
	if len(jdText) > MaxJDLength {
		return nil, types.E(types.KindInvalidInput, "job description too long: %d chars, maximum %d", len(jdText), MaxJDLength)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.active != nil {
		return nil, types.E(types.KindAlreadySet, "a requirement set is already active; reset it first")
	}

	reqs, err := e.oracle.ParseRequirements(ctx, jdText)
	if err != nil {
		if types.KindOf(err) == types.KindScoringMalformedResponse {
			// Nothing usable could be recovered from the response.
			return nil, types.Wrap(types.KindScoringUnavailable, err, "requirement parsing yielded nothing usable")
		}
		return nil, err
	}

	reqs.Normalize()
	if reqs.IsEmpty() {
		return nil, types.E(types.KindScoringUnavailable, "requirement parsing yielded nothing usable")
	}

	e.active = reqs
	e.jdText = jdText
	return reqs, nil
}

// Reset clears the active requirement set. The caller is responsible for
// clearing dependent state (candidate store, failure log) in the same
// critical section; see the screener.
func (e *Extractor) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.active = nil
	e.jdText = ""
}

// Active returns the active requirement set, or nil when none is set.
// The returned set is shared and must be treated as immutable.
func (e *Extractor) Active() *types.RequirementSet {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.active
}

// JDText returns the raw job description the active set was parsed from.
func (e *Extractor) JDText() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.jdText
}
