// Package scoring provides the scoring oracle: LLM-backed resume scoring
// against a requirement set and requirement parsing from job descriptions.
package scoring

import (
	"context"

	"github.com/jonathan/resume-screener/internal/types"
)

// Oracle is the abstract scoring capability consumed by the pipeline.
// Implementations classify their failures with the types error kinds:
// ScoringTimeout, ScoringRateLimited, ScoringMalformedResponse and
// ScoringUnavailable.
type Oracle interface {
	// ScoreCandidate scores extracted resume text against the active
	// requirement set and returns the full breakdown with the derived
	// overall score populated.
	ScoreCandidate(ctx context.Context, resumeText string, reqs *types.RequirementSet) (types.ScoreBreakdown, error)

	// ParseRequirements converts free-text job description into a
	// structured requirement set. Incomplete oracle output is returned as
	// a best-effort partial set; only an unusable response is an error.
	ParseRequirements(ctx context.Context, jdText string) (*types.RequirementSet, error)
}
