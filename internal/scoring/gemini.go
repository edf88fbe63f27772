package scoring

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"google.golang.org/api/googleapi"

	"github.com/jonathan/resume-screener/internal/llm"
	"github.com/jonathan/resume-screener/internal/ranking"
	"github.com/jonathan/resume-screener/internal/types"
)

// GeminiOracle implements Oracle on top of the shared LLM client.
type GeminiOracle struct {
	client llm.Client
}

// NewGeminiOracle creates an oracle backed by the given LLM client.
func NewGeminiOracle(client llm.Client) *GeminiOracle {
	return &GeminiOracle{client: client}
}

// ScoreCandidate scores resume text against the requirement set.
func (o *GeminiOracle) ScoreCandidate(ctx context.Context, resumeText string, reqs *types.RequirementSet) (types.ScoreBreakdown, error) {
	prompt := buildScoringPrompt(resumeText, reqs)

	payload, err := o.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return types.ScoreBreakdown{}, classifyTransportError(err)
	}

	if err := validateScorePayload(payload); err != nil {
		return types.ScoreBreakdown{}, types.Wrap(types.KindScoringMalformedResponse, err, "oracle score response rejected")
	}

	var breakdown types.ScoreBreakdown
	if err := json.Unmarshal([]byte(payload), &breakdown); err != nil {
		return types.ScoreBreakdown{}, types.Wrap(types.KindScoringMalformedResponse, err, "oracle score response rejected")
	}

	ranking.ClampSubScores(&breakdown)
	breakdown.OverallScore = ranking.ComputeOverall(breakdown)
	if breakdown.Explanation.Strengths == nil {
		breakdown.Explanation.Strengths = []string{}
	}
	if breakdown.Explanation.Weaknesses == nil {
		breakdown.Explanation.Weaknesses = []string{}
	}

	return breakdown, nil
}

// ParseRequirements extracts a structured requirement set from JD text.
// Missing fields default to empty rather than failing the parse.
func (o *GeminiOracle) ParseRequirements(ctx context.Context, jdText string) (*types.RequirementSet, error) {
	prompt := buildParsePrompt(jdText)

	payload, err := o.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, classifyTransportError(err)
	}

	var reqs types.RequirementSet
	if err := json.Unmarshal([]byte(payload), &reqs); err != nil {
		return nil, types.Wrap(types.KindScoringMalformedResponse, err, "oracle requirement response rejected")
	}

	reqs.Normalize()
	return &reqs, nil
}

// classifyTransportError maps provider errors onto the scoring taxonomy.
func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return types.Wrap(types.KindScoringTimeout, err, "oracle call timed out")
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests:
			return types.Wrap(types.KindScoringRateLimited, err, "oracle rate limit hit")
		case http.StatusServiceUnavailable:
			return types.Wrap(types.KindScoringUnavailable, err, "oracle unavailable")
		}
	}

	return types.Wrap(types.KindScoringUnavailable, err, "oracle call failed")
}
