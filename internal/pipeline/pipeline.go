// Package pipeline screens one candidate row end to end: validation,
// resume fetch, text extraction, and oracle scoring. Every failure is
// classified with a taxonomy kind so batch orchestration can report it
// without inspecting stage internals.
package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/time/rate"

	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/fetch"
	"github.com/jonathan/resume-screener/internal/scoring"
	"github.com/jonathan/resume-screener/internal/types"
)

// Per-stage deadlines. Fetch covers a single download attempt; scoring
// covers one oracle round trip.
const (
	DefaultFetchTimeout   = 30 * time.Second
	DefaultScoringTimeout = 60 * time.Second
)

// Outcome is the result of screening one row. Exactly one of Record or
// Err is set.
type Outcome struct {
	Row    types.CandidateRow
	Record *types.CandidateRecord
	Err    error
}

// Pipeline runs the per-row screening stages. A single Pipeline is
// shared by all batch workers; the rate limiter throttles oracle calls
// across the whole batch.
type Pipeline struct {
	fetcher   fetch.Fetcher
	extractor extraction.Extractor
	oracle    scoring.Oracle
	validate  *validator.Validate
	limiter   *rate.Limiter

	fetchTimeout   time.Duration
	scoringTimeout time.Duration
}

// Option adjusts pipeline construction.
type Option func(*Pipeline)

// WithRateLimiter throttles scoring calls batch-wide.
func WithRateLimiter(limiter *rate.Limiter) Option {
	return func(p *Pipeline) { p.limiter = limiter }
}

// WithTimeouts overrides the per-stage deadlines. Non-positive values
// keep the defaults.
func WithTimeouts(fetchTimeout, scoringTimeout time.Duration) Option {
	return func(p *Pipeline) {
		if fetchTimeout > 0 {
			p.fetchTimeout = fetchTimeout
		}
		if scoringTimeout > 0 {
			p.scoringTimeout = scoringTimeout
		}
	}
}

// New builds a pipeline over the three stage implementations.
func New(fetcher fetch.Fetcher, extractor extraction.Extractor, oracle scoring.Oracle, opts ...Option) *Pipeline {
	p := &Pipeline{
		fetcher:        fetcher,
		extractor:      extractor,
		oracle:         oracle,
		validate:       validator.New(),
		fetchTimeout:   DefaultFetchTimeout,
		scoringTimeout: DefaultScoringTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Screen runs the full stage sequence for one row. The returned record
// has no ID, Rank, or InsertionSeq; those are assigned at commit time.
func (p *Pipeline) Screen(ctx context.Context, row types.CandidateRow, reqs *types.RequirementSet) (*types.CandidateRecord, error) {
	if err := p.validateRow(row); err != nil {
		return nil, err
	}

	data, filename, err := p.fetchResume(ctx, row.ResumeLocator)
	if err != nil {
		return nil, err
	}

	text, err := p.extractor.Extract(data, filename)
	if err != nil {
		return nil, err
	}

	breakdown, err := p.score(ctx, text, reqs)
	if err != nil {
		return nil, err
	}

	return &types.CandidateRecord{
		Name:            row.Name,
		Email:           row.Email,
		Phone:           row.Phone,
		ExperienceYears: row.ExperienceYears,
		Location:        row.Location,
		NoticePeriod:    row.NoticePeriod,
		ResumeLocator:   row.ResumeLocator,
		ResumeFilename:  filename,
		ResumeText:      text,
		Breakdown:       breakdown,
		UploadedAt:      time.Now().UTC(),
	}, nil
}

// validateRow checks required fields and the locator shape before any
// I/O is spent on the row.
func (p *Pipeline) validateRow(row types.CandidateRow) error {
	if err := p.validate.Struct(row); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return types.E(types.KindMissingField, "missing required field %q", fieldName(verrs[0]))
		}
		return types.Wrap(types.KindMissingField, err, "row failed validation")
	}

	if _, ok := fetch.ExtractFileID(row.ResumeLocator); !ok {
		return types.E(types.KindLocatorInvalid, "unrecognized resume locator %q", row.ResumeLocator)
	}

	return nil
}

func (p *Pipeline) fetchResume(ctx context.Context, locator string) (data []byte, filename string, err error) {
	err = withRetry(ctx, FetchRetryPolicy, func(ctx context.Context) error {
		attemptCtx, cancel := context.WithTimeout(ctx, p.fetchTimeout)
		defer cancel()

		data, filename, err = p.fetcher.Fetch(attemptCtx, locator)
		return err
	})
	return data, filename, err
}

func (p *Pipeline) score(ctx context.Context, resumeText string, reqs *types.RequirementSet) (breakdown types.ScoreBreakdown, err error) {
	err = withRetry(ctx, ScoringRetryPolicy, func(ctx context.Context) error {
		if p.limiter != nil {
			if err := p.limiter.Wait(ctx); err != nil {
				return types.Wrap(types.KindScoringTimeout, err, "rate limiter wait aborted")
			}
		}

		attemptCtx, cancel := context.WithTimeout(ctx, p.scoringTimeout)
		defer cancel()

		breakdown, err = p.oracle.ScoreCandidate(attemptCtx, resumeText, reqs)
		return err
	})
	return breakdown, err
}

func fieldName(fe validator.FieldError) string {
	switch fe.Field() {
	case "Name":
		return "name"
	case "ResumeLocator":
		return "resume_locator"
	default:
		return fe.Field()
	}
}
