// Package screener ties the requirement lifecycle, the per-row pipeline,
// batch orchestration, and the candidate store into one facade. Commands
// and handlers talk to the Screener; they never reach into the stages.
package screener

import (
	"context"

	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/batch"
	"github.com/jonathan/resume-screener/internal/requirements"
	"github.com/jonathan/resume-screener/internal/store"
	"github.com/jonathan/resume-screener/internal/types"
)

// Screener is the top-level screening service.
type Screener struct {
	extractor    *requirements.Extractor
	store        *store.CandidateStore
	failures     *store.FailureLog
	orchestrator *batch.Orchestrator
	screenRow    batch.RowScreener
	logger       *zap.Logger
}

// New wires a screener. The orchestrator is built over the given row
// screener, store, and failure log so every surface shares one state.
func New(extractor *requirements.Extractor, screenRow batch.RowScreener, logger *zap.Logger, concurrency int) *Screener {
	if logger == nil {
		logger = zap.NewNop()
	}
	st := store.NewCandidateStore()
	failures := store.NewFailureLog()
	return &Screener{
		extractor:    extractor,
		store:        st,
		failures:     failures,
		orchestrator: batch.NewOrchestrator(screenRow, st, failures, logger, concurrency),
		screenRow:    screenRow,
		logger:       logger,
	}
}

// SetRequirements parses the job description and activates the resulting
// requirement set. Fails with AlreadySet while one is active.
func (s *Screener) SetRequirements(ctx context.Context, jdText string) (*types.RequirementSet, error) {
	return s.extractor.Set(ctx, jdText)
}

// Requirements returns the active requirement set, or nil when none is
// set.
func (s *Screener) Requirements() *types.RequirementSet {
	return s.extractor.Active()
}

// ResetRequirements clears the active requirement set together with all
// ranked candidates and logged failures. Scores are only meaningful
// relative to one requirement basis, so the three always reset together.
func (s *Screener) ResetRequirements() {
	s.extractor.Reset()
	s.store.Clear()
	s.failures.Clear()
	s.logger.Info("requirement set reset, candidate store and failure log cleared")
}

// RunBatch screens all rows against the active requirement set.
func (s *Screener) RunBatch(ctx context.Context, rows []types.CandidateRow) (types.BatchResult, error) {
	reqs := s.extractor.Active()
	if reqs == nil {
		return types.BatchResult{}, types.E(types.KindRequirementsNotSet, "set a requirement set before screening candidates")
	}
	return s.orchestrator.Run(ctx, rows, reqs)
}

// ProcessCandidate screens a single row and commits it on success. The
// failure path matches batch behavior: the row lands in the failure log
// and the classified error is returned.
func (s *Screener) ProcessCandidate(ctx context.Context, row types.CandidateRow) (types.CandidateRecord, error) {
	reqs := s.extractor.Active()
	if reqs == nil {
		return types.CandidateRecord{}, types.E(types.KindRequirementsNotSet, "set a requirement set before screening candidates")
	}

	record, err := s.screenRow.Screen(ctx, row, reqs)
	if err != nil {
		s.failures.Append(types.FailedCandidate{
			RowNumber:     row.RowNumber,
			Name:          row.Name,
			Email:         row.Email,
			Phone:         row.Phone,
			ResumeLocator: row.ResumeLocator,
			ErrorKind:     types.KindOf(err),
			ErrorMessage:  err.Error(),
		})
		return types.CandidateRecord{}, err
	}

	id := s.store.Add(*record)
	return s.store.Get(id)
}

// ListCandidates returns all candidates in rank order.
func (s *Screener) ListCandidates() []types.CandidateRecord {
	return s.store.List()
}

// GetCandidate returns the candidate with the given id.
func (s *Screener) GetCandidate(id int64) (types.CandidateRecord, error) {
	return s.store.Get(id)
}

// DeleteCandidate removes a candidate; the remainder is re-ranked to a
// gap-free sequence.
func (s *Screener) DeleteCandidate(id int64) error {
	return s.store.Delete(id)
}

// ClearCandidates empties the candidate store and the failure log. The
// active requirement set stays in place for subsequent batches.
func (s *Screener) ClearCandidates() {
	s.store.Clear()
	s.failures.Clear()
}

// Stats summarizes the current store contents.
func (s *Screener) Stats() types.StoreStats {
	return s.store.Stats(s.extractor.Active() != nil)
}

// FailedCandidates lists logged failures ordered by row number.
func (s *Screener) FailedCandidates() []types.FailedCandidate {
	return s.failures.List()
}

// ClearFailures discards the failure log.
func (s *Screener) ClearFailures() {
	s.failures.Clear()
}
