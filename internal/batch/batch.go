// Package batch fans a slice of candidate rows out over a bounded worker
// pool and commits the outcomes deterministically. Stage work runs
// concurrently; commits happen after the fan-in, in ascending row-number
// order, so ranks and insertion sequence never depend on completion
// order or pool size.
package batch

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-screener/internal/store"
	"github.com/jonathan/resume-screener/internal/types"
)

// DefaultConcurrency is the worker pool size when none is configured.
const DefaultConcurrency = 5

// RowScreener screens a single row end to end. *pipeline.Pipeline is the
// production implementation.
type RowScreener interface {
	Screen(ctx context.Context, row types.CandidateRow, reqs *types.RequirementSet) (*types.CandidateRecord, error)
}

// Orchestrator runs batches against a shared store and failure log.
type Orchestrator struct {
	screener    RowScreener
	store       *store.CandidateStore
	failures    *store.FailureLog
	logger      *zap.Logger
	concurrency int
}

// NewOrchestrator wires a batch orchestrator. A non-positive concurrency
// falls back to the default pool size.
func NewOrchestrator(screener RowScreener, st *store.CandidateStore, failures *store.FailureLog, logger *zap.Logger, concurrency int) *Orchestrator {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		screener:    screener,
		store:       st,
		failures:    failures,
		logger:      logger,
		concurrency: concurrency,
	}
}

type outcome struct {
	row    types.CandidateRow
	record *types.CandidateRecord
	err    error
}

// Run screens every row and returns the batch summary. Duplicate row
// numbers reject the whole batch before any work starts. An empty batch
// is a successful no-op.
func (o *Orchestrator) Run(ctx context.Context, rows []types.CandidateRow, reqs *types.RequirementSet) (types.BatchResult, error) {
	result := types.BatchResult{
		RunID:            uuid.New(),
		FailedCandidates: []types.FailedCandidate{},
	}

	if err := checkDuplicateRows(rows); err != nil {
		return types.BatchResult{}, err
	}
	if len(rows) == 0 {
		return result, nil
	}

	o.logger.Info("starting batch run",
		zap.String("run_id", result.RunID.String()),
		zap.Int("rows", len(rows)),
		zap.Int("concurrency", o.concurrency),
	)

	outcomes := make([]outcome, len(rows))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for i, row := range rows {
		g.Go(func() error {
			record, err := o.screener.Screen(gctx, row, reqs)
			outcomes[i] = outcome{row: row, record: record, err: err}
			return nil
		})
	}
	// Workers report failures through their outcome slot, never through
	// the group error, so one bad row cannot cancel its siblings.
	_ = g.Wait()

	// Commit in ascending row-number order.
	sort.SliceStable(outcomes, func(a, b int) bool {
		return outcomes[a].row.RowNumber < outcomes[b].row.RowNumber
	})

	for _, out := range outcomes {
		if out.err != nil {
			failed := types.FailedCandidate{
				RowNumber:     out.row.RowNumber,
				Name:          out.row.Name,
				Email:         out.row.Email,
				Phone:         out.row.Phone,
				ResumeLocator: out.row.ResumeLocator,
				ErrorKind:     types.KindOf(out.err),
				ErrorMessage:  out.err.Error(),
			}
			o.failures.Append(failed)
			result.FailedCandidates = append(result.FailedCandidates, failed)
			result.FailCount++

			o.logger.Warn("row failed",
				zap.String("run_id", result.RunID.String()),
				zap.Int("row", out.row.RowNumber),
				zap.String("kind", string(failed.ErrorKind)),
				zap.Error(out.err),
			)
			continue
		}

		o.store.Add(*out.record)
		result.SuccessCount++

		o.logger.Info("row screened",
			zap.String("run_id", result.RunID.String()),
			zap.Int("row", out.row.RowNumber),
			zap.String("name", out.record.Name),
			zap.Int("score", out.record.Breakdown.OverallScore),
		)
	}

	o.logger.Info("batch run finished",
		zap.String("run_id", result.RunID.String()),
		zap.Int("succeeded", result.SuccessCount),
		zap.Int("failed", result.FailCount),
	)

	return result, nil
}

func checkDuplicateRows(rows []types.CandidateRow) error {
	seen := make(map[int]struct{}, len(rows))
	for _, row := range rows {
		if _, dup := seen[row.RowNumber]; dup {
			return types.E(types.KindDuplicateRow, "row number %d appears more than once", row.RowNumber)
		}
		seen[row.RowNumber] = struct{}{}
	}
	return nil
}
