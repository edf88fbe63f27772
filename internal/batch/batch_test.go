package batch

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/store"
	"github.com/jonathan/resume-screener/internal/types"
)

// stubScreener scores row N as N*10 and fails rows listed in failKind.
type stubScreener struct {
	mu       sync.Mutex
	failKind map[int]types.Kind
	delay    func(row int) time.Duration
	calls    int
}

func (s *stubScreener) Screen(_ context.Context, row types.CandidateRow, _ *types.RequirementSet) (*types.CandidateRecord, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()

	if s.delay != nil {
		time.Sleep(s.delay(row.RowNumber))
	}
	if kind, ok := s.failKind[row.RowNumber]; ok {
		return nil, types.E(kind, "row %d rejected", row.RowNumber)
	}
	return &types.CandidateRecord{
		Name:          row.Name,
		Email:         row.Email,
		ResumeLocator: row.ResumeLocator,
		Breakdown:     types.ScoreBreakdown{OverallScore: row.RowNumber * 10},
	}, nil
}

func makeRows(n int) []types.CandidateRow {
	rows := make([]types.CandidateRow, 0, n)
	for i := 1; i <= n; i++ {
		rows = append(rows, types.CandidateRow{
			RowNumber:     i,
			Name:          fmt.Sprintf("Candidate %d", i),
			ResumeLocator: "1AbC_dEf-123456789",
		})
	}
	return rows
}

func newOrchestrator(screener RowScreener, concurrency int) (*Orchestrator, *store.CandidateStore, *store.FailureLog) {
	st := store.NewCandidateStore()
	failures := store.NewFailureLog()
	return NewOrchestrator(screener, st, failures, zap.NewNop(), concurrency), st, failures
}

func TestRun_EmptyBatch(t *testing.T) {
	o, st, _ := newOrchestrator(&stubScreener{}, 0)

	result, err := o.Run(context.Background(), nil, &types.RequirementSet{})
	require.NoError(t, err)
	assert.Zero(t, result.SuccessCount)
	assert.Zero(t, result.FailCount)
	assert.Empty(t, result.FailedCandidates)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", result.RunID.String())
	assert.Zero(t, st.Len())
}

func TestRun_DuplicateRowNumbersRejectWholeBatch(t *testing.T) {
	screener := &stubScreener{}
	o, st, failures := newOrchestrator(screener, 0)

	rows := makeRows(3)
	rows[2].RowNumber = 1

	_, err := o.Run(context.Background(), rows, &types.RequirementSet{})
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.KindDuplicateRow))
	assert.Zero(t, screener.calls, "no row may be screened when the batch is rejected")
	assert.Zero(t, st.Len())
	assert.Zero(t, failures.Len())
}

func TestRun_MixedOutcomes(t *testing.T) {
	screener := &stubScreener{failKind: map[int]types.Kind{
		2: types.KindFetchNotFound,
		4: types.KindScoringMalformedResponse,
	}}
	o, st, failures := newOrchestrator(screener, 3)

	result, err := o.Run(context.Background(), makeRows(5), &types.RequirementSet{})
	require.NoError(t, err)
	assert.Equal(t, 3, result.SuccessCount)
	assert.Equal(t, 2, result.FailCount)

	require.Len(t, result.FailedCandidates, 2)
	assert.Equal(t, 2, result.FailedCandidates[0].RowNumber)
	assert.Equal(t, types.KindFetchNotFound, result.FailedCandidates[0].ErrorKind)
	assert.Equal(t, 4, result.FailedCandidates[1].RowNumber)

	assert.Equal(t, 3, st.Len())
	assert.Equal(t, 2, failures.Len())
}

func TestRun_RanksFollowScores(t *testing.T) {
	o, st, _ := newOrchestrator(&stubScreener{}, 2)

	_, err := o.Run(context.Background(), makeRows(4), &types.RequirementSet{})
	require.NoError(t, err)

	ranked := st.List()
	require.Len(t, ranked, 4)
	// Row 4 scored 40, highest, so it ranks first.
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, "Candidate 4", ranked[0].Name)
	assert.Equal(t, "Candidate 1", ranked[3].Name)
}

func TestRun_DeterministicAcrossPoolSizes(t *testing.T) {
	// Slower low-numbered rows force out-of-order completion in the wide
	// pool; the committed ordering must not notice.
	delay := func(row int) time.Duration {
		return time.Duration(10-row) * time.Millisecond
	}

	snapshot := func(concurrency int) []types.CandidateRecord {
		o, st, _ := newOrchestrator(&stubScreener{delay: delay}, concurrency)
		_, err := o.Run(context.Background(), makeRows(8), &types.RequirementSet{})
		require.NoError(t, err)
		return st.List()
	}

	serial := snapshot(1)
	wide := snapshot(10)

	require.Len(t, wide, len(serial))
	for i := range serial {
		assert.Equal(t, serial[i].Name, wide[i].Name, "position %d", i)
		assert.Equal(t, serial[i].Rank, wide[i].Rank, "position %d", i)
		assert.Equal(t, serial[i].InsertionSeq, wide[i].InsertionSeq, "position %d", i)
	}
}

func TestRun_CommitOrderFollowsRowNumbers(t *testing.T) {
	rows := []types.CandidateRow{
		{RowNumber: 7, Name: "Late Row", ResumeLocator: "1AbC_dEf-123456789"},
		{RowNumber: 2, Name: "Early Row", ResumeLocator: "1AbC_dEf-123456789"},
		{RowNumber: 5, Name: "Middle Row", ResumeLocator: "1AbC_dEf-123456789"},
	}

	o, st, _ := newOrchestrator(&stubScreener{}, 3)
	_, err := o.Run(context.Background(), rows, &types.RequirementSet{})
	require.NoError(t, err)

	bySeq := st.List()
	seqOf := func(name string) int64 {
		for _, r := range bySeq {
			if r.Name == name {
				return r.InsertionSeq
			}
		}
		t.Fatalf("record %q not found", name)
		return 0
	}

	assert.Less(t, seqOf("Early Row"), seqOf("Middle Row"))
	assert.Less(t, seqOf("Middle Row"), seqOf("Late Row"))
}

func TestRun_FailuresAccumulateAcrossRuns(t *testing.T) {
	screener := &stubScreener{failKind: map[int]types.Kind{1: types.KindLocatorInvalid}}
	o, _, failures := newOrchestrator(screener, 1)

	_, err := o.Run(context.Background(), makeRows(1), &types.RequirementSet{})
	require.NoError(t, err)
	_, err = o.Run(context.Background(), makeRows(1), &types.RequirementSet{})
	require.NoError(t, err)

	assert.Equal(t, 2, failures.Len())
}
