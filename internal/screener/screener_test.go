package screener

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/requirements"
	"github.com/jonathan/resume-screener/internal/types"
)

const validJD = "We are hiring a senior Go engineer to build distributed scoring pipelines on PostgreSQL and GCP."

// stubOracle parses any job description into a fixed requirement set.
type stubOracle struct{}

func (stubOracle) ScoreCandidate(_ context.Context, _ string, _ *types.RequirementSet) (types.ScoreBreakdown, error) {
	return types.ScoreBreakdown{OverallScore: 70}, nil
}

func (stubOracle) ParseRequirements(_ context.Context, _ string) (*types.RequirementSet, error) {
	return &types.RequirementSet{RequiredSkills: []string{"Go", "PostgreSQL"}}, nil
}

// stubRowScreener scores row N as N*10 and fails rows in failRows.
type stubRowScreener struct {
	failRows map[int]types.Kind
}

func (s *stubRowScreener) Screen(_ context.Context, row types.CandidateRow, _ *types.RequirementSet) (*types.CandidateRecord, error) {
	if kind, ok := s.failRows[row.RowNumber]; ok {
		return nil, types.E(kind, "row %d failed", row.RowNumber)
	}
	return &types.CandidateRecord{
		Name:          row.Name,
		ResumeLocator: row.ResumeLocator,
		Breakdown:     types.ScoreBreakdown{OverallScore: row.RowNumber * 10},
	}, nil
}

func newScreener(failRows map[int]types.Kind) *Screener {
	extractor := requirements.NewExtractor(stubOracle{})
	return New(extractor, &stubRowScreener{failRows: failRows}, zap.NewNop(), 2)
}

func row(n int, name string) types.CandidateRow {
	return types.CandidateRow{RowNumber: n, Name: name, ResumeLocator: "1AbC_dEf-123456789"}
}

func TestRunBatch_RequiresActiveRequirements(t *testing.T) {
	s := newScreener(nil)

	_, err := s.RunBatch(context.Background(), []types.CandidateRow{row(1, "Jane")})
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.KindRequirementsNotSet))
}

func TestSetRequirements_Lifecycle(t *testing.T) {
	s := newScreener(nil)

	reqs, err := s.SetRequirements(context.Background(), validJD)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, reqs.RequiredSkills)
	require.NotNil(t, s.Requirements())

	_, err = s.SetRequirements(context.Background(), validJD)
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.KindAlreadySet))

	s.ResetRequirements()
	assert.Nil(t, s.Requirements())

	_, err = s.SetRequirements(context.Background(), validJD)
	require.NoError(t, err)
}

func TestResetRequirements_ClearsDependentState(t *testing.T) {
	s := newScreener(map[int]types.Kind{3: types.KindFetchNotFound})
	_, err := s.SetRequirements(context.Background(), validJD)
	require.NoError(t, err)

	result, err := s.RunBatch(context.Background(), []types.CandidateRow{
		row(1, "Jane"), row(2, "Wei"), row(3, "Broken"),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, 1, result.FailCount)
	assert.Len(t, s.ListCandidates(), 2)
	assert.Len(t, s.FailedCandidates(), 1)

	s.ResetRequirements()

	assert.Nil(t, s.Requirements())
	assert.Empty(t, s.ListCandidates())
	assert.Empty(t, s.FailedCandidates())
}

func TestProcessCandidate_SuccessAndFailure(t *testing.T) {
	s := newScreener(map[int]types.Kind{9: types.KindUnsupportedFormat})
	_, err := s.SetRequirements(context.Background(), validJD)
	require.NoError(t, err)

	record, err := s.ProcessCandidate(context.Background(), row(4, "Jane"))
	require.NoError(t, err)
	assert.NotZero(t, record.ID)
	assert.Equal(t, 1, record.Rank)
	assert.Equal(t, 40, record.Breakdown.OverallScore)

	_, err = s.ProcessCandidate(context.Background(), row(9, "Scan Only"))
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.KindUnsupportedFormat))

	failures := s.FailedCandidates()
	require.Len(t, failures, 1)
	assert.Equal(t, 9, failures[0].RowNumber)
	assert.Equal(t, types.KindUnsupportedFormat, failures[0].ErrorKind)
}

func TestProcessCandidate_RequiresActiveRequirements(t *testing.T) {
	s := newScreener(nil)

	_, err := s.ProcessCandidate(context.Background(), row(1, "Jane"))
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.KindRequirementsNotSet))
}

func TestCandidateAccessors(t *testing.T) {
	s := newScreener(nil)
	_, err := s.SetRequirements(context.Background(), validJD)
	require.NoError(t, err)

	_, err = s.RunBatch(context.Background(), []types.CandidateRow{
		row(1, "Jane"), row(2, "Wei"), row(3, "Amara"),
	})
	require.NoError(t, err)

	ranked := s.ListCandidates()
	require.Len(t, ranked, 3)
	assert.Equal(t, "Amara", ranked[0].Name)

	got, err := s.GetCandidate(ranked[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Amara", got.Name)

	require.NoError(t, s.DeleteCandidate(ranked[0].ID))
	assert.Len(t, s.ListCandidates(), 2)
	assert.Equal(t, 1, s.ListCandidates()[0].Rank)

	err = s.DeleteCandidate(9999)
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.KindNotFound))

	s.ClearCandidates()
	assert.Empty(t, s.ListCandidates())
	assert.Empty(t, s.FailedCandidates())
	assert.NotNil(t, s.Requirements(), "clearing candidates must not touch the requirement set")
}

func TestStats(t *testing.T) {
	s := newScreener(nil)

	stats := s.Stats()
	assert.Zero(t, stats.Count)
	assert.False(t, stats.RequirementSetActive)

	_, err := s.SetRequirements(context.Background(), validJD)
	require.NoError(t, err)
	_, err = s.RunBatch(context.Background(), []types.CandidateRow{
		row(5, "Jane"), row(9, "Wei"),
	})
	require.NoError(t, err)

	stats = s.Stats()
	assert.Equal(t, 2, stats.Count)
	assert.True(t, stats.RequirementSetActive)
	assert.Equal(t, 90, stats.TopScore)
	assert.Equal(t, 50, stats.LowestScore)
	assert.InDelta(t, 70.0, stats.AverageScore, 0.001)
	assert.Equal(t, 1, stats.ScoreDistribution["90-100"])
	assert.Equal(t, 1, stats.ScoreDistribution["0-59"])
}
