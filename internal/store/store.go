// Package store provides the exclusive-access candidate store and the
// failure log accumulated during batch screening.
package store

import (
	"sync"
	"time"

	"github.com/jonathan/resume-screener/internal/ranking"
	"github.com/jonathan/resume-screener/internal/types"
)

// CandidateStore maps candidate ids to records and maintains the ranked
// view. All mutations happen under a single mutex; ranks are recomputed
// inside the same critical section so readers never observe a record
// mid-re-rank.
type CandidateStore struct {
	mu      sync.RWMutex
	records map[int64]*types.CandidateRecord
	ranked  []*types.CandidateRecord
	nextID  int64
	nextSeq int64
}

// NewCandidateStore creates an empty store.
func NewCandidateStore() *CandidateStore {
	return &CandidateStore{
		records: make(map[int64]*types.CandidateRecord),
	}
}

// Add assigns an id and insertion sequence to the record, inserts it, and
// re-ranks. Returns the assigned id. Ids are unique for the lifetime of the
// store and are never reused, even after deletions.
func (s *CandidateStore) Add(record types.CandidateRecord) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	s.nextSeq++
	record.ID = s.nextID
	record.InsertionSeq = s.nextSeq
	if record.UploadedAt.IsZero() {
		record.UploadedAt = time.Now()
	}

	stored := record
	s.records[stored.ID] = &stored
	s.ranked = append(s.ranked, &stored)
	ranking.Rerank(s.ranked)

	return stored.ID
}

// Get returns a copy of the record with the given id.
func (s *CandidateStore) Get(id int64) (types.CandidateRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[id]
	if !ok {
		return types.CandidateRecord{}, types.E(types.KindNotFound, "candidate %d not found", id)
	}
	return *record, nil
}

// Delete removes the record with the given id and re-ranks the remainder
// to a gap-free sequence.
func (s *CandidateStore) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return types.E(types.KindNotFound, "candidate %d not found", id)
	}
	delete(s.records, id)

	ranked := s.ranked[:0]
	for _, record := range s.ranked {
		if record.ID != id {
			ranked = append(ranked, record)
		}
	}
	s.ranked = ranked
	ranking.Rerank(s.ranked)

	return nil
}

// Clear empties the store. Id and sequence counters keep counting so a
// cleared store never hands out a previously used id.
func (s *CandidateStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.records) == 0 {
		return
	}
	s.records = make(map[int64]*types.CandidateRecord)
	s.ranked = nil
}

// List returns the ranked candidates as a point-in-time snapshot of copies.
func (s *CandidateStore) List() []types.CandidateRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]types.CandidateRecord, 0, len(s.ranked))
	for _, record := range s.ranked {
		out = append(out, *record)
	}
	return out
}

// Len returns the number of stored candidates.
func (s *CandidateStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Stats scans the current snapshot and summarizes it. Nothing is cached;
// a stats call after a concurrent mutation always reflects the new state.
func (s *CandidateStore) Stats(requirementSetActive bool) types.StoreStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := types.StoreStats{
		Count:                len(s.ranked),
		RequirementSetActive: requirementSetActive,
		ScoreDistribution:    map[string]int{},
	}
	if len(s.ranked) == 0 {
		return stats
	}

	total := 0
	top := 0
	lowest := 100
	for _, record := range s.ranked {
		score := record.Breakdown.OverallScore
		total += score
		if score > top {
			top = score
		}
		if score < lowest {
			lowest = score
		}
		stats.ScoreDistribution[distributionBucket(score)]++
	}

	stats.AverageScore = float64(total) / float64(len(s.ranked))
	stats.TopScore = top
	stats.LowestScore = lowest
	return stats
}

func distributionBucket(score int) string {
	switch {
	case score >= 90:
		return "90-100"
	case score >= 80:
		return "80-89"
	case score >= 70:
		return "70-79"
	case score >= 60:
		return "60-69"
	default:
		return "0-59"
	}
}
