package ranking

import (
	"sort"

	"github.com/jonathan/resume-screener/internal/types"
)

// Rerank sorts records by descending overall score, breaking ties by
// ascending insertion sequence, and assigns 1-based contiguous ranks.
// The slice is sorted in place; records are mutated through their pointers.
//
// The insertion-seq tie-break makes the ordering stable and deterministic
// across re-runs: two candidates can never compare equal.
func Rerank(records []*types.CandidateRecord) {
	sort.Slice(records, func(i, j int) bool {
		if records[i].Breakdown.OverallScore != records[j].Breakdown.OverallScore {
			return records[i].Breakdown.OverallScore > records[j].Breakdown.OverallScore
		}
		return records[i].InsertionSeq < records[j].InsertionSeq
	})

	for i, record := range records {
		record.Rank = i + 1
	}
}
