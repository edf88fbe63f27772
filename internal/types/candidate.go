package types

import (
	"time"

	"github.com/google/uuid"
)

// CandidateRow is one input record in a batch. Name and ResumeLocator are
// mandatory; the remaining contact fields default to empty when absent.
type CandidateRow struct {
	RowNumber       int     `json:"row_number"`
	Name            string  `json:"name" validate:"required"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	ExperienceYears float64 `json:"experience_years,omitempty"`
	Location        string  `json:"location,omitempty"`
	NoticePeriod    string  `json:"notice_period,omitempty"`
	ResumeLocator   string  `json:"resume_locator" validate:"required"`
}

// CandidateRecord is a successfully screened candidate. ID and InsertionSeq
// are assigned by the store; Rank is recomputed by the ranker after every
// store mutation and never survives a recomputation gap.
type CandidateRecord struct {
	ID              int64          `json:"id"`
	Name            string         `json:"name"`
	Email           string         `json:"email"`
	Phone           string         `json:"phone"`
	ExperienceYears float64        `json:"experience_years,omitempty"`
	Location        string         `json:"location,omitempty"`
	NoticePeriod    string         `json:"notice_period,omitempty"`
	ResumeLocator   string         `json:"resume_locator"`
	ResumeFilename  string         `json:"resume_filename"`
	ResumeText      string         `json:"resume_text"`
	Breakdown       ScoreBreakdown `json:"breakdown"`
	Rank            int            `json:"rank"`
	InsertionSeq    int64          `json:"insertion_seq"`
	UploadedAt      time.Time      `json:"uploaded_at"`
}

// FailedCandidate records a row that reached a terminal failure state,
// keeping the original row fields for manual remediation.
type FailedCandidate struct {
	RowNumber     int    `json:"row_number"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	ResumeLocator string `json:"resume_locator"`
	ErrorKind     Kind   `json:"error_kind"`
	ErrorMessage  string `json:"error_message"`
}

// BatchResult summarizes one batch run. FailedCandidates is ordered by row
// number regardless of completion order.
type BatchResult struct {
	RunID            uuid.UUID         `json:"run_id"`
	SuccessCount     int               `json:"success_count"`
	FailCount        int               `json:"fail_count"`
	FailedCandidates []FailedCandidate `json:"failed_candidates"`
}

// StoreStats is a point-in-time summary of the candidate store, computed on
// demand from the current snapshot.
type StoreStats struct {
	Count                int            `json:"count"`
	AverageScore         float64        `json:"average_score"`
	TopScore             int            `json:"top_score"`
	LowestScore          int            `json:"lowest_score"`
	RequirementSetActive bool           `json:"requirement_set_active"`
	ScoreDistribution    map[string]int `json:"score_distribution"`
}
