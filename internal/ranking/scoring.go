// Package ranking computes overall candidate scores and maintains the
// contiguous rank ordering of the candidate set.
package ranking

import (
	"math"

	"github.com/jonathan/resume-screener/internal/types"
)

// Weights for the overall score. They must sum to 1.0.
const (
	skillsWeight     = 0.40
	experienceWeight = 0.25
	educationWeight  = 0.15
	keywordsWeight   = 0.20
)

// ComputeOverall derives the overall score from the four sub-scores:
// weighted sum, rounded, clamped to [0,100].
func ComputeOverall(b types.ScoreBreakdown) int {
	weighted := skillsWeight*float64(b.SkillsMatch) +
		experienceWeight*float64(b.ExperienceMatch) +
		educationWeight*float64(b.EducationMatch) +
		keywordsWeight*float64(b.KeywordsMatch)

	overall := int(math.Round(weighted))
	if overall < 0 {
		overall = 0
	}
	if overall > 100 {
		overall = 100
	}
	return overall
}

// ClampSubScores forces each sub-score into [0,100]. Out-of-range oracle
// values are clamped rather than rejected.
func ClampSubScores(b *types.ScoreBreakdown) {
	b.SkillsMatch = clamp(b.SkillsMatch)
	b.ExperienceMatch = clamp(b.ExperienceMatch)
	b.EducationMatch = clamp(b.EducationMatch)
	b.KeywordsMatch = clamp(b.KeywordsMatch)
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
