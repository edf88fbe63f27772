package types

// ScoreBreakdown holds the four sub-scores returned by the scoring oracle
// plus the derived overall score. OverallScore is always the weighted,
// rounded, clamped function of the sub-scores and is never set directly by
// callers outside the ranking package.
type ScoreBreakdown struct {
	SkillsMatch     int              `json:"skills_match"`
	ExperienceMatch int              `json:"experience_match"`
	EducationMatch  int              `json:"education_match"`
	KeywordsMatch   int              `json:"keywords_match"`
	OverallScore    int              `json:"overall_score"`
	Explanation     ScoreExplanation `json:"explanation"`
}

// ScoreExplanation is the oracle's narrative justification for a breakdown.
type ScoreExplanation struct {
	Overall    string   `json:"overall"`
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
}
