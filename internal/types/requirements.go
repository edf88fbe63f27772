// Package types defines the data model shared across the screening pipeline.
package types

// RequirementSet is the structured screening criteria derived from a job
// description. Exactly one set is active at a time; it is immutable once set
// and destroyed only by an explicit reset.
type RequirementSet struct {
	RequiredSkills     []string `json:"required_skills"`
	NiceToHaveSkills   []string `json:"nice_to_have_skills"`
	MinExperienceYears int      `json:"min_experience_years"`
	EducationLevel     string   `json:"education_level"`
	Keywords           []string `json:"keywords"`
}

// IsEmpty reports whether the parse yielded nothing usable: no skills, no
// keywords, no experience floor, and no education label.
func (r *RequirementSet) IsEmpty() bool {
	return len(r.RequiredSkills) == 0 &&
		len(r.NiceToHaveSkills) == 0 &&
		len(r.Keywords) == 0 &&
		r.MinExperienceYears == 0 &&
		r.EducationLevel == ""
}

// Normalize replaces nil slices with empty ones and clamps the experience
// floor at zero so partial parses default cleanly instead of failing.
func (r *RequirementSet) Normalize() {
	if r.RequiredSkills == nil {
		r.RequiredSkills = []string{}
	}
	if r.NiceToHaveSkills == nil {
		r.NiceToHaveSkills = []string{}
	}
	if r.Keywords == nil {
		r.Keywords = []string{}
	}
	if r.MinExperienceYears < 0 {
		r.MinExperienceYears = 0
	}
}
