package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// Prompt truncation limits. Long inputs are cut rather than rejected so an
// oversized resume still gets scored on its leading content.
const (
	maxJDPromptChars     = 2000
	maxResumePromptChars = 3000
)

// buildScoringPrompt constructs the candidate-scoring prompt.
func buildScoringPrompt(resumeText string, reqs *types.RequirementSet) string {
	var sb strings.Builder

	sb.WriteString("You are an expert HR recruiter and resume analyst. Analyze resumes objectively and provide detailed, fair scoring.\n\n")
	sb.WriteString("JOB REQUIREMENTS:\n")
	sb.WriteString(requirementsText(reqs))
	sb.WriteString("\n\nCANDIDATE RESUME:\n")
	sb.WriteString(truncate(resumeText, maxResumePromptChars))
	sb.WriteString("\n\nSCORING GUIDELINES:\n")
	sb.WriteString("- skills_match (0-100): how well technical skills match the required and nice-to-have skills\n")
	sb.WriteString("- experience_match (0-100): relevant work experience and years against the minimum\n")
	sb.WriteString("- education_match (0-100): education level and field alignment\n")
	sb.WriteString("- keywords_match (0-100): important domain keywords and terminology\n\n")
	sb.WriteString("Be strict but fair. A perfect match is rare (90-100). Good matches are 70-85. Partial matches 50-70.\n\n")
	sb.WriteString("Respond ONLY with valid JSON in this EXACT format:\n")
	sb.WriteString(`{
  "skills_match": <number 0-100>,
  "experience_match": <number 0-100>,
  "education_match": <number 0-100>,
  "keywords_match": <number 0-100>,
  "explanation": {
    "overall": "<overall assessment in 2-3 sentences>",
    "strengths": ["<strength 1>", "<strength 2>"],
    "weaknesses": ["<weakness 1>", "<weakness 2>"]
  }
}`)
	sb.WriteString("\n\nIMPORTANT: Return ONLY the JSON, no markdown, no code blocks, no explanations.")

	return sb.String()
}

// buildParsePrompt constructs the requirement-extraction prompt.
func buildParsePrompt(jdText string) string {
	var sb strings.Builder

	sb.WriteString("You are an expert at analyzing job descriptions and extracting key requirements.\n\n")
	sb.WriteString("JOB DESCRIPTION:\n")
	sb.WriteString(truncate(jdText, maxJDPromptChars))
	sb.WriteString("\n\nExtract and return ONLY valid JSON in this format:\n")
	sb.WriteString(`{
  "required_skills": ["skill1", "skill2"],
  "nice_to_have_skills": ["skill1"],
  "min_experience_years": <number or 0>,
  "education_level": "<minimum degree or empty string>",
  "keywords": ["keyword1", "keyword2"]
}`)
	sb.WriteString("\n\nBe thorough but concise. Extract 5-15 required skills and 10-20 keywords.")

	return sb.String()
}

// requirementsText flattens a requirement set for prompting.
func requirementsText(reqs *types.RequirementSet) string {
	var sb strings.Builder
	if len(reqs.RequiredSkills) > 0 {
		sb.WriteString("Required skills: " + strings.Join(reqs.RequiredSkills, ", ") + "\n")
	}
	if len(reqs.NiceToHaveSkills) > 0 {
		sb.WriteString("Nice-to-have skills: " + strings.Join(reqs.NiceToHaveSkills, ", ") + "\n")
	}
	if reqs.MinExperienceYears > 0 {
		sb.WriteString(fmt.Sprintf("Minimum experience: %d years\n", reqs.MinExperienceYears))
	}
	if reqs.EducationLevel != "" {
		sb.WriteString("Education: " + reqs.EducationLevel + "\n")
	}
	if len(reqs.Keywords) > 0 {
		sb.WriteString("Keywords: " + strings.Join(reqs.Keywords, ", ") + "\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func truncate(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	return text[:limit] + "..."
}
