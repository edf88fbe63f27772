// Package observability provides structured logging setup and formatted
// output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRequirements outputs a human-readable summary of the active
// requirement set.
func (p *Printer) PrintRequirements(reqs *types.RequirementSet) {
	if reqs == nil {
		return
	}

	var sb strings.Builder

	if len(reqs.RequiredSkills) > 0 {
		sb.WriteString("Required Skills:\n")
		count := min(len(reqs.RequiredSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", reqs.RequiredSkills[i]))
		}
		if len(reqs.RequiredSkills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(reqs.RequiredSkills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(reqs.NiceToHaveSkills) > 0 {
		sb.WriteString("Nice-to-haves:\n")
		count := min(len(reqs.NiceToHaveSkills), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", reqs.NiceToHaveSkills[i]))
		}
		if len(reqs.NiceToHaveSkills) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(reqs.NiceToHaveSkills)-3))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Min Experience:  %d years\n", reqs.MinExperienceYears))
	if reqs.EducationLevel != "" {
		sb.WriteString(fmt.Sprintf("Education:       %s\n", reqs.EducationLevel))
	}
	if len(reqs.Keywords) > 0 {
		keywords := strings.Join(reqs.Keywords, ", ")
		if len(keywords) > 45 {
			keywords = keywords[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Keywords:        %s\n", keywords))
	}

	p.printBox("ACTIVE REQUIREMENT SET", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRankedCandidates outputs the top N candidates with scores.
func (p *Printer) PrintRankedCandidates(candidates []types.CandidateRecord) {
	if len(candidates) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total candidates ranked: %d\n\n", len(candidates)))

	count := min(len(candidates), maxItemsToShow)
	for i := 0; i < count; i++ {
		c := candidates[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", c.Rank, c.Name))
		sb.WriteString(fmt.Sprintf("    Score: %d (skills %d, exp %d, edu %d, kw %d)\n",
			c.Breakdown.OverallScore,
			c.Breakdown.SkillsMatch,
			c.Breakdown.ExperienceMatch,
			c.Breakdown.EducationMatch,
			c.Breakdown.KeywordsMatch,
		))
		if c.Breakdown.Explanation.Overall != "" {
			summary := c.Breakdown.Explanation.Overall
			if len(summary) > 45 {
				summary = summary[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("    %s\n", summary))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(candidates) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(candidates)-maxItemsToShow))
	}

	p.printBox("RANKED CANDIDATES", sb.String())
}

// PrintBatchResult outputs the per-run summary with failure details.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintBatchResult(result types.BatchResult) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run:        %s\n", result.RunID))
	sb.WriteString(fmt.Sprintf("Succeeded:  %d\n", result.SuccessCount))
	sb.WriteString(fmt.Sprintf("Failed:     %d\n", result.FailCount))

	if len(result.FailedCandidates) > 0 {
		sb.WriteString("\n")
		count := min(len(result.FailedCandidates), maxItemsToShow)
		for i := 0; i < count; i++ {
			f := result.FailedCandidates[i]
			name := f.Name
			if name == "" {
				name = "(unnamed)"
			}
			sb.WriteString(fmt.Sprintf("⚠ row %d  %s\n", f.RowNumber, name))
			sb.WriteString(fmt.Sprintf("  %s\n", f.ErrorKind))
		}
		if len(result.FailedCandidates) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more failures\n", len(result.FailedCandidates)-maxItemsToShow))
		}
	}

	p.printBox("BATCH RUN SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStats outputs the store summary with the score distribution.
func (p *Printer) PrintStats(stats types.StoreStats) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidates:     %d\n", stats.Count))
	if stats.Count > 0 {
		sb.WriteString(fmt.Sprintf("Average score:  %.1f\n", stats.AverageScore))
		sb.WriteString(fmt.Sprintf("Top score:      %d\n", stats.TopScore))
		sb.WriteString(fmt.Sprintf("Lowest score:   %d\n", stats.LowestScore))
		sb.WriteString("\nDistribution:\n")
		for _, bucket := range []string{"90-100", "80-89", "70-79", "60-69", "0-59"} {
			if n := stats.ScoreDistribution[bucket]; n > 0 {
				sb.WriteString(fmt.Sprintf("  %-7s %d\n", bucket, n))
			}
		}
	}
	if !stats.RequirementSetActive {
		sb.WriteString("\nNo active requirement set.\n")
	}

	p.printBox("STORE STATS", strings.TrimSuffix(sb.String(), "\n"))
}
