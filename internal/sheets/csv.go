// Package sheets loads candidate rows from exported spreadsheet CSVs.
// Recruiters rarely agree on column names, so the header mapping accepts
// the common synonyms for each field.
package sheets

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// Synonyms accepted per logical column, all compared case-insensitively
// after trimming.
var columnSynonyms = map[string][]string{
	"name":          {"name", "candidate name", "full name", "candidate"},
	"email":         {"email", "email address", "e-mail", "mail"},
	"phone":         {"phone", "phone number", "mobile", "contact", "contact number"},
	"experience":    {"experience", "years of experience", "experience years", "exp", "total experience"},
	"location":      {"location", "city", "current location"},
	"notice_period": {"notice period", "notice", "availability"},
	"resume":        {"resume", "resume link", "resume url", "cv", "cv link", "drive link", "resume_link", "resume_url"},
}

// LoadCSV parses candidate rows from r. The first record is the header;
// data rows are numbered from 2 to match what the recruiter sees in the
// spreadsheet. Rows shorter than the header are padded with empty
// fields; fully blank rows are skipped.
func LoadCSV(r io.Reader) ([]types.CandidateRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, types.E(types.KindInvalidInput, "CSV is empty")
	}
	if err != nil {
		return nil, types.Wrap(types.KindInvalidInput, err, "failed to read CSV header")
	}

	columns := mapColumns(header)
	if _, ok := columns["name"]; !ok {
		return nil, types.E(types.KindInvalidInput, "no name column found in header %v", header)
	}
	if _, ok := columns["resume"]; !ok {
		return nil, types.E(types.KindInvalidInput, "no resume link column found in header %v", header)
	}

	var rows []types.CandidateRow
	rowNumber := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNumber++
		if err != nil {
			return nil, types.Wrap(types.KindInvalidInput, err, "failed to read CSV row %d", rowNumber)
		}
		if isBlank(record) {
			continue
		}

		field := func(column string) string {
			idx, ok := columns[column]
			if !ok || idx >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[idx])
		}

		row := types.CandidateRow{
			RowNumber:     rowNumber,
			Name:          field("name"),
			Email:         field("email"),
			Phone:         field("phone"),
			Location:      field("location"),
			NoticePeriod:  field("notice_period"),
			ResumeLocator: field("resume"),
		}
		if exp := field("experience"); exp != "" {
			row.ExperienceYears = parseExperience(exp)
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// mapColumns resolves each logical column to its index in the header.
// The first matching header wins.
func mapColumns(header []string) map[string]int {
	columns := make(map[string]int)
	for idx, raw := range header {
		name := strings.ToLower(strings.TrimSpace(raw))
		for column, synonyms := range columnSynonyms {
			if _, taken := columns[column]; taken {
				continue
			}
			for _, synonym := range synonyms {
				if name == synonym {
					columns[column] = idx
					break
				}
			}
		}
	}
	return columns
}

// parseExperience reads a leading number out of free-form experience
// text like "5", "5.5 years", or "5+ yrs". Unparseable text maps to 0.
func parseExperience(text string) float64 {
	text = strings.TrimSpace(text)

	end := 0
	for end < len(text) && (text[end] >= '0' && text[end] <= '9' || text[end] == '.') {
		end++
	}
	if end == 0 {
		return 0
	}

	value, err := strconv.ParseFloat(text[:end], 64)
	if err != nil {
		return 0
	}
	return value
}

func isBlank(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
