package sheets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/types"
)

func TestLoadCSV_CanonicalHeaders(t *testing.T) {
	input := `Name,Email,Phone,Experience,Location,Notice Period,Resume Link
Jane Smith,jane@example.com,555-0101,5.5 years,Pune,30 days,https://drive.google.com/file/d/1AbC_dEf-123456789/view
Wei Chen,wei@example.com,555-0102,8,Remote,Immediate,1XyZ_aBc-987654321xx
`

	rows, err := LoadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 2, rows[0].RowNumber)
	assert.Equal(t, "Jane Smith", rows[0].Name)
	assert.Equal(t, "jane@example.com", rows[0].Email)
	assert.Equal(t, "555-0101", rows[0].Phone)
	assert.InDelta(t, 5.5, rows[0].ExperienceYears, 0.001)
	assert.Equal(t, "Pune", rows[0].Location)
	assert.Equal(t, "30 days", rows[0].NoticePeriod)
	assert.Equal(t, "https://drive.google.com/file/d/1AbC_dEf-123456789/view", rows[0].ResumeLocator)

	assert.Equal(t, 3, rows[1].RowNumber)
	assert.InDelta(t, 8.0, rows[1].ExperienceYears, 0.001)
}

func TestLoadCSV_SynonymHeaders(t *testing.T) {
	input := `Candidate Name,E-mail,Mobile,Years of Experience,CV Link
Jane Smith,jane@example.com,555-0101,5+,1AbC_dEf-123456789
`

	rows, err := LoadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Jane Smith", rows[0].Name)
	assert.Equal(t, "jane@example.com", rows[0].Email)
	assert.Equal(t, "555-0101", rows[0].Phone)
	assert.InDelta(t, 5.0, rows[0].ExperienceYears, 0.001)
	assert.Equal(t, "1AbC_dEf-123456789", rows[0].ResumeLocator)
}

func TestLoadCSV_SkipsBlankRowsKeepsNumbering(t *testing.T) {
	input := `Name,Resume
Jane,1AbC_dEf-123456789
,
Wei,1XyZ_aBc-987654321xx
`

	rows, err := LoadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 2, rows[0].RowNumber)
	// The blank spreadsheet row still occupies row 3.
	assert.Equal(t, 4, rows[1].RowNumber)
}

func TestLoadCSV_ShortRowsPadEmptyFields(t *testing.T) {
	input := `Name,Email,Resume
Jane,jane@example.com,1AbC_dEf-123456789
Wei
`

	rows, err := LoadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Wei", rows[1].Name)
	assert.Empty(t, rows[1].Email)
	assert.Empty(t, rows[1].ResumeLocator)
}

func TestLoadCSV_MissingRequiredColumns(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "no name column", input: "Email,Resume\njane@example.com,1AbC_dEf-123456789\n"},
		{name: "no resume column", input: "Name,Email\nJane,jane@example.com\n"},
		{name: "empty file", input: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCSV(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.True(t, types.IsKind(err, types.KindInvalidInput))
		})
	}
}

func TestLoadCSV_HeaderOnly(t *testing.T) {
	rows, err := LoadCSV(strings.NewReader("Name,Resume\n"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParseExperience(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"5", 5},
		{"5.5 years", 5.5},
		{"8+ yrs", 8},
		{"about ten", 0},
		{"", 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, parseExperience(tt.in), 0.001, "input %q", tt.in)
	}
}
