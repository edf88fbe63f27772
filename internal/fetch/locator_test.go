package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractFileID(t *testing.T) {
	tests := []struct {
		name     string
		locator  string
		expected string
		ok       bool
	}{
		{
			name:     "file view url",
			locator:  "https://drive.google.com/file/d/1AbC_dEf-123456789/view",
			expected: "1AbC_dEf-123456789",
			ok:       true,
		},
		{
			name:     "open url with id param",
			locator:  "https://drive.google.com/open?id=1AbC_dEf-123456789",
			expected: "1AbC_dEf-123456789",
			ok:       true,
		},
		{
			name:     "docs url",
			locator:  "https://docs.google.com/document/d/1AbC_dEf-123456789/edit",
			expected: "1AbC_dEf-123456789",
			ok:       true,
		},
		{
			name:     "uc url",
			locator:  "https://drive.google.com/uc?export=download&id=1AbC_dEf-123456789",
			expected: "1AbC_dEf-123456789",
			ok:       true,
		},
		{
			name:     "bare file id",
			locator:  "1AbC_dEf-123456789",
			expected: "1AbC_dEf-123456789",
			ok:       true,
		},
		{
			name:     "surrounding whitespace",
			locator:  "  1AbC_dEf-123456789  ",
			expected: "1AbC_dEf-123456789",
			ok:       true,
		},
		{name: "empty", locator: "", ok: false},
		{name: "random text", locator: "not a link", ok: false},
		{name: "unrelated url", locator: "https://example.com/resume.pdf", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ExtractFileID(tt.locator)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, id)
			}
		})
	}
}
