package extraction

import (
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// MinTextLength is the minimum number of characters an extracted resume
// must contain to be considered usable. Shorter results usually mean a
// scanned image or an empty template.
const MinTextLength = 50

// Extractor turns fetched resume bytes into plain text suitable for the
// scoring prompt.
type Extractor interface {
	Extract(data []byte, filename string) (string, error)
}

// TextExtractor routes on the filename extension. PDF, DOCX, HTML, and
// plain-text formats are supported; everything else is rejected before
// any parsing happens.
type TextExtractor struct{}

// NewTextExtractor returns the default format-routing extractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// Extract dispatches to a format-specific parser and enforces the
// minimum usable length on the result.
func (e *TextExtractor) Extract(data []byte, filename string) (string, error) {
	if len(data) == 0 {
		return "", types.E(types.KindExtractionFailed, "empty file %q", filename)
	}

	ext := strings.ToLower(filepath.Ext(filename))

	var (
		text string
		err  error
	)
	switch ext {
	case ".txt", ".md":
		text = string(data)
	case ".html", ".htm":
		text, err = extractHTML(data)
	case ".pdf":
		text, err = extractPDF(data)
	case ".docx":
		text, err = extractDOCX(data)
	case ".doc", ".jpg", ".jpeg", ".png", ".gif":
		return "", types.E(types.KindUnsupportedFormat, "format %q is not supported (file %q)", ext, filename)
	default:
		return "", types.E(types.KindUnsupportedFormat, "unrecognized format %q (file %q)", ext, filename)
	}
	if err != nil {
		return "", types.Wrap(types.KindExtractionFailed, err, "failed to extract text from %q", filename)
	}

	text = normalizeWhitespace(text)
	if len(text) < MinTextLength {
		return "", types.E(types.KindExtractionFailed, "extracted only %d characters from %q", len(text), filename)
	}

	return text, nil
}

// normalizeWhitespace collapses runs of blank lines and trims trailing
// space so prompts stay compact.
func normalizeWhitespace(text string) string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	var out []string
	blank := 0
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if strings.TrimSpace(line) == "" {
			blank++
			if blank > 1 {
				continue
			}
			out = append(out, "")
			continue
		}
		blank = 0
		out = append(out, line)
	}

	return strings.TrimSpace(strings.Join(out, "\n"))
}
