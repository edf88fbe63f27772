package extraction

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
)

// extractPDF pulls the text layer out of every page. PDFs without a text
// layer (scans) come back empty and fail the minimum-length check.
func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var sb bytes.Buffer
	for page := 1; page <= reader.NumPage(); page++ {
		p := reader.Page(page)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to read page %d: %w", page, err)
		}
		if _, err := io.WriteString(&sb, text); err != nil {
			return "", err
		}
		sb.WriteString("\n")
	}

	return sb.String(), nil
}
