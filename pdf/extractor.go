// Package pdf extracts text from PDF documents using ledongthuc/pdf.
package pdf

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/doctext"
	"github.com/ledongthuc/pdf"
)

// Ensure Extractor implements doctext.Extractor at compile time.
var _ doctext.Extractor = (*Extractor)(nil)

// Extractor reads the text layer of PDF documents. Scanned PDFs without a
// text layer yield no text.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the plain text of every page, one page per line group.
// Pages that cannot be decoded are skipped.
func (e *Extractor) Extract(ctx context.Context, path string) (text string, err error) {
	// The parser panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			text, err = "", doctext.Errorf(doctext.EEXTRACT, "malformed PDF: %v", r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", doctext.Errorf(doctext.EEXTRACT, "open PDF: %v", err)
	}
	defer f.Close()

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("reading page %d: %w", i, err)
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil || strings.TrimSpace(pageText) == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(strings.TrimSpace(pageText))
	}

	return sb.String(), nil
}
