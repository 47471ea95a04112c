// Package readability finds the main content of saved HTML documents using
// go-readability. It serves as a second opinion when trafilatura finds nothing.
package readability

import (
	"strings"

	"github.com/fwojciec/doctext"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements doctext.ContentExtractor at compile time.
var _ doctext.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
// Local files have no origin URL, so relative links are left unresolved.
func (e *Extractor) Extract(rawHTML string) (*doctext.ContentResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, doctext.Errorf(doctext.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, doctext.Errorf(doctext.EEXTRACT, "readability: %v", err)
	}

	return &doctext.ContentResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
