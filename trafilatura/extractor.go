// Package trafilatura finds the main content of saved HTML documents using
// go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/doctext"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements doctext.ContentExtractor at compile time.
var _ doctext.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct {
	// KeepComments retains user comment sections found in the page.
	KeepComments bool
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*doctext.ContentResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, doctext.Errorf(doctext.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: !e.KeepComments,
	})
	if err != nil {
		return nil, doctext.Errorf(doctext.EEXTRACT, "trafilatura: %v", err)
	}

	out := &doctext.ContentResult{Title: result.Metadata.Title}
	if result.ContentNode != nil {
		var buf bytes.Buffer
		if err := html.Render(&buf, result.ContentNode); err != nil {
			return nil, err
		}
		out.ContentHTML = buf.String()
	}
	return out, nil
}
