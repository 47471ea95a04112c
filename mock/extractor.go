package mock

import (
	"context"

	"github.com/fwojciec/doctext"
)

var _ doctext.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of doctext.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, path string) (string, error)
}

func (e *Extractor) Extract(ctx context.Context, path string) (string, error) {
	return e.ExtractFn(ctx, path)
}

var _ doctext.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of doctext.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(html string) (*doctext.ContentResult, error)
}

func (e *ContentExtractor) Extract(html string) (*doctext.ContentResult, error) {
	return e.ExtractFn(html)
}
