package extract

import (
	"context"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fwojciec/doctext"
)

// Ensure Router implements doctext.Extractor at compile time.
var _ doctext.Extractor = (*Router)(nil)

// Router dispatches extraction to format-specific extractors keyed by file
// extension. Files with unregistered extensions go to the fallback.
type Router struct {
	extractors map[string]doctext.Extractor
	fallback   doctext.Extractor
}

// NewRouter creates a Router that uses fallback for unregistered extensions.
func NewRouter(fallback doctext.Extractor) *Router {
	return &Router{
		extractors: make(map[string]doctext.Extractor),
		fallback:   fallback,
	}
}

// Register associates an extractor with one or more extensions.
// Extensions are matched case-insensitively and must include the dot.
func (r *Router) Register(e doctext.Extractor, exts ...string) {
	for _, ext := range exts {
		r.extractors[strings.ToLower(ext)] = e
	}
}

// Extensions returns the sorted list of registered extensions.
func (r *Router) Extensions() []string {
	exts := make([]string, 0, len(r.extractors))
	for ext := range r.extractors {
		exts = append(exts, ext)
	}
	slices.Sort(exts)
	return exts
}

// Extract runs the extractor registered for the file's extension.
// The returned text is valid UTF-8 without surrounding whitespace.
func (r *Router) Extract(ctx context.Context, path string) (string, error) {
	e := r.extractors[strings.ToLower(filepath.Ext(path))]
	if e == nil {
		e = r.fallback
	}
	if e == nil {
		return "", doctext.Errorf(doctext.EUNSUPPORTED, "unsupported file format %q", filepath.Ext(path))
	}

	text, err := e.Extract(ctx, path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(strings.ToValidUTF8(text, "\uFFFD")), nil
}
