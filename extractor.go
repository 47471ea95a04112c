package doctext

import "context"

// Extractor extracts text from a file on disk.
type Extractor interface {
	// Extract reads the file at path and returns its text content.
	// Implementations return an error for unsupported, corrupt or
	// unreadable files; the error message is shown to users verbatim.
	Extract(ctx context.Context, path string) (string, error)
}

// ContentResult holds the main content extracted from an HTML document.
type ContentResult struct {
	// Title is the document title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// ContentExtractor extracts main content from HTML documents, removing boilerplate.
type ContentExtractor interface {
	// Extract processes raw HTML and returns the main content.
	Extract(html string) (*ContentResult, error)
}
