// Package docconv extracts text from office documents, XML and (when built
// with the ocr tag) images using code.sajari.com/docconv/v2.
//
// Several formats are handled by host tools that docconv shells out to
// (pdftotext, wvText, unrtf). Missing tools surface as extraction errors.
package docconv

import (
	"context"
	"path/filepath"

	"code.sajari.com/docconv/v2"
	"github.com/fwojciec/doctext"
)

// Ensure Extractor implements doctext.Extractor at compile time.
var _ doctext.Extractor = (*Extractor)(nil)

// unknownMimeType is what docconv reports for extensions it cannot map.
const unknownMimeType = "application/octet-stream"

// Extractor wraps docconv.
type Extractor struct {
	// Convert performs the conversion. Defaults to docconv.ConvertPath.
	Convert func(path string) (*docconv.Response, error)
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{Convert: docconv.ConvertPath}
}

// MimeType returns the MIME type docconv associates with path.
func MimeType(path string) string {
	return docconv.MimeTypeByExtension(path)
}

// Extract converts the file at path to text.
//
// docconv cannot be interrupted, so when ctx ends first the conversion is
// abandoned and left to finish in the background.
func (e *Extractor) Extract(ctx context.Context, path string) (string, error) {
	if MimeType(path) == unknownMimeType {
		return "", doctext.Errorf(doctext.EUNSUPPORTED, "unsupported file format %q", filepath.Ext(path))
	}

	type result struct {
		resp *docconv.Response
		err  error
	}
	done := make(chan result, 1)
	go func() {
		resp, err := e.Convert(path)
		done <- result{resp, err}
	}()

	select {
	case <-ctx.Done():
		return "", doctext.Errorf(doctext.EEXTRACT, "docconv: %v", ctx.Err())
	case r := <-done:
		if r.err != nil {
			return "", doctext.Errorf(doctext.EEXTRACT, "%v", r.err)
		}
		if r.resp == nil {
			return "", nil
		}
		return r.resp.Body, nil
	}
}
