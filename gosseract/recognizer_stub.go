//go:build !ocr

package gosseract

import (
	"context"

	"github.com/fwojciec/doctext"
)

// Compiled reports whether the libtesseract binding is built in.
const Compiled = false

// Probe always reports the binding as missing.
func (r *Recognizer) Probe(ctx context.Context) doctext.Capability {
	return doctext.Unavailable("OCR library not found: gosseract support not compiled in (rebuild with -tags ocr)")
}

// Recognize always fails because the binding is not compiled in.
func (r *Recognizer) Recognize(ctx context.Context, path string) (string, error) {
	return "", doctext.Errorf(doctext.EOCRUNAVAILABLE, "OCR library not found: gosseract support not compiled in (rebuild with -tags ocr)")
}
