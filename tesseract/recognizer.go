// Package tesseract runs OCR through the tesseract command-line program.
package tesseract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/fwojciec/doctext"
	docimage "github.com/fwojciec/doctext/image"
)

// Ensure Recognizer implements doctext.Recognizer at compile time.
var _ doctext.Recognizer = (*Recognizer)(nil)

// DefaultBinary is the executable looked up on PATH.
const DefaultBinary = "tesseract"

// Recognizer runs the tesseract executable.
type Recognizer struct {
	binary   string
	language string
}

// Option configures a Recognizer.
type Option func(*Recognizer)

// WithBinary sets the executable name or path.
func WithBinary(binary string) Option {
	return func(r *Recognizer) {
		r.binary = binary
	}
}

// WithLanguage sets the tesseract language code (e.g. "eng", "deu+eng").
func WithLanguage(language string) Option {
	return func(r *Recognizer) {
		r.language = language
	}
}

// NewRecognizer creates a Recognizer using the tesseract on PATH and English.
func NewRecognizer(opts ...Option) *Recognizer {
	r := &Recognizer{
		binary:   DefaultBinary,
		language: "eng",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Probe reports whether the tesseract executable can be found.
func (r *Recognizer) Probe(ctx context.Context) doctext.Capability {
	if _, err := exec.LookPath(r.binary); err != nil {
		return doctext.Unavailable(fmt.Sprintf("OCR engine not found: %s executable not available: %v", r.binary, err))
	}
	return doctext.Available()
}

// Recognize normalizes the image at path to PNG and pipes it through
// tesseract, returning the recognized text.
func (r *Recognizer) Recognize(ctx context.Context, path string) (string, error) {
	img, err := docimage.LoadPNG(path)
	if err != nil {
		return "", err
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.binary, "stdin", "stdout", "-l", r.language)
	cmd.Stdin = bytes.NewReader(img)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", doctext.Errorf(doctext.EOCRUNAVAILABLE, "OCR engine not found: %v", err)
		}
		if ctx.Err() != nil {
			return "", doctext.Errorf(doctext.EOCR, "tesseract: %v", ctx.Err())
		}
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return "", doctext.Errorf(doctext.EOCR, "tesseract: %s", detail)
	}

	return strings.TrimSpace(stdout.String()), nil
}
