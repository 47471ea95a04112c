// Package gosseract runs OCR in-process through libtesseract using
// github.com/otiai10/gosseract/v2.
//
// The binding needs cgo and the tesseract development headers, so it is only
// compiled with the ocr build tag (the same tag docconv uses for its image
// support). Without the tag the Recognizer reports itself unavailable.
package gosseract

import "github.com/fwojciec/doctext"

// Ensure Recognizer implements doctext.Recognizer at compile time.
var _ doctext.Recognizer = (*Recognizer)(nil)

// Recognizer runs OCR through libtesseract.
type Recognizer struct {
	language string
}

// NewRecognizer creates a Recognizer for the given tesseract language code.
func NewRecognizer(language string) *Recognizer {
	if language == "" {
		language = "eng"
	}
	return &Recognizer{language: language}
}
