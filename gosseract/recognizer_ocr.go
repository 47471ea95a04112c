//go:build ocr

package gosseract

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/fwojciec/doctext"
	docimage "github.com/fwojciec/doctext/image"
	"github.com/otiai10/gosseract/v2"
)

// Compiled reports whether the libtesseract binding is built in.
const Compiled = true

// Probe reports whether libtesseract has data for every configured language.
func (r *Recognizer) Probe(ctx context.Context) doctext.Capability {
	langs, err := gosseract.GetAvailableLanguages()
	if err != nil {
		return doctext.Unavailable(fmt.Sprintf("OCR engine not available: listing tesseract languages: %v", err))
	}
	for _, lang := range strings.Split(r.language, "+") {
		if !slices.Contains(langs, lang) {
			return doctext.Unavailable(fmt.Sprintf("OCR engine not available: no tesseract data for language %q", lang))
		}
	}
	return doctext.Available()
}

// Recognize normalizes the image at path to PNG and runs libtesseract on it.
//
// The engine cannot be interrupted; when ctx ends first the call is
// abandoned and the client is released once the engine returns.
func (r *Recognizer) Recognize(ctx context.Context, path string) (string, error) {
	img, err := docimage.LoadPNG(path)
	if err != nil {
		return "", err
	}

	type result struct {
		text string
		err  error
	}
	done := make(chan result, 1)
	go func() {
		text, err := r.recognize(img)
		done <- result{text, err}
	}()

	select {
	case <-ctx.Done():
		return "", doctext.Errorf(doctext.EOCR, "tesseract: %v", ctx.Err())
	case res := <-done:
		return res.text, res.err
	}
}

func (r *Recognizer) recognize(img []byte) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(strings.Split(r.language, "+")...); err != nil {
		return "", doctext.Errorf(doctext.EOCR, "tesseract: %v", err)
	}
	if err := client.SetImageFromBytes(img); err != nil {
		return "", doctext.Errorf(doctext.EOCR, "tesseract: %v", err)
	}
	text, err := client.Text()
	if err != nil {
		return "", doctext.Errorf(doctext.EOCR, "tesseract: %v", err)
	}
	return strings.TrimSpace(text), nil
}
