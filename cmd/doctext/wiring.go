package main

import (
	"context"
	"log/slog"

	"github.com/fwojciec/doctext"
	"github.com/fwojciec/doctext/docconv"
	"github.com/fwojciec/doctext/epub"
	"github.com/fwojciec/doctext/extract"
	"github.com/fwojciec/doctext/goquery"
	"github.com/fwojciec/doctext/gosseract"
	"github.com/fwojciec/doctext/htmltomarkdown"
	"github.com/fwojciec/doctext/pdf"
	"github.com/fwojciec/doctext/plaintext"
	"github.com/fwojciec/doctext/readability"
	dtslog "github.com/fwojciec/doctext/slog"
	"github.com/fwojciec/doctext/tesseract"
	"github.com/fwojciec/doctext/trafilatura"
)

// newGenericExtractor routes known formats to dedicated extractors and
// everything else to docconv.
func newGenericExtractor(logger *slog.Logger) doctext.Extractor {
	text := goquery.NewTextConverter()

	router := extract.NewRouter(docconv.NewExtractor())
	router.Register(plaintext.NewExtractor(), plaintext.Extensions...)
	router.Register(pdf.NewExtractor(), ".pdf")
	router.Register(epub.NewExtractor(text), ".epub")
	router.Register(&extract.HTMLExtractor{
		Extractors: []doctext.ContentExtractor{
			trafilatura.NewExtractor(),
			readability.NewExtractor(),
		},
		Converter: htmltomarkdown.NewConverter(),
		Fallback:  text,
	}, ".html", ".htm", ".xhtml")

	return dtslog.NewLoggingExtractor(router, logger)
}

// prober is an OCR engine that can report whether it runs on this host.
type prober interface {
	doctext.Recognizer
	Probe(ctx context.Context) doctext.Capability
}

// selectRecognizer prefers the linked OCR library, then the tesseract
// executable. When neither works the capability carries both reasons.
func (m *Main) selectRecognizer(ctx context.Context, logger *slog.Logger) (doctext.Recognizer, doctext.Capability) {
	engines := []struct {
		name string
		p    prober
	}{
		{"gosseract", gosseract.NewRecognizer(m.Language)},
		{"tesseract", tesseract.NewRecognizer(
			tesseract.WithBinary(m.Tesseract),
			tesseract.WithLanguage(m.Language),
		)},
	}

	var reasons []string
	for _, e := range engines {
		c := e.p.Probe(ctx)
		if c.Available {
			logger.Info("OCR engine selected", "engine", e.name)
			return dtslog.NewLoggingRecognizer(e.p, e.name, logger), c
		}
		reasons = append(reasons, c.Reasons...)
	}
	return nil, doctext.Unavailable(reasons...)
}
