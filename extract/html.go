package extract

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fwojciec/doctext"
	"golang.org/x/net/html/charset"
)

// Ensure HTMLExtractor implements doctext.Extractor at compile time.
var _ doctext.Extractor = (*HTMLExtractor)(nil)

// HTMLExtractor extracts text from HTML files.
//
// Content extractors run in order; the first one producing content HTML
// wins and its output is rendered by Converter. When none produces content,
// the whole document is rendered by Fallback.
type HTMLExtractor struct {
	Extractors []doctext.ContentExtractor
	Converter  doctext.Converter
	Fallback   doctext.Converter
}

// Extract reads the HTML file at path and returns its main content as text.
func (h *HTMLExtractor) Extract(ctx context.Context, path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading HTML: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	doc := decodeHTML(raw)
	if strings.TrimSpace(doc) == "" {
		return "", doctext.Errorf(doctext.EEMPTY, "empty HTML document")
	}

	for _, e := range h.Extractors {
		result, err := e.Extract(doc)
		if err != nil || result == nil || strings.TrimSpace(result.ContentHTML) == "" {
			continue
		}
		text, err := h.Converter.Convert(result.ContentHTML)
		if err != nil {
			return "", fmt.Errorf("converting HTML content: %w", err)
		}
		if text = strings.TrimSpace(text); text != "" {
			return text, nil
		}
	}

	if h.Fallback == nil {
		return "", doctext.Errorf(doctext.EEMPTY, "no main content found in HTML document")
	}
	text, err := h.Fallback.Convert(doc)
	if err != nil {
		return "", fmt.Errorf("rendering HTML text: %w", err)
	}
	return text, nil
}

// decodeHTML converts raw bytes to UTF-8 using the document's declared or
// sniffed encoding.
func decodeHTML(raw []byte) string {
	enc, _, _ := charset.DetermineEncoding(raw, "text/html")
	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return string(raw)
	}
	return string(decoded)
}
