// Package plaintext extracts text from plain-text based formats: prose,
// Markdown, logs, CSV and JSON.
package plaintext

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/doctext"
	"golang.org/x/net/html/charset"
)

// Ensure Extractor implements doctext.Extractor at compile time.
var _ doctext.Extractor = (*Extractor)(nil)

// Extensions lists the file extensions handled by Extractor.
var Extensions = []string{
	".txt", ".text", ".md", ".markdown", ".rst", ".log",
	".csv", ".tsv", ".json", ".jsonl", ".ndjson",
}

// Extractor reads plain-text files, decoding them to UTF-8.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract reads the file at path and returns its text. CSV is rendered as
// tab-separated rows and JSON is pretty-printed.
func (e *Extractor) Extract(ctx context.Context, path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading file: %w", err)
	}
	if bytes.IndexByte(raw, 0) >= 0 && !hasUTF16BOM(raw) {
		return "", doctext.Errorf(doctext.EUNSUPPORTED, "%s looks like a binary file", filepath.Base(path))
	}

	content := Decode(raw)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return extractCSV(content), nil
	case ".json":
		return extractJSON(content), nil
	case ".jsonl", ".ndjson":
		return extractJSONL(content), nil
	default:
		return content, nil
	}
}

// Decode converts raw bytes to UTF-8. A byte order mark wins; otherwise
// UTF-8 is assumed when valid and Windows-1252 when not.
func Decode(raw []byte) string {
	enc, _, _ := charset.DetermineEncoding(raw, "text/plain")
	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return string(raw)
	}
	return string(bytes.TrimPrefix(decoded, []byte("\uFEFF")))
}

func hasUTF16BOM(raw []byte) bool {
	return bytes.HasPrefix(raw, []byte{0xFF, 0xFE}) || bytes.HasPrefix(raw, []byte{0xFE, 0xFF})
}

// extractCSV renders CSV rows as tab-separated lines.
// Malformed CSV falls back to the raw text.
func extractCSV(content string) string {
	reader := csv.NewReader(strings.NewReader(content))
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	var sb strings.Builder
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return content
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(strings.Join(record, "\t"))
	}
	return sb.String()
}

// extractJSON pretty-prints a JSON document; invalid JSON is returned as-is.
func extractJSON(content string) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(content), "", "  "); err != nil {
		return content
	}
	return buf.String()
}

// extractJSONL pretty-prints each line of a JSON Lines document.
func extractJSONL(content string) string {
	var sb strings.Builder
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(extractJSON(line))
	}
	return sb.String()
}
