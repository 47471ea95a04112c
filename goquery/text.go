// Package goquery renders HTML as plain text using goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/doctext"
)

// Ensure TextConverter implements doctext.Converter at compile time.
var _ doctext.Converter = (*TextConverter)(nil)

// blockSelector matches elements that end a line of text.
const blockSelector = "p, div, li, dt, dd, h1, h2, h3, h4, h5, h6, tr, pre, blockquote, section, article, header, footer, table, ul, ol"

// TextConverter converts a whole HTML document to plain text. Unlike the
// content extractors it keeps everything visible, so it works on fragments
// and pages without an obvious main article.
type TextConverter struct{}

// NewTextConverter creates a new TextConverter.
func NewTextConverter() *TextConverter {
	return &TextConverter{}
}

// Convert strips markup, scripts and styles and returns the visible text
// with one line per block element.
func (c *TextConverter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", doctext.Errorf(doctext.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", doctext.Errorf(doctext.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find("head, script, style, noscript, template").Remove()
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("td, th").AppendHtml(" ")
	doc.Find(blockSelector).AppendHtml("\n")

	return normalizeLines(doc.Text()), nil
}

// normalizeLines collapses runs of spaces within lines and runs of blank
// lines into a single blank line.
func normalizeLines(text string) string {
	var b strings.Builder
	blank := false
	for _, line := range strings.Split(text, "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			blank = b.Len() > 0
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
			if blank {
				b.WriteString("\n")
			}
		}
		b.WriteString(line)
		blank = false
	}
	return b.String()
}
