// Package htmltomarkdown renders extracted HTML content as Markdown text.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/doctext"
)

// Ensure Converter implements doctext.Converter at compile time.
var _ doctext.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
// Tables are kept as Markdown tables so cell boundaries survive.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	return &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", doctext.Errorf(doctext.EINVALID, "empty HTML input")
	}

	md, err := c.conv.ConvertString(html)
	if err != nil {
		return "", doctext.Errorf(doctext.EEXTRACT, "html-to-markdown: %v", err)
	}
	return strings.TrimSpace(md), nil
}
