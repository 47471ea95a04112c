// Package epub extracts text from EPUB e-books. The container and package
// documents are parsed with etree; chapters are rendered by a converter.
package epub

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/doctext"
)

// Ensure Extractor implements doctext.Extractor at compile time.
var _ doctext.Extractor = (*Extractor)(nil)

// containerPath is the fixed location of the EPUB container document.
const containerPath = "META-INF/container.xml"

// Extractor reads EPUB files chapter by chapter in spine order.
type Extractor struct {
	converter doctext.Converter
}

// NewExtractor creates an Extractor that renders chapters with converter.
func NewExtractor(converter doctext.Converter) *Extractor {
	return &Extractor{converter: converter}
}

// Extract returns the text of every chapter separated by blank lines.
func (e *Extractor) Extract(ctx context.Context, filename string) (string, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return "", doctext.Errorf(doctext.EEXTRACT, "open EPUB: %v", err)
	}
	defer zr.Close()

	files := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		files[f.Name] = f
	}

	container, err := readXML(files, containerPath)
	if err != nil {
		return "", err
	}
	rootfile := container.FindElement("//rootfile")
	if rootfile == nil {
		return "", doctext.Errorf(doctext.EEXTRACT, "EPUB container lists no package document")
	}
	opfPath := rootfile.SelectAttrValue("full-path", "")

	pkg, err := readXML(files, opfPath)
	if err != nil {
		return "", err
	}
	chapters := spine(pkg, path.Dir(opfPath))
	if len(chapters) == 0 {
		return "", doctext.Errorf(doctext.EEXTRACT, "EPUB package has an empty spine")
	}

	var parts []string
	for _, chapter := range chapters {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		raw, err := readFile(files, chapter)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(string(raw)) == "" {
			continue
		}
		text, err := e.converter.Convert(string(raw))
		if err != nil {
			return "", fmt.Errorf("converting %s: %w", chapter, err)
		}
		if text = strings.TrimSpace(text); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n\n"), nil
}

// spine returns archive paths of the readable chapters in reading order.
func spine(pkg *etree.Document, base string) []string {
	hrefs := make(map[string]string)
	for _, item := range pkg.FindElements("//manifest/item") {
		mediaType := item.SelectAttrValue("media-type", "")
		if mediaType != "application/xhtml+xml" && mediaType != "text/html" {
			continue
		}
		hrefs[item.SelectAttrValue("id", "")] = item.SelectAttrValue("href", "")
	}

	var chapters []string
	for _, ref := range pkg.FindElements("//spine/itemref") {
		href, ok := hrefs[ref.SelectAttrValue("idref", "")]
		if !ok || href == "" {
			continue
		}
		// Fragment identifiers point inside a chapter.
		if i := strings.IndexByte(href, '#'); i >= 0 {
			href = href[:i]
		}
		// Manifest hrefs are IRIs and may be percent-encoded.
		if unescaped, err := url.PathUnescape(href); err == nil {
			href = unescaped
		}
		chapters = append(chapters, path.Join(base, href))
	}
	return chapters
}

func readXML(files map[string]*zip.File, name string) (*etree.Document, error) {
	raw, err := readFile(files, name)
	if err != nil {
		return nil, err
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(raw); err != nil {
		return nil, doctext.Errorf(doctext.EEXTRACT, "parsing %s: %v", name, err)
	}
	return doc, nil
}

func readFile(files map[string]*zip.File, name string) ([]byte, error) {
	f, ok := files[name]
	if !ok {
		return nil, doctext.Errorf(doctext.EEXTRACT, "EPUB is missing %s", name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, doctext.Errorf(doctext.EEXTRACT, "opening %s: %v", name, err)
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
