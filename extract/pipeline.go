// Package extract provides the text extraction pipeline.
// It coordinates the generic document extractor and the OCR fallback for
// image files, and decides the final outcome of a single extraction.
package extract

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/doctext"
)

// Pipeline extracts text from a single file.
//
// The generic Extractor runs first. When it fails or yields no text and the
// file has an image extension, the Recognizer runs if OCR is available.
type Pipeline struct {
	Extractor  doctext.Extractor
	Recognizer doctext.Recognizer

	// OCR reports whether Recognizer can be used on this host.
	OCR doctext.Capability

	Logger doctext.Logger

	// Timeout bounds each external stage. Zero disables the bound.
	Timeout time.Duration
}

// Extract returns the trimmed text of the file at path. On failure the
// returned error is a *doctext.Error whose message lists every diagnostic
// collected along the way.
func (p *Pipeline) Extract(ctx context.Context, path string) (string, error) {
	logger := p.logger()
	name := filepath.Base(path)
	var trail doctext.Trail

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			trail.Add(doctext.ENOTFOUND, "file not found: %s", path)
		} else {
			trail.Add(doctext.EINVALID, "cannot access file: %v", err)
		}
		return p.fail(&trail, name)
	}

	text, err := p.generic(ctx, path)
	switch {
	case err != nil:
		code := doctext.ErrorCode(err)
		if code == doctext.EINTERNAL {
			code = doctext.EEXTRACT
		}
		trail.Add(code, "generic extraction failed: %s", doctext.ErrorMessage(err))
		logger.Warn("generic extraction failed", "path", path, "err", err)
	case text == "":
		trail.Add(doctext.EEMPTY, "generic extraction returned no text")
		logger.Warn("generic extraction returned no text", "path", path)
	default:
		logger.Info("extraction succeeded", "path", path, "stage", "generic", "chars", len(text))
		return text, nil
	}

	if !doctext.IsImage(path) {
		trail.Add(trail.Code(), "%s is not a recognized image type for OCR fallback (supported: %s)",
			name, strings.Join(doctext.ImageExtensions(), ", "))
		return p.fail(&trail, name)
	}

	if !p.OCR.Available || p.Recognizer == nil {
		reasons := p.OCR.Reasons
		if len(reasons) == 0 {
			reasons = []string{"OCR engine not available"}
		}
		for _, reason := range reasons {
			trail.Add(doctext.EOCRUNAVAILABLE, "%s", reason)
		}
		logger.Warn("OCR unavailable", "path", path, "reason", p.OCR.String())
		return p.fail(&trail, name)
	}

	logger.Info("attempting OCR fallback", "path", path)
	text, err = p.recognize(ctx, path)
	switch {
	case err != nil:
		code := doctext.ErrorCode(err)
		if code == doctext.EINTERNAL {
			code = doctext.EOCR
		}
		trail.Add(code, "OCR failed: %s", doctext.ErrorMessage(err))
		logger.Warn("OCR failed", "path", path, "err", err)
	case text == "":
		trail.Add(doctext.EEMPTY, "OCR produced no text")
		logger.Warn("OCR produced no text", "path", path)
	default:
		logger.Info("extraction succeeded", "path", path, "stage", "ocr", "chars", len(text))
		return text, nil
	}

	return p.fail(&trail, name)
}

func (p *Pipeline) generic(ctx context.Context, path string) (string, error) {
	ctx, cancel := p.stageContext(ctx)
	defer cancel()
	text, err := p.Extractor.Extract(ctx, path)
	return strings.TrimSpace(text), err
}

func (p *Pipeline) recognize(ctx context.Context, path string) (string, error) {
	ctx, cancel := p.stageContext(ctx)
	defer cancel()
	text, err := p.Recognizer.Recognize(ctx, path)
	return strings.TrimSpace(text), err
}

func (p *Pipeline) stageContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, p.Timeout)
}

func (p *Pipeline) fail(trail *doctext.Trail, name string) (string, error) {
	err := trail.Err(name)
	p.logger().Error("extraction failed", "file", name, "code", err.Code, "diagnostics", trail.Len())
	return "", err
}

func (p *Pipeline) logger() doctext.Logger {
	if p.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.Logger
}
