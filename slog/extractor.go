// Package slog provides logging decorators for doctext services.
package slog

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/doctext"
)

// Ensure LoggingExtractor implements doctext.Extractor.
var _ doctext.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   doctext.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next doctext.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(ctx context.Context, path string) (text string, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract",
			"path", path,
			"bytes", len(text),
			"hash", contentHash(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(ctx, path)
}

// contentHash identifies output across runs without logging the text itself.
func contentHash(text string) string {
	if text == "" {
		return ""
	}
	return strconv.FormatUint(xxhash.Sum64String(text), 16)
}
