package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/doctext"
)

// Ensure LoggingRecognizer implements doctext.Recognizer.
var _ doctext.Recognizer = (*LoggingRecognizer)(nil)

// LoggingRecognizer wraps a Recognizer with logging.
type LoggingRecognizer struct {
	next   doctext.Recognizer
	engine string
	logger *slog.Logger
}

// NewLoggingRecognizer creates a new LoggingRecognizer. The engine name is
// recorded with every call.
func NewLoggingRecognizer(next doctext.Recognizer, engine string, logger *slog.Logger) *LoggingRecognizer {
	return &LoggingRecognizer{next: next, engine: engine, logger: logger}
}

// Recognize delegates to the wrapped recognizer and logs the outcome.
func (r *LoggingRecognizer) Recognize(ctx context.Context, path string) (text string, err error) {
	defer func(begin time.Time) {
		r.logger.Info("recognize",
			"path", path,
			"engine", r.engine,
			"bytes", len(text),
			"hash", contentHash(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Recognize(ctx, path)
}
