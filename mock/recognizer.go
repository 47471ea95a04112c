package mock

import (
	"context"

	"github.com/fwojciec/doctext"
)

var _ doctext.Recognizer = (*Recognizer)(nil)

// Recognizer is a mock implementation of doctext.Recognizer.
type Recognizer struct {
	RecognizeFn func(ctx context.Context, path string) (string, error)
}

func (r *Recognizer) Recognize(ctx context.Context, path string) (string, error) {
	return r.RecognizeFn(ctx, path)
}
