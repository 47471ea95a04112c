//go:build !ocr

package main_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/fwojciec/doctext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T) string {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 8, 8))
	img.SetGray(1, 1, color.Gray{Y: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	path := filepath.Join(t.TempDir(), "scan.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

// TestMain_Run_OCR runs serially: executing a freshly written script while
// another goroutine forks can fail with ETXTBSY.
func TestMain_Run_OCR(t *testing.T) {
	t.Run("falls back to tesseract for images", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("shell scripts not supported on windows")
		}
		engine := filepath.Join(t.TempDir(), "fake-tesseract")
		require.NoError(t, os.WriteFile(engine, []byte("#!/bin/sh\ncat >/dev/null\necho 'scanned invoice'\n"), 0o755))

		m := newMain(t)
		m.Tesseract = engine
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{writePNG(t)}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Equal(t, "scanned invoice\n", stdout.String())
	})

	t.Run("reports why OCR is unavailable", func(t *testing.T) {
		stdout := &bytes.Buffer{}

		err := newMain(t).Run(context.Background(), []string{writePNG(t)}, stdout, &bytes.Buffer{})

		require.Error(t, err)
		assert.Equal(t, doctext.EOCRUNAVAILABLE, doctext.ErrorCode(err))
		msg := doctext.ErrorMessage(err)
		assert.Contains(t, msg, "Error processing file scan.png: generic extraction")
		assert.Contains(t, msg, "OCR library not found")
		assert.Contains(t, msg, "OCR engine not found")
		assert.Empty(t, stdout.String())
	})
}
