package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/doctext"
	main "github.com/fwojciec/doctext/cmd/doctext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newMain returns a Main logging into a temporary directory on a fixed day.
func newMain(t *testing.T) *main.Main {
	t.Helper()
	m := main.NewMain()
	m.LogDir = t.TempDir()
	m.Tesseract = "doctext-no-such-tesseract"
	m.Now = func() time.Time { return time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC) }
	return m
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints extracted text", func(t *testing.T) {
		t.Parallel()

		m := newMain(t)
		path := writeFile(t, "notes.txt", "  hello world\n\n")
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{path}, stdout, stderr)

		require.NoError(t, err)
		assert.Equal(t, "hello world\n", stdout.String())
		assert.Empty(t, stderr.String())
	})

	t.Run("extracts HTML main content", func(t *testing.T) {
		t.Parallel()

		m := newMain(t)
		path := writeFile(t, "page.html", `<html><head><title>T</title><script>var x;</script></head>
<body><article><h1>Release notes</h1><p>The parser now handles nested tables correctly.</p></article></body></html>`)
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{path}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "nested tables")
		assert.NotContains(t, stdout.String(), "var x")
	})

	t.Run("returns usage error without arguments", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}

		err := newMain(t).Run(context.Background(), []string{}, stdout, &bytes.Buffer{})

		require.Error(t, err)
		assert.Equal(t, doctext.EUSAGE, doctext.ErrorCode(err))
		assert.Equal(t, "usage: doctext <file_path>", doctext.ErrorMessage(err))
		assert.Empty(t, stdout.String())
	})

	t.Run("returns usage error for extra arguments", func(t *testing.T) {
		t.Parallel()

		err := newMain(t).Run(context.Background(), []string{"a.txt", "b.txt"}, &bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
		assert.Equal(t, doctext.EUSAGE, doctext.ErrorCode(err))
		assert.Contains(t, doctext.ErrorMessage(err), "usage: doctext <file_path>")
	})

	t.Run("prints help", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}

		err := newMain(t).Run(context.Background(), []string{"--help"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "file_path")
	})

	t.Run("reports missing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing.pdf")
		stdout := &bytes.Buffer{}

		err := newMain(t).Run(context.Background(), []string{path}, stdout, &bytes.Buffer{})

		require.Error(t, err)
		assert.Equal(t, doctext.ENOTFOUND, doctext.ErrorCode(err))
		assert.Contains(t, doctext.ErrorMessage(err), "file not found: "+path)
		assert.Empty(t, stdout.String())
	})

	t.Run("writes run to daily log", func(t *testing.T) {
		t.Parallel()

		m := newMain(t)
		path := writeFile(t, "notes.txt", "logged")

		err := m.Run(context.Background(), []string{path}, &bytes.Buffer{}, &bytes.Buffer{})
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(m.LogDir, "doctext-2024-03-05.log"))
		require.NoError(t, err)
		assert.Contains(t, string(data), `"run":`)
		assert.Contains(t, string(data), `"msg":"extract"`)
		assert.Contains(t, string(data), path)
	})

	t.Run("continues when log cannot be opened", func(t *testing.T) {
		t.Parallel()

		m := newMain(t)
		m.LogDir = writeFile(t, "not-a-dir", "x")
		path := writeFile(t, "notes.txt", "still works")
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{path}, stdout, stderr)

		require.NoError(t, err)
		assert.Equal(t, "still works\n", stdout.String())
		assert.Contains(t, stderr.String(), "diagnostic log unavailable")
	})

	t.Run("keeps stderr to one notice when log cannot be opened", func(t *testing.T) {
		t.Parallel()

		m := newMain(t)
		m.LogDir = writeFile(t, "not-a-dir", "x")
		path := filepath.Join(t.TempDir(), "missing.pdf")
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{path}, &bytes.Buffer{}, stderr)

		require.Error(t, err)
		assert.Equal(t, doctext.ENOTFOUND, doctext.ErrorCode(err))
		assert.Equal(t, 1, strings.Count(stderr.String(), "\n"))
		assert.Contains(t, stderr.String(), "diagnostic log unavailable")
		assert.NotContains(t, stderr.String(), "extraction failed")
	})
}

// TestMain_Run_DashPath changes the working directory, so it cannot run in
// parallel.
func TestMain_Run_DashPath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "-notes.txt"), []byte("dash file"), 0o644))
	t.Chdir(dir)

	stdout := &bytes.Buffer{}

	err := newMain(t).Run(context.Background(), []string{"-notes.txt"}, stdout, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, "dash file\n", stdout.String())
}
