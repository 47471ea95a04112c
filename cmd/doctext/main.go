package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/doctext"
	"github.com/fwojciec/doctext/extract"
	"github.com/fwojciec/doctext/fs"
	"github.com/fwojciec/doctext/tesseract"
	"github.com/google/uuid"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, doctext.ErrorMessage(err))
		os.Exit(1)
	}
}

// usage is the one-line synopsis reported on argument errors.
const usage = "usage: doctext <file_path>"

// Main represents the program.
type Main struct {
	// LogDir holds the daily diagnostic logs. A leading "~" is expanded.
	LogDir string

	// Language is the OCR language, e.g. "eng" or "eng+deu".
	Language string

	// Tesseract is the executable used when the OCR library is unavailable.
	Tesseract string

	// Timeout bounds each extraction stage.
	Timeout time.Duration

	LogLevel slog.Level

	// Now returns the current time. It selects the daily log file.
	Now func() time.Time
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		LogDir:    "~/.doctext/logs",
		Language:  "eng",
		Tesseract: tesseract.DefaultBinary,
		Timeout:   2 * time.Minute,
		LogLevel:  slog.LevelInfo,
		Now:       time.Now,
	}
}

// Run executes the CLI with the given arguments. The extracted text is
// written to stdout; on failure the returned error carries the diagnostic.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("doctext"),
		kong.Description("Extract plain text from a document, falling back to OCR for images"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		return doctext.Errorf(doctext.EUSAGE, usage)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// A lone argument is always the path, even when it starts with "-".
	if len(args) == 1 {
		args = []string{"--", args[0]}
	}

	if _, err := parser.Parse(args); err != nil {
		return doctext.Errorf(doctext.EUSAGE, "%s (%v)", usage, err)
	}

	logger, closeLog := m.openLogger(stderr)
	defer closeLog()

	recognizer, capability := m.selectRecognizer(ctx, logger)
	logger.Info("run started", "path", cli.Path, "ocr", capability.String())

	pipeline := &extract.Pipeline{
		Extractor:  newGenericExtractor(logger),
		Recognizer: recognizer,
		OCR:        capability,
		Logger:     logger,
		Timeout:    m.Timeout,
	}

	text, err := pipeline.Extract(ctx, cli.Path)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, text)
	return nil
}

// openLogger opens today's log file. When that fails, a single notice goes
// to stderr, stage records are dropped and extraction proceeds.
func (m *Main) openLogger(stderr io.Writer) (*slog.Logger, func()) {
	now := time.Now
	if m.Now != nil {
		now = m.Now
	}

	dir, err := fs.ExpandHome(m.LogDir)
	if err == nil {
		var f *os.File
		if f, err = fs.OpenDailyLog(dir, now()); err == nil {
			handler := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: m.LogLevel})
			logger := slog.New(handler).With("run", uuid.NewString())
			return logger, func() { _ = f.Close() }
		}
	}

	slog.New(slog.NewTextHandler(stderr, nil)).Warn("diagnostic log unavailable", "err", err)
	return slog.New(slog.DiscardHandler), func() {}
}
