// Package fs provides file-based storage for run logs.
package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LogPrefix is the file name prefix of daily log files.
const LogPrefix = "doctext-"

// DailyLogName returns the log file name for the day of now,
// e.g. doctext-2024-05-01.log.
func DailyLogName(now time.Time) string {
	return LogPrefix + now.Format("2006-01-02") + ".log"
}

// OpenDailyLog opens the log file for the day of now inside dir for
// appending, creating dir and the file when missing.
func OpenDailyLog(dir string, now time.Time) (*os.File, error) {
	if dir == "" {
		return nil, fmt.Errorf("log directory not set")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	path := filepath.Join(dir, DailyLogName(now))
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// ExpandHome replaces a leading "~" in path with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
