package fs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/doctext/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyLogName(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, time.May, 1, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, "doctext-2024-05-01.log", fs.DailyLogName(now))
}

func TestOpenDailyLog(t *testing.T) {
	t.Parallel()

	t.Run("creates directory and file", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "nested", "logs")
		now := time.Date(2024, time.January, 2, 10, 0, 0, 0, time.UTC)

		f, err := fs.OpenDailyLog(dir, now)
		require.NoError(t, err)
		_, err = f.WriteString("first\n")
		require.NoError(t, err)
		require.NoError(t, f.Close())

		data, err := os.ReadFile(filepath.Join(dir, "doctext-2024-01-02.log"))
		require.NoError(t, err)
		assert.Equal(t, "first\n", string(data))
	})

	t.Run("appends to existing file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		now := time.Date(2024, time.January, 2, 10, 0, 0, 0, time.UTC)

		for _, line := range []string{"one\n", "two\n"} {
			f, err := fs.OpenDailyLog(dir, now)
			require.NoError(t, err)
			_, err = f.WriteString(line)
			require.NoError(t, err)
			require.NoError(t, f.Close())
		}

		data, err := os.ReadFile(filepath.Join(dir, fs.DailyLogName(now)))
		require.NoError(t, err)
		assert.Equal(t, "one\ntwo\n", string(data))
	})

	t.Run("returns error for empty directory", func(t *testing.T) {
		t.Parallel()

		_, err := fs.OpenDailyLog("", time.Now())

		require.Error(t, err)
	})

	t.Run("returns error when directory is a file", func(t *testing.T) {
		t.Parallel()

		file := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

		_, err := fs.OpenDailyLog(file, time.Now())

		require.Error(t, err)
	})
}

func TestExpandHome(t *testing.T) {
	t.Parallel()

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := fs.ExpandHome("~/.doctext/logs")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".doctext", "logs"), got)

	got, err = fs.ExpandHome("/var/log/doctext")
	require.NoError(t, err)
	assert.Equal(t, "/var/log/doctext", got)
}
