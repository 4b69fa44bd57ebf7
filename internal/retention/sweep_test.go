package retention

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkdirs(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, n := range names {
		require.NoError(t, os.MkdirAll(filepath.Join(root, n), 0o755))
	}
}

func TestSweep_RemovesExpiredDirectories(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "01_Jan_2020")
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	report := Sweep(root, 30, now, nil)

	assert.Equal(t, []string{"01_Jan_2020"}, report.Removed)
	assert.NoDirExists(t, filepath.Join(root, "01_Jan_2020"))
}

func TestSweep_KeepsDirectoriesInsideWindow(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "01_Jan_2020")
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	report := Sweep(root, 3650, now, nil)

	assert.Empty(t, report.Removed)
	assert.DirExists(t, filepath.Join(root, "01_Jan_2020"))
}

func TestSweep_IgnoresNonDateNames(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "notadate", "2020-01-01", "1_Jan_2020")
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	report := Sweep(root, 0, now, nil)

	assert.Empty(t, report.Removed)
	for _, n := range []string{"notadate", "2020-01-01", "1_Jan_2020"} {
		assert.DirExists(t, filepath.Join(root, n))
	}
}

func TestSweep_SkipsPatternMatchingButUnparseableNames(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "15_Foo_2024")
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	report := Sweep(root, 30, now, nil)

	assert.Empty(t, report.Removed)
	assert.Equal(t, []string{"15_Foo_2024"}, report.Skipped)
	assert.DirExists(t, filepath.Join(root, "15_Foo_2024"))
}

func TestSweep_IgnoresPlainFiles(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "01_Jan_2020"), []byte("file"), 0o644))
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	report := Sweep(root, 30, now, nil)

	assert.Empty(t, report.Removed)
	assert.FileExists(t, filepath.Join(root, "01_Jan_2020"))
}

func TestSweep_MissingRootIsNotFatal(t *testing.T) {
	report := Sweep(filepath.Join(t.TempDir(), "missing"), 30, time.Now(), nil)

	assert.Empty(t, report.Removed)
	assert.Empty(t, report.Skipped)
}

func TestSweep_RecursiveDelete(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "01_Jan_2020")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Ward5_Jane_20200101_120000.csv"), []byte("x"), 0o644))
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	report := Sweep(root, 30, now, nil)

	assert.Equal(t, []string{"01_Jan_2020"}, report.Removed)
	assert.NoDirExists(t, dir)
}
