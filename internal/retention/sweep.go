// Package retention removes expired date-named output directories.
package retention

import (
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"time"
)

// folderPattern matches the dated output directories: two-digit day,
// three-letter month abbreviation, four-digit year (e.g. 01_Jan_2025).
var folderPattern = regexp.MustCompile(`^\d{2}_[A-Za-z]{3}_\d{4}$`)

const folderLayout = "02_Jan_2006"

// Report summarizes one sweep for logging and tests.
type Report struct {
	Removed []string
	Skipped []string
}

// Sweep deletes immediate subdirectories of root whose date-pattern names
// parse to a date more than maxAgeDays whole days before now. Sweeping is
// best-effort housekeeping: unparseable names and failed deletions are
// skipped with a logged reason, and Sweep itself never fails the caller.
func Sweep(root string, maxAgeDays int, now time.Time, logger *slog.Logger) Report {
	if logger == nil {
		logger = slog.Default()
	}
	var report Report

	entries, err := os.ReadDir(root)
	if err != nil {
		logger.Warn("retention sweep skipped", "root", root, "error", err)
		return report
	}

	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		name := e.Name()
		if !folderPattern.MatchString(name) {
			continue
		}

		folderDate, err := time.Parse(folderLayout, name)
		if err != nil {
			// Pattern-matching names can still fail to parse, e.g. 15_Foo_2024.
			logger.Info("retention skip", "dir", name, "reason", "unparseable date")
			report.Skipped = append(report.Skipped, name)
			continue
		}

		ageDays := int(now.Sub(folderDate).Hours() / 24)
		if ageDays <= maxAgeDays {
			continue
		}

		path := filepath.Join(root, name)
		if err := os.RemoveAll(path); err != nil {
			logger.Info("retention skip", "dir", name, "reason", err)
			report.Skipped = append(report.Skipped, name)
			continue
		}
		logger.Info("retention removed", "dir", name, "age_days", ageDays)
		report.Removed = append(report.Removed, name)
	}

	return report
}
