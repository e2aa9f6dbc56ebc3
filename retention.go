package printlog

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
)

// initLogsDir creates the log directory and prunes files older than the
// retention window. A directory that cannot be created emits a one-line
// warning on cfg.Stderr and disables file logging for this printer; nothing
// here is allowed to fail construction.
func initLogsDir(fs afero.Fs, cfg *Config, now time.Time) {
	if err := fs.MkdirAll(cfg.Dir, cfg.DirMode); err != nil {
		fmt.Fprintf(cfg.Stderr, "Warning: could not create logs directory %q: %v\n", cfg.Dir, err)
		cfg.FileLogging = false
		return
	}
	pruneOldLogs(fs, cfg, now)
}

// pruneOldLogs deletes files in cfg.Dir whose modification date, taken in
// the configured time zone, is more than RetentionDays before today. Errors
// on individual files are skipped; a file that cannot be removed is left for
// the next startup.
func pruneOldLogs(fs afero.Fs, cfg *Config, now time.Time) {
	entries, err := afero.ReadDir(fs, cfg.Dir)
	if err != nil {
		return
	}

	cutoff := dateOnly(now.In(cfg.Location), cfg.Location).AddDate(0, 0, -cfg.RetentionDays)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		modDate := dateOnly(entry.ModTime().In(cfg.Location), cfg.Location)
		if modDate.Before(cutoff) {
			_ = fs.Remove(filepath.Join(cfg.Dir, entry.Name()))
		}
	}
}

// dateOnly truncates t to midnight of its calendar date in loc.
func dateOnly(t time.Time, loc *time.Location) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}
