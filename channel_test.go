package printlog

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/lestrrat-go/strftime"
	"github.com/spf13/afero"
)

func mustPattern(t *testing.T, pattern string) *strftime.Strftime {
	t.Helper()
	p, err := strftime.New(pattern)
	if err != nil {
		t.Fatalf("failed to compile pattern %q: %v", pattern, err)
	}
	return p
}

func TestRotation(t *testing.T) {
	t.Run("date change opens a new file and keeps the old one intact", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		current := testClock
		p := mustNewPrinter(t, testConfig(io.Discard, io.Discard), fs, func() time.Time { return current })

		p.Info("last line of the day")
		current = current.AddDate(0, 0, 1)
		p.Info("first line of the new day")

		old := readLogFile(t, fs, "log_2024-03-15.txt")
		if old != "[10:04:05] [INFO] last line of the day\n" {
			t.Errorf("old file lost bytes on rotation: %q", old)
		}
		fresh := readLogFile(t, fs, "log_2024-03-16.txt")
		if fresh != "[10:04:05] [INFO] first line of the new day\n" {
			t.Errorf("unexpected new file content: %q", fresh)
		}
	})

	t.Run("rotation check happens on every append, not just at startup", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		current := testClock
		p := mustNewPrinter(t, testConfig(io.Discard, io.Discard), fs, func() time.Time { return current })

		// Several midnight crossings in one printer lifetime.
		for range 3 {
			p.Info("tick")
			current = current.AddDate(0, 0, 1)
		}

		for _, name := range []string{"log_2024-03-15.txt", "log_2024-03-16.txt", "log_2024-03-17.txt"} {
			if got := readLogFile(t, fs, name); !strings.Contains(got, "tick") {
				t.Errorf("%s missing its line: %q", name, got)
			}
		}
	})

	t.Run("appends to an existing file for the same day", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		cfg := testConfig(io.Discard, io.Discard)

		p1 := mustNewPrinter(t, cfg, fs, func() time.Time { return testClock })
		p1.Info("first run")
		_ = p1.Close()

		p2 := mustNewPrinter(t, cfg, fs, func() time.Time { return testClock })
		p2.Info("second run")

		got := readLogFile(t, fs, "log_2024-03-15.txt")
		want := "[10:04:05] [INFO] first run\n[10:04:05] [INFO] second run\n"
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})
}

func TestOverwriteMarker(t *testing.T) {
	t.Run("replaces the previous entry instead of appending", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		p := mustNewPrinter(t, testConfig(io.Discard, io.Discard), fs, func() time.Time { return testClock })

		p.Print("Progress: 10%")
		p.Print("\rProgress: 50%")
		p.Print("\rProgress: 100%")

		got := readLogFile(t, fs, "log_2024-03-15.txt")
		want := "[10:04:05] [INFO] Progress: 100%\n"
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("only the last entry is overwritten", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		p := mustNewPrinter(t, testConfig(io.Discard, io.Discard), fs, func() time.Time { return testClock })

		p.Info("kept line")
		p.Print("Progress: 10%")
		p.Print("\rProgress: done")

		got := readLogFile(t, fs, "log_2024-03-15.txt")
		want := "[10:04:05] [INFO] kept line\n[10:04:05] [INFO] Progress: done\n"
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("overwrite of an unterminated entry starts fresh", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		p := mustNewPrinter(t, testConfig(io.Discard, io.Discard), fs, func() time.Time { return testClock })

		opts := DefaultOptions()
		opts.End = ""
		p.Emit(SeverityNormal, opts, "partial")
		p.Print("\rreplaced")

		got := readLogFile(t, fs, "log_2024-03-15.txt")
		want := "[10:04:05] [INFO] replaced\n"
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("marker alone truncates the previous entry", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		p := mustNewPrinter(t, testConfig(io.Discard, io.Discard), fs, func() time.Time { return testClock })

		p.Print("Progress: 10%")
		p.Emit(SeverityNormal, Options{Sep: " ", End: ""}, "\r")

		got := readLogFile(t, fs, "log_2024-03-15.txt")
		if got != "" {
			t.Errorf("expected truncated file, got %q", got)
		}
	})
}

func TestChannelDegradation(t *testing.T) {
	t.Run("unwritable filesystem disables file logging with a warning", func(t *testing.T) {
		fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
		var console, stderr strings.Builder
		cfg := testConfig(&console, &stderr)
		p := mustNewPrinter(t, cfg, fs, func() time.Time { return testClock })

		p.Info("survives without a file")

		if !strings.Contains(stderr.String(), "Warning: could not create logs directory") {
			t.Errorf("expected a directory warning on stderr, got %q", stderr.String())
		}
		if console.String() != "survives without a file\n" {
			t.Errorf("console output should be unaffected, got %q", console.String())
		}
	})

	t.Run("open failure degrades appends to silent no-ops", func(t *testing.T) {
		base := afero.NewMemMapFs()
		if err := base.MkdirAll("logs", 0755); err != nil {
			t.Fatalf("mkdir failed: %v", err)
		}
		f := &rotatingFile{
			fs:   afero.NewReadOnlyFs(base),
			dir:  "logs",
			mode: 0644,
			loc:  time.UTC,
			now:  func() time.Time { return testClock },
		}
		f.filename = mustPattern(t, DefaultFilenameFormat)
		f.stamp = mustPattern(t, DefaultTimestampFormat)

		f.ensureCurrent(true)
		if f.file != nil {
			t.Fatal("expected no open file on a read-only filesystem")
		}

		// Must not panic or create anything.
		f.append("dropped\n", "[INFO]")

		if ok, _ := afero.Exists(base, "logs/log_2024-03-15.txt"); ok {
			t.Error("no file should exist after failed opens")
		}
	})

	t.Run("close is idempotent", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		p := mustNewPrinter(t, testConfig(io.Discard, io.Discard), fs, func() time.Time { return testClock })

		p.file.close()
		p.file.close()
	})

	t.Run("empty append is a no-op", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		p := mustNewPrinter(t, testConfig(io.Discard, io.Discard), fs, func() time.Time { return testClock })

		p.file.append("", "[INFO]")

		got := readLogFile(t, fs, "log_2024-03-15.txt")
		if got != "" {
			t.Errorf("expected empty file, got %q", got)
		}
	})
}
