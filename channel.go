package printlog

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lestrrat-go/strftime"
	"github.com/spf13/afero"
)

// lineState tracks whether the next file write starts a new logical line
// (and therefore needs a timestamp/tag preamble) or continues the previous
// unterminated one.
type lineState int

const (
	stateFreshLine lineState = iota
	stateMidLine
)

// rotatingFile owns the single open log file handle and maps it to "today"
// in the configured time zone. It re-opens on date change, tracks the byte
// offset of the most recent entry for overwrite support, and injects the
// line preamble. All methods must be called with the owning Printer's mutex
// held; rotatingFile has no locking of its own.
type rotatingFile struct {
	fs       afero.Fs
	dir      string
	mode     os.FileMode
	loc      *time.Location
	filename *strftime.Strftime
	stamp    *strftime.Strftime
	now      func() time.Time

	file      afero.File
	openYear  int
	openMonth time.Month
	openDay   int
	off       int64 // current end-of-file offset
	lastEntry int64 // offset of the start of the most recent entry
	state     lineState
}

// ensureCurrent opens the log file for today's date, rotating away from a
// previous day's file if needed. Open failures are non-fatal: the channel
// degrades to "no file open" and appends become no-ops until a later
// rotation attempt succeeds.
func (f *rotatingFile) ensureCurrent(force bool) {
	year, month, day := f.now().In(f.loc).Date()
	if !force && f.file != nil && year == f.openYear && month == f.openMonth && day == f.openDay {
		return
	}

	f.openYear, f.openMonth, f.openDay = year, month, day
	if f.file != nil {
		_ = f.file.Close()
		f.file = nil
	}

	path := filepath.Join(f.dir, f.filename.FormatString(time.Date(year, month, day, 0, 0, 0, 0, f.loc)))
	file, err := f.fs.OpenFile(path, os.O_CREATE|os.O_WRONLY, f.mode)
	if err != nil {
		return
	}
	off, err := file.Seek(0, io.SeekEnd)
	if err != nil {
		_ = file.Close()
		return
	}

	f.file = file
	f.off = off
	f.lastEntry = off
	f.state = stateFreshLine
}

// append writes text to the current day's file, injecting a preamble at the
// start of every new logical line. A leading carriage return replaces the
// previous entry instead of appending after it. The whole call is assembled
// into one buffer and written with a single Write so a multi-line message is
// one atomic file mutation.
func (f *rotatingFile) append(text, tag string) {
	if text == "" {
		return
	}

	f.ensureCurrent(false)
	if f.file == nil {
		return
	}

	if strings.HasPrefix(text, "\r") {
		// Rewind to the start of the previous entry so progress-style
		// updates overwrite their own prior contents. On seek/truncate
		// failure, fall through and append normally.
		if err := f.truncateLastEntry(); err == nil {
			text = strings.TrimLeft(text, "\r")
			f.state = stateFreshLine
			if text == "" {
				return
			}
		}
	}

	var buf bytes.Buffer
	parts := strings.Split(text, "\n")
	trailing := strings.HasSuffix(text, "\n")

	for i, part := range parts {
		last := i == len(parts)-1
		if last && trailing && part == "" {
			continue
		}

		if f.state == stateFreshLine {
			f.lastEntry = f.off + int64(buf.Len())
			buf.WriteString(f.preamble(tag))
			f.state = stateMidLine
		}

		buf.WriteString(part)
		if !last || trailing {
			buf.WriteByte('\n')
			f.state = stateFreshLine
		}
	}

	n, err := f.file.Write(buf.Bytes())
	f.off += int64(n)
	if err == nil {
		_ = f.file.Sync()
	}
}

// truncateLastEntry rewinds the file to the start of the most recent entry
// and drops everything after it.
func (f *rotatingFile) truncateLastEntry() error {
	if _, err := f.file.Seek(f.lastEntry, io.SeekStart); err != nil {
		return err
	}
	if err := f.file.Truncate(f.lastEntry); err != nil {
		return err
	}
	f.off = f.lastEntry
	return nil
}

// preamble renders the "[timestamp] TAG " prefix for a new logical line.
func (f *rotatingFile) preamble(tag string) string {
	return "[" + f.stamp.FormatString(f.now().In(f.loc)) + "] " + tag + " "
}

// close releases the file handle. Idempotent; close errors are suppressed.
func (f *rotatingFile) close() {
	if f.file != nil {
		_ = f.file.Close()
		f.file = nil
	}
}
