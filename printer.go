package printlog

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/lestrrat-go/strftime"
	"github.com/spf13/afero"
)

// Options carries the per-call knobs of a [Printer.Emit] call. Sep and End are
// used verbatim; use [DefaultOptions] for the conventional space separator
// and newline terminator.
type Options struct {
	// Sep is placed between stringified arguments.
	Sep string
	// End is appended after the last argument. An End without a trailing
	// newline leaves the file line unterminated; the next emit continues
	// it without a new preamble.
	End string
	// Stream, when set, redirects the message to this writer alone: no
	// coloring and no file write happen.
	Stream io.Writer
	// Flush flushes the console sink after writing, when it supports it.
	Flush bool
}

// DefaultOptions returns the conventional print options: arguments joined by
// a single space, terminated by a newline, no flush.
func DefaultOptions() Options {
	return Options{Sep: " ", End: "\n"}
}

// Printer is a print-style logging façade. It serializes all console and
// file writes behind a single mutex, colorizes console output, and appends
// tagged, timestamped lines to a daily-rotating file.
//
// All methods are safe for concurrent use. No logging method ever returns or
// panics on an I/O failure; console and file errors are swallowed so logging
// cannot crash the host process.
type Printer struct {
	cfg     Config
	mu      sync.Mutex
	file    *rotatingFile
	capture *StderrCapture
	closed  bool
}

// New constructs a Printer from cfg. It creates the log directory, prunes
// files older than the retention window, and opens today's log file. A
// directory that cannot be created produces a one-line warning on
// cfg.Stderr and leaves the printer degraded to console-only; it is not an
// error. The only construction errors are invalid strftime patterns.
func New(cfg Config) (*Printer, error) {
	return newPrinter(cfg, afero.NewOsFs(), time.Now)
}

func newPrinter(cfg Config, fs afero.Fs, now func() time.Time) (*Printer, error) {
	cfg = cfg.withDefaults()

	filename, err := strftime.New(cfg.FilenameFormat)
	if err != nil {
		return nil, fmt.Errorf("invalid filename format %q: %w", cfg.FilenameFormat, err)
	}
	stamp, err := strftime.New(cfg.TimestampFormat)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp format %q: %w", cfg.TimestampFormat, err)
	}

	p := &Printer{
		cfg: cfg,
		file: &rotatingFile{
			fs:       fs,
			dir:      cfg.Dir,
			mode:     cfg.FileMode,
			loc:      cfg.Location,
			filename: filename,
			stamp:    stamp,
			now:      now,
		},
	}

	if cfg.FileLogging {
		initLogsDir(fs, &p.cfg, now())
		p.file.ensureCurrent(true)
	}
	if cfg.CaptureStderr {
		p.capture = &StderrCapture{p: p, orig: cfg.Stderr}
	}

	return p, nil
}

// Emit renders args through opts and writes the result to the console and
// the log file under the given severity. The mutex is held for the whole
// operation so concurrent emits never interleave their bytes in either sink
// and a rotation decision cannot be invalidated mid-write.
func (p *Printer) Emit(sev Severity, opts Options, args ...any) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a)
	}
	msg := strings.Join(parts, opts.Sep) + opts.End

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cfg.ConsoleLogging || opts.Stream != nil {
		out := msg
		if p.cfg.ColorEnabled && opts.Stream == nil {
			color := p.cfg.color(sev.String())
			reset := p.cfg.color("reset")
			if rest, ok := strings.CutPrefix(msg, "\r"); ok {
				// Keep the carriage return ahead of the color
				// escape so terminal cursor-return still works.
				out = "\r" + color + rest + reset
			} else {
				out = color + msg + reset
			}
		}
		target := opts.Stream
		if target == nil {
			target = p.cfg.Console
		}
		writeConsole(target, out, opts.Flush)
	}

	if p.cfg.FileLogging && opts.Stream == nil {
		p.file.append(msg, p.cfg.tag(sev))
	}
}

// Print logs at the normal level, mirroring a plain print call.
func (p *Printer) Print(args ...any) {
	p.Emit(SeverityNormal, DefaultOptions(), args...)
}

// Info logs at the info level.
func (p *Printer) Info(args ...any) {
	p.Emit(SeverityInfo, DefaultOptions(), args...)
}

// Success logs at the success level.
func (p *Printer) Success(args ...any) {
	p.Emit(SeveritySuccess, DefaultOptions(), args...)
}

// Warning logs at the warning level.
func (p *Printer) Warning(args ...any) {
	p.Emit(SeverityWarning, DefaultOptions(), args...)
}

// Error logs at the error level and flushes the console immediately.
func (p *Printer) Error(args ...any) {
	opts := DefaultOptions()
	opts.Flush = true
	p.Emit(SeverityError, opts, args...)
}

// Debug logs at the debug level.
func (p *Printer) Debug(args ...any) {
	p.Emit(SeverityDebug, DefaultOptions(), args...)
}

// Critical logs at the critical level and flushes the console immediately.
func (p *Printer) Critical(args ...any) {
	opts := DefaultOptions()
	opts.Flush = true
	p.Emit(SeverityCritical, opts, args...)
}

// Capture returns the stderr capture adapter, or nil when Config.
// CaptureStderr was false. The host is responsible for wiring it in front of
// whatever produces error output and for restoring the original stream (see
// [StderrCapture.Original]) on teardown.
func (p *Printer) Capture() *StderrCapture {
	return p.capture
}

// Close flushes any partial captured stderr line and closes the log file.
// Idempotent. Logging after Close degrades to console-only.
func (p *Printer) Close() error {
	if p.capture != nil {
		_ = p.capture.Flush()
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	p.cfg.FileLogging = false
	p.file.close()
	return nil
}

// logCapturedLine routes a line captured from the error stream into the file
// path under the error tag. Called by StderrCapture outside the mutex.
func (p *Printer) logCapturedLine(line string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cfg.FileLogging {
		p.file.append(line, p.cfg.tag(SeverityError))
	}
}

// writeConsole is the best-effort console write: errors from the writer and
// its flusher are discarded.
func writeConsole(w io.Writer, s string, flush bool) {
	defer func() {
		// A panicking writer must not take logging down with it.
		_ = recover()
	}()
	_, _ = io.WriteString(w, s)
	if !flush {
		return
	}
	switch f := w.(type) {
	case interface{ Flush() error }:
		_ = f.Flush()
	case interface{ Sync() error }:
		_ = f.Sync()
	}
}
