package printlog

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Default format strings for log filenames and per-line timestamps. Both use
// strftime-style conversion specifiers.
const (
	DefaultFilenameFormat  = "log_%Y-%m-%d.txt"
	DefaultTimestampFormat = "%H:%M:%S"
)

// Config holds every formatting and behavior toggle for a [Printer]. It is
// read once at construction and never mutated afterwards; changing fields on
// a Config after passing it to [New] has no effect.
//
// The zero value is not useful. Start from [DefaultConfig] and override what
// you need.
type Config struct {
	// Dir is the directory log files are written to. It is created on
	// construction if missing.
	Dir string

	// Location is the time zone used for file rotation, line timestamps,
	// and retention pruning. Defaults to time.UTC.
	Location *time.Location

	// RetentionDays controls startup pruning: files in Dir whose
	// modification date is older than this many days are deleted when the
	// Printer is constructed.
	RetentionDays int

	// FileLogging enables the daily-rotating log file. When false, no
	// files are created or written.
	FileLogging bool

	// ConsoleLogging enables output to Console. File logging is
	// unaffected when this is false.
	ConsoleLogging bool

	// ColorEnabled wraps console messages in ANSI color escapes. Colors
	// are never written to the log file. DefaultConfig enables this only
	// when stdout is a color-capable terminal.
	ColorEnabled bool

	// CaptureStderr constructs the stderr capture adapter, available via
	// [Printer.Capture]. The adapter is never installed automatically;
	// the host decides where to wire it.
	CaptureStderr bool

	// FilenameFormat is the strftime pattern a calendar date is rendered
	// through to produce the day's log filename.
	FilenameFormat string

	// TimestampFormat is the strftime pattern for the timestamp at the
	// start of every log line.
	TimestampFormat string

	// Tags maps each severity to the tag string written after the
	// timestamp. Missing severities fall back to the INFO tag.
	Tags map[Severity]string

	// Colors maps severity names (see [Severity.String]) plus "reset" to
	// ANSI escape strings. Missing keys resolve to the empty string.
	Colors map[string]string

	// Console is the interactive output sink. Defaults to os.Stdout.
	Console io.Writer

	// Stderr is the process error stream the capture adapter wraps, and
	// the target for construction-time warnings. Defaults to os.Stderr.
	Stderr io.Writer

	// FileMode and DirMode are the permissions used when creating log
	// files and the log directory.
	FileMode os.FileMode
	DirMode  os.FileMode
}

// DefaultConfig returns the standard configuration: daily files under
// "logs/" in UTC, seven day retention, console output with colors when the
// terminal supports them, and stderr capture enabled.
func DefaultConfig() Config {
	return Config{
		Dir:             "logs",
		Location:        time.UTC,
		RetentionDays:   7,
		FileLogging:     true,
		ConsoleLogging:  true,
		ColorEnabled:    colorCapable(os.Stdout),
		CaptureStderr:   true,
		FilenameFormat:  DefaultFilenameFormat,
		TimestampFormat: DefaultTimestampFormat,
		Tags:            DefaultTags(),
		Colors:          DefaultColors(),
		Console:         os.Stdout,
		Stderr:          os.Stderr,
		FileMode:        0644,
		DirMode:         0755,
	}
}

// DefaultTags returns the standard per-severity tag strings.
func DefaultTags() map[Severity]string {
	return map[Severity]string{
		SeverityNormal:   "[INFO]",
		SeverityInfo:     "[INFO]",
		SeveritySuccess:  "[SUCCESS]",
		SeverityWarning:  "[WARN]",
		SeverityError:    "[ERROR]",
		SeverityDebug:    "[DEBUG]",
		SeverityCritical: "[CRIT]",
	}
}

// DefaultColors returns the standard ANSI color table keyed by severity name
// plus the "reset" escape.
func DefaultColors() map[string]string {
	return map[string]string{
		"normal":   "\033[37m",
		"info":     "\033[34m",
		"error":    "\033[31m",
		"warning":  "\033[33m",
		"success":  "\033[32m",
		"debug":    "\033[36m",
		"critical": "\033[41m\033[37m",
		"reset":    "\033[0m",
	}
}

// withDefaults fills unset fields so the rest of the package never has to
// nil-check. Boolean toggles are taken as-is.
func (c Config) withDefaults() Config {
	if c.Location == nil {
		c.Location = time.UTC
	}
	if c.FilenameFormat == "" {
		c.FilenameFormat = DefaultFilenameFormat
	}
	if c.TimestampFormat == "" {
		c.TimestampFormat = DefaultTimestampFormat
	}
	if c.Tags == nil {
		c.Tags = DefaultTags()
	}
	if c.Colors == nil {
		c.Colors = DefaultColors()
	}
	if c.Console == nil {
		c.Console = os.Stdout
	}
	if c.Stderr == nil {
		c.Stderr = os.Stderr
	}
	if c.FileMode == 0 {
		c.FileMode = 0644
	}
	if c.DirMode == 0 {
		c.DirMode = 0755
	}
	return c
}

// tag returns the file tag for a severity, falling back to the INFO tag so a
// sparse Tags map never produces an untagged line.
func (c *Config) tag(s Severity) string {
	if t, ok := c.Tags[s]; ok {
		return t
	}
	return c.Tags[SeverityInfo]
}

// color looks up an escape string by key. Missing keys resolve to "".
func (c *Config) color(key string) string {
	return c.Colors[key]
}

// colorCapable reports whether f is a terminal whose environment advertises
// at least basic ANSI color support.
func colorCapable(f *os.File) bool {
	if f == nil {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	return termenv.EnvColorProfile() != termenv.Ascii
}
