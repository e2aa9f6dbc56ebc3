// Package printlog is a print-style logging façade that writes every message
// to the console and to a daily-rotating log file at the same time.
//
// Messages are tagged by severity, timestamped, and colorized for
// interactive display. The file side multiplexes all concurrent callers into
// a single ordered stream, rotates transparently when the calendar date
// changes, and supports in-place overwrite of the most recent line so
// carriage-return progress updates don't accumulate duplicate rows. An
// optional adapter re-homes the process error stream through the same
// pipeline without breaking line atomicity.
//
// # Features
//
//   - Per-severity tags and ANSI colors (normal, info, success, warning,
//     error, debug, critical)
//   - One log file per calendar day, named by a strftime pattern, rotated
//     lazily on the first write after midnight in the configured time zone
//   - Retention pruning of old files on construction
//   - Carriage-return overwrite of the previous entry, for progress lines
//   - Unterminated messages continue the same file line on the next write,
//     with a single preamble
//   - Stderr capture that tees raw bytes to the real stream and logs each
//     complete line under the error tag
//
// # Thread Safety
//
// A single mutex serializes every emit across both sinks, so concurrent
// callers never interleave their bytes within the file and a rotation
// decision made by one caller is never invalidated by another's write. The
// [StderrCapture] adapter funnels into the same mutex.
//
// No logging call ever returns an error or panics on I/O failure. Console
// failures are discarded; a file that cannot be opened degrades the printer
// to console-only until a later rotation attempt succeeds.
//
// # Basic Usage
//
//	p, err := printlog.New(printlog.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	defer p.Close()
//
//	p.Print("System initializing...")
//	p.Success("Database connected successfully.")
//	p.Warning("High latency detected:", "450ms")
//	p.Error("Connection dropped.")
//
// File output:
//
//	[14:30:25] [INFO] System initializing...
//	[14:30:25] [SUCCESS] Database connected successfully.
//	[14:30:26] [WARN] High latency detected: 450ms
//	[14:30:26] [ERROR] Connection dropped.
//
// # Progress Lines
//
// Use [Printer.Emit] with a custom terminator to build up one logical line
// across calls, and a leading carriage return to overwrite it:
//
//	opts := printlog.DefaultOptions()
//	opts.End = ""
//	p.Emit(printlog.SeverityNormal, opts, "Loading modules...")
//	p.Print("\rLoading modules... done")
//
// The console sees normal cursor-return behavior; the file ends up with a
// single line holding only the final text.
//
// # Stderr Capture
//
// The capture adapter is handed to the host rather than installed globally:
//
//	cmd := exec.Command("some-tool")
//	cmd.Stderr = p.Capture()
//
// Every complete line the tool writes lands in the log under the error tag
// while still reaching the real stderr byte-for-byte. Call
// [StderrCapture.Flush] (or [Printer.Close]) to push out a trailing
// unterminated fragment.
package printlog
