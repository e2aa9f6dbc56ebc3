package printlog

import (
	"bytes"
	"io"
	"sync"
)

// StderrCapture is a drop-in stand-in for a process error stream. Every
// write is forwarded to the original stream unmodified so interactive
// visibility is never lost, then buffered; each complete line re-enters the
// owning Printer's file path tagged as an error. Partial lines are withheld
// until a newline arrives or Flush is called, so a multi-write traceback
// still lands in the file as whole lines.
//
// The capture is never installed by the package itself: the host hands it to
// whatever produces error output (exec.Cmd.Stderr, log.SetOutput, a
// recovered-panic handler) and restores the original stream on teardown.
type StderrCapture struct {
	p    *Printer
	orig io.Writer

	mu  sync.Mutex
	buf []byte
}

var _ io.Writer = (*StderrCapture)(nil)

// Write forwards b to the original error stream, then logs every complete
// line now buffered. It never returns an error: error-stream logging must
// not be able to fail the writer that feeds it.
func (c *StderrCapture) Write(b []byte) (int, error) {
	if c.orig != nil {
		_, _ = c.orig.Write(b)
	}

	c.mu.Lock()
	c.buf = append(c.buf, b...)
	var lines []string
	for {
		i := bytes.IndexByte(c.buf, '\n')
		if i < 0 {
			break
		}
		lines = append(lines, string(c.buf[:i+1]))
		c.buf = c.buf[i+1:]
	}
	c.mu.Unlock()

	for _, line := range lines {
		c.p.logCapturedLine(line)
	}
	return len(b), nil
}

// Flush flushes the original error stream and forces any buffered partial
// line into the log file as-is, so an abrupt exit cannot silently drop the
// unterminated tail of a traceback.
func (c *StderrCapture) Flush() error {
	switch f := c.orig.(type) {
	case interface{ Flush() error }:
		_ = f.Flush()
	case interface{ Sync() error }:
		_ = f.Sync()
	}

	c.mu.Lock()
	rest := c.buf
	c.buf = nil
	c.mu.Unlock()

	if len(rest) > 0 {
		c.p.logCapturedLine(string(rest))
	}
	return nil
}

// Original returns the wrapped error stream so the host can restore it
// during teardown.
func (c *StderrCapture) Original() io.Writer {
	return c.orig
}
