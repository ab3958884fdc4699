// Package ioutil provides writer helpers used to serialize header fields and message heads.
package ioutil

//go:generate go tool errtrace -w .

import (
	"fmt"
	"io"
	"sync"

	"braces.dev/errtrace"
)

const crlf = "\r\n"

// CountingWriter wraps an io.Writer and tracks the total number of bytes written.
// Once a write fails, every following call is a no-op and the first error is kept.
// It lets RenderTo implementations chain writes without manual byte accumulation.
type CountingWriter struct {
	w   io.Writer
	num int
	err error
}

// NewCountingWriter creates a new CountingWriter wrapping the given writer.
func NewCountingWriter(w io.Writer) *CountingWriter {
	return &CountingWriter{w: w}
}

func (cw *CountingWriter) track(n int, err error) (int, error) {
	cw.num += n
	if err != nil {
		cw.err = errtrace.Wrap(err)
		return n, cw.err //errtrace:skip
	}
	return n, nil
}

// Write implements io.Writer.
func (cw *CountingWriter) Write(p []byte) (n int, err error) {
	if cw.err != nil {
		return 0, cw.err //errtrace:skip
	}
	return cw.track(cw.w.Write(p)) //errtrace:skip
}

// WriteString implements io.StringWriter.
func (cw *CountingWriter) WriteString(s string) (n int, err error) {
	if cw.err != nil {
		return 0, cw.err //errtrace:skip
	}
	return cw.track(io.WriteString(cw.w, s)) //errtrace:skip
}

// Fprint writes args formatted as by fmt.Fprint.
func (cw *CountingWriter) Fprint(args ...any) (n int, err error) {
	if cw.err != nil {
		return 0, cw.err //errtrace:skip
	}
	return cw.track(fmt.Fprint(cw.w, args...)) //errtrace:skip
}

// Line writes args formatted as by fmt.Fprint followed by CRLF.
func (cw *CountingWriter) Line(args ...any) (n int, err error) {
	n, _ = cw.Fprint(args...)
	m, err := cw.WriteString(crlf)
	return n + m, err //errtrace:skip
}

// Field writes a "name: value" pair without the line terminator.
func (cw *CountingWriter) Field(name, value string) (n int, err error) {
	n, _ = cw.WriteString(name)
	m, _ := cw.WriteString(": ")
	k, err := cw.WriteString(value)
	return n + m + k, err //errtrace:skip
}

// Call executes a RenderTo-style function and tracks bytes written.
func (cw *CountingWriter) Call(fn func(io.Writer) (int, error)) *CountingWriter {
	if cw.err != nil {
		return cw
	}
	cw.track(fn(cw.w)) //nolint:errcheck
	return cw
}

// Result returns the total number of bytes written and the first error encountered.
func (cw *CountingWriter) Result() (num int, err error) {
	return cw.num, cw.err //errtrace:skip
}

// Count returns the total number of bytes written.
func (cw *CountingWriter) Count() int { return cw.num }

var cntWrtPool = &sync.Pool{
	New: func() any { return &CountingWriter{} },
}

func GetCountingWriter(w io.Writer) *CountingWriter {
	cw := cntWrtPool.Get().(*CountingWriter) //nolint:forcetypeassert
	cw.w = w
	return cw
}

func FreeCountingWriter(cw *CountingWriter) {
	cw.w = nil
	cw.num = 0
	cw.err = nil
	cntWrtPool.Put(cw)
}
