// Package ioutil provides writer helpers for rendering.
package ioutil

import (
	"io"
	"sync"

	"braces.dev/errtrace"
)

// CountingWriter accumulates the number of bytes written to the underlying writer
// and remembers the first write error. Writes after an error are skipped.
type CountingWriter struct {
	w   io.Writer
	num int
	err error
}

// Write implements [io.Writer].
func (cw *CountingWriter) Write(p []byte) (int, error) {
	if cw.err != nil {
		return 0, errtrace.Wrap(cw.err)
	}
	n, err := cw.w.Write(p)
	return n, errtrace.Wrap(cw.track(n, err))
}

// WriteString implements [io.StringWriter].
func (cw *CountingWriter) WriteString(s string) (int, error) {
	if cw.err != nil {
		return 0, errtrace.Wrap(cw.err)
	}
	n, err := io.WriteString(cw.w, s)
	return n, errtrace.Wrap(cw.track(n, err))
}

// WriteStrings writes each string in order and stops at the first error.
func (cw *CountingWriter) WriteStrings(ss ...string) *CountingWriter {
	for _, s := range ss {
		if _, err := cw.WriteString(s); err != nil {
			break
		}
	}
	return cw
}

// Call runs a RenderTo-style function against the underlying writer.
func (cw *CountingWriter) Call(fn func(io.Writer) (int, error)) *CountingWriter {
	if cw.err != nil {
		return cw
	}
	cw.track(fn(cw.w)) //nolint:errcheck
	return cw
}

func (cw *CountingWriter) track(n int, err error) error {
	cw.num += n
	if err != nil {
		cw.err = err
	}
	return err
}

// Result returns the total number of bytes written and the first error.
func (cw *CountingWriter) Result() (int, error) {
	return cw.num, errtrace.Wrap(cw.err)
}

var pool = &sync.Pool{
	New: func() any { return new(CountingWriter) },
}

// GetCountingWriter returns a pooled writer wrapping w.
// Release it with [FreeCountingWriter].
func GetCountingWriter(w io.Writer) *CountingWriter {
	cw := pool.Get().(*CountingWriter) //nolint:forcetypeassert
	cw.w = w
	return cw
}

func FreeCountingWriter(cw *CountingWriter) {
	*cw = CountingWriter{}
	pool.Put(cw)
}
