package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter fans writes out to all backing writers. Unlike
// io.MultiWriter it does not stop at the first failing writer, the
// remaining ones still get the data and the errors are combined.
type CombinedWriter struct {
	writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{writers: writers}
}

// Write reports the smallest number of bytes any writer accepted.
func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var err error
	n := len(p)
	for _, w := range cw.writers {
		written, werr := w.Write(p)
		if werr != nil {
			err = multierr.Append(err, werr)
		}
		if written < n {
			n = written
		}
	}
	return n, err
}
