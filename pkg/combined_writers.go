package pkg

import (
	"io"
	"sync"

	"go.uber.org/multierr"
)

// CombinedWriter fans log output out to several sinks. A write succeeds as long
// as at least one sink took the whole payload, so a full disk under the
// rotating log file does not silence STDOUT. Sink errors are collected in Err.
type CombinedWriter struct {
	mu      sync.Mutex
	writers []io.Writer
	err     error
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{
		writers: append([]io.Writer(nil), writers...),
	}
}

func (cw *CombinedWriter) Write(p []byte) (int, error) {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	var (
		errs      error
		delivered bool
	)
	for _, w := range cw.writers {
		n, err := w.Write(p)
		if err == nil && n < len(p) {
			err = io.ErrShortWrite
		}
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		delivered = true
	}

	if errs != nil {
		cw.err = multierr.Append(cw.err, errs)
	}
	if !delivered && len(cw.writers) > 0 {
		return 0, errs
	}
	return len(p), nil
}

// Err returns every sink error seen so far.
func (cw *CombinedWriter) Err() error {
	cw.mu.Lock()
	defer cw.mu.Unlock()
	return cw.err
}

func (cw *CombinedWriter) Sinks() int {
	return len(cw.writers)
}
