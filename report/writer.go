package report

import (
	"io"
)

// Writer renders an Experiment to some destination.
// Implementations write the report in various formats. Using an interface
// keeps destinations flexible: files, stdout, and buffers share one API.
type Writer interface {
	// Write renders the experiment to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(exp *Experiment) (int, error)
}

// MultiWriter writes to multiple Writers simultaneously, for example to
// both a terminal and a file. This is a separate type rather than
// io.MultiWriter because a Writer consumes experiments, not raw bytes.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write renders the experiment with every configured Writer, in order.
// Returns the total bytes written and stops on the first error.
func (m *MultiWriter) Write(exp *Experiment) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(exp)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides the shared output destination for report writers.
type baseWriter struct {
	output io.Writer
}

func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
