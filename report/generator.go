package report

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/octogo-ml/octogo/pkg/errors"
	"github.com/octogo-ml/octogo/pkg/log"
)

// DefaultReportPath is the report destination used when no path is given.
const DefaultReportPath = "octogo_model_report.txt"

// Generator writes text reports to a fixed destination path. It holds only
// the path and output configuration; every Generate call is an independent
// transaction that builds the full report in memory and then writes it as
// one whole-file operation, truncating any previous content.
//
// Concurrent Generate calls are safe as long as each Generator writes to a
// distinct path; writes to the same path are not coordinated.
type Generator struct {
	path  string
	out   io.Writer
	clock func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithPath sets the destination file path. The path is stored verbatim;
// writability is not checked until Generate.
func WithPath(path string) Option {
	return func(g *Generator) { g.path = path }
}

// WithOutput sets the writer for the confirmation line, normally stdout.
func WithOutput(w io.Writer) Option {
	return func(g *Generator) { g.out = w }
}

// WithClock sets the clock used for the report header timestamp.
func WithClock(clock func() time.Time) Option {
	return func(g *Generator) { g.clock = clock }
}

// NewGenerator creates a Generator writing to DefaultReportPath unless
// configured otherwise.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		path: DefaultReportPath,
		out:  os.Stdout,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Path returns the configured destination path.
func (g *Generator) Path() string { return g.path }

// Generate renders the experiment as a text report and writes it to the
// destination path in a single whole-file write. On success it prints one
// confirmation line naming the destination. Render and I/O failures are
// returned; no partial report is persisted when rendering fails.
func (g *Generator) Generate(exp *Experiment) error {
	if exp == nil {
		exp = &Experiment{}
	}

	var buf bytes.Buffer
	tw := NewTextWriter(&buf)
	tw.Clock = g.clock
	if _, err := tw.Write(exp); err != nil {
		return errors.Wrap(err, "report: rendering")
	}

	if err := os.WriteFile(g.path, buf.Bytes(), 0o600); err != nil {
		return errors.Wrapf(err, "report: writing %s", g.path)
	}

	log.GetLogger().Info("report generated",
		log.OperationKey, "generate_report",
		log.PathKey, g.path,
		log.ModelsKey, len(exp.Models),
	)

	fmt.Fprintf(g.out, "\n✅ Report generated and saved as: %s\n", g.path)
	return nil
}
