package report

import (
	"fmt"
	"io"
	"time"

	"github.com/nao1215/markdown"
)

// MarkdownWriter outputs experiment reports in Markdown format, designed
// for documentation and sharing. It renders the same sections as the text
// layout, with metrics and hyperparameters as tables.
type MarkdownWriter struct {
	baseWriter

	// Clock supplies the header timestamp. Nil means time.Now.
	Clock func() time.Time
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the full report in Markdown format.
func (w *MarkdownWriter) Write(exp *Experiment) (int, error) {
	if exp == nil {
		exp = &Experiment{}
	}

	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md)
	w.writeDataset(md, exp)
	w.writePreprocessing(md, exp)
	w.writeModels(md, exp)
	w.writeIssues(md, exp)
	w.writeConclusion(md, exp)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

func (w *MarkdownWriter) now() time.Time {
	if w.Clock != nil {
		return w.Clock()
	}
	return time.Now()
}

func (w *MarkdownWriter) writeHeader(md *markdown.Markdown) {
	md.H1("Model Report")
	md.PlainText("")
	md.PlainTextf("Generated: %s", w.now().Format("2006-01-02 15:04:05"))
	md.PlainText("")
}

func (w *MarkdownWriter) writeDataset(md *markdown.Markdown, exp *Experiment) {
	if exp.DatasetDescription == "" {
		return
	}
	md.H2("Dataset Description")
	md.PlainText("")
	md.PlainText(exp.DatasetDescription)
	md.PlainText("")
}

func (w *MarkdownWriter) writePreprocessing(md *markdown.Markdown, exp *Experiment) {
	if len(exp.PreprocessingSteps) == 0 {
		return
	}
	md.H2("Preprocessing Steps")
	md.PlainText("")
	md.BulletList(exp.PreprocessingSteps...)
	md.PlainText("")
}

func (w *MarkdownWriter) writeModels(md *markdown.Markdown, exp *Experiment) {
	for i, model := range exp.Models {
		md.H2(fmt.Sprintf("Model %d: %s", i+1, model.DisplayName()))
		md.PlainText("")

		if len(model.Metrics) == 0 {
			md.PlainText("Metrics: not provided.")
			md.PlainText("")
		} else {
			rows := make([][]string, 0, len(model.Metrics))
			for _, name := range sortedKeys(model.Metrics) {
				rows = append(rows, []string{name, fmt.Sprintf("%.4f", model.Metrics[name])})
			}
			md.Table(markdown.TableSet{
				Header: []string{"Metric", "Value"},
				Rows:   rows,
			})
			md.PlainText("")
		}

		if len(model.Hyperparams) > 0 {
			rows := make([][]string, 0, len(model.Hyperparams))
			for _, name := range sortedKeys(model.Hyperparams) {
				rows = append(rows, []string{name, fmt.Sprintf("%v", model.Hyperparams[name])})
			}
			md.Table(markdown.TableSet{
				Header: []string{"Hyperparameter", "Value"},
				Rows:   rows,
			})
			md.PlainText("")
		}
	}
}

func (w *MarkdownWriter) writeIssues(md *markdown.Markdown, exp *Experiment) {
	if len(exp.Issues) == 0 {
		return
	}
	md.H2("Known Issues / Observations")
	md.PlainText("")
	md.BulletList(exp.Issues...)
	md.PlainText("")
}

func (w *MarkdownWriter) writeConclusion(md *markdown.Markdown, exp *Experiment) {
	if exp.Conclusion == "" {
		return
	}
	md.H2("Conclusion / Notes")
	md.PlainText("")
	md.PlainText(exp.Conclusion)
	md.PlainText("")
}

func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainText("*Report generated by octogo*")
}
