package report

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// TextWriter renders an Experiment as the plain-text report layout:
// a timestamped header, then one labeled section per populated field, with
// model blocks numbered in input order. The whole report is built in memory
// and written in a single call.
type TextWriter struct {
	baseWriter

	// Clock supplies the header timestamp. Nil means time.Now; tests set it
	// to a fixed clock.
	Clock func() time.Time
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{baseWriter: newBaseWriter(output)}
}

// Write renders the experiment and writes it to the destination in one
// operation.
func (w *TextWriter) Write(exp *Experiment) (int, error) {
	if exp == nil {
		exp = &Experiment{}
	}
	return io.WriteString(w.output, w.render(exp))
}

func (w *TextWriter) now() time.Time {
	if w.Clock != nil {
		return w.Clock()
	}
	return time.Now()
}

func (w *TextWriter) render(exp *Experiment) string {
	var lines []string

	// Timestamp header
	lines = append(lines, fmt.Sprintf("📝 OCTOGO MODEL REPORT - %s", w.now().Format("2006-01-02 15:04:05")))
	lines = append(lines, strings.Repeat("=", 60))

	// Dataset
	if exp.DatasetDescription != "" {
		lines = append(lines, "\n📊 Dataset Description:\n"+exp.DatasetDescription)
	}

	// Preprocessing
	if len(exp.PreprocessingSteps) > 0 {
		lines = append(lines, "\n🧹 Preprocessing Steps:")
		for _, step := range exp.PreprocessingSteps {
			lines = append(lines, "  - "+step)
		}
	}

	// Model(s), 1-indexed in input order
	for i, model := range exp.Models {
		lines = append(lines, fmt.Sprintf("\n🚀 Model %d: %s", i+1, model.DisplayName()))
		lines = append(lines, strings.Repeat("-", 40))

		if len(model.Metrics) > 0 {
			lines = append(lines, "📈 Metrics:")
			lines = append(lines, formatMetrics(model.Metrics))
		} else {
			lines = append(lines, "📈 Metrics: Not provided")
		}

		if len(model.Hyperparams) > 0 {
			lines = append(lines, "\n⚙️ Hyperparameters:")
			lines = append(lines, formatHyperparams(model.Hyperparams))
		}
	}

	// Issues / Observations
	if len(exp.Issues) > 0 {
		lines = append(lines, "\n⚠️ Known Issues / Observations:")
		for _, issue := range exp.Issues {
			lines = append(lines, "  - "+issue)
		}
	}

	// Conclusion / Recommendations
	if exp.Conclusion != "" {
		lines = append(lines, "\n🧠 Conclusion / Notes:")
		lines = append(lines, exp.Conclusion)
	}

	return strings.Join(lines, "\n")
}

// formatMetrics renders metric values to 4 decimal places, one per line.
func formatMetrics(metrics map[string]float64) string {
	out := make([]string, 0, len(metrics))
	for _, name := range sortedKeys(metrics) {
		out = append(out, fmt.Sprintf("  - %s: %.4f", name, metrics[name]))
	}
	return strings.Join(out, "\n")
}

// formatHyperparams renders hyperparameter values via their default string
// conversion, one per line.
func formatHyperparams(hyperparams map[string]any) string {
	out := make([]string, 0, len(hyperparams))
	for _, name := range sortedKeys(hyperparams) {
		out = append(out, fmt.Sprintf("  - %s: %v", name, hyperparams[name]))
	}
	return strings.Join(out, "\n")
}
