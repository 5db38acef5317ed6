// Package report assembles human-readable experiment summaries and writes
// them to text artifacts.
//
// An Experiment is an entirely caller-owned description of one modeling
// session: dataset description, preprocessing steps, per-model metrics and
// hyperparameters, known issues, and a conclusion. Writers render an
// Experiment in text or Markdown form; the Generator wraps the text writer
// with single-shot file persistence.
package report

import (
	"sort"
)

// UnnamedModel is the display name used for model blocks without a name.
const UnnamedModel = "Unnamed Model"

// ModelResult is one per-model result block. Metrics hold numeric scores and
// render with fixed four-decimal precision; hyperparameters hold arbitrary
// displayable values and render via their default string conversion.
type ModelResult struct {
	Name        string             `yaml:"name"`
	Metrics     map[string]float64 `yaml:"metrics,omitempty"`
	Hyperparams map[string]any     `yaml:"hyperparams,omitempty"`
}

// DisplayName returns the model name, falling back to UnnamedModel.
func (m ModelResult) DisplayName() string {
	if m.Name == "" {
		return UnnamedModel
	}
	return m.Name
}

// Experiment is the structured input to report generation. Every field
// except Models is optional; empty sections are omitted from the output.
type Experiment struct {
	DatasetDescription string        `yaml:"dataset_description,omitempty"`
	PreprocessingSteps []string      `yaml:"preprocessing_steps,omitempty"`
	Models             []ModelResult `yaml:"models"`
	Issues             []string      `yaml:"issues,omitempty"`
	Conclusion         string        `yaml:"conclusion,omitempty"`
}

// sortedKeys returns the map keys in sorted order. Go maps have no stable
// iteration order, so reports sort keys to stay deterministic.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
