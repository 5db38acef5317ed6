package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/octogo-ml/octogo/pkg/errors"
)

func TestLoadExperiment(t *testing.T) {
	content := `dataset_description: Iris dataset
preprocessing_steps:
  - Dropped NA rows
  - Standardized features
models:
  - name: M1
    metrics:
      acc: 0.9567
      f1: 0.9401
    hyperparams:
      penalty: l2
      max_iter: 100
issues:
  - Slight overfitting
conclusion: Ship it
`
	path := filepath.Join(t.TempDir(), "experiment.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	exp, err := LoadExperiment(path)
	if err != nil {
		t.Fatalf("LoadExperiment() failed: %v", err)
	}

	if exp.DatasetDescription != "Iris dataset" {
		t.Errorf("DatasetDescription = %q, want %q", exp.DatasetDescription, "Iris dataset")
	}
	if len(exp.PreprocessingSteps) != 2 {
		t.Errorf("PreprocessingSteps length = %d, want 2", len(exp.PreprocessingSteps))
	}
	if len(exp.Models) != 1 {
		t.Fatalf("Models length = %d, want 1", len(exp.Models))
	}

	m := exp.Models[0]
	if m.Name != "M1" {
		t.Errorf("Name = %q, want %q", m.Name, "M1")
	}
	if m.Metrics["acc"] != 0.9567 {
		t.Errorf("Metrics[acc] = %v, want 0.9567", m.Metrics["acc"])
	}
	if m.Hyperparams["penalty"] != "l2" {
		t.Errorf("Hyperparams[penalty] = %v, want l2", m.Hyperparams["penalty"])
	}
	if exp.Conclusion != "Ship it" {
		t.Errorf("Conclusion = %q, want %q", exp.Conclusion, "Ship it")
	}
}

func TestLoadExperimentNotFound(t *testing.T) {
	_, err := LoadExperiment(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, ErrExperimentNotFound) {
		t.Errorf("error = %v, want ErrExperimentNotFound", err)
	}
}

func TestLoadExperimentInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("models: [unclosed"), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if _, err := LoadExperiment(path); err == nil {
		t.Error("LoadExperiment() error = nil, want parse error")
	}
}
