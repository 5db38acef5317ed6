// Package selector implements heuristic model family recommendation for
// labeled tabular datasets.
//
// A ModelSelector inspects a dataset and a designated target column once at
// construction, snapshots descriptive statistics, infers the problem type
// when the caller does not supply one, and recommends candidate model
// families from fixed threshold rules over dataset size, dimensionality,
// and class imbalance. It never trains anything.
package selector

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/octogo-ml/octogo/dataset"
	"github.com/octogo-ml/octogo/pkg/errors"
	"github.com/octogo-ml/octogo/pkg/log"
)

// ProblemType identifies the kind of predictive task.
type ProblemType string

const (
	// ProblemTypeClassification is a task with a discrete target.
	ProblemTypeClassification ProblemType = "classification"
	// ProblemTypeRegression is a task with a continuous target.
	ProblemTypeRegression ProblemType = "regression"
)

// Valid reports whether p is one of the known problem types.
func (p ProblemType) Valid() bool {
	return p == ProblemTypeClassification || p == ProblemTypeRegression
}

const (
	// maxClassCardinality is the largest distinct-value count at which a
	// numeric target is still inferred to be categorical.
	maxClassCardinality = 20

	// smallDatasetRows is the row count below which simpler model families
	// are preferred over ensembles.
	smallDatasetRows = 1000

	// highDimFeatures is the feature count above which kernel methods are
	// suggested.
	highDimFeatures = 50

	// imbalanceThreshold is the majority/minority ratio above which
	// imbalance-aware classifiers are suggested.
	imbalanceThreshold = 3.0
)

// Stats is a frozen snapshot of the dataset statistics a ModelSelector
// computes at construction. It never changes for the selector's lifetime.
type Stats struct {
	// NumSamples is the dataset row count.
	NumSamples int
	// NumFeatures is the column count excluding the target.
	NumFeatures int
	// TargetUnique is the number of distinct target values.
	TargetUnique int
	// ImbalanceRatio is the majority/minority class count ratio. It is 1.0
	// for regression and for targets with no values.
	ImbalanceRatio float64
}

// ModelSelector recommends model families for one dataset/target pair.
// Create one per analysis with New and discard it after reading the
// recommendations; it holds no mutable state.
type ModelSelector struct {
	problemType ProblemType
	target      string
	stats       Stats
}

// New constructs a ModelSelector for the given dataset and target column.
// The target column must exist; otherwise a ColumnNotFoundError is returned.
// Without WithProblemType the problem type is inferred from the target: a
// numeric target with at most 20 distinct values means classification, more
// means regression, and a non-numeric target always means classification.
//
// A ClassImbalanceWarning is emitted through pkg/errors when the computed
// imbalance ratio exceeds the suggestion threshold.
func New(ds dataset.Dataset, target string, opts ...Option) (*ModelSelector, error) {
	if !ds.HasColumn(target) {
		return nil, errors.NewColumnNotFoundError(target)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	numeric, err := ds.IsNumeric(target)
	if err != nil {
		return nil, err
	}
	unique, err := ds.NUnique(target)
	if err != nil {
		return nil, err
	}

	problemType := o.problemType
	if !o.hasProblemType {
		problemType = inferProblemType(numeric, unique)
	}

	s := &ModelSelector{
		problemType: problemType,
		target:      target,
		stats: Stats{
			NumSamples:     ds.NumRows(),
			NumFeatures:    ds.NumCols() - 1,
			TargetUnique:   unique,
			ImbalanceRatio: 1.0,
		},
	}

	if problemType == ProblemTypeClassification {
		counts, err := ds.ValueCounts(target)
		if err != nil {
			return nil, err
		}
		s.stats.ImbalanceRatio = imbalanceRatio(counts)
		if s.stats.ImbalanceRatio > imbalanceThreshold {
			errors.Warn(errors.NewClassImbalanceWarning(target, s.stats.ImbalanceRatio, imbalanceThreshold))
		}
	}

	log.GetLogger().Debug("model selector constructed",
		log.TargetKey, target,
		log.ProblemTypeKey, string(problemType),
		log.SamplesKey, s.stats.NumSamples,
		log.FeaturesKey, s.stats.NumFeatures,
		log.ImbalanceRatioKey, s.stats.ImbalanceRatio,
	)

	return s, nil
}

// inferProblemType applies the fixed inference heuristic: a numeric target
// with low cardinality is categorical, anything non-numeric always is.
func inferProblemType(numeric bool, unique int) ProblemType {
	if numeric && unique > maxClassCardinality {
		return ProblemTypeRegression
	}
	return ProblemTypeClassification
}

// imbalanceRatio is max count / min count across the target classes.
// An empty target yields 1.0, which also guards the division.
func imbalanceRatio(counts map[string]int) float64 {
	if len(counts) == 0 {
		return 1.0
	}
	maxCount, minCount := 0, 0
	first := true
	for _, c := range counts {
		if first {
			maxCount, minCount = c, c
			first = false
			continue
		}
		if c > maxCount {
			maxCount = c
		}
		if c < minCount {
			minCount = c
		}
	}
	return float64(maxCount) / float64(minCount)
}

// ProblemType returns the resolved problem type.
func (s *ModelSelector) ProblemType() ProblemType { return s.problemType }

// Target returns the target column name.
func (s *ModelSelector) Target() string { return s.target }

// Stats returns the statistics snapshot computed at construction.
func (s *ModelSelector) Stats() Stats { return s.stats }

// SuggestModels returns recommended model family names, duplicates removed
// while preserving first-occurrence order. The result is deterministic for a
// given selector. A problem type outside the known enum yields an empty
// list rather than an error.
func (s *ModelSelector) SuggestModels() []string {
	switch s.problemType {
	case ProblemTypeClassification:
		return dedupe(s.classificationModels())
	case ProblemTypeRegression:
		return dedupe(s.regressionModels())
	default:
		return []string{}
	}
}

func (s *ModelSelector) classificationModels() []string {
	var models []string

	// Small datasets (< 1000 samples)
	if s.stats.NumSamples < smallDatasetRows {
		models = append(models, "Logistic Regression", "K-Nearest Neighbors")
	} else {
		models = append(models, "Random Forest Classifier", "XGBoost Classifier", "Gradient Boosting Classifier")
	}

	// High-dimensional data (> 50 features)
	if s.stats.NumFeatures > highDimFeatures {
		models = append(models, "Support Vector Machine (with kernel)")
	}

	// Imbalanced data
	if s.stats.ImbalanceRatio > imbalanceThreshold {
		models = append(models, "Balanced Random Forest", "SMOTE + Any Classifier")
	}

	// Simple baseline
	models = append(models, "Dummy Classifier (baseline)")

	return models
}

func (s *ModelSelector) regressionModels() []string {
	var models []string

	// Small datasets
	if s.stats.NumSamples < smallDatasetRows {
		models = append(models, "Linear Regression", "K-Nearest Neighbors Regressor")
	} else {
		models = append(models, "Random Forest Regressor", "XGBoost Regressor", "Gradient Boosting Regressor")
	}

	// High-dimensional data
	if s.stats.NumFeatures > highDimFeatures {
		models = append(models, "Support Vector Regressor (with kernel)")
	}

	// Simple baseline
	models = append(models, "Dummy Regressor (baseline)")

	return models
}

// dedupe removes duplicates while preserving first-occurrence order.
func dedupe(models []string) []string {
	seen := make(map[string]struct{}, len(models))
	out := make([]string, 0, len(models))
	for _, m := range models {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}

// Summary renders a human-readable diagnostic of the dataset statistics and
// the recommended models.
func (s *ModelSelector) Summary() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Problem type: %s\n", s.problemType)
	fmt.Fprintf(&b, "Samples: %d\n", s.stats.NumSamples)
	fmt.Fprintf(&b, "Features (excluding target): %d\n", s.stats.NumFeatures)
	if s.problemType == ProblemTypeClassification {
		fmt.Fprintf(&b, "Target classes: %d\n", s.stats.TargetUnique)
		fmt.Fprintf(&b, "Class imbalance ratio: %.2f\n", s.stats.ImbalanceRatio)
	}
	b.WriteString("\nRecommended models:\n")
	for _, m := range s.SuggestModels() {
		fmt.Fprintf(&b, "- %s\n", m)
	}

	return b.String()
}

// WriteSummary writes the diagnostic summary to w.
func (s *ModelSelector) WriteSummary(w io.Writer) error {
	_, err := io.WriteString(w, s.Summary())
	return errors.Wrap(err, "selector: writing summary")
}

// PrintSummary writes the diagnostic summary to standard output.
func (s *ModelSelector) PrintSummary() {
	//nolint:errcheck // stdout write, purely observational
	_ = s.WriteSummary(os.Stdout)
}
