package selector

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/octogo-ml/octogo/dataset"
	"github.com/octogo-ml/octogo/pkg/errors"
)

// makeDataset builds a table with the given number of constant feature
// columns plus the target column.
func makeDataset(t *testing.T, features int, target dataset.Column) *dataset.Table {
	t.Helper()

	columns := make([]dataset.Column, 0, features+1)
	for i := 0; i < features; i++ {
		values := make([]float64, target.Len())
		columns = append(columns, dataset.FloatColumn(fmt.Sprintf("f%02d", i), values))
	}
	columns = append(columns, target)

	tbl, err := dataset.NewTable(columns...)
	if err != nil {
		t.Fatalf("NewTable() failed: %v", err)
	}
	return tbl
}

// classTarget builds a numeric target where class i appears counts[i] times.
func classTarget(counts ...int) []float64 {
	var values []float64
	for class, n := range counts {
		for i := 0; i < n; i++ {
			values = append(values, float64(class))
		}
	}
	return values
}

func TestProblemTypeInference(t *testing.T) {
	manyDistinct := make([]float64, 100)
	for i := range manyDistinct {
		manyDistinct[i] = float64(i)
	}

	tests := []struct {
		name   string
		target dataset.Column
		want   ProblemType
	}{
		{
			name:   "numeric target with few distinct values",
			target: dataset.FloatColumn("y", classTarget(10, 10)),
			want:   ProblemTypeClassification,
		},
		{
			name:   "numeric target with exactly 20 distinct values",
			target: dataset.FloatColumn("y", classTarget(1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1)),
			want:   ProblemTypeClassification,
		},
		{
			name:   "numeric target with many distinct values",
			target: dataset.FloatColumn("y", manyDistinct),
			want:   ProblemTypeRegression,
		},
		{
			name:   "non-numeric target",
			target: dataset.StringColumn("y", []string{"a", "b", "c", "d"}),
			want:   ProblemTypeClassification,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := New(makeDataset(t, 3, tt.target), "y")
			if err != nil {
				t.Fatalf("New() failed: %v", err)
			}
			if sel.ProblemType() != tt.want {
				t.Errorf("ProblemType() = %q, want %q", sel.ProblemType(), tt.want)
			}
		})
	}
}

func TestImbalanceRatio(t *testing.T) {
	continuous := make([]float64, 50)
	for i := range continuous {
		continuous[i] = float64(i) * 1.5
	}

	tests := []struct {
		name   string
		target dataset.Column
		opts   []Option
		want   float64
	}{
		{
			name:   "balanced classes",
			target: dataset.FloatColumn("y", classTarget(50, 50)),
			want:   1.0,
		},
		{
			name:   "imbalanced classes",
			target: dataset.FloatColumn("y", classTarget(400, 100)),
			want:   4.0,
		},
		{
			name:   "regression is always 1.0",
			target: dataset.FloatColumn("y", continuous),
			want:   1.0,
		},
		{
			name:   "empty target guards the division",
			target: dataset.FloatColumn("y", nil),
			opts:   []Option{WithProblemType(ProblemTypeClassification)},
			want:   1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := New(makeDataset(t, 2, tt.target), "y", tt.opts...)
			if err != nil {
				t.Fatalf("New() failed: %v", err)
			}
			if got := sel.Stats().ImbalanceRatio; got != tt.want {
				t.Errorf("ImbalanceRatio = %v, want %v", got, tt.want)
			}
			if got := sel.Stats().ImbalanceRatio; got < 1.0 {
				t.Errorf("ImbalanceRatio = %v, want >= 1.0", got)
			}
		})
	}
}

func TestSuggestModels(t *testing.T) {
	regressionTarget := make([]float64, 5000)
	for i := range regressionTarget {
		regressionTarget[i] = float64(i % 3000)
	}

	tests := []struct {
		name     string
		features int
		target   dataset.Column
		opts     []Option
		want     []string
	}{
		{
			name:     "small imbalanced classification",
			features: 10,
			target:   dataset.FloatColumn("y", classTarget(400, 100)),
			want: []string{
				"Logistic Regression",
				"K-Nearest Neighbors",
				"Balanced Random Forest",
				"SMOTE + Any Classifier",
				"Dummy Classifier (baseline)",
			},
		},
		{
			name:     "large high-dimensional regression",
			features: 60,
			target:   dataset.FloatColumn("y", regressionTarget),
			want: []string{
				"Random Forest Regressor",
				"XGBoost Regressor",
				"Gradient Boosting Regressor",
				"Support Vector Regressor (with kernel)",
				"Dummy Regressor (baseline)",
			},
		},
		{
			name:     "large balanced classification",
			features: 5,
			target:   dataset.FloatColumn("y", classTarget(1000, 1000)),
			want: []string{
				"Random Forest Classifier",
				"XGBoost Classifier",
				"Gradient Boosting Classifier",
				"Dummy Classifier (baseline)",
			},
		},
		{
			name:     "small balanced regression override",
			features: 4,
			target:   dataset.FloatColumn("y", classTarget(50, 50)),
			opts:     []Option{WithProblemType(ProblemTypeRegression)},
			want: []string{
				"Linear Regression",
				"K-Nearest Neighbors Regressor",
				"Dummy Regressor (baseline)",
			},
		},
		{
			name:     "unknown problem type degrades to empty list",
			features: 3,
			target:   dataset.FloatColumn("y", classTarget(10, 10)),
			opts:     []Option{WithProblemType(ProblemType("clustering"))},
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := New(makeDataset(t, tt.features, tt.target), "y", tt.opts...)
			if err != nil {
				t.Fatalf("New() failed: %v", err)
			}

			got := sel.SuggestModels()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SuggestModels() = %v, want %v", got, tt.want)
			}

			// Deterministic: a second call yields the identical list.
			if again := sel.SuggestModels(); !reflect.DeepEqual(again, got) {
				t.Errorf("SuggestModels() not deterministic: %v then %v", got, again)
			}

			// No duplicates.
			seen := make(map[string]bool)
			for _, m := range got {
				if seen[m] {
					t.Errorf("SuggestModels() returned duplicate %q", m)
				}
				seen[m] = true
			}
		})
	}
}

func TestNewMissingTarget(t *testing.T) {
	tbl := makeDataset(t, 2, dataset.FloatColumn("y", classTarget(5, 5)))

	_, err := New(tbl, "label")
	if err == nil {
		t.Fatal("New() error = nil, want lookup error for missing target")
	}
	var colErr *errors.ColumnNotFoundError
	if !errors.As(err, &colErr) {
		t.Fatalf("error type = %T, want *ColumnNotFoundError", err)
	}
	if colErr.Column != "label" {
		t.Errorf("Column = %q, want %q", colErr.Column, "label")
	}
}

func TestStatsSnapshot(t *testing.T) {
	sel, err := New(makeDataset(t, 10, dataset.FloatColumn("y", classTarget(400, 100))), "y")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	want := Stats{
		NumSamples:     500,
		NumFeatures:    10,
		TargetUnique:   2,
		ImbalanceRatio: 4.0,
	}
	if got := sel.Stats(); got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}

	// Stats is returned by value; mutating the copy must not leak back.
	got := sel.Stats()
	got.NumSamples = 0
	if sel.Stats().NumSamples != 500 {
		t.Error("Stats() snapshot was mutated through a returned copy")
	}
}

func TestImbalanceWarning(t *testing.T) {
	var captured error
	errors.SetWarningHandler(func(w error) { captured = w })
	defer errors.SetWarningHandler(func(error) {})

	_, err := New(makeDataset(t, 2, dataset.FloatColumn("y", classTarget(400, 100))), "y")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	var warning *errors.ClassImbalanceWarning
	if !errors.As(captured, &warning) {
		t.Fatalf("expected ClassImbalanceWarning, got %v", captured)
	}
	if warning.Ratio != 4.0 {
		t.Errorf("Ratio = %v, want 4.0", warning.Ratio)
	}

	// Balanced targets stay quiet.
	captured = nil
	if _, err := New(makeDataset(t, 2, dataset.FloatColumn("y", classTarget(50, 50))), "y"); err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if captured != nil {
		t.Errorf("unexpected warning for balanced target: %v", captured)
	}
}

func TestWriteSummary(t *testing.T) {
	t.Run("classification", func(t *testing.T) {
		sel, err := New(makeDataset(t, 10, dataset.FloatColumn("y", classTarget(400, 100))), "y")
		if err != nil {
			t.Fatalf("New() failed: %v", err)
		}

		var b strings.Builder
		if err := sel.WriteSummary(&b); err != nil {
			t.Fatalf("WriteSummary() failed: %v", err)
		}

		out := b.String()
		for _, want := range []string{
			"Problem type: classification\n",
			"Samples: 500\n",
			"Features (excluding target): 10\n",
			"Target classes: 2\n",
			"Class imbalance ratio: 4.00\n",
			"Recommended models:\n",
			"- Logistic Regression\n",
			"- Dummy Classifier (baseline)\n",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("summary missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("regression omits class lines", func(t *testing.T) {
		target := make([]float64, 100)
		for i := range target {
			target[i] = float64(i)
		}
		sel, err := New(makeDataset(t, 3, dataset.FloatColumn("y", target)), "y")
		if err != nil {
			t.Fatalf("New() failed: %v", err)
		}

		var b strings.Builder
		if err := sel.WriteSummary(&b); err != nil {
			t.Fatalf("WriteSummary() failed: %v", err)
		}

		out := b.String()
		if strings.Contains(out, "Target classes") || strings.Contains(out, "imbalance") {
			t.Errorf("regression summary contains classification-only lines:\n%s", out)
		}
		if !strings.Contains(out, "Problem type: regression\n") {
			t.Errorf("summary missing problem type line:\n%s", out)
		}
	})
}

func TestProblemTypeValid(t *testing.T) {
	if !ProblemTypeClassification.Valid() || !ProblemTypeRegression.Valid() {
		t.Error("known problem types must be valid")
	}
	if ProblemType("clustering").Valid() {
		t.Error(`Valid("clustering") = true, want false`)
	}
}
