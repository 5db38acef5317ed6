// Package octogo provides lightweight advisory tooling for exploratory
// machine-learning workflows in Go.
//
// octogo does not train models. Given a labeled tabular dataset it infers
// whether the predictive task is classification or regression, recommends
// candidate model families from simple heuristics over dataset size,
// dimensionality, and class imbalance, and renders experiment results into
// a human-readable report artifact.
//
// # Installation
//
// Install octogo using go get:
//
//	go get github.com/octogo-ml/octogo
//
// # Quick Start
//
// Analyze a dataset and write a report:
//
//	package main
//
//	import (
//	    "log"
//
//	    "github.com/octogo-ml/octogo/dataset"
//	    "github.com/octogo-ml/octogo/report"
//	    "github.com/octogo-ml/octogo/selector"
//	)
//
//	func main() {
//	    tbl, err := dataset.NewTable(
//	        dataset.FloatColumn("age", []float64{23, 31, 47, 52}),
//	        dataset.StringColumn("churned", []string{"no", "no", "yes", "no"}),
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    sel, err := selector.New(tbl, "churned")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    sel.PrintSummary()
//
//	    gen := report.NewGenerator(report.WithPath("churn_report.txt"))
//	    err = gen.Generate(&report.Experiment{
//	        Models: []report.ModelResult{
//	            {Name: "Logistic Regression", Metrics: map[string]float64{"accuracy": 0.91}},
//	        },
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - dataset: Tabular dataset abstraction with gota and gonum adapters
//   - selector: Problem-type inference and model family recommendation
//   - report: Experiment report generation (text and Markdown)
//   - pkg/errors: Structured error and warning types
//   - pkg/log: Structured logging interface
//
// # Design
//
// Both components are stateless per call. A ModelSelector snapshots its
// dataset statistics at construction and never mutates them; each report
// generation builds the full artifact in memory and writes it in a single
// whole-file operation.
//
// # License
//
// octogo is released under the MIT License.
package octogo
