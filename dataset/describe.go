package dataset

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/octogo-ml/octogo/pkg/errors"
)

// Summary holds descriptive statistics for a numeric column.
// NaN values are treated as missing and excluded from every statistic.
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Describe computes descriptive statistics for a numeric column.
// Returns a ValueError for non-numeric columns and an error wrapping
// ErrEmptyData when the column has no non-missing values.
func (t *Table) Describe(name string) (Summary, error) {
	values, err := t.Floats(name)
	if err != nil {
		return Summary{}, err
	}

	observed := values[:0]
	for _, v := range values {
		if !math.IsNaN(v) {
			observed = append(observed, v)
		}
	}
	if len(observed) == 0 {
		return Summary{}, errors.Wrapf(errors.ErrEmptyData, "Describe: column '%s'", name)
	}

	s := Summary{
		Count: len(observed),
		Mean:  stat.Mean(observed, nil),
		Min:   floats.Min(observed),
		Max:   floats.Max(observed),
	}
	if len(observed) > 1 {
		s.StdDev = stat.StdDev(observed, nil)
	}
	return s, nil
}
