package dataset

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/mat"

	"github.com/octogo-ml/octogo/pkg/errors"
)

// FromDataFrame converts a gota DataFrame into a Table. Int and float series
// become numeric columns; every other series type is carried as strings,
// using gota's record rendering.
func FromDataFrame(df dataframe.DataFrame) (*Table, error) {
	if df.Err != nil {
		return nil, errors.Wrap(df.Err, "dataset: invalid dataframe")
	}

	columns := make([]Column, 0, df.Ncol())
	for _, name := range df.Names() {
		s := df.Col(name)
		if s.Err != nil {
			return nil, errors.Wrapf(s.Err, "dataset: reading column '%s'", name)
		}
		switch s.Type() {
		case series.Int, series.Float:
			columns = append(columns, FloatColumn(name, s.Float()))
		default:
			columns = append(columns, StringColumn(name, s.Records()))
		}
	}

	return NewTable(columns...)
}

// FromMatrix converts a gonum matrix into a Table of numeric columns.
// names must hold one name per matrix column.
func FromMatrix(x mat.Matrix, names []string) (*Table, error) {
	_, cols := x.Dims()
	if len(names) != cols {
		return nil, errors.NewValidationError("names", "must match matrix column count", len(names))
	}

	columns := make([]Column, cols)
	for j := 0; j < cols; j++ {
		columns[j] = FloatColumn(names[j], mat.Col(nil, j, x))
	}

	return NewTable(columns...)
}
