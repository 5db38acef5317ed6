// Package dataset provides the tabular dataset abstraction used by the
// selector package. A Dataset exposes exactly the capabilities model
// selection needs: row/column counts, column lookup by name, numeric-vs-not
// classification, distinct-value counts, and value frequency grouping.
//
// The in-memory Table implementation is column oriented and immutable after
// construction. Adapters are provided for gota DataFrames and gonum matrices.
package dataset

import (
	"math"
	"strconv"

	"github.com/octogo-ml/octogo/pkg/errors"
)

// Dataset is a read-only view over labeled tabular data.
type Dataset interface {
	// NumRows returns the number of rows.
	NumRows() int
	// NumCols returns the number of columns, target included.
	NumCols() int
	// ColumnNames returns the column names in their original order.
	ColumnNames() []string
	// HasColumn reports whether a column with the given name exists.
	HasColumn(name string) bool
	// IsNumeric reports whether the named column holds numeric values.
	IsNumeric(name string) (bool, error)
	// NUnique returns the number of distinct values in the named column.
	// NaN values count as missing and are excluded.
	NUnique(name string) (int, error)
	// ValueCounts returns the occurrence count per distinct value in the
	// named column. Numeric values are keyed by their shortest decimal
	// rendering; NaN values are excluded.
	ValueCounts(name string) (map[string]int, error)
}

// Column is a single named column of a Table. Construct with FloatColumn or
// StringColumn.
type Column struct {
	name    string
	numeric bool
	floats  []float64
	strings []string
}

// FloatColumn creates a numeric column. The values slice is copied.
func FloatColumn(name string, values []float64) Column {
	floats := make([]float64, len(values))
	copy(floats, values)
	return Column{name: name, numeric: true, floats: floats}
}

// StringColumn creates a non-numeric column. The values slice is copied.
func StringColumn(name string, values []string) Column {
	strs := make([]string, len(values))
	copy(strs, values)
	return Column{name: name, numeric: false, strings: strs}
}

// Name returns the column name.
func (c Column) Name() string { return c.name }

// Len returns the number of values in the column.
func (c Column) Len() int {
	if c.numeric {
		return len(c.floats)
	}
	return len(c.strings)
}

// Table is an in-memory column-oriented Dataset. A Table is never mutated
// after NewTable returns; all accessors are safe for concurrent use.
type Table struct {
	columns []Column
	index   map[string]int
	rows    int
}

// NewTable builds a Table from the given columns. All columns must have the
// same length and distinct names.
func NewTable(columns ...Column) (*Table, error) {
	t := &Table{
		columns: columns,
		index:   make(map[string]int, len(columns)),
	}

	for i, col := range columns {
		if col.name == "" {
			return nil, errors.NewValidationError("columns", "column name must not be empty", i)
		}
		if _, exists := t.index[col.name]; exists {
			return nil, errors.NewValidationError("columns", "duplicate column name", col.name)
		}
		if i == 0 {
			t.rows = col.Len()
		} else if col.Len() != t.rows {
			return nil, errors.NewValidationError("columns", "all columns must have the same length", col.name)
		}
		t.index[col.name] = i
	}

	return t, nil
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int { return t.rows }

// NumCols returns the number of columns.
func (t *Table) NumCols() int { return len(t.columns) }

// ColumnNames returns the column names in construction order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.columns))
	for i, col := range t.columns {
		names[i] = col.name
	}
	return names
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// IsNumeric reports whether the named column holds numeric values.
func (t *Table) IsNumeric(name string) (bool, error) {
	col, err := t.column(name)
	if err != nil {
		return false, err
	}
	return col.numeric, nil
}

// NUnique returns the number of distinct non-missing values in the column.
func (t *Table) NUnique(name string) (int, error) {
	counts, err := t.ValueCounts(name)
	if err != nil {
		return 0, err
	}
	return len(counts), nil
}

// ValueCounts groups the column by distinct value and counts occurrences.
func (t *Table) ValueCounts(name string) (map[string]int, error) {
	col, err := t.column(name)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	if col.numeric {
		for _, v := range col.floats {
			if math.IsNaN(v) {
				continue
			}
			counts[strconv.FormatFloat(v, 'g', -1, 64)]++
		}
		return counts, nil
	}
	for _, v := range col.strings {
		counts[v]++
	}
	return counts, nil
}

// Floats returns a copy of the values of a numeric column.
func (t *Table) Floats(name string) ([]float64, error) {
	col, err := t.column(name)
	if err != nil {
		return nil, err
	}
	if !col.numeric {
		return nil, errors.NewValueError("Floats", "column '"+name+"' is not numeric")
	}
	values := make([]float64, len(col.floats))
	copy(values, col.floats)
	return values, nil
}

func (t *Table) column(name string) (Column, error) {
	i, ok := t.index[name]
	if !ok {
		return Column{}, errors.NewColumnNotFoundError(name)
	}
	return t.columns[i], nil
}
