// Package frame implements the DataFrame runtime and the IE-Join driver
// that sits on top of it.
package frame

import (
	"fmt"
	"strings"
	"sync"

	"github.com/arrowjoin/arrowjoin/series"
)

// DataFrame is a table of named, equal-length columns.
type DataFrame struct {
	columns []series.Series
	height  int
	mu      sync.RWMutex
}

// NewDataFrame builds a DataFrame from a set of columns, all of which must
// share the same length.
func NewDataFrame(columns ...series.Series) (*DataFrame, error) {
	if len(columns) == 0 {
		return &DataFrame{columns: []series.Series{}}, nil
	}

	height := columns[0].Len()
	for _, col := range columns {
		if col.Len() != height {
			return nil, fmt.Errorf("arrowjoin: all columns must have the same length, got %d and %d", height, col.Len())
		}
	}

	return &DataFrame{columns: columns, height: height}, nil
}

// Columns returns the column names in order.
func (df *DataFrame) Columns() []string {
	df.mu.RLock()
	defer df.mu.RUnlock()

	names := make([]string, len(df.columns))
	for i, c := range df.columns {
		names[i] = c.Name()
	}
	return names
}

// Height returns the number of rows.
func (df *DataFrame) Height() int {
	df.mu.RLock()
	defer df.mu.RUnlock()
	return df.height
}

// Width returns the number of columns.
func (df *DataFrame) Width() int {
	df.mu.RLock()
	defer df.mu.RUnlock()
	return len(df.columns)
}

// Shape returns (height, width).
func (df *DataFrame) Shape() (int, int) {
	df.mu.RLock()
	defer df.mu.RUnlock()
	return df.height, len(df.columns)
}

// IsEmpty reports whether the DataFrame has zero rows.
func (df *DataFrame) IsEmpty() bool { return df.Height() == 0 }

// Column returns the named column.
func (df *DataFrame) Column(name string) (series.Series, error) {
	df.mu.RLock()
	defer df.mu.RUnlock()

	for _, c := range df.columns {
		if c.Name() == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("arrowjoin: column %q not found", name)
}

// HasColumn reports whether a column with the given name exists.
func (df *DataFrame) HasColumn(name string) bool {
	df.mu.RLock()
	defer df.mu.RUnlock()

	for _, c := range df.columns {
		if c.Name() == name {
			return true
		}
	}
	return false
}

// ColumnAt returns the column at a positional index.
func (df *DataFrame) ColumnAt(idx int) (series.Series, error) {
	df.mu.RLock()
	defer df.mu.RUnlock()

	if idx < 0 || idx >= len(df.columns) {
		return nil, fmt.Errorf("arrowjoin: column index %d out of range [0, %d)", idx, len(df.columns))
	}
	return df.columns[idx], nil
}

// Select projects a subset of columns, in the requested order.
func (df *DataFrame) Select(names ...string) (*DataFrame, error) {
	cols := make([]series.Series, len(names))
	for i, name := range names {
		c, err := df.Column(name)
		if err != nil {
			return nil, err
		}
		cols[i] = c
	}
	return NewDataFrame(cols...)
}

// Drop returns a DataFrame without the named columns.
func (df *DataFrame) Drop(names ...string) (*DataFrame, error) {
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[n] = true
	}

	df.mu.RLock()
	defer df.mu.RUnlock()

	var kept []series.Series
	for _, c := range df.columns {
		if !drop[c.Name()] {
			kept = append(kept, c)
		}
	}
	return NewDataFrame(kept...)
}

// Take gathers rows at the given indices into a new DataFrame. An index of
// -1 produces a row of nulls in every column; IEJoin, an inner join, never
// passes -1.
func (df *DataFrame) Take(indices []int) (*DataFrame, error) {
	df.mu.RLock()
	cols := make([]series.Series, len(df.columns))
	copy(cols, df.columns)
	df.mu.RUnlock()

	out := make([]series.Series, len(cols))
	for i, c := range cols {
		taken, ok := series.TakeFast(c, indices)
		if !ok {
			return nil, fmt.Errorf("arrowjoin: take not supported for column %q of type %s", c.Name(), c.DataType())
		}
		out[i] = taken
	}
	return NewDataFrame(out...)
}

// Slice returns rows [start, end) as a new DataFrame.
func (df *DataFrame) Slice(start, end int) (*DataFrame, error) {
	df.mu.RLock()
	defer df.mu.RUnlock()

	if start < 0 || end > df.height || start > end {
		return nil, fmt.Errorf("arrowjoin: invalid slice bounds [%d:%d] for DataFrame of height %d", start, end, df.height)
	}

	out := make([]series.Series, len(df.columns))
	for i, c := range df.columns {
		sliced, err := c.Slice(start, end)
		if err != nil {
			return nil, err
		}
		out[i] = sliced
	}
	return NewDataFrame(out...)
}

// Clone returns a shallow copy sharing the underlying columns.
func (df *DataFrame) Clone() *DataFrame {
	df.mu.RLock()
	defer df.mu.RUnlock()

	cols := make([]series.Series, len(df.columns))
	copy(cols, df.columns)
	return &DataFrame{columns: cols, height: df.height}
}

// AddColumn appends a column, which must match the current height.
func (df *DataFrame) AddColumn(col series.Series) (*DataFrame, error) {
	df.mu.RLock()
	defer df.mu.RUnlock()

	if len(df.columns) > 0 && col.Len() != df.height {
		return nil, fmt.Errorf("arrowjoin: column length %d does not match DataFrame height %d", col.Len(), df.height)
	}

	cols := make([]series.Series, len(df.columns), len(df.columns)+1)
	copy(cols, df.columns)
	cols = append(cols, col)
	return NewDataFrame(cols...)
}

// RenameColumn returns a DataFrame with oldName renamed to newName.
func (df *DataFrame) RenameColumn(oldName, newName string) (*DataFrame, error) {
	df.mu.RLock()
	defer df.mu.RUnlock()

	cols := make([]series.Series, len(df.columns))
	found := false
	for i, c := range df.columns {
		if c.Name() == oldName {
			cols[i] = c.Rename(newName)
			found = true
		} else {
			cols[i] = c
		}
	}
	if !found {
		return nil, fmt.Errorf("arrowjoin: column %q not found", oldName)
	}
	return NewDataFrame(cols...)
}

// String renders a compact rows x cols table preview without column-width
// alignment.
func (df *DataFrame) String() string {
	df.mu.RLock()
	defer df.mu.RUnlock()

	var sb strings.Builder
	fmt.Fprintf(&sb, "DataFrame: %d x %d\n", df.height, len(df.columns))

	names := make([]string, len(df.columns))
	for i, c := range df.columns {
		names[i] = c.Name()
	}
	sb.WriteString(strings.Join(names, "\t"))
	sb.WriteString("\n")

	displayRows := df.height
	if displayRows > 10 {
		displayRows = 10
	}
	for r := 0; r < displayRows; r++ {
		vals := make([]string, len(df.columns))
		for i, c := range df.columns {
			vals[i] = fmt.Sprintf("%v", c.Get(r))
		}
		sb.WriteString(strings.Join(vals, "\t"))
		sb.WriteString("\n")
	}
	if df.height > displayRows {
		fmt.Fprintf(&sb, "[%d more rows]\n", df.height-displayRows)
	}
	return sb.String()
}
