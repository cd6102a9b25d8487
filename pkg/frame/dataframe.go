package frame

import (
	"fmt"

	"github.com/timberline-data/timber/pkg/dtype"
)

// DataFrame is an ordered collection of columns backed by one storage
// family. It carries an optional underlying index: a row-label vector kept
// alongside the columns, as eager in-memory tables do.
type DataFrame struct {
	family  dtype.Family
	columns []*Column
	byName  map[string]int
	index   []any
}

// NewDataFrame creates a DataFrame from columns. Column names must be
// unique and lengths must agree.
func NewDataFrame(family dtype.Family, columns ...*Column) (*DataFrame, error) {
	df := &DataFrame{
		family: family,
		byName: make(map[string]int, len(columns)),
	}
	for _, col := range columns {
		if err := df.addColumn(col); err != nil {
			return nil, err
		}
	}
	return df, nil
}

func (df *DataFrame) addColumn(col *Column) error {
	if _, ok := df.byName[col.Name()]; ok {
		return fmt.Errorf("duplicate column name: %s", col.Name())
	}
	if len(df.columns) > 0 && col.Len() != df.columns[0].Len() {
		return fmt.Errorf("column %s has %d values, expected %d", col.Name(), col.Len(), df.columns[0].Len())
	}
	df.byName[col.Name()] = len(df.columns)
	df.columns = append(df.columns, col)
	return nil
}

// Family returns the storage family tag.
func (df *DataFrame) Family() dtype.Family { return df.family }

// NumCols returns the number of columns.
func (df *DataFrame) NumCols() int { return len(df.columns) }

// NumRows returns the number of rows.
func (df *DataFrame) NumRows() int {
	if len(df.columns) == 0 {
		return 0
	}
	return df.columns[0].Len()
}

// ColumnNames returns the column names in order.
func (df *DataFrame) ColumnNames() []string {
	names := make([]string, len(df.columns))
	for i, col := range df.columns {
		names[i] = col.Name()
	}
	return names
}

// Column returns the named column.
func (df *DataFrame) Column(name string) (*Column, bool) {
	i, ok := df.byName[name]
	if !ok {
		return nil, false
	}
	return df.columns[i], true
}

// SetColumn replaces an existing column with a same-named column,
// typically its coerced version. This is the only write operation the
// typing core performs on a table.
func (df *DataFrame) SetColumn(col *Column) error {
	i, ok := df.byName[col.Name()]
	if !ok {
		return fmt.Errorf("column %s not found", col.Name())
	}
	if col.Len() != df.columns[i].Len() {
		return fmt.Errorf("column %s has %d values, expected %d", col.Name(), col.Len(), df.columns[i].Len())
	}
	df.columns[i] = col
	return nil
}

// SetIndex sets the underlying index values. Length must match the rows.
func (df *DataFrame) SetIndex(values []any) error {
	if len(df.columns) > 0 && len(values) != df.NumRows() {
		return fmt.Errorf("index has %d values, expected %d", len(values), df.NumRows())
	}
	df.index = append([]any{}, values...)
	return nil
}

// UnderlyingIndex returns a copy of the underlying index values, or nil if
// no index has been set.
func (df *DataFrame) UnderlyingIndex() []any {
	if df.index == nil {
		return nil
	}
	return append([]any{}, df.index...)
}

// Copy returns a shallow structural copy: columns are shared (they are
// immutable), the column list and index are copied.
func (df *DataFrame) Copy() *DataFrame {
	out := &DataFrame{
		family:  df.family,
		columns: append([]*Column{}, df.columns...),
		byName:  make(map[string]int, len(df.byName)),
	}
	for name, i := range df.byName {
		out.byName[name] = i
	}
	if df.index != nil {
		out.index = append([]any{}, df.index...)
	}
	return out
}

// DropColumn returns a copy of the DataFrame without the named column.
func (df *DataFrame) DropColumn(name string) (*DataFrame, error) {
	if _, ok := df.byName[name]; !ok {
		return nil, fmt.Errorf("column %s not found", name)
	}
	out := &DataFrame{family: df.family, byName: make(map[string]int)}
	for _, col := range df.columns {
		if col.Name() != name {
			out.byName[col.Name()] = len(out.columns)
			out.columns = append(out.columns, col)
		}
	}
	if df.index != nil {
		out.index = append([]any{}, df.index...)
	}
	return out, nil
}

// RenameColumn returns a copy of the DataFrame with one column renamed.
func (df *DataFrame) RenameColumn(from, to string) (*DataFrame, error) {
	col, ok := df.Column(from)
	if !ok {
		return nil, fmt.Errorf("column %s not found", from)
	}
	if _, exists := df.byName[to]; exists && from != to {
		return nil, fmt.Errorf("duplicate column name: %s", to)
	}
	out := &DataFrame{family: df.family, byName: make(map[string]int)}
	for _, c := range df.columns {
		if c == col {
			c = c.Rename(to)
		}
		out.byName[c.Name()] = len(out.columns)
		out.columns = append(out.columns, c)
	}
	if df.index != nil {
		out.index = append([]any{}, df.index...)
	}
	return out, nil
}
