package eda

import (
	"fmt"
	"io"
	"math"
	"reflect"
	"strconv"
	"strings"
	"text/tabwriter"
)

// ColumnKind is the declared storage type of a column. It is fixed when
// the column is built.
type ColumnKind uint8

const (
	Int ColumnKind = iota
	Float
	String
	Bool
)

// Numeric reports whether k supports numeric operations.
func (k ColumnKind) Numeric() bool { return k == Int || k == Float }

// String renders k as a storage type name.
func (k ColumnKind) String() string {
	switch k {
	case Int:
		return "int64"
	case Float:
		return "float64"
	case String:
		return "object"
	case Bool:
		return "bool"
	}
	return "ColumnKind(" + strconv.Itoa(int(k)) + ")"
}

// Column is a named sequence of values of one kind. All values are kept
// as float64: strings as codes into Pool, booleans as 0 and 1. A missing
// value is NaN regardless of kind.
type Column struct {
	Name string
	Kind ColumnKind
	Data []float64
	Pool *StringPool // only for String columns
}

// IntColumn builds an Int column.
func IntColumn(name string, values []int64) *Column {
	c := &Column{Name: name, Kind: Int, Data: make([]float64, len(values))}
	for i, v := range values {
		c.Data[i] = float64(v)
	}
	return c
}

// FloatColumn builds a Float column. NaN values are missing.
func FloatColumn(name string, values []float64) *Column {
	c := &Column{Name: name, Kind: Float, Data: make([]float64, len(values))}
	copy(c.Data, values)
	return c
}

// StringColumn builds a categorical column.
func StringColumn(name string, values []string) *Column {
	c := &Column{Name: name, Kind: String, Data: make([]float64, len(values)), Pool: NewStringPool()}
	for i, v := range values {
		c.Data[i] = float64(c.Pool.Add(v))
	}
	return c
}

// BoolColumn builds a Bool column.
func BoolColumn(name string, values []bool) *Column {
	c := &Column{Name: name, Kind: Bool, Data: make([]float64, len(values))}
	for i, v := range values {
		if v {
			c.Data[i] = 1
		}
	}
	return c
}

// Len is the number of rows in c.
func (c *Column) Len() int { return len(c.Data) }

// Missing reports whether row i holds no value.
func (c *Column) Missing(i int) bool { return math.IsNaN(c.Data[i]) }

// Value renders row i as a string.
func (c *Column) Value(i int) string {
	v := c.Data[i]
	if math.IsNaN(v) {
		return "NaN"
	}
	switch c.Kind {
	case Int:
		return strconv.FormatInt(int64(v), 10)
	case String:
		return c.Pool.Get(int(v))
	case Bool:
		return strconv.FormatBool(v != 0)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Cardinality is the number of distinct non-missing values in c.
func (c *Column) Cardinality() int {
	distinct := NewFloatSet()
	for _, v := range c.Data {
		if !math.IsNaN(v) {
			distinct.Add(v)
		}
	}
	return len(distinct)
}

// Levels returns the distinct non-missing values of c in order of first
// appearance.
func (c *Column) Levels() []string {
	levels, _ := c.Partition()
	return levels
}

// Partition returns the distinct non-missing values of c in order of
// first appearance together with the row indices holding each value.
func (c *Column) Partition() (levels []string, rows [][]int) {
	seen := make(map[float64]int)
	for i, v := range c.Data {
		if math.IsNaN(v) {
			continue
		}
		j, ok := seen[v]
		if !ok {
			j = len(levels)
			seen[v] = j
			levels = append(levels, c.Value(i))
			rows = append(rows, nil)
		}
		rows[j] = append(rows[j], i)
	}
	return levels, rows
}

// Numbers returns the non-missing values of a numeric column.
func (c *Column) Numbers() ([]float64, error) {
	if !c.Kind.Numeric() {
		return nil, fmt.Errorf("%w: %q is %s", ErrNotNumeric, c.Name, c.Kind)
	}
	xs := make([]float64, 0, len(c.Data))
	for _, v := range c.Data {
		if !math.IsNaN(v) {
			xs = append(xs, v)
		}
	}
	return xs, nil
}

func (c *Column) subset(rows []int) *Column {
	s := &Column{Name: c.Name, Kind: c.Kind, Data: make([]float64, len(rows)), Pool: c.Pool}
	for i, r := range rows {
		s.Data[i] = c.Data[r]
	}
	return s
}

// Dataset is an ordered collection of named columns of equal length.
// Rows are aligned by position.
type Dataset struct {
	N int

	columns []*Column
	index   map[string]int
}

// NewDataset assembles columns into a dataset.
func NewDataset(columns ...*Column) (*Dataset, error) {
	if len(columns) == 0 {
		return nil, ErrNoColumns
	}
	ds := &Dataset{
		N:       columns[0].Len(),
		columns: columns,
		index:   make(map[string]int, len(columns)),
	}
	for i, c := range columns {
		if _, dup := ds.index[c.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, c.Name)
		}
		if c.Len() != ds.N {
			return nil, fmt.Errorf("%w: %q has %d rows, want %d", ErrLength, c.Name, c.Len(), ds.N)
		}
		ds.index[c.Name] = i
	}
	return ds, nil
}

// Columns returns the columns of ds in order.
func (ds *Dataset) Columns() []*Column { return ds.columns }

// Names returns the column names of ds in order.
func (ds *Dataset) Names() []string {
	names := make([]string, len(ds.columns))
	for i, c := range ds.columns {
		names[i] = c.Name
	}
	return names
}

// Has reports whether ds contains a column name.
func (ds *Dataset) Has(name string) bool {
	_, ok := ds.index[name]
	return ok
}

// Column looks up a column by name.
func (ds *Dataset) Column(name string) (*Column, error) {
	i, ok := ds.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoColumn, name)
	}
	return ds.columns[i], nil
}

// Numbers returns the non-missing values of the numeric column name.
func (ds *Dataset) Numbers(name string) ([]float64, error) {
	c, err := ds.Column(name)
	if err != nil {
		return nil, err
	}
	return c.Numbers()
}

// Filter extracts all rows of ds where the column field has one of the
// given levels (as rendered by Column.Value).
func (ds *Dataset) Filter(field string, levels ...string) (*Dataset, error) {
	c, err := ds.Column(field)
	if err != nil {
		return nil, err
	}
	want := NewStringSetFrom(levels)
	var rows []int
	for i := range c.Data {
		if !c.Missing(i) && want.Contains(c.Value(i)) {
			rows = append(rows, i)
		}
	}
	return ds.subset(rows), nil
}

func (ds *Dataset) subset(rows []int) *Dataset {
	s := &Dataset{N: len(rows), columns: make([]*Column, len(ds.columns)), index: ds.index}
	for i, c := range ds.columns {
		s.columns[i] = c.subset(rows)
	}
	return s
}

// Print writes ds as an aligned table to w.
func (ds *Dataset) Print(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(ds.Names(), "\t"))
	row := make([]string, len(ds.columns))
	for i := 0; i < ds.N; i++ {
		for j, c := range ds.columns {
			row[j] = c.Value(i)
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// NewDatasetFrom constructs a dataset from a slice of structs. Exported
// fields of integer, float, string or bool type become columns, as do
// methods without arguments returning one of these types; the latter
// allow computed columns.
func NewDatasetFrom(data interface{}) (*Dataset, error) {
	v := reflect.ValueOf(data)
	if v.Kind() != reflect.Slice || v.Type().Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("eda: cannot convert %T to dataset", data)
	}
	t := v.Type().Elem()
	n := v.Len()

	var columns []*Column

	// Fields first.
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue // unexported
		}
		c := newReflectColumn(f.Name, f.Type.Kind(), n, func(j int) reflect.Value {
			return v.Index(j).Field(i)
		})
		if c != nil {
			columns = append(columns, c)
		}
	}

	// The same for methods with signatures like "func(elemtype) kind".
	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		mt := m.Type
		if mt.NumIn() != 1 || mt.NumOut() != 1 {
			continue
		}
		c := newReflectColumn(m.Name, mt.Out(0).Kind(), n, func(j int) reflect.Value {
			return m.Func.Call([]reflect.Value{v.Index(j)})[0]
		})
		if c != nil {
			columns = append(columns, c)
		}
	}

	return NewDataset(columns...)
}

func newReflectColumn(name string, kind reflect.Kind, n int, value func(int) reflect.Value) *Column {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		vals := make([]int64, n)
		for j := range vals {
			vals[j] = value(j).Int()
		}
		return IntColumn(name, vals)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		vals := make([]int64, n)
		for j := range vals {
			vals[j] = int64(value(j).Uint())
		}
		return IntColumn(name, vals)
	case reflect.Float32, reflect.Float64:
		vals := make([]float64, n)
		for j := range vals {
			vals[j] = value(j).Float()
		}
		return FloatColumn(name, vals)
	case reflect.String:
		vals := make([]string, n)
		for j := range vals {
			vals[j] = value(j).String()
		}
		return StringColumn(name, vals)
	case reflect.Bool:
		vals := make([]bool, n)
		for j := range vals {
			vals[j] = value(j).Bool()
		}
		return BoolColumn(name, vals)
	}
	return nil
}

// SortedLevels returns the distinct non-missing values of c in ascending
// order: numerically for numeric and boolean columns, lexically for
// categorical ones.
func (c *Column) SortedLevels() []string {
	if c.Kind == String {
		return NewStringSetFrom(c.Levels()).Elements()
	}
	values := NewFloatSet()
	for _, v := range c.Data {
		if !math.IsNaN(v) {
			values.Add(v)
		}
	}
	tmp := &Column{Kind: c.Kind, Data: values.Elements()}
	levels := make([]string, len(tmp.Data))
	for i := range tmp.Data {
		levels[i] = tmp.Value(i)
	}
	return levels
}
