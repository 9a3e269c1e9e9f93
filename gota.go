package eda

import (
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// FromGota converts a gota data frame into a Dataset. The gota series
// types Int, Float, String and Bool map onto the column kinds of the same
// name; gota's NaN elements become missing values.
func FromGota(df dataframe.DataFrame) (*Dataset, error) {
	if df.Err != nil {
		return nil, df.Err
	}
	names := df.Names()
	columns := make([]*Column, 0, len(names))
	for _, name := range names {
		s := df.Col(name)
		var c *Column
		switch s.Type() {
		case series.Int:
			c = &Column{Name: name, Kind: Int, Data: s.Float()}
		case series.Float:
			c = FloatColumn(name, s.Float())
		case series.Bool:
			c = &Column{Name: name, Kind: Bool, Data: s.Float()}
		default:
			c = StringColumn(name, s.Records())
		}
		for i, nan := range s.IsNaN() {
			if nan {
				c.Data[i] = math.NaN()
			}
		}
		columns = append(columns, c)
	}
	return NewDataset(columns...)
}
