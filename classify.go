package eda

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
)

// VariableClass is the derived analysis type of a column.
type VariableClass int

const (
	Categorical VariableClass = iota
	Binary
	DiscreteNumeric
	ContinuousNumeric
)

func (c VariableClass) String() string {
	switch c {
	case Categorical:
		return "Categorical"
	case Binary:
		return "Binary"
	case DiscreteNumeric:
		return "Discrete Numeric"
	case ContinuousNumeric:
		return "Continuous Numeric"
	}
	return "VariableClass(" + strconv.Itoa(int(c)) + ")"
}

// ColumnProfile summarises one column of a dataset.
type ColumnProfile struct {
	Name             string
	Cardinality      int     // distinct non-missing values
	CardinalityRatio float64 // Cardinality / rows * 100
	Type             ColumnKind
	Class            VariableClass
}

// ProfileTable holds one profile per column in dataset order.
type ProfileTable []ColumnProfile

// Classify profiles every column of ds and derives its variable class
// from the cardinality thresholds. The rules are applied in order, each
// later rule overriding the earlier ones:
//
//	default                           Categorical
//	cardinality == 2                  Binary
//	cardinality >= categorical        Discrete Numeric
//	cardinality ratio >= continuous   Continuous Numeric
//
// Consequently a two-valued column is Discrete Numeric, not Binary, when
// categorical <= 2. The continuous threshold is a percentage.
//
// A dataset without rows gets a NaN cardinality ratio.
func Classify(ds *Dataset, categorical int, continuous float64) ProfileTable {
	table := make(ProfileTable, 0, len(ds.columns))
	for _, c := range ds.columns {
		card := c.Cardinality()
		ratio := float64(card) / float64(ds.N) * 100
		table = append(table, ColumnProfile{
			Name:             c.Name,
			Cardinality:      card,
			CardinalityRatio: ratio,
			Type:             c.Kind,
			Class:            classOf(card, ratio, categorical, continuous),
		})
	}
	return table
}

func classOf(card int, ratio float64, categorical int, continuous float64) VariableClass {
	class := Categorical
	if card == 2 {
		class = Binary
	}
	if card >= categorical {
		class = DiscreteNumeric
	}
	if ratio >= continuous {
		class = ContinuousNumeric
	}
	return class
}

// Lookup returns the profile of the named column.
func (t ProfileTable) Lookup(name string) (ColumnProfile, bool) {
	for _, p := range t {
		if p.Name == name {
			return p, true
		}
	}
	return ColumnProfile{}, false
}

// Select returns the names of all columns of one of the given classes,
// in table order.
func (t ProfileTable) Select(classes ...VariableClass) []string {
	var names []string
	for _, p := range t {
		for _, c := range classes {
			if p.Class == c {
				names = append(names, p.Name)
				break
			}
		}
	}
	return names
}

// Print writes t as an aligned table to w.
func (t ProfileTable) Print(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "column\tcardinality\tcardinality %\ttype\tclass")
	for _, p := range t {
		fmt.Fprintf(tw, "%s\t%d\t%.2f\t%s\t%s\n",
			p.Name, p.Cardinality, p.CardinalityRatio, p.Type, p.Class)
	}
	return tw.Flush()
}
