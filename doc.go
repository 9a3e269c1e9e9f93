// Package eda provides helpers for exploratory data analysis: a
// classifier which sorts the variables of a dataset by their cardinality,
// a few measures of spread and a set of ready made charts.
//
//
// Data Representation: Datasets
//
// A Dataset is an ordered collection of equally long, named columns.
// It can be built from columns
//
//      ds, err := eda.NewDataset(
//          eda.StringColumn("origin", origin),
//          eda.FloatColumn("weight", weight),
//      )
//
// from a "slice of measurements"
//
//      var data []Measurement
//      type Measurement struct {
//          Origin string
//          Weight float64
//          Age    int
//      }
//      ds, err := eda.NewDatasetFrom(data)
//
// where exported fields and exported methods without arguments become
// columns, or from a gota data frame with FromGota.
//
//
// Types of Columns
//
// Internally every column is a []float64. Integer and boolean values
// are stored as numbers, categorical values as indices into a string
// pool. A NaN marks a missing value in columns of every kind.
//
//
// Classification
//
// Classify computes the cardinality of every column and its ratio to
// the number of rows and assigns a VariableClass. The rules are applied
// in order, a later matching rule overrides an earlier one:
//
//      default                        Categorical
//      cardinality == 2               Binary
//      cardinality >= categorical     DiscreteNumeric
//      ratio >= continuous            ContinuousNumeric
//
//
// Charts
//
// The methods of Charter draw complete figures and hand them to a Sink:
// FileSink writes PNG files, Recorder keeps them in memory. Charts over
// many category levels are split into several figures of a few levels
// each. ScatterWithControls returns its plot instead of rendering it.
package eda
