package eda

import "errors"

var (
	// ErrNoColumn is returned for a column name absent from the dataset.
	ErrNoColumn = errors.New("eda: no such column")

	// ErrNotNumeric is returned when a numeric-only operation is applied
	// to a categorical or boolean column.
	ErrNotNumeric = errors.New("eda: column is not numeric")

	// ErrEmpty is returned when a statistic needs at least one value.
	ErrEmpty = errors.New("eda: no values")

	// ErrZeroMean is returned for the coefficient of variation of a
	// column whose mean is zero.
	ErrZeroMean = errors.New("eda: mean is zero")

	// ErrGroupSize is returned for a non-positive batch size.
	ErrGroupSize = errors.New("eda: group size must be positive")

	ErrNoColumns       = errors.New("eda: dataset needs at least one column")
	ErrDuplicateColumn = errors.New("eda: duplicate column")
	ErrLength          = errors.New("eda: columns differ in length")
)
