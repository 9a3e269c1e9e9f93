package eda

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Ops struct {
	Age     int
	Origin  string
	Weight  float64
	Height  float64
	Smoker  bool
	Special []byte
	secret  int
}

func (o Ops) BMI() float64 {
	return o.Weight / (o.Height * o.Height)
}

func (o Ops) Group() int {
	return 10*(o.Age/10) + 5
}

func (o Ops) Country() string {
	o2c := map[string]string{
		"ch": "Schweiz",
		"de": "Deutschland",
		"uk": "England",
	}
	return o2c[o.Origin]
}

func (o Ops) Other2(a int) int {
	return 0
}

var measurement = []Ops{
	{Age: 20, Origin: "de", Weight: 80, Height: 1.88},
	{Age: 22, Origin: "de", Weight: 85, Height: 1.85},
	{Age: 20, Origin: "de", Weight: 90, Height: 1.95},
	{Age: 25, Origin: "de", Weight: 90, Height: 1.72, Smoker: true},

	{Age: 20, Origin: "ch", Weight: 77, Height: 1.78},
	{Age: 20, Origin: "ch", Weight: 82, Height: 1.75},
	{Age: 28, Origin: "ch", Weight: 85, Height: 1.80, Smoker: true},
	{Age: 20, Origin: "ch", Weight: 84, Height: 1.62},

	{Age: 31, Origin: "de", Weight: 85, Height: 1.88},
	{Age: 30, Origin: "de", Weight: 90, Height: 1.85},
	{Age: 30, Origin: "de", Weight: 99, Height: 1.95},
	{Age: 42, Origin: "de", Weight: 95, Height: 1.72},

	{Age: 30, Origin: "ch", Weight: 80, Height: 1.78},
	{Age: 30, Origin: "ch", Weight: 85, Height: 1.75, Smoker: true},
	{Age: 37, Origin: "ch", Weight: 87, Height: 1.80},
	{Age: 47, Origin: "ch", Weight: 90, Height: 1.62},

	{Age: 42, Origin: "uk", Weight: 60, Height: 1.68},
	{Age: 42, Origin: "uk", Weight: 65, Height: 1.65},
	{Age: 44, Origin: "uk", Weight: 55, Height: 1.52},
	{Age: 44, Origin: "uk", Weight: 70, Height: 1.72, Smoker: true},
}

func measurementDataset(t *testing.T) *Dataset {
	t.Helper()
	ds, err := NewDatasetFrom(measurement)
	require.NoError(t, err)
	return ds
}

func TestNewDatasetFrom(t *testing.T) {
	ds := measurementDataset(t)

	assert.Equal(t, 20, ds.N)
	assert.Equal(t,
		[]string{"Age", "Origin", "Weight", "Height", "Smoker", "BMI", "Country", "Group"},
		ds.Names())

	kinds := map[string]ColumnKind{
		"Age": Int, "Origin": String, "Weight": Float, "Smoker": Bool,
		"BMI": Float, "Country": String, "Group": Int,
	}
	for name, kind := range kinds {
		c, err := ds.Column(name)
		require.NoError(t, err)
		assert.Equal(t, kind, c.Kind, name)
	}

	bmi, err := ds.Column("BMI")
	require.NoError(t, err)
	assert.InDelta(t, 80/(1.88*1.88), bmi.Data[0], 1e-12)

	_, err = NewDatasetFrom(42)
	assert.Error(t, err)
}

func TestNewDatasetErrors(t *testing.T) {
	_, err := NewDataset()
	assert.ErrorIs(t, err, ErrNoColumns)

	_, err = NewDataset(IntColumn("a", []int64{1}), IntColumn("a", []int64{2}))
	assert.ErrorIs(t, err, ErrDuplicateColumn)

	_, err = NewDataset(IntColumn("a", []int64{1}), IntColumn("b", []int64{2, 3}))
	assert.ErrorIs(t, err, ErrLength)
}

func TestColumnLookup(t *testing.T) {
	ds := measurementDataset(t)

	_, err := ds.Column("Shoe")
	assert.True(t, errors.Is(err, ErrNoColumn))
	assert.False(t, ds.Has("Shoe"))
	assert.True(t, ds.Has("Age"))

	_, err = ds.Numbers("Origin")
	assert.ErrorIs(t, err, ErrNotNumeric)

	ages, err := ds.Numbers("Age")
	require.NoError(t, err)
	assert.Len(t, ages, 20)
}

func TestLevels(t *testing.T) {
	ds := measurementDataset(t)

	origin, _ := ds.Column("Origin")
	assert.Equal(t, []string{"de", "ch", "uk"}, origin.Levels())
	assert.Equal(t, []string{"ch", "de", "uk"}, origin.SortedLevels())
	assert.Equal(t, 3, origin.Cardinality())

	age, _ := ds.Column("Age")
	assert.Equal(t, 10, age.Cardinality())
	sorted := age.SortedLevels()
	assert.Equal(t, "20", sorted[0])
	assert.Equal(t, "47", sorted[len(sorted)-1])

	levels, rows := origin.Partition()
	require.Len(t, rows, 3)
	assert.Equal(t, "uk", levels[2])
	assert.Equal(t, []int{16, 17, 18, 19}, rows[2])

	smoker, _ := ds.Column("Smoker")
	assert.Equal(t, []string{"false", "true"}, smoker.Levels())
}

func TestMissingValues(t *testing.T) {
	c := FloatColumn("x", []float64{1, math.NaN(), 1, 2})
	assert.Equal(t, 2, c.Cardinality())
	assert.True(t, c.Missing(1))
	assert.Equal(t, "NaN", c.Value(1))
	assert.Equal(t, []string{"1", "2"}, c.Levels())

	xs, err := c.Numbers()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 2}, xs)
}

func TestFilter(t *testing.T) {
	ds := measurementDataset(t)

	exactly20, err := ds.Filter("Age", "20")
	require.NoError(t, err)
	assert.Equal(t, 5, exactly20.N)
	ages, _ := exactly20.Numbers("Age")
	for i, a := range ages {
		assert.Equal(t, 20.0, a, "element %d", i)
	}

	age30to39, err := ds.Filter("Group", "35")
	require.NoError(t, err)
	assert.Equal(t, 6, age30to39.N)

	ukOnly, err := ds.Filter("Origin", "uk")
	require.NoError(t, err)
	assert.Equal(t, 4, ukOnly.N)
	origin, _ := ukOnly.Column("Origin")
	for i := 0; i < ukOnly.N; i++ {
		assert.Equal(t, "uk", origin.Value(i))
	}

	two, err := ds.Filter("Origin", "uk", "ch")
	require.NoError(t, err)
	assert.Equal(t, 12, two.N)

	_, err = ds.Filter("Planet", "mars")
	assert.ErrorIs(t, err, ErrNoColumn)
}

func TestPrint(t *testing.T) {
	ds, err := NewDataset(
		StringColumn("name", []string{"a", "b"}),
		IntColumn("n", []int64{1, 22}),
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ds.Print(&buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"name", "n"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"b", "22"}, strings.Fields(lines[2]))
}

func TestFromGota(t *testing.T) {
	df := dataframe.LoadRecords(
		[][]string{
			{"A", "B", "C", "D"},
			{"a", "4", "5.1", "true"},
			{"k", "5", "7.0", "true"},
			{"k", "4", "NaN", "true"},
			{"a", "2", "7.1", "false"},
		},
	)
	ds, err := FromGota(df)
	require.NoError(t, err)
	assert.Equal(t, 4, ds.N)
	assert.Equal(t, []string{"A", "B", "C", "D"}, ds.Names())

	kinds := []ColumnKind{String, Int, Float, Bool}
	for i, c := range ds.Columns() {
		assert.Equal(t, kinds[i], c.Kind, c.Name)
	}

	c, _ := ds.Column("C")
	assert.True(t, c.Missing(2))
	assert.Equal(t, 3, c.Cardinality())

	a, _ := ds.Column("A")
	assert.Equal(t, []string{"a", "k"}, a.Levels())
}
