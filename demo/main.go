// Package main runs a small exploratory analysis of a synthetic patient
// dataset and writes all charts as PNG files.
//
// Usage:
//
//	go run ./demo [output-dir]
package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/eda"
	"github.com/vdobler/eda/stat"
)

var origins = []string{"de", "fr", "it", "es", "uk", "us", "jp", "ch"}

// records builds n synthetic rows with a header.
func records(n int, rng *rand.Rand) [][]string {
	recs := [][]string{{"origin", "smoker", "age", "height", "weight", "visits"}}
	for i := 0; i < n; i++ {
		height := 150 + 40*rng.Float64()
		weight := 0.9*(height-100) + 10*rng.NormFloat64()
		recs = append(recs, []string{
			origins[rng.Intn(len(origins))],
			strconv.FormatBool(rng.Float64() < 0.3),
			strconv.Itoa(18 + rng.Intn(60)),
			strconv.FormatFloat(height, 'f', 1, 64),
			strconv.FormatFloat(weight, 'f', 1, 64),
			strconv.Itoa(rng.Intn(4)),
		})
	}
	return recs
}

func main() {
	dir := "eda-demo"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	if err := run(dir, logger); err != nil {
		logger.Error("demo failed", "error", err)
		os.Exit(1)
	}
}

func run(dir string, logger *slog.Logger) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	df := dataframe.LoadRecords(records(300, rand.New(rand.NewSource(1))))
	if df.Err != nil {
		return df.Err
	}
	ds, err := eda.FromGota(df)
	if err != nil {
		return err
	}

	table := eda.Classify(ds, 10, 50)
	if err := table.Print(os.Stdout); err != nil {
		return err
	}
	vs, err := eda.Variability(ds)
	if err != nil {
		return err
	}
	for _, v := range vs {
		fmt.Printf("%-8s mean=%8.2f std=%8.2f cv=%6.3f\n", v.Name, v.Mean, v.Std, v.CV)
	}

	categorical := table.Select(eda.Categorical, eda.Binary)
	numeric := table.Select(eda.DiscreteNumeric, eda.ContinuousNumeric)

	c := &eda.Charter{Sink: &eda.FileSink{Dir: dir}, Theme: eda.DefaultTheme, Logger: logger}
	steps := []func() error{
		func() error {
			return c.CategoricalDistribution(ds, categorical, eda.DistributionOptions{Relative: true, ShowValues: true})
		},
		func() error { return c.Boxplots(ds, numeric, 2) },
		func() error { return c.HistogramsWithDensity(ds, numeric) },
		func() error { return c.CombinedGraphs(ds, []string{"height", "weight"}, 1.5) },
		func() error {
			return c.CategoricalRelationship(ds, "origin", "smoker", eda.RelationshipOptions{Relative: true})
		},
		func() error {
			return c.CategoricalNumericalRelationship(ds, "origin", "weight",
				eda.AggregateOptions{ShowValues: true, Measure: stat.MeasureMedian})
		},
		func() error { return c.GroupedHistograms(ds, "origin", "weight", 4, eda.AutoBins{}) },
		func() error {
			return c.ScatterWithCorrelation(ds, "height", "weight", eda.ScatterOptions{ShowCorrelation: true})
		},
		func() error { return c.Bubble(ds, "height", "weight", "age", 0.1) },
		func() error { return c.GroupedBoxplots(ds, "origin", "age") },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}

	p, err := c.ScatterWithControls(ds, "height", "weight",
		eda.ControlOptions{Color: "origin", Size: eda.FromColumn("age"), Legend: true})
	if err != nil {
		return err
	}
	return p.Save(8*vg.Inch, 6*vg.Inch, filepath.Join(dir, "controls.png"))
}
