// Package geom turns the results of the statistical transforms in
// package stat into gonum plotters: bars, boxes, histograms, density
// curves, points and value labels.
package geom
