package stat

import (
	"github.com/aclements/go-moremath/stats"
)

// Point is a sampled point of a curve.
type Point struct{ X, Y float64 }

// Density estimates the probability density of xs with a Gaussian
// kernel (Scott's bandwidth) and samples it at n evenly spaced points
// over the range of the data. Samples with fewer than two values or no
// spread have no density and yield nil.
func Density(xs []float64, n int) []Point {
	if len(xs) < 2 || n < 2 {
		return nil
	}
	min, max := Bounds(xs)
	if min == max {
		return nil
	}

	kde := &stats.KDE{Sample: stats.Sample{Xs: xs}}
	step := (max - min) / float64(n-1)
	curve := make([]Point, n)
	for i := range curve {
		x := min + float64(i)*step
		curve[i] = Point{X: x, Y: kde.PDF(x)}
	}
	return curve
}
