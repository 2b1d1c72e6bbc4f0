package plot

import (
	"errors"
	"math"

	"github.com/san-kum/rootfind/internal/rootfind"
)

// ErrNoData is returned when every sample of the function failed.
var ErrNoData = errors.New("plot: function is undefined on the whole domain")

// Domain is a closed x interval sampled at Points evenly spaced values.
type Domain struct {
	Min, Max float64
	Points   int
}

// DefaultDomain matches the range the web form always plotted.
var DefaultDomain = Domain{Min: -10, Max: 10, Points: 400}

// Series holds sampled values. Y is NaN where f could not be evaluated.
type Series struct {
	X, Y []float64
}

// Sample evaluates fn across d. Samples that fail or are not finite become
// gaps in the series.
func Sample(fn rootfind.Func, d Domain) Series {
	n := d.Points
	if n < 2 {
		n = 2
	}
	s := Series{X: make([]float64, n), Y: make([]float64, n)}
	step := (d.Max - d.Min) / float64(n-1)
	for i := 0; i < n; i++ {
		x := d.Min + float64(i)*step
		if i == n-1 {
			x = d.Max
		}
		s.X[i] = x
		y, err := fn(x)
		if err != nil || math.IsNaN(y) || math.IsInf(y, 0) {
			y = math.NaN()
		}
		s.Y[i] = y
	}
	return s
}

// Bounds returns the extent of the finite samples.
func (s Series) Bounds() (minY, maxY float64, err error) {
	minY, maxY = math.Inf(1), math.Inf(-1)
	for _, y := range s.Y {
		if math.IsNaN(y) {
			continue
		}
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}
	if math.IsInf(minY, 1) {
		return 0, 0, ErrNoData
	}
	return minY, maxY, nil
}

// Gaps counts the samples where f was undefined.
func (s Series) Gaps() int {
	n := 0
	for _, y := range s.Y {
		if math.IsNaN(y) {
			n++
		}
	}
	return n
}
