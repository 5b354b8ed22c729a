package engine

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"customer-insights-service/internal/insights/core/domain"
)

// HistogramOf splits the observed range of col into bins equal-width bins.
// The last bin is closed on the right so the maximum is counted. An empty
// view has no bins; a view with a single distinct value gets one bin of
// width 1 starting at that value.
func HistogramOf(view domain.View, col string, bins int) domain.Histogram {
	h := domain.Histogram{Column: col}
	xs := column(view, col)
	if len(xs) == 0 {
		return h
	}
	if bins < 1 {
		bins = 1
	}
	sort.Float64s(xs)
	lo, hi := xs[0], xs[len(xs)-1]
	if lo == hi {
		h.Bins = []domain.HistogramBin{{Lower: lo, Upper: lo + 1, Count: len(xs)}}
		return h
	}

	edges := floats.Span(make([]float64, bins+1), lo, hi)
	dividers := make([]float64, len(edges))
	copy(dividers, edges)
	dividers[bins] = math.Nextafter(hi, math.Inf(1))

	counts := stat.Histogram(nil, dividers, xs, nil)
	h.Bins = make([]domain.HistogramBin, bins)
	for i := range h.Bins {
		h.Bins[i] = domain.HistogramBin{
			Lower: edges[i],
			Upper: edges[i+1],
			Count: int(counts[i]),
		}
	}
	return h
}

// Scatter returns one (x, y, hue) point per record. hue may be empty.
func Scatter(view domain.View, x, y, hue string) []domain.Point {
	pts := make([]domain.Point, 0, view.Len())
	for i := 0; i < view.Len(); i++ {
		r := view.At(i)
		px, ok := r.Number(x)
		if !ok {
			return nil
		}
		py, ok := r.Number(y)
		if !ok {
			return nil
		}
		p := domain.Point{X: px, Y: py}
		if hue != "" {
			p.Hue, _ = r.Text(hue)
		}
		pts = append(pts, p)
	}
	return pts
}
