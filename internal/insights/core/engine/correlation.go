package engine

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"customer-insights-service/internal/insights/core/domain"
)

// Correlation computes the Pearson coefficient for every ordered pair of the
// numeric columns cols. The matrix is symmetric and a self pair is exactly 1.
// A column with fewer than two records or zero variance makes every pair it
// takes part in NaN, its self pair included.
func Correlation(view domain.View, cols []string) domain.CorrelationMatrix {
	cols = dedupe(cols)
	series := make(map[string][]float64, len(cols))
	degenerate := make(map[string]bool, len(cols))
	for _, c := range cols {
		xs := column(view, c)
		series[c] = xs
		if len(xs) < 2 {
			degenerate[c] = true
			continue
		}
		v := stat.Variance(xs, nil)
		degenerate[c] = v == 0 || math.IsNaN(v)
	}

	m := domain.CorrelationMatrix{
		Columns: cols,
		Values:  make(map[domain.Pair]float64, len(cols)*len(cols)),
	}
	for i, a := range cols {
		for _, b := range cols[i:] {
			var r float64
			switch {
			case degenerate[a] || degenerate[b]:
				r = math.NaN()
			case a == b:
				r = 1
			default:
				r = stat.Correlation(series[a], series[b], nil)
			}
			m.Values[domain.Pair{Row: a, Col: b}] = r
			m.Values[domain.Pair{Row: b, Col: a}] = r
		}
	}
	return m
}

// column extracts a numeric column; unknown or non-numeric columns yield nil.
func column(view domain.View, col string) []float64 {
	xs := make([]float64, 0, view.Len())
	for i := 0; i < view.Len(); i++ {
		v, ok := view.At(i).Number(col)
		if !ok {
			return nil
		}
		xs = append(xs, v)
	}
	return xs
}

func dedupe(cols []string) []string {
	seen := make(map[string]bool, len(cols))
	out := make([]string, 0, len(cols))
	for _, c := range cols {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}
