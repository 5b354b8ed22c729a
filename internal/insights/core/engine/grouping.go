package engine

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"customer-insights-service/internal/insights/core/domain"
)

// partition splits the numeric column value by the text of column group.
// Only groups observed in the view appear; keys come back sorted.
func partition(view domain.View, group, value string) ([]string, map[string][]float64) {
	parts := make(map[string][]float64)
	for i := 0; i < view.Len(); i++ {
		r := view.At(i)
		k, ok := r.Text(group)
		if !ok {
			continue
		}
		v, ok := r.Number(value)
		if !ok {
			continue
		}
		parts[k] = append(parts[k], v)
	}
	keys := make([]string, 0, len(parts))
	for k := range parts {
		keys = append(keys, k)
	}
	sortKeys(keys)
	return keys, parts
}

// GroupedMean returns the mean of value for each group observed in view.
func GroupedMean(view domain.View, group, value string) []domain.GroupMean {
	keys, parts := partition(view, group, value)
	out := make([]domain.GroupMean, 0, len(keys))
	for _, k := range keys {
		xs := parts[k]
		out = append(out, domain.GroupMean{
			Key:   k,
			Count: len(xs),
			Mean:  stat.Mean(xs, nil),
		})
	}
	return out
}

// GroupedDistribution returns box-plot statistics of value for each group
// observed in view. Quartiles are order statistics of the empirical CDF.
func GroupedDistribution(view domain.View, group, value string) []domain.GroupDistribution {
	keys, parts := partition(view, group, value)
	out := make([]domain.GroupDistribution, 0, len(keys))
	for _, k := range keys {
		xs := parts[k]
		sort.Float64s(xs)
		out = append(out, domain.GroupDistribution{
			Key:    k,
			Count:  len(xs),
			Min:    xs[0],
			Q1:     stat.Quantile(0.25, stat.Empirical, xs, nil),
			Median: stat.Quantile(0.5, stat.Empirical, xs, nil),
			Q3:     stat.Quantile(0.75, stat.Empirical, xs, nil),
			Max:    xs[len(xs)-1],
			Mean:   stat.Mean(xs, nil),
		})
	}
	return out
}

// CrossTabulate counts records per observed (row, col) combination.
func CrossTabulate(view domain.View, row, col string) domain.CrossTab {
	tab := make(domain.CrossTab)
	for i := 0; i < view.Len(); i++ {
		r := view.At(i)
		a, ok := r.Text(row)
		if !ok {
			continue
		}
		b, ok := r.Text(col)
		if !ok {
			continue
		}
		tab[domain.Pair{Row: a, Col: b}]++
	}
	return tab
}
