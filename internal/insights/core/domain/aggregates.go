package domain

import (
	"math"
	"sort"
)

// Summary holds the headline metrics of a view.
// MeanSatisfaction is NaN when the view is empty; the rates are 0.
type Summary struct {
	TotalCount       int
	SignupRate       float64
	EnrollmentRate   float64
	MeanSatisfaction float64
}

// HasData reports whether the summary was computed over at least one record.
func (s Summary) HasData() bool { return s.TotalCount > 0 }

// GroupMean is the mean of a numeric column within one group.
type GroupMean struct {
	Key   string
	Count int
	Mean  float64
}

// GroupDistribution is the five-number summary of a numeric column within
// one group, plus its mean.
type GroupDistribution struct {
	Key    string
	Count  int
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
	Mean   float64
}

type Pair struct {
	Row string
	Col string
}

// CrossTab is sparse: combinations with no records have no entry.
type CrossTab map[Pair]int

type CrossCell struct {
	Row   string
	Col   string
	Count int
}

// Cells returns the non-zero cells ordered by row then column.
func (t CrossTab) Cells() []CrossCell {
	out := make([]CrossCell, 0, len(t))
	for p, n := range t {
		out = append(out, CrossCell{Row: p.Row, Col: p.Col, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// CorrelationMatrix holds Pearson coefficients for every ordered pair of
// Columns. Undefined coefficients are NaN.
type CorrelationMatrix struct {
	Columns []string
	Values  map[Pair]float64
}

// At returns the coefficient for (a, b), NaN when the pair is unknown.
func (m CorrelationMatrix) At(a, b string) float64 {
	v, ok := m.Values[Pair{Row: a, Col: b}]
	if !ok {
		return math.NaN()
	}
	return v
}

// Grid returns the matrix as rows in Columns order.
func (m CorrelationMatrix) Grid() [][]float64 {
	grid := make([][]float64, len(m.Columns))
	for i, a := range m.Columns {
		grid[i] = make([]float64, len(m.Columns))
		for j, b := range m.Columns {
			grid[i][j] = m.At(a, b)
		}
	}
	return grid
}

// HistogramBin counts values in [Lower, Upper).
type HistogramBin struct {
	Lower float64
	Upper float64
	Count int
}

type Histogram struct {
	Column string
	Bins   []HistogramBin
}

// Point is one scatter-plot sample.
type Point struct {
	X   float64
	Y   float64
	Hue string
}
