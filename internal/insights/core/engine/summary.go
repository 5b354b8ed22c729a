package engine

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"customer-insights-service/internal/insights/core/domain"
)

const yes = "Yes"

// Summarize computes the headline metrics of a view.
// On an empty view the rates are 0 and MeanSatisfaction is NaN.
func Summarize(view domain.View) domain.Summary {
	n := view.Len()
	if n == 0 {
		return domain.Summary{MeanSatisfaction: math.NaN()}
	}

	var signups, enrolled int
	scores := make([]float64, n)
	for i := 0; i < n; i++ {
		r := view.At(i)
		if r.SignupStatus == yes {
			signups++
		}
		if r.CourseEnrolled == yes {
			enrolled++
		}
		scores[i] = r.SatisfactionScore
	}

	return domain.Summary{
		TotalCount:       n,
		SignupRate:       float64(signups) / float64(n),
		EnrollmentRate:   float64(enrolled) / float64(n),
		MeanSatisfaction: stat.Mean(scores, nil),
	}
}
