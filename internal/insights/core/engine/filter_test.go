package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"customer-insights-service/internal/insights/core/domain"
)

func TestApplyFilter_SingleColumn(t *testing.T) {
	ds := sampleDataset()

	view := ApplyFilter(ds.All(), domain.NewFilterSpec().Allow(domain.ColRegion, "North"))

	require.Equal(t, 2, view.Len())
	assert.Equal(t, 2, Summarize(view).TotalCount)
	for _, r := range view.Records() {
		assert.Equal(t, "North", r.Region)
	}
}

func TestApplyFilter_AndAcrossColumns(t *testing.T) {
	ds := sampleDataset()
	spec := domain.NewFilterSpec().
		Allow(domain.ColRegion, "North", "South").
		Allow(domain.ColGender, "F")

	view := ApplyFilter(ds.All(), spec)

	require.Equal(t, 2, view.Len())
	for _, r := range view.Records() {
		assert.Equal(t, "F", r.Gender)
	}
}

func TestApplyFilter_EmptyAllowedSetMatchesNothing(t *testing.T) {
	ds := sampleDataset()

	view := ApplyFilter(ds.All(), domain.NewFilterSpec().Allow(domain.ColRegion))

	assert.Equal(t, 0, view.Len())

	s := Summarize(view)
	assert.Equal(t, 0, s.TotalCount)
	assert.Zero(t, s.SignupRate)
	assert.Zero(t, s.EnrollmentRate)
	assert.True(t, isNaN(s.MeanSatisfaction))
	assert.Empty(t, GroupedMean(view, domain.ColRegion, domain.ColSatisfactionScore))
	assert.Empty(t, CrossTabulate(view, domain.ColGender, domain.ColPlanType))
	assert.True(t, isNaN(Correlation(view, domain.NumericColumns()).At(domain.ColInterestScore, domain.ColInterestScore)))
	assert.Empty(t, HistogramOf(view, domain.ColSatisfactionScore, 10).Bins)
}

func TestApplyFilter_IsCaseSensitive(t *testing.T) {
	ds := sampleDataset()

	view := ApplyFilter(ds.All(), domain.NewFilterSpec().Allow(domain.ColRegion, "north"))

	assert.Equal(t, 0, view.Len())
}

func TestApplyFilter_Idempotent(t *testing.T) {
	ds := sampleDataset()
	specs := []domain.FilterSpec{
		domain.NewFilterSpec(),
		domain.NewFilterSpec().Allow(domain.ColRegion, "South"),
		domain.NewFilterSpec().Allow(domain.ColGender, "M").Allow(domain.ColPlanType, "Basic"),
		domain.NewFilterSpec().Allow(domain.ColGender),
	}

	for _, spec := range specs {
		once := ApplyFilter(ds.All(), spec)
		twice := ApplyFilter(once, spec)
		assert.Equal(t, once.Records(), twice.Records())
	}
}

func TestApplyFilter_DefaultSpecIsNoop(t *testing.T) {
	ds := sampleDataset()

	view := ApplyFilter(ds.All(), DefaultFilterSpec(ds))

	assert.Equal(t, ds.All().Records(), view.Records())
}

func TestDistinctValues_UsesUnfilteredDataset(t *testing.T) {
	ds := sampleDataset()

	assert.Equal(t, []string{"North", "South"}, DistinctValues(ds, domain.ColRegion))
	assert.Equal(t, []string{"4", "6", "8", "10"}, DistinctValues(ds, domain.ColSatisfactionScore))
	assert.Nil(t, DistinctValues(ds, "Unknown"))
}

func TestDropMissing(t *testing.T) {
	recs := sampleDataset().All().Records()
	recs[0].CourseCompletionStatus = "Completed"
	ds := domain.NewDataset("test", recs)

	view := DropMissing(ds.All(), domain.ColCourseCompletionStatus)

	require.Equal(t, 1, view.Len())
	assert.Equal(t, "Completed", view.At(0).CourseCompletionStatus)
}
