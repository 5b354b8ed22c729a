package usecase

import (
	"context"
	"errors"
	"fmt"

	"customer-insights-service/internal/insights/core/domain"
	"customer-insights-service/internal/insights/core/engine"
)

var (
	ErrUnknownColumn = errors.New("unknown column")
	ErrNotFilterable = errors.New("column cannot be filtered")
	ErrNotGroupable  = errors.New("column cannot be grouped")
	ErrNotNumeric    = errors.New("column is not numeric")
	ErrInvalidBins   = errors.New("bins must be between 1 and 100")
	ErrInvalidPage   = errors.New("invalid offset or limit")
	ErrInvalidScope  = errors.New("scope must be view or dataset")
)

const (
	DefaultBins  = 10
	MaxBins      = 100
	DefaultLimit = 100
	MaxLimit     = 1000

	ScopeView    = "view"
	ScopeDataset = "dataset"
)

// Filters maps a categorical column to its allowed values. An empty slice
// matches nothing; an absent column is unconstrained.
type Filters map[string][]string

type RecordsInput struct {
	Filters Filters
	Offset  int
	Limit   int
}

type RecordsPage struct {
	Total   int
	Offset  int
	Records []domain.Record
}

type SummaryInput struct {
	Filters Filters
	Scope   string // "", "view", "dataset"
}

type GroupedInput struct {
	Filters     Filters
	GroupBy     string
	Value       string
	DropMissing bool // distribution only
}

type CrossTabInput struct {
	Filters Filters
	Row     string
	Column  string
}

type CorrelationInput struct {
	Filters Filters
	Columns []string // empty = every numeric column
}

type HistogramInput struct {
	Filters Filters
	Column  string
	Bins    int // 0 = DefaultBins
}

type ScatterInput struct {
	Filters Filters
	X       string
	Y       string
	Hue     string
}

// Dashboard bundles every aggregate the overview, visual and advanced tabs
// of the dashboard show for one filter.
type Dashboard struct {
	Summary                domain.Summary
	SatisfactionHistogram  domain.Histogram
	MonthlyFeeHistogram    domain.Histogram
	SatisfactionByRegion   []domain.GroupDistribution
	SatisfactionByEduLevel []domain.GroupDistribution
	SatisfactionByOutcome  []domain.GroupDistribution
	GenderEnrollment       domain.CrossTab
	AdChannelSatisfaction  []domain.GroupMean
	ReferralSatisfaction   []domain.GroupMean
	Correlation            domain.CorrelationMatrix
	InterestVsSatisfaction []domain.Point
}

// QueryInsightsUseCase validates requests against the column catalogue and
// runs them through the engine over a dataset loaded once at startup.
type QueryInsightsUseCase struct {
	ds *domain.Dataset
}

func NewQueryInsightsUseCase(ds *domain.Dataset) *QueryInsightsUseCase {
	return &QueryInsightsUseCase{ds: ds}
}

func (uc *QueryInsightsUseCase) DatasetSize() int { return uc.ds.Len() }

func (uc *QueryInsightsUseCase) Columns() []domain.Column { return domain.Columns() }

func (uc *QueryInsightsUseCase) DistinctValues(ctx context.Context, column string) ([]string, error) {
	if _, err := lookup(column); err != nil {
		return nil, err
	}
	return engine.DistinctValues(uc.ds, column), nil
}

// View returns the filtered view for f.
func (uc *QueryInsightsUseCase) View(ctx context.Context, f Filters) (domain.View, error) {
	spec, err := filterSpec(f)
	if err != nil {
		return domain.View{}, err
	}
	return engine.ApplyFilter(uc.ds.All(), spec), nil
}

func (uc *QueryInsightsUseCase) Records(ctx context.Context, in RecordsInput) (*RecordsPage, error) {
	if in.Offset < 0 || in.Limit < 0 || in.Limit > MaxLimit {
		return nil, ErrInvalidPage
	}
	if in.Limit == 0 {
		in.Limit = DefaultLimit
	}
	view, err := uc.View(ctx, in.Filters)
	if err != nil {
		return nil, err
	}
	return &RecordsPage{
		Total:   view.Len(),
		Offset:  in.Offset,
		Records: view.Page(in.Offset, in.Limit).Records(),
	}, nil
}

// Summary computes headline metrics over the filtered view, or over the
// whole dataset when Scope is "dataset" (filters are then still validated).
func (uc *QueryInsightsUseCase) Summary(ctx context.Context, in SummaryInput) (domain.Summary, error) {
	switch in.Scope {
	case "", ScopeView, ScopeDataset:
	default:
		return domain.Summary{}, ErrInvalidScope
	}
	view, err := uc.View(ctx, in.Filters)
	if err != nil {
		return domain.Summary{}, err
	}
	if in.Scope == ScopeDataset {
		view = uc.ds.All()
	}
	return engine.Summarize(view), nil
}

func (uc *QueryInsightsUseCase) GroupedMean(ctx context.Context, in GroupedInput) ([]domain.GroupMean, error) {
	view, err := uc.groupedView(ctx, in)
	if err != nil {
		return nil, err
	}
	return engine.GroupedMean(view, in.GroupBy, in.Value), nil
}

func (uc *QueryInsightsUseCase) Distribution(ctx context.Context, in GroupedInput) ([]domain.GroupDistribution, error) {
	view, err := uc.groupedView(ctx, in)
	if err != nil {
		return nil, err
	}
	if in.DropMissing {
		view = engine.DropMissing(view, in.GroupBy)
	}
	return engine.GroupedDistribution(view, in.GroupBy, in.Value), nil
}

func (uc *QueryInsightsUseCase) groupedView(ctx context.Context, in GroupedInput) (domain.View, error) {
	if err := groupable(in.GroupBy); err != nil {
		return domain.View{}, err
	}
	if err := numeric(in.Value); err != nil {
		return domain.View{}, err
	}
	return uc.View(ctx, in.Filters)
}

func (uc *QueryInsightsUseCase) CrossTab(ctx context.Context, in CrossTabInput) (domain.CrossTab, error) {
	if err := groupable(in.Row); err != nil {
		return nil, err
	}
	if err := groupable(in.Column); err != nil {
		return nil, err
	}
	view, err := uc.View(ctx, in.Filters)
	if err != nil {
		return nil, err
	}
	return engine.CrossTabulate(view, in.Row, in.Column), nil
}

func (uc *QueryInsightsUseCase) Correlation(ctx context.Context, in CorrelationInput) (domain.CorrelationMatrix, error) {
	cols := in.Columns
	if len(cols) == 0 {
		cols = domain.NumericColumns()
	}
	for _, c := range cols {
		if err := numeric(c); err != nil {
			return domain.CorrelationMatrix{}, err
		}
	}
	view, err := uc.View(ctx, in.Filters)
	if err != nil {
		return domain.CorrelationMatrix{}, err
	}
	return engine.Correlation(view, cols), nil
}

func (uc *QueryInsightsUseCase) Histogram(ctx context.Context, in HistogramInput) (domain.Histogram, error) {
	if in.Bins == 0 {
		in.Bins = DefaultBins
	}
	if in.Bins < 1 || in.Bins > MaxBins {
		return domain.Histogram{}, ErrInvalidBins
	}
	if err := numeric(in.Column); err != nil {
		return domain.Histogram{}, err
	}
	view, err := uc.View(ctx, in.Filters)
	if err != nil {
		return domain.Histogram{}, err
	}
	return engine.HistogramOf(view, in.Column, in.Bins), nil
}

func (uc *QueryInsightsUseCase) Scatter(ctx context.Context, in ScatterInput) ([]domain.Point, error) {
	if err := numeric(in.X); err != nil {
		return nil, err
	}
	if err := numeric(in.Y); err != nil {
		return nil, err
	}
	if in.Hue != "" {
		if err := groupable(in.Hue); err != nil {
			return nil, err
		}
	}
	view, err := uc.View(ctx, in.Filters)
	if err != nil {
		return nil, err
	}
	return engine.Scatter(view, in.X, in.Y, in.Hue), nil
}

// Dashboard computes every panel of the dashboard over one filtered view.
func (uc *QueryInsightsUseCase) Dashboard(ctx context.Context, f Filters) (*Dashboard, error) {
	view, err := uc.View(ctx, f)
	if err != nil {
		return nil, err
	}
	return &Dashboard{
		Summary:                engine.Summarize(view),
		SatisfactionHistogram:  engine.HistogramOf(view, domain.ColSatisfactionScore, 10),
		MonthlyFeeHistogram:    engine.HistogramOf(view, domain.ColMonthlyFee, 20),
		SatisfactionByRegion:   engine.GroupedDistribution(view, domain.ColRegion, domain.ColSatisfactionScore),
		SatisfactionByEduLevel: engine.GroupedDistribution(view, domain.ColEducationLevel, domain.ColSatisfactionScore),
		SatisfactionByOutcome: engine.GroupedDistribution(
			engine.DropMissing(view, domain.ColCourseCompletionStatus),
			domain.ColCourseCompletionStatus, domain.ColSatisfactionScore),
		GenderEnrollment:       engine.CrossTabulate(view, domain.ColGender, domain.ColCourseEnrolled),
		AdChannelSatisfaction:  engine.GroupedMean(view, domain.ColAdChannel, domain.ColSatisfactionScore),
		ReferralSatisfaction:   engine.GroupedMean(view, domain.ColReferralCount, domain.ColSatisfactionScore),
		Correlation:            engine.Correlation(view, domain.NumericColumns()),
		InterestVsSatisfaction: engine.Scatter(view, domain.ColInterestScore, domain.ColSatisfactionScore, domain.ColCourseEnrolled),
	}, nil
}

func filterSpec(f Filters) (domain.FilterSpec, error) {
	for col := range f {
		c, err := lookup(col)
		if err != nil {
			return domain.FilterSpec{}, err
		}
		if !c.Filterable() {
			return domain.FilterSpec{}, fmt.Errorf("%w: %s", ErrNotFilterable, col)
		}
	}
	return domain.FilterSpecFromMap(f), nil
}

func lookup(name string) (domain.Column, error) {
	c, ok := domain.LookupColumn(name)
	if !ok {
		return domain.Column{}, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	return c, nil
}

func groupable(name string) error {
	c, err := lookup(name)
	if err != nil {
		return err
	}
	if !c.Groupable() {
		return fmt.Errorf("%w: %s", ErrNotGroupable, name)
	}
	return nil
}

func numeric(name string) error {
	c, err := lookup(name)
	if err != nil {
		return err
	}
	if c.Kind != domain.KindNumeric {
		return fmt.Errorf("%w: %s", ErrNotNumeric, name)
	}
	return nil
}

// IsValidationError reports whether err was caused by a bad request rather
// than by the service.
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrUnknownColumn, ErrNotFilterable, ErrNotGroupable, ErrNotNumeric,
		ErrInvalidBins, ErrInvalidPage, ErrInvalidScope,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
