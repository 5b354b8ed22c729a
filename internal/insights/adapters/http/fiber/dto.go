package fiber

import (
	"math"

	"customer-insights-service/internal/insights/core/domain"
	"customer-insights-service/internal/insights/core/usecase"
)

// Filters maps a categorical column to its allowed values.
// An empty array matches nothing; an omitted column is unconstrained.
type Filters map[string][]string

// FilterRequest is the body of every view-scoped endpoint.
// @Description Column filter keyed by categorical column name
type FilterRequest struct {
	Filters Filters `json:"filters"`
}

type RecordsRequest struct {
	Filters Filters `json:"filters"`
	Offset  int     `json:"offset" validate:"gte=0" example:"0"`
	Limit   int     `json:"limit" validate:"gte=0,lte=1000" example:"100"`
}

type ExportRequest struct {
	Filters Filters `json:"filters"`
	Format  string  `json:"format" validate:"omitempty,oneof=csv xlsx CSV XLSX" example:"csv"`
}

type SummaryRequest struct {
	Filters Filters `json:"filters"`
	Scope   string  `json:"scope" validate:"omitempty,oneof=view dataset" example:"view"`
}

type GroupedRequest struct {
	Filters     Filters `json:"filters"`
	GroupBy     string  `json:"group_by" validate:"required" example:"Region"`
	Value       string  `json:"value" validate:"required" example:"Satisfaction_Score"`
	DropMissing bool    `json:"drop_missing"`
}

type CrossTabRequest struct {
	Filters Filters `json:"filters"`
	Row     string  `json:"row" validate:"required" example:"Gender"`
	Column  string  `json:"column" validate:"required" example:"Course_Enrolled"`
}

type CorrelationRequest struct {
	Filters Filters  `json:"filters"`
	Columns []string `json:"columns"`
}

type HistogramRequest struct {
	Filters Filters `json:"filters"`
	Column  string  `json:"column" validate:"required" example:"Monthly_Fee"`
	Bins    int     `json:"bins" validate:"gte=0,lte=100" example:"20"`
}

type ScatterRequest struct {
	Filters Filters `json:"filters"`
	X       string  `json:"x" validate:"required" example:"Interest_Score"`
	Y       string  `json:"y" validate:"required" example:"Satisfaction_Score"`
	Hue     string  `json:"hue" example:"Course_Enrolled"`
}

type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Records int    `json:"records" example:"10000"`
}

type ColumnResponse struct {
	Name       string `json:"name" example:"Region"`
	Kind       string `json:"kind" example:"categorical"`
	Required   bool   `json:"required"`
	Filterable bool   `json:"filterable"`
	Groupable  bool   `json:"groupable"`
}

type ValuesResponse struct {
	Column string   `json:"column" example:"Region"`
	Values []string `json:"values"`
}

type RecordsResponse struct {
	Total   int              `json:"total" example:"2500"`
	Offset  int              `json:"offset" example:"0"`
	Count   int              `json:"count" example:"100"`
	Records []map[string]any `json:"records"`
}

// SummaryResponse carries a null mean_satisfaction when no record matched.
type SummaryResponse struct {
	TotalCount       int      `json:"total_count" example:"2500"`
	SignupRate       float64  `json:"signup_rate" example:"0.42"`
	EnrollmentRate   float64  `json:"enrollment_rate" example:"0.31"`
	MeanSatisfaction *float64 `json:"mean_satisfaction" example:"6.8"`
}

type GroupMeanResponse struct {
	Key   string   `json:"key" example:"North"`
	Count int      `json:"count" example:"512"`
	Mean  *float64 `json:"mean" example:"7.1"`
}

type GroupedMeanResponse struct {
	GroupBy string              `json:"group_by"`
	Value   string              `json:"value"`
	Groups  []GroupMeanResponse `json:"groups"`
}

type GroupDistributionResponse struct {
	Key    string  `json:"key" example:"North"`
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
}

type DistributionResponse struct {
	GroupBy string                      `json:"group_by"`
	Value   string                      `json:"value"`
	Groups  []GroupDistributionResponse `json:"groups"`
}

type CrossCellResponse struct {
	Row   string `json:"row" example:"Female"`
	Col   string `json:"col" example:"Yes"`
	Count int    `json:"count" example:"120"`
}

type CrossTabResponse struct {
	Row    string              `json:"row"`
	Column string              `json:"column"`
	Cells  []CrossCellResponse `json:"cells"`
}

// CorrelationResponse holds the matrix in columns order; undefined
// coefficients are null.
type CorrelationResponse struct {
	Columns []string     `json:"columns"`
	Matrix  [][]*float64 `json:"matrix"`
}

type HistogramBinResponse struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

type HistogramResponse struct {
	Column string                 `json:"column"`
	Bins   []HistogramBinResponse `json:"bins"`
}

type PointResponse struct {
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
	Hue string  `json:"hue,omitempty"`
}

type ScatterResponse struct {
	X      string          `json:"x"`
	Y      string          `json:"y"`
	Hue    string          `json:"hue,omitempty"`
	Points []PointResponse `json:"points"`
}

type DashboardResponse struct {
	Summary                SummaryResponse      `json:"summary"`
	SatisfactionHistogram  HistogramResponse    `json:"satisfaction_histogram"`
	MonthlyFeeHistogram    HistogramResponse    `json:"monthly_fee_histogram"`
	SatisfactionByRegion   DistributionResponse `json:"satisfaction_by_region"`
	SatisfactionByEduLevel DistributionResponse `json:"satisfaction_by_education_level"`
	SatisfactionByOutcome  DistributionResponse `json:"satisfaction_by_completion_status"`
	GenderEnrollment       CrossTabResponse     `json:"gender_enrollment"`
	AdChannelSatisfaction  GroupedMeanResponse  `json:"ad_channel_satisfaction"`
	ReferralSatisfaction   GroupedMeanResponse  `json:"referral_satisfaction"`
	Correlation            CorrelationResponse  `json:"correlation"`
	InterestVsSatisfaction ScatterResponse      `json:"interest_vs_satisfaction"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message" example:"unknown column: \"Country\""`
}

// nullable maps NaN and infinities to JSON null.
func nullable(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func toRecord(r domain.Record) map[string]any {
	out := make(map[string]any, len(domain.Columns()))
	for _, c := range domain.Columns() {
		if v, ok := r.Number(c.Name); ok {
			out[c.Name] = v
			continue
		}
		out[c.Name], _ = r.Text(c.Name)
	}
	return out
}

func toRecords(p *usecase.RecordsPage) RecordsResponse {
	resp := RecordsResponse{
		Total:   p.Total,
		Offset:  p.Offset,
		Count:   len(p.Records),
		Records: make([]map[string]any, 0, len(p.Records)),
	}
	for _, r := range p.Records {
		resp.Records = append(resp.Records, toRecord(r))
	}
	return resp
}

func toSummary(s domain.Summary) SummaryResponse {
	return SummaryResponse{
		TotalCount:       s.TotalCount,
		SignupRate:       s.SignupRate,
		EnrollmentRate:   s.EnrollmentRate,
		MeanSatisfaction: nullable(s.MeanSatisfaction),
	}
}

func toGroupedMean(groupBy, value string, groups []domain.GroupMean) GroupedMeanResponse {
	resp := GroupedMeanResponse{
		GroupBy: groupBy,
		Value:   value,
		Groups:  make([]GroupMeanResponse, 0, len(groups)),
	}
	for _, g := range groups {
		resp.Groups = append(resp.Groups, GroupMeanResponse{
			Key:   g.Key,
			Count: g.Count,
			Mean:  nullable(g.Mean),
		})
	}
	return resp
}

func toDistribution(groupBy, value string, groups []domain.GroupDistribution) DistributionResponse {
	resp := DistributionResponse{
		GroupBy: groupBy,
		Value:   value,
		Groups:  make([]GroupDistributionResponse, 0, len(groups)),
	}
	for _, g := range groups {
		resp.Groups = append(resp.Groups, GroupDistributionResponse{
			Key:    g.Key,
			Count:  g.Count,
			Min:    g.Min,
			Q1:     g.Q1,
			Median: g.Median,
			Q3:     g.Q3,
			Max:    g.Max,
			Mean:   g.Mean,
		})
	}
	return resp
}

func toCrossTab(row, col string, t domain.CrossTab) CrossTabResponse {
	cells := t.Cells()
	resp := CrossTabResponse{
		Row:    row,
		Column: col,
		Cells:  make([]CrossCellResponse, 0, len(cells)),
	}
	for _, c := range cells {
		resp.Cells = append(resp.Cells, CrossCellResponse{Row: c.Row, Col: c.Col, Count: c.Count})
	}
	return resp
}

func toCorrelation(m domain.CorrelationMatrix) CorrelationResponse {
	grid := m.Grid()
	resp := CorrelationResponse{
		Columns: m.Columns,
		Matrix:  make([][]*float64, len(grid)),
	}
	for i, row := range grid {
		resp.Matrix[i] = make([]*float64, len(row))
		for j, v := range row {
			resp.Matrix[i][j] = nullable(v)
		}
	}
	return resp
}

func toHistogram(h domain.Histogram) HistogramResponse {
	resp := HistogramResponse{
		Column: h.Column,
		Bins:   make([]HistogramBinResponse, 0, len(h.Bins)),
	}
	for _, b := range h.Bins {
		resp.Bins = append(resp.Bins, HistogramBinResponse{Lower: b.Lower, Upper: b.Upper, Count: b.Count})
	}
	return resp
}

func toScatter(x, y, hue string, pts []domain.Point) ScatterResponse {
	resp := ScatterResponse{
		X:      x,
		Y:      y,
		Hue:    hue,
		Points: make([]PointResponse, 0, len(pts)),
	}
	for _, p := range pts {
		resp.Points = append(resp.Points, PointResponse{X: p.X, Y: p.Y, Hue: p.Hue})
	}
	return resp
}

func toDashboard(d *usecase.Dashboard) DashboardResponse {
	return DashboardResponse{
		Summary:               toSummary(d.Summary),
		SatisfactionHistogram: toHistogram(d.SatisfactionHistogram),
		MonthlyFeeHistogram:   toHistogram(d.MonthlyFeeHistogram),
		SatisfactionByRegion: toDistribution(domain.ColRegion, domain.ColSatisfactionScore,
			d.SatisfactionByRegion),
		SatisfactionByEduLevel: toDistribution(domain.ColEducationLevel, domain.ColSatisfactionScore,
			d.SatisfactionByEduLevel),
		SatisfactionByOutcome: toDistribution(domain.ColCourseCompletionStatus, domain.ColSatisfactionScore,
			d.SatisfactionByOutcome),
		GenderEnrollment: toCrossTab(domain.ColGender, domain.ColCourseEnrolled, d.GenderEnrollment),
		AdChannelSatisfaction: toGroupedMean(domain.ColAdChannel, domain.ColSatisfactionScore,
			d.AdChannelSatisfaction),
		ReferralSatisfaction: toGroupedMean(domain.ColReferralCount, domain.ColSatisfactionScore,
			d.ReferralSatisfaction),
		Correlation: toCorrelation(d.Correlation),
		InterestVsSatisfaction: toScatter(domain.ColInterestScore, domain.ColSatisfactionScore,
			domain.ColCourseEnrolled, d.InterestVsSatisfaction),
	}
}
