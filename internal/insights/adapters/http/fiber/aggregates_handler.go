package fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"customer-insights-service/internal/insights/core/usecase"
)

// GroupedMean godoc
// @Summary Mean of a numeric column per group
// @Description Groups absent from the filtered view are absent from the result
// @Tags Aggregates
// @Accept json
// @Produce json
// @Param request body GroupedRequest true "Filter, group column and numeric column"
// @Success 200 {object} GroupedMeanResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /aggregates/grouped-mean [post]
func (h *InsightsHandler) GroupedMean(c *fiber.Ctx) error {
	var req GroupedRequest
	if !h.bind(c, &req) {
		return nil
	}

	groups, err := h.uc.GroupedMean(c.UserContext(), usecase.GroupedInput{
		Filters: usecase.Filters(req.Filters),
		GroupBy: req.GroupBy,
		Value:   req.Value,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(toGroupedMean(req.GroupBy, req.Value, groups))
}

// Distribution godoc
// @Summary Box-plot statistics per group
// @Description Count, min, quartiles, max and mean of a numeric column per group
// @Tags Aggregates
// @Accept json
// @Produce json
// @Param request body GroupedRequest true "Filter, group column, numeric column and drop_missing"
// @Success 200 {object} DistributionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /aggregates/distribution [post]
func (h *InsightsHandler) Distribution(c *fiber.Ctx) error {
	var req GroupedRequest
	if !h.bind(c, &req) {
		return nil
	}

	groups, err := h.uc.Distribution(c.UserContext(), usecase.GroupedInput{
		Filters:     usecase.Filters(req.Filters),
		GroupBy:     req.GroupBy,
		Value:       req.Value,
		DropMissing: req.DropMissing,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(toDistribution(req.GroupBy, req.Value, groups))
}

// CrossTab godoc
// @Summary Count per (row, column) value pair
// @Description Sparse: pairs with no records are omitted
// @Tags Aggregates
// @Accept json
// @Produce json
// @Param request body CrossTabRequest true "Filter and the two columns"
// @Success 200 {object} CrossTabResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /aggregates/crosstab [post]
func (h *InsightsHandler) CrossTab(c *fiber.Ctx) error {
	var req CrossTabRequest
	if !h.bind(c, &req) {
		return nil
	}

	t, err := h.uc.CrossTab(c.UserContext(), usecase.CrossTabInput{
		Filters: usecase.Filters(req.Filters),
		Row:     req.Row,
		Column:  req.Column,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(toCrossTab(req.Row, req.Column, t))
}

// Correlation godoc
// @Summary Pearson correlation matrix
// @Description Symmetric matrix over the requested numeric columns (all numeric columns when omitted); undefined coefficients are null
// @Tags Aggregates
// @Accept json
// @Produce json
// @Param request body CorrelationRequest false "Filter and columns"
// @Success 200 {object} CorrelationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /aggregates/correlation [post]
func (h *InsightsHandler) Correlation(c *fiber.Ctx) error {
	var req CorrelationRequest
	if !h.bind(c, &req) {
		return nil
	}

	m, err := h.uc.Correlation(c.UserContext(), usecase.CorrelationInput{
		Filters: usecase.Filters(req.Filters),
		Columns: req.Columns,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(toCorrelation(m))
}

// Histogram godoc
// @Summary Equal-width histogram of a numeric column
// @Tags Aggregates
// @Accept json
// @Produce json
// @Param request body HistogramRequest true "Filter, column and bin count (default 10)"
// @Success 200 {object} HistogramResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /aggregates/histogram [post]
func (h *InsightsHandler) Histogram(c *fiber.Ctx) error {
	var req HistogramRequest
	if !h.bind(c, &req) {
		return nil
	}

	hist, err := h.uc.Histogram(c.UserContext(), usecase.HistogramInput{
		Filters: usecase.Filters(req.Filters),
		Column:  req.Column,
		Bins:    req.Bins,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(toHistogram(hist))
}

// Scatter godoc
// @Summary Scatter points of two numeric columns
// @Tags Aggregates
// @Accept json
// @Produce json
// @Param request body ScatterRequest true "Filter, x, y and optional hue column"
// @Success 200 {object} ScatterResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /aggregates/scatter [post]
func (h *InsightsHandler) Scatter(c *fiber.Ctx) error {
	var req ScatterRequest
	if !h.bind(c, &req) {
		return nil
	}

	pts, err := h.uc.Scatter(c.UserContext(), usecase.ScatterInput{
		Filters: usecase.Filters(req.Filters),
		X:       req.X,
		Y:       req.Y,
		Hue:     req.Hue,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(toScatter(req.X, req.Y, req.Hue, pts))
}
