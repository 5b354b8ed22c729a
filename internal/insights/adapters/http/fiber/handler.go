package fiber

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"customer-insights-service/internal/insights/adapters/export"
	"customer-insights-service/internal/insights/core/domain"
	"customer-insights-service/internal/insights/core/usecase"
)

type QueryInsightsUseCase interface {
	DatasetSize() int
	Columns() []domain.Column
	DistinctValues(ctx context.Context, column string) ([]string, error)
	View(ctx context.Context, f usecase.Filters) (domain.View, error)
	Records(ctx context.Context, in usecase.RecordsInput) (*usecase.RecordsPage, error)
	Summary(ctx context.Context, in usecase.SummaryInput) (domain.Summary, error)
	GroupedMean(ctx context.Context, in usecase.GroupedInput) ([]domain.GroupMean, error)
	Distribution(ctx context.Context, in usecase.GroupedInput) ([]domain.GroupDistribution, error)
	CrossTab(ctx context.Context, in usecase.CrossTabInput) (domain.CrossTab, error)
	Correlation(ctx context.Context, in usecase.CorrelationInput) (domain.CorrelationMatrix, error)
	Histogram(ctx context.Context, in usecase.HistogramInput) (domain.Histogram, error)
	Scatter(ctx context.Context, in usecase.ScatterInput) ([]domain.Point, error)
	Dashboard(ctx context.Context, f usecase.Filters) (*usecase.Dashboard, error)
}

type InsightsHandler struct {
	uc       QueryInsightsUseCase
	validate *validator.Validate
	log      *slog.Logger
}

func NewInsightsHandler(uc QueryInsightsUseCase, log *slog.Logger) *InsightsHandler {
	if log == nil {
		log = slog.Default()
	}
	return &InsightsHandler{
		uc:       uc,
		validate: validator.New(),
		log:      log,
	}
}

// bind decodes an optional JSON body into req and validates it. An empty
// body leaves req at its zero value. It returns false after answering 400.
func (h *InsightsHandler) bind(c *fiber.Ctx, req any) bool {
	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			_ = c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_json",
				Message: err.Error(),
			})
			return false
		}
	}
	if err := h.validate.Struct(req); err != nil {
		_ = c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
		})
		return false
	}
	return true
}

func (h *InsightsHandler) fail(c *fiber.Ctx, err error) error {
	if usecase.IsValidationError(err) {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_query",
			Message: err.Error(),
		})
	}
	h.log.Error("request failed", "path", c.Path(), "error", err)
	return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
		Error: "internal_server_error",
	})
}

// Health godoc
// @Summary Liveness probe
// @Description Reports that the dataset is loaded and how many records it holds
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *InsightsHandler) Health(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(HealthResponse{
		Status:  "ok",
		Records: h.uc.DatasetSize(),
	})
}

// ListColumns godoc
// @Summary List recognized columns
// @Description Column catalogue with kind and whether each column can be filtered or grouped
// @Tags Columns
// @Produce json
// @Success 200 {array} ColumnResponse
// @Router /columns [get]
func (h *InsightsHandler) ListColumns(c *fiber.Ctx) error {
	cols := h.uc.Columns()
	resp := make([]ColumnResponse, 0, len(cols))
	for _, col := range cols {
		resp = append(resp, ColumnResponse{
			Name:       col.Name,
			Kind:       string(col.Kind),
			Required:   col.Required,
			Filterable: col.Filterable(),
			Groupable:  col.Groupable(),
		})
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// DistinctValues godoc
// @Summary Distinct values of a column
// @Description Sorted distinct values over the whole dataset, ignoring any filter
// @Tags Columns
// @Produce json
// @Param name path string true "Column name"
// @Success 200 {object} ValuesResponse
// @Failure 400 {object} ErrorResponse
// @Router /columns/{name}/values [get]
func (h *InsightsHandler) DistinctValues(c *fiber.Ctx) error {
	name := c.Params("name")
	values, err := h.uc.DistinctValues(c.UserContext(), name)
	if err != nil {
		return h.fail(c, err)
	}
	if values == nil {
		values = []string{}
	}
	return c.Status(http.StatusOK).JSON(ValuesResponse{Column: name, Values: values})
}

// Records godoc
// @Summary Page through filtered records
// @Description Returns one page of the filtered view and the total match count
// @Tags Records
// @Accept json
// @Produce json
// @Param request body RecordsRequest false "Filter and paging"
// @Success 200 {object} RecordsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /records [post]
func (h *InsightsHandler) Records(c *fiber.Ctx) error {
	var req RecordsRequest
	if !h.bind(c, &req) {
		return nil
	}

	page, err := h.uc.Records(c.UserContext(), usecase.RecordsInput{
		Filters: usecase.Filters(req.Filters),
		Offset:  req.Offset,
		Limit:   req.Limit,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(toRecords(page))
}

// ExportRecords godoc
// @Summary Download the filtered view
// @Description Streams every filtered record as CSV or XLSX
// @Tags Records
// @Accept json
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param request body ExportRequest false "Filter and format"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /records/export [post]
func (h *InsightsHandler) ExportRecords(c *fiber.Ctx) error {
	var req ExportRequest
	if !h.bind(c, &req) {
		return nil
	}

	format, err := export.ParseFormat(req.Format)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
		})
	}

	view, err := h.uc.View(c.UserContext(), usecase.Filters(req.Filters))
	if err != nil {
		return h.fail(c, err)
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, view); err != nil {
		return h.fail(c, err)
	}

	c.Attachment(format.FileName("customers"))
	c.Set(fiber.HeaderContentType, format.ContentType())
	return c.Status(http.StatusOK).Send(buf.Bytes())
}

// Summary godoc
// @Summary Headline metrics
// @Description Total count, signup rate, enrollment rate and mean satisfaction of the filtered view (or of the dataset with scope=dataset)
// @Tags Aggregates
// @Accept json
// @Produce json
// @Param request body SummaryRequest false "Filter and scope"
// @Success 200 {object} SummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /summary [post]
func (h *InsightsHandler) Summary(c *fiber.Ctx) error {
	var req SummaryRequest
	if !h.bind(c, &req) {
		return nil
	}

	s, err := h.uc.Summary(c.UserContext(), usecase.SummaryInput{
		Filters: usecase.Filters(req.Filters),
		Scope:   req.Scope,
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(toSummary(s))
}

// Dashboard godoc
// @Summary Every dashboard panel for one filter
// @Description Summary, distributions, cross-tab, grouped means, histograms, correlation and scatter in one response
// @Tags Aggregates
// @Accept json
// @Produce json
// @Param request body FilterRequest false "Filter"
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /dashboard [post]
func (h *InsightsHandler) Dashboard(c *fiber.Ctx) error {
	var req FilterRequest
	if !h.bind(c, &req) {
		return nil
	}

	d, err := h.uc.Dashboard(c.UserContext(), usecase.Filters(req.Filters))
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(http.StatusOK).JSON(toDashboard(d))
}
