package fiber

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

// Middleware installs the request pipeline shared by every route.
func Middleware(app fiber.Router, log *slog.Logger, m RequestObserver) {
	app.Use(Recover(), RequestID(), RequestContext(), AccessLog(log))
	if m != nil {
		app.Use(Observe(m))
	}
}

func RegisterRoutes(app fiber.Router, h *InsightsHandler) {
	app.Get("/health", h.Health)

	app.Get("/columns", h.ListColumns)
	app.Get("/columns/:name/values", h.DistinctValues)

	app.Post("/records", h.Records)
	app.Post("/records/export", h.ExportRecords)

	app.Post("/summary", h.Summary)
	app.Post("/dashboard", h.Dashboard)

	agg := app.Group("/aggregates")
	agg.Post("/grouped-mean", h.GroupedMean)
	agg.Post("/distribution", h.Distribution)
	agg.Post("/crosstab", h.CrossTab)
	agg.Post("/correlation", h.Correlation)
	agg.Post("/histogram", h.Histogram)
	agg.Post("/scatter", h.Scatter)
}
