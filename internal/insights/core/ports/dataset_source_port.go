package ports

import (
	"context"

	"customer-insights-service/internal/insights/core/domain"
)

type DatasetSource interface {
	// Load reads the whole source once. Failures are *domain.DataLoadError
	// and match domain.ErrDataLoad.
	Load(ctx context.Context) (*domain.Dataset, error)
}
