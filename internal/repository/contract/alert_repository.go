package contract

import (
	"context"
	"time"

	"sentinel-kyc-be/internal/entity"
	"sentinel-kyc-be/internal/repository/specification"
)

// MonthlySeverityCount is one bucket of the alert trend aggregation.
type MonthlySeverityCount struct {
	Year     int
	Month    int
	Severity string
	Count    int64
}

type AlertRepository interface {
	Create(ctx context.Context, alert *entity.Alert) error
	Update(ctx context.Context, alert *entity.Alert) error
	// FindOne and FindAll preload the owning customer.
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Alert, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Alert, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	DistinctTypes(ctx context.Context) ([]string, error)
	MonthlySeverityCounts(ctx context.Context, since time.Time) ([]MonthlySeverityCount, error)
}
