package contract

import (
	"context"

	"sentinel-kyc-be/internal/entity"
	"sentinel-kyc-be/internal/repository/specification"
)

type ActivityLogRepository interface {
	Create(ctx context.Context, entry *entity.ActivityLog) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ActivityLog, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type AnalystRepository interface {
	Create(ctx context.Context, analyst *entity.Analyst) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Analyst, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
