package contract

import (
	"context"

	"sentinel-kyc-be/internal/entity"
	"sentinel-kyc-be/internal/repository/specification"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	Update(ctx context.Context, customer *entity.Customer) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Customer, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Customer, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	DistinctJurisdictions(ctx context.Context) ([]string, error)
	CountByRiskTier(ctx context.Context) (map[string]int64, error)
}
