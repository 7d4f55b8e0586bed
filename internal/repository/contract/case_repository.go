package contract

import (
	"context"

	"sentinel-kyc-be/internal/entity"
	"sentinel-kyc-be/internal/repository/specification"
)

type CaseRepository interface {
	Create(ctx context.Context, kase *entity.Case) error
	Update(ctx context.Context, kase *entity.Case) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Case, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Case, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	DistinctTypes(ctx context.Context) ([]string, error)
}

type CaseNoteRepository interface {
	Create(ctx context.Context, note *entity.CaseNote) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CaseNote, error)
}
