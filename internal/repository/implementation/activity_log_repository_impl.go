package implementation

import (
	"context"

	"sentinel-kyc-be/internal/entity"
	"sentinel-kyc-be/internal/mapper"
	"sentinel-kyc-be/internal/model"
	"sentinel-kyc-be/internal/repository/contract"
	"sentinel-kyc-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ActivityLogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ActivityLogMapper
}

func NewActivityLogRepository(db *gorm.DB) contract.ActivityLogRepository {
	return &ActivityLogRepositoryImpl{
		db:     db,
		mapper: mapper.NewActivityLogMapper(),
	}
}

func (r *ActivityLogRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ActivityLogRepositoryImpl) Create(ctx context.Context, entry *entity.ActivityLog) error {
	m := r.mapper.ToModel(entry)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*entry = *r.mapper.ToEntity(m)
	return nil
}

func (r *ActivityLogRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ActivityLog, error) {
	var models []*model.ActivityLog
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ActivityLogRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ActivityLog{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type AnalystRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AnalystMapper
}

func NewAnalystRepository(db *gorm.DB) contract.AnalystRepository {
	return &AnalystRepositoryImpl{
		db:     db,
		mapper: mapper.NewAnalystMapper(),
	}
}

func (r *AnalystRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AnalystRepositoryImpl) Create(ctx context.Context, analyst *entity.Analyst) error {
	m := r.mapper.ToModel(analyst)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*analyst = *r.mapper.ToEntity(m)
	return nil
}

func (r *AnalystRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Analyst, error) {
	var models []*model.Analyst
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *AnalystRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Analyst{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
