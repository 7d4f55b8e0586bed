package implementation

import (
	"context"
	"errors"

	"sentinel-kyc-be/internal/entity"
	"sentinel-kyc-be/internal/mapper"
	"sentinel-kyc-be/internal/model"
	"sentinel-kyc-be/internal/repository/contract"
	"sentinel-kyc-be/internal/repository/specification"

	"gorm.io/gorm"
)

type CaseRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CaseMapper
}

func NewCaseRepository(db *gorm.DB) contract.CaseRepository {
	return &CaseRepositoryImpl{
		db:     db,
		mapper: mapper.NewCaseMapper(),
	}
}

func (r *CaseRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CaseRepositoryImpl) Create(ctx context.Context, kase *entity.Case) error {
	m := r.mapper.ToModel(kase)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*kase = *r.mapper.ToEntity(m)
	return nil
}

func (r *CaseRepositoryImpl) Update(ctx context.Context, kase *entity.Case) error {
	m := r.mapper.ToModel(kase)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*kase = *r.mapper.ToEntity(m)
	return nil
}

func (r *CaseRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Case, error) {
	var m model.Case
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Customer"), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CaseRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Case, error) {
	var models []*model.Case
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Customer"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CaseRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Case{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *CaseRepositoryImpl) DistinctTypes(ctx context.Context) ([]string, error) {
	var values []string
	err := r.db.WithContext(ctx).
		Model(&model.Case{}).
		Distinct("case_type").
		Order("case_type").
		Pluck("case_type", &values).Error
	if err != nil {
		return nil, err
	}
	return values, nil
}

type CaseNoteRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CaseNoteMapper
}

func NewCaseNoteRepository(db *gorm.DB) contract.CaseNoteRepository {
	return &CaseNoteRepositoryImpl{
		db:     db,
		mapper: mapper.NewCaseNoteMapper(),
	}
}

func (r *CaseNoteRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CaseNoteRepositoryImpl) Create(ctx context.Context, note *entity.CaseNote) error {
	m := r.mapper.ToModel(note)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*note = *r.mapper.ToEntity(m)
	return nil
}

func (r *CaseNoteRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CaseNote, error) {
	var models []*model.CaseNote
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
