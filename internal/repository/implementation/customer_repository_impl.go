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

type CustomerRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CustomerMapper
}

func NewCustomerRepository(db *gorm.DB) contract.CustomerRepository {
	return &CustomerRepositoryImpl{
		db:     db,
		mapper: mapper.NewCustomerMapper(),
	}
}

func (r *CustomerRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CustomerRepositoryImpl) Create(ctx context.Context, customer *entity.Customer) error {
	m := r.mapper.ToModel(customer)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*customer = *r.mapper.ToEntity(m)
	return nil
}

func (r *CustomerRepositoryImpl) Update(ctx context.Context, customer *entity.Customer) error {
	m := r.mapper.ToModel(customer)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*customer = *r.mapper.ToEntity(m)
	return nil
}

func (r *CustomerRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Customer, error) {
	var m model.Customer
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CustomerRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Customer, error) {
	var models []*model.Customer
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CustomerRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Customer{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *CustomerRepositoryImpl) DistinctJurisdictions(ctx context.Context) ([]string, error) {
	var values []string
	err := r.db.WithContext(ctx).
		Model(&model.Customer{}).
		Distinct("jurisdiction").
		Order("jurisdiction").
		Pluck("jurisdiction", &values).Error
	if err != nil {
		return nil, err
	}
	return values, nil
}

func (r *CustomerRepositoryImpl) CountByRiskTier(ctx context.Context) (map[string]int64, error) {
	type tierCount struct {
		RiskTier string
		Count    int64
	}
	var rows []tierCount
	err := r.db.WithContext(ctx).
		Model(&model.Customer{}).
		Select("risk_tier, COUNT(id) AS count").
		Group("risk_tier").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.RiskTier] = row.Count
	}
	return counts, nil
}
