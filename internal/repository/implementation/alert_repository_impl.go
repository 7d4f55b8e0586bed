package implementation

import (
	"context"
	"errors"
	"time"

	"sentinel-kyc-be/internal/entity"
	"sentinel-kyc-be/internal/mapper"
	"sentinel-kyc-be/internal/model"
	"sentinel-kyc-be/internal/repository/contract"
	"sentinel-kyc-be/internal/repository/specification"

	"gorm.io/gorm"
)

type AlertRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AlertMapper
}

func NewAlertRepository(db *gorm.DB) contract.AlertRepository {
	return &AlertRepositoryImpl{
		db:     db,
		mapper: mapper.NewAlertMapper(),
	}
}

func (r *AlertRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AlertRepositoryImpl) Create(ctx context.Context, alert *entity.Alert) error {
	m := r.mapper.ToModel(alert)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*alert = *r.mapper.ToEntity(m)
	return nil
}

func (r *AlertRepositoryImpl) Update(ctx context.Context, alert *entity.Alert) error {
	m := r.mapper.ToModel(alert)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*alert = *r.mapper.ToEntity(m)
	return nil
}

func (r *AlertRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Alert, error) {
	var m model.Alert
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Customer"), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AlertRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Alert, error) {
	var models []*model.Alert
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("Customer"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *AlertRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Alert{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *AlertRepositoryImpl) DistinctTypes(ctx context.Context) ([]string, error) {
	var values []string
	err := r.db.WithContext(ctx).
		Model(&model.Alert{}).
		Distinct("alert_type").
		Order("alert_type").
		Pluck("alert_type", &values).Error
	if err != nil {
		return nil, err
	}
	return values, nil
}

func (r *AlertRepositoryImpl) MonthlySeverityCounts(ctx context.Context, since time.Time) ([]contract.MonthlySeverityCount, error) {
	type bucket struct {
		Year     int
		Month    int
		Severity string
		Count    int64
	}
	var rows []bucket
	err := r.db.WithContext(ctx).
		Model(&model.Alert{}).
		Select("EXTRACT(YEAR FROM created_date)::int AS year, EXTRACT(MONTH FROM created_date)::int AS month, severity, COUNT(id) AS count").
		Where("created_date >= ?", since).
		Group("1, 2, severity").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make([]contract.MonthlySeverityCount, len(rows))
	for i, row := range rows {
		counts[i] = contract.MonthlySeverityCount{
			Year:     row.Year,
			Month:    row.Month,
			Severity: row.Severity,
			Count:    row.Count,
		}
	}
	return counts, nil
}
