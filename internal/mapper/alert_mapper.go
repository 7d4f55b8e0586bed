package mapper

import (
	"sentinel-kyc-be/internal/entity"
	"sentinel-kyc-be/internal/model"
)

type AlertMapper struct {
	customerMapper *CustomerMapper
}

func NewAlertMapper() *AlertMapper {
	return &AlertMapper{customerMapper: NewCustomerMapper()}
}

func (m *AlertMapper) ToEntity(a *model.Alert) *entity.Alert {
	if a == nil {
		return nil
	}
	return &entity.Alert{
		Id:              a.Id,
		AlertId:         a.AlertId,
		AlertType:       a.AlertType,
		CustomerId:      a.CustomerId,
		Severity:        a.Severity,
		Status:          a.Status,
		CreatedDate:     a.CreatedDate,
		AssignedAnalyst: a.AssignedAnalyst,
		Description:     a.Description,
		Customer:        m.customerMapper.ToEntity(a.Customer),
	}
}

func (m *AlertMapper) ToModel(a *entity.Alert) *model.Alert {
	if a == nil {
		return nil
	}
	return &model.Alert{
		Id:              a.Id,
		AlertId:         a.AlertId,
		AlertType:       a.AlertType,
		CustomerId:      a.CustomerId,
		Severity:        a.Severity,
		Status:          a.Status,
		CreatedDate:     a.CreatedDate,
		AssignedAnalyst: a.AssignedAnalyst,
		Description:     a.Description,
	}
}

func (m *AlertMapper) ToEntities(alerts []*model.Alert) []*entity.Alert {
	entities := make([]*entity.Alert, len(alerts))
	for i, a := range alerts {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
