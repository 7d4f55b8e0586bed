package mapper

import (
	"sentinel-kyc-be/internal/entity"
	"sentinel-kyc-be/internal/model"
)

type ActivityLogMapper struct{}

func NewActivityLogMapper() *ActivityLogMapper {
	return &ActivityLogMapper{}
}

func (m *ActivityLogMapper) ToEntity(e *model.ActivityLog) *entity.ActivityLog {
	if e == nil {
		return nil
	}
	return &entity.ActivityLog{
		Id:          e.Id,
		Action:      e.Action,
		AnalystName: e.AnalystName,
		CreatedAt:   e.CreatedAt,
	}
}

func (m *ActivityLogMapper) ToModel(e *entity.ActivityLog) *model.ActivityLog {
	if e == nil {
		return nil
	}
	return &model.ActivityLog{
		Id:          e.Id,
		Action:      e.Action,
		AnalystName: e.AnalystName,
		CreatedAt:   e.CreatedAt,
	}
}

func (m *ActivityLogMapper) ToEntities(entries []*model.ActivityLog) []*entity.ActivityLog {
	entities := make([]*entity.ActivityLog, len(entries))
	for i, e := range entries {
		entities[i] = m.ToEntity(e)
	}
	return entities
}

type AnalystMapper struct{}

func NewAnalystMapper() *AnalystMapper {
	return &AnalystMapper{}
}

func (m *AnalystMapper) ToEntity(a *model.Analyst) *entity.Analyst {
	if a == nil {
		return nil
	}
	return &entity.Analyst{Id: a.Id, Name: a.Name, Role: a.Role}
}

func (m *AnalystMapper) ToModel(a *entity.Analyst) *model.Analyst {
	if a == nil {
		return nil
	}
	return &model.Analyst{Id: a.Id, Name: a.Name, Role: a.Role}
}

func (m *AnalystMapper) ToEntities(analysts []*model.Analyst) []*entity.Analyst {
	entities := make([]*entity.Analyst, len(analysts))
	for i, a := range analysts {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
