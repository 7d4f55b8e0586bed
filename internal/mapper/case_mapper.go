package mapper

import (
	"sentinel-kyc-be/internal/entity"
	"sentinel-kyc-be/internal/model"
)

type CaseMapper struct {
	customerMapper *CustomerMapper
}

func NewCaseMapper() *CaseMapper {
	return &CaseMapper{customerMapper: NewCustomerMapper()}
}

func (m *CaseMapper) ToEntity(c *model.Case) *entity.Case {
	if c == nil {
		return nil
	}
	return &entity.Case{
		Id:              c.Id,
		CaseId:          c.CaseId,
		CaseType:        c.CaseType,
		CustomerId:      c.CustomerId,
		Priority:        c.Priority,
		Status:          c.Status,
		OpenedDate:      c.OpenedDate,
		DueDate:         c.DueDate,
		AssignedAnalyst: c.AssignedAnalyst,
		Customer:        m.customerMapper.ToEntity(c.Customer),
	}
}

func (m *CaseMapper) ToModel(c *entity.Case) *model.Case {
	if c == nil {
		return nil
	}
	return &model.Case{
		Id:              c.Id,
		CaseId:          c.CaseId,
		CaseType:        c.CaseType,
		CustomerId:      c.CustomerId,
		Priority:        c.Priority,
		Status:          c.Status,
		OpenedDate:      c.OpenedDate,
		DueDate:         c.DueDate,
		AssignedAnalyst: c.AssignedAnalyst,
	}
}

func (m *CaseMapper) ToEntities(cases []*model.Case) []*entity.Case {
	entities := make([]*entity.Case, len(cases))
	for i, c := range cases {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

type CaseNoteMapper struct{}

func NewCaseNoteMapper() *CaseNoteMapper {
	return &CaseNoteMapper{}
}

func (m *CaseNoteMapper) ToEntity(n *model.CaseNote) *entity.CaseNote {
	if n == nil {
		return nil
	}
	return &entity.CaseNote{
		Id:          n.Id,
		CaseId:      n.CaseId,
		Content:     n.Content,
		AnalystName: n.AnalystName,
		CreatedAt:   n.CreatedAt,
	}
}

func (m *CaseNoteMapper) ToModel(n *entity.CaseNote) *model.CaseNote {
	if n == nil {
		return nil
	}
	return &model.CaseNote{
		Id:          n.Id,
		CaseId:      n.CaseId,
		Content:     n.Content,
		AnalystName: n.AnalystName,
		CreatedAt:   n.CreatedAt,
	}
}

func (m *CaseNoteMapper) ToEntities(notes []*model.CaseNote) []*entity.CaseNote {
	entities := make([]*entity.CaseNote, len(notes))
	for i, n := range notes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
