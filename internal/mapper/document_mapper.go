package mapper

import (
	"sentinel-kyc-be/internal/entity"
	"sentinel-kyc-be/internal/model"
)

type DocumentMapper struct {
	customerMapper *CustomerMapper
}

func NewDocumentMapper() *DocumentMapper {
	return &DocumentMapper{customerMapper: NewCustomerMapper()}
}

func (m *DocumentMapper) ToEntity(d *model.Document) *entity.Document {
	if d == nil {
		return nil
	}
	return &entity.Document{
		Id:                 d.Id,
		DocumentId:         d.DocumentId,
		DocType:            d.DocType,
		CustomerId:         d.CustomerId,
		IssueDate:          d.IssueDate,
		ExpiryDate:         d.ExpiryDate,
		VerificationStatus: d.VerificationStatus,
		Customer:           m.customerMapper.ToEntity(d.Customer),
	}
}

func (m *DocumentMapper) ToModel(d *entity.Document) *model.Document {
	if d == nil {
		return nil
	}
	return &model.Document{
		Id:                 d.Id,
		DocumentId:         d.DocumentId,
		DocType:            d.DocType,
		CustomerId:         d.CustomerId,
		IssueDate:          d.IssueDate,
		ExpiryDate:         d.ExpiryDate,
		VerificationStatus: d.VerificationStatus,
	}
}

func (m *DocumentMapper) ToEntities(documents []*model.Document) []*entity.Document {
	entities := make([]*entity.Document, len(documents))
	for i, d := range documents {
		entities[i] = m.ToEntity(d)
	}
	return entities
}
