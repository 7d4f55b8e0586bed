package mapper

import (
	"encoding/json"

	"sentinel-kyc-be/internal/entity"
	"sentinel-kyc-be/internal/model"

	"gorm.io/datatypes"
)

type CustomerMapper struct{}

func NewCustomerMapper() *CustomerMapper {
	return &CustomerMapper{}
}

func (m *CustomerMapper) ToEntity(c *model.Customer) *entity.Customer {
	if c == nil {
		return nil
	}

	// RiskFactors is stored as a jsonb array of strings
	var factors []string
	if len(c.RiskFactors) > 0 {
		_ = json.Unmarshal(c.RiskFactors, &factors)
	}

	return &entity.Customer{
		Id:              c.Id,
		CustomerId:      c.CustomerId,
		LegalName:       c.LegalName,
		BusinessType:    c.BusinessType,
		Jurisdiction:    c.Jurisdiction,
		RiskTier:        c.RiskTier,
		KycStatus:       c.KycStatus,
		OnboardingDate:  c.OnboardingDate,
		LastReviewDate:  c.LastReviewDate,
		NextReviewDue:   c.NextReviewDue,
		AssignedAnalyst: c.AssignedAnalyst,
		RiskFactors:     factors,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func (m *CustomerMapper) ToModel(c *entity.Customer) *model.Customer {
	if c == nil {
		return nil
	}

	var factors datatypes.JSON
	if c.RiskFactors != nil {
		raw, _ := json.Marshal(c.RiskFactors)
		factors = datatypes.JSON(raw)
	}

	return &model.Customer{
		Id:              c.Id,
		CustomerId:      c.CustomerId,
		LegalName:       c.LegalName,
		BusinessType:    c.BusinessType,
		Jurisdiction:    c.Jurisdiction,
		RiskTier:        c.RiskTier,
		KycStatus:       c.KycStatus,
		OnboardingDate:  c.OnboardingDate,
		LastReviewDate:  c.LastReviewDate,
		NextReviewDue:   c.NextReviewDue,
		AssignedAnalyst: c.AssignedAnalyst,
		RiskFactors:     factors,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func (m *CustomerMapper) ToEntities(customers []*model.Customer) []*entity.Customer {
	entities := make([]*entity.Customer, len(customers))
	for i, c := range customers {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
