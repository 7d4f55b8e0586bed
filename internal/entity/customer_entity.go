package entity

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	Id              uuid.UUID
	CustomerId      string
	LegalName       string
	BusinessType    string
	Jurisdiction    string
	RiskTier        string
	KycStatus       string
	OnboardingDate  time.Time
	LastReviewDate  *time.Time
	NextReviewDue   *time.Time
	AssignedAnalyst string
	RiskFactors     []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
