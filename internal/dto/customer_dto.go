package dto

import "github.com/google/uuid"

type CustomerListQuery struct {
	Search       string `query:"search"`
	RiskTier     string `query:"risk_tier"`
	KycStatus    string `query:"kyc_status"`
	Jurisdiction string `query:"jurisdiction"`
	SortBy       string `query:"sort_by"`
	SortOrder    string `query:"sort_order"`
}

type CustomerResponse struct {
	Id              uuid.UUID `json:"id"`
	CustomerId      string    `json:"customer_id"`
	LegalName       string    `json:"legal_name"`
	BusinessType    string    `json:"business_type"`
	Jurisdiction    string    `json:"jurisdiction"`
	RiskTier        string    `json:"risk_tier"`
	KycStatus       string    `json:"kyc_status"`
	OnboardingDate  *string   `json:"onboarding_date"`
	LastReviewDate  *string   `json:"last_review_date"`
	NextReviewDue   *string   `json:"next_review_due"`
	AssignedAnalyst string    `json:"assigned_analyst"`
	RiskFactors     []string  `json:"risk_factors"`
}
