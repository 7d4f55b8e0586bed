package dto

import "github.com/google/uuid"

type SearchCustomerHit struct {
	Id           uuid.UUID `json:"id"`
	CustomerId   string    `json:"customer_id"`
	LegalName    string    `json:"legal_name"`
	RiskTier     string    `json:"risk_tier"`
	KycStatus    string    `json:"kyc_status"`
	BusinessType string    `json:"business_type"`
}

type SearchAlertHit struct {
	Id           uuid.UUID `json:"id"`
	AlertId      string    `json:"alert_id"`
	AlertType    string    `json:"alert_type"`
	Severity     string    `json:"severity"`
	Status       string    `json:"status"`
	CustomerName string    `json:"customer_name"`
	CustomerCid  string    `json:"customer_cid"`
}

type SearchCaseHit struct {
	Id           uuid.UUID `json:"id"`
	CaseId       string    `json:"case_id"`
	CaseType     string    `json:"case_type"`
	Priority     string    `json:"priority"`
	Status       string    `json:"status"`
	CustomerName string    `json:"customer_name"`
	CustomerCid  string    `json:"customer_cid"`
}

type SearchDocumentHit struct {
	Id                 uuid.UUID `json:"id"`
	DocumentId         string    `json:"document_id"`
	DocType            string    `json:"doc_type"`
	VerificationStatus string    `json:"verification_status"`
	CustomerName       string    `json:"customer_name"`
	CustomerCid        string    `json:"customer_cid"`
}

type SearchResponse struct {
	Customers []SearchCustomerHit `json:"customers"`
	Alerts    []SearchAlertHit    `json:"alerts"`
	Cases     []SearchCaseHit     `json:"cases"`
	Documents []SearchDocumentHit `json:"documents"`
}
