package dto

import "github.com/google/uuid"

type DocumentListQuery struct {
	Search    string `query:"search"`
	Status    string `query:"status"`
	DocType   string `query:"doc_type"`
	SortBy    string `query:"sort_by"`
	SortOrder string `query:"sort_order"`
}

type DocumentResponse struct {
	Id                 uuid.UUID `json:"id"`
	DocumentId         string    `json:"document_id"`
	DocType            string    `json:"doc_type"`
	CustomerId         string    `json:"customer_id"`
	CustomerName       string    `json:"customer_name"`
	IssueDate          *string   `json:"issue_date"`
	ExpiryDate         *string   `json:"expiry_date"`
	VerificationStatus string    `json:"verification_status"`
}
