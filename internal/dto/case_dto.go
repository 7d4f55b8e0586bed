package dto

import "github.com/google/uuid"

type CaseListQuery struct {
	Search    string `query:"search"`
	Status    string `query:"status"`
	CaseType  string `query:"case_type"`
	Priority  string `query:"priority"`
	SortBy    string `query:"sort_by"`
	SortOrder string `query:"sort_order"`
}

type CaseResponse struct {
	Id              uuid.UUID `json:"id"`
	CaseId          string    `json:"case_id"`
	CaseType        string    `json:"case_type"`
	CustomerId      string    `json:"customer_id"`
	CustomerName    string    `json:"customer_name"`
	Priority        string    `json:"priority"`
	Status          string    `json:"status"`
	OpenedDate      *string   `json:"opened_date"`
	DueDate         *string   `json:"due_date"`
	AssignedAnalyst string    `json:"assigned_analyst"`
}

type CaseNoteResponse struct {
	Id          uuid.UUID `json:"id"`
	Content     string    `json:"content"`
	AnalystName string    `json:"analyst_name"`
	CreatedAt   *string   `json:"created_at"`
}

type CreateCaseNoteRequest struct {
	Content string `json:"content" validate:"required"`
	Analyst string `json:"analyst"`
}
