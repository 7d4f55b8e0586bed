package dto

import "github.com/google/uuid"

type AlertListQuery struct {
	Search    string `query:"search"`
	Severity  string `query:"severity"`
	Status    string `query:"status"`
	AlertType string `query:"alert_type"`
	SortBy    string `query:"sort_by"`
	SortOrder string `query:"sort_order"`
}

type AlertResponse struct {
	Id              uuid.UUID `json:"id"`
	AlertId         string    `json:"alert_id"`
	AlertType       string    `json:"alert_type"`
	CustomerId      string    `json:"customer_id"`
	CustomerName    string    `json:"customer_name"`
	Severity        string    `json:"severity"`
	Status          string    `json:"status"`
	CreatedDate     *string   `json:"created_date"`
	AssignedAnalyst string    `json:"assigned_analyst"`
	Description     string    `json:"description"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
