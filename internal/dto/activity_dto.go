package dto

import "github.com/google/uuid"

type ActivityLogResponse struct {
	Id          uuid.UUID `json:"id"`
	Action      string    `json:"action"`
	AnalystName string    `json:"analyst_name"`
	CreatedAt   *string   `json:"created_at"`
}
