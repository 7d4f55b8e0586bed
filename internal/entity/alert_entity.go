package entity

import (
	"time"

	"github.com/google/uuid"
)

type Alert struct {
	Id              uuid.UUID
	AlertId         string
	AlertType       string
	CustomerId      uuid.UUID
	Severity        string
	Status          string
	CreatedDate     time.Time
	AssignedAnalyst string
	Description     string

	// Customer is populated when the repository preloads the owning customer.
	Customer *Customer
}
