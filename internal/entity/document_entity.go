package entity

import (
	"time"

	"github.com/google/uuid"
)

type Document struct {
	Id                 uuid.UUID
	DocumentId         string
	DocType            string
	CustomerId         uuid.UUID
	IssueDate          time.Time
	ExpiryDate         *time.Time
	VerificationStatus string

	Customer *Customer
}
