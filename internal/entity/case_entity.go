package entity

import (
	"time"

	"github.com/google/uuid"
)

type Case struct {
	Id              uuid.UUID
	CaseId          string
	CaseType        string
	CustomerId      uuid.UUID
	Priority        string
	Status          string
	OpenedDate      time.Time
	DueDate         *time.Time
	AssignedAnalyst string

	Customer *Customer
}

type CaseNote struct {
	Id          uuid.UUID
	CaseId      uuid.UUID
	Content     string
	AnalystName string
	CreatedAt   time.Time
}
