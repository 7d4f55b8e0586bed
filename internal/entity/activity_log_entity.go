package entity

import (
	"time"

	"github.com/google/uuid"
)

type ActivityLog struct {
	Id          uuid.UUID
	Action      string
	AnalystName string
	CreatedAt   time.Time
}

type Analyst struct {
	Id   uuid.UUID
	Name string
	Role string
}
