package model

import (
	"time"

	"github.com/google/uuid"
)

type ActivityLog struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Action      string    `gorm:"type:text;not null"`
	AnalystName string    `gorm:"type:varchar(100);not null"`
	CreatedAt   time.Time `gorm:"not null;index"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}
