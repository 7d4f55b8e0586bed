package model

import (
	"time"

	"github.com/google/uuid"
)

type CaseNote struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CaseId      uuid.UUID `gorm:"type:uuid;not null;index"`
	Content     string    `gorm:"type:text;not null"`
	AnalystName string    `gorm:"type:varchar(100);not null"`
	CreatedAt   time.Time `gorm:"not null;index"`
}

func (CaseNote) TableName() string {
	return "case_notes"
}
