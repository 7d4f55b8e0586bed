package model

import (
	"time"

	"github.com/google/uuid"
)

type Case struct {
	Id              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CaseId          string     `gorm:"type:varchar(20);uniqueIndex;not null"`
	CaseType        string     `gorm:"type:varchar(100);not null;index"`
	CustomerId      uuid.UUID  `gorm:"type:uuid;not null;index"`
	Priority        string     `gorm:"type:varchar(20);not null;index"`
	Status          string     `gorm:"type:varchar(30);not null;index"`
	OpenedDate      time.Time  `gorm:"type:date;not null"`
	DueDate         *time.Time `gorm:"type:date"`
	AssignedAnalyst string     `gorm:"type:varchar(100)"`
	CreatedAt       time.Time  `gorm:"autoCreateTime"`
	UpdatedAt       time.Time  `gorm:"autoUpdateTime"`

	Customer *Customer `gorm:"foreignKey:CustomerId"`
}

func (Case) TableName() string {
	return "cases"
}
