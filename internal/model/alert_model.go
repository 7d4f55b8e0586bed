package model

import (
	"time"

	"github.com/google/uuid"
)

type Alert struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AlertId         string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	AlertType       string    `gorm:"type:varchar(100);not null;index"`
	CustomerId      uuid.UUID `gorm:"type:uuid;not null;index"`
	Severity        string    `gorm:"type:varchar(20);not null;index"`
	Status          string    `gorm:"type:varchar(30);not null;index"`
	CreatedDate     time.Time `gorm:"type:date;not null;index"`
	AssignedAnalyst string    `gorm:"type:varchar(100)"`
	Description     string    `gorm:"type:text;not null"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`

	Customer *Customer `gorm:"foreignKey:CustomerId"`
}

func (Alert) TableName() string {
	return "alerts"
}
