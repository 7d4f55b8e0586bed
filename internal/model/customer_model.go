package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Customer struct {
	Id              uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerId      string         `gorm:"type:varchar(20);uniqueIndex;not null"`
	LegalName       string         `gorm:"type:varchar(255);not null;index"`
	BusinessType    string         `gorm:"type:varchar(100);not null"`
	Jurisdiction    string         `gorm:"type:varchar(100);not null;index"`
	RiskTier        string         `gorm:"type:varchar(20);not null;index"`
	KycStatus       string         `gorm:"type:varchar(30);not null;index"`
	OnboardingDate  time.Time      `gorm:"type:date;not null"`
	LastReviewDate  *time.Time     `gorm:"type:date"`
	NextReviewDue   *time.Time     `gorm:"type:date;index"`
	AssignedAnalyst string         `gorm:"type:varchar(100)"`
	RiskFactors     datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime"`
}

func (Customer) TableName() string {
	return "customers"
}
