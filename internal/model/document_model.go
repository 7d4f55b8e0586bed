package model

import (
	"time"

	"github.com/google/uuid"
)

type Document struct {
	Id                 uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DocumentId         string     `gorm:"type:varchar(20);uniqueIndex;not null"`
	DocType            string     `gorm:"type:varchar(100);not null;index"`
	CustomerId         uuid.UUID  `gorm:"type:uuid;not null;index"`
	IssueDate          time.Time  `gorm:"type:date;not null"`
	ExpiryDate         *time.Time `gorm:"type:date;index"`
	VerificationStatus string     `gorm:"type:varchar(30);not null;index"`
	CreatedAt          time.Time  `gorm:"autoCreateTime"`
	UpdatedAt          time.Time  `gorm:"autoUpdateTime"`

	Customer *Customer `gorm:"foreignKey:CustomerId"`
}

func (Document) TableName() string {
	return "documents"
}
