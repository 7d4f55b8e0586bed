package model

import (
	"github.com/google/uuid"
)

type Analyst struct {
	Id   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name string    `gorm:"type:varchar(100);not null"`
	Role string    `gorm:"type:varchar(100);not null"`
}

func (Analyst) TableName() string {
	return "analysts"
}
