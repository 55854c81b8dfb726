package model

import (
	"time"

	"github.com/google/uuid"
)

type Brd struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectId     uuid.UUID `gorm:"type:uuid;not null;index"`
	GeneratedAt   time.Time `gorm:"not null"`
	DocumentCount int       `gorm:"default:0"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (Brd) TableName() string {
	return "brds"
}
