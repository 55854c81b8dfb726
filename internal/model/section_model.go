package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Section struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BrdId     uuid.UUID      `gorm:"type:uuid;not null;index:idx_sections_brd_key,unique"`
	Key       string         `gorm:"type:varchar(64);not null;index:idx_sections_brd_key,unique"`
	Title     string         `gorm:"type:varchar(255);not null"`
	Content   string         `gorm:"type:text"`
	Citations datatypes.JSON `gorm:"type:jsonb"` // ordered list of citation objects
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (Section) TableName() string {
	return "brd_sections"
}
