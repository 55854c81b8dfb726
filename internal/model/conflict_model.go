package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Conflict struct {
	Id                   uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BrdId                uuid.UUID      `gorm:"type:uuid;not null;index:idx_conflicts_brd_pos,unique"`
	Position             int            `gorm:"not null;index:idx_conflicts_brd_pos,unique"`
	Type                 string         `gorm:"type:varchar(64);not null"`
	Severity             string         `gorm:"type:varchar(16);not null"`
	Description          string         `gorm:"type:text"`
	AffectedRequirements datatypes.JSON `gorm:"type:jsonb"` // list of requirement identifiers
	Status               string         `gorm:"type:varchar(16)"`
	ResolutionNote       string         `gorm:"type:text"`
	CreatedAt            time.Time      `gorm:"autoCreateTime"`
	UpdatedAt            time.Time      `gorm:"autoUpdateTime"`
}

func (Conflict) TableName() string {
	return "brd_conflicts"
}
