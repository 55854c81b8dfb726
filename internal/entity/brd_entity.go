package entity

import (
	"time"

	"github.com/google/uuid"
)

type Brd struct {
	Id            uuid.UUID
	ProjectId     uuid.UUID
	GeneratedAt   time.Time
	DocumentCount int
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
