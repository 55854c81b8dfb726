package entity

import (
	"time"

	"github.com/google/uuid"
)

// Conflict is created by generation and never deleted here; this core only
// changes its status, either explicitly or through an accepted refinement.
type Conflict struct {
	Id                   uuid.UUID
	BrdId                uuid.UUID
	Position             int // index within the document's conflict list
	Type                 string
	Severity             string
	Description          string
	AffectedRequirements []string
	Status               string // defaults to open when absent
	ResolutionNote       string
	CreatedAt            time.Time
	UpdatedAt            *time.Time
}
