package entity

import (
	"time"

	"github.com/google/uuid"
)

// Section content is the single source of truth for what is displayed and
// edited. Only an accepted reconciliation writes to it.
type Section struct {
	Id        uuid.UUID
	BrdId     uuid.UUID
	Key       string
	Title     string
	Content   string
	Citations []Citation
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// Citation is a read-only reference from section content to a source excerpt.
// Id matches a bracketed numeric marker in the content, e.g. "3" for [3].
type Citation struct {
	Id             string  `json:"id"`
	DocId          string  `json:"doc_id"`
	ChunkId        string  `json:"chunk_id"`
	Filename       string  `json:"filename"`
	Quote          string  `json:"quote"`
	RelevanceScore float64 `json:"relevance_score"`
}
