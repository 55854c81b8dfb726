package entity

import (
	"time"

	"github.com/google/uuid"
)

// SectionChunk is an embedded slice of section content, searched by the
// agentic refinement path for grounding context.
type SectionChunk struct {
	Id         uuid.UUID
	BrdId      uuid.UUID
	SectionKey string
	ChunkIndex int
	Content    string
	Embedding  []float32
	Score      float32 // cosine similarity, populated on search results only
	CreatedAt  time.Time
}
