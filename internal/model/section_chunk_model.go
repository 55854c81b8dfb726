package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type SectionChunk struct {
	Id         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	BrdId      uuid.UUID       `gorm:"type:uuid;not null;index"`
	SectionKey string          `gorm:"type:varchar(64);not null;index"`
	ChunkIndex int             `gorm:"default:0"`
	Content    string          `gorm:"type:text"`
	Embedding  pgvector.Vector `gorm:"type:vector(768)"` // text-embedding-004 / nomic-embed-text dimensionality
	CreatedAt  time.Time       `gorm:"autoCreateTime"`
}

func (SectionChunk) TableName() string {
	return "brd_section_chunks"
}
