package mapper

import (
	"brd-studio-be/internal/entity"
	"brd-studio-be/internal/model"

	"github.com/pgvector/pgvector-go"
)

type SectionChunkMapper struct{}

func NewSectionChunkMapper() *SectionChunkMapper {
	return &SectionChunkMapper{}
}

func (m *SectionChunkMapper) ToEntity(c *model.SectionChunk) *entity.SectionChunk {
	if c == nil {
		return nil
	}

	return &entity.SectionChunk{
		Id:         c.Id,
		BrdId:      c.BrdId,
		SectionKey: c.SectionKey,
		ChunkIndex: c.ChunkIndex,
		Content:    c.Content,
		Embedding:  c.Embedding.Slice(),
		CreatedAt:  c.CreatedAt,
	}
}

func (m *SectionChunkMapper) ToModel(c *entity.SectionChunk) *model.SectionChunk {
	if c == nil {
		return nil
	}

	return &model.SectionChunk{
		Id:         c.Id,
		BrdId:      c.BrdId,
		SectionKey: c.SectionKey,
		ChunkIndex: c.ChunkIndex,
		Content:    c.Content,
		Embedding:  pgvector.NewVector(c.Embedding),
		CreatedAt:  c.CreatedAt,
	}
}

func (m *SectionChunkMapper) ToEntities(chunks []*model.SectionChunk) []*entity.SectionChunk {
	entities := make([]*entity.SectionChunk, len(chunks))
	for i, c := range chunks {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
