package mapper

import (
	"time"

	"brd-studio-be/internal/entity"
	"brd-studio-be/internal/model"
)

type BrdMapper struct{}

func NewBrdMapper() *BrdMapper {
	return &BrdMapper{}
}

func (m *BrdMapper) ToEntity(b *model.Brd) *entity.Brd {
	if b == nil {
		return nil
	}

	var updatedAt *time.Time
	if !b.UpdatedAt.IsZero() {
		t := b.UpdatedAt
		updatedAt = &t
	}

	return &entity.Brd{
		Id:            b.Id,
		ProjectId:     b.ProjectId,
		GeneratedAt:   b.GeneratedAt,
		DocumentCount: b.DocumentCount,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *BrdMapper) ToModel(b *entity.Brd) *model.Brd {
	if b == nil {
		return nil
	}

	var updatedAt time.Time
	if b.UpdatedAt != nil {
		updatedAt = *b.UpdatedAt
	}

	return &model.Brd{
		Id:            b.Id,
		ProjectId:     b.ProjectId,
		GeneratedAt:   b.GeneratedAt,
		DocumentCount: b.DocumentCount,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     updatedAt,
	}
}

func (m *BrdMapper) ToEntities(brds []*model.Brd) []*entity.Brd {
	entities := make([]*entity.Brd, len(brds))
	for i, b := range brds {
		entities[i] = m.ToEntity(b)
	}
	return entities
}
