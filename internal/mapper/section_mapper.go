package mapper

import (
	"encoding/json"
	"time"

	"brd-studio-be/internal/entity"
	"brd-studio-be/internal/model"

	"gorm.io/datatypes"
)

type SectionMapper struct{}

func NewSectionMapper() *SectionMapper {
	return &SectionMapper{}
}

func (m *SectionMapper) ToEntity(s *model.Section) *entity.Section {
	if s == nil {
		return nil
	}

	var citations []entity.Citation
	if len(s.Citations) > 0 {
		// Malformed citation JSON degrades to an empty list; the renderer
		// then shows literal markers, which is the graceful path anyway.
		_ = json.Unmarshal(s.Citations, &citations)
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	return &entity.Section{
		Id:        s.Id,
		BrdId:     s.BrdId,
		Key:       s.Key,
		Title:     s.Title,
		Content:   s.Content,
		Citations: citations,
		CreatedAt: s.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *SectionMapper) ToModel(s *entity.Section) *model.Section {
	if s == nil {
		return nil
	}

	var citationsJson datatypes.JSON
	if len(s.Citations) > 0 {
		if data, err := json.Marshal(s.Citations); err == nil {
			citationsJson = data
		}
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.Section{
		Id:        s.Id,
		BrdId:     s.BrdId,
		Key:       s.Key,
		Title:     s.Title,
		Content:   s.Content,
		Citations: citationsJson,
		CreatedAt: s.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *SectionMapper) ToEntities(sections []*model.Section) []*entity.Section {
	entities := make([]*entity.Section, len(sections))
	for i, s := range sections {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
