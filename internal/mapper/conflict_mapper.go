package mapper

import (
	"encoding/json"
	"time"

	"brd-studio-be/internal/constant"
	"brd-studio-be/internal/entity"
	"brd-studio-be/internal/model"

	"gorm.io/datatypes"
)

type ConflictMapper struct{}

func NewConflictMapper() *ConflictMapper {
	return &ConflictMapper{}
}

func (m *ConflictMapper) ToEntity(c *model.Conflict) *entity.Conflict {
	if c == nil {
		return nil
	}

	var affected []string
	if len(c.AffectedRequirements) > 0 {
		_ = json.Unmarshal(c.AffectedRequirements, &affected)
	}

	// Generation may omit status entirely; absent means open.
	status := c.Status
	if status == "" {
		status = constant.ConflictStatusOpen
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.Conflict{
		Id:                   c.Id,
		BrdId:                c.BrdId,
		Position:             c.Position,
		Type:                 c.Type,
		Severity:             c.Severity,
		Description:          c.Description,
		AffectedRequirements: affected,
		Status:               status,
		ResolutionNote:       c.ResolutionNote,
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            updatedAt,
	}
}

func (m *ConflictMapper) ToModel(c *entity.Conflict) *model.Conflict {
	if c == nil {
		return nil
	}

	var affectedJson datatypes.JSON
	if len(c.AffectedRequirements) > 0 {
		if data, err := json.Marshal(c.AffectedRequirements); err == nil {
			affectedJson = data
		}
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.Conflict{
		Id:                   c.Id,
		BrdId:                c.BrdId,
		Position:             c.Position,
		Type:                 c.Type,
		Severity:             c.Severity,
		Description:          c.Description,
		AffectedRequirements: affectedJson,
		Status:               c.Status,
		ResolutionNote:       c.ResolutionNote,
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            updatedAt,
	}
}

func (m *ConflictMapper) ToEntities(conflicts []*model.Conflict) []*entity.Conflict {
	entities := make([]*entity.Conflict, len(conflicts))
	for i, c := range conflicts {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
