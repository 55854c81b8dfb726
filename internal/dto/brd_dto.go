package dto

import (
	"time"

	"brd-studio-be/internal/entity"
	"brd-studio-be/pkg/markdown"

	"github.com/google/uuid"
)

type SectionView struct {
	Key         string            `json:"key"`
	Title       string            `json:"title"`
	Content     string            `json:"content"` // repaired markdown
	Citations   []entity.Citation `json:"citations"`
	JustUpdated bool              `json:"just_updated"`
	UpdatedAt   *time.Time        `json:"updated_at"`
}

type ConflictView struct {
	Position             int      `json:"position"`
	Type                 string   `json:"type"`
	Severity             string   `json:"severity"`
	Description          string   `json:"description"`
	AffectedRequirements []string `json:"affected_requirements"`
	Status               string   `json:"status"`
	ResolutionNote       string   `json:"resolution_note,omitempty"`
}

type ShowBrdResponse struct {
	Id          uuid.UUID      `json:"id"`
	ProjectId   uuid.UUID      `json:"project_id"`
	GeneratedAt time.Time      `json:"generated_at"`
	Sections    []SectionView  `json:"sections"`
	Conflicts   []ConflictView `json:"conflicts"`
}

// RenderSectionResponse carries the presentation transforms for one
// section: annotated spans per line plus a fallback table when strict
// parsing would reject the content.
type RenderSectionResponse struct {
	Key           string              `json:"key"`
	Title         string              `json:"title"`
	Content       string              `json:"content"`
	Spans         []markdown.Span     `json:"spans"`
	FallbackTable *markdown.PipeTable `json:"fallback_table,omitempty"`
	JustUpdated   bool                `json:"just_updated"`
}

type UpdateSectionRequest struct {
	Content string `json:"content" validate:"required"`
}

type UpdateSectionResponse struct {
	Key       string     `json:"key"`
	Content   string     `json:"content"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type UpdateConflictStatusRequest struct {
	Status         string `json:"status" validate:"required,oneof=open resolved accepted deferred"`
	ResolutionNote string `json:"resolution_note"`
}

type ExportBrdResponse struct {
	Markdown string `json:"markdown"`
}
