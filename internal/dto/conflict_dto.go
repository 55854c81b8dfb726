package dto

import "github.com/google/uuid"

type ResolveWithAIRequest struct {
	BrdId            uuid.UUID `json:"brd_id" validate:"required"`
	ConflictPosition int       `json:"conflict_position" validate:"min=0"`

	// ActiveSectionKey is the fallback target when no affected
	// requirement maps to a section.
	ActiveSectionKey string `json:"active_section_key"`
}

type ConfirmWithoutEditRequest struct {
	SessionId string `json:"session_id" validate:"required"`
}

type ConfirmWithoutEditResponse struct {
	ConflictPosition int    `json:"conflict_position"`
	Status           string `json:"status"`
}
