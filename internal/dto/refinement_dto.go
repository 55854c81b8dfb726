package dto

import (
	"brd-studio-be/pkg/store"

	"github.com/google/uuid"
)

type InitSessionRequest struct {
	BrdId        uuid.UUID `json:"brd_id" validate:"required"`
	SectionKey   string    `json:"section_key" validate:"required"`
	SelectedText string    `json:"selected_text"`
	Mode         string    `json:"mode" validate:"omitempty,oneof=refine generate"`

	// ConflictPosition attaches the session to a conflict card.
	ConflictPosition *int `json:"conflict_position"`
}

type SessionResponse struct {
	SessionId        string              `json:"session_id"`
	BrdId            string              `json:"brd_id"`
	SectionKey       string              `json:"section_key"`
	Mode             string              `json:"mode"`
	OriginalText     string              `json:"original_text"`
	ConflictPosition *int                `json:"conflict_position,omitempty"`
	Messages         []store.ChatMessage `json:"messages"`
	LatestOutput     string              `json:"latest_output"`
	LatestKind       string              `json:"latest_kind"`
	HasOutput        bool                `json:"has_output"`
	Loading          bool                `json:"loading"`
}

type SendMessageRequest struct {
	Instruction string `json:"instruction" validate:"required"`
}

type AcceptResponse struct {
	SectionKey string `json:"section_key"`
	Content    string `json:"content"`

	// ConflictResolved reports the secondary transition. A false value
	// with ConflictError set means the content write succeeded but the
	// status change did not; the content is not rolled back.
	ConflictResolved bool   `json:"conflict_resolved"`
	ConflictError    string `json:"conflict_error,omitempty"`
}
