package dto

import "brd-studio-be/pkg/selection"

type PointerDownRequest struct {
	ContainerId string `json:"container_id" validate:"required"`
}

type PointerUpRequest struct {
	ContainerId string                 `json:"container_id" validate:"required"`
	Selection   selection.RawSelection `json:"selection"`
}

type SelectionStateResponse struct {
	Descriptor selection.Descriptor `json:"descriptor"`
}
