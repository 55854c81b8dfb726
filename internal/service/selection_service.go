package service

import (
	"brd-studio-be/internal/dto"
	"brd-studio-be/internal/repository/memory"
	"brd-studio-be/pkg/selection"
)

type ISelectionService interface {
	PointerDown(clientId string, req *dto.PointerDownRequest) error
	PointerUp(clientId string, req *dto.PointerUpRequest) error
	State(clientId string) (*dto.SelectionStateResponse, error)
	Clear(clientId string) error
}

// selectionService maintains one tracker per client; the browser
// forwards raw gestures and polls the committed descriptor.
type selectionService struct {
	trackerRepo *memory.TrackerRepository
}

func NewSelectionService(trackerRepo *memory.TrackerRepository) ISelectionService {
	return &selectionService{trackerRepo: trackerRepo}
}

func (s *selectionService) PointerDown(clientId string, req *dto.PointerDownRequest) error {
	tracker := s.trackerRepo.GetOrCreate(clientId, req.ContainerId)
	tracker.PointerDown()
	return nil
}

func (s *selectionService) PointerUp(clientId string, req *dto.PointerUpRequest) error {
	tracker := s.trackerRepo.GetOrCreate(clientId, req.ContainerId)
	tracker.PointerUp(req.Selection)
	return nil
}

func (s *selectionService) State(clientId string) (*dto.SelectionStateResponse, error) {
	tracker, found := s.trackerRepo.Get(clientId)
	if !found {
		return &dto.SelectionStateResponse{Descriptor: selection.Descriptor{}}, nil
	}
	return &dto.SelectionStateResponse{Descriptor: tracker.Snapshot()}, nil
}

func (s *selectionService) Clear(clientId string) error {
	// Clearing a client with no tracker is a no-op, not an error.
	if tracker, found := s.trackerRepo.Get(clientId); found {
		tracker.Clear()
	}
	return nil
}
