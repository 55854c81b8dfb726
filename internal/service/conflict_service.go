package service

import (
	"context"
	"errors"
	"time"

	"brd-studio-be/internal/constant"
	"brd-studio-be/internal/dto"
	"brd-studio-be/internal/pkg/logger"
	"brd-studio-be/internal/repository/memory"
	"brd-studio-be/internal/repository/specification"
	"brd-studio-be/internal/repository/unitofwork"
	"brd-studio-be/pkg/brd"
	"brd-studio-be/pkg/store"

	"github.com/google/uuid"
)

type IConflictService interface {
	ResolveWithAI(ctx context.Context, clientId string, req *dto.ResolveWithAIRequest) (*dto.SessionResponse, error)
	ConfirmWithoutEdit(ctx context.Context, req *dto.ConfirmWithoutEditRequest) (*dto.ConfirmWithoutEditResponse, error)
}

type conflictService struct {
	uowFactory        unitofwork.RepositoryFactory
	refinementService IRefinementService
	sessionRepo       *memory.SessionRepository
	logger            logger.ILogger
}

func NewConflictService(
	uowFactory unitofwork.RepositoryFactory,
	refinementService IRefinementService,
	sessionRepo *memory.SessionRepository,
	log logger.ILogger,
) IConflictService {
	return &conflictService{
		uowFactory:        uowFactory,
		refinementService: refinementService,
		sessionRepo:       sessionRepo,
		logger:            log,
	}
}

// ResolveWithAI drives a conflict into refinement: it synthesizes a
// context string from the conflict card, picks a target section from
// the affected requirements, seeds a session, and immediately sends
// the resolution instruction. The synthesized context seeds the
// session in place of a literal selection, so an eventual accept falls
// through to a full-section replace.
func (s *conflictService) ResolveWithAI(ctx context.Context, clientId string, req *dto.ResolveWithAIRequest) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	conflict, err := uow.ConflictRepository().FindOne(ctx,
		specification.ByBrdID{BrdID: req.BrdId},
		specification.ByPosition{Position: req.ConflictPosition},
	)
	if err != nil {
		return nil, err
	}
	if conflict == nil {
		return nil, errors.New("conflict not found")
	}

	targetKey := brd.TargetSectionKey(conflict.AffectedRequirements, req.ActiveSectionKey)
	if !constant.IsValidSectionKey(targetKey) {
		return nil, errors.New("no target section could be resolved for this conflict")
	}

	seed := constant.ConflictContextV1(conflict.Type, conflict.Severity, conflict.Description, conflict.AffectedRequirements)
	position := conflict.Position

	session, err := s.refinementService.InitSession(ctx, clientId, &dto.InitSessionRequest{
		BrdId:            req.BrdId,
		SectionKey:       targetKey,
		SelectedText:     seed,
		Mode:             constant.RefinementModeRefine,
		ConflictPosition: &position,
	})
	if err != nil {
		return nil, err
	}

	return s.refinementService.SendMessage(ctx, session.SessionId, &dto.SendMessageRequest{
		Instruction: constant.ConflictResolutionInstructionV1,
	})
}

// ConfirmWithoutEdit closes a conflict with no content merge. Only
// valid when the attached session is idle and its latest response was
// an informational answer, meaning the model judged the content
// already consistent.
func (s *conflictService) ConfirmWithoutEdit(ctx context.Context, req *dto.ConfirmWithoutEditRequest) (*dto.ConfirmWithoutEditResponse, error) {
	session, found := s.sessionRepo.Get(req.SessionId)
	if !found {
		return nil, errors.New("session not found")
	}
	if session.ConflictPosition == nil {
		return nil, errors.New("session is not attached to a conflict")
	}
	if session.InFlight() {
		return nil, errors.New("a request is still in flight for this session")
	}
	if !session.HasOutput || session.LatestKind != store.KindAnswer {
		return nil, errors.New("confirm without edit requires an informational answer")
	}

	brdId, err := uuid.Parse(session.BrdID)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	conflict, err := uow.ConflictRepository().FindOne(ctx,
		specification.ByBrdID{BrdID: brdId},
		specification.ByPosition{Position: *session.ConflictPosition},
	)
	if err != nil {
		return nil, err
	}
	if conflict == nil {
		return nil, errors.New("conflict not found")
	}

	now := time.Now()
	conflict.Status = constant.ConflictStatusResolved
	conflict.ResolutionNote = "Confirmed without edit: existing content satisfies the conflict."
	conflict.UpdatedAt = &now
	if err := uow.ConflictRepository().Update(ctx, conflict); err != nil {
		return nil, err
	}

	session.ClearRefinement()
	s.sessionRepo.Save(session)

	return &dto.ConfirmWithoutEditResponse{
		ConflictPosition: conflict.Position,
		Status:           conflict.Status,
	}, nil
}
