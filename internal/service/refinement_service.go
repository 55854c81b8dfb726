package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"brd-studio-be/internal/constant"
	"brd-studio-be/internal/dto"
	"brd-studio-be/internal/pkg/logger"
	"brd-studio-be/internal/repository/memory"
	redisrepo "brd-studio-be/internal/repository/redis"
	"brd-studio-be/internal/repository/specification"
	"brd-studio-be/internal/repository/unitofwork"
	"brd-studio-be/pkg/brd"
	"brd-studio-be/pkg/embedding"
	"brd-studio-be/pkg/events"
	pktNats "brd-studio-be/pkg/nats"
	"brd-studio-be/pkg/refine"
	"brd-studio-be/pkg/store"

	"github.com/google/uuid"
)

type IRefinementService interface {
	InitSession(ctx context.Context, clientId string, req *dto.InitSessionRequest) (*dto.SessionResponse, error)
	GetSession(sessionId string) (*dto.SessionResponse, error)
	SendMessage(ctx context.Context, sessionId string, req *dto.SendMessageRequest) (*dto.SessionResponse, error)
	ClearRefinement(sessionId string) (*dto.SessionResponse, error)
	Reset(sessionId string) error
	Accept(ctx context.Context, sessionId string) (*dto.AcceptResponse, error)
}

// groundingChunkLimit caps how many corpus chunks a generate turn
// injects as context.
const groundingChunkLimit = 4

type refinementService struct {
	sessionRepo      *memory.SessionRepository
	uowFactory       unitofwork.RepositoryFactory
	provider         refine.Provider
	embedder         embedding.Provider
	highlightRepo    *redisrepo.HighlightRepository
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	logger           logger.ILogger
}

func NewRefinementService(
	sessionRepo *memory.SessionRepository,
	uowFactory unitofwork.RepositoryFactory,
	provider refine.Provider,
	embedder embedding.Provider,
	highlightRepo *redisrepo.HighlightRepository,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IRefinementService {
	return &refinementService{
		sessionRepo:      sessionRepo,
		uowFactory:       uowFactory,
		provider:         provider,
		embedder:         embedder,
		highlightRepo:    highlightRepo,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		logger:           log,
	}
}

// InitSession replaces any prior session state wholesale and captures
// the seed text immutably.
func (s *refinementService) InitSession(ctx context.Context, clientId string, req *dto.InitSessionRequest) (*dto.SessionResponse, error) {
	if !constant.IsValidSectionKey(req.SectionKey) {
		return nil, fmt.Errorf("unknown section key: %s", req.SectionKey)
	}

	mode := req.Mode
	if mode == "" {
		mode = constant.RefinementModeRefine
	}

	session := &store.RefinementSession{
		ID:               uuid.New().String(),
		ClientID:         clientId,
		BrdID:            req.BrdId.String(),
		SectionKey:       req.SectionKey,
		Mode:             mode,
		OriginalText:     req.SelectedText,
		ConflictPosition: req.ConflictPosition,
		Messages:         []store.ChatMessage{},
		CreatedAt:        time.Now(),
	}
	s.sessionRepo.Save(session)

	return toSessionResponse(session), nil
}

func (s *refinementService) GetSession(sessionId string) (*dto.SessionResponse, error) {
	session, found := s.sessionRepo.Get(sessionId)
	if !found {
		return nil, errors.New("session not found")
	}
	return toSessionResponse(session), nil
}

// SendMessage runs one refinement turn. The remote input is the
// latest output when one exists, otherwise the original seed, which is
// what lets "make it shorter" operate on the previous rewrite.
func (s *refinementService) SendMessage(ctx context.Context, sessionId string, req *dto.SendMessageRequest) (*dto.SessionResponse, error) {
	session, found := s.sessionRepo.Get(sessionId)
	if !found {
		return nil, errors.New("session not found")
	}
	// Claiming the turn atomically is what rejects a concurrent second
	// send; only the claim holder touches the transcript below.
	if !session.BeginTurn() {
		return nil, errors.New("a request is already in flight for this session")
	}

	session.Messages = append(session.Messages, store.ChatMessage{
		Role:      constant.ChatRoleUser,
		Content:   req.Instruction,
		CreatedAt: time.Now(),
	})

	if refine.LooksLikeInjection(req.Instruction) {
		session.Messages = append(session.Messages, store.ChatMessage{
			Role:      constant.ChatRoleAssistant,
			Content:   "That instruction cannot be applied to the document. Please rephrase it as an edit request.",
			IsError:   true,
			CreatedAt: time.Now(),
		})
		session.EndTurn()
		s.sessionRepo.Save(session)
		return toSessionResponse(session), nil
	}

	s.sessionRepo.Save(session)

	result, err := s.callProvider(ctx, session, req.Instruction)

	session.EndTurn()
	if err != nil {
		// Failures land in the transcript; the session stays usable
		// and the user retries with a new instruction.
		s.logger.Warn("RefinementService", "Refine turn failed", map[string]interface{}{
			"session_id": session.ID,
			"error":      err.Error(),
		})
		session.Messages = append(session.Messages, store.ChatMessage{
			Role:      constant.ChatRoleAssistant,
			Content:   fmt.Sprintf("Something went wrong while refining: %v", err),
			IsError:   true,
			CreatedAt: time.Now(),
		})
		s.sessionRepo.Save(session)
		return toSessionResponse(session), nil
	}

	session.LatestOutput = result.Content
	session.LatestKind = result.Kind
	session.HasOutput = true
	session.Messages = append(session.Messages, store.ChatMessage{
		Role:        constant.ChatRoleAssistant,
		Content:     result.Content,
		Kind:        result.Kind.String(),
		SourcesUsed: result.SourcesUsed,
		CreatedAt:   time.Now(),
	})
	s.sessionRepo.Save(session)

	return toSessionResponse(session), nil
}

// callProvider picks the endpoint: the first instruction of a session
// goes through the single-pass refine call, follow-ups go through chat
// so the service sees the conversation.
func (s *refinementService) callProvider(ctx context.Context, session *store.RefinementSession, instruction string) (*refine.Result, error) {
	input := session.CarryForwardInput()
	sectionContext := s.groundedContext(ctx, session, instruction)

	if !session.HasOutput && len(session.Messages) <= 1 {
		return s.provider.Refine(ctx, refine.RefineRequest{
			SelectedText:   input,
			Instruction:    instruction,
			SectionContext: sectionContext,
			Mode:           session.Mode,
		})
	}

	history := session.Messages[:len(session.Messages)-1]
	return s.provider.Chat(ctx, refine.ChatRequest{
		Message:        instruction,
		SectionContext: sectionContext,
		SelectedText:   input,
		History:        history,
	})
}

// groundedContext augments the section key with the closest corpus
// chunks when the session generates net-new content. Grounding is
// best-effort: any failure degrades to the bare key.
func (s *refinementService) groundedContext(ctx context.Context, session *store.RefinementSession, instruction string) string {
	sectionContext := session.SectionKey
	if session.Mode != constant.RefinementModeGenerate || s.embedder == nil {
		return sectionContext
	}

	brdId, err := uuid.Parse(session.BrdID)
	if err != nil {
		return sectionContext
	}

	vec, err := s.embedder.Embed(ctx, instruction, embedding.TaskQuery)
	if err != nil {
		s.logger.Warn("RefinementService", "Grounding embed failed", map[string]interface{}{"error": err.Error()})
		return sectionContext
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	chunks, err := uow.SectionChunkRepository().SearchSimilar(ctx, brdId, vec, groundingChunkLimit)
	if err != nil {
		s.logger.Warn("RefinementService", "Grounding search failed", map[string]interface{}{"error": err.Error()})
		return sectionContext
	}
	if len(chunks) == 0 {
		return sectionContext
	}

	var b strings.Builder
	b.WriteString(sectionContext)
	b.WriteString("\n\nRelated document excerpts:")
	for _, chunk := range chunks {
		b.WriteString("\n- [" + chunk.SectionKey + "] " + chunk.Content)
	}
	return b.String()
}

// ClearRefinement discards the pending output after a successful
// accept, keeping the transcript so the conversation can continue.
func (s *refinementService) ClearRefinement(sessionId string) (*dto.SessionResponse, error) {
	session, found := s.sessionRepo.Get(sessionId)
	if !found {
		return nil, errors.New("session not found")
	}
	session.ClearRefinement()
	s.sessionRepo.Save(session)
	return toSessionResponse(session), nil
}

func (s *refinementService) Reset(sessionId string) error {
	s.sessionRepo.Delete(sessionId)
	return nil
}

// Accept merges the latest output into the target section, persists
// it, and runs the conflict side effect when the session is attached
// to one. The conflict transition happens after the content write and
// its failure is reported without rolling the content back.
func (s *refinementService) Accept(ctx context.Context, sessionId string) (*dto.AcceptResponse, error) {
	session, found := s.sessionRepo.Get(sessionId)
	if !found {
		return nil, errors.New("session not found")
	}
	if !session.HasOutput {
		return nil, errors.New("nothing to accept: no refinement output")
	}
	if session.InFlight() {
		return nil, errors.New("a request is still in flight for this session")
	}

	brdId, err := uuid.Parse(session.BrdID)
	if err != nil {
		return nil, fmt.Errorf("invalid brd id on session: %w", err)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	section, err := uow.SectionRepository().FindOne(ctx,
		specification.ByBrdID{BrdID: brdId},
		specification.BySectionKey{Key: session.SectionKey},
	)
	if err != nil {
		return nil, err
	}
	if section == nil {
		return nil, errors.New("section not found")
	}

	newContent, err := brd.MergeContent(section.Content, session.OriginalText, session.LatestOutput, session.LatestKind)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	section.Content = newContent
	section.UpdatedAt = &now
	if err := uow.SectionRepository().Update(ctx, section); err != nil {
		return nil, err
	}

	s.afterAccept(ctx, brdId, session.SectionKey)

	resp := &dto.AcceptResponse{
		SectionKey: session.SectionKey,
		Content:    newContent,
	}

	if session.ConflictPosition != nil {
		if err := s.resolveAttachedConflict(ctx, brdId, *session.ConflictPosition); err != nil {
			s.logger.Warn("RefinementService", "Conflict transition failed after accept", map[string]interface{}{
				"session_id": session.ID,
				"position":   *session.ConflictPosition,
				"error":      err.Error(),
			})
			resp.ConflictError = err.Error()
		} else {
			resp.ConflictResolved = true
		}
	}

	session.ClearRefinement()
	s.sessionRepo.Save(session)

	return resp, nil
}

func (s *refinementService) resolveAttachedConflict(ctx context.Context, brdId uuid.UUID, position int) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	conflict, err := uow.ConflictRepository().FindOne(ctx,
		specification.ByBrdID{BrdID: brdId},
		specification.ByPosition{Position: position},
	)
	if err != nil {
		return err
	}
	if conflict == nil {
		return errors.New("conflict not found")
	}
	if conflict.Status == constant.ConflictStatusResolved {
		return nil
	}

	now := time.Now()
	conflict.Status = constant.ConflictStatusResolved
	conflict.UpdatedAt = &now
	if err := uow.ConflictRepository().Update(ctx, conflict); err != nil {
		return err
	}

	if s.eventPublisher != nil {
		evt := events.NewBaseEvent(constant.EventConflictResolved, map[string]interface{}{
			"brd_id":   brdId,
			"position": position,
		})
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("RefinementService", "Failed to publish conflict resolved event", map[string]interface{}{"error": err.Error()})
		}
	}
	return nil
}

func (s *refinementService) afterAccept(ctx context.Context, brdId uuid.UUID, sectionKey string) {
	payload, err := json.Marshal(dto.SectionUpdatedPayload{
		BrdId:      brdId.String(),
		SectionKey: sectionKey,
	})
	if err == nil {
		if err := s.publisherService.Publish(ctx, payload); err != nil {
			s.logger.Warn("RefinementService", "Failed to publish embed message", map[string]interface{}{"error": err.Error()})
		}
	}

	if s.eventPublisher != nil {
		evt := events.NewBaseEvent(constant.EventSectionUpdated, map[string]interface{}{
			"brd_id":      brdId,
			"section_key": sectionKey,
		})
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("RefinementService", "Failed to publish section updated event", map[string]interface{}{"error": err.Error()})
		}
	}

	if s.highlightRepo != nil {
		if err := s.highlightRepo.Mark(ctx, brdId.String(), sectionKey); err != nil {
			s.logger.Warn("RefinementService", "Failed to mark section highlight", map[string]interface{}{"error": err.Error()})
		}
	}
}

func toSessionResponse(session *store.RefinementSession) *dto.SessionResponse {
	return &dto.SessionResponse{
		SessionId:        session.ID,
		BrdId:            session.BrdID,
		SectionKey:       session.SectionKey,
		Mode:             session.Mode,
		OriginalText:     session.OriginalText,
		ConflictPosition: session.ConflictPosition,
		Messages:         session.Messages,
		LatestOutput:     session.LatestOutput,
		LatestKind:       session.LatestKind.String(),
		HasOutput:        session.HasOutput,
		Loading:          session.InFlight(),
	}
}
