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
	"brd-studio-be/internal/repository/redis"
	"brd-studio-be/internal/repository/specification"
	"brd-studio-be/internal/repository/unitofwork"
	"brd-studio-be/pkg/brd"
	"brd-studio-be/pkg/events"
	"brd-studio-be/pkg/markdown"
	pktNats "brd-studio-be/pkg/nats"

	"github.com/google/uuid"
)

type IBrdService interface {
	Show(ctx context.Context, brdId uuid.UUID) (*dto.ShowBrdResponse, error)
	RenderSection(ctx context.Context, brdId uuid.UUID, sectionKey string) (*dto.RenderSectionResponse, error)
	UpdateSection(ctx context.Context, brdId uuid.UUID, sectionKey string, req *dto.UpdateSectionRequest) (*dto.UpdateSectionResponse, error)
	UpdateConflictStatus(ctx context.Context, brdId uuid.UUID, position int, req *dto.UpdateConflictStatusRequest) error
	Export(ctx context.Context, brdId uuid.UUID) (*dto.ExportBrdResponse, error)
}

type brdService struct {
	uowFactory       unitofwork.RepositoryFactory
	highlightRepo    *redis.HighlightRepository
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	logger           logger.ILogger
}

func NewBrdService(
	uowFactory unitofwork.RepositoryFactory,
	highlightRepo *redis.HighlightRepository,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IBrdService {
	return &brdService{
		uowFactory:       uowFactory,
		highlightRepo:    highlightRepo,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		logger:           log,
	}
}

func (s *brdService) Show(ctx context.Context, brdId uuid.UUID) (*dto.ShowBrdResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.BrdRepository().FindOne(ctx, specification.ByID{ID: brdId})
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errors.New("brd not found")
	}

	sections, err := uow.SectionRepository().FindAll(ctx, specification.ByBrdID{BrdID: brdId})
	if err != nil {
		return nil, err
	}

	conflicts, err := uow.ConflictRepository().FindAll(ctx,
		specification.ByBrdID{BrdID: brdId},
		specification.OrderBy{Field: "position"},
	)
	if err != nil {
		return nil, err
	}

	marked := s.markedSections(ctx, brdId)

	byKey := make(map[string]int, len(sections))
	for i, sec := range sections {
		byKey[sec.Key] = i
	}

	sectionViews := make([]dto.SectionView, 0, len(sections))
	for _, key := range constant.SectionKeys {
		i, ok := byKey[key]
		if !ok {
			continue
		}
		sec := sections[i]
		sectionViews = append(sectionViews, dto.SectionView{
			Key:         sec.Key,
			Title:       sec.Title,
			Content:     markdown.Repair(sec.Content),
			Citations:   sec.Citations,
			JustUpdated: marked[sec.Key],
			UpdatedAt:   sec.UpdatedAt,
		})
	}

	conflictViews := make([]dto.ConflictView, len(conflicts))
	for i, c := range conflicts {
		status := c.Status
		if status == "" {
			status = constant.ConflictStatusOpen
		}
		conflictViews[i] = dto.ConflictView{
			Position:             c.Position,
			Type:                 c.Type,
			Severity:             c.Severity,
			Description:          c.Description,
			AffectedRequirements: c.AffectedRequirements,
			Status:               status,
			ResolutionNote:       c.ResolutionNote,
		}
	}

	return &dto.ShowBrdResponse{
		Id:          doc.Id,
		ProjectId:   doc.ProjectId,
		GeneratedAt: doc.GeneratedAt,
		Sections:    sectionViews,
		Conflicts:   conflictViews,
	}, nil
}

func (s *brdService) RenderSection(ctx context.Context, brdId uuid.UUID, sectionKey string) (*dto.RenderSectionResponse, error) {
	if !constant.IsValidSectionKey(sectionKey) {
		return nil, fmt.Errorf("unknown section key: %s", sectionKey)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	sec, err := uow.SectionRepository().FindOne(ctx,
		specification.ByBrdID{BrdID: brdId},
		specification.BySectionKey{Key: sectionKey},
	)
	if err != nil {
		return nil, err
	}
	if sec == nil {
		return nil, errors.New("section not found")
	}

	repaired := markdown.Repair(sec.Content)

	citationIds := make(map[string]struct{}, len(sec.Citations))
	for _, c := range sec.Citations {
		citationIds[c.Id] = struct{}{}
	}
	spans := markdown.AnnotateText(repaired, func(id string) bool {
		_, ok := citationIds[id]
		return ok
	})

	// The fallback table is offered whenever the content still holds a
	// parseable pipe table; the client uses it only when its own strict
	// renderer rejects the block.
	var fallback *markdown.PipeTable
	if strings.Contains(repaired, "|") {
		fallback = markdown.ParsePipeTable(repaired)
	}

	marked := s.markedSections(ctx, brdId)

	return &dto.RenderSectionResponse{
		Key:           sec.Key,
		Title:         sec.Title,
		Content:       repaired,
		Spans:         spans,
		FallbackTable: fallback,
		JustUpdated:   marked[sec.Key],
	}, nil
}

func (s *brdService) UpdateSection(ctx context.Context, brdId uuid.UUID, sectionKey string, req *dto.UpdateSectionRequest) (*dto.UpdateSectionResponse, error) {
	if !constant.IsValidSectionKey(sectionKey) {
		return nil, fmt.Errorf("unknown section key: %s", sectionKey)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	sec, err := uow.SectionRepository().FindOne(ctx,
		specification.ByBrdID{BrdID: brdId},
		specification.BySectionKey{Key: sectionKey},
	)
	if err != nil {
		return nil, err
	}
	if sec == nil {
		return nil, errors.New("section not found")
	}

	now := time.Now()
	sec.Content = req.Content
	sec.UpdatedAt = &now

	if err := uow.SectionRepository().Update(ctx, sec); err != nil {
		return nil, err
	}

	s.afterSectionWrite(ctx, brdId, sectionKey)

	return &dto.UpdateSectionResponse{
		Key:       sec.Key,
		Content:   sec.Content,
		UpdatedAt: sec.UpdatedAt,
	}, nil
}

func (s *brdService) UpdateConflictStatus(ctx context.Context, brdId uuid.UUID, position int, req *dto.UpdateConflictStatusRequest) error {
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

	if !brd.CanTransitionConflict(conflict.Status, req.Status) {
		return fmt.Errorf("cannot transition conflict from %q to %q", conflict.Status, req.Status)
	}

	now := time.Now()
	conflict.Status = req.Status
	if req.ResolutionNote != "" {
		conflict.ResolutionNote = req.ResolutionNote
	}
	conflict.UpdatedAt = &now

	if err := uow.ConflictRepository().Update(ctx, conflict); err != nil {
		return err
	}

	if s.eventPublisher != nil && req.Status == constant.ConflictStatusResolved {
		evt := events.NewBaseEvent(constant.EventConflictResolved, map[string]interface{}{
			"brd_id":   brdId,
			"position": position,
		})
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("BrdService", "Failed to publish conflict resolved event", map[string]interface{}{"error": err.Error()})
		}
	}
	return nil
}

func (s *brdService) Export(ctx context.Context, brdId uuid.UUID) (*dto.ExportBrdResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doc, err := uow.BrdRepository().FindOne(ctx, specification.ByID{ID: brdId})
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errors.New("brd not found")
	}

	sections, err := uow.SectionRepository().FindAll(ctx, specification.ByBrdID{BrdID: brdId})
	if err != nil {
		return nil, err
	}

	title := fmt.Sprintf("Business Requirements Document (%s)", doc.GeneratedAt.Format("2006-01-02"))
	return &dto.ExportBrdResponse{
		Markdown: brd.ExportMarkdown(title, sections),
	}, nil
}

// afterSectionWrite runs the side effects shared by every section
// write: the re-embed pipeline, the bus event, and the transient
// highlight. All three are auxiliary and only logged on failure.
func (s *brdService) afterSectionWrite(ctx context.Context, brdId uuid.UUID, sectionKey string) {
	payload, err := json.Marshal(dto.SectionUpdatedPayload{
		BrdId:      brdId.String(),
		SectionKey: sectionKey,
	})
	if err == nil {
		if err := s.publisherService.Publish(ctx, payload); err != nil {
			s.logger.Warn("BrdService", "Failed to publish embed message", map[string]interface{}{"error": err.Error()})
		}
	}

	if s.eventPublisher != nil {
		evt := events.NewBaseEvent(constant.EventSectionUpdated, map[string]interface{}{
			"brd_id":      brdId,
			"section_key": sectionKey,
		})
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("BrdService", "Failed to publish section updated event", map[string]interface{}{"error": err.Error()})
		}
	}

	if s.highlightRepo != nil {
		if err := s.highlightRepo.Mark(ctx, brdId.String(), sectionKey); err != nil {
			s.logger.Warn("BrdService", "Failed to mark section highlight", map[string]interface{}{"error": err.Error()})
		}
	}
}

func (s *brdService) markedSections(ctx context.Context, brdId uuid.UUID) map[string]bool {
	if s.highlightRepo == nil {
		return map[string]bool{}
	}
	marked, err := s.highlightRepo.MarkedSections(ctx, brdId.String(), constant.SectionKeys)
	if err != nil {
		s.logger.Warn("BrdService", "Failed to read section highlights", map[string]interface{}{"error": err.Error()})
		return map[string]bool{}
	}
	return marked
}
