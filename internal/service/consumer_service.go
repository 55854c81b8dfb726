package service

import (
	"context"
	"encoding/json"
	"fmt"

	"brd-studio-be/internal/dto"
	"brd-studio-be/internal/entity"
	"brd-studio-be/internal/pkg/logger"
	"brd-studio-be/internal/repository/specification"
	"brd-studio-be/internal/repository/unitofwork"
	"brd-studio-be/pkg/embedding"
	"brd-studio-be/pkg/utils"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService rebuilds a section's chunk embeddings whenever its
// content changes, keeping semantic search over the document current.
type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.Provider
	logger            logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.Provider,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		logger:            log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.SectionUpdatedPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("ConsumerService", "Failed to unmarshal message", map[string]interface{}{"error": err.Error()})
		msg.Ack() // malformed messages never get better, drop them
		return
	}

	brdId, err := uuid.Parse(payload.BrdId)
	if err != nil {
		cs.logger.Error("ConsumerService", "Invalid brd id in message", map[string]interface{}{"brd_id": payload.BrdId})
		msg.Ack()
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	section, err := uow.SectionRepository().FindOne(ctx,
		specification.ByBrdID{BrdID: brdId},
		specification.BySectionKey{Key: payload.SectionKey},
	)
	if err != nil {
		cs.logger.Error("ConsumerService", "Failed to load section", map[string]interface{}{"error": err.Error()})
		msg.Nack() // transient, retry
		return
	}
	if section == nil {
		cs.logger.Warn("ConsumerService", "Section gone, skipping embed", map[string]interface{}{
			"brd_id":      payload.BrdId,
			"section_key": payload.SectionKey,
		})
		msg.Ack()
		return
	}

	content := fmt.Sprintf("Section: %s\n\n%s", section.Title, section.Content)
	chunks := utils.SplitText(content, 1500, 200)

	newChunks := make([]*entity.SectionChunk, 0, len(chunks))
	for i, chunk := range chunks {
		vector, err := cs.embeddingProvider.Embed(ctx, chunk, embedding.TaskDocument)
		if err != nil {
			cs.logger.Error("ConsumerService", "Failed to embed chunk", map[string]interface{}{
				"chunk_index": i,
				"section_key": payload.SectionKey,
				"error":       err.Error(),
			})
			msg.Nack()
			return
		}
		newChunks = append(newChunks, &entity.SectionChunk{
			Id:         uuid.New(),
			BrdId:      brdId,
			SectionKey: payload.SectionKey,
			ChunkIndex: i,
			Content:    chunk,
			Embedding:  vector,
		})
	}

	// Replace-then-insert so a reader never sees a half-indexed
	// section for longer than the gap between the two writes.
	if err := uow.SectionChunkRepository().DeleteBySection(ctx, brdId, payload.SectionKey); err != nil {
		cs.logger.Error("ConsumerService", "Failed to delete stale chunks", map[string]interface{}{"error": err.Error()})
		msg.Nack()
		return
	}
	if err := uow.SectionChunkRepository().CreateBulk(ctx, newChunks); err != nil {
		cs.logger.Error("ConsumerService", "Failed to store chunks", map[string]interface{}{"error": err.Error()})
		msg.Nack()
		return
	}

	cs.logger.Info("ConsumerService", "Section re-embedded", map[string]interface{}{
		"brd_id":      payload.BrdId,
		"section_key": payload.SectionKey,
		"chunks":      len(newChunks),
	})
	msg.Ack()
}
