package contract

import (
	"context"

	"brd-studio-be/internal/entity"
	"brd-studio-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SectionChunkRepository interface {
	CreateBulk(ctx context.Context, chunks []*entity.SectionChunk) error
	DeleteBySection(ctx context.Context, brdId uuid.UUID, sectionKey string) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SectionChunk, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// SearchSimilar returns the closest chunks by cosine distance, scoped to
	// one document. Scores are populated on the returned entities.
	SearchSimilar(ctx context.Context, brdId uuid.UUID, embedding []float32, limit int) ([]*entity.SectionChunk, error)
}
