package implementation

import (
	"context"

	"brd-studio-be/internal/entity"
	"brd-studio-be/internal/mapper"
	"brd-studio-be/internal/model"
	"brd-studio-be/internal/repository/contract"
	"brd-studio-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type SectionChunkRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SectionChunkMapper
}

func NewSectionChunkRepository(db *gorm.DB) contract.SectionChunkRepository {
	return &SectionChunkRepositoryImpl{
		db:     db,
		mapper: mapper.NewSectionChunkMapper(),
	}
}

func (r *SectionChunkRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SectionChunkRepositoryImpl) CreateBulk(ctx context.Context, chunks []*entity.SectionChunk) error {
	if len(chunks) == 0 {
		return nil
	}
	models := make([]*model.SectionChunk, len(chunks))
	for i, c := range chunks {
		models[i] = r.mapper.ToModel(c)
	}
	return r.db.WithContext(ctx).Create(&models).Error
}

func (r *SectionChunkRepositoryImpl) DeleteBySection(ctx context.Context, brdId uuid.UUID, sectionKey string) error {
	return r.db.WithContext(ctx).
		Where("brd_id = ? AND section_key = ?", brdId, sectionKey).
		Delete(&model.SectionChunk{}).Error
}

func (r *SectionChunkRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SectionChunk, error) {
	var models []*model.SectionChunk
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *SectionChunkRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.SectionChunk{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *SectionChunkRepositoryImpl) SearchSimilar(ctx context.Context, brdId uuid.UUID, embedding []float32, limit int) ([]*entity.SectionChunk, error) {
	if limit <= 0 {
		limit = 5
	}

	vec := pgvector.NewVector(embedding)

	// Cosine distance via pgvector's <=> operator; similarity = 1 - distance.
	type scoredChunk struct {
		model.SectionChunk
		Distance float32
	}

	var rows []scoredChunk
	err := r.db.WithContext(ctx).
		Model(&model.SectionChunk{}).
		Select("*, (embedding <=> ?) AS distance", vec).
		Where("brd_id = ?", brdId).
		Order(gorm.Expr("embedding <=> ?", vec)).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	entities := make([]*entity.SectionChunk, len(rows))
	for i, row := range rows {
		e := r.mapper.ToEntity(&row.SectionChunk)
		e.Score = 1 - row.Distance
		entities[i] = e
	}
	return entities, nil
}
