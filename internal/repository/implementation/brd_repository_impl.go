package implementation

import (
	"context"
	"errors"

	"brd-studio-be/internal/entity"
	"brd-studio-be/internal/mapper"
	"brd-studio-be/internal/model"
	"brd-studio-be/internal/repository/contract"
	"brd-studio-be/internal/repository/specification"

	"gorm.io/gorm"
)

type BrdRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BrdMapper
}

func NewBrdRepository(db *gorm.DB) contract.BrdRepository {
	return &BrdRepositoryImpl{
		db:     db,
		mapper: mapper.NewBrdMapper(),
	}
}

func (r *BrdRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *BrdRepositoryImpl) Create(ctx context.Context, brd *entity.Brd) error {
	m := r.mapper.ToModel(brd)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*brd = *r.mapper.ToEntity(m)
	return nil
}

func (r *BrdRepositoryImpl) Update(ctx context.Context, brd *entity.Brd) error {
	m := r.mapper.ToModel(brd)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*brd = *r.mapper.ToEntity(m)
	return nil
}

func (r *BrdRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Brd, error) {
	var m model.Brd
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *BrdRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Brd, error) {
	var models []*model.Brd
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *BrdRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Brd{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
