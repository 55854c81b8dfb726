package contract

import (
	"context"

	"brd-studio-be/internal/entity"
	"brd-studio-be/internal/repository/specification"
)

type BrdRepository interface {
	Create(ctx context.Context, brd *entity.Brd) error
	Update(ctx context.Context, brd *entity.Brd) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Brd, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Brd, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
