package contract

import (
	"context"

	"brd-studio-be/internal/entity"
	"brd-studio-be/internal/repository/specification"
)

type ConflictRepository interface {
	Create(ctx context.Context, conflict *entity.Conflict) error
	Update(ctx context.Context, conflict *entity.Conflict) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Conflict, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Conflict, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
