package unitofwork

import (
	"context"

	"brd-studio-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	BrdRepository() contract.BrdRepository
	SectionRepository() contract.SectionRepository
	ConflictRepository() contract.ConflictRepository
	SectionChunkRepository() contract.SectionChunkRepository
}
