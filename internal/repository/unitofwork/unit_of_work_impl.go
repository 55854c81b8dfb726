package unitofwork

import (
	"context"
	"errors"

	"brd-studio-be/internal/repository/contract"
	"brd-studio-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type unitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func newUnitOfWork(db *gorm.DB) UnitOfWork {
	return &unitOfWorkImpl{db: db}
}

// handle returns the transaction when one is open, otherwise the plain
// connection. Repositories are rebuilt per call so reads outside a
// transaction and writes inside one share the same code path.
func (u *unitOfWorkImpl) handle() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *unitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return errors.New("transaction already started")
	}
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	u.tx = tx
	return nil
}

func (u *unitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return errors.New("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *unitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return nil // already committed or never begun, no-op
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

func (u *unitOfWorkImpl) BrdRepository() contract.BrdRepository {
	return implementation.NewBrdRepository(u.handle())
}

func (u *unitOfWorkImpl) SectionRepository() contract.SectionRepository {
	return implementation.NewSectionRepository(u.handle())
}

func (u *unitOfWorkImpl) ConflictRepository() contract.ConflictRepository {
	return implementation.NewConflictRepository(u.handle())
}

func (u *unitOfWorkImpl) SectionChunkRepository() contract.SectionChunkRepository {
	return implementation.NewSectionChunkRepository(u.handle())
}
