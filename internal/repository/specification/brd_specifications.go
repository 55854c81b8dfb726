package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByBrdID struct {
	BrdID uuid.UUID
}

func (s ByBrdID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("brd_id = ?", s.BrdID)
}

type ByProjectID struct {
	ProjectID uuid.UUID
}

func (s ByProjectID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("project_id = ?", s.ProjectID)
}

type BySectionKey struct {
	Key string
}

func (s BySectionKey) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("key = ?", s.Key)
}

type ByPosition struct {
	Position int
}

func (s ByPosition) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("position = ?", s.Position)
}

type ByConflictStatus struct {
	Status string
}

func (s ByConflictStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}
