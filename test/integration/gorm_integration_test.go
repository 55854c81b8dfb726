package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"brd-studio-be/internal/constant"
	"brd-studio-be/internal/entity"
	"brd-studio-be/internal/repository/specification"
	"brd-studio-be/internal/repository/unitofwork"
	"brd-studio-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}
	if err := database.AutoMigrate(gormDB); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.BrdRepository())
	assert.NotNil(t, uow.SectionRepository())
	assert.NotNil(t, uow.ConflictRepository())
	assert.NotNil(t, uow.SectionChunkRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check Brd Repository", func(t *testing.T) {
		count, err := uow.BrdRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Brd count: %d", count)
	})

	t.Run("Check Section Chunk Repository", func(t *testing.T) {
		// Count implies the pgvector table exists
		count, err := uow.SectionChunkRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("SectionChunk count: %d", count)
	})

	t.Run("Check Transactional Brd With Sections", func(t *testing.T) {
		ctx := context.Background()
		err := uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		brdId := uuid.New()
		brd := &entity.Brd{
			Id:          brdId,
			ProjectId:   uuid.New(),
			GeneratedAt: time.Now(),
		}
		err = uow.BrdRepository().Create(ctx, brd)
		assert.NoError(t, err)

		section := &entity.Section{
			Id:      uuid.New(),
			BrdId:   brdId,
			Key:     constant.SectionExecutiveSummary,
			Title:   constant.SectionTitles[constant.SectionExecutiveSummary],
			Content: "Integration summary [1].",
			Citations: []entity.Citation{
				{Id: "1", Filename: "source.pdf", Quote: "summary"},
			},
		}
		err = uow.SectionRepository().Create(ctx, section)
		assert.NoError(t, err)

		conflict := &entity.Conflict{
			Id:          uuid.New(),
			BrdId:       brdId,
			Position:    0,
			Type:        "contradiction",
			Severity:    constant.ConflictSeverityLow,
			Description: "integration conflict",
			Status:      constant.ConflictStatusOpen,
		}
		err = uow.ConflictRepository().Create(ctx, conflict)
		assert.NoError(t, err)

		err = uow.Commit()
		assert.NoError(t, err)

		// Read back through specs; JSON columns must round-trip.
		found, err := uow.SectionRepository().FindOne(ctx,
			specification.ByBrdID{BrdID: brdId},
			specification.BySectionKey{Key: constant.SectionExecutiveSummary},
		)
		assert.NoError(t, err)
		if assert.NotNil(t, found) {
			assert.Len(t, found.Citations, 1)
		}

		t.Log("Successfully created Brd with Section and Conflict in Transaction")
	})
}
