package main

import (
	"context"
	"log"
	"os"
	"time"

	"brd-studio-be/internal/constant"
	"brd-studio-be/internal/entity"
	"brd-studio-be/internal/repository/unitofwork"
	"brd-studio-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Seeds one demo BRD with a few populated sections and an open conflict, so
// the refinement and conflict flows can be exercised against a fresh database.
func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal("Error: Failed to run migrations:", err)
	}

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		log.Fatal("Error: Failed to begin transaction:", err)
	}
	defer uow.Rollback()

	brdId := uuid.New()
	brd := &entity.Brd{
		Id:            brdId,
		ProjectId:     uuid.New(),
		GeneratedAt:   time.Now(),
		DocumentCount: 2,
	}
	if err := uow.BrdRepository().Create(ctx, brd); err != nil {
		log.Fatal("Error: Failed to create BRD:", err)
	}
	log.Printf("Created BRD %s", brdId)

	sections := []*entity.Section{
		{
			Id:      uuid.New(),
			BrdId:   brdId,
			Key:     constant.SectionExecutiveSummary,
			Title:   constant.SectionTitles[constant.SectionExecutiveSummary],
			Content: "The warehouse operations platform replaces the legacy inventory tracker with a real-time system covering receiving, put-away and dispatch [1].",
			Citations: []entity.Citation{
				{Id: "1", DocId: "doc-1", ChunkId: "chunk-3", Filename: "rfp.pdf", Quote: "replace the legacy inventory tracker", RelevanceScore: 0.91},
			},
		},
		{
			Id:    uuid.New(),
			BrdId: brdId,
			Key:   constant.SectionFunctionalRequirements,
			Title: constant.SectionTitles[constant.SectionFunctionalRequirements],
			Content: "**FR-01** Operators scan incoming pallets at the dock door.\n\n" +
				"**FR-02** Dispatch manifests are generated as a nightly batch. Priority: High\n\n" +
				"| ID | Capability | Owner |\n| --- | --- | --- |\n| FR-01 | Dock scanning | Ops |\n| FR-02 | Manifest batch | Ops |",
		},
		{
			Id:    uuid.New(),
			BrdId: brdId,
			Key:   constant.SectionNonFunctionalRequirements,
			Title: constant.SectionTitles[constant.SectionNonFunctionalRequirements],
			Content: "**NFR-04** Inventory lookups return within 200ms at the 95th percentile. Priority: Critical\n\n" +
				"**NFR-05** The system sustains 500 concurrent scanner sessions.",
		},
	}
	for _, s := range sections {
		if err := uow.SectionRepository().Create(ctx, s); err != nil {
			log.Fatalf("Error: Failed to create section %s: %v", s.Key, err)
		}
		log.Printf("Created section %s", s.Key)
	}

	conflict := &entity.Conflict{
		Id:                   uuid.New(),
		BrdId:                brdId,
		Position:             0,
		Type:                 "contradiction",
		Severity:             constant.ConflictSeverityHigh,
		Description:          "NFR-04 demands 200ms lookups while FR-02 schedules manifests as a nightly batch that locks the inventory tables.",
		AffectedRequirements: []string{"NFR-04", "FR-02"},
		Status:               constant.ConflictStatusOpen,
	}
	if err := uow.ConflictRepository().Create(ctx, conflict); err != nil {
		log.Fatal("Error: Failed to create conflict:", err)
	}
	log.Printf("Created conflict at position %d", conflict.Position)

	if err := uow.Commit(); err != nil {
		log.Fatal("Error: Failed to commit:", err)
	}

	log.Println("Seeding completed!")
	log.Printf("Demo BRD id: %s", brdId)
}
