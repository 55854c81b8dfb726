package bootstrap

import (
	"context"
	"log"

	"brd-studio-be/internal/config"
	"brd-studio-be/internal/controller"
	"brd-studio-be/internal/pkg/logger"
	"brd-studio-be/internal/repository/memory"
	redisrepo "brd-studio-be/internal/repository/redis"
	"brd-studio-be/internal/repository/unitofwork"
	"brd-studio-be/internal/service"
	"brd-studio-be/pkg/embedding"
	"brd-studio-be/pkg/refine/factory"

	pktNats "brd-studio-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	BrdController        controller.IBrdController
	RefinementController controller.IRefinementController
	ConflictController   controller.IConflictController
	SelectionController  controller.ISelectionController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Initialize Embedding Provider based on Config
	var embeddingProvider embedding.Provider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	// Initialize Refine Provider based on Config
	refineProvider, err := factory.NewRefineProvider(
		cfg.Ai.RefineProvider,
		cfg.Ai.RefinerURL,
		cfg.Keys.OpenAI,
		cfg.Ai.OpenAIBaseURL,
		cfg.Ai.OpenAIModel,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize Refine Provider: %v", err)
	}
	log.Printf("[INFO] Using Refine Provider: %s", cfg.Ai.RefineProvider)

	// Initialize In-Memory Storage
	sessionRepo := memory.NewSessionRepository()
	trackerRepo := memory.NewTrackerRepository()

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}
	highlightRepo := redisrepo.NewHighlightRepository(rdb, cfg.App.HighlightTTL)

	// 3. Services
	publisherService := service.NewPublisherService(cfg.Keys.EmbedTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.EmbedTopic,
		uowFactory,
		embeddingProvider,
		sysLogger,
	)

	brdService := service.NewBrdService(
		uowFactory,
		highlightRepo,
		publisherService,
		natsPub,
		sysLogger,
	)
	refinementService := service.NewRefinementService(
		sessionRepo,
		uowFactory,
		refineProvider,
		embeddingProvider,
		highlightRepo,
		publisherService,
		natsPub,
		sysLogger,
	)
	conflictService := service.NewConflictService(
		uowFactory,
		refinementService,
		sessionRepo,
		sysLogger,
	)
	selectionService := service.NewSelectionService(trackerRepo)

	// 4. Controllers
	return &Container{
		BrdController:        controller.NewBrdController(brdService),
		RefinementController: controller.NewRefinementController(refinementService),
		ConflictController:   controller.NewConflictController(conflictService),
		SelectionController:  controller.NewSelectionController(selectionService),

		ConsumerService: consumerService,
	}
}
