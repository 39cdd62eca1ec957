package bootstrap

import (
	"log"
	"time"

	"sentia-be/internal/config"
	"sentia-be/internal/controller"
	"sentia-be/internal/pkg/logger"
	"sentia-be/internal/repository/memory"
	"sentia-be/internal/repository/unitofwork"
	"sentia-be/internal/service"
	"sentia-be/pkg/classifier"
	"sentia-be/pkg/llm/factory"

	pktNats "sentia-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	IngestController    controller.IIngestController
	DashboardController controller.IDashboardController
	ExportController    controller.IExportController
	SessionController   controller.ISessionController

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

	// 3. Sentiment Pipeline
	// The LLM provider is only constructed for the llm strategy; keyword mode
	// runs without any external dependency.
	var sentimentClassifier classifier.Classifier
	if cfg.Ai.Strategy == "llm" {
		llmProvider, err := factory.NewLLMProvider(
			cfg.Ai.LLMProvider,
			cfg.Ai.LLMModel,
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.GeminiAPIKey,
			time.Duration(cfg.Ai.TimeoutSeconds)*time.Second,
		)
		if err != nil {
			log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
		}
		log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

		sentimentClassifier, err = classifier.NewClassifier(cfg.Ai.Strategy, llmProvider, cfg.Ai.Temperature, sysLogger)
		if err != nil {
			log.Fatalf("[FATAL] Failed to initialize classifier: %v", err)
		}
	} else {
		var err error
		sentimentClassifier, err = classifier.NewClassifier(cfg.Ai.Strategy, nil, 0, sysLogger)
		if err != nil {
			log.Fatalf("[FATAL] Failed to initialize classifier: %v", err)
		}
		log.Printf("[INFO] Using keyword sentiment classifier")
	}

	// In-memory stats cache
	statsCache := memory.NewStatsRepository()

	// 3.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	publisherService := service.NewPublisherService(pubSub, cfg.App.SessionEventsTopic)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.SessionEventsTopic,
		statsCache,
		sysLogger,
	)

	ingestionService := service.NewIngestionService(
		uowFactory,
		sentimentClassifier,
		publisherService,
		natsPub,
		sysLogger,
	)
	dashboardService := service.NewDashboardService(uowFactory, statsCache)
	exportService := service.NewExportService(uowFactory)
	sessionService := service.NewSessionService(uowFactory, publisherService, natsPub, sysLogger)

	// 4. Controllers
	return &Container{
		IngestController:    controller.NewIngestController(ingestionService),
		DashboardController: controller.NewDashboardController(dashboardService),
		ExportController:    controller.NewExportController(exportService),
		SessionController:   controller.NewSessionController(sessionService),

		ConsumerService: consumerService,
	}
}
